// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists committed axis lines and batch reports in a
// SQLite database. It is the geometry sink collaborator: the core
// pipeline only produces data, and the CLI commits each successfully
// projected axis here once.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/brep-axis/pkg/types"
)

// Color tags for committed lines, per the turning-workflow convention.
const (
	ColorCylinder = "green"
	ColorCone     = "red"
)

// ColorFor returns the line color tag for a primitive kind, or "" for
// kinds that never produce axis lines.
func ColorFor(kind types.PrimitiveKind) string {
	switch kind {
	case types.KindCylinder:
		return ColorCylinder
	case types.KindCone:
		return ColorCone
	}
	return ""
}

// Line is one committed axis line.
type Line struct {
	ID        int64               `json:"id" yaml:"id"`
	Surface   string              `json:"surface" yaml:"surface"`
	Kind      types.PrimitiveKind `json:"kind" yaml:"kind"`
	Color     string              `json:"color" yaml:"color"`
	Segment   types.AxisSegment   `json:"segment" yaml:"segment"`
	Length    float64             `json:"length" yaml:"length"`
	CreatedAt time.Time           `json:"created_at" yaml:"created_at"`
}

// Store manages the axis line SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at cfg.DBPath (default "axes.db")
// and creates the schema if it does not exist.
func Open(cfg types.StoreConfig) (*Store, error) {
	path := cfg.DBPath
	if path == "" {
		path = "axes.db"
	}
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS lines (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			surface TEXT,
			kind TEXT NOT NULL,
			color TEXT NOT NULL,
			sx REAL NOT NULL, sy REAL NOT NULL, sz REAL NOT NULL,
			ex REAL NOT NULL, ey REAL NOT NULL, ez REAL NOT NULL,
			length REAL NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_lines_kind ON lines(kind)`,
		`CREATE TABLE IF NOT EXISTS reports (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			created_at TEXT NOT NULL,
			total INTEGER NOT NULL,
			skipped INTEGER NOT NULL,
			filtered INTEGER NOT NULL,
			cylinders INTEGER NOT NULL,
			cones INTEGER NOT NULL,
			planes INTEGER NOT NULL,
			free_forms INTEGER NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// CommitLine stores one axis line and returns its row ID. The color tag
// is derived from the kind.
func (s *Store) CommitLine(ctx context.Context, surface string, kind types.PrimitiveKind, seg types.AxisSegment) (int64, error) {
	color := ColorFor(kind)
	if color == "" {
		return 0, fmt.Errorf("kind %s does not produce axis lines", kind)
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO lines (surface, kind, color, sx, sy, sz, ex, ey, ez, length, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		surface, string(kind), color,
		seg.Start.X, seg.Start.Y, seg.Start.Z,
		seg.End.X, seg.End.Y, seg.End.Z,
		seg.Length(), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting line: %w", err)
	}
	return res.LastInsertId()
}

// CommitReport stores the aggregate counters of one batch run.
func (s *Store) CommitReport(ctx context.Context, r types.Report) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO reports (created_at, total, skipped, filtered, cylinders, cones, planes, free_forms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339Nano),
		r.Total, r.Skipped, r.Filtered,
		r.Count(types.KindCylinder), r.Count(types.KindCone),
		r.Count(types.KindPlane), r.Count(types.KindFreeForm),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting report: %w", err)
	}
	return res.LastInsertId()
}

// Lines returns all committed lines in insertion order, optionally
// filtered by kind ("" returns everything).
func (s *Store) Lines(ctx context.Context, kind types.PrimitiveKind) ([]Line, error) {
	query := `SELECT id, surface, kind, color, sx, sy, sz, ex, ey, ez, length, created_at
	          FROM lines`
	args := []any{}
	if kind != "" {
		query += ` WHERE kind = ?`
		args = append(args, string(kind))
	}
	query += ` ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying lines: %w", err)
	}
	defer rows.Close()

	var lines []Line
	for rows.Next() {
		var l Line
		var kindStr, createdAt string
		err := rows.Scan(&l.ID, &l.Surface, &kindStr, &l.Color,
			&l.Segment.Start.X, &l.Segment.Start.Y, &l.Segment.Start.Z,
			&l.Segment.End.X, &l.Segment.End.Y, &l.Segment.End.Z,
			&l.Length, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scanning line: %w", err)
		}
		l.Kind = types.PrimitiveKind(kindStr)
		if t, parseErr := time.Parse(time.RFC3339Nano, createdAt); parseErr == nil {
			l.CreatedAt = t
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}
