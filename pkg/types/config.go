// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ToleranceConfig holds the numeric precision used by every geometric
// comparison. Zero values mean "use the documented default".
type ToleranceConfig struct {
	// Distance is the absolute distance tolerance in model units
	// (default 0.01).
	Distance float64 `json:"distance" yaml:"distance"`

	// AngleDeg is the angular tolerance in degrees for direction and
	// co-linearity checks (default 0.1).
	AngleDeg float64 `json:"angle_deg" yaml:"angle_deg"`
}

// BatchConfig holds settings for batch orchestration.
type BatchConfig struct {
	// MinDiameter excludes cylinders whose diameter falls below this
	// threshold from the kind tally and from axis projection
	// (default 0 = no filter; the turning workflow uses 3.2).
	MinDiameter float64 `json:"min_diameter" yaml:"min_diameter"`

	// Workers sets the number of concurrent workers. Values below 2
	// select the sequential path. Results are identical either way.
	Workers int `json:"workers" yaml:"workers"`

	// ProgressEvery controls how often the CLI prints progress
	// (every N items, default 100).
	ProgressEvery int `json:"progress_every" yaml:"progress_every"`
}

// StoreConfig holds settings for the axis line store.
type StoreConfig struct {
	// DBPath is the SQLite database file for committed lines and
	// reports (default "axes.db").
	DBPath string `json:"db_path" yaml:"db_path"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Tolerance ToleranceConfig `json:"tolerance" yaml:"tolerance"`
	Batch     BatchConfig     `json:"batch" yaml:"batch"`
	Store     StoreConfig     `json:"store" yaml:"store"`
}
