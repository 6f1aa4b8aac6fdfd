// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package batch orchestrates classification and axis projection across
// a surface collection. Items are processed independently: one
// malformed surface never aborts the batch, and the report preserves
// input order so callers can correlate entries back to their sources
// positionally.
package batch

import (
	"fmt"
	"sync"

	"github.com/pdiddy/brep-axis/internal/axisproj"
	"github.com/pdiddy/brep-axis/internal/classify"
	"github.com/pdiddy/brep-axis/internal/tolerance"
	"github.com/pdiddy/brep-axis/pkg/types"
)

// Input pairs a surface with its caller-assigned name.
type Input struct {
	Name    string
	Surface types.Surface
}

// Observer receives (done, total) after each item completes. It is
// invoked synchronously and must not panic; it has no effect on
// results.
type Observer func(done, total int)

// Processor applies classify-then-project across a collection.
type Processor struct {
	tol      tolerance.Context
	cfg      types.BatchConfig
	observer Observer
}

// New builds a Processor. cfg.MinDiameter of zero disables the
// diameter filter; cfg.Workers below 2 selects sequential processing.
func New(tol tolerance.Context, cfg types.BatchConfig) *Processor {
	return &Processor{tol: tol, cfg: cfg}
}

// OnProgress installs the progress observer. A nil observer disables
// progress reporting.
func (p *Processor) OnProgress(obs Observer) {
	p.observer = obs
}

// Process classifies every surface, projects axes for rotational kinds,
// and aggregates counters. The only batch-level failure is a nil input
// collection; every per-item failure is downgraded to a recorded field
// on that item's result.
func (p *Processor) Process(inputs []Input) (types.Report, error) {
	if inputs == nil {
		return types.Report{}, fmt.Errorf("nil surface collection")
	}

	items := make([]types.ItemResult, len(inputs))
	if p.cfg.Workers > 1 {
		p.runParallel(inputs, items)
	} else {
		p.runSequential(inputs, items)
	}

	report := types.Report{
		Total:        len(inputs),
		CountsByKind: make(map[types.PrimitiveKind]int),
		Items:        items,
	}
	for _, it := range items {
		switch {
		case it.Error == types.FailInvalidDomain:
			report.Skipped++
		case it.Error == types.FailBelowDiameter:
			report.Filtered++
		case it.Classification != nil:
			report.CountsByKind[it.Classification.Kind]++
		}
	}
	return report, nil
}

func (p *Processor) runSequential(inputs []Input, items []types.ItemResult) {
	for i, in := range inputs {
		items[i] = p.processItem(i, in)
		p.notify(i+1, len(inputs))
	}
}

// runParallel fans the items out over a worker pool. Each worker writes
// only its own item index, so the slice needs no locking; progress is
// reported from the collecting goroutine as completions arrive.
func (p *Processor) runParallel(inputs []Input, items []types.ItemResult) {
	idxCh := make(chan int)
	doneCh := make(chan struct{}, len(inputs))

	var wg sync.WaitGroup
	for w := 0; w < p.cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range idxCh {
				items[i] = p.processItem(i, inputs[i])
				doneCh <- struct{}{}
			}
		}()
	}

	go func() {
		for i := range inputs {
			idxCh <- i
		}
		close(idxCh)
		wg.Wait()
		close(doneCh)
	}()

	done := 0
	for range doneCh {
		done++
		p.notify(done, len(inputs))
	}
}

func (p *Processor) processItem(index int, in Input) types.ItemResult {
	item := types.ItemResult{Index: index, Name: in.Name, Source: in.Surface}

	if in.Surface == nil {
		item.Error = types.FailInvalidDomain
		item.Detail = "missing surface"
		return item
	}

	c, err := classify.Classify(in.Surface, p.tol)
	if err != nil {
		item.Error, _ = types.FailureKindOf(err)
		item.Detail = err.Error()
		return item
	}
	item.Classification = &c

	// Policy exclusion: thin cylinders stay classified but are kept out
	// of the kind tally and never get an axis.
	if c.Kind == types.KindCylinder && p.cfg.MinDiameter > 0 &&
		2*c.Cylinder.Radius < p.cfg.MinDiameter {
		item.Error = types.FailBelowDiameter
		item.Detail = fmt.Sprintf("diameter %.3f below threshold %.3f",
			2*c.Cylinder.Radius, p.cfg.MinDiameter)
		return item
	}

	if c.Kind == types.KindCylinder || c.Kind == types.KindCone {
		seg, err := axisproj.Project(in.Surface, c, p.tol)
		if err != nil {
			// The classification stands; only the axis is missing.
			item.Error, _ = types.FailureKindOf(err)
			item.Detail = err.Error()
			return item
		}
		item.Axis = &seg
	}
	return item
}

func (p *Processor) notify(done, total int) {
	if p.observer != nil {
		p.observer(done, total)
	}
}
