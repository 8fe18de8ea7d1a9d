// SPDX-License-Identifier: MIT

package remap

import (
	"context"
	"fmt"
	"sync"

	"github.com/katalvlaran/almanac/interval"
)

// Pipeline is an ordered, immutable chain of stages.
type Pipeline struct {
	stages []*Stage
}

// NewPipeline builds a pipeline applying stages in the given order.
// A pipeline with no stages is the identity.
func NewPipeline(stages ...*Stage) (*Pipeline, error) {
	for i, s := range stages {
		if s == nil {
			return nil, fmt.Errorf("NewPipeline: stage %d: %w", i, ErrNilStage)
		}
	}
	return &Pipeline{stages: append([]*Stage(nil), stages...)}, nil
}

// Stages returns the stages in application order.
func (p *Pipeline) Stages() []*Stage {
	return append([]*Stage(nil), p.stages...)
}

// Len returns the number of stages.
func (p *Pipeline) Len() int { return len(p.stages) }

// Apply folds seeds through every stage in order and returns the final
// fragments. Output order is unspecified.
func (p *Pipeline) Apply(seeds []interval.Interval) []interval.Interval {
	if len(p.stages) == 0 {
		return nonEmpty(seeds)
	}
	cur := seeds
	for _, s := range p.stages {
		cur = s.Apply(cur)
	}
	return cur
}

// nonEmpty copies the non-empty intervals of ivs into a fresh slice.
func nonEmpty(ivs []interval.Interval) []interval.Interval {
	out := make([]interval.Interval, 0, len(ivs))
	for _, iv := range ivs {
		if !iv.IsEmpty() {
			out = append(out, iv)
		}
	}
	return out
}

// ApplyValue folds a single value through every stage.
func (p *Pipeline) ApplyValue(v uint64) uint64 {
	for _, s := range p.stages {
		v = s.ApplyValue(v)
	}
	return v
}

// Trace returns v followed by its value after each stage; len = Len()+1.
func (p *Pipeline) Trace(v uint64) []uint64 {
	out := make([]uint64, 0, len(p.stages)+1)
	out = append(out, v)
	for _, s := range p.stages {
		v = s.ApplyValue(v)
		out = append(out, v)
	}
	return out
}

// ApplyConcurrent is Apply with every seed handled by one of workers
// goroutines. Seeds never interact, so the union of per-seed results equals
// Apply(seeds) as a set. Output order is unspecified.
//
// It returns ctx.Err() if the context ends before all seeds are processed.
func (p *Pipeline) ApplyConcurrent(ctx context.Context, seeds []interval.Interval, workers int) ([]interval.Interval, error) {
	if workers < 1 {
		workers = 1
	}
	if workers > len(seeds) {
		workers = max(len(seeds), 1)
	}

	jobs := make(chan interval.Interval, workers*2)
	results := make(chan []interval.Interval, workers*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case iv, ok := <-jobs:
					if !ok {
						return
					}
					res := p.Apply([]interval.Interval{iv})
					select {
					case results <- res:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	// Feed work
	go func() {
		defer close(jobs)
		for _, iv := range seeds {
			select {
			case jobs <- iv:
			case <-ctx.Done():
				return
			}
		}
	}()

	out := make([]interval.Interval, 0, len(seeds))
	for res := range results {
		out = append(out, res...)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
