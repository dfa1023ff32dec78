package model

import (
	"time"

	"github.com/rs/zerolog"
)

// Run represents a single benchmark execution.
type Run struct {
	// Number of elements in the input array
	Size int `json:"size"`
	// Number of full passes over the array
	Repeat int `json:"repeat"`
	// Seed used to generate the input array
	Seed int64 `json:"seed"`
	// Number of goroutines the repeat loop was split across
	Workers int `json:"workers"`
	// Resulting sum of all elements >= 128 over all passes
	Sum int64 `json:"sum"`
	// Time spent in the kernel (excludes data generation)
	Duration time.Duration `json:"duration"`
	// Execution environment
	Target *Target `json:"target,omitempty"`
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (r *Run) MarshalZerologObject(e *zerolog.Event) {
	e.Int("size", r.Size).
		Int("repeat", r.Repeat).
		Int64("seed", r.Seed).
		Int("workers", r.Workers).
		Int64("sum", r.Sum).
		Dur("duration", r.Duration)
	if r.Target != nil {
		e.Object("target", r.Target)
	}
}
