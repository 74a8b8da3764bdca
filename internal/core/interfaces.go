package core

import (
	"context"
	"iter"
)

// CandidateSource enumerates candidates. Every call to Candidates starts a
// fresh scan; the sequence is finite.
type CandidateSource interface {
	Candidates(ctx context.Context) iter.Seq2[Candidate, error]
}

// Prober runs a candidate and captures its raw configuration output.
type Prober interface {
	Probe(ctx context.Context, c Candidate) (*RawOutput, error)
}

// ParseFunc converts raw probe output into a Config.
type ParseFunc func(raw *RawOutput) (*Config, error)

// Predicate decides whether a fully parsed Config is acceptable.
type Predicate func(cfg *Config) bool
