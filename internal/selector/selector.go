// Package selector drives candidates through the prober and parser and
// picks the ones a predicate accepts.
package selector

import (
	"context"
	"errors"
	"iter"

	"github.com/quantmind-br/toolprobe/internal/core"
	"github.com/quantmind-br/toolprobe/internal/logging"
	"github.com/quantmind-br/toolprobe/internal/parser"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Options configures a Selector
type Options struct {
	Source core.CandidateSource
	Prober core.Prober
	// Parse defaults to parser.Parse
	Parse core.ParseFunc
	// Parallelism above 1 probes that many candidates at a time. Results
	// are still consumed in candidate order.
	Parallelism int
	Logger      *zerolog.Logger
}

// Selector evaluates candidates in discovery order
type Selector struct {
	source      core.CandidateSource
	prober      core.Prober
	parse       core.ParseFunc
	parallelism int
	log         *zerolog.Logger
}

// Result is the outcome for one candidate: a Config or the reason it has
// none.
type Result struct {
	Candidate core.Candidate
	Config    *core.Config
	Err       error
}

// OK reports whether the candidate produced a Config
func (r Result) OK() bool { return r.Err == nil && r.Config != nil }

// New creates a Selector
func New(opts Options) *Selector {
	parse := opts.Parse
	if parse == nil {
		parse = parser.Parse
	}
	parallelism := opts.Parallelism
	if parallelism < 1 {
		parallelism = 1
	}
	return &Selector{
		source:      opts.Source,
		prober:      opts.Prober,
		parse:       parse,
		parallelism: parallelism,
		log:         logging.Component(opts.Logger, "selector"),
	}
}

// FindMatching returns the first Config, in candidate order, that pred
// accepts. A nil pred accepts any Config. When nothing matches it returns a
// *core.SelectionError listing every rejection.
func (s *Selector) FindMatching(ctx context.Context, pred core.Predicate) (*core.Config, error) {
	var rejections []core.Rejection
	tried := 0

	for r, err := range s.Results(ctx) {
		if err != nil {
			return nil, err
		}
		tried++

		if r.Err != nil {
			rejections = append(rejections, core.Rejection{Candidate: r.Candidate, Err: r.Err})
			continue
		}
		if accepts(pred, r.Config) {
			s.log.Debug().Str("path", r.Candidate.Path).Str("version", r.Config.Version().String()).Msg("candidate selected")
			return r.Config, nil
		}
		s.log.Debug().Str("path", r.Candidate.Path).Msg("candidate did not satisfy predicate")
		rejections = append(rejections, core.Rejection{Candidate: r.Candidate})
	}

	return nil, &core.SelectionError{Kind: core.ErrNoMatch, Tried: tried, Rejections: rejections}
}

// FindAllMatching yields every accepted Config in candidate order. The error
// slot only carries a terminal discovery error or context cancellation.
func (s *Selector) FindAllMatching(ctx context.Context, pred core.Predicate) iter.Seq2[*core.Config, error] {
	return func(yield func(*core.Config, error) bool) {
		for r, err := range s.Results(ctx) {
			if err != nil {
				yield(nil, err)
				return
			}
			if !r.OK() || !accepts(pred, r.Config) {
				continue
			}
			if !yield(r.Config, nil) {
				return
			}
		}
	}
}

// Report evaluates every candidate and returns all outcomes in order
func (s *Selector) Report(ctx context.Context) ([]Result, error) {
	var out []Result
	for r, err := range s.Results(ctx) {
		if err != nil {
			return out, err
		}
		out = append(out, r)
	}
	return out, nil
}

// Results yields the outcome of each candidate in order. Probe and parse
// failures are part of the Result; the error slot is terminal.
func (s *Selector) Results(ctx context.Context) iter.Seq2[Result, error] {
	return func(yield func(Result, error) bool) {
		batch := make([]core.Candidate, 0, s.parallelism)

		// flush evaluates the pending batch and yields its results. It
		// returns false when iteration must stop.
		flush := func() bool {
			if len(batch) == 0 {
				return true
			}
			results := s.evaluateBatch(ctx, batch)
			batch = batch[:0]
			for _, r := range results {
				if ctx.Err() != nil && isContextErr(r.Err) {
					yield(Result{}, ctx.Err())
					return false
				}
				if !yield(r, nil) {
					return false
				}
			}
			return true
		}

		for c, err := range s.source.Candidates(ctx) {
			if err != nil {
				if flush() {
					yield(Result{}, err)
				}
				return
			}
			if err := ctx.Err(); err != nil {
				yield(Result{}, err)
				return
			}

			batch = append(batch, c)
			if len(batch) < s.parallelism {
				continue
			}
			if !flush() {
				return
			}
		}

		if !flush() {
			return
		}
		if err := ctx.Err(); err != nil {
			yield(Result{}, err)
		}
	}
}

func (s *Selector) evaluateBatch(ctx context.Context, batch []core.Candidate) []Result {
	results := make([]Result, len(batch))
	if len(batch) == 1 {
		results[0] = s.evaluate(ctx, batch[0])
		return results
	}

	var g errgroup.Group
	g.SetLimit(s.parallelism)
	for i, c := range batch {
		g.Go(func() error {
			results[i] = s.evaluate(ctx, c)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func (s *Selector) evaluate(ctx context.Context, c core.Candidate) Result {
	raw, err := s.prober.Probe(ctx, c)
	if err != nil {
		s.log.Debug().Err(err).Str("path", c.Path).Msg("probe failed")
		return Result{Candidate: c, Err: err}
	}

	cfg, err := s.parse(raw)
	if err != nil {
		s.log.Debug().Err(err).Str("path", c.Path).Msg("parse failed")
		return Result{Candidate: c, Err: err}
	}
	return Result{Candidate: c, Config: cfg}
}

func accepts(pred core.Predicate, cfg *core.Config) bool {
	return pred == nil || pred(cfg)
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
