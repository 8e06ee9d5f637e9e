// Package batch applies the lookup pipeline to each line of an input file,
// collecting results in input order and isolating per-line failures.
package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Githu836/Phone-Lookup/internal/lookup"
)

// Outcome is the per-line product of a batch run: a result or a failure
// reason, never both.
type Outcome struct {
	Line   int    // 1-based line number in the source input
	Input  string // the trimmed line as submitted
	Result *lookup.Result
	Err    error
}

// Failed reports whether this outcome records a per-line failure.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// Looker runs a single lookup. Implemented by *lookup.Pipeline.
type Looker interface {
	Lookup(raw string) (lookup.Result, error)
}

// StatusFunc observes each outcome as it is produced during a run.
type StatusFunc func(Outcome)

// Runner processes input lines independently and in order.
type Runner struct {
	looker Looker
	status StatusFunc
}

// Option configures a Runner.
type Option func(*Runner)

// WithStatus installs a per-line progress callback.
func WithStatus(fn StatusFunc) Option {
	return func(r *Runner) {
		r.status = fn
	}
}

// NewRunner creates a Runner over the given Looker.
func NewRunner(looker Looker, opts ...Option) *Runner {
	r := &Runner{looker: looker}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run processes lines in order. Blank lines are skipped and produce no
// outcome. A per-line lookup failure becomes an error Outcome and never
// stops later lines; a numbering-plan data failure aborts the whole run, as
// does context cancellation. Output order equals input order.
func (r *Runner) Run(ctx context.Context, lines []string) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(lines))

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if err := ctx.Err(); err != nil {
			return outcomes, err
		}

		out := Outcome{Line: i + 1, Input: trimmed}
		res, err := r.looker.Lookup(line)
		switch {
		case errors.Is(err, lookup.ErrOracleUnavailable):
			return outcomes, err
		case err != nil:
			out.Err = err
		default:
			out.Result = &res
		}

		outcomes = append(outcomes, out)
		if r.status != nil {
			r.status(out)
		}
	}

	return outcomes, nil
}

// ReadLines reads a batch input file into its lines. Line splitting only;
// blank-line skipping happens in Run so line numbers stay stable.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("batch: reading %s: %w", path, err)
	}
	normalized := strings.ReplaceAll(string(data), "\r\n", "\n")
	return strings.Split(normalized, "\n"), nil
}
