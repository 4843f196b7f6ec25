// Package batch evaluates many expressions concurrently.
package batch

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/ErikKalkoken/exprcalc/internal/xslices"
	"github.com/ErikKalkoken/exprcalc/internal/xstrings"
	"github.com/ErikKalkoken/exprcalc/internal/xsync"
	"github.com/ErikKalkoken/exprcalc/pkg/expression"
)

// Result is the outcome of evaluating one expression.
type Result struct {
	Input   string
	Postfix string // empty when the input was already postfix or conversion failed
	Value   float64
	Err     error
}

// Options configure a batch run.
type Options struct {
	Postfix bool // inputs are postfix expressions
	Workers int  // maximum number of concurrent evaluations; 0 means no limit
}

// Run evaluates inputs concurrently and returns the results in the order of the inputs.
// Repeated inputs are evaluated only once.
// Failed evaluations are reported in the results and do not stop the run.
// It only returns an error when ctx is canceled.
func Run(ctx context.Context, inputs []string, opt Options) ([]Result, error) {
	results := make([]Result, len(inputs))
	m := &memo{isPostfix: opt.Postfix}
	g, ctx := errgroup.WithContext(ctx)
	if opt.Workers > 0 {
		g.SetLimit(opt.Workers)
	}
	for i, input := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = m.evaluate(input)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	slog.Debug("Completed batch", "count", len(results), "evaluated", m.cache.Len())
	return results, nil
}

// memo remembers the results of a batch run.
type memo struct {
	cache     xsync.Map[string, Result]
	isPostfix bool
	sfg       singleflight.Group
}

func (m *memo) evaluate(input string) Result {
	if r, ok := m.cache.Load(input); ok {
		return r
	}
	x, _, _ := m.sfg.Do(input, func() (any, error) {
		r := evaluate(input, m.isPostfix)
		m.cache.Store(input, r)
		return r, nil
	})
	return x.(Result)
}

func evaluate(input string, isPostfix bool) Result {
	r := Result{Input: input}
	postfix := input
	if !isPostfix {
		var err error
		postfix, err = expression.InfixToPostfix(input)
		if err != nil {
			r.Err = err
			return r
		}
		r.Postfix = postfix
	}
	r.Value, r.Err = expression.Evaluate(postfix)
	if r.Err != nil {
		slog.Debug("Failed to evaluate expression", "input", input, "error", r.Err)
	}
	return r
}

// ReadLines returns all lines from r, except blank lines and comments.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return xslices.Filter(lines, func(s string) bool {
		return !xstrings.IsBlankOrComment(s)
	}), nil
}

// Failures returns the number of failed evaluations for each kind of failure.
func Failures(results []Result) map[string]int {
	m := make(map[string]int)
	for _, r := range results {
		if r.Err == nil {
			continue
		}
		var e *expression.Error
		if errors.As(r.Err, &e) {
			m[e.Err.Error()]++
		} else {
			m[r.Err.Error()]++
		}
	}
	return m
}
