// Copyright (c) 2025, The vocab Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package loader

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/mchmarny/vocab/pkg/defaults"
	"github.com/mchmarny/vocab/pkg/errors"
)

// ErrLoadFailed indicates at least one unit in a batch failed to load.
// Report.Err wraps it, so callers can use errors.Is on the aggregate.
var ErrLoadFailed = stderrors.New("one or more units failed to load")

// Unit is one independently loadable member of a batch.
type Unit struct {
	// Name identifies the unit in reports and logs. Must be unique
	// within a batch.
	Name string

	// Load performs the work. It must honor ctx cancellation.
	Load func(ctx context.Context) error
}

// Result is the outcome of a single unit load.
type Result struct {
	Unit     string        `json:"unit" yaml:"unit"`
	Err      error         `json:"-" yaml:"-"`
	Error    string        `json:"error,omitempty" yaml:"error,omitempty"`
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Report aggregates the outcomes of one load batch. Results are ordered
// by unit name regardless of completion order.
type Report struct {
	BatchID   string    `json:"batchID" yaml:"batchID"`
	Started   time.Time `json:"started" yaml:"started"`
	Completed time.Time `json:"completed" yaml:"completed"`
	Results   []Result  `json:"results" yaml:"results"`
}

// Failed returns the results of units that failed, in name order.
func (r *Report) Failed() []Result {
	var failed []Result
	for _, res := range r.Results {
		if res.Err != nil {
			failed = append(failed, res)
		}
	}
	return failed
}

// Err returns nil when every unit loaded, or a structured error wrapping
// ErrLoadFailed carrying the batch ID and failure count.
func (r *Report) Err() error {
	failed := r.Failed()
	if len(failed) == 0 {
		return nil
	}
	names := make([]string, len(failed))
	for i, f := range failed {
		names[i] = f.Unit
	}
	return errors.WrapWithContext(errors.ErrCodeLoadFailed,
		fmt.Sprintf("%d of %d units failed to load", len(failed), len(r.Results)),
		ErrLoadFailed,
		map[string]any{"batchID": r.BatchID, "units": names})
}

// Loader runs load batches. The zero value is not usable; construct with New.
type Loader struct {
	concurrency  int
	unitTimeout  time.Duration
	batchTimeout time.Duration
	limiter      *rate.Limiter
}

// Option configures a Loader.
type Option func(*Loader)

// WithConcurrency sets how many units load in parallel. Values below one
// are treated as one (sequential loading).
func WithConcurrency(n int) Option {
	return func(l *Loader) {
		if n < 1 {
			n = 1
		}
		l.concurrency = n
	}
}

// WithUnitTimeout bounds each individual unit load.
func WithUnitTimeout(d time.Duration) Option {
	return func(l *Loader) {
		if d > 0 {
			l.unitTimeout = d
		}
	}
}

// WithBatchTimeout bounds the whole batch. Units still pending when the
// batch deadline passes record the context error as their result.
func WithBatchTimeout(d time.Duration) Option {
	return func(l *Loader) {
		if d > 0 {
			l.batchTimeout = d
		}
	}
}

// WithRateLimit throttles unit load starts to limit per second with the
// given burst allowance.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(l *Loader) {
		l.limiter = rate.NewLimiter(limit, burst)
	}
}

// New creates a Loader with defaults from pkg/defaults, adjusted by the
// given options.
func New(opts ...Option) *Loader {
	l := &Loader{
		concurrency:  defaults.LoaderConcurrency,
		unitTimeout:  defaults.LoaderUnitTimeout,
		batchTimeout: defaults.LoaderBatchTimeout,
		limiter:      rate.NewLimiter(defaults.LoaderRateLimit, defaults.LoaderRateBurst),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load runs every unit in the batch and reports per-unit outcomes. A unit
// failure never aborts the batch; only an invalid manifest (empty or
// duplicate names, nil load functions) fails before any unit runs.
// The batch runs under the configured batch timeout; cancellation or an
// expired deadline stops unstarted units, recording the context error as
// their result.
func (l *Loader) Load(ctx context.Context, units ...Unit) (*Report, error) {
	if err := validateManifest(units); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, l.batchTimeout)
	defer cancel()

	// sorted copy keeps batches deterministic without mutating the input
	batch := make([]Unit, len(units))
	copy(batch, units)
	sort.Slice(batch, func(i, j int) bool { return batch[i].Name < batch[j].Name })

	report := &Report{
		BatchID: uuid.New().String(),
		Started: time.Now(),
		Results: make([]Result, len(batch)),
	}

	slog.Debug("starting load batch",
		"batchID", report.BatchID,
		"units", len(batch),
		"concurrency", l.concurrency)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.concurrency)

	for i, u := range batch {
		g.Go(func() error {
			report.Results[i] = l.loadUnit(gctx, u)
			return nil
		})
	}

	// all goroutines return nil: failures live in the report
	_ = g.Wait()
	report.Completed = time.Now()

	if batchErr := report.Err(); batchErr != nil {
		loaderBatchesTotal.WithLabelValues(statusError).Inc()
		slog.Debug("load batch completed with failures",
			"batchID", report.BatchID,
			"failed", len(report.Failed()))
	} else {
		loaderBatchesTotal.WithLabelValues(statusSuccess).Inc()
		slog.Debug("load batch completed", "batchID", report.BatchID)
	}

	return report, nil
}

// loadUnit runs one unit under the rate limiter and unit timeout.
func (l *Loader) loadUnit(ctx context.Context, u Unit) Result {
	start := time.Now()
	res := Result{Unit: u.Name}

	err := l.limiter.Wait(ctx)
	if err == nil {
		uctx, cancel := context.WithTimeout(ctx, l.unitTimeout)
		err = u.Load(uctx)
		cancel()
	}

	res.Duration = time.Since(start)
	loaderUnitDuration.Observe(res.Duration.Seconds())

	if err != nil {
		res.Err = fmt.Errorf("unit %q: %w", u.Name, err)
		res.Error = res.Err.Error()
		loaderUnitsTotal.WithLabelValues(statusError).Inc()
		slog.Debug("unit load failed", "unit", u.Name, "error", err)
		return res
	}

	loaderUnitsTotal.WithLabelValues(statusSuccess).Inc()
	return res
}

func validateManifest(units []Unit) error {
	if len(units) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "load batch has no units")
	}
	seen := make(map[string]struct{}, len(units))
	for i, u := range units {
		if u.Name == "" {
			return errors.NewWithContext(errors.ErrCodeInvalidInput,
				"unit name must not be empty", map[string]any{"position": i})
		}
		if u.Load == nil {
			return errors.NewWithContext(errors.ErrCodeInvalidInput,
				fmt.Sprintf("unit %q has no load function", u.Name),
				map[string]any{"unit": u.Name})
		}
		if _, ok := seen[u.Name]; ok {
			return errors.NewWithContext(errors.ErrCodeInvalidInput,
				fmt.Sprintf("duplicate unit name %q", u.Name),
				map[string]any{"unit": u.Name})
		}
		seen[u.Name] = struct{}{}
	}
	return nil
}
