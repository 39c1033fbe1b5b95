// Package loader loads batches of named units independently, collecting
// per-unit failures instead of aborting the batch on the first error.
//
// # Overview
//
// A Unit names a piece of work (a plugin, a data file, a submodule) and
// how to load it. The Loader runs every unit in a batch regardless of
// individual failures, and returns a Report listing the outcome of each
// unit, so callers can present or act on the full failure list at once.
//
// # Usage
//
//	l := loader.New(
//	    loader.WithConcurrency(4),
//	    loader.WithUnitTimeout(10*time.Second),
//	)
//
//	report, err := l.Load(ctx,
//	    loader.Unit{Name: "parsers", Load: loadParsers},
//	    loader.Unit{Name: "renderers", Load: loadRenderers},
//	)
//	if err != nil {
//	    return err // invalid manifest, nothing was loaded
//	}
//	for _, r := range report.Failed() {
//	    slog.Error("unit failed", "unit", r.Unit, "error", r.Err)
//	}
//	return report.Err()
//
// # Ordering
//
// Units are loaded in sorted name order so batches are deterministic.
// With concurrency above one the start order is still sorted, only the
// completion order varies; Report results always appear in sorted order.
package loader
