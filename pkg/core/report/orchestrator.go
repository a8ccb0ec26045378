package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/phuslu/log"

	"bfc_reports/pkg/core/projection"
)

// maxWorkers matches the maximum horizon count; more workers buy nothing
// since there are never more than three documents per run.
const maxWorkers = 3

// ErrorCategory tags a per-document failure for reporting.
type ErrorCategory string

const (
	CategoryEmptyData   ErrorCategory = "empty_data"
	CategoryRenderError ErrorCategory = "render_error"
	CategoryWriteError  ErrorCategory = "write_error"
	CategoryVerifyError ErrorCategory = "verify_error"
)

// FailureMarker replaces a successful artifact reference when a document
// build fails. It is data, not an error: per-document failures never abort
// sibling builds or the run.
type FailureMarker struct {
	Category ErrorCategory
	Message  string
}

func (f FailureMarker) String() string {
	return fmt.Sprintf("FAILED: %s: %s", f.Category, f.Message)
}

// Renderer turns one horizon's markdown body into a finished PDF document.
type Renderer interface {
	Render(markdown, title string) ([]byte, error)
}

// Orchestrator fans out one document build per horizon onto a bounded worker
// pool, isolates failures at the task boundary, and aggregates settled
// results in fixed horizon order.
type Orchestrator struct {
	outputDir string
	renderer  Renderer
	verify    func(path string) error
	logger    log.Logger

	// writeMu serializes only final artifact emission; building a document
	// stays fully parallel.
	writeMu sync.Mutex
}

// NewOrchestrator creates an orchestrator writing artifacts into outputDir.
func NewOrchestrator(outputDir string, renderer Renderer, logger log.Logger) *Orchestrator {
	return &Orchestrator{
		outputDir: outputDir,
		renderer:  renderer,
		logger:    logger,
	}
}

// SetVerifier installs an artifact check run after emission; a verification
// failure is reported for that horizon and the broken file is removed.
func (o *Orchestrator) SetVerifier(verify func(path string) error) {
	o.verify = verify
}

// ArtifactName returns the deterministic per-horizon file name, so re-runs
// overwrite rather than accumulate.
func ArtifactName(h projection.Horizon) string {
	return fmt.Sprintf("BFC_10K_%s_Projection.pdf", h)
}

// Generate builds one document per horizon present in the bundle,
// concurrently, and blocks until every build has settled. It returns the
// artifact paths for successful horizons and a failure marker per failed
// horizon. An unusable bundle (no baseline figures or no horizons) yields
// empty maps and a logged setup failure rather than an error: the
// orchestrator is the last line of defense for partial configurations.
func (o *Orchestrator) Generate(ctx context.Context, bundle *projection.Bundle) (map[projection.Horizon]string, map[projection.Horizon]FailureMarker) {
	successes := make(map[projection.Horizon]string)
	failures := make(map[projection.Horizon]FailureMarker)

	if bundle == nil || len(bundle.Horizons) == 0 || bundle.Baseline == (projection.Baseline{}) {
		o.logger.Error().Msg("Invalid projection bundle: missing baseline or horizons; no documents generated")
		return successes, failures
	}

	pool := newWorkerPool(maxWorkers, len(bundle.Horizons), o.logger)
	for _, h := range projection.Horizons() {
		res, present := bundle.Horizons[h]
		if !present {
			continue
		}
		horizon := h
		result := res
		pool.submit(buildJob{
			horizon: horizon,
			run: func() buildResult {
				return o.buildDocument(ctx, bundle.Baseline, result, horizon)
			},
		})
	}

	for _, settled := range pool.drain() {
		if settled.Failure != nil {
			failures[settled.Horizon] = *settled.Failure
		} else {
			successes[settled.Horizon] = settled.Path
		}
	}

	for _, h := range projection.Horizons() {
		if fm, failed := failures[h]; failed {
			o.logger.Error().
				Str("horizon", string(h)).
				Str("category", string(fm.Category)).
				Msg(fm.Message)
		}
	}
	return successes, failures
}

// buildDocument produces the settled result for one horizon. Every failure
// mode, including a panicking renderer, is converted to a failure marker at
// this boundary so it cannot reach sibling builds.
func (o *Orchestrator) buildDocument(ctx context.Context, baseline projection.Baseline, res *projection.Result, h projection.Horizon) (out buildResult) {
	out = buildResult{Horizon: h}
	defer func() {
		if r := recover(); r != nil {
			out.Failure = &FailureMarker{
				Category: CategoryRenderError,
				Message:  fmt.Sprintf("panic during document build: %v", r),
			}
		}
	}()

	if err := ctx.Err(); err != nil {
		out.Failure = &FailureMarker{Category: CategoryRenderError, Message: err.Error()}
		return out
	}

	// An empty document would be misleading, so missing projection data is a
	// hard failure for this horizon, never a silent skip.
	if res == nil {
		out.Failure = &FailureMarker{
			Category: CategoryEmptyData,
			Message:  fmt.Sprintf("no projection data for horizon %q", h),
		}
		return out
	}

	markdown := BuildDocument(baseline, res, h)
	title := DocumentTitle(h)

	pdfBytes, err := o.renderer.Render(markdown, title)
	if err != nil {
		out.Failure = &FailureMarker{
			Category: CategoryRenderError,
			Message:  fmt.Sprintf("render %s: %v", h, err),
		}
		return out
	}

	path := filepath.Join(o.outputDir, ArtifactName(h))
	o.writeMu.Lock()
	err = os.WriteFile(path, pdfBytes, 0o644)
	o.writeMu.Unlock()
	if err != nil {
		out.Failure = &FailureMarker{
			Category: CategoryWriteError,
			Message:  fmt.Sprintf("write %s: %v", path, err),
		}
		return out
	}

	if o.verify != nil {
		if err := o.verify(path); err != nil {
			// Do not leave a broken artifact behind.
			if rmErr := os.Remove(path); rmErr != nil {
				o.logger.Warn().Str("path", path).Err(rmErr).Msg("Could not remove broken artifact")
			}
			out.Failure = &FailureMarker{
				Category: CategoryVerifyError,
				Message:  fmt.Sprintf("verify %s: %v", path, err),
			}
			return out
		}
	}

	o.logger.Info().
		Str("horizon", string(h)).
		Str("path", path).
		Msg("Document built and verified")
	out.Path = path
	return out
}
