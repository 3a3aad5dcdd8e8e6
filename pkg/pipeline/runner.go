package pipeline

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/docxwrap/docxwrap/pkg/docx"
	"github.com/docxwrap/docxwrap/pkg/errors"
	"github.com/docxwrap/docxwrap/pkg/observability"
	"github.com/docxwrap/docxwrap/pkg/pdf"
)

// Runner encapsulates one conversion pipeline's collaborators. It is
// stateless across runs; each Execute call owns a fresh workspace for the
// duration of the call and tears it down unconditionally.
type Runner struct {
	Extractor PageExtractor
	Renderer  docx.PageRenderer
	Logger    *log.Logger
}

// NewRunner creates a runner with the given collaborators.
// If logger is nil, the package default logger is used.
func NewRunner(extractor PageExtractor, renderer docx.PageRenderer, logger *log.Logger) *Runner {
	return &Runner{
		Extractor: extractor,
		Renderer:  renderer,
		Logger:    applyLogger(logger),
	}
}

// Execute runs the complete extract → register → seal pipeline.
// Any stage failure aborts the run; the workspace directory is removed on
// every path, success and failure alike.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := r.Extractor.Check(); err != nil {
		return nil, err
	}

	ws, err := docx.NewWorkspace(r.Renderer, r.Logger)
	if err != nil {
		return nil, err
	}
	defer ws.Close()

	// Extracted SVGs land in their own scratch directory, separate from the
	// workspace media area, so a half-written file from a failed extraction
	// can never leak into the package.
	scratch, err := os.MkdirTemp("", "docxwrap-pages-")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "create extraction scratch directory")
	}
	defer os.RemoveAll(scratch)

	result := &Result{Output: opts.Output}

	if err := r.collectPages(ctx, opts.Source, scratch, ws, result); err != nil {
		return nil, err
	}
	if result.Pages == 0 {
		return nil, errors.New(errors.ErrCodeSourceInvalid, "no pages could be extracted from %s", opts.Source)
	}
	result.PageSize = ws.FirstPageSize()

	sealStart := time.Now()
	observability.Convert().OnSealStart(ctx, opts.Output)
	err = ws.Finalize(result.PageSize)
	if err == nil {
		err = docx.Seal(ws.Root(), opts.Output)
	}
	result.Stats.SealTime = time.Since(sealStart)
	observability.Convert().OnSealComplete(ctx, opts.Output, result.Pages, result.Stats.SealTime, err)
	if err != nil {
		return nil, err
	}

	r.Logger.Info("conversion complete",
		"pages", result.Pages,
		"output", opts.Output,
		"extract", result.Stats.ExtractTime.Round(time.Millisecond),
		"register", result.Stats.RegisterTime.Round(time.Millisecond),
		"seal", result.Stats.SealTime.Round(time.Millisecond))
	return result, nil
}

// collectPages extracts and registers pages in document order until the
// extractor reports exhaustion. Exhaustion on page N+1 means the document
// has N pages; any other failure aborts the run.
func (r *Runner) collectPages(ctx context.Context, source, scratch string, ws *docx.Workspace, result *Result) error {
	for page := 1; ; page++ {
		dest := filepath.Join(scratch, fmt.Sprintf("page%d.svg", page))

		extractStart := time.Now()
		observability.Convert().OnExtractStart(ctx, source, page)
		err := r.Extractor.ExtractPage(ctx, source, page, dest)
		extractDur := time.Since(extractStart)
		result.Stats.ExtractTime += extractDur
		observability.Convert().OnExtractComplete(ctx, source, page, extractDur, err)

		if stderrors.Is(err, pdf.ErrNoPage) {
			r.Logger.Debug("extraction exhausted", "pages", page-1)
			return nil
		}
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return errors.Wrap(errors.ErrCodeIO, ctx.Err(), "conversion canceled")
		}

		registerStart := time.Now()
		if err := ws.RegisterPage(ctx, dest); err != nil {
			return err
		}
		result.Stats.RegisterTime += time.Since(registerStart)
		result.Pages++
	}
}
