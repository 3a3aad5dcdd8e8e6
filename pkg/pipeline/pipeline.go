// Package pipeline drives the complete PDF → DOCX conversion.
//
// The pipeline has three stages:
//
//  1. Extract: pull pages out of the source PDF as SVG files, one subprocess
//     invocation per page, until the extractor reports exhaustion
//  2. Register: render each page's PNG fallback and record both assets in
//     the package workspace
//  3. Seal: finalize the workspace XML and write the DOCX archive
//
// Pages flow through strictly in document order, one at a time: identifier
// allocation order and content block order are correctness invariants, so
// nothing here is parallel.
//
// # Usage
//
//	runner := pipeline.NewRunner(extractor, renderer, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Source: "report.pdf",
//	    Output: "report.docx",
//	})
package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/docxwrap/docxwrap/pkg/docx"
	"github.com/docxwrap/docxwrap/pkg/errors"
)

// PageExtractor pulls single pages out of the source document as SVG files.
// Implementations signal page exhaustion with pdf.ErrNoPage.
type PageExtractor interface {
	// Check verifies the extraction tool is available before any work starts.
	Check() error

	// ExtractPage writes page (1-based) of source as an SVG file at dest.
	ExtractPage(ctx context.Context, source string, page int, dest string) error
}

// Options configures one conversion run.
type Options struct {
	// Source is the path of the PDF to convert.
	Source string

	// Output is the destination path of the DOCX archive.
	Output string
}

// Validate checks required fields.
func (o *Options) Validate() error {
	if o.Source == "" {
		return errors.New(errors.ErrCodeInvalidInput, "source path is required")
	}
	if o.Output == "" {
		return errors.New(errors.ErrCodeInvalidInput, "output path is required")
	}
	return nil
}

// Result contains the outputs of a conversion run.
type Result struct {
	// Pages is the number of pages embedded in the package.
	Pages int

	// PageSize is the document page geometry, taken from page 1.
	PageSize docx.Size

	// Output is the destination path the archive was written to.
	Output string

	// Stats contains timing information.
	Stats Stats
}

// Stats contains per-stage durations for one run.
type Stats struct {
	ExtractTime  time.Duration // subprocess extraction, all pages
	RegisterTime time.Duration // rendering + workspace registration, all pages
	SealTime     time.Duration // finalize + archive write
}

// applyLogger returns l or the package default.
func applyLogger(l *log.Logger) *log.Logger {
	if l == nil {
		return log.Default()
	}
	return l
}
