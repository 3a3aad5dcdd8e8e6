// Package pdf extracts single pages from a PDF as SVG files by shelling out
// to Inkscape, one blocking subprocess per page.
//
// Page exhaustion is detected heuristically: Inkscape writes to stderr when
// asked for a page the document doesn't have, so a non-empty stderr stream is
// interpreted as "no such page" and surfaces as ErrNoPage. This conflates
// genuine tool errors with running off the end of the document; it is kept
// because Inkscape offers no cheap way to report the page count up front.
// Treat any change to this behavior as a compatibility break.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	"github.com/docxwrap/docxwrap/pkg/errors"
)

// DefaultBinary is the extraction tool looked up on PATH when the
// configuration doesn't name one.
const DefaultBinary = "inkscape"

// ErrNoPage reports that the requested page does not exist in the source.
// The pipeline uses it as the end-of-document signal.
var ErrNoPage = errors.New(errors.ErrCodeSourceInvalid, "no such page")

// Extractor invokes the external extraction tool.
type Extractor struct {
	binary string
}

// NewExtractor creates an extractor using the given binary name or path.
// An empty binary selects DefaultBinary.
func NewExtractor(binary string) *Extractor {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Extractor{binary: binary}
}

// Binary returns the configured tool name.
func (e *Extractor) Binary() string { return e.binary }

// Check verifies the extraction tool exists on PATH. A missing tool is a
// distinct failure kind from any later invocation error.
func (e *Extractor) Check() error {
	if _, err := exec.LookPath(e.binary); err != nil {
		return errors.Wrap(errors.ErrCodeExtractorNotFound, err, "extraction tool %q not found", e.binary)
	}
	return nil
}

// ExtractPage renders page (1-based) of source to an SVG file at dest.
// Returns ErrNoPage when the tool's stderr indicates the page doesn't exist.
// The subprocess blocks until the tool exits; there is no timeout beyond
// context cancellation.
func (e *Extractor) ExtractPage(ctx context.Context, source string, page int, dest string) error {
	args := []string{
		fmt.Sprintf("--pdf-page=%d", page),
		"--export-type=svg",
		"--export-plain-svg",
		fmt.Sprintf("--export-filename=%s", dest),
		source,
	}
	cmd := exec.CommandContext(ctx, e.binary, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if stderr.Len() > 0 {
		// The exhaustion heuristic: diagnostics mean the page isn't there.
		return ErrNoPage
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "run %s for page %d", e.binary, page)
	}
	return nil
}
