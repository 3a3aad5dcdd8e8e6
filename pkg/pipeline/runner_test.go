package pipeline

import (
	"archive/zip"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/docxwrap/docxwrap/pkg/docx"
	apperrors "github.com/docxwrap/docxwrap/pkg/errors"
	"github.com/docxwrap/docxwrap/pkg/pdf"
)

// stubExtractor fakes the external tool: pages up to maxPages succeed,
// later pages report exhaustion.
type stubExtractor struct {
	maxPages int
	checkErr error
	extracts int
}

func (s *stubExtractor) Check() error { return s.checkErr }

func (s *stubExtractor) ExtractPage(ctx context.Context, source string, page int, dest string) error {
	s.extracts++
	if page > s.maxPages {
		return pdf.ErrNoPage
	}
	svg := `<svg xmlns="http://www.w3.org/2000/svg" width="720" height="1018"></svg>`
	return os.WriteFile(dest, []byte(svg), 0o644)
}

// stubRenderer avoids a real rasterizer in pipeline tests.
type stubRenderer struct{}

func (stubRenderer) Render(ctx context.Context, data []byte) (docx.Size, []byte, error) {
	return docx.Size{Width: 720, Height: 1018}, []byte("png-bytes"), nil
}

func newTestRunner(extractor PageExtractor) *Runner {
	return NewRunner(extractor, stubRenderer{}, log.New(io.Discard))
}

func TestExecuteTwoPages(t *testing.T) {
	runner := newTestRunner(&stubExtractor{maxPages: 2})
	output := filepath.Join(t.TempDir(), "out.docx")

	result, err := runner.Execute(context.Background(), Options{Source: "doc.pdf", Output: output})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if result.Pages != 2 {
		t.Errorf("Pages = %d, want 2", result.Pages)
	}
	if result.PageSize != (docx.Size{Width: 720, Height: 1018}) {
		t.Errorf("PageSize = %v", result.PageSize)
	}

	zr, err := zip.OpenReader(output)
	if err != nil {
		t.Fatalf("output is not a readable archive: %v", err)
	}
	defer zr.Close()

	var doc, rels string
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatal(err)
		}
		switch f.Name {
		case "word/document.xml":
			doc = string(data)
		case "word/_rels/document.xml.rels":
			rels = string(data)
		}
	}

	if got := strings.Count(doc, "<w:drawing>"); got != 2 {
		t.Errorf("page blocks in archive = %d, want 2", got)
	}
	if got := strings.Count(rels, "<Relationship "); got != 4 {
		t.Errorf("relationships in archive = %d, want 4", got)
	}
	for _, id := range []string{"rId0", "rId1", "rId2", "rId3"} {
		if !strings.Contains(rels, `Id="`+id+`"`) {
			t.Errorf("relationship %s missing", id)
		}
	}
}

func TestExecuteEmptySource(t *testing.T) {
	runner := newTestRunner(&stubExtractor{maxPages: 0})
	output := filepath.Join(t.TempDir(), "out.docx")

	_, err := runner.Execute(context.Background(), Options{Source: "doc.pdf", Output: output})
	if apperrors.GetCode(err) != apperrors.ErrCodeSourceInvalid {
		t.Errorf("code = %v, want SOURCE_INVALID", apperrors.GetCode(err))
	}
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Error("no archive should be written for an invalid source")
	}
}

func TestExecuteExtractorMissing(t *testing.T) {
	checkErr := apperrors.New(apperrors.ErrCodeExtractorNotFound, "tool missing")
	runner := newTestRunner(&stubExtractor{checkErr: checkErr})

	_, err := runner.Execute(context.Background(), Options{Source: "doc.pdf", Output: "out.docx"})
	if apperrors.GetCode(err) != apperrors.ErrCodeExtractorNotFound {
		t.Errorf("code = %v, want EXTRACTOR_NOT_FOUND", apperrors.GetCode(err))
	}
}

func TestExecuteStopsAtExhaustion(t *testing.T) {
	ext := &stubExtractor{maxPages: 3}
	runner := newTestRunner(ext)
	output := filepath.Join(t.TempDir(), "out.docx")

	result, err := runner.Execute(context.Background(), Options{Source: "doc.pdf", Output: output})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if result.Pages != 3 {
		t.Errorf("Pages = %d, want 3", result.Pages)
	}
	// One probe past the last page, never more.
	if ext.extracts != 4 {
		t.Errorf("extract invocations = %d, want 4", ext.extracts)
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		ok   bool
	}{
		{"valid", Options{Source: "a.pdf", Output: "b.docx"}, true},
		{"missing source", Options{Output: "b.docx"}, false},
		{"missing output", Options{Source: "a.pdf"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && apperrors.GetCode(err) != apperrors.ErrCodeInvalidInput {
				t.Errorf("code = %v, want INVALID_INPUT", apperrors.GetCode(err))
			}
		})
	}
}
