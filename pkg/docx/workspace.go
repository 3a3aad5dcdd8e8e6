package docx

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/docxwrap/docxwrap/pkg/errors"
	"github.com/docxwrap/docxwrap/pkg/observability"
)

// Size is a page's intrinsic dimensions in reference pixels (96 per inch).
type Size struct {
	Width  float64
	Height float64
}

// PageRenderer produces a page's raster fallback. Given the raw SVG bytes it
// returns the intrinsic pixel size and an encoded PNG rendered at that size.
// Malformed vector input surfaces as an IMAGE_ERROR.
type PageRenderer interface {
	Render(ctx context.Context, data []byte) (Size, []byte, error)
}

// Workspace is one build session's scratch directory, seeded from the
// embedded skeleton and owned exclusively until Close. Pages are registered
// one at a time; registration allocates the page's two identifiers, writes
// both asset files into the media area, and appends to the relationship index
// and body builder. Finalize splices the accumulated XML into the skeleton
// parts; Seal then turns the tree into the deliverable archive.
//
// Not safe for concurrent use: identifier order and block order are
// load-bearing, so page registration is strictly sequential.
type Workspace struct {
	id       string
	root     string
	media    string
	renderer PageRenderer
	logger   *log.Logger

	ids  idAllocator
	rels Relationships
	body Body

	pages     int
	firstPage Size

	closeOnce sync.Once
}

// NewWorkspace creates a fresh workspace directory and materializes the
// skeleton into it. The caller owns the workspace and must Close it; Close is
// safe to defer immediately and runs on failure paths too.
func NewWorkspace(renderer PageRenderer, logger *log.Logger) (*Workspace, error) {
	if logger == nil {
		logger = log.Default()
	}
	id := uuid.NewString()
	root := filepath.Join(os.TempDir(), "docxwrap-"+id)
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "create workspace directory")
	}
	w := &Workspace{
		id:       id,
		root:     root,
		media:    filepath.Join(root, filepath.FromSlash(mediaDir)),
		renderer: renderer,
		logger:   logger,
	}
	if err := materializeSkeleton(root); err != nil {
		w.Close()
		return nil, err
	}
	logger.Debug("workspace materialized", "id", id, "root", root)
	return w, nil
}

// ID returns the session identifier, used for logging and scratch naming.
func (w *Workspace) ID() string { return w.id }

// Root returns the workspace directory path.
func (w *Workspace) Root() string { return w.root }

// MediaPath returns the path a media file with the given name would occupy.
func (w *Workspace) MediaPath(name string) string {
	return filepath.Join(w.media, name)
}

// PageCount returns the number of registered pages.
func (w *Workspace) PageCount() int { return w.pages }

// FirstPageSize returns the intrinsic size of the first registered page.
// The zero Size is returned before any page is registered.
func (w *Workspace) FirstPageSize() Size { return w.firstPage }

// RegisterPage reads the page's SVG, renders its PNG fallback, copies both
// into the media area, and records the page in the relationship index and
// body builder. The vector asset always receives the lower of the page's two
// identifiers. Pages must be registered in document order.
func (w *Workspace) RegisterPage(ctx context.Context, svgPath string) error {
	data, err := os.ReadFile(svgPath)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "read page %s", svgPath)
	}

	size, pngData, err := w.renderer.Render(ctx, data)
	if err != nil {
		return err
	}

	svgName := filepath.Base(svgPath)
	pngName := rasterSibling(svgName)

	if err := os.WriteFile(w.MediaPath(pngName), pngData, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write raster fallback %s", pngName)
	}
	if err := w.copyIntoMedia(svgPath, svgName, data); err != nil {
		return err
	}

	svgID := w.ids.Next()
	pngID := w.ids.Next()
	w.rels.Register(svgID, svgName, MediaSVG)
	w.rels.Register(pngID, pngName, MediaPNG)
	w.body.AppendPage(svgID, pngID, size.Width, size.Height)

	if w.pages == 0 {
		w.firstPage = size
	}
	w.pages++

	w.logger.Info("registered page",
		"page", w.pages,
		"width", size.Width,
		"height", size.Height,
		"ids", []int{svgID, pngID})
	observability.Convert().OnPageRegistered(ctx, w.pages, size.Width, size.Height)
	return nil
}

// copyIntoMedia places the SVG bytes into the media area. A source already at
// its destination is left alone.
func (w *Workspace) copyIntoMedia(src, name string, data []byte) error {
	dst := w.MediaPath(name)
	if abs, err := filepath.Abs(src); err == nil && abs == dst {
		return nil
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "copy vector asset %s", name)
	}
	return nil
}

// Finalize injects the document page size and splices the accumulated body
// and relationship XML into the skeleton parts. Page geometry applies to
// every page, taken from whatever size the caller selected (the first page's
// intrinsic size by convention, even when later pages differ).
func (w *Workspace) Finalize(size Size) error {
	doc := filepath.Join(w.root, filepath.FromSlash(documentPart))
	rels := filepath.Join(w.root, filepath.FromSlash(relationshipsPart))

	if err := spliceOnce(doc, tokenPageWidth, strconv.FormatInt(Twips(size.Width), 10)); err != nil {
		return err
	}
	if err := spliceOnce(doc, tokenPageHeight, strconv.FormatInt(Twips(size.Height), 10)); err != nil {
		return err
	}
	if err := spliceOnce(doc, tokenBody, w.body.XML()); err != nil {
		return err
	}
	if err := spliceOnce(rels, tokenRelationships, w.rels.XML()); err != nil {
		return err
	}
	w.logger.Debug("workspace finalized", "pages", w.pages, "relationships", w.rels.Len())
	return nil
}

// Close deletes the workspace directory and everything under it. It runs at
// most once; deletion failure is logged, never propagated, so Close is safe
// on every error path.
func (w *Workspace) Close() {
	w.closeOnce.Do(func() {
		if err := os.RemoveAll(w.root); err != nil {
			w.logger.Warn("failed to remove workspace", "root", w.root, "error", err)
		}
	})
}

// rasterSibling derives the PNG filename registered alongside an SVG asset.
func rasterSibling(svgName string) string {
	return strings.TrimSuffix(svgName, ".svg") + ".png"
}
