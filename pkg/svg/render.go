// Package svg rasterizes page SVGs into their PNG fallbacks.
//
// Parsing and rasterization happen in-process via oksvg and rasterx. The
// intrinsic size always comes from a fresh parse of the SVG bytes (parsing
// doubles as input validation); only the expensive rasterization step is
// cached, keyed by the SHA-256 of the SVG content.
package svg

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"math"
	"time"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/docxwrap/docxwrap/pkg/cache"
	"github.com/docxwrap/docxwrap/pkg/docx"
	"github.com/docxwrap/docxwrap/pkg/errors"
	"github.com/docxwrap/docxwrap/pkg/observability"
)

// cacheTTL bounds how long rendered pages are kept. Page SVGs are immutable
// for a given source, so the TTL exists only to stop the cache growing
// without bound.
const cacheTTL = 30 * 24 * time.Hour

// Renderer turns SVG bytes into intrinsic dimensions plus an encoded PNG.
// The zero value renders without caching; use NewRenderer to attach a cache.
type Renderer struct {
	cache cache.Cache
	keyer cache.Keyer
	ttl   time.Duration
}

// NewRenderer creates a renderer backed by the given cache.
// A nil cache disables caching.
func NewRenderer(c cache.Cache) *Renderer {
	if c == nil {
		c = cache.NewNullCache()
	}
	return &Renderer{cache: c, keyer: cache.NewDefaultKeyer(), ttl: cacheTTL}
}

// SetCacheTTL overrides how long rendered pages stay cached.
func (r *Renderer) SetCacheTTL(d time.Duration) {
	r.ttl = d
}

// Render parses the SVG, reads its intrinsic pixel size, and rasterizes it at
// that size. Unparseable or unrenderable input returns an IMAGE_ERROR.
func (r *Renderer) Render(ctx context.Context, data []byte) (docx.Size, []byte, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return docx.Size{}, nil, errors.Wrap(errors.ErrCodeImage, err, "parse svg")
	}

	size := docx.Size{Width: icon.ViewBox.W, Height: icon.ViewBox.H}
	w := int(math.Ceil(size.Width))
	h := int(math.Ceil(size.Height))
	if w <= 0 || h <= 0 {
		return docx.Size{}, nil, errors.New(errors.ErrCodeImage, "svg has no intrinsic size")
	}

	key := ""
	if r.cache != nil {
		key = r.keyer.RenderKey(cache.Hash(data))
		if cached, hit, err := r.cache.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "render")
			return size, cached, nil
		}
		observability.Cache().OnCacheMiss(ctx, "render")
	}

	encoded, err := rasterize(icon, w, h)
	if err != nil {
		return docx.Size{}, nil, err
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, key, encoded, r.ttl); err == nil {
			observability.Cache().OnCacheSet(ctx, "render", len(encoded))
		}
	}
	return size, encoded, nil
}

// rasterize draws the icon at the given pixel size and encodes it as PNG.
func rasterize(icon *oksvg.SvgIcon, w, h int) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	dasher := rasterx.NewDasher(w, h, scanner)

	icon.SetTarget(0, 0, float64(w), float64(h))
	icon.Draw(dasher, 1.0)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(errors.ErrCodeImage, err, "encode png")
	}
	return buf.Bytes(), nil
}
