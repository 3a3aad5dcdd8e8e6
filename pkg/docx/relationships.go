package docx

import (
	"fmt"
	"strings"
)

// imageRelType is the OOXML relationship type shared by every embedded image,
// vector and raster alike.
const imageRelType = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"

// MediaKind distinguishes the two representations a page asset can take.
type MediaKind string

const (
	MediaSVG MediaKind = "svg"
	MediaPNG MediaKind = "png"
)

// Relationship maps an identifier to an asset stored in the media area.
type Relationship struct {
	ID     int
	Target string // path relative to word/, e.g. "media/page1.svg"
	Kind   MediaKind
}

// Relationships is the ordered, append-only relationship index for one build
// session. Entries are emitted in insertion order; uniqueness of identifiers
// is guaranteed by the allocator, not re-checked here.
type Relationships struct {
	entries []Relationship
}

// Register appends one entry referencing filename inside the media directory.
func (r *Relationships) Register(id int, filename string, kind MediaKind) {
	r.entries = append(r.entries, Relationship{
		ID:     id,
		Target: "media/" + filename,
		Kind:   kind,
	})
}

// Len returns the number of registered entries.
func (r *Relationships) Len() int {
	return len(r.entries)
}

// IDs returns the registered identifiers in insertion order.
func (r *Relationships) IDs() []int {
	ids := make([]int, len(r.entries))
	for i, e := range r.entries {
		ids[i] = e.ID
	}
	return ids
}

// XML serializes the index as the sequence of self-closing Relationship
// elements spliced into the document's relationship manifest.
func (r *Relationships) XML() string {
	var b strings.Builder
	for _, e := range r.entries {
		fmt.Fprintf(&b, `<Relationship Id=%q Type=%q Target=%q/>`, refID(e.ID), imageRelType, e.Target)
	}
	return b.String()
}
