package docx

import (
	"regexp"
	"strings"
	"testing"
)

func TestBodyAppendPageExtents(t *testing.T) {
	var b Body
	b.AppendPage(0, 1, 720, 1018)

	xml := b.XML()
	// Inline extent and shape extent carry the same converted values.
	if got := strings.Count(xml, `cx="6858000" cy="9696450"`); got != 2 {
		t.Errorf("extent pair occurrences = %d, want 2\nxml: %s", got, xml)
	}
	if !strings.Contains(xml, `<a:blip r:embed="rId1">`) {
		t.Error("raster reference rId1 missing from blip fill")
	}
	if !strings.Contains(xml, `r:embed="rId0"/>`) {
		t.Error("vector reference rId0 missing from svgBlip extension")
	}
	if !strings.Contains(xml, `<wp:docPr id="0" name="0"/>`) {
		t.Error("docPr bookkeeping id not derived from vector identifier")
	}
}

func TestBodyOrderAndRefs(t *testing.T) {
	var b Body
	b.AppendPage(0, 1, 100, 100)
	b.AppendPage(2, 3, 200, 100)
	b.AppendPage(4, 5, 300, 100)

	if b.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", b.Len())
	}

	want := []int{0, 1, 2, 3, 4, 5}
	got := b.RefIDs()
	if len(got) != len(want) {
		t.Fatalf("RefIDs() length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("RefIDs()[%d] = %d, want %d", i, got[i], want[i])
		}
	}

	// Serialized order follows append order.
	xml := b.XML()
	first := strings.Index(xml, `cx="`+"952500"+`"`)
	second := strings.Index(xml, `cx="`+"1905000"+`"`)
	third := strings.Index(xml, `cx="`+"2857500"+`"`)
	if !(first < second && second < third) {
		t.Errorf("blocks out of order: offsets %d, %d, %d", first, second, third)
	}
}

func TestBodyRelationshipConsistency(t *testing.T) {
	var (
		b Body
		r Relationships
		a idAllocator
	)
	for page := 1; page <= 4; page++ {
		svgID := a.Next()
		pngID := a.Next()
		r.Register(svgID, "p.svg", MediaSVG)
		r.Register(pngID, "p.png", MediaPNG)
		b.AppendPage(svgID, pngID, 10, 10)
	}

	// The id set referenced by the body equals the id set in the index:
	// no orphan relationships, no dangling references.
	bodyRefs := make(map[int]bool)
	for _, id := range b.RefIDs() {
		bodyRefs[id] = true
	}
	relIDs := make(map[int]bool)
	for _, id := range r.IDs() {
		relIDs[id] = true
	}
	if len(bodyRefs) != len(relIDs) {
		t.Fatalf("body references %d ids, index holds %d", len(bodyRefs), len(relIDs))
	}
	for id := range bodyRefs {
		if !relIDs[id] {
			t.Errorf("body references id %d missing from relationship index", id)
		}
	}

	// Every rId in the serialized body appears in the serialized index.
	re := regexp.MustCompile(`r:embed="(rId\d+)"`)
	relXML := r.XML()
	for _, m := range re.FindAllStringSubmatch(b.XML(), -1) {
		if !strings.Contains(relXML, `Id="`+m[1]+`"`) {
			t.Errorf("serialized body references %s absent from manifest", m[1])
		}
	}
}
