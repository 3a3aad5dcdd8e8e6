package docx

import (
	"fmt"
	"strings"
)

// pageBlockTemplate is one page's entry in the document body: a paragraph
// holding a single inline drawing. The raster reference carries the image
// fill; the vector reference rides on the svgBlip extension layered on top,
// which SVG-aware viewers prefer. Substitutions, in order: bookkeeping id
// (docPr), extent width and height in EMU (the wp:extent and a:ext values
// must match exactly), raster reference id, vector reference id.
const pageBlockTemplate = `<w:p>` +
	`<w:pPr><w:widowControl/><w:jc w:val="left"/></w:pPr>` +
	`<w:r><w:rPr><w:noProof/></w:rPr>` +
	`<w:drawing>` +
	`<wp:inline distT="0" distB="0" distL="0" distR="0">` +
	`<wp:extent cx="%[2]d" cy="%[3]d"/>` +
	`<wp:effectExtent l="0" t="0" r="0" b="0"/>` +
	`<wp:docPr id="%[1]d" name="%[1]d"/>` +
	`<wp:cNvGraphicFramePr>` +
	`<a:graphicFrameLocks xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" noChangeAspect="1"/>` +
	`</wp:cNvGraphicFramePr>` +
	`<a:graphic xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">` +
	`<a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/picture">` +
	`<pic:pic xmlns:pic="http://schemas.openxmlformats.org/drawingml/2006/picture">` +
	`<pic:nvPicPr><pic:cNvPr id="1" name=""/><pic:cNvPicPr/></pic:nvPicPr>` +
	`<pic:blipFill>` +
	`<a:blip r:embed="%[4]s">` +
	`<a:extLst>` +
	`<a:ext uri="{96DAC541-7B7A-43D3-8B79-37D633B846F1}">` +
	`<asvg:svgBlip xmlns:asvg="http://schemas.microsoft.com/office/drawing/2016/SVG/main" r:embed="%[5]s"/>` +
	`</a:ext>` +
	`</a:extLst>` +
	`</a:blip>` +
	`<a:stretch><a:fillRect/></a:stretch>` +
	`</pic:blipFill>` +
	`<pic:spPr>` +
	`<a:xfrm><a:off x="0" y="0"/><a:ext cx="%[2]d" cy="%[3]d"/></a:xfrm>` +
	`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom>` +
	`</pic:spPr>` +
	`</pic:pic>` +
	`</a:graphicData>` +
	`</a:graphic>` +
	`</wp:inline>` +
	`</w:drawing>` +
	`</w:r>` +
	`</w:p>`

// Body accumulates the document's page blocks in reading order. Blocks are
// append-only; their order defines page order and must match the source.
type Body struct {
	blocks []string
	refs   []int
}

// AppendPage adds one page block referencing the vector and raster
// identifiers, with extents converted from the page's intrinsic pixel size.
// The docPr bookkeeping id is derived from the vector identifier.
func (b *Body) AppendPage(vectorID, rasterID int, widthPx, heightPx float64) {
	block := fmt.Sprintf(pageBlockTemplate,
		vectorID, EMU(widthPx), EMU(heightPx), refID(rasterID), refID(vectorID))
	b.blocks = append(b.blocks, block)
	b.refs = append(b.refs, vectorID, rasterID)
}

// Len returns the number of appended page blocks.
func (b *Body) Len() int {
	return len(b.blocks)
}

// RefIDs returns every identifier referenced by the appended blocks, in
// reference order (vector before raster, page by page).
func (b *Body) RefIDs() []int {
	ids := make([]int, len(b.refs))
	copy(ids, b.refs)
	return ids
}

// XML serializes the accumulated blocks for splicing into the document body.
func (b *Body) XML() string {
	return strings.Join(b.blocks, "")
}
