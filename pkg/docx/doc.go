// Package docx assembles a DOCX package that embeds one image per page.
//
// Each page exists in two representations: the original SVG and a PNG
// fallback rendered at the page's intrinsic pixel size. Both are copied into
// the package's media area, registered in the relationship manifest, and
// referenced from a single drawing block in the document body. Viewers that
// understand SVG render the vector image; older viewers fall back to the PNG.
//
// A build session is owned by a Workspace: a temporary directory seeded from
// the embedded skeleton, mutated by page registrations, finalized by splicing
// the accumulated body and relationship XML into the skeleton files, and
// sealed into a single zip archive. The Workspace directory is removed when
// the session closes, on success and failure alike.
package docx
