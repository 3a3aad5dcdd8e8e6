package docx

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/docxwrap/docxwrap/pkg/errors"
)

// The skeleton is the fixed DOCX boilerplate every package starts from: the
// content-type manifest, the package relationship file, and the two document
// parts carrying the splice placeholders. It ships embedded in the binary and
// is copied verbatim into each session's workspace.
//
//go:embed all:skeleton
var skeletonFS embed.FS

// Placeholder tokens inside the skeleton parts. Each must occur exactly once
// in its file; anything else means the shipped skeleton is broken.
const (
	tokenBody          = "{{BODY}}"
	tokenRelationships = "{{RELATIONSHIPS}}"
	tokenPageWidth     = "{{PAGE_WIDTH}}"
	tokenPageHeight    = "{{PAGE_HEIGHT}}"
)

// Skeleton-relative part paths used by the splice step.
const (
	documentPart      = "word/document.xml"
	relationshipsPart = "word/_rels/document.xml.rels"
	mediaDir          = "word/media"
)

// materializeSkeleton copies the embedded skeleton tree into root and creates
// the empty media directory pages are copied into.
func materializeSkeleton(root string) error {
	err := fs.WalkDir(skeletonFS, "skeleton", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel := strings.TrimPrefix(path, "skeleton")
		rel = strings.TrimPrefix(rel, "/")
		dst := filepath.Join(root, filepath.FromSlash(rel))
		if d.IsDir() {
			return os.MkdirAll(dst, 0o755)
		}
		data, err := skeletonFS.ReadFile(path)
		if err != nil {
			return err
		}
		return os.WriteFile(dst, data, 0o644)
	})
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "materialize skeleton into %s", root)
	}
	if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(mediaDir)), 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create media directory")
	}
	return nil
}

// spliceOnce replaces the single occurrence of token in the file at path.
// Zero or multiple occurrences indicate a corrupt skeleton and are fatal.
func spliceOnce(path, token, replacement string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "read %s", filepath.Base(path))
	}
	content := string(data)
	if n := strings.Count(content, token); n != 1 {
		return errors.New(errors.ErrCodeSkeleton,
			"placeholder %s occurs %d times in %s, want exactly 1", token, n, filepath.Base(path))
	}
	content = strings.Replace(content, token, replacement, 1)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", filepath.Base(path))
	}
	return nil
}
