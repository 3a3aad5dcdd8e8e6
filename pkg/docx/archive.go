package docx

import (
	"archive/zip"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/docxwrap/docxwrap/pkg/errors"
)

// Seal walks the finalized workspace tree rooted at root and writes it as a
// single deflate-compressed zip archive at dest. The archive layout mirrors
// the directory tree exactly; empty directories are preserved as explicit
// entries. This is the last operation of a build session.
func Seal(root, dest string) error {
	out, err := os.Create(dest)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create archive %s", dest)
	}
	defer out.Close()

	zw := zip.NewWriter(out)

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)

		if d.IsDir() {
			_, err := zw.Create(name + "/")
			return err
		}

		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:   name,
			Method: zip.Deflate,
		})
		if err != nil {
			return err
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = io.Copy(w, f)
		return err
	})
	if walkErr != nil {
		return errors.Wrap(errors.ErrCodeIO, walkErr, "pack workspace into %s", dest)
	}

	if err := zw.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "finish archive %s", dest)
	}
	if err := out.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "close archive %s", dest)
	}
	return nil
}
