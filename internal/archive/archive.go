// Package archive packs a built site directory into a zip file for download.
//
// Entries are written in lexical path order with forward-slash names relative
// to the directory, so the same tree always yields the same entry list.
package archive

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Dir zips the contents of dir and returns the archive bytes.
func Dir(ctx context.Context, dir string) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := Write(ctx, &buf, dir); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write streams a zip of dir to w and returns the number of files written.
// Directories get their own entries so empty ones survive extraction.
func Write(ctx context.Context, w io.Writer, dir string) (int, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return 0, fmt.Errorf("archive %s: %w", dir, err)
	}
	if !info.IsDir() {
		return 0, fmt.Errorf("archive %s: not a directory", dir)
	}

	fsys := os.DirFS(dir)
	zw := zip.NewWriter(w)
	files := 0

	err = fs.WalkDir(fsys, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if name == "." {
			return nil
		}
		if d.IsDir() {
			_, err := zw.CreateHeader(&zip.FileHeader{Name: name + "/", Method: zip.Store})
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if err := addFile(zw, fsys, name, d); err != nil {
			return fmt.Errorf("adding %s: %w", name, err)
		}
		files++
		return nil
	})
	if err != nil {
		zw.Close()
		return files, fmt.Errorf("archive %s: %w", dir, err)
	}
	if err := zw.Close(); err != nil {
		return files, fmt.Errorf("archive %s: %w", dir, err)
	}
	return files, nil
}

func addFile(zw *zip.Writer, fsys fs.FS, name string, d fs.DirEntry) error {
	info, err := d.Info()
	if err != nil {
		return err
	}
	hdr, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	hdr.Name = name
	hdr.Method = zip.Deflate

	dst, err := zw.CreateHeader(hdr)
	if err != nil {
		return err
	}
	src, err := fsys.Open(name)
	if err != nil {
		return err
	}
	defer src.Close()
	_, err = io.Copy(dst, src)
	return err
}
