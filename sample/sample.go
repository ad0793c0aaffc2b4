// Package sample loads and saves the bitmaps the generator reads and
// writes, over an abstract billy filesystem: osfs in the binary, memfs in
// tests.
//
// Saves go to a temporary file in the target directory which is then
// renamed into place, so readers never observe a half-written image.
package sample

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"path"

	"go.uber.org/multierr"
	billy "gopkg.in/src-d/go-billy.v4"
)

// ErrNotPNG indicates a file that does not start with the PNG signature.
var ErrNotPNG = errors.New("sample: not a PNG file")

// pngSignature is the 8-byte magic number every PNG starts with.
var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// Store reads and writes PNG images relative to the root of a filesystem.
type Store struct {
	// FS is the directory images are loaded from and saved to.
	FS billy.Filesystem
}

// LoadImage decodes the PNG file name.
func (s *Store) LoadImage(name string) (img image.Image, err error) {
	f, err := s.FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	r := bufio.NewReader(f)
	head, err := r.Peek(len(pngSignature))
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("sample: read %s: %w", name, err)
	}
	if !bytes.Equal(head, pngSignature) {
		return nil, fmt.Errorf("%w: %s", ErrNotPNG, name)
	}

	img, err = png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("sample: decode %s: %w", name, err)
	}

	return img, nil
}

// SaveImage encodes img as PNG to name, creating parent directories.
//
// The image is written to a temporary sibling first and renamed into place;
// on failure the temporary file is removed and every error is reported.
func (s *Store) SaveImage(name string, img image.Image) error {
	dir := path.Dir(name)
	if dir != "." {
		if err := s.FS.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	temp, err := s.FS.TempFile(dir, path.Base(name)+".tmp")
	if err != nil {
		return err
	}

	w := bufio.NewWriter(temp)
	err = png.Encode(w, img)
	err = multierr.Append(err, w.Flush())
	err = multierr.Append(err, temp.Close())
	if err != nil {
		return multierr.Append(err, s.FS.Remove(temp.Name()))
	}

	return s.FS.Rename(temp.Name(), name)
}
