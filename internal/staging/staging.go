// Package staging holds generated images on local disk between the
// inference call and the upload to the asset host.
package staging

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

type Stager struct {
	dir    string
	width  int
	height int
}

// File is a staged image. Release must be called on every exit path.
type File struct {
	Path string
}

func New(dir string, width, height int) *Stager {
	return &Stager{
		dir:    dir,
		width:  width,
		height: height,
	}
}

// Stage decodes data, crops and scales it to the configured size when the
// model returned other dimensions, and writes it as a PNG file named by a
// random UUID. Images in a format imaging cannot decode (webp, avif) are
// staged byte for byte under their detected extension, unresized.
func (s *Stager) Stage(data []byte) (*File, error) {
	const op = "staging.Stage"

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		mtype := mimetype.Detect(data)
		if !strings.HasPrefix(mtype.String(), "image/") {
			return nil, fmt.Errorf("%s: decode image: %w", op, err)
		}

		return s.stageRaw(data, mtype.Extension())
	}

	if b := img.Bounds(); b.Dx() != s.width || b.Dy() != s.height {
		img = imaging.Fill(img, s.width, s.height, imaging.Center, imaging.Lanczos)
	}

	path, err := s.newPath(".png")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = imaging.Save(img, path); err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &File{Path: path}, nil
}

func (s *Stager) stageRaw(data []byte, ext string) (*File, error) {
	const op = "staging.stageRaw"

	path, err := s.newPath(ext)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = os.WriteFile(path, data, 0o644); err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &File{Path: path}, nil
}

func (s *Stager) newPath(ext string) (string, error) {
	if err := os.MkdirAll(s.dir, os.ModePerm); err != nil {
		return "", err
	}

	return filepath.Join(s.dir, fmt.Sprintf("final-output-%s%s", uuid.New(), ext)), nil
}

func (f *File) Release() error {
	if err := os.Remove(f.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("staging.Release: %w", err)
	}

	return nil
}
