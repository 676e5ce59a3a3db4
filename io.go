// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package blit

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG for DecodeSurface
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
)

// ErrEmptyData is returned when image data is empty.
var ErrEmptyData = errors.New("blit: empty image data")

// LoadSurface loads a PNG, JPEG or BMP file and converts it like
// SurfaceFromImage.
func LoadSurface(path string) (*Surface, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("blit: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return DecodeSurface(f)
}

// LoadSurfaceFromBytes decodes an in-memory image, auto-detecting the
// format.
func LoadSurfaceFromBytes(data []byte) (*Surface, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return DecodeSurface(bytes.NewReader(data))
}

// DecodeSurface decodes an image from r, auto-detecting the format.
func DecodeSurface(r io.Reader) (*Surface, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("blit: decode: %w", err)
	}
	return SurfaceFromImage(img)
}

// SavePNG writes the surface to a PNG file.
func (s *Surface) SavePNG(path string) error {
	return s.save(path, s.EncodePNG)
}

// SaveBMP writes the surface to a 24-bit BMP file.
func (s *Surface) SaveBMP(path string) error {
	return s.save(path, s.EncodeBMP)
}

func (s *Surface) save(path string, encode func(io.Writer) error) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("blit: create file: %w", err)
	}

	if err := encode(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// EncodePNG encodes the surface as PNG to w.
func (s *Surface) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, s); err != nil {
		return fmt.Errorf("blit: encode PNG: %w", err)
	}
	return nil
}

// EncodeBMP encodes the surface as BMP to w.
func (s *Surface) EncodeBMP(w io.Writer) error {
	if err := bmp.Encode(w, s); err != nil {
		return fmt.Errorf("blit: encode BMP: %w", err)
	}
	return nil
}
