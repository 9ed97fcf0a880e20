package imagebuf

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

var ErrUnsupportedFormat = errors.New("unsupported image format")

// Encode writes the gamma-encoded buffer in the given format ("bmp" or "png")
func (b *Buffer) Encode(w io.Writer, format string) error {
	img := b.ToRGBA(DefaultInverseGamma)

	var encode func(io.Writer, image.Image) error
	switch strings.ToLower(format) {
	case "bmp":
		encode = bmp.Encode
	case "png":
		encode = png.Encode
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err := encode(w, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return nil
}

// Save writes the buffer to path, choosing the format from the file extension
func (b *Buffer) Save(path string) error {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	switch strings.ToLower(format) {
	case "bmp", "png":
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := b.Encode(file, format); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
