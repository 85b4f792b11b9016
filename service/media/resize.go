// Package media processes uploaded images: proportional downscaling of
// over-large files and optional WebP encoding.
package media

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// ResizeOptions bounds the stored image dimensions. A zero value disables
// the corresponding bound.
type ResizeOptions struct {
	MaxWidth  int
	MaxHeight int
	// ToWebP re-encodes the result as WebP regardless of input format.
	ToWebP  bool
	Quality float32
}

// Result is a processed image ready for storage.
type Result struct {
	Data    []byte
	Format  string
	Width   int
	Height  int
	Resized bool
	// OrigWidth/OrigHeight are the dimensions before any resize.
	OrigWidth  int
	OrigHeight int
}

// ShouldResize reports whether an image of the given size exceeds the bounds.
func ShouldResize(width, height int, opts ResizeOptions) bool {
	return (opts.MaxWidth > 0 && width > opts.MaxWidth) ||
		(opts.MaxHeight > 0 && height > opts.MaxHeight)
}

// TargetSize computes the proportionally scaled size fitting the bounds.
func TargetSize(width, height int, opts ResizeOptions) (int, int) {
	maxW := opts.MaxWidth
	if maxW == 0 {
		maxW = width
	}
	maxH := opts.MaxHeight
	if maxH == 0 {
		maxH = height
	}
	widthDivider := float64(width) / float64(maxW)
	heightDivider := float64(height) / float64(maxH)
	divider := widthDivider
	if heightDivider > divider {
		divider = heightDivider
	}
	return int(float64(width) / divider), int(float64(height) / divider)
}

// Process decodes r, downscales when the bounds are exceeded and re-encodes.
// A failed resize falls back to the original bytes with an error log; only
// undecodable input is a hard error.
func Process(r io.Reader, opts ResizeOptions) (*Result, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	img, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	bounds := img.Bounds()
	res := &Result{
		Data:       raw,
		Format:     format,
		Width:      bounds.Dx(),
		Height:     bounds.Dy(),
		OrigWidth:  bounds.Dx(),
		OrigHeight: bounds.Dy(),
	}

	if ShouldResize(res.Width, res.Height, opts) {
		w, h := TargetSize(res.Width, res.Height, opts)
		resized := imaging.Resize(img, w, h, imaging.Lanczos)
		data, encErr := encode(resized, format, opts)
		if encErr != nil {
			// Keep the original; a too-large image beats a broken one
			log.Printf("media.Process: could not resize image: %v", encErr)
			return res, nil
		}
		res.Data = data
		res.Width = w
		res.Height = h
		res.Resized = true
		if opts.ToWebP {
			res.Format = "webp"
		}
		return res, nil
	}

	if opts.ToWebP && format != "webp" {
		data, encErr := encodeWebP(img, opts.Quality)
		if encErr != nil {
			log.Printf("media.Process: could not encode webp: %v", encErr)
			return res, nil
		}
		res.Data = data
		res.Format = "webp"
	}
	return res, nil
}

func encode(img image.Image, format string, opts ResizeOptions) ([]byte, error) {
	if opts.ToWebP {
		return encodeWebP(img, opts.Quality)
	}
	f, err := imaging.FormatFromExtension("." + format)
	if err != nil {
		f = imaging.JPEG
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeWebP(img image.Image, quality float32) ([]byte, error) {
	if quality == 0 {
		quality = 85
	}
	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Ext returns the file extension for a decoded format name.
func Ext(format string) string {
	return "." + strings.ToLower(format)
}
