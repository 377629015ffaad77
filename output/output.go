// Package output develops a sample image into 8-bit pictures.
package output

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"strings"

	"spheretrace/sampleimage"
	"spheretrace/vmath/vec3"
)

// quantize averages, gamma-encodes, and clamps a pixel to [0, 255].
func quantize(mean vec3.T, gamma float64) [3]uint8 {
	var out [3]uint8
	for i, x := range mean {
		if math.IsNaN(x) || x < 0 {
			x = 0
		}
		if gamma > 0 && gamma != 1 {
			x = math.Pow(x, 1/gamma)
		}
		x = math.Min(x, 0.999)
		out[i] = uint8(256 * x)
	}
	return out
}

// WritePPM writes im as a plain-text (P3) portable pixmap, top row first.
func WritePPM(w io.Writer, im *sampleimage.SampleImage, gamma float64) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", im.ColSize, im.RowSize); err != nil {
		return fmt.Errorf("while writing PPM header: %w", err)
	}

	for r := 0; r < im.RowSize; r++ {
		for c := 0; c < im.ColSize; c++ {
			px := quantize(im.Mean(r, c), gamma)
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", px[0], px[1], px[2]); err != nil {
				return fmt.Errorf("while writing pixel (%d, %d): %w", r, c, err)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while flushing PPM: %w", err)
	}
	return nil
}

func RGBA(im *sampleimage.SampleImage, gamma float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, im.ColSize, im.RowSize))
	for r := 0; r < im.RowSize; r++ {
		for c := 0; c < im.ColSize; c++ {
			px := quantize(im.Mean(r, c), gamma)
			img.SetRGBA(c, r, color.RGBA{R: px[0], G: px[1], B: px[2], A: 255})
		}
	}
	return img
}

func WritePNG(w io.Writer, im *sampleimage.SampleImage, gamma float64) error {
	if err := png.Encode(w, RGBA(im, gamma)); err != nil {
		return fmt.Errorf("while encoding PNG: %w", err)
	}
	return nil
}

// Format names an output encoding.
type Format string

const (
	FormatPPM Format = "ppm"
	FormatPNG Format = "png"
)

// ParseFormat accepts a format name in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatPPM, FormatPNG:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want %q or %q)", s, FormatPPM, FormatPNG)
	}
}

func Write(w io.Writer, im *sampleimage.SampleImage, format Format, gamma float64) error {
	switch format {
	case FormatPPM:
		return WritePPM(w, im, gamma)
	case FormatPNG:
		return WritePNG(w, im, gamma)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
