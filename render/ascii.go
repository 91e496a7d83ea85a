// Package render turns decoded images into terminal output: ASCII art and
// intensity histograms. It consumes an already-decoded image.Image; pixel
// decoding belongs to an image-decoding library, not to this package.
package render

import (
	"image"
	"math"
	"strings"

	"github.com/disintegration/imaging"
)

// Charset selects the ramp of characters used for ASCII rendering, ordered
// from dark to light.
type Charset int

const (
	// Standard is a short general-purpose ramp.
	Standard Charset = iota
	// Detailed is a long ramp with finer intensity steps.
	Detailed
	// Blocks uses Unicode block characters.
	Blocks
	// Reversed is the short ramp inverted, for dark terminal backgrounds.
	Reversed
)

var charsets = [...][]rune{
	Standard: []rune("@%#*+=-:. "),
	Detailed: []rune(`$@B%8&WM#*oahkbdpqwmZO0QLCJUYXzcvunxrjft/\|()1{}[]?-_+~<>i!lI;:,"^` + "`" + `'. `),
	Blocks:   []rune("█▓▒░ "),
	Reversed: []rune(" .:-=+*#%@"),
}

// Options controls ASCII rendering.
type Options struct {
	// MaxWidth and MaxHeight bound the character grid. Zero values default
	// to 80x24. The image's aspect ratio is preserved within these bounds.
	MaxWidth  int
	MaxHeight int
	// Charset selects the intensity ramp. Out-of-range values fall back to
	// Standard.
	Charset Charset
	// Gamma is the exponent applied to normalized intensity before charset
	// indexing. Zero defaults to 1.5.
	Gamma float64
}

// ASCII renders img as a grid of characters, one rune per cell, rows joined
// by newlines. The image is converted to grayscale and downscaled with
// Lanczos resampling to fit the requested bounds.
func ASCII(img image.Image, opts Options) string {
	if opts.MaxWidth <= 0 {
		opts.MaxWidth = 80
	}

	if opts.MaxHeight <= 0 {
		opts.MaxHeight = 24
	}

	if opts.Gamma <= 0 {
		opts.Gamma = 1.5
	}

	chars := charsets[Standard]
	if opts.Charset >= 0 && int(opts.Charset) < len(charsets) {
		chars = charsets[opts.Charset]
	}

	gray := imaging.Grayscale(img)

	bounds := gray.Bounds()
	cols, rows := fitBounds(bounds.Dx(), bounds.Dy(), opts.MaxWidth, opts.MaxHeight)
	gray = imaging.Resize(gray, cols, rows, imaging.Lanczos)

	var sb strings.Builder
	sb.Grow(rows * (cols + 1))

	for y := 0; y < rows; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}

		for x := 0; x < cols; x++ {
			// Grayscale output stores the luminance in every channel.
			v := gray.NRGBAAt(x, y).R

			corrected := math.Pow(float64(v)/255.0, opts.Gamma)
			idx := int(corrected * float64(len(chars)-1))

			if idx < 0 {
				idx = 0
			} else if idx > len(chars)-1 {
				idx = len(chars) - 1
			}

			sb.WriteRune(chars[idx])
		}
	}

	return sb.String()
}

// fitBounds scales (w, h) down to fit within (maxW, maxH), preserving the
// aspect ratio. Images already within bounds keep their size.
func fitBounds(w, h, maxW, maxH int) (int, int) {
	if w <= 0 || h <= 0 {
		return 1, 1
	}

	if w <= maxW && h <= maxH {
		return w, h
	}

	aspect := float64(w) / float64(h)

	cols := maxW
	rows := int(float64(cols) / aspect)

	if rows > maxH {
		rows = maxH
		cols = int(float64(rows) * aspect)
	}

	if cols < 1 {
		cols = 1
	}

	if rows < 1 {
		rows = 1
	}

	return cols, rows
}
