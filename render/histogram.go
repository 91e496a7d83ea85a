package render

import (
	"fmt"
	"image"
	"io"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/disintegration/imaging"
)

// barWidth is the width in characters of the longest histogram bar.
const barWidth = 40

// Histogram writes terminal histograms of img to w: the overall luminosity
// distribution first and, for color images, one histogram per RGB channel.
// bins selects the bucket count; values below one default to 16.
func Histogram(w io.Writer, img image.Image, bins int) error {
	if bins < 1 {
		bins = 16
	}

	if _, err := fmt.Fprintln(w, "Overall (Luminosity)"); err != nil {
		return err
	}

	lum := luminosityValues(img)
	if err := histogram.Fprint(w, histogram.Hist(bins, lum), histogram.Linear(barWidth)); err != nil {
		return err
	}

	if isGrayscale(img) {
		return nil
	}

	for i, name := range [...]string{"Red", "Green", "Blue"} {
		if _, err := fmt.Fprintf(w, "\n%s Channel\n", name); err != nil {
			return err
		}

		vals := channelValues(img, i)
		if err := histogram.Fprint(w, histogram.Hist(bins, vals), histogram.Linear(barWidth)); err != nil {
			return err
		}
	}

	return nil
}

func isGrayscale(img image.Image) bool {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return true
	}

	return false
}

// luminosityValues returns one 8-bit luminance value per pixel.
func luminosityValues(img image.Image) []float64 {
	gray := imaging.Grayscale(img)
	bounds := gray.Bounds()

	vals := make([]float64, 0, bounds.Dx()*bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			vals = append(vals, float64(gray.NRGBAAt(x, y).R))
		}
	}

	return vals
}

// channelValues returns one 8-bit sample per pixel for the given RGB
// channel index (0 red, 1 green, 2 blue).
func channelValues(img image.Image, channel int) []float64 {
	bounds := img.Bounds()

	vals := make([]float64, 0, bounds.Dx()*bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()

			var v uint32
			switch channel {
			case 0:
				v = r
			case 1:
				v = g
			default:
				v = b
			}

			vals = append(vals, float64(v>>8))
		}
	}

	return vals
}
