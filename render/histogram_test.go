package render

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHistogramGrayscale(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 8, 8))
	for i := range img.Pix {
		img.Pix[i] = uint8(i * 4)
	}

	var buf bytes.Buffer
	require.NoError(t, Histogram(&buf, img, 8))

	out := buf.String()
	require.Contains(t, out, "Overall (Luminosity)")
	require.NotContains(t, out, "Red Channel")
	require.NotContains(t, out, "Green Channel")
	require.NotContains(t, out, "Blue Channel")
}

func TestHistogramColor(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 60), G: uint8(y * 60), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, Histogram(&buf, img, 4))

	out := buf.String()
	require.Contains(t, out, "Overall (Luminosity)")
	require.Contains(t, out, "Red Channel")
	require.Contains(t, out, "Green Channel")
	require.Contains(t, out, "Blue Channel")
}

func TestHistogramValueCollection(t *testing.T) {
	img := uniformGray(3, 2, 42)

	vals := luminosityValues(img)
	require.Len(t, vals, 6)
	for _, v := range vals {
		require.Equal(t, float64(42), v)
	}

	blue := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := 0; i < 4; i++ {
		blue.SetNRGBA(i%2, i/2, color.NRGBA{B: 200, A: 255})
	}

	require.Equal(t, []float64{0, 0, 0, 0}, channelValues(blue, 0))
	require.Equal(t, []float64{200, 200, 200, 200}, channelValues(blue, 2))
}
