package jpegmeta

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeaderSetString(t *testing.T) {
	data := concat(
		soi,
		segment(markerAPP0, jfifPayload),
		segment(0xDB, bytes.Repeat([]byte{0x02}, 65)),
		sof0Segment(8, 16, 32),
		eoi,
	)

	hs, err := ParseBytes(data)
	require.NoError(t, err)

	out := hs.String()
	require.Contains(t, out, "SOI:")
	require.Contains(t, out, "Value: 0xFFD8")
	require.Contains(t, out, "Description: Start of Image")
	require.Contains(t, out, "APP0:")
	require.Contains(t, out, "Value: 0xFFE0, length=16")
	require.Contains(t, out, "Description: JFIF Application Segment")
	require.Contains(t, out, "Data: 4a 46 49 46")
	require.Contains(t, out, "Marker 0xFFDB:")
	require.Contains(t, out, "Description: Unknown or other marker")
	require.Contains(t, out, "SOF0:")
	require.Contains(t, out, "Precision: 8 bits")
	require.Contains(t, out, "Height: 16 pixels")
	require.Contains(t, out, "Width: 32 pixels")
	require.Contains(t, out, "EOI:")
	require.Contains(t, out, "Value: 0xFFD9")
}

func TestHeaderSetStringPayloadPreview(t *testing.T) {
	long := bytes.Repeat([]byte{0xAA}, payloadPreviewLen+10)

	hs, err := ParseBytes(concat(soi, segment(markerAPP0, long), eoi))
	require.NoError(t, err)

	out := hs.String()
	require.Contains(t, out, "aa aa")
	require.Contains(t, out, "...")
	// Only the first payloadPreviewLen bytes are shown.
	require.Equal(t, payloadPreviewLen, strings.Count(out, "aa"))
}

func TestHeaderSetDump(t *testing.T) {
	hs, err := ParseBytes(concat(soi, eoi))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, hs.Dump(&buf))
	require.Equal(t, hs.String(), buf.String())
}
