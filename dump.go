package jpegmeta

import (
	"fmt"
	"io"
	"strings"
)

// payloadPreviewLen caps the number of payload bytes shown per segment.
const payloadPreviewLen = 50

// String renders the header set as human-readable text, one block per
// segment. It is a pure projection for display and performs no validation.
func (h *HeaderSet) String() string {
	var sb strings.Builder

	for _, rec := range h.records {
		fmt.Fprintf(&sb, "\n%s:\n", rec.Label)
		fmt.Fprintf(&sb, "  Value: %s\n", rec.Value())
		fmt.Fprintf(&sb, "  Description: %s\n", rec.Description())

		if rec.Frame != nil {
			fmt.Fprintf(&sb, "  Precision: %d bits\n", rec.Frame.Precision)
			fmt.Fprintf(&sb, "  Height: %d pixels\n", rec.Frame.Height)
			fmt.Fprintf(&sb, "  Width: %d pixels\n", rec.Frame.Width)
		}

		if len(rec.Payload) > 0 {
			fmt.Fprintf(&sb, "  Data: %s\n", previewBytes(rec.Payload))
		}
	}

	return sb.String()
}

// Dump writes the rendering of String to w.
func (h *HeaderSet) Dump(w io.Writer) error {
	_, err := io.WriteString(w, h.String())

	return err
}

// previewBytes formats up to payloadPreviewLen bytes as hex, with an
// ellipsis when the payload is longer.
func previewBytes(b []byte) string {
	if len(b) <= payloadPreviewLen {
		return fmt.Sprintf("% x", b)
	}

	return fmt.Sprintf("% x ...", b[:payloadPreviewLen])
}
