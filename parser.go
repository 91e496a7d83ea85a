package jpegmeta

import (
	"encoding/binary"
	"fmt"
)

// frameHeaderSize is the number of payload bytes carrying the baseline
// frame fields: precision (1), height (2), width (2).
const frameHeaderSize = 5

// parseHeaders walks the marker segments of data and collects them in file
// order. It stops at the EOI marker, at the end of the data, or at the
// first byte pair that does not start with 0xFF (which tolerates both
// trailing garbage and entropy-coded scan data after SOS).
func parseHeaders(data []byte) (*HeaderSet, error) {
	c := &cursor{data: data}

	// Check for the SOI (Start of Image) signature.
	sig, err := c.readExact(2)
	if err != nil || sig[0] != 0xFF || sig[1] != markerSOI {
		return nil, ErrInvalidSignature
	}

	hs := &HeaderSet{}
	hs.records = append(hs.records, MarkerRecord{
		Tag:   markerSOI,
		Kind:  StartOfImage,
		Label: kindLabels[StartOfImage],
	})

	for c.more() {
		// more() guarantees at least one byte; a failure here is impossible.
		prefix, _ := c.readByte()
		if prefix != 0xFF {
			// Not a marker. Trailing data after the last segment is
			// tolerated, not rejected.
			break
		}

		tag, err := c.readByte()
		if err != nil {
			return nil, fmt.Errorf("marker cut short after 0xFF prefix: %w", err)
		}

		if tag == markerEOI {
			hs.records = append(hs.records, MarkerRecord{
				Tag:   markerEOI,
				Kind:  EndOfImage,
				Label: kindLabels[EndOfImage],
			})

			break
		}

		lb, err := c.readExact(2)
		if err != nil {
			return nil, fmt.Errorf("length field of marker 0xFF%02X: %w", tag, err)
		}

		// The declared length includes the two bytes of the length field
		// itself; anything smaller would underflow the payload size.
		length := int(binary.BigEndian.Uint16(lb))
		if length < 2 {
			return nil, fmt.Errorf("marker 0xFF%02X declares length %d: %w", tag, length, ErrInvalidLength)
		}

		payload, err := c.readExact(length - 2)
		if err != nil {
			return nil, fmt.Errorf("payload of marker 0xFF%02X (%d bytes declared): %w", tag, length, err)
		}

		rec := MarkerRecord{
			Tag:    tag,
			Kind:   classify(tag),
			Length: length,
		}
		rec.Label = labelFor(rec.Kind, tag)

		switch rec.Kind {
		case AppSegment0:
			rec.Payload = payload
		case StartOfFrameBaseline:
			if len(payload) < frameHeaderSize {
				return nil, fmt.Errorf("frame header payload has %d bytes, need %d: %w",
					len(payload), frameHeaderSize, ErrTruncated)
			}

			rec.Frame = &FrameInfo{
				Precision: payload[0],
				Height:    binary.BigEndian.Uint16(payload[1:3]),
				Width:     binary.BigEndian.Uint16(payload[3:5]),
			}
		}

		hs.records = append(hs.records, rec)
	}

	return hs, nil
}
