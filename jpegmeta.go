// Package jpegmeta extracts structured metadata from the marker-segment
// envelope of a JPEG file without decoding any pixel data.
//
// The parser walks the byte-level container once, front to back: it
// validates the SOI signature, classifies every tagged segment it meets,
// pulls the frame dimensions out of a baseline frame header when one is
// present, and stops at the EOI marker or at the end of the data. Entropy
// coded scan data after an SOS segment is not skipped specially; the walk
// simply ends at the first byte pair that no longer looks like a marker.
package jpegmeta

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Standard error types for header parsing.
var (
	// ErrInvalidSignature means the stream does not begin with the SOI marker.
	ErrInvalidSignature = errors.New("not a valid JPEG file")
	// ErrTruncated means fewer bytes remain than a field or segment declares.
	ErrTruncated = errors.New("truncated segment")
	// ErrInvalidLength means a segment declares a length smaller than the
	// length field itself.
	ErrInvalidLength = errors.New("invalid segment length")
)

// FrameInfo holds the fields extracted from a baseline frame header.
type FrameInfo struct {
	Precision uint8  // Sample precision in bits.
	Height    uint16 // Image height in pixels.
	Width     uint16 // Image width in pixels.
}

// MarkerRecord describes one parsed marker segment.
type MarkerRecord struct {
	// Tag is the marker code, i.e. the byte following the 0xFF prefix.
	Tag byte
	// Kind classifies the marker.
	Kind Kind
	// Label is the human-readable marker name, e.g. "SOI" or "Marker 0xFFDB".
	Label string
	// Length is the declared 16-bit segment length, including the two bytes
	// of the length field itself. It is zero for SOI and EOI, which carry no
	// length field.
	Length int
	// Payload holds the raw segment body for markers whose bytes are worth
	// keeping around for display (currently APP0). It aliases the parsed
	// buffer and must not be modified.
	Payload []byte
	// Frame is set for baseline frame headers.
	Frame *FrameInfo
}

// HeaderSet is the result of a parse: every marker segment of the file, in
// file order. It is fully populated before being returned and is not
// modified afterwards.
type HeaderSet struct {
	records []MarkerRecord
}

// Records returns the parsed segments in file order. The returned slice is
// owned by the HeaderSet and must not be modified.
func (h *HeaderSet) Records() []MarkerRecord {
	return h.records
}

// Len returns the number of parsed segments.
func (h *HeaderSet) Len() int {
	return len(h.records)
}

// Frame returns the fields of the first baseline frame header, if the file
// contains one.
func (h *HeaderSet) Frame() (FrameInfo, bool) {
	for _, rec := range h.records {
		if rec.Frame != nil {
			return *rec.Frame, true
		}
	}

	return FrameInfo{}, false
}

// Interface to check if a reader knows its remaining length.
type readerWithLen interface {
	Len() int
}

// readAllData reads data from r, pre-allocating if the size is known.
func readAllData(r io.Reader) ([]byte, error) {
	// Pre-allocate the buffer if the reader knows its remaining length.
	// This avoids the growth reallocations of io.ReadAll for large files.
	if rl, ok := r.(readerWithLen); ok {
		size := rl.Len()
		if size > 0 {
			data := make([]byte, size)
			_, err := io.ReadFull(r, data)
			if err != nil {
				return nil, fmt.Errorf("failed to read image data: %w", err)
			}

			return data, nil
		}
	}

	// Fallback for readers that don't implement Len() (e.g. network streams, os.File) or were empty.
	return io.ReadAll(r)
}

// Parse reads a JPEG stream from r and returns its marker segments.
// Pixel data is never decoded. On any parse failure no HeaderSet is
// returned.
func Parse(r io.Reader) (*HeaderSet, error) {
	data, err := readAllData(r)
	if err != nil {
		return nil, err
	}

	return ParseBytes(data)
}

// ParseBytes parses the marker segments of a JPEG file held in memory.
// Returned payloads alias data.
func ParseBytes(data []byte) (*HeaderSet, error) {
	return parseHeaders(data)
}

// ParseFile parses the marker segments of the JPEG file at path.
func ParseFile(path string) (*HeaderSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ParseBytes(data)
}
