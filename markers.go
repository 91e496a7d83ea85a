package jpegmeta

import "fmt"

// Marker type bytes, i.e. the value following the 0xFF prefix.
const (
	markerSOI  = 0xD8 // Start of Image
	markerEOI  = 0xD9 // End of Image
	markerAPP0 = 0xE0 // JFIF application segment
	markerSOF0 = 0xC0 // Start of Frame (Baseline DCT)
	markerDHT  = 0xC4 // Define Huffman Table
	markerSOS  = 0xDA // Start of Scan
)

// Kind classifies a marker segment. Markers outside the recognized baseline
// set are preserved as Other, never rejected.
type Kind int

const (
	Other Kind = iota
	StartOfImage
	EndOfImage
	AppSegment0
	StartOfFrameBaseline
	DefineHuffmanTable
	StartOfScan
)

// kindLabels and kindDescriptions are static lookup data; they are never
// mutated at runtime.
var kindLabels = [...]string{
	Other:                "",
	StartOfImage:         "SOI",
	EndOfImage:           "EOI",
	AppSegment0:          "APP0",
	StartOfFrameBaseline: "SOF0",
	DefineHuffmanTable:   "DHT",
	StartOfScan:          "SOS",
}

var kindDescriptions = [...]string{
	Other:                "Unknown or other marker",
	StartOfImage:         "Start of Image",
	EndOfImage:           "End of Image",
	AppSegment0:          "JFIF Application Segment",
	StartOfFrameBaseline: "Start of Frame (Baseline DCT)",
	DefineHuffmanTable:   "Define Huffman Table",
	StartOfScan:          "Start of Scan",
}

// String returns the short marker name for the kind, or "Other".
func (k Kind) String() string {
	if k > Other && int(k) < len(kindLabels) {
		return kindLabels[k]
	}

	return "Other"
}

// classify maps a marker tag to its Kind.
func classify(tag byte) Kind {
	switch tag {
	case markerSOI:
		return StartOfImage
	case markerEOI:
		return EndOfImage
	case markerAPP0:
		return AppSegment0
	case markerSOF0:
		return StartOfFrameBaseline
	case markerDHT:
		return DefineHuffmanTable
	case markerSOS:
		return StartOfScan
	default:
		return Other
	}
}

// labelFor derives the display label for a marker. Recognized kinds have a
// fixed name; everything else is labeled by its tag value.
func labelFor(k Kind, tag byte) string {
	if k != Other {
		return kindLabels[k]
	}

	return fmt.Sprintf("Marker 0xFF%02X", tag)
}

// Description returns the human-readable description of the marker.
func (r *MarkerRecord) Description() string {
	return kindDescriptions[r.Kind]
}

// Value returns the marker value as displayed, e.g. "0xFFD8" or
// "0xFFC0, length=11".
func (r *MarkerRecord) Value() string {
	if r.Length == 0 {
		return fmt.Sprintf("0xFF%02X", r.Tag)
	}

	return fmt.Sprintf("0xFF%02X, length=%d", r.Tag, r.Length)
}
