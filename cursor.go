package jpegmeta

// cursor is a forward-only reader over an in-memory byte slice. It never
// seeks backward; the format is walked in a single pass.
type cursor struct {
	data []byte
	pos  int
}

// readExact returns the next n bytes and advances past them. It fails with
// ErrTruncated, without advancing, when fewer than n bytes remain. The
// returned slice aliases the underlying buffer.
func (c *cursor) readExact(n int) ([]byte, error) {
	if n < 0 || len(c.data)-c.pos < n {
		return nil, ErrTruncated
	}

	b := c.data[c.pos : c.pos+n]
	c.pos += n

	return b, nil
}

// readByte returns the next byte, failing with ErrTruncated at end of data.
func (c *cursor) readByte() (byte, error) {
	b, err := c.readExact(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

// more reports whether at least one byte remains. It distinguishes a clean
// end of stream from a truncated marker.
func (c *cursor) more() bool {
	return c.pos < len(c.data)
}
