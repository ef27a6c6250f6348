package httputil

import (
	"bytes"
	"fmt"
	"io"
)

// BodyTooLargeError reports that a response body needed more than Limit
// bytes to hold, the signal ReadAllStrict turns into a hard failure
// against a hostile or misbehaving node.
type BodyTooLargeError struct {
	Limit int64
}

func (e *BodyTooLargeError) Error() string {
	return fmt.Sprintf("response body exceeds %d byte limit", e.Limit)
}

// ReadAllWithLimit buffers at most limit bytes of r and reports whether
// anything beyond that limit remained unread. It never asks r for more
// than limit+1 bytes, so a node that floods the connection can't force
// unbounded memory use.
func ReadAllWithLimit(r io.Reader, limit int64) (body []byte, truncated bool, err error) {
	if limit <= 0 {
		return nil, false, fmt.Errorf("httputil: limit must be positive")
	}
	if r == nil {
		return nil, false, fmt.Errorf("httputil: reader is nil")
	}

	var buf bytes.Buffer
	buf.Grow(int(limit))
	_, copyErr := io.CopyN(&buf, r, limit)
	if copyErr != nil && copyErr != io.EOF {
		return nil, false, copyErr
	}
	if copyErr == nil {
		// CopyN stopped exactly at limit because it hit the byte count,
		// not because r ran dry. Probe one more byte to tell the two
		// cases apart without materializing anything past the limit.
		var probe [1]byte
		n, probeErr := r.Read(probe[:])
		if n > 0 || probeErr != io.EOF {
			return buf.Bytes(), true, nil
		}
	}
	return buf.Bytes(), false, nil
}

// ReadAllStrict reads the entirety of r, failing with *BodyTooLargeError
// the moment the body would need to hold more than limit bytes.
func ReadAllStrict(r io.Reader, limit int64) ([]byte, error) {
	body, truncated, err := ReadAllWithLimit(r, limit)
	if err != nil {
		return nil, err
	}
	if truncated {
		return nil, &BodyTooLargeError{Limit: limit}
	}
	return body, nil
}
