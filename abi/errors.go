package abi

import eoserr "github.com/r3e-go/eosiogo/internal/errors"

// needLen returns a short-buffer error if b doesn't hold at least n bytes.
func needLen(b []byte, n int) error {
	if len(b) < n {
		return eoserr.ShortBuffer(n, len(b))
	}
	return nil
}
