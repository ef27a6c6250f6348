package httputil

import (
	"crypto/tls"
	"net/http"
	"time"
)

// DefaultTransportWithMinTLS12 clones http.DefaultTransport and enforces a
// TLS 1.2 floor for outbound calls to the node's RPC endpoint.
func DefaultTransportWithMinTLS12() http.RoundTripper {
	base, ok := http.DefaultTransport.(*http.Transport)
	if !ok {
		return http.DefaultTransport
	}

	cloned := base.Clone()
	if cloned.TLSClientConfig != nil {
		cloned.TLSClientConfig = cloned.TLSClientConfig.Clone()
		if cloned.TLSClientConfig.MinVersion < tls.VersionTLS12 {
			cloned.TLSClientConfig.MinVersion = tls.VersionTLS12
		}
	} else {
		cloned.TLSClientConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	return cloned
}

// NewClient builds an *http.Client with the given timeout and the TLS-1.2
// transport, or copies an existing client, overriding its timeout only
// when timeout is positive and filling in the TLS-1.2 transport only when
// the copy has none.
func NewClient(base *http.Client, timeout time.Duration) *http.Client {
	if base == nil {
		return &http.Client{
			Timeout:   timeout,
			Transport: DefaultTransportWithMinTLS12(),
		}
	}
	clone := *base
	if timeout > 0 {
		clone.Timeout = timeout
	}
	if clone.Transport == nil {
		clone.Transport = DefaultTransportWithMinTLS12()
	}
	return &clone
}
