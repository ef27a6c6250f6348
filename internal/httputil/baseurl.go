package httputil

import (
	"fmt"
	"net/url"
	"strings"
)

// NormalizeBaseURL trims whitespace, removes trailing slashes, and validates
// scheme/host for a node RPC base URL. It disallows embedded user info and,
// when requireHTTPS is set, rejects a plain-http scheme.
func NormalizeBaseURL(raw string, requireHTTPS bool) (string, error) {
	base := strings.TrimRight(strings.TrimSpace(raw), "/")
	if base == "" {
		return "", fmt.Errorf("base URL is required")
	}

	parsed, err := url.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", fmt.Errorf("base URL must be a valid URL")
	}
	if parsed.User != nil {
		return "", fmt.Errorf("base URL must not include user info")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("base URL scheme must be http or https")
	}
	if parsed.RawQuery != "" || parsed.Fragment != "" {
		return "", fmt.Errorf("base URL must not include query or fragment")
	}
	if requireHTTPS && parsed.Scheme != "https" {
		return "", fmt.Errorf("base URL must use https")
	}

	return base, nil
}
