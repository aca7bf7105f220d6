package entity

import (
	"fmt"
	"net"
	"net/url"
)

// maxURLLength bounds user-supplied URLs to keep pathological input out of the parser.
const maxURLLength = 2048

// ValidateFeedURL validates the format and safety of an external feed URL.
// It checks that the URL is well-formed, uses an HTTP/HTTPS scheme, and has a
// valid host. Hosts resolving to private or link-local addresses are rejected
// to prevent SSRF through the preview endpoint.
func ValidateFeedURL(rawURL string) error {
	if rawURL == "" {
		return &ValidationError{Field: "url", Message: "is required"}
	}
	if len(rawURL) > maxURLLength {
		return &ValidationError{
			Field:   "url",
			Message: fmt.Sprintf("must not exceed %d characters", maxURLLength),
		}
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parse URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return &ValidationError{Field: "url", Message: "must use http or https scheme"}
	}
	if parsed.Host == "" {
		return &ValidationError{Field: "url", Message: "must have a valid host"}
	}

	// SSRF guard: the preview endpoint fetches arbitrary caller-supplied URLs.
	ips, err := net.LookupIP(parsed.Hostname())
	if err == nil {
		for _, ip := range ips {
			if isPrivateIP(ip) {
				return &ValidationError{Field: "url", Message: "cannot point to private network"}
			}
		}
	}

	return nil
}

// isPrivateIP reports whether ip falls in a loopback, link-local, or private
// range, including the cloud metadata block 169.254.0.0/16.
func isPrivateIP(ip net.IP) bool {
	if ip.IsLoopback() || ip.IsLinkLocalUnicast() {
		return true
	}
	for _, cidr := range []string{
		"10.0.0.0/8",
		"172.16.0.0/12",
		"192.168.0.0/16",
		"169.254.0.0/16",
	} {
		_, subnet, _ := net.ParseCIDR(cidr)
		if subnet.Contains(ip) {
			return true
		}
	}
	return false
}
