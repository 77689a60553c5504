package clientip

import (
	"net"
	"net/http"
	"strings"
)

// proxyHeaders are consulted in priority order when proxy headers are trusted.
var proxyHeaders = []string{
	"CF-Connecting-IP",
	"DO-Connecting-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// RemoteHost returns the host part of the TCP peer address of r.
// IP addresses are normalised; anything that is not host:port is returned
// trimmed but otherwise unchanged.
func RemoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if ip := parseIP(host); ip != "" {
		return ip
	}
	return strings.TrimSpace(host)
}

// Forwarded returns the first valid client IP found in the proxy headers, or
// "" when none carries one. X-Forwarded-For may list several addresses; the
// first valid one wins.
func Forwarded(r *http.Request) string {
	for _, name := range proxyHeaders {
		value := r.Header.Get(name)
		if value == "" {
			continue
		}
		for ip := range strings.SplitSeq(value, ",") {
			if parsed := parseIP(ip); parsed != "" {
				return parsed
			}
		}
	}
	return ""
}

// Resolve returns the client host of r. Proxy headers are only honoured when
// trustProxy is set; otherwise, or when they carry nothing valid, the TCP peer
// is used.
func Resolve(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if ip := Forwarded(r); ip != "" {
			return ip
		}
	}
	return RemoteHost(r)
}

// parseIP validates and normalizes an IP address string.
// Returns empty string if the IP is invalid.
func parseIP(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	ip := net.ParseIP(s)
	if ip == nil {
		return ""
	}
	return ip.String()
}
