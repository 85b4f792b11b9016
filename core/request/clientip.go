package request

import (
	"net/http"
	"strings"
)

// Proxy headers checked for the originating client IP, in priority order.
var clientIPHeaders = []string{
	"X-Forwarded-For",
	"Client-IP",
	"X-Real-IP",
	"X-Forwarded",
	"X-Cluster-Client-IP",
	"Forwarded-For",
	"Forwarded",
	"Via",
}

// ClientIP returns the client IP for a request, taking port numbers into
// account. Checks the proxy headers in order, falling back to RemoteAddr.
// Returns "" when nothing usable is found.
func ClientIP(r *http.Request) string {
	for _, key := range clientIPHeaders {
		if v := r.Header.Get(key); v != "" {
			// X-Forwarded-For may hold a chain; the client is first
			first := strings.TrimSpace(strings.Split(v, ",")[0])
			if ip := stripPort(first); ip != "" {
				return ip
			}
		}
	}
	return stripPort(r.RemoteAddr)
}

func stripPort(addr string) string {
	return strings.Split(addr, ":")[0]
}
