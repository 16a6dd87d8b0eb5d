package allowlist

import (
	"fmt"
	"net/http"
	"strings"
)

// Origins is the set of browser origins permitted to make credentialed
// cross-origin requests. Matching is exact; there is no wildcard.
// It reports the configured origins at startup; enforcement is done by the
// CORS middleware, not by this type.
type Origins struct {
	allowed map[string]struct{}
	raw     []string
}

// NewOrigins builds an Origins allow-list
func NewOrigins(origins []string) *Origins {
	o := &Origins{allowed: map[string]struct{}{}}
	for _, origin := range origins {
		origin = strings.TrimSuffix(strings.TrimSpace(origin), "/")
		if origin == "" {
			continue
		}
		if _, ok := o.allowed[origin]; !ok {
			o.raw = append(o.raw, origin)
		}
		o.allowed[origin] = struct{}{}
	}
	return o
}

// IsTrusted reports whether the request carries an allowed Origin header.
// Requests without an Origin are not cross-origin and are not trusted here.
func (o *Origins) IsTrusted(req *http.Request) bool {
	_, ok := o.allowed[req.Header.Get("Origin")]
	return ok
}

// LogMessages creates messages for each allowed origin for logging purposes
func (o *Origins) LogMessages() []string {
	logs := make([]string, 0, len(o.raw))
	for _, origin := range o.raw {
		logs = append(logs, fmt.Sprintf("Allowing cross-origin requests from: %s", origin))
	}
	return logs
}
