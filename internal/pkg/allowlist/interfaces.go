package allowlist

import "net/http"

// Allowlist decides whether a request satisfies one of the configured
// allow-lists
type Allowlist interface {
	IsTrusted(req *http.Request) bool
	LogMessages() []string
}
