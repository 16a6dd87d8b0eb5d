package allowlist

import (
	"fmt"
	"net/http"
	"strings"
)

// Methods is the set of HTTP methods the service accepts
type Methods struct {
	allowed map[string]struct{}
	ordered []string
}

// NewMethods builds a Methods allow-list; names are upper-cased
func NewMethods(methods []string) *Methods {
	m := &Methods{allowed: map[string]struct{}{}}
	for _, method := range methods {
		method = strings.ToUpper(strings.TrimSpace(method))
		if method == "" {
			continue
		}
		if _, ok := m.allowed[method]; ok {
			continue
		}
		m.allowed[method] = struct{}{}
		m.ordered = append(m.ordered, method)
	}
	return m
}

// IsTrusted reports whether the request method is allowed
func (m *Methods) IsTrusted(req *http.Request) bool {
	return m.Allows(req.Method)
}

// Allows reports whether method is in the allow-list
func (m *Methods) Allows(method string) bool {
	_, ok := m.allowed[strings.ToUpper(method)]
	return ok
}

// Allow returns the value for an Allow response header
func (m *Methods) Allow() string {
	return strings.Join(m.ordered, ", ")
}

// LogMessages creates messages for each allowed method for logging purposes
func (m *Methods) LogMessages() []string {
	return []string{fmt.Sprintf("Accepting HTTP methods: %s", m.Allow())}
}
