package allowlist

import (
	"fmt"
	"net"
	"net/http"
	"strings"
)

// Hosts matches the request Host header against a list of allowed hosts.
// An entry starting with a dot matches that domain and every subdomain,
// and "*" matches any host.
type Hosts struct {
	exact    map[string]struct{}
	suffixes []string
	any      bool
	raw      []string
}

// NewHosts builds a Hosts allow-list from the configured entries
func NewHosts(hosts []string) *Hosts {
	h := &Hosts{exact: map[string]struct{}{}}
	for _, host := range hosts {
		h.Add(host)
	}
	return h
}

// Add appends a host pattern to the allow-list
func (h *Hosts) Add(host string) {
	host = strings.ToLower(strings.TrimSpace(host))
	if host == "" {
		return
	}
	h.raw = append(h.raw, host)
	host = strings.TrimSuffix(strings.TrimPrefix(host, "["), "]")

	switch {
	case host == "*":
		h.any = true
	case strings.HasPrefix(host, "."):
		h.suffixes = append(h.suffixes, host)
	default:
		h.exact[host] = struct{}{}
	}
}

// IsTrusted reports whether the request Host header is allowed
func (h *Hosts) IsTrusted(req *http.Request) bool {
	return h.Allows(req.Host)
}

// Allows reports whether a raw Host header value is allowed.
// The port is ignored and a trailing dot is stripped.
func (h *Hosts) Allows(hostport string) bool {
	host := SplitHost(hostport)
	if host == "" {
		return false
	}
	if h.any {
		return true
	}
	if _, ok := h.exact[host]; ok {
		return true
	}
	for _, suffix := range h.suffixes {
		if host == suffix[1:] || strings.HasSuffix(host, suffix) {
			return true
		}
	}
	return false
}

// LogMessages creates messages for each allowed host for logging purposes
func (h *Hosts) LogMessages() []string {
	logs := make([]string, 0, len(h.raw))
	for _, host := range h.raw {
		logs = append(logs, fmt.Sprintf("Serving requests for allowed host: %s", host))
	}
	return logs
}

// SplitHost lower-cases a Host header value and strips its port
func SplitHost(hostport string) string {
	hostport = strings.ToLower(strings.TrimSpace(hostport))
	if hostport == "" {
		return ""
	}

	host := hostport
	if h, _, err := net.SplitHostPort(hostport); err == nil {
		host = h
	} else if strings.HasPrefix(hostport, "[") && strings.HasSuffix(hostport, "]") {
		host = hostport[1 : len(hostport)-1]
	}

	return strings.TrimSuffix(host, ".")
}
