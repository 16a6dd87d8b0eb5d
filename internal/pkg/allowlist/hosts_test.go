package allowlist

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

var defaultHosts = []string{"localhost", "127.0.0.1", "0.0.0.0", "host.docker.internal"}

func TestHosts_IsTrusted(t *testing.T) {
	testCases := map[string]struct {
		Allowed  []string
		Host     string
		Expected bool
	}{
		"Exact host":              {Allowed: defaultHosts, Host: "localhost", Expected: true},
		"Host with port":          {Allowed: defaultHosts, Host: "localhost:8000", Expected: true},
		"Loopback IP with port":   {Allowed: defaultHosts, Host: "127.0.0.1:8000", Expected: true},
		"Docker host":             {Allowed: defaultHosts, Host: "host.docker.internal:80", Expected: true},
		"Mixed case":              {Allowed: defaultHosts, Host: "LocalHost", Expected: true},
		"Trailing dot":            {Allowed: defaultHosts, Host: "localhost.", Expected: true},
		"Unknown host":            {Allowed: defaultHosts, Host: "evil.example.com", Expected: false},
		"Suffix of allowed host":  {Allowed: defaultHosts, Host: "notlocalhost", Expected: false},
		"Empty host":              {Allowed: defaultHosts, Host: "", Expected: false},
		"Subdomain pattern root":  {Allowed: []string{".example.com"}, Host: "example.com", Expected: true},
		"Subdomain pattern child": {Allowed: []string{".example.com"}, Host: "api.example.com:443", Expected: true},
		"Subdomain lookalike":     {Allowed: []string{".example.com"}, Host: "badexample.com", Expected: false},
		"Wildcard":                {Allowed: []string{"*"}, Host: "anything.test", Expected: true},
		"IPv6 literal":            {Allowed: []string{"[::1]"}, Host: "[::1]:8000", Expected: true},
	}

	for testName, tc := range testCases {
		t.Run(testName, func(t *testing.T) {
			hosts := NewHosts(tc.Allowed)
			req := &http.Request{Host: tc.Host}
			assert.Equal(t, tc.Expected, hosts.IsTrusted(req))
		})
	}
}

func TestHosts_LogMessages(t *testing.T) {
	hosts := NewHosts(defaultHosts)
	msgs := hosts.LogMessages()

	assert.Len(t, msgs, len(defaultHosts))
	for i, host := range defaultHosts {
		assert.Equal(t, fmt.Sprintf("Serving requests for allowed host: %s", host), msgs[i])
	}
}

func TestSplitHost(t *testing.T) {
	assert.Equal(t, "localhost", SplitHost("localhost:3000"))
	assert.Equal(t, "::1", SplitHost("[::1]:80"))
	assert.Equal(t, "::1", SplitHost("[::1]"))
	assert.Equal(t, "example.com", SplitHost(" Example.COM "))
	assert.Equal(t, "", SplitHost(""))
}
