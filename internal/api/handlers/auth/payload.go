package auth

import (
	"encoding/json"
	"mime"
	"net/http"
	"net/url"
	"strings"
)

// Redacted replaces sensitive values in logged payloads and headers
const Redacted = "[REDACTED]"

var sensitiveFields = map[string]struct{}{
	"password":      {},
	"refresh":       {},
	"access":        {},
	"token":         {},
	"secret":        {},
	"client_secret": {},
}

var sensitiveHeaders = map[string]struct{}{
	"Authorization": {},
	"Cookie":        {},
	"X-Csrftoken":   {},
}

// parsePayload decodes a request body the way it was submitted: form bodies
// become a map of their fields, JSON objects are decoded, and anything else
// is kept as the raw string
func parsePayload(contentType string, body []byte) any {
	if len(body) == 0 {
		return map[string]any{}
	}

	mediaType, _, _ := mime.ParseMediaType(contentType)
	if mediaType == "application/x-www-form-urlencoded" {
		values, err := url.ParseQuery(string(body))
		if err == nil {
			return formToMap(values)
		}
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err == nil {
		return decoded
	}
	return string(body)
}

func formToMap(values url.Values) map[string]any {
	out := make(map[string]any, len(values))
	for k, v := range values {
		if len(v) == 1 {
			out[k] = v[0]
		} else {
			out[k] = v
		}
	}
	return out
}

// redactPayload returns a copy of payload with sensitive fields masked at any depth
func redactPayload(payload any) any {
	switch v := payload.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, value := range v {
			if _, ok := sensitiveFields[strings.ToLower(key)]; ok {
				out[key] = Redacted
				continue
			}
			out[key] = redactPayload(value)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, value := range v {
			out[i] = redactPayload(value)
		}
		return out
	default:
		return v
	}
}

// headerMap flattens request headers into one string per name
func headerMap(header http.Header, redact bool) map[string]string {
	out := make(map[string]string, len(header))
	for name, values := range header {
		name = http.CanonicalHeaderKey(name)
		if _, ok := sensitiveHeaders[name]; ok && redact {
			out[name] = Redacted
			continue
		}
		out[name] = strings.Join(values, ", ")
	}
	return out
}

// stringField returns the first non-empty string value among keys
func stringField(payload any, keys ...string) string {
	fields, ok := payload.(map[string]any)
	if !ok {
		return ""
	}
	for _, key := range keys {
		if s, ok := fields[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
