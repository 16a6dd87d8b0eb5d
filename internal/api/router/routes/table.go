package routes

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const matchedPrefixKey = "routes.prefix"

// Entry maps a URL path prefix to the handler serving everything below it
type Entry struct {
	Prefix  string
	Handler gin.HandlerFunc
	Name    string
}

// Table is an ordered list of prefix routes. Lookups return the first
// registered entry whose prefix matches. It is built once at startup.
type Table struct {
	entries []Entry
	names   map[string]int
}

// NewTable creates an empty route table
func NewTable() *Table {
	return &Table{names: map[string]int{}}
}

// Register appends a prefix route. Prefixes are normalised to start and end
// with a slash. Duplicate prefixes or names are rejected.
func (t *Table) Register(prefix string, handler gin.HandlerFunc, name string) error {
	prefix = normalizePrefix(prefix)
	if handler == nil {
		return fmt.Errorf("route %s has no handler", prefix)
	}

	for _, e := range t.entries {
		if e.Prefix == prefix {
			return fmt.Errorf("route %s is already registered", prefix)
		}
	}
	if name != "" {
		if _, ok := t.names[name]; ok {
			return fmt.Errorf("route name %q is already registered", name)
		}
		t.names[name] = len(t.entries)
	}

	t.entries = append(t.entries, Entry{Prefix: prefix, Handler: handler, Name: name})
	return nil
}

// MustRegister is like Register but panics on error
func (t *Table) MustRegister(prefix string, handler gin.HandlerFunc, name string) *Table {
	if err := t.Register(prefix, handler, name); err != nil {
		panic(err)
	}
	return t
}

// Match returns the first entry whose prefix matches path
func (t *Table) Match(path string) (Entry, bool) {
	if !strings.HasSuffix(path, "/") {
		path += "/"
	}
	for _, e := range t.entries {
		if strings.HasPrefix(path, e.Prefix) {
			return e, true
		}
	}
	return Entry{}, false
}

// Reverse returns the prefix registered under name
func (t *Table) Reverse(name string) (string, bool) {
	i, ok := t.names[name]
	if !ok {
		return "", false
	}
	return t.entries[i].Prefix, true
}

// Entries returns the registered routes in order
func (t *Table) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}

// Mount installs the table on the engine. Only the outermost prefixes become
// GET catch-all routes; every request below them is dispatched through Match,
// so nested prefixes resolve in registration order.
func (t *Table) Mount(engine gin.IRoutes) {
	for _, e := range t.entries {
		if t.enclosed(e.Prefix) {
			continue
		}
		engine.GET(e.Prefix+"*path", t.dispatch)
	}
}

// enclosed reports whether another entry's prefix strictly contains prefix
func (t *Table) enclosed(prefix string) bool {
	for _, e := range t.entries {
		if e.Prefix != prefix && strings.HasPrefix(prefix, e.Prefix) {
			return true
		}
	}
	return false
}

func (t *Table) dispatch(c *gin.Context) {
	e, ok := t.Match(c.Request.URL.Path)
	if !ok {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	c.Set(matchedPrefixKey, e.Prefix)
	e.Handler(c)
}

func normalizePrefix(prefix string) string {
	prefix = strings.TrimSpace(prefix)
	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return prefix
}

// SubPath returns the part of the request path below the matched prefix,
// without the leading slash
func SubPath(c *gin.Context) string {
	if prefix := c.GetString(matchedPrefixKey); prefix != "" {
		path := c.Request.URL.Path
		if !strings.HasPrefix(path, prefix) {
			return ""
		}
		return path[len(prefix):]
	}
	return strings.TrimPrefix(c.Param("path"), "/")
}
