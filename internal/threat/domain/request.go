package domain

import (
	"html"
	"net/url"
	"sort"
	"strings"
)

// Category groups signatures by attack family.
type Category string

const (
	SQLInjection     Category = "sql_injection"
	CrossSiteScript  Category = "xss"
	PathTraversal    Category = "path_traversal"
	CommandInjection Category = "command_injection"
	ScannerProbe     Category = "scanner"
	OversizedInput   Category = "oversized"
)

// Request is the transport-neutral view of an inbound request that detection runs on.
type Request struct {
	Method  string
	Path    string
	Query   string
	Headers map[string]string
	Body    string
}

// Serialize flattens the request into one string. Headers are written in sorted order
// so the result is stable.
func (r Request) Serialize() string {
	var b strings.Builder
	b.WriteString(r.Method)
	b.WriteByte(' ')
	b.WriteString(r.Path)
	if r.Query != "" {
		b.WriteByte('?')
		b.WriteString(r.Query)
	}
	b.WriteByte('\n')

	names := make([]string, 0, len(r.Headers))
	for name := range r.Headers {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(r.Headers[name])
		b.WriteByte('\n')
	}

	b.WriteString(r.Body)
	return b.String()
}

// Decoded returns s with HTML entities and percent-encoding removed, repeated until
// stable so layered encodings are unwrapped. An invalid percent escape skips that
// step and keeps the entity-decoded value.
func Decoded(s string) string {
	for range 3 {
		next := html.UnescapeString(s)
		if unescaped, err := url.QueryUnescape(next); err == nil {
			next = unescaped
		}
		if next == s {
			return s
		}
		s = next
	}
	return s
}

// Finding is the outcome of inspecting a request.
type Finding struct {
	IsSuspicious bool
	Reasons      []string
	Categories   []Category
}
