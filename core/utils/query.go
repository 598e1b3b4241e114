package utils

import (
	"net/url"
	"strings"
)

// Query is an ordered list of query parameters.
// Unlike url.Values it encodes in insertion order.
type Query struct {
	pairs [][2]string
}

// Add appends key=value. Nil pointers are skipped.
func (q *Query) Add(key string, value any) *Query {
	s, ok := ToString(value)
	if !ok {
		return q
	}
	q.pairs = append(q.pairs, [2]string{key, s})
	return q
}

// Len returns the number of parameters.
func (q *Query) Len() int {
	if q == nil {
		return 0
	}
	return len(q.pairs)
}

// Encode renders the parameters as key=value pairs joined by '&'.
func (q *Query) Encode() string {
	if q.Len() == 0 {
		return ""
	}
	var b strings.Builder
	for i, p := range q.pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p[0]))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p[1]))
	}
	return b.String()
}

// WithQuery appends the encoded query to path, or returns path unchanged when q is empty.
func WithQuery(path string, q *Query) string {
	if q.Len() == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

// PathSegment escapes a single path segment such as a user or player name.
func PathSegment(val any) string {
	s, _ := ToString(val)
	return url.PathEscape(s)
}
