package model

import (
	"fmt"
	"regexp"
)

var contentPattern = regexp.MustCompile(`^content\(\s*(\w+)\s*\)$`)

// ContentParam extracts the parameter name from a content(<param>)
// placeholder. The second return is false for ordinary endpoint names.
func ContentParam(name string) (string, bool) {
	m := contentPattern.FindStringSubmatch(name)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ContentPlaceholder renders the literal placeholder for an unassigned
// content parameter. The placeholder never equals a real endpoint name.
func ContentPlaceholder(param string) string {
	return fmt.Sprintf("content(%s)", param)
}

// StripQuotes removes one level of matching single or double quotes.
func StripQuotes(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '"' || first == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
