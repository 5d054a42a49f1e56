package rospec

import (
	"regexp"
	"strings"
)

var lineCommentPattern = regexp.MustCompile(`//[^\n]*`)

// stripComments removes //-to-end-of-line comments before any pattern
// matching happens.
func stripComments(text string) string {
	return lineCommentPattern.ReplaceAllString(text, "")
}

// blockAt extracts the text between the opening brace at open and its
// matching closing brace, counting nesting depth so that bodies containing
// their own brace pairs (attachments, where-clauses) are handled correctly.
// It returns the body, the index just past the closing brace, and whether
// text[open] actually was an opening brace. An unterminated block extends
// to the end of the input.
func blockAt(text string, open int) (string, int, bool) {
	if open < 0 || open >= len(text) || text[open] != '{' {
		return "", open, false
	}

	depth := 0
	for i := open; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[open+1 : i], i + 1, true
			}
		}
	}

	// Unterminated: best-effort, take everything after the brace
	return text[open+1:], len(text), true
}

// statements splits a block body into trimmed non-empty lines. The grammar
// is statement-per-line with no nesting beyond a single block level, so
// line splitting is sufficient once the enclosing block is located.
func statements(body string) []string {
	lines := strings.Split(body, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
