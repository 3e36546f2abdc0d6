package service

import (
	"encoding/json"
	"regexp"
	"strings"
)

var fencedJSONPattern = regexp.MustCompile("(?s)```json\\s*\\n(.*?)\\n\\s*```")

// ExtractJSON recovers a JSON object embedded in free-form assistant text.
// The model is prompted to answer with JSON but nothing guarantees it.
// A fenced ```json block wins, otherwise the first well-formed top-level
// object found by a brace scanner.
//
// The scanner tracks brace depth and string escaping instead of matching
// first-brace-to-last-brace, so replies containing several objects yield
// the first complete one rather than an over-captured span.
func ExtractJSON(raw string) (json.RawMessage, error) {
	if m := fencedJSONPattern.FindStringSubmatch(raw); m != nil {
		candidate := strings.TrimSpace(m[1])
		if !json.Valid([]byte(candidate)) {
			return nil, &InvalidJSONError{Reason: "fenced block does not parse"}
		}
		return json.RawMessage(candidate), nil
	}

	candidate, found := scanObject(raw)
	if !found {
		return nil, ErrNoJSONFound
	}
	if !json.Valid([]byte(candidate)) {
		return nil, &InvalidJSONError{Reason: "brace-delimited span does not parse"}
	}
	return json.RawMessage(candidate), nil
}

// scanObject returns the first balanced {...} span in text, honoring string
// literals and backslash escapes inside them.
func scanObject(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}

	for ; start >= 0 && start < len(text); start = nextBrace(text, start) {
		depth := 0
		inString := false
		escaped := false

		for i := start; i < len(text); i++ {
			ch := text[i]

			if inString {
				switch {
				case escaped:
					escaped = false
				case ch == '\\':
					escaped = true
				case ch == '"':
					inString = false
				}
				continue
			}

			switch ch {
			case '"':
				inString = true
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					return text[start : i+1], true
				}
			}
		}
		// Unbalanced from this opening brace; try the next one.
	}
	return "", false
}

func nextBrace(text string, after int) int {
	idx := strings.IndexByte(text[after+1:], '{')
	if idx < 0 {
		return -1
	}
	return after + 1 + idx
}
