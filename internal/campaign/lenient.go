package campaign

import (
	"encoding/json"
	"errors"
	"strings"
)

// ParseLenient decodes model output that may be wrapped in a code fence or
// surrounded by prose. It tries the whole text, then the span from the first
// '{' to the last '}', then the first balanced object.
func ParseLenient[T any](text string) (T, error) {
	var out T
	cleaned := stripCodeFence(strings.TrimSpace(text))

	err := json.Unmarshal([]byte(cleaned), &out)
	if err == nil {
		return out, nil
	}

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end <= start {
		return out, &ParseError{Err: errors.New("no JSON object found")}
	}

	var greedy T
	if gerr := json.Unmarshal([]byte(cleaned[start:end+1]), &greedy); gerr == nil {
		return greedy, nil
	}

	obj := extractJSON(cleaned)
	if obj == "" {
		return out, &ParseError{Err: err}
	}

	var balanced T
	if berr := json.Unmarshal([]byte(obj), &balanced); berr != nil {
		return out, &ParseError{Err: berr}
	}
	return balanced, nil
}

func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimPrefix(s, "JSON")
	s = strings.TrimLeft(s, " \t")
	s = strings.TrimPrefix(s, "\r")
	s = strings.TrimPrefix(s, "\n")
	s = strings.TrimRight(s, " \t\r\n")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// extractJSON finds the first balanced JSON object in text, skipping braces
// inside string literals.
func extractJSON(text string) string {
	start := strings.Index(text, "{")
	if start == -1 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}

	return ""
}
