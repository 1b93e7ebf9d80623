package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SchemaValidator validates a parsed value after JSON extraction.
// Returns nil if valid, or a descriptive error if invalid.
type SchemaValidator[T any] func(T) error

// ExtractJSON decodes the first JSON object in raw into T and runs validator
// on the result. Providers in JSON mode normally return bare JSON, but the
// text may still arrive fenced, prefixed with prose, or with comments,
// trailing commas and ".5"-style numbers, which are repaired here.
func ExtractJSON[T any](raw string, validator SchemaValidator[T]) (T, error) {
	var zero T

	block, ok := scanObject(raw)
	if !ok {
		return zero, fmt.Errorf("%w: no JSON object found in response", ErrInvalidOutput)
	}

	var result T
	dec := json.NewDecoder(strings.NewReader(block))
	if err := dec.Decode(&result); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}

	if validator != nil {
		if err := validator(result); err != nil {
			return zero, fmt.Errorf("%w: validation failed: %v", ErrInvalidOutput, err)
		}
	}
	return result, nil
}

// scanObject copies the first balanced {...} block out of s, dropping
// comments and trailing commas and prefixing bare decimals with 0. String
// contents are copied verbatim.
func scanObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start == -1 {
		return "", false
	}

	var b strings.Builder
	b.Grow(len(s) - start)

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]

		if inString {
			b.WriteByte(c)
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

		switch {
		case c == '"':
			inString = true
		case c == '/' && i+1 < len(s) && s[i+1] == '/':
			for i+1 < len(s) && s[i+1] != '\n' {
				i++
			}
			continue
		case c == '/' && i+1 < len(s) && s[i+1] == '*':
			end := strings.Index(s[i+2:], "*/")
			if end == -1 {
				return "", false
			}
			i += end + 3
			continue
		case c == ',' && closesNext(s, i+1):
			continue
		case c == '.' && i+1 < len(s) && isDigit(s[i+1]) && isNumberStart(lastNonSpace(b.String())):
			b.WriteByte('0')
		case c == '{' || c == '[':
			depth++
		case c == '}' || c == ']':
			depth--
		}

		b.WriteByte(c)
		if depth == 0 {
			return b.String(), true
		}
	}
	return "", false
}

// closesNext reports whether the next significant byte closes a container.
func closesNext(s string, i int) bool {
	for ; i < len(s); i++ {
		switch s[i] {
		case ' ', '\n', '\r', '\t':
			continue
		case '}', ']':
			return true
		default:
			return false
		}
	}
	return false
}

func lastNonSpace(s string) byte {
	for i := len(s) - 1; i >= 0; i-- {
		if c := s[i]; c != ' ' && c != '\n' && c != '\r' && c != '\t' {
			return c
		}
	}
	return 0
}

func isNumberStart(prev byte) bool {
	switch prev {
	case ':', ',', '[', '-':
		return true
	default:
		return false
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
