// Package wirecase converts decoded JSON between the backend's snake_case
// field convention and the client's camelCase convention. Transforms are pure:
// input values are never mutated, scalars and nulls pass through, array order
// and map shape are preserved, and a null value stays distinguishable from an
// absent key.
package wirecase

import (
	"errors"
	"strings"
	"unicode"
)

// maxDepth bounds recursion over untrusted wire input.
const maxDepth = 64

// ErrTooDeep is returned when a value nests beyond maxDepth levels.
var ErrTooDeep = errors.New("wirecase: value exceeds maximum nesting depth")

// ToClientForm rewrites every map key from snake_case to camelCase,
// recursively through maps and slices.
func ToClientForm(v any) (any, error) {
	return convert(v, SnakeToCamel, 0)
}

// ToWireForm rewrites every map key from camelCase to snake_case,
// recursively through maps and slices.
func ToWireForm(v any) (any, error) {
	return convert(v, CamelToSnake, 0)
}

func convert(v any, rekey func(string) string, depth int) (any, error) {
	if depth > maxDepth {
		return nil, ErrTooDeep
	}
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, inner := range val {
			conv, err := convert(inner, rekey, depth+1)
			if err != nil {
				return nil, err
			}
			out[rekey(k)] = conv
		}
		return out, nil
	case []any:
		out := make([]any, len(val))
		for i, inner := range val {
			conv, err := convert(inner, rekey, depth+1)
			if err != nil {
				return nil, err
			}
			out[i] = conv
		}
		return out, nil
	default:
		// Scalar leaf (string, number, bool, nil) passes through unchanged.
		return v, nil
	}
}

// SnakeToCamel rewrites one key: each underscore-separated segment after the
// first is capitalized and concatenated. Leading underscores are preserved
// verbatim. A key with no underscores is returned as-is, which makes the
// rewrite stable under repeated application to its own output.
func SnakeToCamel(key string) string {
	start := 0
	for start < len(key) && key[start] == '_' {
		start++
	}
	rest := key[start:]
	if !strings.Contains(rest, "_") {
		return key
	}

	var b strings.Builder
	b.Grow(len(key))
	b.WriteString(key[:start])
	up := false
	for _, r := range rest {
		switch {
		case r == '_':
			up = true
		case up:
			b.WriteRune(unicode.ToUpper(r))
			up = false
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CamelToSnake is the reverse rewrite: an underscore is inserted before each
// upper-case rune, which is lowered.
func CamelToSnake(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 4)
	for i, r := range key {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
