package jsonvalue

import (
	"fmt"
	"strconv"
	"strings"
)

// Pointer is a parsed RFC 6901 JSON Pointer. The empty pointer addresses
// the whole document.
type Pointer []string

// ParsePointer parses an RFC 6901 JSON Pointer. The empty string is the
// whole-document pointer; any other pointer must begin with '/'.
func ParsePointer(s string) (Pointer, error) {
	if s == "" {
		return Pointer{}, nil
	}
	if !strings.HasPrefix(s, "/") {
		return nil, fmt.Errorf("invalid json pointer %q: must start with '/'", s)
	}

	parts := strings.Split(s[1:], "/")
	segments := make(Pointer, 0, len(parts))
	for _, part := range parts {
		segment, err := unescapeSegment(part)
		if err != nil {
			return nil, fmt.Errorf("invalid json pointer %q: %w", s, err)
		}
		segments = append(segments, segment)
	}
	return segments, nil
}

func unescapeSegment(s string) (string, error) {
	if !strings.Contains(s, "~") {
		return s, nil
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '~' {
			b.WriteByte(s[i])
			continue
		}
		if i+1 >= len(s) {
			return "", fmt.Errorf("dangling '~' escape")
		}
		switch s[i+1] {
		case '0':
			b.WriteByte('~')
		case '1':
			b.WriteByte('/')
		default:
			return "", fmt.Errorf("invalid escape '~%c'", s[i+1])
		}
		i++
	}
	return b.String(), nil
}

func escapeSegment(s string) string {
	s = strings.ReplaceAll(s, "~", "~0")
	return strings.ReplaceAll(s, "/", "~1")
}

// String returns the canonical RFC 6901 text of the pointer.
func (p Pointer) String() string {
	if len(p) == 0 {
		return ""
	}
	var b strings.Builder
	for _, segment := range p {
		b.WriteByte('/')
		b.WriteString(escapeSegment(segment))
	}
	return b.String()
}

// Evaluate walks the pointer from v and returns the addressed node.
// Object segments select members by name; array segments must be
// decimal indices without leading zeros.
func (p Pointer) Evaluate(v Value) (Value, bool) {
	current := v
	for _, segment := range p {
		switch current.Kind() {
		case Object:
			member, ok := current.Member(segment)
			if !ok {
				return Value{}, false
			}
			current = member
		case Array:
			idx, ok := arrayIndex(segment)
			if !ok {
				return Value{}, false
			}
			elem, ok := current.Index(idx)
			if !ok {
				return Value{}, false
			}
			current = elem
		default:
			return Value{}, false
		}
	}
	return current, true
}

func arrayIndex(segment string) (int, bool) {
	if segment == "" || (len(segment) > 1 && segment[0] == '0') {
		return 0, false
	}
	idx, err := strconv.Atoi(segment)
	if err != nil || idx < 0 {
		return 0, false
	}
	return idx, true
}
