package schema

import (
	"strings"

	"github.com/glimte/jschema-go/jsonvalue"
)

// MessageTemplates configures the failure message templates of keywords
// whose messages are host-templatable. Templates are per-validator state,
// so concurrent validators with different templates do not interfere.
type MessageTemplates struct {
	// Format is used when a value fails a known format's predicate.
	// Available tokens: {{format}}, {{actual}}.
	Format string

	// UnknownFormat is used when a schema names an unregistered format
	// and the validator disallows unknown formats. Available tokens:
	// {{format}}, {{actual}}.
	UnknownFormat string
}

// DefaultMessageTemplates returns the built-in templates.
func DefaultMessageTemplates() MessageTemplates {
	return MessageTemplates{
		Format:        "Expected: value matching format {{format}}; Actual: {{actual}}.",
		UnknownFormat: "Expected: known format; Actual: unknown format {{format}}.",
	}
}

// ExpandTemplate replaces {{token}} placeholders with the natural text
// form of the matching info value. A token with no entry is left literal;
// booleans render lowercase and numbers in their shortest form.
func ExpandTemplate(template string, info map[string]jsonvalue.Value) string {
	var b strings.Builder
	rest := template
	for {
		start := strings.Index(rest, "{{")
		if start < 0 {
			b.WriteString(rest)
			return b.String()
		}
		end := strings.Index(rest[start+2:], "}}")
		if end < 0 {
			b.WriteString(rest)
			return b.String()
		}

		token := rest[start+2 : start+2+end]
		b.WriteString(rest[:start])
		if value, ok := info[token]; ok {
			b.WriteString(value.String())
		} else {
			b.WriteString(rest[start : start+2+end+2])
		}
		rest = rest[start+2+end+2:]
	}
}
