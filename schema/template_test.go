package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glimte/jschema-go/jsonvalue"
)

func TestExpandTemplate(t *testing.T) {
	info := map[string]jsonvalue.Value{
		"format": jsonvalue.NewString("email"),
		"actual": jsonvalue.NewString("nope"),
		"flag":   jsonvalue.NewBool(true),
		"count":  jsonvalue.NewInt(3),
	}

	tests := map[string]struct {
		template string
		want     string
	}{
		"substitutes string tokens": {
			template: "Expected: value matching format {{format}}; Actual: {{actual}}.",
			want:     "Expected: value matching format email; Actual: nope.",
		},
		"renders booleans lowercase": {
			template: "flag={{flag}}",
			want:     "flag=true",
		},
		"renders numbers in shortest form": {
			template: "count={{count}}",
			want:     "count=3",
		},
		"leaves unknown tokens literal": {
			template: "{{format}} and {{unset}}",
			want:     "email and {{unset}}",
		},
		"leaves unterminated braces alone": {
			template: "open {{format",
			want:     "open {{format",
		},
		"no tokens": {
			template: "plain text",
			want:     "plain text",
		},
		"adjacent tokens": {
			template: "{{format}}{{actual}}",
			want:     "emailnope",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExpandTemplate(tc.template, info))
		})
	}
}

func TestDefaultMessageTemplates(t *testing.T) {
	templates := DefaultMessageTemplates()
	assert.Equal(t, "Expected: value matching format {{format}}; Actual: {{actual}}.", templates.Format)
	assert.Equal(t, "Expected: known format; Actual: unknown format {{format}}.", templates.UnknownFormat)
}
