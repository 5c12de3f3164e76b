package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glimte/jschema-go/format"
	"github.com/glimte/jschema-go/vocabulary"
)

func TestParse(t *testing.T) {
	t.Run("defaults to draft-07", func(t *testing.T) {
		s := mustSchema(t, `{"minProperties": 2}`)
		assert.Equal(t, vocabulary.Draft07, s.Version())
	})

	t.Run("$schema member selects the draft", func(t *testing.T) {
		s := mustSchema(t, `{"$schema": "http://json-schema.org/draft-04/schema#", "minItems": 1}`)
		assert.Equal(t, vocabulary.Draft04, s.Version())
	})

	t.Run("unrecognized $schema uri fails", func(t *testing.T) {
		_, err := Parse(mustValue(t, `{"$schema": "http://json-schema.org/draft-05/schema#"}`))
		assert.Error(t, err)
	})

	t.Run("WithDraft must name one dialect", func(t *testing.T) {
		_, err := Parse(mustValue(t, `{}`), WithDraft(vocabulary.All))
		assert.Error(t, err)
	})

	t.Run("unknown keywords are preserved but not validated", func(t *testing.T) {
		s := mustSchema(t, `{"frobnicate": 3, "minProperties": 1}`)

		assert.Len(t, s.Keywords(), 1)
		assert.True(t, s.ToJSON().Equal(mustValue(t, `{"frobnicate": 3, "minProperties": 1}`)))
	})

	t.Run("malformed keyword values fail construction", func(t *testing.T) {
		cases := map[string]string{
			"non-number limit":     `{"minProperties": "2"}`,
			"negative count":       `{"maxItems": -1}`,
			"fractional count":     `{"minLength": 1.5}`,
			"bad pattern":          `{"pattern": "("}`,
			"empty enum":           `{"enum": []}`,
			"unknown type name":    `{"type": "integerish"}`,
			"non-string required":  `{"required": [1]}`,
			"empty ref":            `{"$ref": ""}`,
			"non-object schema":    `42`,
			"non-array allOf":      `{"allOf": {}}`,
			"empty allOf":          `{"allOf": []}`,
			"non-string format":    `{"format": 3}`,
		}
		for name, src := range cases {
			t.Run(name, func(t *testing.T) {
				_, err := Parse(mustValue(t, src))
				assert.Error(t, err)
			})
		}
	})

	t.Run("id member name is draft specific", func(t *testing.T) {
		s04 := mustSchema(t, `{"id": "https://example.com/a.json"}`, WithDraft(vocabulary.Draft04))
		assert.Equal(t, "https://example.com/a.json", s04.ID())

		s07 := mustSchema(t, `{"$id": "https://example.com/b.json"}`)
		assert.Equal(t, "https://example.com/b.json", s07.ID())

		// Under draft-07 the draft-04 spelling is just an unknown member.
		s := mustSchema(t, `{"id": "https://example.com/c.json"}`)
		assert.Empty(t, s.ID())
	})

	t.Run("boolean schemas require draft-06 or later", func(t *testing.T) {
		pc := &ParseContext{Version: vocabulary.Draft07, Formats: format.DefaultRegistry(), AllowUnknownFormats: true, registry: DefaultKeywordRegistry()}
		s, err := pc.Subschema(mustValue(t, `true`))
		require.NoError(t, err)
		require.NotNil(t, s.BooleanValue())
		assert.True(t, *s.BooleanValue())

		pc.Version = vocabulary.Draft04
		_, err = pc.Subschema(mustValue(t, `false`))
		assert.Error(t, err)
	})

	t.Run("draft-04 rejects empty required", func(t *testing.T) {
		_, err := Parse(mustValue(t, `{"required": []}`), WithDraft(vocabulary.Draft04))
		assert.Error(t, err)

		_, err = Parse(mustValue(t, `{"required": []}`), WithDraft(vocabulary.Draft07))
		assert.NoError(t, err)
	})
}

func TestParseFormatPolicy(t *testing.T) {
	t.Run("unknown format fails fast when disallowed", func(t *testing.T) {
		_, err := Parse(mustValue(t, `{"format": "no-such-format"}`), WithStrictFormats(true))

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownFormat)
	})

	t.Run("unknown format is tolerated by default", func(t *testing.T) {
		_, err := Parse(mustValue(t, `{"format": "no-such-format"}`))
		assert.NoError(t, err)
	})

	t.Run("host formats are honored", func(t *testing.T) {
		registry := format.NewRegistry()
		require.NoError(t, registry.Register(format.Format{
			Name:      "product-code",
			Versions:  vocabulary.All,
			Predicate: format.StringPredicate(func(s string) bool { return len(s) == 8 }),
		}))

		_, err := Parse(mustValue(t, `{"format": "product-code"}`),
			WithFormatRegistry(registry), WithStrictFormats(true))
		assert.NoError(t, err)
	})
}

func TestSchemaRoundTrip(t *testing.T) {
	documents := []string{
		`{"minProperties": 2}`,
		`{"maxProperties": 10}`,
		`{"minItems": 1, "maxItems": 5}`,
		`{"minLength": 3, "maxLength": 10}`,
		`{"minimum": 0, "maximum": 100}`,
		`{"type": "object"}`,
		`{"type": ["string", "null"]}`,
		`{"enum": [1, "two", null]}`,
		`{"pattern": "^a+$"}`,
		`{"required": ["a", "b"]}`,
		`{"format": "email"}`,
		`{"properties": {"a": {"type": "string"}, "b": {"minimum": 1}}}`,
		`{"items": {"type": "number"}}`,
		`{"items": [{"type": "number"}, {"type": "string"}]}`,
		`{"allOf": [{"minProperties": 1}, {"maxProperties": 5}]}`,
		`{"anyOf": [{"type": "string"}, {"type": "number"}]}`,
		`{"not": {"type": "null"}}`,
		`{"definitions": {"positive": {"minimum": 1}}, "$ref": "#/definitions/positive"}`,
	}

	for _, src := range documents {
		t.Run(src, func(t *testing.T) {
			first := mustSchema(t, src)
			encoded := first.ToJSON()
			assert.True(t, encoded.Equal(mustValue(t, src)), "ToJSON diverged: %s", encoded)

			second, err := Parse(encoded)
			require.NoError(t, err)
			assert.True(t, first.Equal(second))

			// Per-keyword round trip: every keyword instance survives
			// with structural equality.
			for _, k := range first.Keywords() {
				other, ok := second.Keyword(k.Name())
				require.True(t, ok)
				assert.True(t, k.Equal(other), "keyword %q not equal after round trip", k.Name())
			}
		})
	}
}
