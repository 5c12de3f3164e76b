package jsonvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePointer(t *testing.T) {
	t.Run("empty pointer addresses the document", func(t *testing.T) {
		p, err := ParsePointer("")

		require.NoError(t, err)
		assert.Len(t, p, 0)
	})

	t.Run("segments are split and unescaped", func(t *testing.T) {
		p, err := ParsePointer("/a~1b/c~0d")

		require.NoError(t, err)
		assert.Equal(t, Pointer{"a/b", "c~d"}, p)
	})

	t.Run("missing leading slash is rejected", func(t *testing.T) {
		_, err := ParsePointer("a/b")
		assert.Error(t, err)
	})

	t.Run("invalid escape is rejected", func(t *testing.T) {
		_, err := ParsePointer("/a~2")
		assert.Error(t, err)

		_, err = ParsePointer("/a~")
		assert.Error(t, err)
	})

	t.Run("String re-escapes segments", func(t *testing.T) {
		p, err := ParsePointer("/a~1b/x")

		require.NoError(t, err)
		assert.Equal(t, "/a~1b/x", p.String())
	})
}

func TestPointerEvaluate(t *testing.T) {
	doc, err := Parse([]byte(`{"a": {"b": [10, 20, 30]}, "": 7}`))
	require.NoError(t, err)

	t.Run("object and array segments resolve", func(t *testing.T) {
		p, err := ParsePointer("/a/b/1")
		require.NoError(t, err)

		v, ok := p.Evaluate(doc)
		require.True(t, ok)
		assert.Equal(t, float64(20), v.Float())
	})

	t.Run("empty segment addresses the empty member name", func(t *testing.T) {
		p, err := ParsePointer("/")
		require.NoError(t, err)

		v, ok := p.Evaluate(doc)
		require.True(t, ok)
		assert.Equal(t, float64(7), v.Float())
	})

	t.Run("missing member fails", func(t *testing.T) {
		p, _ := ParsePointer("/nope")
		_, ok := p.Evaluate(doc)
		assert.False(t, ok)
	})

	t.Run("leading zeros and out-of-range indices fail", func(t *testing.T) {
		p, _ := ParsePointer("/a/b/01")
		_, ok := p.Evaluate(doc)
		assert.False(t, ok)

		p, _ = ParsePointer("/a/b/3")
		_, ok = p.Evaluate(doc)
		assert.False(t, ok)
	})

	t.Run("scalar nodes terminate evaluation", func(t *testing.T) {
		p, _ := ParsePointer("/a/b/0/x")
		_, ok := p.Evaluate(doc)
		assert.False(t, ok)
	})
}

func TestResolveURI(t *testing.T) {
	t.Run("relative references resolve against the base", func(t *testing.T) {
		resolved, err := ResolveURI("https://example.com/schemas/root.json", "other.json#/definitions/x")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/schemas/other.json#/definitions/x", resolved)
	})

	t.Run("empty base leaves the reference unchanged", func(t *testing.T) {
		resolved, err := ResolveURI("", "#/definitions/x")

		require.NoError(t, err)
		assert.Equal(t, "#/definitions/x", resolved)
	})

	t.Run("SplitFragment separates document and fragment", func(t *testing.T) {
		doc, frag := SplitFragment("https://example.com/a.json#/definitions/x")
		assert.Equal(t, "https://example.com/a.json", doc)
		assert.Equal(t, "/definitions/x", frag)

		doc, frag = SplitFragment("https://example.com/a.json")
		assert.Equal(t, "https://example.com/a.json", doc)
		assert.Equal(t, "", frag)
	})
}
