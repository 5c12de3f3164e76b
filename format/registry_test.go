package format

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glimte/jschema-go/jsonvalue"
	"github.com/glimte/jschema-go/vocabulary"
)

func TestRegistry(t *testing.T) {
	t.Run("Register and Get round-trip", func(t *testing.T) {
		registry := NewRegistry()

		err := registry.Register(Format{
			Name:      "even-length",
			Versions:  vocabulary.All,
			Predicate: StringPredicate(func(s string) bool { return len(s)%2 == 0 }),
		})
		require.NoError(t, err)

		f, ok := registry.Get("even-length")
		require.True(t, ok)
		assert.Equal(t, "even-length", f.Name)
		assert.True(t, f.Predicate(jsonvalue.NewString("ab")))
		assert.False(t, f.Predicate(jsonvalue.NewString("abc")))
	})

	t.Run("Register rejects invalid entries", func(t *testing.T) {
		registry := NewRegistry()

		err := registry.Register(Format{Versions: vocabulary.All, Predicate: StringPredicate(func(string) bool { return true })})
		assert.Error(t, err)

		err = registry.Register(Format{Name: "x", Versions: vocabulary.All})
		assert.Error(t, err)

		err = registry.Register(Format{Name: "x", Predicate: StringPredicate(func(string) bool { return true })})
		assert.Error(t, err)
	})

	t.Run("Register rejects duplicates", func(t *testing.T) {
		registry := NewRegistry()
		entry := Format{
			Name:      "x",
			Versions:  vocabulary.All,
			Predicate: StringPredicate(func(string) bool { return true }),
		}

		require.NoError(t, registry.Register(entry))
		err := registry.Register(entry)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already registered")
	})

	t.Run("Names are sorted", func(t *testing.T) {
		registry := NewRegistry()
		for _, name := range []string{"zzz", "aaa", "mmm"} {
			require.NoError(t, registry.Register(Format{
				Name:      name,
				Versions:  vocabulary.All,
				Predicate: StringPredicate(func(string) bool { return true }),
			}))
		}

		assert.Equal(t, []string{"aaa", "mmm", "zzz"}, registry.Names())
	})

	t.Run("unknown names miss", func(t *testing.T) {
		_, ok := NewRegistry().Get("nope")
		assert.False(t, ok)
	})
}

func TestBuiltinFormats(t *testing.T) {
	registry := DefaultRegistry()

	check := func(t *testing.T, name, value string) bool {
		t.Helper()
		f, ok := registry.Get(name)
		require.True(t, ok, "format %q not registered", name)
		return f.Predicate(jsonvalue.NewString(value))
	}

	t.Run("date-time", func(t *testing.T) {
		assert.True(t, check(t, "date-time", "2024-06-01T12:30:00Z"))
		assert.True(t, check(t, "date-time", "2024-06-01T12:30:00+02:00"))
		assert.False(t, check(t, "date-time", "2024-06-01"))
	})

	t.Run("date and time", func(t *testing.T) {
		assert.True(t, check(t, "date", "2024-06-01"))
		assert.False(t, check(t, "date", "01/06/2024"))
		assert.True(t, check(t, "time", "12:30:00"))
		assert.True(t, check(t, "time", "12:30:00+02:00"))
		assert.False(t, check(t, "time", "noon"))
	})

	t.Run("email", func(t *testing.T) {
		assert.True(t, check(t, "email", "john@example.com"))
		assert.False(t, check(t, "email", "not-an-email"))
		assert.False(t, check(t, "email", "John Doe <john@example.com>"))
	})

	t.Run("hostname", func(t *testing.T) {
		assert.True(t, check(t, "hostname", "example.com"))
		assert.True(t, check(t, "hostname", "a-b.example"))
		assert.False(t, check(t, "hostname", "-leading.example"))
		assert.False(t, check(t, "hostname", "under_score.example"))
	})

	t.Run("ip addresses", func(t *testing.T) {
		assert.True(t, check(t, "ipv4", "192.168.0.1"))
		assert.False(t, check(t, "ipv4", "::1"))
		assert.False(t, check(t, "ipv4", "256.0.0.1"))
		assert.True(t, check(t, "ipv6", "::1"))
		assert.False(t, check(t, "ipv6", "192.168.0.1"))
	})

	t.Run("uri and uri-reference", func(t *testing.T) {
		assert.True(t, check(t, "uri", "https://example.com/x"))
		assert.False(t, check(t, "uri", "/relative/only"))
		assert.True(t, check(t, "uri-reference", "/relative/only"))
	})

	t.Run("uuid", func(t *testing.T) {
		assert.True(t, check(t, "uuid", uuid.NewString()))
		assert.False(t, check(t, "uuid", "not-a-uuid"))
	})

	t.Run("regex", func(t *testing.T) {
		assert.True(t, check(t, "regex", "^a+$"))
		assert.False(t, check(t, "regex", "("))
	})

	t.Run("json-pointer", func(t *testing.T) {
		assert.True(t, check(t, "json-pointer", "/a/b"))
		assert.False(t, check(t, "json-pointer", "a/b"))
	})

	t.Run("non-string values pass vacuously", func(t *testing.T) {
		f, ok := registry.Get("email")
		require.True(t, ok)
		assert.True(t, f.Predicate(jsonvalue.NewInt(3)))
	})
}
