package vocabulary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaVersion(t *testing.T) {
	t.Run("Includes requires every bit", func(t *testing.T) {
		assert.True(t, All.Includes(Draft04))
		assert.True(t, (Draft06 | Draft07).Includes(Draft07))
		assert.False(t, Draft06.Includes(Draft07))
		assert.False(t, All.Includes(None))
	})

	t.Run("Intersects requires one shared bit", func(t *testing.T) {
		assert.True(t, (Draft04 | Draft06).Intersects(Draft06|Draft07))
		assert.False(t, Draft04.Intersects(Draft07))
		assert.False(t, All.Intersects(None))
	})

	t.Run("IsSingle identifies concrete drafts", func(t *testing.T) {
		assert.True(t, Draft04.IsSingle())
		assert.True(t, Draft07.IsSingle())
		assert.False(t, None.IsSingle())
		assert.False(t, All.IsSingle())
	})

	t.Run("String lists drafts", func(t *testing.T) {
		assert.Equal(t, "none", None.String())
		assert.Equal(t, "draft-06", Draft06.String())
		assert.Equal(t, "draft-04|draft-07", (Draft04 | Draft07).String())
	})
}

func TestMetaSchema(t *testing.T) {
	t.Run("FromMetaSchema maps known uris", func(t *testing.T) {
		v, err := FromMetaSchema("http://json-schema.org/draft-07/schema#")
		require.NoError(t, err)
		assert.Equal(t, Draft07, v)

		v, err = FromMetaSchema("http://json-schema.org/draft-04/schema")
		require.NoError(t, err)
		assert.Equal(t, Draft04, v)
	})

	t.Run("FromMetaSchema rejects unknown uris", func(t *testing.T) {
		_, err := FromMetaSchema("http://json-schema.org/draft-05/schema#")
		assert.Error(t, err)
	})

	t.Run("MetaSchema round-trips single drafts", func(t *testing.T) {
		for _, v := range []SchemaVersion{Draft04, Draft06, Draft07} {
			uri := v.MetaSchema()
			require.NotEmpty(t, uri)

			parsed, err := FromMetaSchema(uri)
			require.NoError(t, err)
			assert.Equal(t, v, parsed)
		}
	})

	t.Run("MetaSchema is empty for unions", func(t *testing.T) {
		assert.Empty(t, All.MetaSchema())
		assert.Empty(t, None.MetaSchema())
	})
}
