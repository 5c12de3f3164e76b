package jsonvalue

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("Parse decodes every kind", func(t *testing.T) {
		v, err := Parse([]byte(`{"null": null, "bool": true, "num": 1.5, "str": "x", "arr": [1, 2], "obj": {}}`))

		require.NoError(t, err)
		assert.Equal(t, Object, v.Kind())

		member, ok := v.Member("null")
		require.True(t, ok)
		assert.True(t, member.IsNull())

		member, _ = v.Member("bool")
		assert.Equal(t, Bool, member.Kind())
		assert.True(t, member.BoolValue())

		member, _ = v.Member("num")
		assert.Equal(t, Number, member.Kind())
		assert.Equal(t, 1.5, member.Float())

		member, _ = v.Member("str")
		assert.Equal(t, "x", member.StringValue())

		member, _ = v.Member("arr")
		assert.Equal(t, Array, member.Kind())
		assert.Equal(t, 2, member.Len())

		member, _ = v.Member("obj")
		assert.Equal(t, Object, member.Kind())
		assert.Equal(t, 0, member.Len())
	})

	t.Run("Parse preserves object member order", func(t *testing.T) {
		v, err := Parse([]byte(`{"z": 1, "a": 2, "m": 3}`))

		require.NoError(t, err)
		assert.Equal(t, []string{"z", "a", "m"}, v.Keys())
	})

	t.Run("Parse rejects invalid json", func(t *testing.T) {
		_, err := Parse([]byte(`{`))
		assert.Error(t, err)
	})

	t.Run("Parse rejects trailing content", func(t *testing.T) {
		_, err := Parse([]byte(`{} {}`))
		assert.Error(t, err)
	})
}

func TestEqual(t *testing.T) {
	t.Run("numbers compare numerically", func(t *testing.T) {
		a, _ := Parse([]byte(`1`))
		b, _ := Parse([]byte(`1.0`))

		assert.True(t, a.Equal(b))
	})

	t.Run("object member order is ignored", func(t *testing.T) {
		a, _ := Parse([]byte(`{"x": 1, "y": 2}`))
		b, _ := Parse([]byte(`{"y": 2, "x": 1}`))

		assert.True(t, a.Equal(b))
	})

	t.Run("different kinds are unequal", func(t *testing.T) {
		assert.False(t, NewString("1").Equal(NewInt(1)))
		assert.False(t, NewNull().Equal(NewBool(false)))
	})

	t.Run("arrays compare element-wise in order", func(t *testing.T) {
		a, _ := Parse([]byte(`[1, 2]`))
		b, _ := Parse([]byte(`[2, 1]`))

		assert.False(t, a.Equal(b))
	})
}

func TestEncode(t *testing.T) {
	t.Run("Encode round-trips documents", func(t *testing.T) {
		source := []byte(`{"b":[true,null,"x"],"a":{"n":1.5}}`)
		v, err := Parse(source)
		require.NoError(t, err)

		encoded, err := v.Encode()
		require.NoError(t, err)
		assert.Equal(t, string(source), string(encoded))
	})

	t.Run("Encode keeps numbers in textual form", func(t *testing.T) {
		v, err := Parse([]byte(`1.10`))
		require.NoError(t, err)

		encoded, err := v.Encode()
		require.NoError(t, err)
		assert.Equal(t, "1.10", string(encoded))
	})
}

func TestString(t *testing.T) {
	t.Run("booleans render lowercase", func(t *testing.T) {
		assert.Equal(t, "true", NewBool(true).String())
		assert.Equal(t, "false", NewBool(false).String())
	})

	t.Run("numbers render in natural form", func(t *testing.T) {
		assert.Equal(t, "2", NewInt(2).String())
		assert.Equal(t, "1.5", NewFloat(1.5).String())
	})

	t.Run("strings render unquoted", func(t *testing.T) {
		assert.Equal(t, "hello", NewString("hello").String())
	})

	t.Run("QuotedString quotes only strings", func(t *testing.T) {
		assert.Equal(t, `"hello"`, NewString("hello").QuotedString())
		assert.Equal(t, "2", NewInt(2).QuotedString())
	})

	t.Run("composites render as compact json", func(t *testing.T) {
		v, _ := Parse([]byte(`{"a": [1, true]}`))
		assert.Equal(t, `{"a":[1,true]}`, v.String())
	})
}

func TestNumberAccess(t *testing.T) {
	t.Run("Int reports integral numbers", func(t *testing.T) {
		i, ok := NewNumber(json.Number("42")).Int()
		assert.True(t, ok)
		assert.Equal(t, int64(42), i)

		i, ok = NewNumber(json.Number("2.0")).Int()
		assert.True(t, ok)
		assert.Equal(t, int64(2), i)

		_, ok = NewNumber(json.Number("2.5")).Int()
		assert.False(t, ok)
	})

	t.Run("IsIntegral matches Int", func(t *testing.T) {
		assert.True(t, NewInt(3).IsIntegral())
		assert.False(t, NewFloat(3.25).IsIntegral())
		assert.False(t, NewString("3").IsIntegral())
	})
}
