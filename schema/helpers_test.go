package schema

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glimte/jschema-go/jsonvalue"
)

func mustValue(t *testing.T, src string) jsonvalue.Value {
	t.Helper()
	v, err := jsonvalue.Parse([]byte(src))
	require.NoError(t, err)
	return v
}

func mustSchema(t *testing.T, src string, opts ...ParseOption) *Schema {
	t.Helper()
	s, err := Parse(mustValue(t, src), opts...)
	require.NoError(t, err)
	return s
}

func mustValidate(t *testing.T, v *Validator, s *Schema, instance string) *ValidationResults {
	t.Helper()
	results, err := v.Validate(s, mustValue(t, instance))
	require.NoError(t, err)
	return results
}
