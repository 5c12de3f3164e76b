package schema

import (
	"fmt"
	"strings"

	"github.com/glimte/jschema-go/jsonvalue"
	"github.com/glimte/jschema-go/vocabulary"
)

var typeNames = map[string]struct{}{
	"null":    {},
	"boolean": {},
	"number":  {},
	"integer": {},
	"string":  {},
	"array":   {},
	"object":  {},
}

// typeKeyword constrains the instance's JSON kind. The declared value is
// a type name or an array of type names; "integer" matches numbers with
// zero fraction.
type typeKeyword struct {
	types    []string
	raw      jsonvalue.Value
	versions vocabulary.SchemaVersion
}

func newTypeKeyword(value jsonvalue.Value, pc *ParseContext) (Keyword, error) {
	var types []string
	switch value.Kind() {
	case jsonvalue.String:
		types = []string{value.StringValue()}
	case jsonvalue.Array:
		for _, elem := range value.Items() {
			if elem.Kind() != jsonvalue.String {
				return nil, fmt.Errorf("type entries must be strings, got %s", elem.Kind())
			}
			types = append(types, elem.StringValue())
		}
		if len(types) == 0 {
			return nil, fmt.Errorf("type array cannot be empty")
		}
	default:
		return nil, fmt.Errorf("declared value must be a string or array of strings, got %s", value.Kind())
	}
	for _, t := range types {
		if _, ok := typeNames[t]; !ok {
			return nil, fmt.Errorf("unknown type name %q", t)
		}
	}
	return &typeKeyword{types: types, raw: value, versions: pc.Version}, nil
}

func (k *typeKeyword) Name() string {
	return "type"
}

func (k *typeKeyword) Versions() vocabulary.SchemaVersion {
	return k.versions
}

func (k *typeKeyword) Sequence() int {
	return sequenceType
}

func (k *typeKeyword) Applies(instance jsonvalue.Value) bool {
	return true
}

func (k *typeKeyword) Validate(ctx *ValidationContext) *ValidationResults {
	res := ctx.newResults("type")

	actual := ctx.Instance.Kind().String()
	res.SetInfo("expected", k.raw)
	res.SetInfo("actual", jsonvalue.NewString(actual))

	for _, t := range k.types {
		if typeMatches(t, ctx.Instance) {
			return res
		}
	}
	res.Fail(fmt.Sprintf("Expected: type %s; Actual: %s.", strings.Join(k.types, " or "), actual))
	return res
}

func typeMatches(name string, instance jsonvalue.Value) bool {
	switch name {
	case "integer":
		return instance.Kind() == jsonvalue.Number && instance.IsIntegral()
	default:
		return instance.Kind().String() == name
	}
}

func (k *typeKeyword) ToJSON() jsonvalue.Value {
	return k.raw
}

func (k *typeKeyword) Equal(other Keyword) bool {
	o, ok := other.(*typeKeyword)
	return ok && k.raw.Equal(o.raw)
}
