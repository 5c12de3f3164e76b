package schema

import (
	"fmt"
	"strings"

	"github.com/glimte/jschema-go/jsonvalue"
	"github.com/glimte/jschema-go/vocabulary"
)

// requiredKeyword demands that the named members are present on object
// instances. Draft-04 forbids the empty array; later drafts allow it.
type requiredKeyword struct {
	names    []string
	raw      jsonvalue.Value
	versions vocabulary.SchemaVersion
}

func newRequiredKeyword(value jsonvalue.Value, pc *ParseContext) (Keyword, error) {
	if value.Kind() != jsonvalue.Array {
		return nil, fmt.Errorf("declared value must be an array, got %s", value.Kind())
	}
	if value.Len() == 0 && pc.Version == vocabulary.Draft04 {
		return nil, fmt.Errorf("required array cannot be empty under draft-04")
	}

	names := make([]string, 0, value.Len())
	for _, elem := range value.Items() {
		if elem.Kind() != jsonvalue.String {
			return nil, fmt.Errorf("required entries must be strings, got %s", elem.Kind())
		}
		names = append(names, elem.StringValue())
	}
	return &requiredKeyword{names: names, raw: value, versions: pc.Version}, nil
}

func (k *requiredKeyword) Name() string {
	return "required"
}

func (k *requiredKeyword) Versions() vocabulary.SchemaVersion {
	return k.versions
}

func (k *requiredKeyword) Sequence() int {
	return sequenceRequired
}

func (k *requiredKeyword) Applies(instance jsonvalue.Value) bool {
	return instance.Kind() == jsonvalue.Object
}

func (k *requiredKeyword) Validate(ctx *ValidationContext) *ValidationResults {
	res := ctx.newResults("required")
	res.SetInfo("expected", k.raw)

	var missing []string
	for _, name := range k.names {
		if _, ok := ctx.Instance.Member(name); !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		missingValues := make([]jsonvalue.Value, len(missing))
		for i, name := range missing {
			missingValues[i] = jsonvalue.NewString(name)
		}
		res.SetInfo("missing", jsonvalue.NewArray(missingValues...))
		res.Fail(fmt.Sprintf("Expected: required properties [%s]; Actual: missing [%s].",
			strings.Join(k.names, ", "), strings.Join(missing, ", ")))
	}
	return res
}

func (k *requiredKeyword) ToJSON() jsonvalue.Value {
	return k.raw
}

func (k *requiredKeyword) Equal(other Keyword) bool {
	o, ok := other.(*requiredKeyword)
	return ok && k.raw.Equal(o.raw)
}
