package schema

import (
	"fmt"

	"github.com/glimte/jschema-go/jsonvalue"
	"github.com/glimte/jschema-go/vocabulary"
)

// enumKeyword restricts the instance to a fixed set of values, compared
// by structural equality.
type enumKeyword struct {
	raw      jsonvalue.Value
	versions vocabulary.SchemaVersion
}

func newEnumKeyword(value jsonvalue.Value, pc *ParseContext) (Keyword, error) {
	if value.Kind() != jsonvalue.Array {
		return nil, fmt.Errorf("declared value must be an array, got %s", value.Kind())
	}
	if value.Len() == 0 {
		return nil, fmt.Errorf("enum array cannot be empty")
	}
	return &enumKeyword{raw: value, versions: pc.Version}, nil
}

func (k *enumKeyword) Name() string {
	return "enum"
}

func (k *enumKeyword) Versions() vocabulary.SchemaVersion {
	return k.versions
}

func (k *enumKeyword) Sequence() int {
	return sequenceEnum
}

func (k *enumKeyword) Applies(instance jsonvalue.Value) bool {
	return true
}

func (k *enumKeyword) Validate(ctx *ValidationContext) *ValidationResults {
	res := ctx.newResults("enum")
	res.SetInfo("expected", k.raw)
	res.SetInfo("actual", ctx.Instance)

	for _, allowed := range k.raw.Items() {
		if ctx.Instance.Equal(allowed) {
			return res
		}
	}
	res.Fail(fmt.Sprintf("Expected: one of %s; Actual: %s.", k.raw, ctx.Instance.QuotedString()))
	return res
}

func (k *enumKeyword) ToJSON() jsonvalue.Value {
	return k.raw
}

func (k *enumKeyword) Equal(other Keyword) bool {
	o, ok := other.(*enumKeyword)
	return ok && k.raw.Equal(o.raw)
}
