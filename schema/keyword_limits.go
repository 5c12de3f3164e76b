package schema

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/glimte/jschema-go/jsonvalue"
	"github.com/glimte/jschema-go/vocabulary"
)

// relation is the comparison direction of a limit keyword.
type relation int

const (
	relationAtLeast relation = iota
	relationAtMost
)

func (r relation) String() string {
	if r == relationAtLeast {
		return ">="
	}
	return "<="
}

func (r relation) holds(actual, bound float64) bool {
	if r == relationAtLeast {
		return actual >= bound
	}
	return actual <= bound
}

func measureLen(v jsonvalue.Value) float64 {
	return float64(v.Len())
}

func measureRunes(v jsonvalue.Value) float64 {
	return float64(utf8.RuneCountInString(v.StringValue()))
}

func measureNumber(v jsonvalue.Value) float64 {
	return v.Float()
}

// limitSpec declares one comparison keyword: which instance kind it
// constrains, which direction it compares in and how the instance
// dimension is measured. Every draft shares the same comparison logic;
// the registry wires one spec per keyword name.
type limitSpec struct {
	name     string
	rel      relation
	kind     jsonvalue.Kind
	unit     string
	integral bool
	measure  func(jsonvalue.Value) float64
}

// limitKeyword measures an instance dimension and compares it against the
// declared bound.
type limitKeyword struct {
	spec     limitSpec
	versions vocabulary.SchemaVersion
	bound    jsonvalue.Value
}

// limitConstructor builds the KeywordConstructor for a limit spec.
func limitConstructor(spec limitSpec) KeywordConstructor {
	return func(value jsonvalue.Value, pc *ParseContext) (Keyword, error) {
		if value.Kind() != jsonvalue.Number {
			return nil, fmt.Errorf("declared value must be a number, got %s", value.Kind())
		}
		if spec.integral {
			n, ok := value.Int()
			if !ok || n < 0 {
				return nil, fmt.Errorf("declared value must be a non-negative integer, got %s", value)
			}
		}
		return &limitKeyword{
			spec:     spec,
			versions: pc.Version,
			bound:    value,
		}, nil
	}
}

func (k *limitKeyword) Name() string {
	return k.spec.name
}

func (k *limitKeyword) Versions() vocabulary.SchemaVersion {
	return k.versions
}

func (k *limitKeyword) Sequence() int {
	return sequenceLimits
}

func (k *limitKeyword) Applies(instance jsonvalue.Value) bool {
	return instance.Kind() == k.spec.kind
}

func (k *limitKeyword) Validate(ctx *ValidationContext) *ValidationResults {
	res := ctx.newResults(k.spec.name)

	actual := k.spec.measure(ctx.Instance)
	res.SetInfo("expected", k.bound)
	res.SetInfo("actual", jsonvalue.NewFloat(actual))

	if !k.spec.rel.holds(actual, k.bound.Float()) {
		unit := ""
		if k.spec.unit != "" {
			unit = " " + k.spec.unit
		}
		res.Fail(fmt.Sprintf("Expected: %s %s%s; Actual: %s%s.",
			k.spec.rel, k.bound, unit, formatNumber(actual), unit))
	}
	return res
}

func (k *limitKeyword) ToJSON() jsonvalue.Value {
	return k.bound
}

func (k *limitKeyword) Equal(other Keyword) bool {
	o, ok := other.(*limitKeyword)
	return ok && k.spec.name == o.spec.name && k.bound.Equal(o.bound)
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
