package schema

import (
	"fmt"
	"regexp"

	"github.com/glimte/jschema-go/jsonvalue"
	"github.com/glimte/jschema-go/vocabulary"
)

// patternKeyword matches string instances against a regular expression
// compiled at schema construction.
type patternKeyword struct {
	pattern  string
	re       *regexp.Regexp
	versions vocabulary.SchemaVersion
}

func newPatternKeyword(value jsonvalue.Value, pc *ParseContext) (Keyword, error) {
	if value.Kind() != jsonvalue.String {
		return nil, fmt.Errorf("declared value must be a string, got %s", value.Kind())
	}
	re, err := regexp.Compile(value.StringValue())
	if err != nil {
		return nil, fmt.Errorf("invalid pattern: %w", err)
	}
	return &patternKeyword{pattern: value.StringValue(), re: re, versions: pc.Version}, nil
}

func (k *patternKeyword) Name() string {
	return "pattern"
}

func (k *patternKeyword) Versions() vocabulary.SchemaVersion {
	return k.versions
}

func (k *patternKeyword) Sequence() int {
	return sequencePattern
}

func (k *patternKeyword) Applies(instance jsonvalue.Value) bool {
	return instance.Kind() == jsonvalue.String
}

func (k *patternKeyword) Validate(ctx *ValidationContext) *ValidationResults {
	res := ctx.newResults("pattern")
	res.SetInfo("expected", jsonvalue.NewString(k.pattern))
	res.SetInfo("actual", ctx.Instance)

	if !k.re.MatchString(ctx.Instance.StringValue()) {
		res.Fail(fmt.Sprintf("Expected: match for pattern %q; Actual: %s.", k.pattern, ctx.Instance.QuotedString()))
	}
	return res
}

func (k *patternKeyword) ToJSON() jsonvalue.Value {
	return jsonvalue.NewString(k.pattern)
}

func (k *patternKeyword) Equal(other Keyword) bool {
	o, ok := other.(*patternKeyword)
	return ok && k.pattern == o.pattern
}
