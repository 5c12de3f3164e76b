package schema

import (
	"fmt"

	"github.com/glimte/jschema-go/jsonvalue"
	"github.com/glimte/jschema-go/vocabulary"
)

// refKeyword validates the instance against the schema a reference
// resolves to. It runs first in the validation sequence; resolution
// failures become validation failures on this node, so sibling keywords
// still contribute their own results.
type refKeyword struct {
	ref      string
	versions vocabulary.SchemaVersion
}

func newRefKeyword(value jsonvalue.Value, pc *ParseContext) (Keyword, error) {
	if value.Kind() != jsonvalue.String {
		return nil, fmt.Errorf("declared value must be a string, got %s", value.Kind())
	}
	if value.StringValue() == "" {
		return nil, fmt.Errorf("reference cannot be empty")
	}
	return &refKeyword{ref: value.StringValue(), versions: pc.Version}, nil
}

func (k *refKeyword) Name() string {
	return "$ref"
}

func (k *refKeyword) Versions() vocabulary.SchemaVersion {
	return k.versions
}

func (k *refKeyword) Sequence() int {
	return sequenceRef
}

func (k *refKeyword) Applies(instance jsonvalue.Value) bool {
	return true
}

func (k *refKeyword) Validate(ctx *ValidationContext) *ValidationResults {
	res := ctx.newResults("$ref")
	res.SetInfo("ref", jsonvalue.NewString(k.ref))

	target, docRoot, canonical, err := ctx.resolver.Resolve(ctx.Root, ctx.BaseURI, k.ref, ctx.Schema.Version())
	if err != nil {
		res.Fail(fmt.Sprintf("Expected: resolvable reference %q; Actual: %v.", k.ref, err))
		return res
	}

	// Guard against reference cycles: the same target applied to the
	// same instance location within one chain cannot make progress.
	key := refKey{target: canonical, instancePath: ctx.InstancePath}
	if _, active := ctx.activeRefs[key]; active {
		res.Fail(fmt.Sprintf("Expected: acyclic reference chain for %q; Actual: %v.", k.ref, ErrReferenceCycle))
		return res
	}
	ctx.activeRefs[key] = struct{}{}
	derived := ctx.withSchema(target)
	if docRoot != ctx.Root {
		// The target lives in another document: references inside it
		// walk from that document's own root.
		doc, _ := jsonvalue.SplitFragment(canonical)
		derived.Root = docRoot
		derived.BaseURI = doc
	}
	child := ctx.validator.validateSchema(derived)
	delete(ctx.activeRefs, key)

	child.Keyword = k.ref
	res.AddChild(child)
	return res
}

func (k *refKeyword) ToJSON() jsonvalue.Value {
	return jsonvalue.NewString(k.ref)
}

func (k *refKeyword) Equal(other Keyword) bool {
	o, ok := other.(*refKeyword)
	return ok && k.ref == o.ref
}
