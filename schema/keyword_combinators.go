package schema

import (
	"fmt"
	"strconv"

	"github.com/glimte/jschema-go/jsonvalue"
	"github.com/glimte/jschema-go/vocabulary"
)

func parseSchemaList(value jsonvalue.Value, pc *ParseContext) ([]*Schema, error) {
	if value.Kind() != jsonvalue.Array {
		return nil, fmt.Errorf("declared value must be an array, got %s", value.Kind())
	}
	if value.Len() == 0 {
		return nil, fmt.Errorf("subschema array cannot be empty")
	}

	subs := make([]*Schema, 0, value.Len())
	for i, elem := range value.Items() {
		sub, err := pc.Subschema(elem)
		if err != nil {
			return nil, fmt.Errorf("subschema %d: %w", i, err)
		}
		subs = append(subs, sub)
	}
	return subs, nil
}

func registerSchemaList(subs []*Schema, r *Resolver, baseURI string) error {
	for _, sub := range subs {
		if err := sub.RegisterSubschemas(r, baseURI); err != nil {
			return err
		}
	}
	return nil
}

func resolveSchemaList(name string, subs []*Schema, segments []string, versions vocabulary.SchemaVersion) (*Schema, []string, error) {
	if len(segments) < 2 || segments[0] != name {
		return nil, nil, fmt.Errorf("%w: %s requires an index segment", ErrUnresolvedReference, name)
	}
	idx, err := strconv.Atoi(segments[1])
	if err != nil || idx < 0 || idx >= len(subs) {
		return nil, nil, fmt.Errorf("%w: no %s subschema at index %q", ErrUnresolvedReference, name, segments[1])
	}
	if err := checkSubschemaVersion(subs[idx], versions); err != nil {
		return nil, nil, err
	}
	return subs[idx], segments[2:], nil
}

func schemaListJSON(subs []*Schema) jsonvalue.Value {
	elems := make([]jsonvalue.Value, len(subs))
	for i, sub := range subs {
		elems[i] = sub.ToJSON()
	}
	return jsonvalue.NewArray(elems...)
}

func schemaListEqual(a, b []*Schema) bool {
	if len(a) != len(b) {
		return false
	}
	for i, sub := range a {
		if !sub.Equal(b[i]) {
			return false
		}
	}
	return true
}

// allOfKeyword requires the instance to satisfy every subschema.
type allOfKeyword struct {
	subs     []*Schema
	versions vocabulary.SchemaVersion
}

func newAllOfKeyword(value jsonvalue.Value, pc *ParseContext) (Keyword, error) {
	subs, err := parseSchemaList(value, pc)
	if err != nil {
		return nil, err
	}
	return &allOfKeyword{subs: subs, versions: pc.Version}, nil
}

func (k *allOfKeyword) Name() string {
	return "allOf"
}

func (k *allOfKeyword) Versions() vocabulary.SchemaVersion {
	return k.versions
}

func (k *allOfKeyword) Sequence() int {
	return sequenceCombinators
}

func (k *allOfKeyword) Applies(instance jsonvalue.Value) bool {
	return true
}

func (k *allOfKeyword) Validate(ctx *ValidationContext) *ValidationResults {
	res := ctx.newResults("allOf")

	failed := 0
	for i, sub := range k.subs {
		child := ctx.validator.validateSchema(ctx.withSchema(sub))
		child.Keyword = strconv.Itoa(i)
		res.AddChild(child)
		if !child.Valid {
			failed++
			if ctx.Options.ShortCircuit {
				break
			}
		}
	}
	if failed > 0 {
		res.Message = fmt.Sprintf("Expected: all of %d subschemas valid; Actual: %d invalid.", len(k.subs), failed)
	}
	return res
}

func (k *allOfKeyword) RegisterSubschemas(r *Resolver, baseURI string) error {
	return registerSchemaList(k.subs, r, baseURI)
}

func (k *allOfKeyword) ResolveSubschema(segments []string, versions vocabulary.SchemaVersion) (*Schema, []string, error) {
	return resolveSchemaList("allOf", k.subs, segments, versions)
}

func (k *allOfKeyword) ToJSON() jsonvalue.Value {
	return schemaListJSON(k.subs)
}

func (k *allOfKeyword) Equal(other Keyword) bool {
	o, ok := other.(*allOfKeyword)
	return ok && schemaListEqual(k.subs, o.subs)
}

// anyOfKeyword requires the instance to satisfy at least one subschema.
// On success only the first satisfied branch is attached as a child, so
// the parent-validity invariant holds; on failure every attempted branch
// is attached for diagnostics.
type anyOfKeyword struct {
	subs     []*Schema
	versions vocabulary.SchemaVersion
}

func newAnyOfKeyword(value jsonvalue.Value, pc *ParseContext) (Keyword, error) {
	subs, err := parseSchemaList(value, pc)
	if err != nil {
		return nil, err
	}
	return &anyOfKeyword{subs: subs, versions: pc.Version}, nil
}

func (k *anyOfKeyword) Name() string {
	return "anyOf"
}

func (k *anyOfKeyword) Versions() vocabulary.SchemaVersion {
	return k.versions
}

func (k *anyOfKeyword) Sequence() int {
	return sequenceCombinators
}

func (k *anyOfKeyword) Applies(instance jsonvalue.Value) bool {
	return true
}

func (k *anyOfKeyword) Validate(ctx *ValidationContext) *ValidationResults {
	res := ctx.newResults("anyOf")

	attempted := make([]*ValidationResults, 0, len(k.subs))
	for i, sub := range k.subs {
		child := ctx.validator.validateSchema(ctx.withSchema(sub))
		child.Keyword = strconv.Itoa(i)
		if child.Valid {
			res.AddChild(child)
			res.SetAnnotation(jsonvalue.NewInt(int64(i)))
			return res
		}
		attempted = append(attempted, child)
	}

	for _, child := range attempted {
		res.AddChild(child)
	}
	res.Message = fmt.Sprintf("Expected: at least one of %d subschemas valid; Actual: 0 valid.", len(k.subs))
	return res
}

func (k *anyOfKeyword) RegisterSubschemas(r *Resolver, baseURI string) error {
	return registerSchemaList(k.subs, r, baseURI)
}

func (k *anyOfKeyword) ResolveSubschema(segments []string, versions vocabulary.SchemaVersion) (*Schema, []string, error) {
	return resolveSchemaList("anyOf", k.subs, segments, versions)
}

func (k *anyOfKeyword) ToJSON() jsonvalue.Value {
	return schemaListJSON(k.subs)
}

func (k *anyOfKeyword) Equal(other Keyword) bool {
	o, ok := other.(*anyOfKeyword)
	return ok && schemaListEqual(k.subs, o.subs)
}

// notKeyword inverts a subschema: the instance is valid iff the subschema
// rejects it. The subschema's result is never attached as a child, since
// its validity is the inverse of this node's.
type notKeyword struct {
	sub      *Schema
	versions vocabulary.SchemaVersion
}

func newNotKeyword(value jsonvalue.Value, pc *ParseContext) (Keyword, error) {
	sub, err := pc.Subschema(value)
	if err != nil {
		return nil, err
	}
	return &notKeyword{sub: sub, versions: pc.Version}, nil
}

func (k *notKeyword) Name() string {
	return "not"
}

func (k *notKeyword) Versions() vocabulary.SchemaVersion {
	return k.versions
}

func (k *notKeyword) Sequence() int {
	return sequenceCombinators
}

func (k *notKeyword) Applies(instance jsonvalue.Value) bool {
	return true
}

func (k *notKeyword) Validate(ctx *ValidationContext) *ValidationResults {
	res := ctx.newResults("not")

	child := ctx.validator.validateSchema(ctx.withSchema(k.sub))
	if child.Valid {
		res.Fail(fmt.Sprintf("Expected: subschema to reject value; Actual: %s accepted.", ctx.Instance.QuotedString()))
	}
	return res
}

func (k *notKeyword) RegisterSubschemas(r *Resolver, baseURI string) error {
	return k.sub.RegisterSubschemas(r, baseURI)
}

func (k *notKeyword) ResolveSubschema(segments []string, versions vocabulary.SchemaVersion) (*Schema, []string, error) {
	if len(segments) == 0 || segments[0] != "not" {
		return nil, nil, fmt.Errorf("%w: segment does not address not", ErrUnresolvedReference)
	}
	if err := checkSubschemaVersion(k.sub, versions); err != nil {
		return nil, nil, err
	}
	return k.sub, segments[1:], nil
}

func (k *notKeyword) ToJSON() jsonvalue.Value {
	return k.sub.ToJSON()
}

func (k *notKeyword) Equal(other Keyword) bool {
	o, ok := other.(*notKeyword)
	return ok && k.sub.Equal(o.sub)
}
