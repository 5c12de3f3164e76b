package schema

import (
	"fmt"
	"strconv"

	"github.com/glimte/jschema-go/jsonvalue"
	"github.com/glimte/jschema-go/vocabulary"
)

func checkSubschemaVersion(sub *Schema, versions vocabulary.SchemaVersion) error {
	if !sub.Version().Intersects(versions) {
		return fmt.Errorf("%w: target is %s, reference supports %s", ErrVersionMismatch, sub.Version(), versions)
	}
	return nil
}

// propertiesKeyword validates object members against per-name subschemas.
// Members without a declared subschema are unconstrained.
type propertiesKeyword struct {
	props    map[string]*Schema
	order    []string
	versions vocabulary.SchemaVersion
}

func newPropertiesKeyword(value jsonvalue.Value, pc *ParseContext) (Keyword, error) {
	if value.Kind() != jsonvalue.Object {
		return nil, fmt.Errorf("declared value must be an object, got %s", value.Kind())
	}

	props := make(map[string]*Schema, value.Len())
	order := make([]string, 0, value.Len())
	for _, name := range value.Keys() {
		member, _ := value.Member(name)
		sub, err := pc.Subschema(member)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", name, err)
		}
		props[name] = sub
		order = append(order, name)
	}
	return &propertiesKeyword{props: props, order: order, versions: pc.Version}, nil
}

func (k *propertiesKeyword) Name() string {
	return "properties"
}

func (k *propertiesKeyword) Versions() vocabulary.SchemaVersion {
	return k.versions
}

func (k *propertiesKeyword) Sequence() int {
	return sequenceApplicators
}

func (k *propertiesKeyword) Applies(instance jsonvalue.Value) bool {
	return instance.Kind() == jsonvalue.Object
}

func (k *propertiesKeyword) Validate(ctx *ValidationContext) *ValidationResults {
	res := ctx.newResults("properties")

	for _, name := range k.order {
		member, ok := ctx.Instance.Member(name)
		if !ok {
			continue
		}
		child := ctx.validator.validateSchema(ctx.child(k.props[name], member, name))
		child.Keyword = name
		res.AddChild(child)
		if ctx.Options.ShortCircuit && !res.Valid {
			break
		}
	}
	return res
}

func (k *propertiesKeyword) RegisterSubschemas(r *Resolver, baseURI string) error {
	for _, name := range k.order {
		if err := k.props[name].RegisterSubschemas(r, baseURI); err != nil {
			return err
		}
	}
	return nil
}

func (k *propertiesKeyword) ResolveSubschema(segments []string, versions vocabulary.SchemaVersion) (*Schema, []string, error) {
	if len(segments) < 2 || segments[0] != "properties" {
		return nil, nil, fmt.Errorf("%w: properties requires a property-name segment", ErrUnresolvedReference)
	}
	sub, ok := k.props[segments[1]]
	if !ok {
		return nil, nil, fmt.Errorf("%w: no property %q", ErrUnresolvedReference, segments[1])
	}
	if err := checkSubschemaVersion(sub, versions); err != nil {
		return nil, nil, err
	}
	return sub, segments[2:], nil
}

func (k *propertiesKeyword) ToJSON() jsonvalue.Value {
	members := make([]jsonvalue.Member, 0, len(k.order))
	for _, name := range k.order {
		members = append(members, jsonvalue.Member{Name: name, Value: k.props[name].ToJSON()})
	}
	return jsonvalue.NewObject(members...)
}

func (k *propertiesKeyword) Equal(other Keyword) bool {
	o, ok := other.(*propertiesKeyword)
	if !ok || len(k.props) != len(o.props) {
		return false
	}
	for name, sub := range k.props {
		if !sub.Equal(o.props[name]) {
			return false
		}
	}
	return true
}

// itemsKeyword validates array elements. The single-schema form applies
// one subschema to every element; the tuple form applies the i-th
// subschema to the i-th element and leaves extra elements unconstrained.
type itemsKeyword struct {
	single   *Schema
	tuple    []*Schema
	versions vocabulary.SchemaVersion
}

func newItemsKeyword(value jsonvalue.Value, pc *ParseContext) (Keyword, error) {
	k := &itemsKeyword{versions: pc.Version}
	switch value.Kind() {
	case jsonvalue.Array:
		for i, elem := range value.Items() {
			sub, err := pc.Subschema(elem)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
			k.tuple = append(k.tuple, sub)
		}
		if len(k.tuple) == 0 {
			return nil, fmt.Errorf("items array cannot be empty")
		}
	default:
		sub, err := pc.Subschema(value)
		if err != nil {
			return nil, err
		}
		k.single = sub
	}
	return k, nil
}

func (k *itemsKeyword) Name() string {
	return "items"
}

func (k *itemsKeyword) Versions() vocabulary.SchemaVersion {
	return k.versions
}

func (k *itemsKeyword) Sequence() int {
	return sequenceApplicators
}

func (k *itemsKeyword) Applies(instance jsonvalue.Value) bool {
	return instance.Kind() == jsonvalue.Array
}

func (k *itemsKeyword) Validate(ctx *ValidationContext) *ValidationResults {
	res := ctx.newResults("items")

	for i, elem := range ctx.Instance.Items() {
		sub := k.single
		if sub == nil {
			if i >= len(k.tuple) {
				break
			}
			sub = k.tuple[i]
		}
		child := ctx.validator.validateSchema(ctx.child(sub, elem, fmt.Sprintf("[%d]", i)))
		child.Keyword = strconv.Itoa(i)
		res.AddChild(child)
		if ctx.Options.ShortCircuit && !res.Valid {
			break
		}
	}
	return res
}

func (k *itemsKeyword) RegisterSubschemas(r *Resolver, baseURI string) error {
	if k.single != nil {
		return k.single.RegisterSubschemas(r, baseURI)
	}
	for _, sub := range k.tuple {
		if err := sub.RegisterSubschemas(r, baseURI); err != nil {
			return err
		}
	}
	return nil
}

func (k *itemsKeyword) ResolveSubschema(segments []string, versions vocabulary.SchemaVersion) (*Schema, []string, error) {
	if len(segments) == 0 || segments[0] != "items" {
		return nil, nil, fmt.Errorf("%w: segment does not address items", ErrUnresolvedReference)
	}
	if k.single != nil {
		if err := checkSubschemaVersion(k.single, versions); err != nil {
			return nil, nil, err
		}
		return k.single, segments[1:], nil
	}
	if len(segments) < 2 {
		return nil, nil, fmt.Errorf("%w: tuple items requires an index segment", ErrUnresolvedReference)
	}
	idx, err := strconv.Atoi(segments[1])
	if err != nil || idx < 0 || idx >= len(k.tuple) {
		return nil, nil, fmt.Errorf("%w: no item schema at index %q", ErrUnresolvedReference, segments[1])
	}
	if err := checkSubschemaVersion(k.tuple[idx], versions); err != nil {
		return nil, nil, err
	}
	return k.tuple[idx], segments[2:], nil
}

func (k *itemsKeyword) ToJSON() jsonvalue.Value {
	if k.single != nil {
		return k.single.ToJSON()
	}
	elems := make([]jsonvalue.Value, len(k.tuple))
	for i, sub := range k.tuple {
		elems[i] = sub.ToJSON()
	}
	return jsonvalue.NewArray(elems...)
}

func (k *itemsKeyword) Equal(other Keyword) bool {
	o, ok := other.(*itemsKeyword)
	if !ok {
		return false
	}
	if (k.single == nil) != (o.single == nil) || len(k.tuple) != len(o.tuple) {
		return false
	}
	if k.single != nil {
		return k.single.Equal(o.single)
	}
	for i, sub := range k.tuple {
		if !sub.Equal(o.tuple[i]) {
			return false
		}
	}
	return true
}

// definitionsKeyword holds named subschemas for reference targets. It
// never validates anything: it only registers and resolves subschemas.
type definitionsKeyword struct {
	defs     map[string]*Schema
	order    []string
	versions vocabulary.SchemaVersion
}

func newDefinitionsKeyword(value jsonvalue.Value, pc *ParseContext) (Keyword, error) {
	if value.Kind() != jsonvalue.Object {
		return nil, fmt.Errorf("declared value must be an object, got %s", value.Kind())
	}

	defs := make(map[string]*Schema, value.Len())
	order := make([]string, 0, value.Len())
	for _, name := range value.Keys() {
		member, _ := value.Member(name)
		sub, err := pc.Subschema(member)
		if err != nil {
			return nil, fmt.Errorf("definition %q: %w", name, err)
		}
		defs[name] = sub
		order = append(order, name)
	}
	return &definitionsKeyword{defs: defs, order: order, versions: pc.Version}, nil
}

func (k *definitionsKeyword) Name() string {
	return "definitions"
}

func (k *definitionsKeyword) Versions() vocabulary.SchemaVersion {
	return k.versions
}

func (k *definitionsKeyword) Sequence() int {
	return sequenceApplicators
}

func (k *definitionsKeyword) Applies(instance jsonvalue.Value) bool {
	return false
}

func (k *definitionsKeyword) Validate(ctx *ValidationContext) *ValidationResults {
	return ctx.newResults("definitions")
}

func (k *definitionsKeyword) RegisterSubschemas(r *Resolver, baseURI string) error {
	for _, name := range k.order {
		if err := k.defs[name].RegisterSubschemas(r, baseURI); err != nil {
			return err
		}
	}
	return nil
}

func (k *definitionsKeyword) ResolveSubschema(segments []string, versions vocabulary.SchemaVersion) (*Schema, []string, error) {
	if len(segments) < 2 || segments[0] != "definitions" {
		return nil, nil, fmt.Errorf("%w: definitions requires a definition-name segment", ErrUnresolvedReference)
	}
	sub, ok := k.defs[segments[1]]
	if !ok {
		return nil, nil, fmt.Errorf("%w: no definition %q", ErrUnresolvedReference, segments[1])
	}
	if err := checkSubschemaVersion(sub, versions); err != nil {
		return nil, nil, err
	}
	return sub, segments[2:], nil
}

func (k *definitionsKeyword) ToJSON() jsonvalue.Value {
	members := make([]jsonvalue.Member, 0, len(k.order))
	for _, name := range k.order {
		members = append(members, jsonvalue.Member{Name: name, Value: k.defs[name].ToJSON()})
	}
	return jsonvalue.NewObject(members...)
}

func (k *definitionsKeyword) Equal(other Keyword) bool {
	o, ok := other.(*definitionsKeyword)
	if !ok || len(k.defs) != len(o.defs) {
		return false
	}
	for name, sub := range k.defs {
		if !sub.Equal(o.defs[name]) {
			return false
		}
	}
	return true
}
