package schema

import (
	"fmt"

	"github.com/glimte/jschema-go/jsonvalue"
)

// ValidationContext carries the per-call state threaded through recursive
// validation: the instance under test, the current and root schemas, the
// base URI for reference resolution and the validator's options. One
// context chain belongs to exactly one top-level Validate call; contexts
// are never shared across calls.
type ValidationContext struct {
	Instance     jsonvalue.Value
	Schema       *Schema
	Root         *Schema
	BaseURI      string
	InstancePath string
	Options      Options

	// Info holds call-scoped values available to message templating in
	// every result node. Keywords add entries; nothing removes them.
	Info map[string]jsonvalue.Value

	validator  *Validator
	resolver   *Resolver
	activeRefs map[refKey]struct{}
	depth      int
}

// refKey identifies one active reference expansion: the canonical target
// plus the instance location it is being applied to. Revisiting the same
// key within one chain is a reference cycle.
type refKey struct {
	target       string
	instancePath string
}

func (c *ValidationContext) newResults(keyword string) *ValidationResults {
	return newResults(keyword, c.InstancePath)
}

// child derives a context for validating a member or element instance
// against a subschema. The reference guard and info map are shared with
// the parent; everything else is rebound.
func (c *ValidationContext) child(sub *Schema, instance jsonvalue.Value, pathSegment string) *ValidationContext {
	derived := *c
	derived.Schema = sub
	derived.Instance = instance
	derived.InstancePath = joinInstancePath(c.InstancePath, pathSegment)
	derived.depth = c.depth + 1
	return &derived
}

// withSchema derives a context for validating the same instance against a
// different schema, as $ref and the combinator keywords do.
func (c *ValidationContext) withSchema(sub *Schema) *ValidationContext {
	derived := *c
	derived.Schema = sub
	derived.depth = c.depth + 1
	return &derived
}

func joinInstancePath(parent, segment string) string {
	if segment == "" {
		return parent
	}
	if parent == "" {
		return segment
	}
	if segment[0] == '[' {
		return parent + segment
	}
	return fmt.Sprintf("%s.%s", parent, segment)
}
