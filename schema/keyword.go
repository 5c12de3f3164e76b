package schema

import (
	"github.com/glimte/jschema-go/jsonvalue"
	"github.com/glimte/jschema-go/vocabulary"
)

// Validation sequence slots. Keywords run in ascending order, with ties
// broken by document declaration order, so result trees are reproducible
// for identical input.
const (
	sequenceRef         = 0
	sequenceType        = 10
	sequenceEnum        = 20
	sequenceRequired    = 30
	sequenceLimits      = 40
	sequencePattern     = 45
	sequenceFormat      = 50
	sequenceApplicators = 60
	sequenceCombinators = 70
)

// Keyword is one named constraint attached to a schema. Implementations
// are immutable once constructed and safe for concurrent validation.
type Keyword interface {
	// Name is the keyword's stable string identity, used as the result
	// node name and for lookup.
	Name() string

	// Versions is the bitset of drafts this keyword instance is
	// meaningful for. For most keywords it is fixed; for format it
	// depends on whether the named format is registered.
	Versions() vocabulary.SchemaVersion

	// Sequence is the keyword's validation priority; lower runs first.
	Sequence() int

	// Applies reports whether the instance's JSON kind is one this
	// keyword constrains. Keywords that do not apply produce no result
	// node at all.
	Applies(instance jsonvalue.Value) bool

	// Validate checks the context's instance and returns this keyword's
	// result node. It must not mutate the schema.
	Validate(ctx *ValidationContext) *ValidationResults

	// ToJSON returns the keyword's declared value in JSON form.
	ToJSON() jsonvalue.Value

	// Equal reports structural equality: same name, same declared value.
	Equal(other Keyword) bool
}

// SubschemaProvider is implemented by keywords that expose nested
// schemas (items, properties, allOf, definitions, ...).
type SubschemaProvider interface {
	// RegisterSubschemas informs the resolver of every nested schema
	// this keyword exposes, so forward references resolve. It must be
	// idempotent and must not mutate the schema.
	RegisterSubschemas(r *Resolver, baseURI string) error

	// ResolveSubschema consumes leading pointer segments addressed at
	// this keyword and returns the nested schema they denote plus the
	// unconsumed remainder. The nested schema's draft must intersect
	// versions; a mismatch is a resolution failure.
	ResolveSubschema(segments []string, versions vocabulary.SchemaVersion) (*Schema, []string, error)
}
