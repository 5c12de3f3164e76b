package schema

import (
	"sync"

	"github.com/glimte/jschema-go/jsonvalue"
	"github.com/glimte/jschema-go/vocabulary"
)

// Schema is a draft-tagged, immutable collection of keyword instances.
// A schema's draft never changes after construction; keyword values are
// immutable once deserialized. Schemas are safe for concurrent validation.
type Schema struct {
	version vocabulary.SchemaVersion
	id      string

	// boolean holds the draft-06+ boolean schema form: true accepts
	// everything, false accepts nothing. Nil for object-form schemas.
	boolean *bool

	keywords []Keyword
	byName   map[string]Keyword

	// order and extras preserve the source document: member names in
	// declaration order and the unrecognized members, so ToJSON
	// round-trips the whole document.
	order   []string
	extras  map[string]jsonvalue.Value
	hasMeta bool
	idName  string

	// regMu guards registered: the registration walk runs once per
	// resolver, and repeated calls return that resolver's first outcome.
	regMu      sync.Mutex
	registered map[*Resolver]error
}

// Version returns the schema's concrete draft.
func (s *Schema) Version() vocabulary.SchemaVersion {
	return s.version
}

// ID returns the schema's declared identifier ($id, or id under
// draft-04), or "".
func (s *Schema) ID() string {
	return s.id
}

// BooleanValue returns the boolean schema payload, or nil for object-form
// schemas.
func (s *Schema) BooleanValue() *bool {
	return s.boolean
}

// Keywords returns the schema's keyword instances in declaration order.
// The returned slice must not be modified.
func (s *Schema) Keywords() []Keyword {
	return s.keywords
}

// Keyword returns the named keyword instance, if declared.
func (s *Schema) Keyword(name string) (Keyword, bool) {
	k, ok := s.byName[name]
	return k, ok
}

// ToJSON returns the schema's JSON document form. Member order follows
// the source document; unrecognized members are preserved.
func (s *Schema) ToJSON() jsonvalue.Value {
	if s.boolean != nil {
		return jsonvalue.NewBool(*s.boolean)
	}

	members := make([]jsonvalue.Member, 0, len(s.order))
	for _, name := range s.order {
		switch {
		case name == "$schema" && s.hasMeta:
			members = append(members, jsonvalue.Member{Name: name, Value: jsonvalue.NewString(s.version.MetaSchema())})
		case name == s.idName && s.id != "":
			members = append(members, jsonvalue.Member{Name: name, Value: jsonvalue.NewString(s.id)})
		default:
			if k, ok := s.byName[name]; ok {
				members = append(members, jsonvalue.Member{Name: name, Value: k.ToJSON()})
			} else if extra, ok := s.extras[name]; ok {
				members = append(members, jsonvalue.Member{Name: name, Value: extra})
			}
		}
	}
	return jsonvalue.NewObject(members...)
}

// Equal reports structural equality: same draft, same boolean form, and
// keyword sets equal member-wise. Unrecognized members are compared
// structurally as well.
func (s *Schema) Equal(o *Schema) bool {
	if s == nil || o == nil {
		return s == o
	}
	if s.version != o.version || s.id != o.id {
		return false
	}
	if (s.boolean == nil) != (o.boolean == nil) {
		return false
	}
	if s.boolean != nil {
		return *s.boolean == *o.boolean
	}
	if len(s.keywords) != len(o.keywords) || len(s.extras) != len(o.extras) {
		return false
	}
	for name, k := range s.byName {
		other, ok := o.byName[name]
		if !ok || !k.Equal(other) {
			return false
		}
	}
	for name, extra := range s.extras {
		other, ok := o.extras[name]
		if !ok || !extra.Equal(other) {
			return false
		}
	}
	return true
}

// RegisterSubschemas registers this schema and every reachable subschema
// with the resolver, so that forward references resolve before validation
// begins. The walk runs once per resolver; repeated calls with the same
// resolver return the first outcome, which makes concurrent lazy
// registration safe. A schema may register with any number of resolvers.
func (s *Schema) RegisterSubschemas(r *Resolver, baseURI string) error {
	s.regMu.Lock()
	defer s.regMu.Unlock()

	if err, done := s.registered[r]; done {
		return err
	}
	if s.registered == nil {
		s.registered = make(map[*Resolver]error)
	}
	err := s.register(r, baseURI)
	s.registered[r] = err
	return err
}

func (s *Schema) register(r *Resolver, baseURI string) error {
	base := baseURI
	if s.id != "" {
		resolved, err := jsonvalue.ResolveURI(baseURI, s.id)
		if err != nil {
			return err
		}
		base = resolved
		doc, _ := jsonvalue.SplitFragment(resolved)
		if doc != "" {
			if err := r.RegisterDocument(doc, s); err != nil {
				return err
			}
		}
	}
	for _, k := range s.keywords {
		provider, ok := k.(SubschemaProvider)
		if !ok {
			continue
		}
		if err := provider.RegisterSubschemas(r, base); err != nil {
			return err
		}
	}
	return nil
}
