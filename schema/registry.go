package schema

import (
	"fmt"
	"sync"

	"github.com/glimte/jschema-go/jsonvalue"
	"github.com/glimte/jschema-go/vocabulary"
)

// KeywordConstructor builds a keyword instance from its declared JSON
// value. Constructors perform all load-time validation: a malformed
// declared value fails schema construction, before any instance is
// validated.
type KeywordConstructor func(value jsonvalue.Value, pc *ParseContext) (Keyword, error)

type keywordRegistration struct {
	versions  vocabulary.SchemaVersion
	construct KeywordConstructor
}

// KeywordRegistry manages keyword registrations per name and draft. A
// name may carry several registrations with disjoint draft sets, one per
// dialect that gives the keyword a distinct shape.
type KeywordRegistry struct {
	mu            sync.RWMutex
	registrations map[string][]keywordRegistration
}

// NewKeywordRegistry creates an empty keyword registry.
func NewKeywordRegistry() *KeywordRegistry {
	return &KeywordRegistry{
		registrations: make(map[string][]keywordRegistration),
	}
}

// Register registers a keyword constructor for the given drafts.
func (r *KeywordRegistry) Register(name string, versions vocabulary.SchemaVersion, construct KeywordConstructor) error {
	if name == "" {
		return fmt.Errorf("keyword name cannot be empty")
	}
	if construct == nil {
		return fmt.Errorf("keyword %q: constructor cannot be nil", name)
	}
	if versions == vocabulary.None {
		return fmt.Errorf("keyword %q: versions cannot be none", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.registrations[name] {
		if existing.versions.Intersects(versions) {
			return fmt.Errorf("keyword %q already registered for %s", name, versions)
		}
	}
	r.registrations[name] = append(r.registrations[name], keywordRegistration{
		versions:  versions,
		construct: construct,
	})
	return nil
}

// Constructor returns the constructor registered for the keyword name
// under the given draft.
func (r *KeywordRegistry) Constructor(name string, version vocabulary.SchemaVersion) (KeywordConstructor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, reg := range r.registrations[name] {
		if reg.versions.Intersects(version) {
			return reg.construct, true
		}
	}
	return nil, false
}

// IsRegistered checks whether a keyword name is known for any draft.
func (r *KeywordRegistry) IsRegistered(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.registrations[name]) > 0
}

var (
	defaultKeywords     *KeywordRegistry
	defaultKeywordsOnce sync.Once
)

// DefaultKeywordRegistry returns the process-wide registry preloaded with
// the built-in keyword set.
func DefaultKeywordRegistry() *KeywordRegistry {
	defaultKeywordsOnce.Do(func() {
		defaultKeywords = NewKeywordRegistry()
		registerBuiltinKeywords(defaultKeywords)
	})
	return defaultKeywords
}

// registerBuiltinKeywords loads the built-in keyword set for all drafts.
func registerBuiltinKeywords(r *KeywordRegistry) {
	all := vocabulary.All

	must := func(err error) {
		if err != nil {
			panic(fmt.Sprintf("builtin keyword registration: %v", err))
		}
	}

	// core keywords
	must(r.Register("$ref", all, newRefKeyword))
	must(r.Register("definitions", all, newDefinitionsKeyword))

	// structural keywords
	must(r.Register("type", all, newTypeKeyword))
	must(r.Register("enum", all, newEnumKeyword))
	must(r.Register("required", all, newRequiredKeyword))

	// comparison keywords share the limit base; each entry wires in the
	// measurement for its instance kind
	must(r.Register("minProperties", all, limitConstructor(limitSpec{
		name: "minProperties", rel: relationAtLeast, kind: jsonvalue.Object,
		unit: "items", integral: true, measure: measureLen,
	})))
	must(r.Register("maxProperties", all, limitConstructor(limitSpec{
		name: "maxProperties", rel: relationAtMost, kind: jsonvalue.Object,
		unit: "items", integral: true, measure: measureLen,
	})))
	must(r.Register("minItems", all, limitConstructor(limitSpec{
		name: "minItems", rel: relationAtLeast, kind: jsonvalue.Array,
		unit: "items", integral: true, measure: measureLen,
	})))
	must(r.Register("maxItems", all, limitConstructor(limitSpec{
		name: "maxItems", rel: relationAtMost, kind: jsonvalue.Array,
		unit: "items", integral: true, measure: measureLen,
	})))
	must(r.Register("minLength", all, limitConstructor(limitSpec{
		name: "minLength", rel: relationAtLeast, kind: jsonvalue.String,
		unit: "characters", integral: true, measure: measureRunes,
	})))
	must(r.Register("maxLength", all, limitConstructor(limitSpec{
		name: "maxLength", rel: relationAtMost, kind: jsonvalue.String,
		unit: "characters", integral: true, measure: measureRunes,
	})))
	must(r.Register("minimum", all, limitConstructor(limitSpec{
		name: "minimum", rel: relationAtLeast, kind: jsonvalue.Number,
		measure: measureNumber,
	})))
	must(r.Register("maximum", all, limitConstructor(limitSpec{
		name: "maximum", rel: relationAtMost, kind: jsonvalue.Number,
		measure: measureNumber,
	})))

	// string keywords
	must(r.Register("pattern", all, newPatternKeyword))
	must(r.Register("format", all, newFormatKeyword))

	// applicator keywords
	must(r.Register("properties", all, newPropertiesKeyword))
	must(r.Register("items", all, newItemsKeyword))

	// combinator keywords
	must(r.Register("allOf", all, newAllOfKeyword))
	must(r.Register("anyOf", all, newAnyOfKeyword))
	must(r.Register("not", all, newNotKeyword))
}
