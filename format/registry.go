package format

import (
	"fmt"
	"sort"
	"sync"

	"github.com/glimte/jschema-go/jsonvalue"
	"github.com/glimte/jschema-go/vocabulary"
)

// Predicate reports whether a JSON value conforms to a format. Predicates
// must be pure: no I/O, no mutation, deterministic for equal input.
type Predicate func(jsonvalue.Value) bool

// Format is a named format entry: the drafts that define it and the
// predicate that checks it.
type Format struct {
	Name      string
	Versions  vocabulary.SchemaVersion
	Predicate Predicate
}

// StringPredicate adapts a string predicate to a value predicate. Values
// of any other kind pass vacuously; type constraints belong to the "type"
// keyword, not to formats.
func StringPredicate(fn func(string) bool) Predicate {
	return func(v jsonvalue.Value) bool {
		if v.Kind() != jsonvalue.String {
			return true
		}
		return fn(v.StringValue())
	}
}

// Registry maps format names to entries. Lookups are read-locked;
// registration is expected to complete before concurrent validation
// begins.
type Registry struct {
	mu      sync.RWMutex
	formats map[string]Format
}

// NewRegistry creates an empty format registry.
func NewRegistry() *Registry {
	return &Registry{
		formats: make(map[string]Format),
	}
}

// Register adds a format to the registry.
func (r *Registry) Register(f Format) error {
	if f.Name == "" {
		return fmt.Errorf("format name cannot be empty")
	}
	if f.Predicate == nil {
		return fmt.Errorf("format %q: predicate cannot be nil", f.Name)
	}
	if f.Versions == vocabulary.None {
		return fmt.Errorf("format %q: versions cannot be none", f.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.formats[f.Name]; exists {
		return fmt.Errorf("format %q already registered", f.Name)
	}
	r.formats[f.Name] = f
	return nil
}

// Get retrieves a format by name.
func (r *Registry) Get(name string) (Format, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.formats[name]
	return f, ok
}

// Names returns all registered format names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.formats))
	for name := range r.formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the process-wide registry preloaded with the
// built-in formats.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
		registerBuiltins(defaultRegistry)
	})
	return defaultRegistry
}
