package schema

import (
	"fmt"
	"strings"
	"sync"

	"github.com/glimte/jschema-go/jsonvalue"
	"github.com/glimte/jschema-go/vocabulary"
)

// Resolver resolves schema references across registered documents. It
// holds the document registry built during subschema registration; the
// pointer walk itself asks each schema's keywords for the next step, so
// references defined anywhere in a registered document resolve, including
// forward references.
type Resolver struct {
	mu        sync.RWMutex
	documents map[string]*Schema
}

// NewResolver creates an empty resolver.
func NewResolver() *Resolver {
	return &Resolver{
		documents: make(map[string]*Schema),
	}
}

// RegisterDocument makes a schema addressable under a document URI.
// Re-registering the same schema under the same URI is a no-op.
func (r *Resolver) RegisterDocument(uri string, s *Schema) error {
	if uri == "" {
		return fmt.Errorf("document uri cannot be empty")
	}
	if s == nil {
		return fmt.Errorf("document schema cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, exists := r.documents[uri]; exists {
		if existing == s {
			return nil
		}
		return fmt.Errorf("document %q already registered to a different schema", uri)
	}
	r.documents[uri] = s
	return nil
}

// Document retrieves a registered document root by URI.
func (r *Resolver) Document(uri string) (*Schema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.documents[uri]
	return s, ok
}

// Resolve dereferences ref against baseURI, walking the target pointer
// segment-by-segment from the owning document root. It returns the
// resolved schema, the root of the document it lives in, and the
// canonical reference text. Resolution fails when the document is
// unknown, a segment does not address a subschema, the target's draft is
// incompatible with versions, or the chain revisits a schema with the
// same remaining pointer.
func (r *Resolver) Resolve(root *Schema, baseURI, ref string, versions vocabulary.SchemaVersion) (*Schema, *Schema, string, error) {
	resolved, err := jsonvalue.ResolveURI(baseURI, ref)
	if err != nil {
		return nil, nil, "", fmt.Errorf("%w: %v", ErrUnresolvedReference, err)
	}
	docURI, frag := jsonvalue.SplitFragment(resolved)

	start := root
	baseDoc, _ := jsonvalue.SplitFragment(baseURI)
	if docURI != "" && docURI != baseDoc {
		external, ok := r.Document(docURI)
		if !ok {
			return nil, nil, "", fmt.Errorf("%w: unknown document %q", ErrUnresolvedReference, docURI)
		}
		start = external
	}

	pointer, err := jsonvalue.ParsePointer(frag)
	if err != nil {
		return nil, nil, "", fmt.Errorf("%w: %v", ErrUnresolvedReference, err)
	}
	canonical := docURI + "#" + pointer.String()

	target, err := r.walk(start, []string(pointer), versions)
	if err != nil {
		return nil, nil, "", fmt.Errorf("resolve %q: %w", canonical, err)
	}
	return target, start, canonical, nil
}

// walk consumes pointer segments by asking each schema's keywords to
// resolve the next step. The visited set is scoped to this one chain:
// revisiting a schema with the same remaining pointer means the chain
// cannot make progress.
func (r *Resolver) walk(start *Schema, segments []string, versions vocabulary.SchemaVersion) (*Schema, error) {
	current := start
	visited := make(map[string]struct{})

	for len(segments) > 0 {
		key := fmt.Sprintf("%p|%s", current, strings.Join(segments, "/"))
		if _, seen := visited[key]; seen {
			return nil, fmt.Errorf("%w at segment %q", ErrReferenceCycle, segments[0])
		}
		visited[key] = struct{}{}

		next, rest, err := resolveStep(current, segments, versions)
		if err != nil {
			return nil, err
		}
		current, segments = next, rest
	}

	if !current.Version().Intersects(versions) {
		return nil, fmt.Errorf("%w: target is %s, reference supports %s", ErrVersionMismatch, current.Version(), versions)
	}
	return current, nil
}

func resolveStep(s *Schema, segments []string, versions vocabulary.SchemaVersion) (*Schema, []string, error) {
	k, ok := s.Keyword(segments[0])
	if !ok {
		return nil, nil, fmt.Errorf("%w: cannot resolve segment %q", ErrUnresolvedReference, segments[0])
	}
	provider, ok := k.(SubschemaProvider)
	if !ok {
		return nil, nil, fmt.Errorf("%w: keyword %q has no subschemas", ErrUnresolvedReference, segments[0])
	}
	return provider.ResolveSubschema(segments, versions)
}
