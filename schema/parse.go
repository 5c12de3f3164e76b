package schema

import (
	"fmt"

	"github.com/glimte/jschema-go/format"
	"github.com/glimte/jschema-go/jsonvalue"
	"github.com/glimte/jschema-go/vocabulary"
)

// ParseContext carries the configuration keyword constructors see during
// schema construction.
type ParseContext struct {
	// Version is the concrete draft the schema is parsed under.
	Version vocabulary.SchemaVersion

	// BaseURI is the document base for resolving nested identifiers.
	BaseURI string

	// Formats is the registry consulted by the format keyword.
	Formats *format.Registry

	// AllowUnknownFormats controls the format keyword's eager check: when
	// false, a format naming an unregistered entry fails construction.
	AllowUnknownFormats bool

	registry *KeywordRegistry
}

// Subschema parses a nested schema value under the same configuration.
// Subschemas inherit the parent's draft.
func (pc *ParseContext) Subschema(doc jsonvalue.Value) (*Schema, error) {
	return parseSchema(doc, pc)
}

// ParseOption configures schema parsing.
type ParseOption func(*ParseContext)

// WithDraft sets the draft a schema without a $schema member is parsed
// under. The default is draft-07.
func WithDraft(v vocabulary.SchemaVersion) ParseOption {
	return func(pc *ParseContext) {
		pc.Version = v
	}
}

// WithFormatRegistry sets the format registry consulted during parsing.
func WithFormatRegistry(r *format.Registry) ParseOption {
	return func(pc *ParseContext) {
		pc.Formats = r
	}
}

// WithStrictFormats makes a format keyword naming an unregistered format
// fail schema construction. The default is lenient: unknown formats are
// tolerated at load time and handled by validator policy.
func WithStrictFormats(strict bool) ParseOption {
	return func(pc *ParseContext) {
		pc.AllowUnknownFormats = !strict
	}
}

// WithKeywordRegistry sets the keyword registry used during parsing.
func WithKeywordRegistry(r *KeywordRegistry) ParseOption {
	return func(pc *ParseContext) {
		pc.registry = r
	}
}

// WithBaseURI sets the document base URI for identifier resolution.
func WithBaseURI(uri string) ParseOption {
	return func(pc *ParseContext) {
		pc.BaseURI = uri
	}
}

// Parse constructs a Schema from its JSON document form. The draft is
// taken from the document's $schema member when present, otherwise from
// WithDraft. Unrecognized members are preserved but ignored by
// validation. Malformed keyword values fail here, before any instance is
// validated.
func Parse(doc jsonvalue.Value, opts ...ParseOption) (*Schema, error) {
	pc := &ParseContext{
		Version:             vocabulary.Draft07,
		Formats:             format.DefaultRegistry(),
		AllowUnknownFormats: true,
		registry:            DefaultKeywordRegistry(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(pc)
		}
	}
	if !pc.Version.IsSingle() {
		return nil, fmt.Errorf("parse schema: draft must name exactly one dialect, got %s", pc.Version)
	}

	if meta, ok := memberString(doc, "$schema"); ok {
		version, err := vocabulary.FromMetaSchema(meta)
		if err != nil {
			return nil, fmt.Errorf("parse schema: %w", err)
		}
		pc.Version = version
	}
	return parseSchema(doc, pc)
}

func parseSchema(doc jsonvalue.Value, pc *ParseContext) (*Schema, error) {
	switch doc.Kind() {
	case jsonvalue.Bool:
		if pc.Version == vocabulary.Draft04 {
			return nil, fmt.Errorf("parse schema: boolean schemas require draft-06 or later")
		}
		b := doc.BoolValue()
		return &Schema{version: pc.Version, boolean: &b}, nil
	case jsonvalue.Object:
		// Handled below.
	default:
		return nil, fmt.Errorf("parse schema: document must be an object or boolean, got %s", doc.Kind())
	}

	s := &Schema{
		version: pc.Version,
		byName:  make(map[string]Keyword),
		extras:  make(map[string]jsonvalue.Value),
		idName:  idKeywordName(pc.Version),
	}

	for _, name := range doc.Keys() {
		value, _ := doc.Member(name)
		s.order = append(s.order, name)

		switch name {
		case "$schema":
			s.hasMeta = true
			continue
		case s.idName:
			if value.Kind() != jsonvalue.String {
				return nil, fmt.Errorf("parse schema: %s must be a string, got %s", name, value.Kind())
			}
			s.id = value.StringValue()
			continue
		}

		construct, ok := pc.registry.Constructor(name, pc.Version)
		if !ok {
			// Unknown keywords are ignored by validation but preserved
			// for document round-tripping.
			s.extras[name] = value
			continue
		}
		k, err := construct(value, pc)
		if err != nil {
			return nil, fmt.Errorf("parse schema: keyword %q: %w", name, err)
		}
		s.keywords = append(s.keywords, k)
		s.byName[name] = k
	}
	return s, nil
}

// idKeywordName returns the identifier member name for a draft: "id" for
// draft-04, "$id" from draft-06 on.
func idKeywordName(v vocabulary.SchemaVersion) string {
	if v == vocabulary.Draft04 {
		return "id"
	}
	return "$id"
}

func memberString(doc jsonvalue.Value, name string) (string, bool) {
	member, ok := doc.Member(name)
	if !ok || member.Kind() != jsonvalue.String {
		return "", false
	}
	return member.StringValue(), true
}
