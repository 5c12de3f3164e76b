package schema

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/glimte/jschema-go/jsonvalue"
)

// Validator drives keyword validation against parsed schemas. A single
// Validator may be shared by any number of goroutines: every Validate
// call owns its own context and result tree.
type Validator struct {
	options  Options
	logger   *slog.Logger
	resolver *Resolver
}

// NewValidator creates a validator. The defaults validate formats,
// tolerate unknown formats, report exhaustively and do not bound
// recursion depth.
func NewValidator(opts ...ValidatorOption) *Validator {
	v := &Validator{
		options: Options{
			ValidateFormats:     true,
			AllowUnknownFormats: true,
			Templates:           DefaultMessageTemplates(),
		},
		logger:   slog.Default(),
		resolver: NewResolver(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(v)
		}
	}
	return v
}

// Validate checks an instance against a schema and returns the
// hierarchical results. Validation failures are reported in the results,
// never as an error; the error covers only structural faults such as a
// nil schema or a failing subschema registration.
func (v *Validator) Validate(s *Schema, instance jsonvalue.Value) (*ValidationResults, error) {
	if s == nil {
		return nil, fmt.Errorf("schema cannot be nil")
	}

	// References may point forward in the document, so the whole schema
	// tree registers before the first keyword runs.
	if err := s.RegisterSubschemas(v.resolver, ""); err != nil {
		return nil, fmt.Errorf("register subschemas: %w", err)
	}

	ctx := &ValidationContext{
		Instance:   instance,
		Schema:     s,
		Root:       s,
		BaseURI:    s.ID(),
		Options:    v.options,
		Info:       make(map[string]jsonvalue.Value),
		validator:  v,
		resolver:   v.resolver,
		activeRefs: make(map[refKey]struct{}),
	}
	results := v.validateSchema(ctx)

	v.logger.Debug("validation completed",
		"draft", s.Version().String(),
		"valid", results.Valid,
		"keywords", len(results.Children))
	return results, nil
}

// validateSchema runs one schema node against the context's instance:
// select applicable keywords, order them, and merge their results.
func (v *Validator) validateSchema(ctx *ValidationContext) *ValidationResults {
	res := ctx.newResults("")

	if v.options.MaxDepth > 0 && ctx.depth > v.options.MaxDepth {
		res.Fail(fmt.Sprintf("Expected: schema nesting depth <= %d; Actual: exceeded.", v.options.MaxDepth))
		return res
	}

	if b := ctx.Schema.BooleanValue(); b != nil {
		if !*b {
			res.Fail(fmt.Sprintf("Expected: no value allowed; Actual: %s.", ctx.Instance.QuotedString()))
		}
		return res
	}

	selected := v.selectKeywords(ctx)
	for _, k := range selected {
		child := k.Validate(ctx)
		res.AddChild(child)
		if v.options.ShortCircuit && !child.Valid {
			break
		}
	}
	return res
}

// selectKeywords filters the schema's keywords by draft and instance
// applicability and stable-sorts them by validation sequence, so ties
// keep declaration order and result trees stay reproducible.
func (v *Validator) selectKeywords(ctx *ValidationContext) []Keyword {
	keywords := ctx.Schema.Keywords()
	selected := make([]Keyword, 0, len(keywords))
	for _, k := range keywords {
		if !k.Versions().Intersects(ctx.Schema.Version()) {
			continue
		}
		if !k.Applies(ctx.Instance) {
			continue
		}
		selected = append(selected, k)
	}
	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Sequence() < selected[j].Sequence()
	})
	return selected
}
