// Package schema implements the multi-draft JSON Schema validation engine.
//
// The engine validates JSON instances (jsonvalue.Value trees) against
// schema documents written in draft-04, draft-06 or draft-07 of JSON
// Schema, all through one evaluation pipeline. Each recognized keyword is
// a Keyword capability: it declares the drafts it supports, the instance
// kinds it constrains and its place in the validation sequence, and it
// produces one node of the hierarchical ValidationResults tree.
//
// Key features:
//   - Draft-gated keyword applicability through vocabulary bitsets
//   - Deterministic validation sequencing with stable ordering
//   - Hierarchical result trees with templated error messages
//   - $ref resolution across nested and cross-document schemas, with
//     forward references and per-chain cycle detection
//   - Extensible format validation through the format package
//   - Whole-schema and per-keyword JSON round-tripping
//
// Basic usage:
//
//	doc, _ := jsonvalue.Parse([]byte(`{"minProperties": 2}`))
//	s, err := schema.Parse(doc, schema.WithDraft(vocabulary.Draft07))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	validator := schema.NewValidator()
//	instance, _ := jsonvalue.Parse([]byte(`{"a": 1}`))
//	results, err := validator.Validate(s, instance)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !results.Valid {
//	    for _, e := range results.Errors() {
//	        log.Println(e)
//	    }
//	}
//
// Schemas are immutable after Parse and safe for concurrent validation;
// each Validate call owns its context and result tree. Validation
// failures are data, never errors: only malformed schemas and unresolvable
// configuration fail with Go errors.
package schema
