// Package vocabulary models the schema draft dialects understood by the
// jschema validation engine.
//
// A SchemaVersion is a bitset over the supported drafts (04, 06 and 07).
// A parsed schema carries exactly one concrete draft bit; a keyword or
// format declares the union of drafts it is meaningful for. Applicability
// is a simple intersection test between the two.
package vocabulary
