// Package jsonvalue provides the immutable JSON value model consumed by the
// jschema validation engine.
//
// A Value is a tagged union over the six JSON kinds (null, boolean, number,
// string, array, object). Values are built either programmatically through
// the New* constructors or by parsing JSON text with Parse. Object member
// order is preserved so that validation output stays deterministic for
// identical input documents.
//
// Key features:
//   - Structural equality across all kinds, with numeric comparison for
//     numbers (1 and 1.0 compare equal)
//   - Object member count, lookup and ordered key listing
//   - RFC 6901 JSON Pointer evaluation
//   - URI reference resolution for cross-document schema references
//
// Basic usage:
//
//	doc, err := jsonvalue.Parse([]byte(`{"a": 1, "b": [true, null]}`))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	member, ok := doc.Member("b")
//	if ok && member.Kind() == jsonvalue.Array {
//	    fmt.Println(member.Len())
//	}
//
// Numbers are kept in their textual form (json.Number) so values round-trip
// through Encode without losing precision.
package jsonvalue
