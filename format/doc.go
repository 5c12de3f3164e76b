// Package format provides the named-format registry used by the jschema
// validation engine's "format" keyword.
//
// A Format pairs a name with a pure predicate over JSON values and the set
// of schema drafts that define it. The engine looks formats up by name at
// validation time; hosts extend the registry with their own formats before
// validation begins.
//
// Basic usage:
//
//	registry := format.NewRegistry()
//	err := registry.Register(format.Format{
//	    Name:     "product-code",
//	    Versions: vocabulary.All,
//	    Predicate: format.StringPredicate(func(s string) bool {
//	        return len(s) == 8
//	    }),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// DefaultRegistry returns the shared registry preloaded with the built-in
// formats (date-time, email, hostname, ipv4, ipv6, uri, uuid and friends).
// Registration must happen before concurrent validation starts; lookups
// take only a read lock.
package format
