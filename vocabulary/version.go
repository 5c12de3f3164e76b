package vocabulary

import (
	"fmt"
	"strings"
)

// SchemaVersion is a bitset of schema drafts.
type SchemaVersion uint8

const (
	// None matches no draft. A keyword whose supported versions are None
	// never applies.
	None SchemaVersion = 0

	// Draft04 is JSON Schema draft-04.
	Draft04 SchemaVersion = 1 << 0

	// Draft06 is JSON Schema draft-06.
	Draft06 SchemaVersion = 1 << 1

	// Draft07 is JSON Schema draft-07.
	Draft07 SchemaVersion = 1 << 2

	// All is the union of every supported draft.
	All = Draft04 | Draft06 | Draft07
)

var metaSchemas = map[string]SchemaVersion{
	"http://json-schema.org/draft-04/schema": Draft04,
	"http://json-schema.org/draft-06/schema": Draft06,
	"http://json-schema.org/draft-07/schema": Draft07,
}

// Includes reports whether every bit of o is set in v. None is included
// in nothing.
func (v SchemaVersion) Includes(o SchemaVersion) bool {
	return o != None && v&o == o
}

// Intersects reports whether v and o share at least one draft.
func (v SchemaVersion) Intersects(o SchemaVersion) bool {
	return v&o != None
}

// IsSingle reports whether v names exactly one draft.
func (v SchemaVersion) IsSingle() bool {
	return v != None && v&(v-1) == None
}

// String returns a readable form such as "draft-04|draft-07".
func (v SchemaVersion) String() string {
	if v == None {
		return "none"
	}
	var parts []string
	if v.Intersects(Draft04) {
		parts = append(parts, "draft-04")
	}
	if v.Intersects(Draft06) {
		parts = append(parts, "draft-06")
	}
	if v.Intersects(Draft07) {
		parts = append(parts, "draft-07")
	}
	return strings.Join(parts, "|")
}

// FromMetaSchema maps a $schema URI to its draft. A trailing empty
// fragment is tolerated.
func FromMetaSchema(uri string) (SchemaVersion, error) {
	trimmed := strings.TrimSuffix(uri, "#")
	if v, ok := metaSchemas[trimmed]; ok {
		return v, nil
	}
	return None, fmt.Errorf("unrecognized meta-schema uri %q", uri)
}

// MetaSchema returns the $schema URI for a single concrete draft, or ""
// when v is not a single draft.
func (v SchemaVersion) MetaSchema() string {
	if !v.IsSingle() {
		return ""
	}
	for uri, version := range metaSchemas {
		if version == v {
			return uri + "#"
		}
	}
	return ""
}
