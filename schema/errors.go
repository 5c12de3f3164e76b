package schema

import "errors"

var (
	// ErrUnknownFormat is returned at parse time when a format keyword
	// names a format the registry does not know and the parse
	// configuration disallows unknown formats.
	ErrUnknownFormat = errors.New("unknown format")

	// ErrUnresolvedReference is wrapped by resolution failures: missing
	// targets, unknown documents and unresolvable pointer segments.
	ErrUnresolvedReference = errors.New("unresolved reference")

	// ErrReferenceCycle is wrapped when a reference chain revisits a
	// schema with the same remaining pointer.
	ErrReferenceCycle = errors.New("reference cycle")

	// ErrVersionMismatch is wrapped when a resolved schema's draft is
	// incompatible with the drafts the referencing keyword supports.
	ErrVersionMismatch = errors.New("incompatible schema draft")
)
