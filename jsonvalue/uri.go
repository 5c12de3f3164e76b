package jsonvalue

import (
	"fmt"
	"net/url"
	"strings"
)

// ResolveURI resolves a possibly-relative URI reference against a base URI.
// An empty base leaves the reference unchanged.
func ResolveURI(base, ref string) (string, error) {
	if base == "" {
		return ref, nil
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid base uri %q: %w", base, err)
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("invalid uri reference %q: %w", ref, err)
	}
	return baseURL.ResolveReference(refURL).String(), nil
}

// SplitFragment splits a URI reference into its document part and fragment.
// The returned fragment has no leading '#'.
func SplitFragment(uri string) (doc, fragment string) {
	if i := strings.IndexByte(uri, '#'); i >= 0 {
		return uri[:i], uri[i+1:]
	}
	return uri, ""
}
