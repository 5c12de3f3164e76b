package format

import (
	"net"
	"net/mail"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/glimte/jschema-go/jsonvalue"
	"github.com/glimte/jschema-go/vocabulary"
)

var hostnameRegex = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?)*$`)

// registerBuiltins loads the built-in format set. The uuid format is an
// extension carried across all drafts; date, time, regex, uri-reference
// and json-pointer follow the draft that introduced them.
func registerBuiltins(r *Registry) {
	builtins := []Format{
		{Name: "date-time", Versions: vocabulary.All, Predicate: StringPredicate(isDateTime)},
		{Name: "date", Versions: vocabulary.Draft07, Predicate: StringPredicate(isDate)},
		{Name: "time", Versions: vocabulary.Draft07, Predicate: StringPredicate(isTime)},
		{Name: "email", Versions: vocabulary.All, Predicate: StringPredicate(isEmail)},
		{Name: "hostname", Versions: vocabulary.All, Predicate: StringPredicate(isHostname)},
		{Name: "ipv4", Versions: vocabulary.All, Predicate: StringPredicate(isIPv4)},
		{Name: "ipv6", Versions: vocabulary.All, Predicate: StringPredicate(isIPv6)},
		{Name: "uri", Versions: vocabulary.All, Predicate: StringPredicate(isURI)},
		{Name: "uri-reference", Versions: vocabulary.Draft06 | vocabulary.Draft07, Predicate: StringPredicate(isURIReference)},
		{Name: "uuid", Versions: vocabulary.All, Predicate: StringPredicate(isUUID)},
		{Name: "regex", Versions: vocabulary.Draft07, Predicate: StringPredicate(isRegex)},
		{Name: "json-pointer", Versions: vocabulary.Draft06 | vocabulary.Draft07, Predicate: StringPredicate(isJSONPointer)},
	}
	for _, f := range builtins {
		// Registration of the fixed built-in set cannot collide.
		_ = r.Register(f)
	}
}

func isDateTime(s string) bool {
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}

func isDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func isTime(s string) bool {
	if _, err := time.Parse("15:04:05Z07:00", s); err == nil {
		return true
	}
	_, err := time.Parse("15:04:05", s)
	return err == nil
}

func isEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	// Reject display-name forms; the format names a bare address.
	return err == nil && addr.Address == s
}

func isHostname(s string) bool {
	return len(s) <= 253 && hostnameRegex.MatchString(s)
}

func isIPv4(s string) bool {
	ip := net.ParseIP(s)
	return ip != nil && ip.To4() != nil && strings.Count(s, ".") == 3
}

func isIPv6(s string) bool {
	ip := net.ParseIP(s)
	return ip != nil && strings.Contains(s, ":")
}

func isURI(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.IsAbs()
}

func isURIReference(s string) bool {
	_, err := url.Parse(s)
	return err == nil
}

func isUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

func isRegex(s string) bool {
	_, err := regexp.Compile(s)
	return err == nil
}

func isJSONPointer(s string) bool {
	_, err := jsonvalue.ParsePointer(s)
	return err == nil
}
