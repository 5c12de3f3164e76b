package schema

import (
	"fmt"

	"github.com/glimte/jschema-go/format"
	"github.com/glimte/jschema-go/jsonvalue"
	"github.com/glimte/jschema-go/vocabulary"
)

// formatKeyword validates string instances against a named format from
// the registry. Its supported versions are data-dependent: a known format
// carries the drafts its registry entry declares, an unknown one carries
// every draft so the validate-time unknown-format policy decides the
// outcome.
//
// This keyword performs the engine's only eager validation: when the
// parse configuration disallows unknown formats, naming an unregistered
// format fails schema construction.
type formatKeyword struct {
	formatName string
	entry      format.Format
	known      bool
}

func newFormatKeyword(value jsonvalue.Value, pc *ParseContext) (Keyword, error) {
	if value.Kind() != jsonvalue.String {
		return nil, fmt.Errorf("declared value must be a string, got %s", value.Kind())
	}
	name := value.StringValue()

	entry, known := pc.Formats.Get(name)
	if !known && !pc.AllowUnknownFormats {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
	return &formatKeyword{formatName: name, entry: entry, known: known}, nil
}

func (k *formatKeyword) Name() string {
	return "format"
}

func (k *formatKeyword) Versions() vocabulary.SchemaVersion {
	if k.known {
		return k.entry.Versions
	}
	return vocabulary.All
}

func (k *formatKeyword) Sequence() int {
	return sequenceFormat
}

func (k *formatKeyword) Applies(instance jsonvalue.Value) bool {
	return instance.Kind() == jsonvalue.String
}

func (k *formatKeyword) Validate(ctx *ValidationContext) *ValidationResults {
	res := ctx.newResults("format")
	res.SetInfo("format", jsonvalue.NewString(k.formatName))
	res.SetInfo("actual", ctx.Instance)

	if !ctx.Options.ValidateFormats {
		return res
	}
	if !k.known {
		if !ctx.Options.AllowUnknownFormats {
			res.FailTemplate(ctx.Options.Templates.UnknownFormat, ctx.Info)
		}
		return res
	}

	res.SetAnnotation(jsonvalue.NewString(k.formatName))
	if !k.entry.Predicate(ctx.Instance) {
		res.FailTemplate(ctx.Options.Templates.Format, ctx.Info)
	}
	return res
}

func (k *formatKeyword) ToJSON() jsonvalue.Value {
	return jsonvalue.NewString(k.formatName)
}

func (k *formatKeyword) Equal(other Keyword) bool {
	o, ok := other.(*formatKeyword)
	return ok && k.formatName == o.formatName
}
