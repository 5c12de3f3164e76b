package schema

import "log/slog"

// Options are the validator's recognized switches.
type Options struct {
	// ValidateFormats controls whether the format keyword checks values
	// at all. When false, format nodes always report valid.
	ValidateFormats bool

	// AllowUnknownFormats controls whether a format naming an
	// unregistered entry passes (true) or fails with a templated
	// message (false).
	AllowUnknownFormats bool

	// ShortCircuit stops a schema's keyword sequence at the first
	// failure. The default is exhaustive reporting.
	ShortCircuit bool

	// MaxDepth bounds schema recursion depth as a safety valve against
	// pathological documents. Zero means unlimited.
	MaxDepth int

	// Templates are the failure message templates for templatable
	// keywords.
	Templates MessageTemplates
}

// ValidatorOption configures a Validator.
type ValidatorOption func(*Validator)

// WithFormatValidation controls whether format keywords are checked.
// The default is true.
func WithFormatValidation(validate bool) ValidatorOption {
	return func(v *Validator) {
		v.options.ValidateFormats = validate
	}
}

// WithAllowUnknownFormats controls whether unregistered format names
// pass validation. The default is true.
func WithAllowUnknownFormats(allow bool) ValidatorOption {
	return func(v *Validator) {
		v.options.AllowUnknownFormats = allow
	}
}

// WithShortCircuit stops keyword sequences at the first failure.
func WithShortCircuit(shortCircuit bool) ValidatorOption {
	return func(v *Validator) {
		v.options.ShortCircuit = shortCircuit
	}
}

// WithMaxDepth bounds schema recursion depth. Zero means unlimited.
func WithMaxDepth(depth int) ValidatorOption {
	return func(v *Validator) {
		v.options.MaxDepth = depth
	}
}

// WithMessageTemplates overrides the failure message templates.
// Templates are per-validator state, never process-global.
func WithMessageTemplates(templates MessageTemplates) ValidatorOption {
	return func(v *Validator) {
		v.options.Templates = templates
	}
}

// WithLogger sets the logger for validation tracing.
func WithLogger(logger *slog.Logger) ValidatorOption {
	return func(v *Validator) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// WithResolver sets a shared resolver, so several schemas can reference
// each other across documents.
func WithResolver(r *Resolver) ValidatorOption {
	return func(v *Validator) {
		if r != nil {
			v.resolver = r
		}
	}
}
