package schema

import (
	"fmt"

	"github.com/glimte/jschema-go/jsonvalue"
)

// ValidationResults is one node of the hierarchical validation outcome
// tree. The root node carries an empty Keyword; every other node is named
// after the keyword (or subschema position) that produced it. A node is
// valid iff its own check and all of its children are valid.
type ValidationResults struct {
	Keyword        string                     `json:"keyword,omitempty"`
	InstancePath   string                     `json:"instancePath,omitempty"`
	Valid          bool                       `json:"valid"`
	Message        string                     `json:"message,omitempty"`
	Annotation     *jsonvalue.Value           `json:"annotation,omitempty"`
	AdditionalInfo map[string]jsonvalue.Value `json:"-"`
	Children       []*ValidationResults       `json:"children,omitempty"`
}

// ValidationError is one flattened validation failure.
type ValidationError struct {
	Keyword      string `json:"keyword"`
	InstancePath string `json:"instancePath,omitempty"`
	Message      string `json:"message"`
}

// Error implements the error interface for ValidationError.
func (ve ValidationError) Error() string {
	if ve.InstancePath == "" {
		return fmt.Sprintf("%s: %s", ve.Keyword, ve.Message)
	}
	return fmt.Sprintf("%s at %q: %s", ve.Keyword, ve.InstancePath, ve.Message)
}

func newResults(keyword, instancePath string) *ValidationResults {
	return &ValidationResults{
		Keyword:        keyword,
		InstancePath:   instancePath,
		Valid:          true,
		AdditionalInfo: make(map[string]jsonvalue.Value),
	}
}

// AddChild appends a child node in validation-sequence order and folds
// its validity into this node.
func (r *ValidationResults) AddChild(child *ValidationResults) {
	if child == nil {
		return
	}
	r.Children = append(r.Children, child)
	if !child.Valid {
		r.Valid = false
	}
}

// SetInfo records a raw value for message templating.
func (r *ValidationResults) SetInfo(key string, value jsonvalue.Value) {
	r.AdditionalInfo[key] = value
}

// SetAnnotation attaches keyword-specific output, such as the matched
// format name.
func (r *ValidationResults) SetAnnotation(value jsonvalue.Value) {
	r.Annotation = &value
}

// Fail marks the node invalid with an engine-owned message.
func (r *ValidationResults) Fail(message string) {
	r.Valid = false
	r.Message = message
}

// FailTemplate marks the node invalid and resolves a {{token}} template
// against the node's additional info merged over the supplied context
// info. Tokens without an entry are left literal.
func (r *ValidationResults) FailTemplate(template string, contextInfo map[string]jsonvalue.Value) {
	info := r.AdditionalInfo
	if len(contextInfo) > 0 {
		info = make(map[string]jsonvalue.Value, len(contextInfo)+len(r.AdditionalInfo))
		for k, v := range contextInfo {
			info[k] = v
		}
		for k, v := range r.AdditionalInfo {
			info[k] = v
		}
	}
	r.Fail(ExpandTemplate(template, info))
}

// Errors flattens the tree into the list of failing nodes that carry a
// message, in validation-sequence order.
func (r *ValidationResults) Errors() []ValidationError {
	var out []ValidationError
	r.appendErrors(&out)
	return out
}

func (r *ValidationResults) appendErrors(out *[]ValidationError) {
	if !r.Valid && r.Message != "" {
		*out = append(*out, ValidationError{
			Keyword:      r.Keyword,
			InstancePath: r.InstancePath,
			Message:      r.Message,
		})
	}
	for _, child := range r.Children {
		child.appendErrors(out)
	}
}
