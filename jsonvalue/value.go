package jsonvalue

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind identifies the JSON type of a Value.
type Kind int

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

// String returns the JSON type name for the kind.
func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "boolean"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is one node of a JSON document. The zero value is JSON null.
// Values are immutable once constructed and safe for concurrent reads.
type Value struct {
	kind Kind
	b    bool
	num  json.Number
	str  string
	arr  []Value
	obj  map[string]Value
	keys []string
}

// NewNull returns the JSON null value.
func NewNull() Value {
	return Value{kind: Null}
}

// NewBool returns a JSON boolean value.
func NewBool(b bool) Value {
	return Value{kind: Bool, b: b}
}

// NewNumber returns a JSON number from its textual form.
func NewNumber(n json.Number) Value {
	return Value{kind: Number, num: n}
}

// NewInt returns a JSON number from an integer.
func NewInt(i int64) Value {
	return Value{kind: Number, num: json.Number(strconv.FormatInt(i, 10))}
}

// NewFloat returns a JSON number from a float.
func NewFloat(f float64) Value {
	return Value{kind: Number, num: json.Number(strconv.FormatFloat(f, 'f', -1, 64))}
}

// NewString returns a JSON string value.
func NewString(s string) Value {
	return Value{kind: String, str: s}
}

// NewArray returns a JSON array over the given elements.
func NewArray(elems ...Value) Value {
	return Value{kind: Array, arr: elems}
}

// Member is one name/value pair of a JSON object.
type Member struct {
	Name  string
	Value Value
}

// NewObject returns a JSON object preserving the member order given.
// A repeated name overwrites the earlier value but keeps its position.
func NewObject(members ...Member) Value {
	obj := make(map[string]Value, len(members))
	keys := make([]string, 0, len(members))
	for _, m := range members {
		if _, exists := obj[m.Name]; !exists {
			keys = append(keys, m.Name)
		}
		obj[m.Name] = m.Value
	}
	return Value{kind: Object, obj: obj, keys: keys}
}

// Kind returns the JSON type of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether the value is JSON null.
func (v Value) IsNull() bool {
	return v.kind == Null
}

// BoolValue returns the boolean payload, or false for non-booleans.
func (v Value) BoolValue() bool {
	return v.kind == Bool && v.b
}

// NumberValue returns the number payload in textual form, or "" for
// non-numbers.
func (v Value) NumberValue() json.Number {
	if v.kind != Number {
		return ""
	}
	return v.num
}

// Float returns the number payload as a float64, or 0 for non-numbers.
func (v Value) Float() float64 {
	if v.kind != Number {
		return 0
	}
	f, err := v.num.Float64()
	if err != nil {
		return 0
	}
	return f
}

// Int returns the number payload as an int64 and whether the number is
// integral and in range.
func (v Value) Int() (int64, bool) {
	if v.kind != Number {
		return 0, false
	}
	if i, err := v.num.Int64(); err == nil {
		return i, true
	}
	f, err := v.num.Float64()
	if err != nil || f != float64(int64(f)) {
		return 0, false
	}
	return int64(f), true
}

// IsIntegral reports whether the value is a number with zero fraction.
func (v Value) IsIntegral() bool {
	_, ok := v.Int()
	return ok
}

// StringValue returns the string payload, or "" for non-strings.
func (v Value) StringValue() string {
	if v.kind != String {
		return ""
	}
	return v.str
}

// Len returns the element count of an array or the member count of an
// object, and 0 for every other kind.
func (v Value) Len() int {
	switch v.kind {
	case Array:
		return len(v.arr)
	case Object:
		return len(v.obj)
	default:
		return 0
	}
}

// Index returns the i-th element of an array value.
func (v Value) Index(i int) (Value, bool) {
	if v.kind != Array || i < 0 || i >= len(v.arr) {
		return Value{}, false
	}
	return v.arr[i], true
}

// Items returns the elements of an array value, or nil otherwise.
func (v Value) Items() []Value {
	if v.kind != Array {
		return nil
	}
	return v.arr
}

// Member returns the named member of an object value.
func (v Value) Member(name string) (Value, bool) {
	if v.kind != Object {
		return Value{}, false
	}
	m, ok := v.obj[name]
	return m, ok
}

// Keys returns the member names of an object value in document order.
func (v Value) Keys() []string {
	if v.kind != Object {
		return nil
	}
	return v.keys
}

// Equal reports structural equality. Numbers compare numerically, so
// 1 and 1.0 are equal; object member order is ignored.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case Null:
		return true
	case Bool:
		return v.b == o.b
	case Number:
		if v.num == o.num {
			return true
		}
		vf, verr := v.num.Float64()
		of, oerr := o.num.Float64()
		return verr == nil && oerr == nil && vf == of
	case String:
		return v.str == o.str
	case Array:
		if len(v.arr) != len(o.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(o.arr[i]) {
				return false
			}
		}
		return true
	case Object:
		if len(v.obj) != len(o.obj) {
			return false
		}
		for name, member := range v.obj {
			other, ok := o.obj[name]
			if !ok || !member.Equal(other) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String returns the natural text form of the value: booleans render as
// lowercase true/false, numbers in their shortest form, strings without
// quoting, and composites as compact JSON.
func (v Value) String() string {
	switch v.kind {
	case Null:
		return "null"
	case Bool:
		return strconv.FormatBool(v.b)
	case Number:
		return v.num.String()
	case String:
		return v.str
	default:
		data, err := v.Encode()
		if err != nil {
			return ""
		}
		return string(data)
	}
}

// Encode returns the compact JSON encoding of the value. Object members
// are written in document order.
func (v Value) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return v.Encode()
}

func (v Value) encode(buf *bytes.Buffer) error {
	switch v.kind {
	case Null:
		buf.WriteString("null")
	case Bool:
		buf.WriteString(strconv.FormatBool(v.b))
	case Number:
		if v.num == "" {
			buf.WriteString("0")
		} else {
			buf.WriteString(v.num.String())
		}
	case String:
		data, err := json.Marshal(v.str)
		if err != nil {
			return err
		}
		buf.Write(data)
	case Array:
		buf.WriteByte('[')
		for i, elem := range v.arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := elem.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case Object:
		buf.WriteByte('{')
		for i, name := range v.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			data, err := json.Marshal(name)
			if err != nil {
				return err
			}
			buf.Write(data)
			buf.WriteByte(':')
			if err := v.obj[name].encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("cannot encode value of kind %s", v.kind)
	}
	return nil
}

// Parse decodes JSON text into a Value. Object member order is preserved
// and numbers keep their textual form.
func Parse(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := parseValue(dec)
	if err != nil {
		return Value{}, fmt.Errorf("parse json: %w", err)
	}

	// Reject trailing content after the first document.
	if _, err := dec.Token(); err == nil {
		return Value{}, fmt.Errorf("parse json: unexpected trailing content")
	}
	return v, nil
}

func parseValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	return parseToken(dec, tok)
}

func parseToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case nil:
		return NewNull(), nil
	case bool:
		return NewBool(t), nil
	case json.Number:
		return NewNumber(t), nil
	case string:
		return NewString(t), nil
	case json.Delim:
		switch t {
		case '[':
			var elems []Value
			for dec.More() {
				elem, err := parseValue(dec)
				if err != nil {
					return Value{}, err
				}
				elems = append(elems, elem)
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return NewArray(elems...), nil
		case '{':
			var members []Member
			for dec.More() {
				nameTok, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				name, ok := nameTok.(string)
				if !ok {
					return Value{}, fmt.Errorf("object member name is not a string: %v", nameTok)
				}
				member, err := parseValue(dec)
				if err != nil {
					return Value{}, err
				}
				members = append(members, Member{Name: name, Value: member})
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return NewObject(members...), nil
		default:
			return Value{}, fmt.Errorf("unexpected delimiter %q", t.String())
		}
	default:
		return Value{}, fmt.Errorf("unexpected token %v", tok)
	}
}

// QuotedString is the diagnostic form of the value: strings are quoted,
// every other kind renders as in String.
func (v Value) QuotedString() string {
	if v.kind == String {
		return strconv.Quote(v.str)
	}
	return v.String()
}
