package mock

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Kind identifies which JSON type a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// Value is a parsed JSON document. Exactly one payload field is meaningful,
// selected by Kind. Numbers keep their literal source text so rendering never
// reformats them.
type Value struct {
	Kind Kind
	Bool bool
	Num  string
	Str  string
	Arr  []Value
	Obj  map[string]Value
}

// UnmarshalJSON decodes any syntactically valid JSON value. Duplicate object
// keys keep the last occurrence, matching encoding/json map behavior.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("unexpected end of JSON input")
	}

	switch data[0] {
	case 'n':
		if !bytes.Equal(data, []byte("null")) {
			return fmt.Errorf("invalid JSON literal: %s", data)
		}
		*v = Value{Kind: KindNull}
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*v = Value{Kind: KindBool, Bool: b}
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Value{Kind: KindString, Str: s}
	case '[':
		var raw []json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		arr := make([]Value, len(raw))
		for i, r := range raw {
			if err := arr[i].UnmarshalJSON(r); err != nil {
				return err
			}
		}
		*v = Value{Kind: KindArray, Arr: arr}
	case '{':
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		obj := make(map[string]Value, len(raw))
		for k, r := range raw {
			var f Value
			if err := f.UnmarshalJSON(r); err != nil {
				return err
			}
			obj[k] = f
		}
		*v = Value{Kind: KindObject, Obj: obj}
	default:
		// Number. json.Number validates without the float round-trip, so
		// out-of-range literals like 1e999 survive untouched.
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*v = Value{Kind: KindNumber, Num: n.String()}
	}

	return nil
}

// Field looks up a key on an object value. ok is false when the value is not
// an object or the key is absent.
func (v Value) Field(name string) (Value, bool) {
	if v.Kind != KindObject {
		return Value{}, false
	}
	f, ok := v.Obj[name]
	return f, ok
}

// Int converts a number value to int, truncating any fraction.
func (v Value) Int() (int, bool) {
	f, ok := v.Float()
	if !ok {
		return 0, false
	}
	return int(f), true
}

// Float converts a number value to float64.
func (v Value) Float() (float64, bool) {
	if v.Kind != KindNumber {
		return 0, false
	}
	f, err := strconv.ParseFloat(v.Num, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// JSON renders the value as compact JSON with object keys sorted. This is the
// canonical form used when a document or scalar has to be echoed as text, and
// it is deterministic for any given input.
func (v Value) JSON() string {
	var sb strings.Builder
	v.writeJSON(&sb)
	return sb.String()
}

func (v Value) writeJSON(sb *strings.Builder) {
	switch v.Kind {
	case KindNull:
		sb.WriteString("null")
	case KindBool:
		sb.WriteString(strconv.FormatBool(v.Bool))
	case KindNumber:
		sb.WriteString(v.Num)
	case KindString:
		b, _ := json.Marshal(v.Str)
		sb.Write(b)
	case KindArray:
		sb.WriteByte('[')
		for i, e := range v.Arr {
			if i > 0 {
				sb.WriteByte(',')
			}
			e.writeJSON(sb)
		}
		sb.WriteByte(']')
	case KindObject:
		keys := make([]string, 0, len(v.Obj))
		for k := range v.Obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		sb.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				sb.WriteByte(',')
			}
			kb, _ := json.Marshal(k)
			sb.Write(kb)
			sb.WriteByte(':')
			v.Obj[k].writeJSON(sb)
		}
		sb.WriteByte('}')
	}
}
