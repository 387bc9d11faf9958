package docview

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
)

// Record is a decoded documentation payload: a mapping from field names to
// values that remembers the order in which keys appeared in the source.
//
// Values are strings, bools, ints, float64s, nil, []any, or nested Records.
type Record struct {
	keys   []string
	fields map[string]any
}

// NewRecord returns an empty record.
func NewRecord() Record {
	return Record{fields: make(map[string]any)}
}

// Set stores v under key. A new key is appended to the key order; an
// existing key keeps its position.
func (r *Record) Set(key string, v any) {
	if r.fields == nil {
		r.fields = make(map[string]any)
	}
	if _, ok := r.fields[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.fields[key] = v
}

// withField returns a copy of r with key set to v. r is left unchanged.
func (r Record) withField(key string, v any) Record {
	c := Record{
		keys:   slices.Clone(r.keys),
		fields: make(map[string]any, len(r.fields)+1),
	}
	maps.Copy(c.fields, r.fields)
	c.Set(key, v)
	return c
}

// Keys returns the keys in source order.
func (r Record) Keys() []string {
	return r.keys
}

// Len returns the number of keys.
func (r Record) Len() int {
	return len(r.keys)
}

// Has reports whether key is present.
func (r Record) Has(key string) bool {
	_, ok := r.fields[key]
	return ok
}

// Value returns the raw value stored under key, or nil.
func (r Record) Value(key string) any {
	return r.fields[key]
}

// String returns the value under key rendered as a string.
// Absent and null values yield "".
func (r Record) String(key string) string {
	return stringValue(r.fields[key])
}

// Bool decodes a boolean-coded field. Literal true/false and the strings
// "true"/"false" are accepted; an absent or null field is false. Any other
// value is an EMALFORMED error.
func (r Record) Bool(key string) (bool, error) {
	switch v := r.fields[key].(type) {
	case nil:
		return false, nil
	case bool:
		return v, nil
	case string:
		switch v {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
	}
	return false, Errorf(EMALFORMED, "field %q: malformed boolean %v", key, r.fields[key])
}

// Record returns the nested record under key, or an empty record when the
// key is absent or does not hold a record.
func (r Record) Record(key string) Record {
	if v, ok := r.fields[key].(Record); ok {
		return v
	}
	return NewRecord()
}

// List returns the sequence under key, or nil.
func (r Record) List(key string) []any {
	v, _ := r.fields[key].([]any)
	return v
}

// Records returns the record elements of the sequence under key.
// Non-record elements are skipped.
func (r Record) Records(key string) []Record {
	list := r.List(key)
	out := make([]Record, 0, len(list))
	for _, v := range list {
		if rec, ok := v.(Record); ok {
			out = append(out, rec)
		}
	}
	return out
}

// Entries returns the record entries of a bucket that is either a mapping
// of name to record or a list of records, in source order. Mapping entries
// without a "name" field take their key as name.
func (r Record) Entries(key string) []Record {
	switch v := r.fields[key].(type) {
	case Record:
		out := make([]Record, 0, v.Len())
		for _, k := range v.Keys() {
			if rec, ok := v.fields[k].(Record); ok {
				if !rec.Has("name") {
					rec = rec.withField("name", k)
				}
				out = append(out, rec)
			}
		}
		return out
	case []any:
		return r.Records(key)
	}
	return nil
}

// Strings returns the sequence under key rendered as strings. A scalar
// value is returned as a one-element slice.
func (r Record) Strings(key string) []string {
	switch v := r.fields[key].(type) {
	case nil:
		return nil
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			out = append(out, stringValue(e))
		}
		return out
	default:
		return []string{stringValue(v)}
	}
}

func stringValue(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// Decoder turns raw payload text into a Record.
type Decoder interface {
	// Decode parses raw. The top-level value must be a mapping.
	Decode(raw string) (Record, error)
}
