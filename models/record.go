package models

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/mitchellh/mapstructure"
)

// Record holds a single entry of a collection as stored in the document.
// Known fields are described by the typed views in this package; every
// other field a client sends is carried through untouched.
type Record map[string]interface{}

// ID returns the record id coerced to an int64. The second return is
// false when the record has no usable id.
func (r Record) ID() (int64, bool) {
	return toInt64(r["id"])
}

// Matches reports whether the record field equals want. Both sides are
// compared numerically when they coerce to integers, so a float64 from
// the JSON decoder matches an id parsed out of a query string.
func (r Record) Matches(field string, want interface{}) bool {
	got, ok := r[field]
	if !ok {
		return false
	}
	if gotN, gOK := toInt64(got); gOK {
		if wantN, wOK := toInt64(want); wOK {
			return gotN == wantN
		}
	}
	return fmt.Sprintf("%v", got) == fmt.Sprintf("%v", want)
}

// Merge returns a new record with every field of r plus every field of
// patch, patch winning on conflicts. Neither input is modified.
func (r Record) Merge(patch Record) Record {
	merged := make(Record, len(r)+len(patch))
	for k, v := range r {
		merged[k] = v
	}
	for k, v := range patch {
		merged[k] = v
	}
	return merged
}

// Without returns a copy of r with the given field removed.
func (r Record) Without(field string) Record {
	out := make(Record, len(r))
	for k, v := range r {
		if k != field {
			out[k] = v
		}
	}
	return out
}

// Decode fills a typed view with the record's known fields, leaving the
// rest of the record alone. Field names follow the json tags.
func (r Record) Decode(out interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(map[string]interface{}(r))
}

func toInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case int:
		return int64(n), true
	case int64:
		return n, true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		return i, err == nil
	default:
		return 0, false
	}
}
