package query

import (
	"bytes"
	"encoding/json"
	"reflect"
)

// Key identifies a cached query. Segments go from the resource down to its
// parameters, e.g. {"alerts", "all", AlertListParams{...}}. Segments are
// normalised through their JSON form, so two parameter structs with the same
// values produce the same key.
type Key []any

// NewKey builds a normalised key.
func NewKey(segments ...any) Key {
	key := make(Key, len(segments))
	for i, s := range segments {
		key[i] = normalize(s)
	}

	return key
}

// String returns the canonical form of the key. Object segments have their
// fields sorted, so the result is stable.
func (k Key) String() string {
	raw, err := json.Marshal([]any(k))
	if err != nil {
		return ""
	}

	return string(raw)
}

// HasPrefix reports whether prefix matches the leading segments of k. An
// object segment in prefix matches when every field it names is present in k
// with the same value, so {"companyId":3} matches {"companyId":3,"page":0}.
func (k Key) HasPrefix(prefix Key) bool {
	if len(prefix) > len(k) {
		return false
	}

	for i := range prefix {
		if !partialMatch(prefix[i], k[i]) {
			return false
		}
	}

	return true
}

// Family drops the last segment. Entries of one family differ only in their
// parameters and share placeholder data.
func (k Key) Family() Key {
	if len(k) == 0 {
		return k
	}

	return k[:len(k)-1]
}

func normalize(segment any) any {
	raw, err := json.Marshal(segment)
	if err != nil {
		return segment
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var out any
	if err := dec.Decode(&out); err != nil {
		return segment
	}

	return out
}

func partialMatch(want, got any) bool {
	wantObj, ok := want.(map[string]any)
	if !ok {
		return reflect.DeepEqual(want, got)
	}

	gotObj, ok := got.(map[string]any)
	if !ok {
		return false
	}

	for field, v := range wantObj {
		gv, ok := gotObj[field]
		if !ok || !partialMatch(v, gv) {
			return false
		}
	}

	return true
}
