package sync

import (
	"sort"
	"strings"
)

// RawItem is one loosely-structured record as returned by the upstream
// webhook: an arbitrary JSON object whose values may be strings, numbers,
// booleans, null, nested objects, or arrays. All access goes through the
// extraction helpers, which never panic on unexpected shapes.
type RawItem map[string]any

// wrapperKeys are the envelope keys the upstream inconsistently nests the
// actual payload under, checked in priority order.
var wrapperKeys = []string{"result", "data", "value"}

// Unwrap flattens a raw top-level item into the records it actually carries.
// The upstream wraps payloads three different ways ({code, result: {...}},
// {code, result: [...]}, or a bare object), and downstream mappers must not
// special-case envelopes.
//
// If a wrapper key holds an array, only its object elements are returned
// (possibly none). If it holds a single object, that object is returned. If
// the item has no wrapper, the item itself is the record.
func Unwrap(item RawItem) []RawItem {
	for _, key := range wrapperKeys {
		inner, ok := item[key]
		if !ok || inner == nil {
			continue
		}
		switch v := inner.(type) {
		case []any:
			records := make([]RawItem, 0, len(v))
			for _, el := range v {
				if obj, isObj := el.(map[string]any); isObj {
					records = append(records, RawItem(obj))
				}
			}
			return records
		case map[string]any:
			return []RawItem{RawItem(v)}
		}
		// Scalar under a wrapper key ({code: "X", result: "ok"}): not an
		// envelope, treat the whole item as the record.
		break
	}
	return []RawItem{item}
}

// Keys returns the item's keys sorted, for skip diagnostics.
func (r RawItem) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// KeyList renders the item's keys as a single diagnostic string.
func (r RawItem) KeyList() string {
	return strings.Join(r.Keys(), ", ")
}
