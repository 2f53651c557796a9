package sync

import (
	"strings"

	"icoltex-hub/core/utils"
)

// GetString tries each candidate key in order and returns the first value
// that is non-empty after stringification and trimming. Numbers are accepted
// and stringified; absent keys and null values are skipped. Returns "" when
// no candidate matches.
func GetString(item RawItem, keys ...string) string {
	for _, key := range keys {
		v, ok := item[key]
		if !ok || v == nil {
			continue
		}
		if s := strings.TrimSpace(utils.ToString(v)); s != "" {
			return s
		}
	}
	return ""
}

// GetNumber tries each candidate key in order and returns the first value
// that converts to a number. The second return value reports whether any
// candidate matched.
func GetNumber(item RawItem, keys ...string) (float64, bool) {
	for _, key := range keys {
		v, ok := item[key]
		if !ok || v == nil {
			continue
		}
		if f, valid := utils.ToFloat(v); valid {
			return f, true
		}
	}
	return 0, false
}

// GetIdentifier resolves an identifying field: first an exact pass over the
// candidate keys, then a fuzzy fallback that normalizes every key in the
// record (lowercase, diacritics stripped) and matches when the normalized
// key contains one of the given tokens. The fuzzy pass exists because the
// upstream spells identifying columns inconsistently ("Item Code",
// "ItemCode", "Código"); it is used only for identifying fields, never for
// ordinary attributes.
func GetIdentifier(item RawItem, keys []string, tokens []string) string {
	if s := GetString(item, keys...); s != "" {
		return s
	}

	// Sorted iteration keeps the fuzzy pick deterministic when several keys
	// match.
	for _, key := range item.Keys() {
		normalized := normalizeKey(key)
		for _, token := range tokens {
			if !strings.Contains(normalized, token) {
				continue
			}
			v := item[key]
			if v == nil {
				continue
			}
			if s := strings.TrimSpace(utils.ToString(v)); s != "" {
				return s
			}
		}
	}
	return ""
}

func normalizeKey(key string) string {
	return strings.ToLower(utils.StripDiacritics(key))
}
