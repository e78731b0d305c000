// Package locale handles the two dynamic field shapes the CMS emits:
// values that are either a plain string or a locale→string map, and
// feature lists whose entries are strings or single-key objects.
package locale

import (
	"encoding/json"
	"sort"
	"strings"
)

// Value is a localized CMS field: either a plain string or a mapping from
// locale code to string. The zero Value resolves to "".
type Value struct {
	plain     string
	isPlain   bool
	localized map[string]string
}

// Plain wraps a non-localized string.
func Plain(s string) Value {
	return Value{plain: s, isPlain: true}
}

// Localized wraps a locale→string mapping.
func Localized(m map[string]string) Value {
	return Value{localized: m}
}

// UnmarshalJSON accepts a JSON string or an object of string values.
// Any other shape is an error; callers never get a silently stringified
// number or array.
func (v *Value) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = Plain(s)
		return nil
	}
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*v = Localized(m)
	return nil
}

// Resolve returns the first non-empty string found by walking the locale
// priority list, then any non-empty value in the mapping (stable order),
// else "".
func (v Value) Resolve(priority []string) string {
	if v.isPlain {
		return strings.TrimSpace(v.plain)
	}
	for _, loc := range priority {
		if s := strings.TrimSpace(v.localized[loc]); s != "" {
			return s
		}
	}
	keys := make([]string, 0, len(v.localized))
	for k := range v.localized {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if s := strings.TrimSpace(v.localized[k]); s != "" {
			return s
		}
	}
	return ""
}
