package locale

import (
	"encoding/json"
	"strings"
)

// featureKeys are the object keys a feature entry may carry, in lookup
// order.
var featureKeys = []string{"content", "value", "label"}

// FeatureEntry is one element of a CMS feature list: a plain string or an
// object with a content/value/label field. Unrecognized shapes resolve to
// nothing rather than being stringified.
type FeatureEntry struct {
	value Value
	ok    bool
}

func (e *FeatureEntry) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*e = FeatureEntry{value: Plain(s), ok: true}
		return nil
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		// Not a string and not an object: ignore the entry.
		*e = FeatureEntry{}
		return nil
	}
	for _, key := range featureKeys {
		raw, found := obj[key]
		if !found {
			continue
		}
		var v Value
		if err := json.Unmarshal(raw, &v); err != nil {
			continue
		}
		*e = FeatureEntry{value: v, ok: true}
		return nil
	}
	*e = FeatureEntry{}
	return nil
}

// FeatureList is the raw feature array of a CMS document.
type FeatureList []FeatureEntry

// Normalize extracts one display string per entry, trims, drops empties
// and unrecognized shapes, and deduplicates preserving first-seen order.
func (l FeatureList) Normalize(priority []string) []string {
	out := make([]string, 0, len(l))
	seen := make(map[string]struct{}, len(l))
	for _, e := range l {
		if !e.ok {
			continue
		}
		s := strings.TrimSpace(e.value.Resolve(priority))
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
