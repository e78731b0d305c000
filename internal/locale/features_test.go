package locale

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeMixedEntries(t *testing.T) {
	raw := `[
		{"content":{"en":"Feature one","pt-BR":"Recurso 1"}},
		{"value":{"en":"Second capability"}},
		"  "
	]`
	var list FeatureList
	require.NoError(t, json.Unmarshal([]byte(raw), &list))
	assert.Equal(t, []string{"Recurso 1", "Second capability"}, list.Normalize(priority))
}

func TestNormalizeDeduplicatesFirstSeen(t *testing.T) {
	raw := `["alpha","beta","alpha",{"label":"beta"},"gamma"]`
	var list FeatureList
	require.NoError(t, json.Unmarshal([]byte(raw), &list))
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, list.Normalize(priority))
}

func TestNormalizeIgnoresUnrecognizedShapes(t *testing.T) {
	raw := `[{"icon":"star"}, 7, "kept", null]`
	var list FeatureList
	require.NoError(t, json.Unmarshal([]byte(raw), &list))
	assert.Equal(t, []string{"kept"}, list.Normalize(priority))
}

func TestNormalizeEmptyList(t *testing.T) {
	var list FeatureList
	require.NoError(t, json.Unmarshal([]byte(`[]`), &list))
	assert.Empty(t, list.Normalize(priority))
}
