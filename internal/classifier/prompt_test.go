package classifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sortsense/internal/classifier"
	"sortsense/internal/domain"
)

func TestParseModelItems_PlainArray(t *testing.T) {
	text := `[{"label":"plastic_bottle","route":"recycle","confidence":0.9,"est_weight_kg":0.03}]`

	items, err := classifier.ParseModelItems(text)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "plastic_bottle", items[0].Label)
	assert.Equal(t, domain.RouteRecycle, items[0].Route)
	assert.Equal(t, 0.9, items[0].Confidence)
	assert.Equal(t, 0.03, items[0].EstWeightKg)
}

func TestParseModelItems_ArrayEmbeddedInProse(t *testing.T) {
	text := "Sure! Here are the items:\n" +
		`[{"label":"food_waste","route":"compost","confidence":0.7,"est_weight_kg":0.2},` +
		`{"label":"pizza_box_greasy","route":"landfill","confidence":0.8,"est_weight_kg":0.4}]` +
		"\nLet me know if you need anything else."

	items, err := classifier.ParseModelItems(text)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, domain.RouteCompost, items[0].Route)
	assert.Equal(t, domain.RouteLandfill, items[1].Route)
}

func TestParseModelItems_InvalidRouteFallsBackToLabel(t *testing.T) {
	text := `[{"label":"aluminum_can","route":"garbage","confidence":0.5,"est_weight_kg":0.01}]`

	items, err := classifier.ParseModelItems(text)
	require.NoError(t, err)
	assert.Equal(t, domain.RouteRecycle, items[0].Route)
}

func TestParseModelItems_UnknownLabelDefaultsToLandfill(t *testing.T) {
	text := `[{"label":"mystery_object","route":"","confidence":0.4,"est_weight_kg":0.1}]`

	items, err := classifier.ParseModelItems(text)
	require.NoError(t, err)
	assert.Equal(t, domain.RouteLandfill, items[0].Route)
}

func TestParseModelItems_NoArrayIsError(t *testing.T) {
	_, err := classifier.ParseModelItems("I could not identify any waste items in this image.")
	assert.Error(t, err)
}

func TestParseModelItems_EmptyArrayIsError(t *testing.T) {
	_, err := classifier.ParseModelItems("[]")
	assert.Error(t, err)
}

func TestParseModelItems_MalformedJSONIsError(t *testing.T) {
	_, err := classifier.ParseModelItems(`[{"label": "plastic_bottle", "route":`)
	assert.Error(t, err)
}
