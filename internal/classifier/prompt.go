package classifier

import (
	"encoding/json"
	"fmt"
	"strings"

	"sortsense/internal/domain"
)

// BuildClassifyPrompt returns the instruction sent alongside the image.
// The model must answer with a bare JSON array so ParseModelItems can
// recover it from surrounding prose.
func BuildClassifyPrompt() string {
	return `Classify waste items in the image.
Return ONLY a JSON array. Each entry:
{"label":"plastic_bottle|aluminum_can|glass_jar|clean_cardboard|pizza_box_greasy|food_waste|plastic_bag|trash_other",
 "route":"recycle|compost|landfill",
 "confidence":0.0-1.0,
 "est_weight_kg": float}
Bias:
- greasy pizza box -> landfill
- plastic bag -> landfill (or store-specific)
- food scraps -> compost
- clean cardboard -> recycle`
}

// labelRoutes maps known labels to their default bucket, used when the
// model omits or invents a route value.
var labelRoutes = map[string]domain.Route{
	"plastic_bottle":   domain.RouteRecycle,
	"aluminum_can":     domain.RouteRecycle,
	"glass_jar":        domain.RouteRecycle,
	"clean_cardboard":  domain.RouteRecycle,
	"pizza_box_greasy": domain.RouteLandfill,
	"food_waste":       domain.RouteCompost,
	"plastic_bag":      domain.RouteLandfill,
	"trash_other":      domain.RouteLandfill,
}

type modelItem struct {
	Label       string  `json:"label"`
	Route       string  `json:"route"`
	Confidence  float64 `json:"confidence"`
	EstWeightKg float64 `json:"est_weight_kg"`
}

// ParseModelItems extracts the JSON array from raw model output and maps
// it to classified items. The route comes from the model when valid,
// otherwise from the label bucket mapping. Empty or unparseable output is
// an error; there is no canned fallback once a remote provider is in use.
func ParseModelItems(text string) ([]domain.ClassifiedItem, error) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON array in model output: %s", truncate(text, 200))
	}

	var raw []modelItem
	if err := json.Unmarshal([]byte(text[start:end+1]), &raw); err != nil {
		return nil, fmt.Errorf("parsing model JSON output: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("model returned an empty item list")
	}

	items := make([]domain.ClassifiedItem, 0, len(raw))
	for _, r := range raw {
		route := domain.Route(r.Route)
		if !domain.ValidRoutes[route] {
			mapped, ok := labelRoutes[r.Label]
			if !ok {
				mapped = domain.RouteLandfill
			}
			route = mapped
		}
		items = append(items, domain.ClassifiedItem{
			Label:       r.Label,
			Route:       route,
			Confidence:  r.Confidence,
			EstWeightKg: r.EstWeightKg,
		})
	}
	return items, nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
