package summary

import (
	"encoding/json"
	"fmt"
	"strings"

	"sortsense/internal/domain"
)

// BuildTipPrompt asks for one short bin instruction for a resident.
func BuildTipPrompt(label string, route domain.Route) string {
	return fmt.Sprintf(
		"Write one friendly instruction (<=18 words) for a resident sorting waste.\n"+
			"Item: %s\nCorrect bin: %s\n"+
			"Constraints: short, specific, no emojis, imperative voice. Return plain text only.",
		HumanLabel(label), route,
	)
}

// BuildKpiPrompt asks for a two-sentence operational readout of the KPIs.
func BuildKpiPrompt(kpis domain.Kpis) string {
	encoded, _ := json.Marshal(kpis)
	return fmt.Sprintf(
		"Summarize these waste KPIs for facilities ops in 2 sentences, direct and actionable.\n"+
			"JSON input:\n%s\n"+
			"Rules: No emojis. Mention diversion %% and one concrete next step. Return plain text.",
		encoded,
	)
}

// HumanLabel turns a snake_case item label into display text.
func HumanLabel(label string) string {
	return strings.ReplaceAll(label, "_", " ")
}
