// Package mock provides the offline classifier used when no cloud
// credentials are configured. It ignores the image and returns a fixed
// item list so the full upload flow can run in development.
package mock

import (
	"context"

	"sortsense/internal/config"
	"sortsense/internal/domain"
	"sortsense/internal/port"
)

// Classifier implements port.Classifier with deterministic sample data.
type Classifier struct{}

// NewClassifier creates the mock classifier. The config argument exists to
// satisfy the provider factory signature.
func NewClassifier(_ *config.VisionConfig) (port.Classifier, error) {
	return &Classifier{}, nil
}

// SampleItems returns the fixed classification used for every image in
// local mode: two recyclables and one greasy pizza box bound for landfill.
func SampleItems() []domain.ClassifiedItem {
	return []domain.ClassifiedItem{
		{Label: "plastic_bottle", Route: domain.RouteRecycle, Confidence: 0.92, EstWeightKg: 0.03},
		{Label: "aluminum_can", Route: domain.RouteRecycle, Confidence: 0.88, EstWeightKg: 0.015},
		{Label: "pizza_box_greasy", Route: domain.RouteLandfill, Confidence: 0.81, EstWeightKg: 0.4},
	}
}

func (c *Classifier) Classify(_ context.Context, _ []byte) ([]domain.ClassifiedItem, error) {
	return SampleItems(), nil
}
