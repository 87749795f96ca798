package port

import (
	"context"

	"sortsense/internal/domain"
)

// Classifier abstracts vision-model waste classification. Implementations
// must return at least one item for a successfully classified image.
type Classifier interface {
	Classify(ctx context.Context, imageBytes []byte) ([]domain.ClassifiedItem, error)
}
