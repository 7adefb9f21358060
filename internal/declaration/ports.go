package declaration

import (
	"context"

	"smedecl/internal/classification"
	"smedecl/internal/industry"
)

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks Classifier

// Classifier places one enterprise into a size tier.
type Classifier interface {
	Classify(ctx context.Context, id industry.ID, m classification.Metrics) (*classification.Result, error)
}
