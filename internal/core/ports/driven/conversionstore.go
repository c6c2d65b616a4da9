package driven

import (
	"context"

	"github.com/custodia-labs/molkit/internal/core/domain"
)

// ConversionStore persists conversion history.
type ConversionStore interface {
	// Save stores a conversion.
	Save(ctx context.Context, conversion *domain.Conversion) error

	// Get retrieves a conversion by ID.
	// Returns domain.ErrNotFound if the ID is unknown.
	Get(ctx context.Context, id string) (*domain.Conversion, error)

	// List returns conversions newest first.
	// A limit of zero or less returns every conversion.
	List(ctx context.Context, limit int) ([]domain.Conversion, error)

	// Clear removes all conversions.
	Clear(ctx context.Context) error
}
