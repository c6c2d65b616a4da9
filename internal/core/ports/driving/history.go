package driving

import (
	"context"

	"github.com/custodia-labs/molkit/internal/core/domain"
)

// HistoryService records and lists conversions.
type HistoryService interface {
	// Record stores a successful conversion and returns the stored entry.
	Record(ctx context.Context, input string, mol *domain.Molecule) (*domain.Conversion, error)

	// Get retrieves a recorded conversion by ID.
	Get(ctx context.Context, id string) (*domain.Conversion, error)

	// List returns recorded conversions, newest first.
	List(ctx context.Context, limit int) ([]domain.Conversion, error)

	// Clear removes all recorded conversions.
	Clear(ctx context.Context) error
}
