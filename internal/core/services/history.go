package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/molkit/internal/core/domain"
	"github.com/custodia-labs/molkit/internal/core/ports/driven"
	"github.com/custodia-labs/molkit/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService records conversions made through the CLI and MCP server.
type HistoryService struct {
	store driven.ConversionStore
	now   func() time.Time
}

// NewHistoryService creates a new history service.
func NewHistoryService(store driven.ConversionStore) *HistoryService {
	return &HistoryService{
		store: store,
		now:   time.Now,
	}
}

// Record stores a successful conversion.
func (s *HistoryService) Record(
	ctx context.Context,
	input string,
	mol *domain.Molecule,
) (*domain.Conversion, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	if mol == nil {
		return nil, fmt.Errorf("%w: nil molecule", domain.ErrInvalidInput)
	}

	conversion := &domain.Conversion{
		ID:        uuid.New().String(),
		Input:     input,
		Notation:  mol.Notation,
		Canonical: mol.Canonical,
		CreatedAt: s.now().UTC(),
	}

	if err := s.store.Save(ctx, conversion); err != nil {
		return nil, fmt.Errorf("save conversion: %w", err)
	}
	return conversion, nil
}

// Get retrieves a recorded conversion by ID.
func (s *HistoryService) Get(ctx context.Context, id string) (*domain.Conversion, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.store.Get(ctx, id)
}

// List returns recorded conversions, newest first.
func (s *HistoryService) List(ctx context.Context, limit int) ([]domain.Conversion, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.store.List(ctx, limit)
}

// Clear removes all recorded conversions.
func (s *HistoryService) Clear(ctx context.Context) error {
	if s.store == nil {
		return domain.ErrNotImplemented
	}
	return s.store.Clear(ctx)
}
