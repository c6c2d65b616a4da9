package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/molkit/internal/core/domain"
	"github.com/custodia-labs/molkit/internal/core/ports/driven"
)

// Ensure ConversionStore implements the interface.
var _ driven.ConversionStore = (*ConversionStore)(nil)

// ConversionStore is an in-memory implementation of driven.ConversionStore.
type ConversionStore struct {
	mu          sync.RWMutex
	conversions map[string]domain.Conversion
	seq         map[string]int
	next        int
	closed      bool
}

// NewConversionStore creates a new in-memory conversion store.
func NewConversionStore() *ConversionStore {
	return &ConversionStore{
		conversions: make(map[string]domain.Conversion),
		seq:         make(map[string]int),
	}
}

// Save stores or replaces a conversion.
func (s *ConversionStore) Save(_ context.Context, conversion *domain.Conversion) error {
	if conversion == nil || conversion.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return domain.ErrStoreClosed
	}
	if _, ok := s.seq[conversion.ID]; !ok {
		s.next++
		s.seq[conversion.ID] = s.next
	}
	s.conversions[conversion.ID] = *conversion
	return nil
}

// Get retrieves a conversion by ID.
func (s *ConversionStore) Get(_ context.Context, id string) (*domain.Conversion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, domain.ErrStoreClosed
	}
	conversion, ok := s.conversions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &conversion, nil
}

// List returns conversions newest first. Ties on CreatedAt fall back to
// insertion order.
func (s *ConversionStore) List(_ context.Context, limit int) ([]domain.Conversion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, domain.ErrStoreClosed
	}

	result := make([]domain.Conversion, 0, len(s.conversions))
	for _, c := range s.conversions {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return s.seq[result[i].ID] > s.seq[result[j].ID]
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// Clear removes all conversions.
func (s *ConversionStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return domain.ErrStoreClosed
	}
	s.conversions = make(map[string]domain.Conversion)
	s.seq = make(map[string]int)
	return nil
}

// Close discards the stored conversions. Later calls return
// domain.ErrStoreClosed.
func (s *ConversionStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.conversions = nil
	s.seq = nil
	return nil
}
