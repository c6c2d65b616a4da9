package mcp

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/custodia-labs/molkit/internal/core/domain"
)

// mockNotationService is a mock implementation of driving.NotationService.
type mockNotationService struct {
	canonical map[string]string
	lastInput string
}

func (m *mockNotationService) FromSpaced(ctx context.Context, spaced string) (*domain.Molecule, error) {
	m.lastInput = spaced
	return m.Parse(ctx, domain.CompactNotation(spaced))
}

func (m *mockNotationService) Parse(_ context.Context, smiles string) (*domain.Molecule, error) {
	canonical, ok := m.canonical[smiles]
	if !ok {
		return nil, fmt.Errorf("mock: %q: %w", smiles, domain.ErrInvalidNotation)
	}
	return &domain.Molecule{Notation: smiles, Canonical: canonical}, nil
}

func (m *mockNotationService) ParserVersion() string { return "mock" }

// mockHistoryService is a mock implementation of driving.HistoryService.
type mockHistoryService struct {
	recorded    []domain.Conversion
	conversions []domain.Conversion
	lastLimit   int
	err         error
}

func (m *mockHistoryService) Record(
	_ context.Context,
	input string,
	mol *domain.Molecule,
) (*domain.Conversion, error) {
	if m.err != nil {
		return nil, m.err
	}
	conv := domain.Conversion{
		ID:        fmt.Sprintf("conv-%d", len(m.recorded)+1),
		Input:     input,
		Notation:  mol.Notation,
		Canonical: mol.Canonical,
	}
	m.recorded = append(m.recorded, conv)
	return &conv, nil
}

func (m *mockHistoryService) Get(_ context.Context, _ string) (*domain.Conversion, error) {
	return nil, domain.ErrNotFound
}

func (m *mockHistoryService) List(_ context.Context, limit int) ([]domain.Conversion, error) {
	m.lastLimit = limit
	return m.conversions, m.err
}

func (m *mockHistoryService) Clear(_ context.Context) error {
	return m.err
}

// mockPaths is a fixed-root path resolver.
type mockPaths struct {
	root string
}

func (m mockPaths) DataPath(segments ...string) string {
	return filepath.Join(append([]string{m.root, "data"}, segments...)...)
}

func newMockNotation() *mockNotationService {
	return &mockNotationService{
		canonical: map[string]string{
			"CC(C)C": "CC(C)C",
			"OCC":    "CCO",
		},
	}
}
