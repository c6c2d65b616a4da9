package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/molkit/internal/core/domain"
)

// fakeParser is a table-driven stand-in for the RDKit parser.
type fakeParser struct {
	canonical map[string]string
	calls     []string
	err       error
}

func newFakeParser() *fakeParser {
	return &fakeParser{
		canonical: map[string]string{
			"CC(C)C":   "CC(C)C",
			"C(C)(C)C": "CC(C)C",
			"CCO":      "CCO",
			"OCC":      "CCO",
			"c1ccccc1": "c1ccccc1",
			"CC(=O)O":  "CC(=O)O",
			"OC(=O)C":  "CC(=O)O",
		},
	}
}

func (p *fakeParser) Parse(_ context.Context, smiles string) (*domain.Molecule, error) {
	p.calls = append(p.calls, smiles)
	if p.err != nil {
		return nil, p.err
	}
	canonical, ok := p.canonical[smiles]
	if !ok {
		return nil, fmt.Errorf("fake: %q: %w", smiles, domain.ErrInvalidNotation)
	}
	return &domain.Molecule{
		Notation:  smiles,
		Canonical: canonical,
		Pickle:    []byte(canonical),
	}, nil
}

func (p *fakeParser) Version() string { return "fake-1.0" }

func (p *fakeParser) Close() error { return nil }
