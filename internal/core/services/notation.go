package services

import (
	"context"

	"github.com/custodia-labs/molkit/internal/core/domain"
	"github.com/custodia-labs/molkit/internal/core/ports/driven"
	"github.com/custodia-labs/molkit/internal/core/ports/driving"
)

// Ensure NotationService implements the interface.
var _ driving.NotationService = (*NotationService)(nil)

// NotationService converts spaced SMILES strings into molecules.
// It performs no validation of its own; the parser decides what is valid.
type NotationService struct {
	parser driven.MoleculeParser
}

// NewNotationService creates a new notation service.
func NewNotationService(parser driven.MoleculeParser) *NotationService {
	return &NotationService{parser: parser}
}

// FromSpaced converts "C C ( C ) C" into the molecule for "CC(C)C".
// The parser's error is returned as is.
func (s *NotationService) FromSpaced(ctx context.Context, spaced string) (*domain.Molecule, error) {
	return s.Parse(ctx, domain.CompactNotation(spaced))
}

// Parse parses a compact SMILES string.
func (s *NotationService) Parse(ctx context.Context, smiles string) (*domain.Molecule, error) {
	if s.parser == nil {
		return nil, domain.ErrParserUnavailable
	}
	return s.parser.Parse(ctx, smiles)
}

// ParserVersion reports the chemistry backend version.
func (s *NotationService) ParserVersion() string {
	if s.parser == nil {
		return ""
	}
	return s.parser.Version()
}
