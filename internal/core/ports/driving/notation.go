package driving

import (
	"context"

	"github.com/custodia-labs/molkit/internal/core/domain"
)

// NotationService converts line notation strings into molecules.
type NotationService interface {
	// FromSpaced strips spaces from a spaced SMILES string and parses it.
	// Parser failures are returned unchanged.
	FromSpaced(ctx context.Context, spaced string) (*domain.Molecule, error)

	// Parse parses an already compact SMILES string.
	Parse(ctx context.Context, smiles string) (*domain.Molecule, error)

	// ParserVersion reports the chemistry backend version.
	ParserVersion() string
}
