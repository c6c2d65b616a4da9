package driven

import (
	"context"

	"github.com/custodia-labs/molkit/internal/core/domain"
)

// MoleculeParser turns a compact line notation string into a molecule.
// Backed by RDKit. All chemistry lives behind this interface.
type MoleculeParser interface {
	// Parse converts a compact SMILES string into a molecule.
	// Returns domain.ErrInvalidNotation when the string is not valid notation.
	Parse(ctx context.Context, smiles string) (*domain.Molecule, error)

	// Version reports the backing library version.
	Version() string

	// Close releases resources.
	Close() error
}
