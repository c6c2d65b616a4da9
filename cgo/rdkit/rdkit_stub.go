//go:build !cgo || !rdkit

package rdkit

import (
	"context"

	"github.com/custodia-labs/molkit/internal/core/domain"
	"github.com/custodia-labs/molkit/internal/core/ports/driven"
)

// Ensure Parser implements the interface.
var _ driven.MoleculeParser = (*Parser)(nil)

// Parser parses SMILES strings with RDKit.
// This is a stub for builds without CGO or the rdkit tag.
type Parser struct {
	opts Options
}

// New creates a new RDKit parser.
func New(opts Options) (*Parser, error) {
	return &Parser{opts: opts}, nil
}

// Parse converts a compact SMILES string into a molecule.
func (p *Parser) Parse(_ context.Context, _ string) (*domain.Molecule, error) {
	return nil, domain.ErrParserUnavailable
}

// Version reports the RDKit version.
func (p *Parser) Version() string {
	return "unavailable"
}

// Close releases resources.
func (p *Parser) Close() error {
	return nil
}
