//go:build cgo && rdkit

package rdkit

/*
#cgo LDFLAGS: -lrdkitcffi

#include <stdlib.h>

// Declarations from RDKit's MinimalLib/cffiwrapper.h.
char *get_mol(const char *input, size_t *mol_sz, const char *details_json);
char *get_smiles(const char *pkl, size_t pkl_sz, const char *details_json);
char *version();
void enable_logging();
void disable_logging();
void free_ptr(char *ptr);
*/
import "C"

import (
	"context"
	"fmt"
	"sync"
	"unsafe"

	"github.com/custodia-labs/molkit/internal/core/domain"
	"github.com/custodia-labs/molkit/internal/core/ports/driven"
)

// Ensure Parser implements the interface.
var _ driven.MoleculeParser = (*Parser)(nil)

// Parser parses SMILES strings with RDKit.
type Parser struct {
	mu      sync.RWMutex
	closed  bool
	version string
}

// New creates a new RDKit parser. RDKit's own stderr logging is only
// enabled in verbose mode.
func New(opts Options) (*Parser, error) {
	if opts.Verbose {
		C.enable_logging()
	} else {
		C.disable_logging()
	}

	return &Parser{
		version: takeString(C.version()),
	}, nil
}

// Parse converts a compact SMILES string into a molecule.
// Invalid notation yields an error wrapping domain.ErrInvalidNotation.
func (p *Parser) Parse(ctx context.Context, smiles string) (*domain.Molecule, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return nil, domain.ErrParserClosed
	}

	cInput := C.CString(smiles)
	defer C.free(unsafe.Pointer(cInput))

	var pklSize C.size_t
	pkl := C.get_mol(cInput, &pklSize, nil)
	if pkl == nil {
		return nil, fmt.Errorf("rdkit: cannot parse %q: %w", smiles, domain.ErrInvalidNotation)
	}
	defer C.free_ptr(pkl)

	canonical := takeString(C.get_smiles(pkl, pklSize, nil))

	return &domain.Molecule{
		Notation:  smiles,
		Canonical: canonical,
		Pickle:    C.GoBytes(unsafe.Pointer(pkl), C.int(pklSize)),
	}, nil
}

// Version reports the RDKit version.
func (p *Parser) Version() string {
	return p.version
}

// Close releases resources. It is safe to call more than once.
func (p *Parser) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}

// takeString copies a C string returned by RDKit and frees it.
func takeString(s *C.char) string {
	if s == nil {
		return ""
	}
	defer C.free_ptr(s)
	return C.GoString(s)
}
