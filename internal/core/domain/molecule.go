package domain

import "strings"

// Molecule is a parsed chemical structure.
// Its contents are produced and interpreted by a MoleculeParser; callers
// should treat Pickle as opaque.
type Molecule struct {
	// Notation is the compact SMILES string that was parsed.
	Notation string

	// Canonical is the canonical SMILES reported by the parser.
	// Two molecules are the same structure when their Canonical strings match.
	Canonical string

	// Pickle is the parser's binary serialisation of the structure.
	Pickle []byte
}

// Equivalent reports whether m and other describe the same structure.
func (m *Molecule) Equivalent(other *Molecule) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.Canonical == other.Canonical
}

// CompactNotation removes every space character from a spaced notation
// string, turning "C C ( C ) C" into "CC(C)C". Other whitespace is kept.
func CompactNotation(spaced string) string {
	return strings.ReplaceAll(spaced, " ", "")
}
