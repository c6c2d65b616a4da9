package domain

import "time"

// Conversion records a successful spaced-notation conversion.
type Conversion struct {
	// ID is the unique conversion identifier.
	ID string `json:"id"`

	// Input is the spaced string as supplied by the caller.
	Input string `json:"input"`

	// Notation is the compact string handed to the parser.
	Notation string `json:"notation"`

	// Canonical is the canonical SMILES of the parsed molecule.
	Canonical string `json:"canonical"`

	// CreatedAt is when the conversion was recorded.
	CreatedAt time.Time `json:"created_at"`
}
