// Package cgo provides CGO bindings for native libraries.
// This package isolates all CGO code from the pure Go core.
//
// Sub-packages:
//   - rdkit: RDKit MinimalLib bindings for SMILES parsing
package cgo
