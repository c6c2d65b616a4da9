// Package rdkit provides CGO bindings for RDKit's MinimalLib C API.
// It implements the driven.MoleculeParser interface.
//
// The binding is only compiled with CGO enabled and the rdkit build tag;
// every other build gets a stub whose Parse returns
// domain.ErrParserUnavailable.
//
// Build requires:
//   - RDKit built with -DRDK_BUILD_CFFI_LIB=ON (provides librdkitcffi)
//   - go build -tags rdkit, with CGO_LDFLAGS pointing at the library
//     if it is not on the default linker path
package rdkit
