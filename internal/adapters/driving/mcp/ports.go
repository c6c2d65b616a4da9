package mcp

import (
	"github.com/custodia-labs/molkit/internal/core/ports/driving"
)

// DataPaths resolves locations under the project data directory.
// Satisfied by paths.Resolver.
type DataPaths interface {
	DataPath(segments ...string) string
}

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Notation converts spaced SMILES strings.
	Notation driving.NotationService

	// Paths resolves data file locations.
	Paths DataPaths

	// History records conversions. Optional.
	History driving.HistoryService

	// RecordHistory saves every successful conversion when History is set.
	RecordHistory bool
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Notation == nil {
		return ErrMissingNotationService
	}
	if p.Paths == nil {
		return ErrMissingPaths
	}
	return nil
}
