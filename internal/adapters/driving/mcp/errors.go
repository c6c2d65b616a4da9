// Package mcp provides an MCP (Model Context Protocol) server adapter for molkit.
// It lets AI assistants convert spaced SMILES strings and locate project data files.
package mcp

import "errors"

var (
	// ErrMissingNotationService is returned when the notation service is not provided.
	ErrMissingNotationService = errors.New("mcp: notation service is required")

	// ErrMissingPaths is returned when the path resolver is not provided.
	ErrMissingPaths = errors.New("mcp: path resolver is required")
)
