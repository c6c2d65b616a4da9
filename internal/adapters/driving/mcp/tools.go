package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/molkit/internal/logger"
)

const defaultHistoryLimit = 20

// ConvertInput is the input schema for the convert_smiles tool.
type ConvertInput struct {
	Spaced string `json:"spaced" jsonschema:"SMILES tokens separated by single spaces, e.g. C C ( C ) C"`
}

// ConvertOutput is the output schema for the convert_smiles tool.
type ConvertOutput struct {
	Notation  string `json:"notation"`
	Canonical string `json:"canonical"`
	ID        string `json:"id,omitempty"`
}

// DataPathInput is the input schema for the data_path tool.
type DataPathInput struct {
	Segments []string `json:"segments,omitempty" jsonschema:"path segments to join under the data directory"`
}

// DataPathOutput is the output schema for the data_path tool.
type DataPathOutput struct {
	Path string `json:"path"`
}

// HistoryInput is the input schema for the history tool.
type HistoryInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of conversions to return (default 20)"`
}

// HistoryOutput is the output schema for the history tool.
type HistoryOutput struct {
	Conversions []ConversionOutput `json:"conversions"`
	Count       int                `json:"count"`
}

// ConversionOutput represents a single recorded conversion.
type ConversionOutput struct {
	ID        string    `json:"id"`
	Input     string    `json:"input"`
	Notation  string    `json:"notation"`
	Canonical string    `json:"canonical"`
	CreatedAt time.Time `json:"created_at"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "convert_smiles",
		Description: "Convert a space-separated SMILES string into a canonical SMILES molecule",
	}, s.handleConvert)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "data_path",
		Description: "Resolve a path inside the project data directory",
	}, s.handleDataPath)

	if s.ports.History != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "history",
			Description: "List recent SMILES conversions, newest first",
		}, s.handleHistory)
	}
}

// handleConvert handles the convert_smiles tool invocation.
func (s *Server) handleConvert(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ConvertInput,
) (*mcp.CallToolResult, ConvertOutput, error) {
	mol, err := s.ports.Notation.FromSpaced(ctx, input.Spaced)
	if err != nil {
		return nil, ConvertOutput{}, err
	}

	output := ConvertOutput{
		Notation:  mol.Notation,
		Canonical: mol.Canonical,
	}

	if s.ports.RecordHistory && s.ports.History != nil {
		conv, err := s.ports.History.Record(ctx, input.Spaced, mol)
		if err != nil {
			// History failures do not fail the conversion.
			logger.Warn("mcp: recording conversion: %v", err)
		} else {
			output.ID = conv.ID
		}
	}

	return nil, output, nil
}

// handleDataPath handles the data_path tool invocation.
func (s *Server) handleDataPath(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input DataPathInput,
) (*mcp.CallToolResult, DataPathOutput, error) {
	return nil, DataPathOutput{Path: s.ports.Paths.DataPath(input.Segments...)}, nil
}

// handleHistory handles the history tool invocation.
func (s *Server) handleHistory(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input HistoryInput,
) (*mcp.CallToolResult, HistoryOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	conversions, err := s.ports.History.List(ctx, limit)
	if err != nil {
		return nil, HistoryOutput{}, err
	}

	output := HistoryOutput{
		Conversions: make([]ConversionOutput, len(conversions)),
		Count:       len(conversions),
	}
	for i := range conversions {
		output.Conversions[i] = ConversionOutput{
			ID:        conversions[i].ID,
			Input:     conversions[i].Input,
			Notation:  conversions[i].Notation,
			Canonical: conversions[i].Canonical,
			CreatedAt: conversions[i].CreatedAt,
		}
	}

	return nil, output, nil
}
