package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/molkit/internal/logger"
)

var (
	convertJSON bool
	convertSave bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [spaced-smiles]...",
	Short: "Convert space-delimited SMILES",
	Long: `Removes the spaces from a tokenised SMILES string and parses it with RDKit.
Multiple arguments are joined with single spaces, so both of these work:

  molkit convert "C C ( C ) C"
  molkit convert C C "(" C ")" C

Prints the canonical SMILES of the parsed molecule.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().BoolVar(&convertJSON, "json", false, "output the result as JSON")
	convertCmd.Flags().BoolVar(&convertSave, "save", false, "record the conversion in history (default from history.enabled)")
	rootCmd.AddCommand(convertCmd)
}

type convertResult struct {
	Input     string `json:"input"`
	Notation  string `json:"notation"`
	Canonical string `json:"canonical"`
	ID        string `json:"id,omitempty"`
}

func runConvert(cmd *cobra.Command, args []string) error {
	if notationService == nil {
		return errors.New("notation service not configured")
	}

	ctx := cmd.Context()
	spaced := strings.Join(args, " ")

	mol, err := notationService.FromSpaced(ctx, spaced)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	result := convertResult{
		Input:     spaced,
		Notation:  mol.Notation,
		Canonical: mol.Canonical,
	}

	save := recordDefault
	if cmd.Flags().Changed("save") {
		save = convertSave
	}
	if save && historyService != nil {
		conv, err := historyService.Record(ctx, spaced, mol)
		if err != nil {
			logger.Warn("recording conversion: %v", err)
		} else {
			result.ID = conv.ID
		}
	}

	if convertJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.Canonical)
	return nil
}
