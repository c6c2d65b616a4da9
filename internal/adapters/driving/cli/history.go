package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/molkit/internal/core/domain"
)

var (
	historyListLimit int
	historyJSON      bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded conversions",
	Long:  `Lists recorded SMILES conversions, newest first.`,
	RunE:  runHistoryList,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded conversions",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.Flags().IntVarP(&historyListLimit, "limit", "n", 0, "maximum number of conversions (default from history.limit)")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output conversions as JSON")
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	limit := historyListLimit
	if limit <= 0 {
		limit = historyLimit
	}

	conversions, err := historyService.List(cmd.Context(), limit)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if historyJSON {
		if conversions == nil {
			conversions = []domain.Conversion{}
		}
		data, err := json.MarshalIndent(conversions, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal history: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(conversions) == 0 {
		cmd.Println("No conversions recorded.")
		return nil
	}

	for i := range conversions {
		c := &conversions[i]
		cmd.Printf("  %s  %s\n", c.CreatedAt.Local().Format("2006-01-02 15:04:05"), c.Canonical)
		cmd.Printf("      Input: %s\n", c.Input)
		cmd.Printf("      ID: %s\n", c.ID)
	}
	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}
	if err := historyService.Clear(cmd.Context()); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	cmd.Println("History cleared.")
	return nil
}
