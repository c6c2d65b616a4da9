package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var pathCmd = &cobra.Command{
	Use:   "path [segment]...",
	Short: "Resolve a path under the data directory",
	Long: `Prints <root>/data joined with the given segments. The path is not
created and need not exist.`,
	RunE: runPath,
}

func init() {
	rootCmd.AddCommand(pathCmd)
}

func runPath(cmd *cobra.Command, args []string) error {
	if dataPaths == nil {
		return errors.New("paths not configured")
	}
	fmt.Fprintln(cmd.OutOrStdout(), dataPaths.DataPath(args...))
	return nil
}
