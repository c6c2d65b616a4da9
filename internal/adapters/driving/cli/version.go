package cli

import (
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("molkit version %s\n", version)
		if notationService != nil {
			cmd.Printf("rdkit version %s\n", notationService.ParserVersion())
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
