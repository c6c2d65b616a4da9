// Package cli provides the molkit command-line interface.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/molkit/internal/core/ports/driving"
	"github.com/custodia-labs/molkit/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Injected services. Set by Configure.
var (
	notationService driving.NotationService
	historyService  driving.HistoryService
	settingsService driving.SettingsService
	dataPaths       DataPaths
	configWatcher   ConfigWatcher
	recordDefault   bool
	historyLimit    int
)

// Global flags.
var (
	verboseFlag   bool
	rootFlag      string
	configDirFlag string
)

// DataPaths resolves locations under the project data directory.
type DataPaths interface {
	Root() string
	DataPath(segments ...string) string
}

// ConfigWatcher reports changes to the configuration file.
type ConfigWatcher interface {
	Watch(ctx context.Context, onChange func()) error
}

// Flags holds the global flag values passed to a Bootstrap function.
type Flags struct {
	Verbose   bool
	Root      string
	ConfigDir string
}

// Services aggregates the dependencies used by the commands.
type Services struct {
	Notation driving.NotationService
	History  driving.HistoryService
	Settings driving.SettingsService
	Paths    DataPaths

	// Watcher lets long-running commands follow config edits. Optional.
	Watcher ConfigWatcher

	// RecordHistory is the default for convert --save.
	RecordHistory bool

	// HistoryLimit is the default for history --limit.
	HistoryLimit int
}

// Bootstrap builds the services from the global flags. The returned cleanup
// runs after the command finishes.
type Bootstrap func(ctx context.Context, flags Flags) (Services, func(), error)

var (
	bootstrap Bootstrap
	cleanup   func()
)

var rootCmd = &cobra.Command{
	Use:   "molkit",
	Short: "Space-delimited SMILES conversion toolkit",
	Long: `molkit converts space-delimited SMILES strings into molecules using RDKit,
resolves paths under the project data directory, and keeps a history of
conversions.`,
	SilenceUsage:      true,
	PersistentPreRunE: runBootstrap,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		runCleanup()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&rootFlag, "root", "", "project root directory")
	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config", "", "configuration directory (default ~/.molkit)")
}

// Configure sets the services used by the commands.
func Configure(s Services) {
	notationService = s.Notation
	historyService = s.History
	settingsService = s.Settings
	dataPaths = s.Paths
	configWatcher = s.Watcher
	recordDefault = s.RecordHistory
	historyLimit = s.HistoryLimit
}

// Execute runs the root command. boot is called once flags are parsed.
func Execute(ctx context.Context, boot Bootstrap) error {
	bootstrap = boot
	defer runCleanup()
	return rootCmd.ExecuteContext(ctx)
}

func runBootstrap(cmd *cobra.Command, _ []string) error {
	if verboseFlag {
		logger.SetVerbose(true)
	}
	if bootstrap == nil {
		return nil
	}

	services, done, err := bootstrap(cmd.Context(), Flags{
		Verbose:   verboseFlag,
		Root:      rootFlag,
		ConfigDir: configDirFlag,
	})
	if err != nil {
		return fmt.Errorf("startup failed: %w", err)
	}
	cleanup = done
	Configure(services)
	return nil
}

func runCleanup() {
	if cleanup != nil {
		cleanup()
		cleanup = nil
	}
}
