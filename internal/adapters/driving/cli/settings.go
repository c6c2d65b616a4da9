package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the project root, log level and conversion history.

Settings are stored in config.toml inside the configuration directory.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsRootCmd = &cobra.Command{
	Use:   "set-root [dir]",
	Short: "Set the project root",
	Long:  `Set the project root used when --root is not given. Omit dir to clear it.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSettingsRoot,
}

var settingsLogLevelCmd = &cobra.Command{
	Use:   "set-log-level [level]",
	Short: "Set the minimum log level",
	Long: `Set the minimum log level.

Available levels:
  debug
  info   (default)
  warn   (or warning)
  error`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsLogLevel,
}

var settingsHistoryCmd = &cobra.Command{
	Use:       "history [on|off]",
	Short:     "Enable or disable conversion history",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"on", "off"},
	RunE:      runSettingsHistory,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsRootCmd)
	settingsCmd.AddCommand(settingsLogLevelCmd)
	settingsCmd.AddCommand(settingsHistoryCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Paths]")
	if settings.Paths.Root != "" {
		cmd.Printf("  Root: %s\n", settings.Paths.Root)
	} else {
		cmd.Printf("  Root: (detected)\n")
	}
	if dataPaths != nil {
		cmd.Printf("  Effective root: %s\n", dataPaths.Root())
		cmd.Printf("  Data directory: %s\n", dataPaths.DataPath())
	}
	cmd.Println()

	cmd.Println("[Log]")
	cmd.Printf("  Level: %s\n", settings.Log.Level)
	cmd.Println()

	cmd.Println("[History]")
	cmd.Printf("  Enabled: %s\n", onOff(settings.History.Enabled))
	cmd.Printf("  Limit: %d\n", settings.History.Limit)
	cmd.Println()

	if unknown := settingsService.UnknownKeys(); len(unknown) > 0 {
		cmd.Println("[Unknown keys]")
		for _, key := range unknown {
			cmd.Printf("  %s (ignored)\n", key)
		}
		cmd.Println()
	}

	if path := settingsService.ConfigPath(); path != "" {
		cmd.Printf("Config file: %s\n", path)
	}
	return nil
}

func runSettingsRoot(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	root := ""
	if len(args) == 1 {
		root = args[0]
	}
	if err := settingsService.SetRoot(root); err != nil {
		return fmt.Errorf("failed to save root: %w", err)
	}

	if root == "" {
		cmd.Println("Project root cleared.")
	} else {
		cmd.Printf("Project root set to %s\n", root)
	}
	return nil
}

func runSettingsLogLevel(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	level := strings.ToLower(args[0])
	if err := settingsService.SetLogLevel(level); err != nil {
		return fmt.Errorf("failed to save log level: %w", err)
	}

	cmd.Printf("Log level set to %s\n", level)
	return nil
}

func runSettingsHistory(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	enabled, err := parseOnOff(args[0])
	if err != nil {
		return err
	}
	if err := settingsService.SetHistoryEnabled(enabled); err != nil {
		return fmt.Errorf("failed to save history setting: %w", err)
	}

	if enabled {
		cmd.Println("History enabled.")
	} else {
		cmd.Println("History disabled.")
	}
	return nil
}

// parseOnOff accepts on/off and the usual boolean spellings.
func parseOnOff(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	default:
		return false, fmt.Errorf("expected on or off, got %q", s)
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
