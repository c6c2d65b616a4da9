package cli

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/molkit/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/molkit/internal/core/domain"
	"github.com/custodia-labs/molkit/internal/core/services"
	"github.com/custodia-labs/molkit/internal/paths"
)

// stubParser canonicalises a handful of known SMILES strings.
type stubParser struct{}

var stubCanonical = map[string]string{
	"CC(C)C": "CC(C)C",
	"OCC":    "CCO",
	"CCO":    "CCO",
}

func (stubParser) Parse(_ context.Context, smiles string) (*domain.Molecule, error) {
	canonical, ok := stubCanonical[smiles]
	if !ok {
		return nil, fmt.Errorf("stub: %q: %w", smiles, domain.ErrInvalidNotation)
	}
	return &domain.Molecule{Notation: smiles, Canonical: canonical}, nil
}

func (stubParser) Version() string { return "stub-2025.03" }

func (stubParser) Close() error { return nil }

// testEnv exposes the services installed by setupTestServices.
type testEnv struct {
	history  *services.HistoryService
	settings *services.SettingsService
	config   *memory.ConfigStore
	paths    paths.Resolver
}

// setupTestServices installs in-memory services rooted at a temp dir. The
// previous services are restored when the test ends.
func setupTestServices(t *testing.T) *testEnv {
	t.Helper()

	resolver, err := paths.New(t.TempDir())
	require.NoError(t, err)

	config := memory.NewConfigStore()
	env := &testEnv{
		history:  services.NewHistoryService(memory.NewConversionStore()),
		settings: services.NewSettingsService(config),
		config:   config,
		paths:    resolver,
	}

	prev := Services{
		Notation:      notationService,
		History:       historyService,
		Settings:      settingsService,
		Paths:         dataPaths,
		Watcher:       configWatcher,
		RecordHistory: recordDefault,
		HistoryLimit:  historyLimit,
	}
	Configure(Services{
		Notation:     services.NewNotationService(stubParser{}),
		History:      env.history,
		Settings:     env.settings,
		Paths:        resolver,
		HistoryLimit: 20,
	})
	t.Cleanup(func() { Configure(prev) })

	return env
}

// executeCommand runs rootCmd with args and returns the combined output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := captureOutput(t)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

// captureOutput redirects rootCmd output into a buffer until the test ends.
func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		resetFlags(rootCmd)
		bootstrap = nil
	})
	return buf
}

// resetFlags restores every flag to its default so tests do not leak state.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}
