package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/molkit/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/molkit/internal/core/domain"
)

func TestSettingsService_Get_Defaults(t *testing.T) {
	svc := NewSettingsService(memory.NewConfigStore())

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)
}

func TestSettingsService_Get_FromStore(t *testing.T) {
	store := memory.NewConfigStore()
	require.NoError(t, store.Set("paths.root", "/srv/chem"))
	require.NoError(t, store.Set("log.level", "DEBUG"))
	require.NoError(t, store.Set("history.enabled", false))
	require.NoError(t, store.Set("history.limit", int64(0)))
	svc := NewSettingsService(store)

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, "/srv/chem", settings.Paths.Root)
	assert.Equal(t, "debug", settings.Log.Level)
	assert.False(t, settings.History.Enabled)
	assert.Equal(t, 0, settings.History.Limit)
}

func TestSettingsService_SetRoot(t *testing.T) {
	store := memory.NewConfigStore()
	svc := NewSettingsService(store)

	require.NoError(t, svc.SetRoot("/srv/chem"))
	assert.Equal(t, "/srv/chem", store.GetString("paths.root"))

	require.NoError(t, svc.SetRoot(""))
	_, ok := store.Get("paths.root")
	assert.False(t, ok)
}

func TestSettingsService_SetLogLevel(t *testing.T) {
	store := memory.NewConfigStore()
	svc := NewSettingsService(store)

	require.NoError(t, svc.SetLogLevel("Warn"))
	assert.Equal(t, "warn", store.GetString("log.level"))

	require.NoError(t, svc.SetLogLevel("warning"))
	assert.Equal(t, "warn", store.GetString("log.level"))

	err := svc.SetLogLevel("chatty")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "warn", store.GetString("log.level"))
}

func TestSettingsService_SetHistoryEnabled(t *testing.T) {
	store := memory.NewConfigStore()
	svc := NewSettingsService(store)

	require.NoError(t, svc.SetHistoryEnabled(false))

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.False(t, settings.History.Enabled)
}

func TestSettingsService_Validate(t *testing.T) {
	store := memory.NewConfigStore()
	svc := NewSettingsService(store)
	assert.NoError(t, svc.Validate())

	require.NoError(t, store.Set("log.level", "verbose"))
	assert.ErrorIs(t, svc.Validate(), domain.ErrInvalidInput)
}

func TestSettingsService_NilStore(t *testing.T) {
	svc := NewSettingsService(nil)

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)
	assert.Empty(t, svc.ConfigPath())
	assert.ErrorIs(t, svc.SetRoot("/x"), domain.ErrNotImplemented)
	assert.Empty(t, svc.UnknownKeys())
}

func TestSettingsService_UnknownKeys(t *testing.T) {
	store := memory.NewConfigStore()
	svc := NewSettingsService(store)
	assert.Empty(t, svc.UnknownKeys())

	require.NoError(t, store.Set("log.level", "debug"))
	require.NoError(t, store.Set("log.levle", "debug"))
	require.NoError(t, store.Set("history.enabled", true))
	require.NoError(t, store.Set("colour", "auto"))

	assert.Equal(t, []string{"colour", "log.levle"}, svc.UnknownKeys())
}
