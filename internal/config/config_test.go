package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/eventbus"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 5*time.Second, cfg.Animation.StatusResetDelay.Std())
	assert.Equal(t, 300*time.Millisecond, cfg.Animation.ModalCloseDelay.Std())
	assert.Equal(t, BackendSimulated, cfg.Contact.Backend)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	svc := NewConfigServiceWithBus(nil, path)

	cfg := DefaultConfig()
	cfg.UISettings.Theme = ThemeDark
	cfg.Animation.TypeSpeed = Duration(80 * time.Millisecond)
	require.NoError(t, svc.Save(cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "80ms")

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, loaded.UISettings.Theme)
	assert.Equal(t, 80*time.Millisecond, loaded.Animation.TypeSpeed.Std())
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	svc := NewConfigServiceWithBus(nil, filepath.Join(t.TempDir(), "absent.toml"))
	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\ntheme = \"light\"\n"), 0644))

	cfg, err := NewConfigServiceWithBus(nil, path).Load()
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, cfg.UISettings.Theme)
	assert.Equal(t, "bars", cfg.UISettings.SkillView)
	assert.Equal(t, 3, cfg.Contact.MaxAttempts)
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown theme", "[ui]\ntheme = \"neon\"\n"},
		{"unknown backend", "[contact]\nbackend = \"pigeon\"\n"},
		{"http without url", "[contact]\nbackend = \"http\"\n"},
		{"smtp without host", "[contact]\nbackend = \"smtp\"\n"},
		{"bad duration", "[animation]\ntype_speed = \"fast\"\n"},
		{"zero attempts", "[contact]\nmax_attempts = 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0644))
			_, err := NewConfigServiceWithBus(nil, path).Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadPublishesConfigLoaded(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	got := make(chan eventbus.DomainEvent, 1)
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) { got <- e })

	path := filepath.Join(t.TempDir(), "config.toml")
	_, err := NewConfigServiceWithBus(bus, path).Load()
	require.NoError(t, err)

	select {
	case e := <-got:
		ev := e.(eventbus.ConfigLoadedEvent)
		assert.Equal(t, path, ev.Path)
		assert.Equal(t, "system", ev.Theme)
	case <-time.After(2 * time.Second):
		t.Fatal("ConfigLoaded not published")
	}
}

func TestThemeCycle(t *testing.T) {
	assert.Equal(t, ThemeLight, ThemeSystem.Next())
	assert.Equal(t, ThemeDark, ThemeLight.Next())
	assert.Equal(t, ThemeSystem, ThemeDark.Next())
}
