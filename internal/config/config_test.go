package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexibar/internal/eventbus"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	svc := NewConfigServiceAt(filepath.Join(t.TempDir(), "nope.toml"))

	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Search, cfg.Search)
	assert.Equal(t, 0.35, cfg.Scroll.InflectionPoint)
	assert.Equal(t, 0.05, cfg.Scroll.HysteresisBuffer)
	assert.Equal(t, 200*time.Millisecond, cfg.Search.Debounce())
	assert.Equal(t, 150*time.Millisecond, cfg.Focus.BlurDebounce())
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	svc := NewConfigServiceAt(path)

	cfg := DefaultConfig()
	cfg.DictionaryPath = "/tmp/words.toml"
	cfg.Scroll.MomentumThreshold = 12
	cfg.UI.ShowSuggestions = false
	require.NoError(t, svc.Save(cfg))

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/words.toml", loaded.DictionaryPath)
	assert.Equal(t, 12.0, loaded.Scroll.MomentumThreshold)
	assert.False(t, loaded.UI.ShowSuggestions)
}

func TestPartialFileKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[search]
debounce_ms = 350

[scroll]
inflection_point = 0.5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := NewConfigServiceAt(path).Load()
	require.NoError(t, err)
	assert.Equal(t, 350, cfg.Search.DebounceMs)
	assert.Equal(t, 2, cfg.Search.MinQueryLength)
	assert.Equal(t, 0.5, cfg.Scroll.InflectionPoint)
	assert.Equal(t, 16, cfg.Scroll.FrameMs)
}

func TestNormalizeRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		check  func(*testing.T, *Config)
	}{
		{
			name:   "inflection point out of range",
			mutate: func(c *Config) { c.Scroll.InflectionPoint = 1.5 },
			check:  func(t *testing.T, c *Config) { assert.Equal(t, 0.35, c.Scroll.InflectionPoint) },
		},
		{
			name:   "buffer wider than inflection point",
			mutate: func(c *Config) { c.Scroll.HysteresisBuffer = 0.4 },
			check:  func(t *testing.T, c *Config) { assert.Equal(t, 0.05, c.Scroll.HysteresisBuffer) },
		},
		{
			name:   "negative debounce",
			mutate: func(c *Config) { c.Search.DebounceMs = -10 },
			check:  func(t *testing.T, c *Config) { assert.Equal(t, 200, c.Search.DebounceMs) },
		},
		{
			name:   "zero threshold",
			mutate: func(c *Config) { c.Scroll.MomentumThreshold = 0 },
			check:  func(t *testing.T, c *Config) { assert.Equal(t, 8.0, c.Scroll.MomentumThreshold) },
		},
		{
			name:   "zero controls padding is allowed",
			mutate: func(c *Config) { c.UI.ControlsPadding = 0 },
			check:  func(t *testing.T, c *Config) { assert.Equal(t, 0, c.UI.ControlsPadding) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			cfg.Normalize()
			tt.check(t, cfg)
		})
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[search\ndebounce_ms = "), 0644))

	_, err := NewConfigServiceAt(path).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoadPublishesEvent(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	got := make(chan eventbus.DomainEvent, 1)
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) { got <- e })

	path := filepath.Join(t.TempDir(), "config.toml")
	_, err := NewConfigServiceWithBus(bus, path).Load()
	require.NoError(t, err)

	select {
	case e := <-got:
		assert.Equal(t, path, e.(eventbus.ConfigLoadedEvent).Path)
	case <-time.After(time.Second):
		t.Fatal("ConfigLoadedEvent not published")
	}
}
