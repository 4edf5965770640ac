package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"lexibar/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version        int            `toml:"version"`
	DictionaryPath string         `toml:"dictionary_path"` // empty means the built-in word list
	HistoryPath    string         `toml:"history_path"`
	Search         SearchSettings `toml:"search"`
	Scroll         ScrollSettings `toml:"scroll"`
	Focus          FocusSettings  `toml:"focus"`
	UI             UISettings     `toml:"ui"`
}

// SearchSettings controls query dispatch and lookups
type SearchSettings struct {
	DebounceMs       int `toml:"debounce_ms"`
	MinQueryLength   int `toml:"min_query_length"`
	MaxResults       int `toml:"max_results"`
	LookupsPerSecond int `toml:"lookups_per_second"`
	LookupBurst      int `toml:"lookup_burst"`
	CacheTTLSeconds  int `toml:"cache_ttl_seconds"`
}

// ScrollSettings controls the scroll signal processor and the normal/scrolled threshold
type ScrollSettings struct {
	InflectionPoint    float64 `toml:"inflection_point"`
	HysteresisBuffer   float64 `toml:"hysteresis_buffer"`
	MomentumThreshold  float64 `toml:"momentum_threshold"` // lines per frame
	MomentumCooldownMs int     `toml:"momentum_cooldown_ms"`
	IdleClearMs        int     `toml:"idle_clear_ms"`
	FrameMs            int     `toml:"frame_ms"`
}

// FocusSettings controls blur tolerance and the click guard
type FocusSettings struct {
	BlurDebounceMs     int `toml:"blur_debounce_ms"`
	InteractionGuardMs int `toml:"interaction_guard_ms"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ControlsPadding int  `toml:"controls_padding"`
	ResultsRows     int  `toml:"results_rows"`
	ShowSuggestions bool `toml:"show_suggestions"`
	SuggestionCount int  `toml:"suggestion_count"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultDir returns the lexibar config directory
func DefaultDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "lexibar")
}

// NewConfigService creates a config service bound to the default config file
func NewConfigService() ConfigService {
	return &configService{
		filePath: filepath.Join(DefaultDir(), "config.toml"),
	}
}

// NewConfigServiceAt creates a config service bound to a specific file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus, path string) ConfigService {
	cs := &configService{bus: bus, filePath: path}
	if path == "" {
		cs.filePath = filepath.Join(DefaultDir(), "config.toml")
	}
	return cs
}

// Path returns the file the service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file.
// A missing file is not an error: the defaults are returned.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from defaults so sections missing from the file keep sane values
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.Normalize()
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:     1,
		HistoryPath: filepath.Join(DefaultDir(), "history.db"),
		Search: SearchSettings{
			DebounceMs:       200,
			MinQueryLength:   2,
			MaxResults:       8,
			LookupsPerSecond: 5,
			LookupBurst:      3,
			CacheTTLSeconds:  600,
		},
		Scroll: ScrollSettings{
			InflectionPoint:    0.35,
			HysteresisBuffer:   0.05,
			MomentumThreshold:  8,
			MomentumCooldownMs: 150,
			IdleClearMs:        100,
			FrameMs:            16,
		},
		Focus: FocusSettings{
			BlurDebounceMs:     150,
			InteractionGuardMs: 100,
		},
		UI: UISettings{
			ControlsPadding: 2,
			ResultsRows:     6,
			ShowSuggestions: true,
			SuggestionCount: 5,
		},
	}
}

// Normalize replaces zero or out-of-range values with defaults
func (c *Config) Normalize() {
	d := DefaultConfig()

	if c.Version == 0 {
		c.Version = d.Version
	}
	if c.HistoryPath == "" {
		c.HistoryPath = d.HistoryPath
	}

	positive := func(v *int, def int) {
		if *v <= 0 {
			*v = def
		}
	}
	positive(&c.Search.DebounceMs, d.Search.DebounceMs)
	positive(&c.Search.MinQueryLength, d.Search.MinQueryLength)
	positive(&c.Search.MaxResults, d.Search.MaxResults)
	positive(&c.Search.LookupsPerSecond, d.Search.LookupsPerSecond)
	positive(&c.Search.LookupBurst, d.Search.LookupBurst)
	positive(&c.Search.CacheTTLSeconds, d.Search.CacheTTLSeconds)
	positive(&c.Scroll.MomentumCooldownMs, d.Scroll.MomentumCooldownMs)
	positive(&c.Scroll.IdleClearMs, d.Scroll.IdleClearMs)
	positive(&c.Scroll.FrameMs, d.Scroll.FrameMs)
	positive(&c.Focus.BlurDebounceMs, d.Focus.BlurDebounceMs)
	positive(&c.Focus.InteractionGuardMs, d.Focus.InteractionGuardMs)
	positive(&c.UI.ResultsRows, d.UI.ResultsRows)
	positive(&c.UI.SuggestionCount, d.UI.SuggestionCount)

	if c.UI.ControlsPadding < 0 {
		c.UI.ControlsPadding = d.UI.ControlsPadding
	}
	if c.Scroll.InflectionPoint <= 0 || c.Scroll.InflectionPoint >= 1 {
		c.Scroll.InflectionPoint = d.Scroll.InflectionPoint
	}
	if c.Scroll.HysteresisBuffer < 0 || c.Scroll.HysteresisBuffer >= c.Scroll.InflectionPoint {
		c.Scroll.HysteresisBuffer = d.Scroll.HysteresisBuffer
	}
	if c.Scroll.MomentumThreshold <= 0 {
		c.Scroll.MomentumThreshold = d.Scroll.MomentumThreshold
	}
}

// Duration helpers

func (s SearchSettings) Debounce() time.Duration { return ms(s.DebounceMs) }
func (s SearchSettings) CacheTTL() time.Duration {
	return time.Duration(s.CacheTTLSeconds) * time.Second
}
func (s ScrollSettings) MomentumCooldown() time.Duration { return ms(s.MomentumCooldownMs) }
func (s ScrollSettings) IdleClear() time.Duration        { return ms(s.IdleClearMs) }
func (s ScrollSettings) Frame() time.Duration            { return ms(s.FrameMs) }
func (f FocusSettings) BlurDebounce() time.Duration      { return ms(f.BlurDebounceMs) }
func (f FocusSettings) InteractionGuard() time.Duration  { return ms(f.InteractionGuardMs) }

func ms(v int) time.Duration { return time.Duration(v) * time.Millisecond }
