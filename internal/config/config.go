package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"folio/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version     int               `toml:"version"`
	ContentPath string            `toml:"content_path,omitempty"` // empty uses the built-in portfolio
	UISettings  UISettings        `toml:"ui"`
	Animation   AnimationSettings `toml:"animation"`
	Contact     ContactSettings   `toml:"contact"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Theme          Theme  `toml:"theme"`
	SkillView      string `toml:"skill_view"` // "bars" or "compact"
	AutosaveOnExit bool   `toml:"autosave_on_exit"`
	WatchContent   bool   `toml:"watch_content"`
}

// AnimationSettings holds the timings of the interaction engine
type AnimationSettings struct {
	FrameInterval    Duration `toml:"frame_interval"`
	RevealDuration   Duration `toml:"reveal_duration"`
	StaggerStep      Duration `toml:"stagger_step"`
	TypeSpeed        Duration `toml:"type_speed"`
	DeleteSpeed      Duration `toml:"delete_speed"`
	PauseTime        Duration `toml:"pause_time"`
	ModalCloseDelay  Duration `toml:"modal_close_delay"`
	StatusResetDelay Duration `toml:"status_reset_delay"`
}

// ContactSettings selects and configures the contact delivery backend
type ContactSettings struct {
	Backend        string       `toml:"backend"` // simulated, http or smtp
	RelayURL       string       `toml:"relay_url,omitempty"`
	Timeout        Duration     `toml:"timeout"`
	MaxAttempts    int          `toml:"max_attempts"`
	SimulatedDelay Duration     `toml:"simulated_delay"`
	SMTP           SMTPSettings `toml:"smtp"`
}

// SMTPSettings configures direct mail delivery. Password is read from
// FOLIO_SMTP_PASS when empty.
type SMTPSettings struct {
	Host     string `toml:"host,omitempty"`
	Port     string `toml:"port,omitempty"`
	User     string `toml:"user,omitempty"`
	Password string `toml:"password,omitempty"`
	To       string `toml:"to,omitempty"`
}

// Contact backends
const (
	BackendSimulated = "simulated"
	BackendHTTP      = "http"
	BackendSMTP      = "smtp"
)

// Theme is the display theme preference
type Theme string

const (
	ThemeSystem Theme = "system"
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
)

// Next cycles system -> light -> dark -> system
func (t Theme) Next() Theme {
	switch t {
	case ThemeSystem:
		return ThemeLight
	case ThemeLight:
		return ThemeDark
	default:
		return ThemeSystem
	}
}

// Valid reports whether t is a known theme
func (t Theme) Valid() bool {
	switch t {
	case ThemeSystem, ThemeLight, ThemeDark:
		return true
	}
	return false
}

// Duration is a time.Duration that reads and writes as "250ms" in TOML
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	*d = Duration(v)
	return nil
}

// Std returns the value as a time.Duration
func (d Duration) Std() time.Duration { return time.Duration(d) }

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

// NewConfigService creates a config service backed by the user config directory
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "folio", "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus, path string) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	if path != "" {
		cs.filePath = path
	}
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from the service path, falling back to defaults
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg, err = DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:  cs.filePath,
			Theme: string(cfg.UISettings.Theme),
		})
	}

	return cfg, nil
}

// Save saves the configuration to the service path
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path. Missing keys keep
// their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

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

// Validate checks enumerated settings
func (c *Config) Validate() error {
	if !c.UISettings.Theme.Valid() {
		return fmt.Errorf("unknown theme %q", c.UISettings.Theme)
	}
	switch c.UISettings.SkillView {
	case "bars", "compact":
	default:
		return fmt.Errorf("unknown skill view %q", c.UISettings.SkillView)
	}
	switch c.Contact.Backend {
	case BackendSimulated:
	case BackendHTTP:
		if c.Contact.RelayURL == "" {
			return errors.New("contact backend http requires relay_url")
		}
	case BackendSMTP:
		if c.Contact.SMTP.Host == "" || c.Contact.SMTP.To == "" {
			return errors.New("contact backend smtp requires smtp.host and smtp.to")
		}
	default:
		return fmt.Errorf("unknown contact backend %q", c.Contact.Backend)
	}
	if c.Contact.MaxAttempts < 1 {
		return fmt.Errorf("contact max_attempts must be at least 1, got %d", c.Contact.MaxAttempts)
	}
	if c.Animation.FrameInterval <= 0 || c.Animation.TypeSpeed <= 0 || c.Animation.DeleteSpeed <= 0 {
		return errors.New("animation frame and typing intervals must be positive")
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		UISettings: UISettings{
			Theme:          ThemeSystem,
			SkillView:      "bars",
			AutosaveOnExit: true,
		},
		Animation: AnimationSettings{
			FrameInterval:    Duration(33 * time.Millisecond),
			RevealDuration:   Duration(600 * time.Millisecond),
			StaggerStep:      Duration(100 * time.Millisecond),
			TypeSpeed:        Duration(50 * time.Millisecond),
			DeleteSpeed:      Duration(25 * time.Millisecond),
			PauseTime:        Duration(time.Second),
			ModalCloseDelay:  Duration(300 * time.Millisecond),
			StatusResetDelay: Duration(5 * time.Second),
		},
		Contact: ContactSettings{
			Backend:        BackendSimulated,
			Timeout:        Duration(10 * time.Second),
			MaxAttempts:    3,
			SimulatedDelay: Duration(2 * time.Second),
			SMTP: SMTPSettings{
				Port: "587",
			},
		},
	}
}
