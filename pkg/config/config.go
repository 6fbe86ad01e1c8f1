package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/qnkhuat/tetristerm/pkg/game"
	"github.com/qnkhuat/tetristerm/pkg/gui"
)

// Config holds the player settings read from a YAML file.
//
// Durations are written as Go duration strings, e.g. "500ms". Keybindings map
// action names such as "hard-drop" to key names such as "space" or "Up".
type Config struct {
	GravityInterval time.Duration `yaml:"gravityInterval"`
	FrameInterval   time.Duration `yaml:"frameInterval"`

	WallKicks bool  `yaml:"wallKicks"`
	Ghost     bool  `yaml:"ghost"`
	Seed      int64 `yaml:"seed"`

	Nickname string `yaml:"nickname"`
	LogLevel int    `yaml:"logLevel"`

	Theme  string         `yaml:"theme"`
	Themes []gui.ThemeHex `yaml:"themes"`

	Keybindings map[string][]string `yaml:"keybindings"`
}

func Default() *Config {
	return &Config{
		GravityInterval: game.DefaultGravityInterval,
		FrameInterval:   50 * time.Millisecond,
		WallKicks:       true,
		Ghost:           true,
		Theme:           gui.ThemeBasic.Name,
	}
}

// Load reads the file at path on top of the defaults. Keys missing from the
// file keep their default value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return config, nil
}

func (c *Config) Validate() error {
	if c.GravityInterval <= 0 {
		return fmt.Errorf("gravityInterval must be positive, got %s", c.GravityInterval)
	}
	if c.FrameInterval <= 0 {
		return fmt.Errorf("frameInterval must be positive, got %s", c.FrameInterval)
	}
	if c.GravityInterval < c.FrameInterval {
		return fmt.Errorf("gravityInterval %s is shorter than frameInterval %s", c.GravityInterval, c.FrameInterval)
	}

	if c.LogLevel < game.LogStandard || c.LogLevel > game.LogVerbose {
		return fmt.Errorf("logLevel must be between %d and %d, got %d", game.LogStandard, game.LogVerbose, c.LogLevel)
	}

	if _, err := gui.ImportThemes(c.Theme, c.Themes); err != nil {
		return fmt.Errorf("unknown theme %q: %w", c.Theme, err)
	}

	if _, err := gui.ParseKeybindings(c.Keybindings); err != nil {
		return err
	}

	return nil
}

// GameOptions returns the game settings. Events are sent to ch.
func (c *Config) GameOptions(ch chan<- interface{}) game.Options {
	return game.Options{
		GravityInterval: c.GravityInterval,
		WallKicks:       c.WallKicks,
		Ghost:           c.Ghost,
		Seed:            c.Seed,
		LogLevel:        c.LogLevel,
		Event:           ch,
	}
}

// GUIOptions returns the interface settings. The config must be valid.
func (c *Config) GUIOptions() (gui.Options, error) {
	theme, err := gui.ImportThemes(c.Theme, c.Themes)
	if err != nil {
		return gui.Options{}, err
	}

	bindings, err := gui.ParseKeybindings(c.Keybindings)
	if err != nil {
		return gui.Options{}, err
	}

	return gui.Options{
		Nickname:      c.Nickname,
		Theme:         theme,
		Keybindings:   bindings,
		FrameInterval: c.FrameInterval,
	}, nil
}
