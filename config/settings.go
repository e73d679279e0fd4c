package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ThemeColors holds the CSS-style color strings for one theme. Particle wins
// over Accent when both are set.
type ThemeColors struct {
	Accent   string `yaml:"accent" toml:"accent"`
	Particle string `yaml:"particle" toml:"particle"`
}

type WindowSettings struct {
	Width  int    `yaml:"width" toml:"width"`
	Height int    `yaml:"height" toml:"height"`
	Title  string `yaml:"title" toml:"title"`
}

type ThemeSettings struct {
	Dark   ThemeColors `yaml:"dark" toml:"dark"`
	Light  ThemeColors `yaml:"light" toml:"light"`
	Script string      `yaml:"script" toml:"script"`
	Prefs  string      `yaml:"prefs" toml:"prefs"`
}

// Settings is the user-tunable part of the configuration. Animation constants
// are fixed and live in the const block.
type Settings struct {
	Window  WindowSettings `yaml:"window" toml:"window"`
	Theme   ThemeSettings  `yaml:"theme" toml:"theme"`
	TermFPS int            `yaml:"term_fps" toml:"term_fps"`
	Seed    int64          `yaml:"seed" toml:"seed"`
}

func Default() Settings {
	return Settings{
		Window: WindowSettings{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
			Title:  DefaultWindowTitle,
		},
		Theme: ThemeSettings{
			Dark:  ThemeColors{Accent: "#64ffda"},
			Light: ThemeColors{Accent: "#0a9396"},
			Prefs: DefaultPrefsPath(),
		},
		TermFPS: DefaultTermFPS,
	}
}

// DefaultPrefsPath returns prefs.yaml under the user config directory, or a
// path relative to the working directory when that cannot be determined.
func DefaultPrefsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "prefs.yaml"
	}
	return filepath.Join(dir, "topo-field", "prefs.yaml")
}

// Load reads settings from path. Files ending in .toml are decoded as TOML,
// everything else as YAML. An empty path or a missing file yields Default().
// Fields absent from the file keep their default values.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("read config %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), &s); err != nil {
			return Default(), fmt.Errorf("decode toml %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &s); err != nil {
			return Default(), fmt.Errorf("decode yaml %s: %w", path, err)
		}
	}

	s.normalize()
	return s, nil
}

func (s *Settings) normalize() {
	d := Default()
	if s.Window.Width <= 0 {
		s.Window.Width = d.Window.Width
	}
	if s.Window.Height <= 0 {
		s.Window.Height = d.Window.Height
	}
	if s.Window.Title == "" {
		s.Window.Title = d.Window.Title
	}
	if s.TermFPS <= 0 {
		s.TermFPS = d.TermFPS
	}
	if s.Theme.Prefs == "" {
		s.Theme.Prefs = d.Theme.Prefs
	}
}
