package theme

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Prefs is the persisted theme choice.
type Prefs struct {
	Theme Mode `yaml:"theme"`
}

// LoadPrefs reads prefs from path. A missing file returns dark defaults and no
// error; an unknown stored mode is reported but still yields a usable value.
func LoadPrefs(path string) (Prefs, error) {
	p := Prefs{Theme: Dark}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return p, nil
	}
	if err != nil {
		return p, fmt.Errorf("read prefs %s: %w", path, err)
	}

	var stored Prefs
	if err := yaml.Unmarshal(data, &stored); err != nil {
		return p, fmt.Errorf("decode prefs %s: %w", path, err)
	}
	if stored.Theme == "" {
		return p, nil
	}
	mode, err := ParseMode(string(stored.Theme))
	p.Theme = mode
	return p, err
}

func SavePrefs(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create prefs %s: %w", path, err)
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(&p); err != nil {
		return fmt.Errorf("encode prefs: %w", err)
	}
	return enc.Close()
}
