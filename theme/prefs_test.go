package theme

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestPrefsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.yaml")

	if err := SavePrefs(path, Prefs{Theme: Light}); err != nil {
		t.Fatalf("Failed to save prefs: %v", err)
	}
	p, err := LoadPrefs(path)
	if err != nil {
		t.Fatalf("Failed to load prefs: %v", err)
	}
	if p.Theme != Light {
		t.Errorf("Expected light theme, got %q", p.Theme)
	}
}

func TestLoadPrefsMissingDefaultsDark(t *testing.T) {
	p, err := LoadPrefs(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if p.Theme != Dark {
		t.Errorf("Expected dark default, got %q", p.Theme)
	}
}

func TestLoadPrefsUnknownMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	if err := os.WriteFile(path, []byte("theme: sepia\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := LoadPrefs(path)
	if !errors.Is(err, ErrUnknownMode) {
		t.Errorf("Expected ErrUnknownMode, got %v", err)
	}
	if p.Theme != Dark {
		t.Errorf("Expected dark fallback, got %q", p.Theme)
	}
}

func TestModeToggle(t *testing.T) {
	if Dark.Toggle() != Light || Light.Toggle() != Dark {
		t.Error("Toggle should swap dark and light")
	}
	if Mode("").Toggle() != Light {
		t.Error("Unset mode behaves as dark")
	}
}
