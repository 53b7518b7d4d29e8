package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading embedded defaults: %v", err)
	}

	if cfg.Screen.Width != 1280 || cfg.Screen.Height != 720 {
		t.Errorf("screen = %dx%d, want 1280x720", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Embers.Count != 90 {
		t.Errorf("ember count = %d, want 90", cfg.Embers.Count)
	}
	if cfg.Embers.LoopChance != 0.4 {
		t.Errorf("loop chance = %v, want 0.4", cfg.Embers.LoopChance)
	}
	if cfg.Embers.LoopRadiusMin != 8 || cfg.Embers.LoopRadiusMax != 28 {
		t.Errorf("loop radius range = [%v, %v), want [8, 28)", cfg.Embers.LoopRadiusMin, cfg.Embers.LoopRadiusMax)
	}
	if cfg.Embers.WrapMargin != 10 {
		t.Errorf("wrap margin = %v, want 10", cfg.Embers.WrapMargin)
	}

	// Flicker must stay strictly positive
	if cfg.Embers.FlickerBase <= cfg.Embers.FlickerAmp {
		t.Errorf("flicker base %v must exceed amp %v", cfg.Embers.FlickerBase, cfg.Embers.FlickerAmp)
	}
}

func TestLoadDerived(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading embedded defaults: %v", err)
	}
	if cfg.Derived.ScreenW32 != 1280 || cfg.Derived.ScreenH32 != 720 {
		t.Errorf("derived screen = %vx%v, want 1280x720", cfg.Derived.ScreenW32, cfg.Derived.ScreenH32)
	}
}

func TestLoadUserOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("embers:\n  count: 30\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("loading user config: %v", err)
	}

	// Overridden field
	if cfg.Embers.Count != 30 {
		t.Errorf("ember count = %d, want 30", cfg.Embers.Count)
	}
	// Untouched fields keep defaults
	if cfg.Embers.LoopChance != 0.4 {
		t.Errorf("loop chance = %v, want default 0.4", cfg.Embers.LoopChance)
	}
	if cfg.Screen.Width != 1280 {
		t.Errorf("screen width = %d, want default 1280", cfg.Screen.Width)
	}
}

func TestMustInitSetsGlobal(t *testing.T) {
	MustInit("")
	cfg := Cfg()
	if cfg.Embers.Count != 90 {
		t.Errorf("global ember count = %d, want 90", cfg.Embers.Count)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustInit did not panic on an unreadable config")
		}
	}()
	MustInit("/nonexistent/config.yaml")
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("writing snapshot: %v", err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatalf("reading snapshot back: %v", err)
	}
	if back.Embers.Count != cfg.Embers.Count || back.Screen.TargetFPS != cfg.Screen.TargetFPS {
		t.Error("snapshot does not round-trip")
	}
}
