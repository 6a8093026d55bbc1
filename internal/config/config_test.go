package config

import (
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.Output.ID == "" {
		t.Error("default output must carry an ID")
	}
	if cfg.Output.Name != "Default Output" {
		t.Errorf("Output.Name = %q, want default", cfg.Output.Name)
	}
	if cfg.Output.Port != "" {
		t.Errorf("Output.Port = %q, want empty (first available)", cfg.Output.Port)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	noteMs := 450
	cfg := &Config{Output: NewOutputConfig()}
	cfg.Output.Port = "Test Synth"
	cfg.Output.Channel = 9
	cfg.Defaults.Scale = "harmonic_minor"
	cfg.Defaults.NoteMs = &noteMs

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if loaded.Output.Port != "Test Synth" {
		t.Errorf("Output.Port = %q, want Test Synth", loaded.Output.Port)
	}
	if loaded.Output.Channel != 9 {
		t.Errorf("Output.Channel = %d, want 9", loaded.Output.Channel)
	}
	if loaded.Output.ID != cfg.Output.ID {
		t.Errorf("Output.ID changed across save/load")
	}
	if loaded.Defaults.Scale != "harmonic_minor" {
		t.Errorf("Defaults.Scale = %q, want harmonic_minor", loaded.Defaults.Scale)
	}
	if loaded.Defaults.NoteMs == nil || *loaded.Defaults.NoteMs != 450 {
		t.Errorf("Defaults.NoteMs = %v, want 450", loaded.Defaults.NoteMs)
	}
	if loaded.Defaults.GapMs != nil {
		t.Errorf("unset Defaults.GapMs must stay nil, got %v", *loaded.Defaults.GapMs)
	}
}

func TestLoadAssignsMissingOutputID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := &Config{}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if loaded.Output.ID == "" {
		t.Error("Load must assign an output ID when the file lacks one")
	}
}
