package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/PixPMusic/gopher-scales/internal/sequence"
	"github.com/google/uuid"
)

// OutputConfig holds the preferred MIDI output.
type OutputConfig struct {
	ID      string `json:"id"`
	Name    string `json:"name"`    // user-friendly name
	Port    string `json:"port"`    // MIDI output port name, empty = first available
	Channel int    `json:"channel"` // 0-15
}

// NewOutputConfig creates an output config with a generated ID.
func NewOutputConfig() OutputConfig {
	return OutputConfig{
		ID:   uuid.New().String(),
		Name: "Default Output",
	}
}

// Config holds application configuration: the output device and the saved
// drill selections (the middle priority layer under explicit overrides).
type Config struct {
	Output   OutputConfig     `json:"output"`
	Defaults sequence.Choices `json:"defaults"`
}

// configDir returns the platform-appropriate config directory
func configDir() (string, error) {
	configHome, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configHome, "gopher-scales"), nil
}

// ConfigPath returns the full path to the config file
func ConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, returning defaults if not found
func Load() (*Config, error) {
	configPath, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(configPath)
}

// LoadFrom reads the config from an explicit path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{Output: NewOutputConfig()}, nil
	}
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if cfg.Output.ID == "" {
		cfg.Output.ID = uuid.New().String()
	}
	return &cfg, nil
}

// Save writes the config to disk, creating the directory if needed
func (c *Config) Save() error {
	configPath, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(configPath)
}

// SaveTo writes the config to an explicit path.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
