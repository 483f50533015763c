package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const (
	configDirName  = "seekfs"
	configFileName = "config.json"
)

func DefaultConfig() Config {
	return Config{
		Roots:           []string{},
		IncludeExternal: false,
		Terminals:       []string{},
		Theme:           "dark",
		KeyBindings:     map[string]string{},
	}
}

func ConfigPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, configDirName, configFileName), nil
}

func LoadConfig() (Config, error) {
	config := DefaultConfig()
	path, err := ConfigPath()
	if err != nil {
		return config, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, err
	}
	var stored fileConfig
	if err := json.Unmarshal(data, &stored); err != nil {
		return config, err
	}
	return mergeConfig(config, stored), nil
}

func SaveConfig(config Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func mergeConfig(base Config, stored fileConfig) Config {
	merged := base
	if stored.Roots != nil {
		merged.Roots = stored.Roots
	}
	if stored.IncludeExternal != nil {
		merged.IncludeExternal = *stored.IncludeExternal
	}
	if stored.Terminals != nil {
		merged.Terminals = stored.Terminals
	}
	if stored.Theme != nil {
		merged.Theme = *stored.Theme
	}
	if stored.KeyBindings != nil {
		merged.KeyBindings = stored.KeyBindings
	}
	return merged
}
