package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration for a snake variant.
// Search order: customPath -> ~/.snake/configs/<variant>.yaml -> ./configs/<variant>.yaml -> embedded default.
// A custom path that cannot be read or parsed is an error; the other locations are optional.
func Load(variant, customPath string) (SnakeConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(variant, customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	filename := variant + ".yaml"

	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if cfg, err := loadFile(variant, userCfgPath); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	if cfg, err := loadFile(variant, filepath.Join("configs", filename)); err == nil && cfg.Validate() == nil {
		return cfg, nil
	}

	return loadEmbedded(variant), nil
}

// Parse decodes YAML on top of the variant defaults, so a partial file only
// overrides the keys it names.
func Parse(variant string, data []byte) (SnakeConfig, error) {
	cfg := loadEmbedded(variant)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: cannot parse yaml: %w", err)
	}
	return cfg, nil
}

func loadFile(variant, path string) (SnakeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SnakeConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(variant, data)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

func loadEmbedded(variant string) SnakeConfig {
	var cfg SnakeConfig
	data := GetDefaultYAML(variant)
	if data == nil {
		return DefaultFor(variant)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultFor(variant)
	}
	return cfg
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "configs", filename)
}

// ApplyPreset modifies the config for a difficulty preset.
// Fixed keeps only the first phase, so the session never changes chapter.
func ApplyPreset(cfg *SnakeConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Phases = cfg.Phases[:1]
		return
	}

	scale := IntervalScaleForPreset(preset)
	for i := range cfg.Phases {
		cfg.Phases[i].Interval = scaleDuration(cfg.Phases[i].Interval, scale)
	}
}
