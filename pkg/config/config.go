/*
Package config manages TOML configuration for the segmenter.

InitConfig handles automatic config file creation and loading with
fallback to defaults. LoadConfig and SaveConfig provide direct fs access
for runtime changes.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure.
type Config struct {
	Segment SegmentConfig `toml:"segment"`
	Dict    DictConfig    `toml:"dict"`
}

// SegmentConfig tunes the segmenter orchestrator (spec.md §4.5).
type SegmentConfig struct {
	UseHMM          bool `toml:"use_hmm"`
	SearchGram2Min  int  `toml:"search_gram2_min_len"`
	SearchGram3Min  int  `toml:"search_gram3_min_len"`
	ScratchCapBytes int  `toml:"scratch_cap_bytes"`
}

// DictConfig points at the dictionary file to load in addition to the
// embedded default, if any.
type DictConfig struct {
	ExtraDictPath string `toml:"extra_dict_path"`
}

// DefaultConfig returns a Config with default values matching spec.md's
// documented defaults: HMM enabled, 2-char sub-grams from length 3 and
// 3-char sub-grams from length 4, and a 1,000,000-element scratch cap.
func DefaultConfig() *Config {
	return &Config{
		Segment: SegmentConfig{
			UseHMM:          true,
			SearchGram2Min:  3,
			SearchGram3Min:  4,
			ScratchCapBytes: 1_000_000,
		},
		Dict: DictConfig{
			ExtraDictPath: "",
		},
	}
}

// InitConfig loads config from file or creates default if missing.
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, err
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := SaveConfig(cfg, configPath); err != nil {
			return nil, err
		}
		log.Debugf("Created default config file at: ( %s )", configPath)
		return cfg, nil
	}
	cfg, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config, using defaults: %v", err)
		return DefaultConfig(), nil
	}
	return cfg, nil
}

// LoadConfig loads from a TOML file.
func LoadConfig(configPath string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(configPath, &cfg); err != nil {
		log.Errorf("Failed to decode config file: %v", err)
		return nil, err
	}
	return &cfg, nil
}

// SaveConfig saves into a TOML file.
func SaveConfig(cfg *Config, configPath string) error {
	file, err := os.Create(configPath)
	if err != nil {
		log.Errorf("Failed to create config file: %v", err)
		return err
	}
	defer file.Close()
	encoder := toml.NewEncoder(file)
	return encoder.Encode(cfg)
}

// Update changes HMM/dict-path config values and saves to file.
func (c *Config) Update(configPath string, useHMM *bool, extraDictPath *string) error {
	if useHMM != nil {
		c.Segment.UseHMM = *useHMM
	}
	if extraDictPath != nil {
		c.Dict.ExtraDictPath = *extraDictPath
	}
	return SaveConfig(c, configPath)
}
