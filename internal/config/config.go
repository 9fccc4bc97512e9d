package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultScene  = "spiral"
	DefaultWidth  = 160
	DefaultHeight = 120
	DefaultFPS    = 30
	DefaultSpeed  = 2
	DefaultTheme  = "mono"
)

// Config carries the CLI settings: which scene to run, the canvas size in
// pixels (2 per cell column, 4 per cell row), and the live player pacing.
type Config struct {
	Scene  string `yaml:"scene"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	FPS    int    `yaml:"fps"`
	Speed  int    `yaml:"speed"` // turtle steps advanced per frame
	Theme  string `yaml:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		Scene:  DefaultScene,
		Width:  DefaultWidth,
		Height: DefaultHeight,
		FPS:    DefaultFPS,
		Speed:  DefaultSpeed,
		Theme:  DefaultTheme,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
