// Package config resolves demo settings from a JSON file, CLI flags, and
// defaults, in that order of increasing priority for flags.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Config holds the render settings shared by the demo commands.
type Config struct {
	// Console demo settings
	Width  int `json:"width"`
	Height int `json:"height"`
	FPS    int `json:"fps"`

	// Snapshot settings
	Frames      int    `json:"frames"`
	Size        int    `json:"size"`
	Supersample int    `json:"supersample"`
	Workers     int    `json:"workers"`
	OutputDir   string `json:"output_dir"`

	Texture string `json:"texture"`
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Width, Height int
	FPS           int
	Frames        int
	Size          int
	Supersample   int
	Workers       int
	OutputDir     string
	Texture       string
}

// Load reads a JSON config file. Fields not set in the file keep their
// zero values until Resolve fills in defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve overlays non-zero flag values, then fills remaining empty
// fields with defaults.
func (c *Config) Resolve(flags Flags) {
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.FPS > 0 {
		c.FPS = flags.FPS
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Size > 0 {
		c.Size = flags.Size
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Texture != "" {
		c.Texture = flags.Texture
	}

	if c.Width <= 0 {
		c.Width = 120
	}
	if c.Height <= 0 {
		c.Height = 80
	}
	if c.FPS <= 0 {
		c.FPS = 30
	}
	if c.Frames <= 0 {
		c.Frames = 72
	}
	if c.Size <= 0 {
		c.Size = 256
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}
}
