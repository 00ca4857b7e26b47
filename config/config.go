// Package config provides layered YAML configuration for the game and the launcher service
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the complete humblebee configuration
type Config struct {
	Game      GameConfig      `yaml:"game"`
	Assets    AssetsConfig    `yaml:"assets"`
	Audio     AudioConfig     `yaml:"audio"`
	Log       LogConfig       `yaml:"log"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Launcher  LauncherConfig  `yaml:"launcher"`

	// Keys maps key names to actions, e.g. "j: press" or "space: none"
	Keys map[string]string `yaml:"keys,omitempty"`
}

// GameConfig tunes the simulation
type GameConfig struct {
	// Seed fixes the obstacle sequence; 0 seeds from the clock
	Seed int64 `yaml:"seed"`
}

// AssetsConfig selects the asset source
type AssetsConfig struct {
	// Dir overrides the embedded assets with an on-disk directory
	Dir string `yaml:"dir"`
}

// AudioConfig overrides audio defaults. Unset fields keep the audio package defaults
type AudioConfig struct {
	Enabled      *bool              `yaml:"enabled,omitempty"`
	MasterVolume *float64           `yaml:"master_volume,omitempty"`
	Volumes      map[string]float64 `yaml:"volumes,omitempty"`
}

// LogConfig configures logging
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string `yaml:"level"`
	// Debug enables the log file during play
	Debug bool `yaml:"debug"`
}

// TelemetryConfig configures metrics and event publishing
type TelemetryConfig struct {
	// MetricsAddr serves /metrics during play when set
	MetricsAddr string `yaml:"metrics_addr"`
	// NATSURL enables session event publishing when set
	NATSURL string `yaml:"nats_url"`
	// Subject prefixes published event subjects
	Subject string `yaml:"subject"`
}

// LauncherConfig configures the launcher service
type LauncherConfig struct {
	Addr string `yaml:"addr"`
	// Command starts the game; empty runs this executable with "play"
	Command string   `yaml:"command"`
	Args    []string `yaml:"args,omitempty"`
	// History is the number of launches kept for GET /launches
	History int `yaml:"history"`
}

var logLevels = []string{"debug", "info", "warn", "error"}

// DefaultConfig returns a Config with defaults
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
		Telemetry: TelemetryConfig{
			Subject: "humblebee",
		},
		Launcher: LauncherConfig{
			Addr:    "127.0.0.1:8088",
			History: 50,
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if v := c.Audio.MasterVolume; v != nil && (*v < 0 || *v > 1) {
		return fmt.Errorf("audio.master_volume must be between 0 and 1")
	}
	for name, v := range c.Audio.Volumes {
		if v < 0 || v > 1 {
			return fmt.Errorf("audio.volumes.%s must be between 0 and 1", name)
		}
	}
	if !isLogLevel(c.Log.Level) {
		return fmt.Errorf("log.level must be one of %s", strings.Join(logLevels, ", "))
	}
	if c.Telemetry.Subject == "" || strings.ContainsAny(c.Telemetry.Subject, " \t*>") {
		return fmt.Errorf("telemetry.subject %q is not a valid subject prefix", c.Telemetry.Subject)
	}
	if c.Launcher.Addr == "" {
		return fmt.Errorf("launcher.addr is required")
	}
	if c.Launcher.History <= 0 {
		return fmt.Errorf("launcher.history must be positive")
	}
	return nil
}

func isLogLevel(level string) bool {
	for _, l := range logLevels {
		if level == l {
			return true
		}
	}
	return false
}

// LoadFromFile loads configuration from a YAML file over an empty config,
// so only fields present in the file are set
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Game
	if other.Game.Seed != 0 {
		c.Game.Seed = other.Game.Seed
	}

	// Assets
	if other.Assets.Dir != "" {
		c.Assets.Dir = other.Assets.Dir
	}

	// Audio
	if other.Audio.Enabled != nil {
		enabled := *other.Audio.Enabled
		c.Audio.Enabled = &enabled
	}
	if other.Audio.MasterVolume != nil {
		volume := *other.Audio.MasterVolume
		c.Audio.MasterVolume = &volume
	}
	if len(other.Audio.Volumes) > 0 {
		if c.Audio.Volumes == nil {
			c.Audio.Volumes = make(map[string]float64, len(other.Audio.Volumes))
		}
		for name, v := range other.Audio.Volumes {
			c.Audio.Volumes[name] = v
		}
	}

	// Log
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
	if other.Log.Debug {
		c.Log.Debug = true
	}

	// Telemetry
	if other.Telemetry.MetricsAddr != "" {
		c.Telemetry.MetricsAddr = other.Telemetry.MetricsAddr
	}
	if other.Telemetry.NATSURL != "" {
		c.Telemetry.NATSURL = other.Telemetry.NATSURL
	}
	if other.Telemetry.Subject != "" {
		c.Telemetry.Subject = other.Telemetry.Subject
	}

	// Launcher
	if other.Launcher.Addr != "" {
		c.Launcher.Addr = other.Launcher.Addr
	}
	if other.Launcher.Command != "" {
		c.Launcher.Command = other.Launcher.Command
		c.Launcher.Args = other.Launcher.Args
	} else if len(other.Launcher.Args) > 0 {
		c.Launcher.Args = other.Launcher.Args
	}
	if other.Launcher.History != 0 {
		c.Launcher.History = other.Launcher.History
	}

	// Keys merge per key so a layer can rebind one key without restating the rest
	if len(other.Keys) > 0 && c.Keys == nil {
		c.Keys = make(map[string]string, len(other.Keys))
	}
	for k, v := range other.Keys {
		c.Keys[k] = v
	}
}
