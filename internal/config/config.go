package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Heuristic  HeuristicConfig  `mapstructure:"heuristic"`
	Search     SearchConfig     `mapstructure:"search"`
	Scenario   ScenarioConfig   `mapstructure:"scenario"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Demo       DemoConfig       `mapstructure:"demo"`
	Monitoring MonitoringConfig `mapstructure:"monitoring"`
}

// HeuristicConfig selects the heuristic variant and its constants
type HeuristicConfig struct {
	Name              string  `mapstructure:"name"`
	Perspective       string  `mapstructure:"perspective"`
	ThreatReference   string  `mapstructure:"threat_reference"`
	DefaultKingHealth float64 `mapstructure:"default_king_health"`
	HealthScale       float64 `mapstructure:"health_scale"`
	ReachReward       float64 `mapstructure:"reach_reward"`
	MaterialScale     float64 `mapstructure:"material_scale"`
}

// SearchConfig holds settings for the candidate-scoring worker pool
type SearchConfig struct {
	Workers       int `mapstructure:"workers"`
	MaxCandidates int `mapstructure:"max_candidates"`
}

// ScenarioConfig holds synthetic scenario generation settings
type ScenarioConfig struct {
	BoardWidth     int     `mapstructure:"board_width"`
	BoardHeight    int     `mapstructure:"board_height"`
	Players        int     `mapstructure:"players"`
	UnitsPerPlayer int     `mapstructure:"units_per_player"`
	MaxHealth      float64 `mapstructure:"max_health"`
	MinKingSpacing int     `mapstructure:"min_king_spacing"`
	Seed           int64   `mapstructure:"seed"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DemoConfig holds settings for the demo binary
type DemoConfig struct {
	Turns int `mapstructure:"turns"`
}

// MonitoringConfig holds goroutine monitor settings
type MonitoringConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	Interval       time.Duration `mapstructure:"interval"`
	AlertThreshold int           `mapstructure:"alert_threshold"`
}

// Accepted values for the heuristic enum settings
var (
	Perspectives     = []string{"evaluated", "current_turn"}
	ThreatReferences = []string{"own_king", "opponent_king"}
	LogFormats       = []string{"console", "json"}
)

var (
	// Global config instance. A published Config is never mutated; reloads
	// swap in a new one.
	current atomic.Pointer[Config]
	v       *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	// Heuristic defaults
	v.SetDefault("heuristic.name", "AimToKingHeuristic")
	v.SetDefault("heuristic.perspective", "evaluated")
	v.SetDefault("heuristic.threat_reference", "own_king")
	v.SetDefault("heuristic.default_king_health", 200.0)
	v.SetDefault("heuristic.health_scale", 400.0)
	v.SetDefault("heuristic.reach_reward", 0.5)
	v.SetDefault("heuristic.material_scale", 20.0)

	// Search defaults
	v.SetDefault("search.workers", 4)
	v.SetDefault("search.max_candidates", 256)

	// Scenario defaults
	v.SetDefault("scenario.board_width", 10)
	v.SetDefault("scenario.board_height", 10)
	v.SetDefault("scenario.players", 2)
	v.SetDefault("scenario.units_per_player", 4)
	v.SetDefault("scenario.max_health", 200.0)
	v.SetDefault("scenario.min_king_spacing", 5)
	v.SetDefault("scenario.seed", 0)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	// Demo defaults
	v.SetDefault("demo.turns", 20)

	// Monitoring defaults
	v.SetDefault("monitoring.enabled", false)
	v.SetDefault("monitoring.interval", "5s")
	v.SetDefault("monitoring.alert_threshold", 1000)
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	// Set defaults before loading any config
	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Default config locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/strategy-heuristics")
	}

	v.SetEnvPrefix("SHE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing file falls back to defaults; anything else is an error
		if configPath == "" {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := Validate(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	current.Store(c)
	return nil
}

// Get returns the current config. Callers must treat it as read-only; a
// reload publishes a new value rather than changing this one.
func Get() *Config {
	if c := current.Load(); c != nil {
		return c
	}
	// Initialize with defaults if not already initialized
	if err := Init(""); err != nil {
		panic("failed to initialize config with defaults: " + err.Error())
	}
	return current.Load()
}

// LoadEnvironmentConfig merges config.<env>.yaml, found next to the loaded
// config file (or in the working directory), over the current settings.
// A later reload of the base file by WatchConfig drops the overlay.
func LoadEnvironmentConfig(env string) error {
	if env == "" {
		return nil
	}

	base := v.ConfigFileUsed()
	dir := "."
	if base != "" {
		dir = filepath.Dir(base)
	}
	envFile := filepath.Join(dir, fmt.Sprintf("config.%s.yaml", env))

	v.SetConfigFile(envFile)
	err := v.MergeInConfig()
	if base != "" {
		// keep watching the base file
		v.SetConfigFile(base)
	}
	if err != nil {
		return fmt.Errorf("error merging environment config %s: %w", envFile, err)
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return fmt.Errorf("unable to decode merged config into struct: %w", err)
	}
	if err := Validate(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	current.Store(c)
	return nil
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of the config file. onChange receives
// the freshly decoded config, or the validation error if the new file is rejected;
// a rejected file leaves the previous values in place.
func WatchConfig(onChange func(*Config, error)) {
	watched := v
	watched.OnConfigChange(func(e fsnotify.Event) {
		next := &Config{}
		if err := watched.Unmarshal(next); err != nil {
			if onChange != nil {
				onChange(nil, fmt.Errorf("reload %s: %w", e.Name, err))
			}
			return
		}
		if err := Validate(next); err != nil {
			if onChange != nil {
				onChange(nil, fmt.Errorf("reload %s: %w", e.Name, err))
			}
			return
		}
		current.Store(next)
		if onChange != nil {
			onChange(next, nil)
		}
	})
	watched.WatchConfig()
}

// Validate validates the configuration values
func Validate(c *Config) error {
	// Heuristic
	if c.Heuristic.Name == "" {
		return fmt.Errorf("heuristic.name must be set")
	}
	if !contains(Perspectives, c.Heuristic.Perspective) {
		return fmt.Errorf("heuristic.perspective must be one of %v", Perspectives)
	}
	if !contains(ThreatReferences, c.Heuristic.ThreatReference) {
		return fmt.Errorf("heuristic.threat_reference must be one of %v", ThreatReferences)
	}
	if c.Heuristic.DefaultKingHealth < 0 {
		return fmt.Errorf("heuristic.default_king_health must be non-negative")
	}
	if c.Heuristic.HealthScale <= 0 {
		return fmt.Errorf("heuristic.health_scale must be positive")
	}
	if c.Heuristic.ReachReward < 0 {
		return fmt.Errorf("heuristic.reach_reward must be non-negative")
	}
	if c.Heuristic.MaterialScale <= 0 {
		return fmt.Errorf("heuristic.material_scale must be positive")
	}

	// Search
	if c.Search.Workers <= 0 {
		return fmt.Errorf("search.workers must be positive")
	}
	if c.Search.MaxCandidates <= 0 {
		return fmt.Errorf("search.max_candidates must be positive")
	}

	// Scenario
	if c.Scenario.BoardWidth <= 0 || c.Scenario.BoardHeight <= 0 {
		return fmt.Errorf("scenario board dimensions must be positive")
	}
	if c.Scenario.Players < 2 {
		return fmt.Errorf("scenario.players must be at least 2")
	}
	if c.Scenario.UnitsPerPlayer < 0 {
		return fmt.Errorf("scenario.units_per_player must be non-negative")
	}
	if c.Scenario.MaxHealth < 1 {
		return fmt.Errorf("scenario.max_health must be at least 1")
	}
	if c.Scenario.MinKingSpacing < 0 {
		return fmt.Errorf("scenario.min_king_spacing must be non-negative")
	}
	if cells := c.Scenario.BoardWidth * c.Scenario.BoardHeight; cells < c.Scenario.Players*(c.Scenario.UnitsPerPlayer+1) {
		return fmt.Errorf("scenario board has %d cells, too few for %d players with %d units each", cells, c.Scenario.Players, c.Scenario.UnitsPerPlayer)
	}

	// Logging
	if !contains(LogFormats, c.Logging.Format) {
		return fmt.Errorf("logging.format must be one of %v", LogFormats)
	}

	// Demo
	if c.Demo.Turns < 0 {
		return fmt.Errorf("demo.turns must be non-negative")
	}

	// Monitoring
	if c.Monitoring.Enabled {
		if c.Monitoring.Interval <= 0 {
			return fmt.Errorf("monitoring.interval must be positive")
		}
		if c.Monitoring.AlertThreshold <= 0 {
			return fmt.Errorf("monitoring.alert_threshold must be positive")
		}
	}

	return nil
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}
