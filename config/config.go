package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// StoreConfig selects where the economy counters live.
type StoreConfig struct {
	Driver     string `json:"driver" mapstructure:"driver"`
	SQLitePath string `json:"sqlitePath" mapstructure:"sqlitePath"`
	DSN        string `json:"dsn" mapstructure:"dsn"`
}

type PrefabsConfig struct {
	Dir       string `json:"dir" mapstructure:"dir"`
	HotReload bool   `json:"hotReload" mapstructure:"hotReload"`
}

type MetricsConfig struct {
	Enabled bool `json:"enabled" mapstructure:"enabled"`
}

// Settings is the host configuration. Gameplay numbers live in the prefab
// files, not here.
type Settings struct {
	LogLevel string        `json:"logLevel" mapstructure:"logLevel"`
	TickRate int           `json:"tickRate" mapstructure:"tickRate"`
	Level    string        `json:"level" mapstructure:"level"`
	Store    StoreConfig   `json:"store" mapstructure:"store"`
	Prefabs  PrefabsConfig `json:"prefabs" mapstructure:"prefabs"`
	Metrics  MetricsConfig `json:"metrics" mapstructure:"metrics"`
}

// Load sets defaults and reads gunship.yaml from configDir. A missing file
// leaves the defaults in place.
func Load(configDir string) error {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("tickRate", 60)
	viper.SetDefault("level", "skirmish.json")

	viper.SetDefault("store.driver", "memory")
	viper.SetDefault("store.sqlitePath", "gunship.db")
	viper.SetDefault("store.dsn", "")

	viper.SetDefault("prefabs.dir", "prefabs")
	viper.SetDefault("prefabs.hotReload", false)

	viper.SetDefault("metrics.enabled", false)

	viper.SetConfigName("gunship")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// Get returns the loaded settings.
func Get() (Settings, error) {
	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %w", err)
	}
	if s.TickRate <= 0 {
		return Settings{}, fmt.Errorf("tickRate must be positive, got %d", s.TickRate)
	}
	switch s.Store.Driver {
	case "memory", "sqlite", "postgres":
	default:
		return Settings{}, fmt.Errorf("unknown store driver %q", s.Store.Driver)
	}
	return s, nil
}
