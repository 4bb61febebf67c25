// Package config loads host settings from defaults, an optional JSON file and the environment
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// FileName is the config file searched for in the config directory
const FileName = "stardrift.cfg.json"

// EnvPrefix prefixes environment overrides, e.g. STARDRIFT_LOG_LEVEL
const EnvPrefix = "STARDRIFT"

type Config struct {
	Log       LogConfig       `mapstructure:"log"`
	Store     StoreConfig     `mapstructure:"store"`
	Sim       SimConfig       `mapstructure:"sim"`
	Audio     AudioConfig     `mapstructure:"audio"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

type LogConfig struct {
	Level   string        `mapstructure:"level"`
	Dir     string        `mapstructure:"dir"`
	Debug   bool          `mapstructure:"debug"`
	Graylog GraylogConfig `mapstructure:"graylog"`
}

type GraylogConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address"`
}

type StoreConfig struct {
	// DSN selects postgres, empty uses sqlite at Path
	DSN  string `mapstructure:"dsn"`
	Path string `mapstructure:"path"`
}

type SimConfig struct {
	// Seed drives gameplay randomness, 0 seeds from the clock
	Seed uint64 `mapstructure:"seed"`
	Zone string `mapstructure:"zone"`
	FPS  int    `mapstructure:"fps"`
}

type AudioConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

type TelemetryConfig struct {
	Influx InfluxConfig `mapstructure:"influx"`
}

type InfluxConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	URL     string `mapstructure:"url"`
	Token   string `mapstructure:"token"`
	Org     string `mapstructure:"org"`
	Bucket  string `mapstructure:"bucket"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.dir", "./logs")
	v.SetDefault("log.debug", false)
	v.SetDefault("log.graylog.enabled", false)
	v.SetDefault("log.graylog.address", "localhost:12201")

	v.SetDefault("store.dsn", "")
	v.SetDefault("store.path", "stardrift.db")

	v.SetDefault("sim.seed", 0)
	v.SetDefault("sim.zone", "")
	v.SetDefault("sim.fps", 60)

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 1.0)

	v.SetDefault("telemetry.influx.enabled", false)
	v.SetDefault("telemetry.influx.url", "http://localhost:8086")
	v.SetDefault("telemetry.influx.token", "")
	v.SetDefault("telemetry.influx.org", "stardrift")
	v.SetDefault("telemetry.influx.bucket", "runs")
}

// Load reads configuration from configDir
// A missing config file is not an error, defaults and environment still apply
func Load(configDir string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(FileName)
	v.SetConfigType("json")
	v.AddConfigPath(configDir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	if cfg.Sim.FPS <= 0 {
		cfg.Sim.FPS = 60
	}
	return cfg, nil
}
