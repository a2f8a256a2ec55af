package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// EnvAPIBase overrides the planning service base URL.
const EnvAPIBase = "TRAVEL_API_BASE"

// Config holds all user-facing configuration for travel-optimizer.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Planner PlannerConfig `toml:"planner"`
	Session SessionConfig `toml:"session"`
}

type ServerConfig struct {
	Host    string `toml:"host"`
	Port    int    `toml:"port"`
	Basemap string `toml:"basemap"`
}

type PlannerConfig struct {
	BaseURL        string  `toml:"base_url"`
	TimeoutSeconds int     `toml:"timeout_seconds"`
	RateLimit      float64 `toml:"rate_limit"`
}

// SessionConfig controls where page sessions are kept. An empty DBPath keeps
// them in memory for the lifetime of the process.
type SessionConfig struct {
	DBPath     string `toml:"db_path"`
	TTLMinutes int    `toml:"ttl_minutes"`
}

// Defaults returns a Config populated with built-in default values.
func Defaults() *Config {
	return &Config{
		Server:  ServerConfig{Host: "localhost", Port: 3000, Basemap: "public/world-map.png"},
		Planner: PlannerConfig{BaseURL: "http://127.0.0.1:8000", TimeoutSeconds: 60, RateLimit: 0},
		Session: SessionConfig{DBPath: "", TTLMinutes: 720},
	}
}

// Load reads an optional .env file and a TOML config file. If the config file
// does not exist, built-in defaults are used. TRAVEL_API_BASE, when set, wins
// over the file.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	// godotenv never overwrites variables already present in the environment.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, err
		}
	}

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if base := os.Getenv(EnvAPIBase); base != "" {
		cfg.Planner.BaseURL = base
	}

	return cfg, nil
}
