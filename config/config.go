// Package config loads host settings from the environment. An optional
// .env file in the working directory is read first; variables already set
// in the environment take precedence over it. Commands then bind flags on
// top with RegisterFlags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultScale         = 20
	DefaultVolume        = 0.3
	DefaultSFXVolume     = 0.5
	DefaultTick          = 16 * time.Millisecond
	DefaultAlertDuration = 1500 * time.Millisecond
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Scale         int
	Volume        float64
	SFXVolume     float64
	Mute          bool
	Seed          uint64
	DebugUI       bool
	LogFile       string
	Tick          time.Duration
	AlertDuration time.Duration
}

// Load reads the given env files (".env" when none are named) and builds a
// Config from the BLOCKFALL_* variables. A missing default .env is not an
// error; a missing file that was asked for by name is.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading .env: %w", err)
		}
	} else if err := godotenv.Load(files...); err != nil {
		return nil, fmt.Errorf("loading %s: %w", strings.Join(files, ", "), err)
	}

	cfg := FromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnv builds a Config from the current environment only.
func FromEnv() *Config {
	return &Config{
		Scale:         GetEnvAsInt("BLOCKFALL_SCALE", DefaultScale),
		Volume:        GetEnvAsFloat("BLOCKFALL_VOLUME", DefaultVolume),
		SFXVolume:     GetEnvAsFloat("BLOCKFALL_SFX_VOLUME", DefaultSFXVolume),
		Mute:          GetEnvAsBool("BLOCKFALL_MUTE", false),
		Seed:          GetEnvAsUint64("BLOCKFALL_SEED", 0),
		DebugUI:       GetEnvAsBool("BLOCKFALL_DEBUG_UI", false),
		LogFile:       GetEnv("BLOCKFALL_LOG", ""),
		Tick:          GetEnvAsDuration("BLOCKFALL_TICK", DefaultTick),
		AlertDuration: GetEnvAsDuration("BLOCKFALL_ALERT", DefaultAlertDuration),
	}
}

// RegisterFlags binds command line flags to c, using its current values as
// defaults.
func (c *Config) RegisterFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.Scale, "scale", c.Scale, "pixels per board cell")
	flags.Float64Var(&c.Volume, "volume", c.Volume, "music volume, 0 to 1")
	flags.Float64Var(&c.SFXVolume, "sfx-volume", c.SFXVolume, "sound effect volume, 0 to 1")
	flags.BoolVar(&c.Mute, "mute", c.Mute, "disable audio")
	flags.Uint64Var(&c.Seed, "seed", c.Seed, "random seed for piece selection (0 picks one from the clock)")
	flags.BoolVar(&c.DebugUI, "debug-ui", c.DebugUI, "show the debug overlay")
	flags.StringVar(&c.LogFile, "log", c.LogFile, "write logs to this file instead of stderr")
	flags.DurationVar(&c.Tick, "tick", c.Tick, "frame interval for terminal hosts")
	flags.DurationVar(&c.AlertDuration, "alert", c.AlertDuration, "how long the game over banner blocks input")
}

func (c *Config) Validate() error {
	switch {
	case c.Scale <= 0:
		return fmt.Errorf("%w: scale must be positive, got %d", ErrInvalidConfig, c.Scale)
	case c.Volume < 0 || c.Volume > 1:
		return fmt.Errorf("%w: volume must be within [0, 1], got %g", ErrInvalidConfig, c.Volume)
	case c.SFXVolume < 0 || c.SFXVolume > 1:
		return fmt.Errorf("%w: sfx volume must be within [0, 1], got %g", ErrInvalidConfig, c.SFXVolume)
	case c.Tick <= 0:
		return fmt.Errorf("%w: tick must be positive, got %s", ErrInvalidConfig, c.Tick)
	case c.AlertDuration < 0:
		return fmt.Errorf("%w: alert duration must not be negative, got %s", ErrInvalidConfig, c.AlertDuration)
	}
	return nil
}

// Seeded reports whether a fixed seed was configured.
func (c *Config) Seeded() bool { return c.Seed != 0 }

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsUint64(key string, defaultValue uint64) uint64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseUint(valueStr, 10, 64)
	if err != nil {
		log.Printf("Invalid unsigned value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Invalid float value for %s: %s, using default: %g", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Invalid boolean value for %s: %s, using default: %t", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Invalid duration value for %s: %s, using default: %s", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
