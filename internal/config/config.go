// Package config loads runtime settings for the loot tools from the environment.
package config

import (
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-loot/internal/errors"
)

// Config holds every setting the CLI needs to wire the loot core
type Config struct {
	EquipmentCatalog string `env:"LOOT_EQUIPMENT_CATALOG" envDefault:"data/equipment.yaml"`
	AffixCatalog     string `env:"LOOT_AFFIX_CATALOG" envDefault:"data/affixes.yaml"`
	// RarityTable is optional; the built-in table is used when empty.
	RarityTable string `env:"LOOT_RARITY_TABLE"`

	// RedisAddr selects the Redis ledger; empty means an in-memory ledger.
	RedisAddr string `env:"LOOT_REDIS_ADDR"`
	OwnerID   string `env:"LOOT_OWNER_ID" envDefault:"player-1"`

	// Seed makes generation reproducible; zero seeds from the clock.
	Seed uint64 `env:"LOOT_SEED"`

	RerollCurrency  string `env:"LOOT_REROLL_CURRENCY" envDefault:"RerollOrb"`
	RerollCost      int    `env:"LOOT_REROLL_COST" envDefault:"1"`
	AugmentCurrency string `env:"LOOT_AUGMENT_CURRENCY" envDefault:"AugmentShard"`
	AugmentCost     int    `env:"LOOT_AUGMENT_COST" envDefault:"3"`

	LogLevel string `env:"LOOT_LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment into a Config and validates it
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFrom parses values from the given map instead of the process environment
func LoadFrom(environment map[string]string) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environment}); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate ensures the configuration is usable
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("EquipmentCatalog", c.EquipmentCatalog, vb)
	errors.ValidateRequired("AffixCatalog", c.AffixCatalog, vb)
	errors.ValidateRequired("OwnerID", c.OwnerID, vb)
	errors.ValidateRequired("RerollCurrency", c.RerollCurrency, vb)
	errors.ValidateRequired("AugmentCurrency", c.AugmentCurrency, vb)
	errors.ValidateNonNegative("RerollCost", c.RerollCost, vb)
	errors.ValidateNonNegative("AugmentCost", c.AugmentCost, vb)

	if _, ok := parseLevel(c.LogLevel); !ok {
		vb.InvalidField("LogLevel", "must be one of debug, info, warn, error")
	}

	return vb.Build()
}

// SlogLevel returns the configured log level, info when unrecognized
func (c *Config) SlogLevel() slog.Level {
	level, _ := parseLevel(c.LogLevel)
	return level
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "", "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
