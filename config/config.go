// Package config holds the runtime configuration of the affnet CLI.
//
// Values come from .affnet.yaml, AFFNET_* environment variables and CLI
// flags, in viper's usual precedence. Nested keys map to environment names
// with "_" (layout.seed → AFFNET_LAYOUT_SEED).
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "AFFNET"

// ErrInvalidConfig wraps every validation failure returned by Load.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// LayoutConfig controls the spring layout and its export.
type LayoutConfig struct {
	Seed       int64   `mapstructure:"seed"`
	K          float64 `mapstructure:"k" validate:"gte=0"`
	Iterations int     `mapstructure:"iterations" validate:"min=1"`
	Scale      float64 `mapstructure:"scale" validate:"gt=0"`
	Target     string  `mapstructure:"target" validate:"oneof=bipartite projected"`
	Output     string  `mapstructure:"output" validate:"oneof=json dot"`
}

// Config is the explicit configuration passed to every command.
type Config struct {
	Sources    []string     `mapstructure:"sources" validate:"omitempty,dive,required"`
	ReachSteps int          `mapstructure:"reach_steps" validate:"min=1"`
	Largest    bool         `mapstructure:"largest"`
	Format     string       `mapstructure:"format" validate:"oneof=text yaml"`
	Verbose    bool         `mapstructure:"verbose"`
	Layout     LayoutConfig `mapstructure:"layout"`
}

// New returns a viper instance wired for AFFNET_* environment overrides.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load applies defaults to v, unmarshals it and validates the result.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = New()
	}
	v.SetDefault("sources", []string{})
	v.SetDefault("reach_steps", 4)
	v.SetDefault("largest", false)
	v.SetDefault("format", "text")
	v.SetDefault("verbose", false)
	v.SetDefault("layout.seed", 999999)
	v.SetDefault("layout.k", 0.0)
	v.SetDefault("layout.iterations", 50)
	v.SetDefault("layout.scale", 1.0)
	v.SetDefault("layout.target", "bipartite")
	v.SetDefault("layout.output", "json")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return cfg, nil
}

// NewLogger returns a development logger when verbose is set and a
// production logger otherwise.
func NewLogger(cfg Config) (*zap.Logger, error) {
	if cfg.Verbose {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}
