// Package config reads run settings from flags, C4_ environment variables
// and an optional config file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"connect4/meta"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "C4"

type Config struct {
	Depth     int    `mapstructure:"depth"`
	Trace     bool   `mapstructure:"trace"`
	Color     bool   `mapstructure:"color"`
	LogLevel  string `mapstructure:"log-level"`
	ExportDir string `mapstructure:"export-dir"`
	Seed      uint64 `mapstructure:"seed"`
	Tokens    int    `mapstructure:"tokens"`

	// Experiment is the number of random boards of the pruning experiment;
	// 0 runs the single traced comparison instead.
	Experiment int `mapstructure:"experiment"`
}

// Level is the parsed LogLevel. Load has already validated it.
func (c *Config) Level() zerolog.Level {
	level, _ := zerolog.ParseLevel(c.LogLevel)
	return level
}

// RandomBoard reports whether the run searches a random position instead of
// the fixed initial board.
func (c *Config) RandomBoard() bool {
	return c.Seed != 0
}

func flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("connect4", pflag.ContinueOnError)
	fs.String("config", "", "optional config file (yaml, json, toml...)")
	fs.Int("depth", meta.MaxDepth, "search depth limit in plies")
	fs.Bool("trace", true, "print the live transcript of both searches")
	fs.Bool("color", false, "color the tokens of printed boards")
	fs.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	fs.String("export-dir", "", "directory receiving node CSVs and a YAML summary; empty disables export")
	fs.Uint64("seed", 0, "seed of a random starting position; 0 uses the fixed board")
	fs.Int("tokens", 12, "number of tokens on a random starting position")
	fs.Int("experiment", 0, "run the pruning experiment on this many random boards")
	return fs
}

func Load(args []string) (*Config, error) {
	fs := flags()
	err := fs.Parse(args)
	if err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	v := viper.New()
	err = v.BindPFlags(fs)
	if err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		err = v.ReadInConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	err = v.Unmarshal(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	err = cfg.validate()
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

var ErrNegativeDepth = errors.New("depth cannot be negative")

var ErrNegativeTokens = errors.New("tokens cannot be negative")

var ErrNegativeExperiment = errors.New("experiment board count cannot be negative")

func (c *Config) validate() error {
	if c.Depth < 0 {
		return fmt.Errorf("invalid depth %d: %w", c.Depth, ErrNegativeDepth)
	}
	if c.Tokens < 0 {
		return fmt.Errorf("invalid tokens %d: %w", c.Tokens, ErrNegativeTokens)
	}
	if c.Experiment < 0 {
		return fmt.Errorf("invalid experiment %d: %w", c.Experiment, ErrNegativeExperiment)
	}
	_, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return nil
}
