package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigLogLevel         = "log-level"
	ConfigBoardWidth       = "board-width"
	ConfigBoardHeight      = "board-height"
	ConfigSearchDepth      = "search-depth"
	ConfigTimerThresholdMs = "timer-threshold-ms"
	ConfigTimeLimitMs      = "time-limit-ms"
	ConfigScoreFunction    = "score-function"
	ConfigIterative        = "iterative"
	ConfigNumGames         = "num-games"
	ConfigThreads          = "threads"
	ConfigGameLogPath      = "game-log-path"
	ConfigOpeningPlies     = "opening-plies"
	ConfigSeedFile         = "seed-file"
	ConfigConfigFile       = "config"
)

var ErrBadConfig = errors.New("bad configuration")

type Config struct {
	*viper.Viper
}

// DefaultConfig returns a configuration holding only the defaults. It does not
// read flags, the environment or a config file.
func DefaultConfig() *Config {
	c := &Config{viper.New()}
	setDefaults(c.Viper)
	return c
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(ConfigLogLevel, "info")
	v.SetDefault(ConfigBoardWidth, 7)
	v.SetDefault(ConfigBoardHeight, 7)
	v.SetDefault(ConfigSearchDepth, 3)
	v.SetDefault(ConfigTimerThresholdMs, 10)
	v.SetDefault(ConfigTimeLimitMs, 150)
	v.SetDefault(ConfigScoreFunction, "improved")
	v.SetDefault(ConfigIterative, true)
	v.SetDefault(ConfigNumGames, 20)
	v.SetDefault(ConfigThreads, 1)
	v.SetDefault(ConfigGameLogPath, "")
	v.SetDefault(ConfigOpeningPlies, 2)
	v.SetDefault(ConfigSeedFile, "")
}

// Flags returns a flag set for every key. Flag values override the
// environment, which overrides the config file.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("isolation", pflag.ContinueOnError)
	fs.String(ConfigConfigFile, "", "path to a YAML config file")
	fs.String(ConfigLogLevel, "info", "debug, info or disabled")
	fs.Int(ConfigBoardWidth, 7, "board width")
	fs.Int(ConfigBoardHeight, 7, "board height")
	fs.Int(ConfigSearchDepth, 3, "search depth for fixed-depth agents")
	fs.Int(ConfigTimerThresholdMs, 10, "abort a search once less than this many ms remain")
	fs.Int(ConfigTimeLimitMs, 150, "time allowed per move, in ms")
	fs.String(ConfigScoreFunction, "improved", "evaluation function")
	fs.Bool(ConfigIterative, true, "use iterative deepening")
	fs.Int(ConfigNumGames, 20, "games per match")
	fs.Int(ConfigThreads, 1, "games played concurrently")
	fs.String(ConfigGameLogPath, "", "append one CSV line per finished game to this file")
	fs.Int(ConfigOpeningPlies, 2, "random plies played before the agents take over")
	fs.String(ConfigSeedFile, "", "file of seeds fixing the opening plies of each game")
	return fs
}

// Load parses args and builds a configuration from them, ISOLATION_*
// environment variables and an optional config file.
func Load(args []string) (*Config, error) {
	fs := Flags()
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return FromFlags(fs)
}

// FromFlags builds a configuration from an already parsed flag set, such as
// the persistent flags of a command.
func FromFlags(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("ISOLATION")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}
	if path := v.GetString(ConfigConfigFile); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	}
	c := &Config{v}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	for _, k := range []string{ConfigBoardWidth, ConfigBoardHeight, ConfigTimeLimitMs, ConfigThreads} {
		if c.GetInt(k) <= 0 {
			return fmt.Errorf("%w: %s must be positive", ErrBadConfig, k)
		}
	}
	for _, k := range []string{ConfigSearchDepth, ConfigTimerThresholdMs, ConfigNumGames, ConfigOpeningPlies} {
		if c.GetInt(k) < 0 {
			return fmt.Errorf("%w: %s may not be negative", ErrBadConfig, k)
		}
	}
	return nil
}

// SearchTimeout is the abort threshold handed to the search.
func (c *Config) SearchTimeout() time.Duration {
	return time.Duration(c.GetInt(ConfigTimerThresholdMs)) * time.Millisecond
}

// TimeLimit is the per-move budget.
func (c *Config) TimeLimit() time.Duration {
	return time.Duration(c.GetInt(ConfigTimeLimitMs)) * time.Millisecond
}
