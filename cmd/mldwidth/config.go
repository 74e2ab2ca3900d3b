package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/mldwidth/frontier"
)

// Config keys; flag names, config-file keys and MLDWIDTH_* env names agree.
const (
	keyConfig      = "config"
	keyDEM         = "dem"
	keyFixture     = "fixture"
	keyProbability = "probability"
	keySeed        = "seed"
	keyStrategy    = "strategy"
	keyObservables = "observables"
	keyWorkers     = "workers"
	keyLogLevel    = "log-level"
	keyFormat      = "format"
	keyMetricsFile = "metrics-file"
	keyDOT         = "dot"

	envPrefix = "MLDWIDTH"
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
)

// Config manages command configuration using Viper.
// Precedence: flags, then MLDWIDTH_* environment, then the --config file, then defaults.
type Config struct {
	v *viper.Viper
}

// loadConfig parses args and resolves every setting. pflag.ErrHelp is
// returned unwrapped when -h/--help was requested.
func loadConfig(args []string, usage func(fs *pflag.FlagSet)) (*Config, error) {
	fs := pflag.NewFlagSet("mldwidth", pflag.ContinueOnError)
	fs.String(keyConfig, "", "config file (yaml, json or toml)")
	fs.String(keyDEM, "-", "detector error model file; - reads stdin")
	fs.String(keyFixture, "", "synthetic model instead of --dem, e.g. repetition:5x3, grid:4x4, path:10")
	fs.Float64(keyProbability, 1e-3, "error probability of fixture mechanisms")
	fs.Int64(keySeed, 1, "seed for random fixtures")
	fs.StringSlice(keyStrategy, []string{"greedy", "sequential"}, "elimination strategies to run")
	fs.Bool(keyObservables, false, "treat logical observables as elimination variables")
	fs.Int(keyWorkers, 1, "goroutines for connectivity construction")
	fs.String(keyLogLevel, "info", "log level: debug, info, warn, error")
	fs.String(keyFormat, formatText, "report format: text or json")
	fs.String(keyMetricsFile, "", "write Prometheus metrics to this textfile")
	fs.String(keyDOT, "", "write the detector/mechanism bipartite graph as DOT to this file")
	if usage != nil {
		fs.Usage = func() { usage(fs) }
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments %v", fs.Args())
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}
	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	c := &Config{v: v}
	return c, c.validate()
}

func (c *Config) validate() error {
	if c.Workers() <= 0 {
		return fmt.Errorf("--%s must be positive, got %d", keyWorkers, c.Workers())
	}
	switch c.Format() {
	case formatText, formatJSON:
	default:
		return fmt.Errorf("--%s must be %s or %s, got %q", keyFormat, formatText, formatJSON, c.Format())
	}
	if _, err := c.Strategies(); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if p := c.Probability(); math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("--%s must be in [0,1], got %g", keyProbability, p)
	}
	return nil
}

func (c *Config) DEM() string          { return c.v.GetString(keyDEM) }
func (c *Config) Fixture() string      { return c.v.GetString(keyFixture) }
func (c *Config) Probability() float64 { return c.v.GetFloat64(keyProbability) }
func (c *Config) Seed() int64          { return c.v.GetInt64(keySeed) }
func (c *Config) Observables() bool    { return c.v.GetBool(keyObservables) }
func (c *Config) Workers() int         { return c.v.GetInt(keyWorkers) }
func (c *Config) Format() string       { return strings.ToLower(c.v.GetString(keyFormat)) }
func (c *Config) MetricsFile() string  { return c.v.GetString(keyMetricsFile) }
func (c *Config) DOTFile() string      { return c.v.GetString(keyDOT) }

// Strategies parses the strategy list. Entries may also be comma separated
// inside one value (env and config files).
func (c *Config) Strategies() ([]frontier.Strategy, error) {
	var out []frontier.Strategy
	for _, raw := range c.v.GetStringSlice(keyStrategy) {
		for _, name := range strings.Split(raw, ",") {
			if strings.TrimSpace(name) == "" {
				continue
			}
			s, err := frontier.ParseStrategy(name)
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("--%s: no strategies given", keyStrategy)
	}
	return out, nil
}

// LogLevel parses the configured level.
func (c *Config) LogLevel() (log.Level, error) {
	lvl, err := log.ParseLevel(c.v.GetString(keyLogLevel))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("--%s: %w", keyLogLevel, err)
	}
	return lvl, nil
}
