package config

import (
	"errors"
	"flag"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

const (
	ConfigDataPath                  = "data-path"
	ConfigBoardWidth                = "board-width"
	ConfigBoardHeight               = "board-height"
	ConfigHandSize                  = "hand-size"
	ConfigDefaultLetterDistribution = "default-letter-distribution"
	ConfigRulesFile                 = "rules-file"
	ConfigDebug                     = "debug"
	ConfigCPUProfile                = "cpu-profile"
)

// Config wraps a viper instance. Settings come from, in increasing order of
// priority: defaults, LETTERGRID_* environment variables, command-line flags.
type Config struct {
	sync.Mutex
	viper.Viper

	args []string
}

var defaults = map[string]any{
	ConfigDataPath:                  "./data",
	ConfigBoardWidth:                20,
	ConfigBoardHeight:               20,
	ConfigHandSize:                  21,
	ConfigDefaultLetterDistribution: "english",
	ConfigRulesFile:                 "",
	ConfigDebug:                     false,
	ConfigCPUProfile:                "",
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("lettergrid")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}
	return v
}

// DefaultConfig returns a config with every setting at its default (or
// its environment override).
func DefaultConfig() *Config {
	return &Config{Viper: *newViper()}
}

// Load parses args as flags on top of the defaults and environment.
func (c *Config) Load(args []string) error {
	c.Viper = *newViper()
	fs := flag.NewFlagSet("lettergrid", flag.ContinueOnError)
	fs.String(ConfigDataPath, "", "directory holding letter distributions and rules files")
	fs.Int(ConfigBoardWidth, 0, "board width in cells")
	fs.Int(ConfigBoardHeight, 0, "board height in cells")
	fs.Int(ConfigHandSize, 0, "maximum number of tiles in hand")
	fs.String(ConfigDefaultLetterDistribution, "", "letter distribution to fill the reserve with")
	fs.String(ConfigRulesFile, "", "YAML rules file; overrides board, hand and distribution settings")
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.String(ConfigCPUProfile, "", "file to write a CPU profile to")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c.args = fs.Args()
	// Only flags the user actually passed override the lower layers.
	fs.Visit(func(f *flag.Flag) {
		c.Set(f.Name, f.Value.String())
	})
	return c.Validate()
}

// Args returns the arguments left over after flag parsing.
func (c *Config) Args() []string {
	return c.args
}

// Validate checks settings that would make a game impossible.
func (c *Config) Validate() error {
	if c.GetInt(ConfigBoardWidth) <= 0 || c.GetInt(ConfigBoardHeight) <= 0 {
		return errors.New("board dimensions must be positive")
	}
	if c.GetInt(ConfigHandSize) <= 0 {
		return errors.New("hand size must be positive")
	}
	return nil
}

// AdjustRelativePaths makes relative file settings relative to basePath
// (usually the directory of the executable).
func (c *Config) AdjustRelativePaths(basePath string) {
	for _, key := range []string{ConfigDataPath, ConfigRulesFile} {
		p := c.GetString(key)
		if p == "" || filepath.IsAbs(p) {
			continue
		}
		c.Set(key, filepath.Join(basePath, p))
	}
}

// SanitizedSettings returns the settings for logging.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
