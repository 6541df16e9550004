package config

import (
	"testing"

	"github.com/matryer/is"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	is.Equal(cfg.GetInt(ConfigBoardWidth), 20)
	is.Equal(cfg.GetInt(ConfigBoardHeight), 20)
	is.Equal(cfg.GetInt(ConfigHandSize), 21)
	is.Equal(cfg.GetString(ConfigDefaultLetterDistribution), "english")
	is.NoErr(cfg.Validate())
}

func TestLoadFlags(t *testing.T) {
	is := is.New(t)
	cfg := &Config{}
	is.NoErr(cfg.Load([]string{"-board-width", "15", "-hand-size", "7", "-debug"}))
	is.Equal(cfg.GetInt(ConfigBoardWidth), 15)
	is.Equal(cfg.GetInt(ConfigBoardHeight), 20)
	is.Equal(cfg.GetInt(ConfigHandSize), 7)
	is.True(cfg.GetBool(ConfigDebug))
	is.Equal(len(cfg.Args()), 0)

	is.NoErr(cfg.Load([]string{"-debug", "score", "-format", "json"}))
	is.Equal(cfg.Args(), []string{"score", "-format", "json"})
}

func TestLoadEnv(t *testing.T) {
	is := is.New(t)
	t.Setenv("LETTERGRID_BOARD_HEIGHT", "9")
	cfg := &Config{}
	is.NoErr(cfg.Load(nil))
	is.Equal(cfg.GetInt(ConfigBoardHeight), 9)

	// Flags win over the environment.
	is.NoErr(cfg.Load([]string{"-board-height", "11"}))
	is.Equal(cfg.GetInt(ConfigBoardHeight), 11)
}

func TestLoadRejectsBadDimensions(t *testing.T) {
	is := is.New(t)
	cfg := &Config{}
	is.True(cfg.Load([]string{"-board-width", "0"}) != nil)
	is.True(cfg.Load([]string{"-hand-size", "-1"}) != nil)
	is.True(cfg.Load([]string{"-no-such-flag"}) != nil)
}

func TestAdjustRelativePaths(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	cfg.Set(ConfigRulesFile, "rules/small.yaml")
	cfg.AdjustRelativePaths("/opt/lettergrid")
	is.Equal(cfg.GetString(ConfigDataPath), "/opt/lettergrid/data")
	is.Equal(cfg.GetString(ConfigRulesFile), "/opt/lettergrid/rules/small.yaml")
}
