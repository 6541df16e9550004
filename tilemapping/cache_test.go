package tilemapping

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/lettergrid/cache"
	"github.com/domino14/lettergrid/config"
)

func TestGetCachesDistribution(t *testing.T) {
	is := is.New(t)
	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigDataPath, t.TempDir())

	ld, err := Get(cfg, "English")
	is.NoErr(err)
	is.Equal(ld.NumTotalLetters(), 98)
	again, err := Get(cfg, "english")
	is.NoErr(err)
	is.True(ld == again)

	_, err = Get(cfg, "klingon")
	is.True(err != nil)
}

func TestSetDistribution(t *testing.T) {
	is := is.New(t)
	defer cache.Forget(CacheKeyPrefix + "tiny")
	is.True(Set("tiny", []byte("A,x,1\n")) != nil)
	is.NoErr(Set("Tiny", []byte("a,1,1\nb,2,3\n")))

	cfg := config.DefaultConfig()
	ld, err := Get(cfg, "tiny")
	is.NoErr(err)
	is.Equal(ld.Name, "tiny")
	is.Equal(ld.NumTotalLetters(), 3)
	is.Equal(ld.Score("B"), 3)
}
