package tilemapping

import (
	"bytes"
	"errors"
	"strings"

	"github.com/domino14/lettergrid/cache"
	"github.com/domino14/lettergrid/config"
)

var CacheKeyPrefix = "letterdist:"

// CacheLoadFunc is the function that loads a distribution into the global
// cache.
func CacheLoadFunc(cfg *config.Config, key string) (any, error) {
	name := strings.TrimPrefix(key, CacheKeyPrefix)
	return NamedLetterDistribution(cfg.GetString(config.ConfigDataPath), name)
}

// Set parses a distribution from CSV bytes and caches it under name.
func Set(name string, data []byte) error {
	return cache.Populate(CacheKeyPrefix+strings.ToLower(name), data, func(data []byte) (any, error) {
		ld, err := ScanLetterDistribution(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		ld.Name = strings.ToLower(name)
		return ld, nil
	})
}

// Get returns a named distribution from the cache, loading it from the
// data path the first time.
func Get(cfg *config.Config, name string) (*LetterDistribution, error) {
	key := CacheKeyPrefix + strings.ToLower(name)
	obj, err := cache.Load(cfg, key, CacheLoadFunc)
	if err != nil {
		return nil, err
	}
	ret, ok := obj.(*LetterDistribution)
	if !ok {
		return nil, errors.New("could not read letter distribution from cache")
	}
	return ret, nil
}
