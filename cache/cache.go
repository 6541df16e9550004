// Package cache holds objects that are expensive to load from disk, such as
// letter distributions, so that every new session does not reread them.
package cache

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/domino14/lettergrid/config"
)

type cache struct {
	sync.Mutex
	objects map[string]any
}

type loadFunc func(cfg *config.Config, key string) (any, error)
type readFunc func(data []byte) (any, error)

// GlobalObjectCache is shared by every session in the process.
var GlobalObjectCache = &cache{objects: make(map[string]any)}

func (c *cache) get(cfg *config.Config, key string, load loadFunc) (any, error) {
	c.Lock()
	defer c.Unlock()
	if obj, ok := c.objects[key]; ok {
		log.Debug().Str("key", key).Msg("getting obj from cache")
		return obj, nil
	}
	log.Debug().Str("key", key).Msg("loading into cache")
	obj, err := load(cfg, key)
	if err != nil {
		return nil, err
	}
	c.objects[key] = obj
	return obj, nil
}

// Load returns the object cached under key, calling load to fill it in
// the first time. Failed loads are not cached.
func Load(cfg *config.Config, key string, load loadFunc) (any, error) {
	return GlobalObjectCache.get(cfg, key, load)
}

// Populate stores the object read from data under key, replacing whatever
// was there.
func Populate(key string, data []byte, read readFunc) error {
	obj, err := read(data)
	if err != nil {
		return err
	}
	GlobalObjectCache.Lock()
	defer GlobalObjectCache.Unlock()
	GlobalObjectCache.objects[key] = obj
	return nil
}

// Forget drops key from the cache.
func Forget(key string) {
	GlobalObjectCache.Lock()
	defer GlobalObjectCache.Unlock()
	delete(GlobalObjectCache.objects, key)
}
