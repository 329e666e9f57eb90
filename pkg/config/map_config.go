package config

import (
	"fmt"
	"sync"

	"github.com/apex/log"
)

// MapConfig is an in-memory Configer used by tests and by callers that
// construct configuration programmatically rather than from the environment.
type MapConfig struct {
	configValues sync.Map
}

func NewMapConfig(entries map[string]string) *MapConfig {
	c := &MapConfig{}

	for key, entry := range entries {
		c.configValues.Store(key, entry)
	}

	return c
}

func (c *MapConfig) LoadFromPath(_ string) error {
	return fmt.Errorf("LoadFromPath not supported for MapConfig")
}

func (c *MapConfig) Load() error {
	return nil
}

func (c *MapConfig) GetKey(key string) string {
	v, ok := c.configValues.Load(key)
	switch {
	case !ok:
		return ""

	case v == nil:
		return ""

	default:
		return v.(string)
	}
}

func (c *MapConfig) MustGetKey(key string) string {
	v := c.GetKey(key)
	if v == "" {
		log.Fatalf("No such required config key: '%s'", key)
	}

	return v
}

func (c *MapConfig) GetKeyWithDefault(key, defaultValue string) string {
	v := c.GetKey(key)
	if v == "" {
		return defaultValue
	}

	return v
}
