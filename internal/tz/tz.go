// Package tz resolves timezone names into *time.Location through an
// explicit execution context. The default timezone is a property of the
// session/execution context passed into every call; there is no
// process-wide mutable default.
package tz

import (
	"fmt"
	"sync"
	"time"
)

// Env carries the execution-context timezone settings for one invocation
// chain. Shared read-only across worker threads.
type Env struct {
	Default *time.Location
}

// NewEnv builds an Env whose default is the named IANA zone.
func NewEnv(name string) (*Env, error) {
	loc, err := Location(name)
	if err != nil {
		return nil, err
	}
	return &Env{Default: loc}, nil
}

// UTC is the usual test/session fallback environment.
func UTC() *Env { return &Env{Default: time.UTC} }

// locationCache memoizes time.LoadLocation results. Entries are tiny,
// immutable and bounded by the IANA name set, so there is no eviction.
type locationCache struct {
	mu     sync.Mutex
	byName map[string]*time.Location
}

var cache = &locationCache{byName: make(map[string]*time.Location)}

func (c *locationCache) get(name string) (*time.Location, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	loc, ok := c.byName[name]
	return loc, ok
}

func (c *locationCache) put(name string, loc *time.Location) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byName[name] = loc
}

// Location loads the named IANA zone, caching across calls. An empty name
// yields UTC.
func Location(name string) (*time.Location, error) {
	if name == "" || name == "UTC" {
		return time.UTC, nil
	}
	if loc, ok := cache.get(name); ok {
		return loc, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("tz: unknown timezone %q: %w", name, err)
	}
	cache.put(name, loc)
	return loc, nil
}

// Resolve maps a column's attached zone name to a location, falling back
// to the environment default when the column names no zone. Resolution
// happens once per batch, never per row.
func Resolve(zone string, env *Env) (*time.Location, error) {
	if zone == "" {
		if env == nil || env.Default == nil {
			return time.UTC, nil
		}
		return env.Default, nil
	}
	return Location(zone)
}
