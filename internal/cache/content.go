// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// content.go implements the process-wide tag cache backing the content
// accessor. Each content collection maps to one tag; an entry holds the
// last computed value and its computation time. Reads within the
// revalidation window serve the memoized value; writes invalidate the
// tag so the next read recomputes regardless of the window.
package cache

import (
	"log/slog"
	"sync"
	"time"
)

// entry is one cached value with its computation timestamp.
type entry struct {
	value      any
	computedAt time.Time
}

// ContentCache is a concurrency-safe tag → value cache with time-boxed
// revalidation. The clock is injectable so staleness-window behavior can
// be asserted deterministically in tests.
//
// Concurrent requests that find the same tag stale may race to
// recompute. That duplicate work is tolerated on purpose: the underlying
// store read is idempotent and cheap, and it avoids holding a lock
// across a network call.
type ContentCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

// NewContentCache creates an empty cache. now may be nil, in which case
// time.Now is used.
func NewContentCache(now func() time.Time) *ContentCache {
	if now == nil {
		now = time.Now
	}
	return &ContentCache{
		entries: make(map[string]entry),
		now:     now,
	}
}

// GetOrCompute returns the cached value for tag when it is younger than
// ttl, and otherwise calls compute and stores the result.
//
// When compute fails but a previous value exists, that value keeps being
// served (its timestamp is not refreshed, so the next read retries) and
// no error is returned. Only when there is nothing to fall back on does
// the error reach the caller.
func (c *ContentCache) GetOrCompute(tag string, ttl time.Duration, compute func() (any, error)) (any, error) {
	c.mu.RLock()
	e, ok := c.entries[tag]
	c.mu.RUnlock()

	if ok && c.now().Sub(e.computedAt) < ttl {
		return e.value, nil
	}

	value, err := compute()
	if err != nil {
		if ok {
			slog.Warn("cache recompute failed, serving stale value", "tag", tag, "error", err)
			return e.value, nil
		}
		return nil, err
	}

	c.mu.Lock()
	c.entries[tag] = entry{value: value, computedAt: c.now()}
	c.mu.Unlock()

	return value, nil
}

// Invalidate drops the entry for a tag so the next read recomputes.
// Invalidating an absent tag is a no-op, which makes the operation
// idempotent.
func (c *ContentCache) Invalidate(tag string) {
	c.mu.Lock()
	delete(c.entries, tag)
	c.mu.Unlock()
	slog.Debug("content cache invalidated", "tag", tag)
}

// InvalidatePrefix drops every entry whose tag starts with prefix. Used
// for per-id detail tags (e.g. "product:" + id) when the parent
// collection changes in a way that can affect many details at once.
func (c *ContentCache) InvalidatePrefix(prefix string) {
	c.mu.Lock()
	for tag := range c.entries {
		if len(tag) >= len(prefix) && tag[:len(prefix)] == prefix {
			delete(c.entries, tag)
		}
	}
	c.mu.Unlock()
}
