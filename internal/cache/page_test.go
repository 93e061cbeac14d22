// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Page cache tests run against a live Valkey and are skipped when it is
// unreachable.
package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// testValkey returns a client connected to the test Valkey, or skips.
func testValkey(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15, // Use DB 15 for tests to isolate from dev data.
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, pageKeyPrefix+"*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestPageCacheSetGet(t *testing.T) {
	pc := NewPageCache(testValkey(t), time.Minute)
	ctx := context.Background()

	key := PageKey("en", "/products")
	html := []byte("<html>catalog</html>")

	if _, hit := pc.Get(ctx, key); hit {
		t.Fatal("unexpected hit before Set")
	}

	pc.Set(ctx, key, html)

	got, hit := pc.Get(ctx, key)
	if !hit {
		t.Fatal("miss after Set")
	}
	if string(got) != string(html) {
		t.Errorf("cached html = %q", got)
	}
}

func TestPageCacheKeysAreLocaleScoped(t *testing.T) {
	pc := NewPageCache(testValkey(t), time.Minute)
	ctx := context.Background()

	pc.Set(ctx, PageKey("en", "/products"), []byte("english"))
	pc.Set(ctx, PageKey("kh", "/products"), []byte("khmer"))

	got, hit := pc.Get(ctx, PageKey("kh", "/products"))
	if !hit || string(got) != "khmer" {
		t.Errorf("kh page = %q hit=%v, locales must not share entries", got, hit)
	}
}

func TestPageCacheInvalidateAll(t *testing.T) {
	pc := NewPageCache(testValkey(t), time.Minute)
	ctx := context.Background()

	// Several pages across locales; a content mutation purges them all.
	keys := []string{
		PageKey("en", "/"),
		PageKey("kh", "/"),
		PageKey("en", "/products"),
		PageKey("kh", "/about"),
	}
	for _, k := range keys {
		pc.Set(ctx, k, []byte("stale"))
	}

	pc.InvalidateAll(ctx)

	for _, k := range keys {
		if _, hit := pc.Get(ctx, k); hit {
			t.Errorf("key %s survived InvalidateAll", k)
		}
	}
}
