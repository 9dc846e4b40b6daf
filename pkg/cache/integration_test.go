//go:build integration

package cache

import (
	"context"
	"os"
	"testing"
	"time"
)

// These tests need live backends:
//
//	WORDGRID_TEST_REDIS=localhost:6379 WORDGRID_TEST_MONGO=mongodb://localhost:27017 \
//	    go test -tags integration ./pkg/cache/

func TestRedisCacheIntegration(t *testing.T) {
	addr := os.Getenv("WORDGRID_TEST_REDIS")
	if addr == "" {
		t.Skip("WORDGRID_TEST_REDIS not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c, err := NewRedisCache(ctx, RedisConfig{Addr: addr, Prefix: "wordgrid-test:"})
	if err != nil {
		t.Fatalf("NewRedisCache: %v", err)
	}
	defer c.Close()

	testRoundTrip(t, c)
}

func TestMongoCacheIntegration(t *testing.T) {
	uri := os.Getenv("WORDGRID_TEST_MONGO")
	if uri == "" {
		t.Skip("WORDGRID_TEST_MONGO not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c, err := NewMongoCache(ctx, MongoConfig{URI: uri, Database: "wordgrid_test"})
	if err != nil {
		t.Fatalf("NewMongoCache: %v", err)
	}
	defer c.Close()

	testRoundTrip(t, c)
	testExpiry(t, c)
}
