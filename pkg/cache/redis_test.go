package cache

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedisCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c, err := NewRedisCache(context.Background(), "redis://"+mr.Addr()+"/0")
	if err != nil {
		t.Fatalf("NewRedisCache() error: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c, mr
}

func TestRedisCache(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestRedisCache(t)

	data, ok, err := c.Get(ctx, "artifact:excel:abc")
	if err != nil || ok || data != nil {
		t.Fatalf("Get() on empty cache = %q, %v, %v; want miss", data, ok, err)
	}

	if err := c.Set(ctx, "artifact:excel:abc", []byte("workbook"), time.Hour); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	data, ok, err = c.Get(ctx, "artifact:excel:abc")
	if err != nil || !ok || string(data) != "workbook" {
		t.Fatalf("Get() = %q, %v, %v; want workbook hit", data, ok, err)
	}
	if ttl := mr.TTL("artifact:excel:abc"); ttl != time.Hour {
		t.Errorf("TTL = %v, want %v", ttl, time.Hour)
	}

	if err := c.Delete(ctx, "artifact:excel:abc"); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if mr.Exists("artifact:excel:abc") {
		t.Error("key still exists after Delete()")
	}
	if err := c.Delete(ctx, "artifact:excel:abc"); err != nil {
		t.Errorf("Delete() of missing key error: %v", err)
	}
}

func TestRedisCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestRedisCache(t)

	if err := c.Set(ctx, "short", []byte("x"), time.Minute); err != nil {
		t.Fatal(err)
	}
	if err := c.Set(ctx, "forever", []byte("y"), 0); err != nil {
		t.Fatal(err)
	}
	mr.FastForward(2 * time.Minute)

	if _, ok, err := c.Get(ctx, "short"); err != nil || ok {
		t.Errorf("Get(short) = %v, %v; want expired miss", ok, err)
	}
	if data, ok, err := c.Get(ctx, "forever"); err != nil || !ok || string(data) != "y" {
		t.Errorf("Get(forever) = %q, %v, %v; want hit", data, ok, err)
	}
}

func TestRedisCacheWrongType(t *testing.T) {
	c, mr := newTestRedisCache(t)
	if _, err := mr.Lpush("list", "a"); err != nil {
		t.Fatal(err)
	}

	_, ok, err := c.Get(context.Background(), "list")
	if ok || err == nil {
		t.Fatalf("Get() = %v, %v; want backend error", ok, err)
	}
	if !errors.Is(err, ErrBackend) {
		t.Errorf("error = %v, want ErrBackend", err)
	}
	if IsRetryable(err) {
		t.Error("WRONGTYPE must not be retried")
	}
}

func TestNewRedisCacheBadURL(t *testing.T) {
	if _, err := NewRedisCache(context.Background(), "http://localhost"); err == nil {
		t.Error("expected error for non-redis URL")
	}
}

func TestNewRedisCacheUnreachable(t *testing.T) {
	defer func(d time.Duration) { backoffBase = d }(backoffBase)
	backoffBase = time.Millisecond

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	addr := ln.Addr().String()
	ln.Close()

	_, err = NewRedisCache(context.Background(), "redis://"+addr+"/0")
	if err == nil {
		t.Fatal("expected error for unreachable redis")
	}
	if !errors.Is(err, ErrBackend) {
		t.Errorf("error = %v, want ErrBackend", err)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantNil   bool
		retryable bool
	}{
		{"nil", nil, true, false},
		{"miss", redis.Nil, false, false},
		{"network", &net.OpError{Op: "dial", Err: errors.New("refused")}, false, true},
		{"deadline", context.DeadlineExceeded, false, true},
		{"other", errors.New("WRONGTYPE"), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.err)
			if (got == nil) != tt.wantNil {
				t.Fatalf("classify(%v) = %v", tt.err, got)
			}
			if IsRetryable(got) != tt.retryable {
				t.Errorf("IsRetryable = %v, want %v", IsRetryable(got), tt.retryable)
			}
		})
	}
}
