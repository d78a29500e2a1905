package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestThrottle(t *testing.T, maxAttempts int, window time.Duration) (*LoginThrottle, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewLoginThrottle(client, maxAttempts, window), srv
}

func TestLoginThrottle_BlocksAfterMaxAttempts(t *testing.T) {
	throttle, _ := newTestThrottle(t, 3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := throttle.RecordFailure(ctx, "alice"); err != nil {
			t.Fatalf("record failure: %v", err)
		}
		blocked, err := throttle.Blocked(ctx, "alice")
		if err != nil {
			t.Fatalf("blocked check: %v", err)
		}
		if blocked {
			t.Fatalf("blocked too early after %d failures", i+1)
		}
	}

	if err := throttle.RecordFailure(ctx, "alice"); err != nil {
		t.Fatalf("record failure: %v", err)
	}
	blocked, err := throttle.Blocked(ctx, "alice")
	if err != nil {
		t.Fatalf("blocked check: %v", err)
	}
	if !blocked {
		t.Fatalf("expected block after max attempts")
	}

	// Other usernames are unaffected.
	blocked, err = throttle.Blocked(ctx, "bob")
	if err != nil {
		t.Fatalf("blocked check: %v", err)
	}
	if blocked {
		t.Fatalf("unrelated username blocked")
	}
}

func TestLoginThrottle_ResetClearsCounter(t *testing.T) {
	throttle, _ := newTestThrottle(t, 2, time.Minute)
	ctx := context.Background()

	_ = throttle.RecordFailure(ctx, "alice")
	_ = throttle.RecordFailure(ctx, "alice")
	blocked, _ := throttle.Blocked(ctx, "alice")
	if !blocked {
		t.Fatalf("expected block before reset")
	}

	if err := throttle.Reset(ctx, "alice"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	blocked, err := throttle.Blocked(ctx, "alice")
	if err != nil {
		t.Fatalf("blocked check: %v", err)
	}
	if blocked {
		t.Fatalf("expected unblock after reset")
	}
}

func TestLoginThrottle_WindowExpires(t *testing.T) {
	throttle, srv := newTestThrottle(t, 2, time.Minute)
	ctx := context.Background()

	_ = throttle.RecordFailure(ctx, "alice")
	_ = throttle.RecordFailure(ctx, "alice")

	srv.FastForward(2 * time.Minute)

	blocked, err := throttle.Blocked(ctx, "alice")
	if err != nil {
		t.Fatalf("blocked check: %v", err)
	}
	if blocked {
		t.Fatalf("expected counter to expire with the window")
	}
}
