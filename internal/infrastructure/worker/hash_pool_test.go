package worker

import (
	"context"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

func startPool(t *testing.T, workers int) (*HashPool, context.CancelFunc) {
	t.Helper()
	pool := NewHashPool(workers, bcrypt.MinCost, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	pool.Start(ctx)
	return pool, cancel
}

func TestHashPool_Roundtrip(t *testing.T) {
	pool, cancel := startPool(t, 2)
	defer cancel()
	ctx := context.Background()

	hash, err := pool.Hash(ctx, "s3cret1")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "s3cret1" || hash == "" {
		t.Fatalf("unexpected hash: %q", hash)
	}

	if err := pool.Compare(ctx, hash, "s3cret1"); err != nil {
		t.Fatalf("compare failed: %v", err)
	}
	if err := pool.Compare(ctx, hash, "wrong"); err == nil {
		t.Fatalf("expected mismatch error, got nil")
	}
}

func TestHashPool_SaltedHashesDiffer(t *testing.T) {
	pool, cancel := startPool(t, 2)
	defer cancel()
	ctx := context.Background()

	first, err := pool.Hash(ctx, "samepass")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	second, err := pool.Hash(ctx, "samepass")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct salted hashes")
	}
}

func TestHashPool_ConcurrentCallers(t *testing.T) {
	pool, cancel := startPool(t, 3)
	defer cancel()
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			hash, err := pool.Hash(ctx, "concurrent")
			if err != nil {
				errs <- err
				return
			}
			errs <- pool.Compare(ctx, hash, "concurrent")
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent op failed: %v", err)
		}
	}
}

func TestHashPool_CancelledContext(t *testing.T) {
	pool := NewHashPool(1, bcrypt.MinCost, zerolog.Nop())
	// Pool never started: submission parks until the caller gives up.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// The job may land in the buffered channel, but the reply never comes.
	if _, err := pool.Hash(ctx, "s3cret1"); err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestNewHashPool_Defaults(t *testing.T) {
	pool := NewHashPool(0, 0, zerolog.Nop())
	if len(pool.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(pool.workers))
	}
	if pool.cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost, got %d", pool.cost)
	}
}
