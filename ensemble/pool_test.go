package ensemble

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
)

func TestPoolRunProcessesAllMembers(t *testing.T) {
	members := make([]Member, 20)
	for i := range members {
		members[i] = Member{ID: int64(i + 1)}
	}

	var mu sync.Mutex
	seen := make(map[int64]int)

	pool := NewPool(WithWorkers(4))

	err := pool.Run(context.Background(), members, func(_ context.Context, m Member) error {
		mu.Lock()
		seen[m.ID]++
		mu.Unlock()

		return nil
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(seen) != len(members) {
		t.Fatalf("processed %d members, want %d", len(seen), len(members))
	}

	for id, count := range seen {
		if count != 1 {
			t.Fatalf("member %d processed %d times", id, count)
		}
	}
}

func TestPoolRunAggregatesFailures(t *testing.T) {
	members := []Member{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}}

	failing := errors.New("bad signal")

	var mu sync.Mutex
	processed := 0

	pool := NewPool(WithWorkers(2))

	err := pool.Run(context.Background(), members, func(_ context.Context, m Member) error {
		mu.Lock()
		processed++
		mu.Unlock()

		if m.ID%2 == 0 {
			return failing
		}

		return nil
	})

	// Failures never abort siblings.
	if processed != len(members) {
		t.Fatalf("processed %d members, want %d", processed, len(members))
	}

	if err == nil {
		t.Fatal("expected aggregated error")
	}

	if !errors.Is(err, failing) {
		t.Fatalf("aggregate must wrap the cause, got %v", err)
	}

	msg := err.Error()
	for _, want := range []string{"member 2", "member 4"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("aggregate %q missing %q", msg, want)
		}
	}
}

func TestPoolRunEmpty(t *testing.T) {
	pool := NewPool()

	err := pool.Run(context.Background(), nil, func(_ context.Context, _ Member) error {
		t.Fatal("callback must not run for an empty ensemble")
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}
