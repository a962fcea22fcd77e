package ensemble

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
)

// MemberFunc processes one ensemble member.
type MemberFunc func(ctx context.Context, m Member) error

// Pool dispatches a MemberFunc across ensemble members on a fixed
// number of workers. Members are processed independently with no
// ordering guarantee; a failing member never aborts its siblings.
type Pool struct {
	workers int
	logger  *slog.Logger
}

// WithWorkers sets the worker count. Defaults to GOMAXPROCS.
func WithWorkers(n int) func(*Pool) {
	return func(p *Pool) {
		if n > 0 {
			p.workers = n
		}
	}
}

// WithPoolLogger sets the logger for per-member progress and failures.
func WithPoolLogger(logger *slog.Logger) func(*Pool) {
	return func(p *Pool) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewPool creates a worker pool.
func NewPool(options ...func(*Pool)) *Pool {
	p := &Pool{
		workers: runtime.GOMAXPROCS(0),
		logger:  slog.New(slog.DiscardHandler),
	}

	for _, option := range options {
		option(p)
	}

	return p
}

// Run processes every member with fn. All members are attempted even
// when some fail; after completion the captured failures are returned
// as one joined error, each annotated with its member ID. Run itself
// performs no cancellation beyond what ctx carries.
func (p *Pool) Run(ctx context.Context, members []Member, fn MemberFunc) error {
	if len(members) == 0 {
		return nil
	}

	workers := p.workers
	if workers > len(members) {
		workers = len(members)
	}

	work := make(chan Member)
	failures := make([]error, len(members))

	var wg sync.WaitGroup
	var mu sync.Mutex
	next := 0

	for w := 0; w < workers; w++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for m := range work {
				err := fn(ctx, m)
				if err == nil {
					continue
				}

				p.logger.Error("member failed", "member", m.ID, "error", err)

				mu.Lock()
				failures[next] = fmt.Errorf("member %d: %w", m.ID, err)
				next++
				mu.Unlock()
			}
		}()
	}

	for _, m := range members {
		work <- m
	}

	close(work)
	wg.Wait()

	return errors.Join(failures...)
}
