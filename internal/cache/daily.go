package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"dailytake/internal/model"
)

// Generator produces one day's result. It must not fail; a bad cycle comes
// back as a DailyResult carrying its own failure.
type Generator interface {
	Generate(ctx context.Context, day string) *model.DailyResult
}

// DailyCache memoizes a single DailyResult per calendar day. The slot holds
// at most one result; a new day's generation replaces it wholesale.
// Concurrent callers that find the slot empty or stale share one
// regeneration via singleflight keyed by the day, and late arrivals block
// until that run finishes rather than being served the previous value.
type DailyCache struct {
	generator Generator
	now       func() time.Time

	mu      sync.RWMutex
	current *model.DailyResult

	group singleflight.Group
}

func NewDailyCache(generator Generator) *DailyCache {
	return &DailyCache{
		generator: generator,
		now:       time.Now,
	}
}

// Get returns today's result, generating it if the slot is empty or holds a
// previous day's result. A failed cycle is cached like any other and is not
// retried until the next calendar day.
func (c *DailyCache) Get(ctx context.Context) *model.DailyResult {
	day := c.now().Format(model.DateLayout)

	if result := c.fresh(day); result != nil {
		return result
	}

	v, _, _ := c.group.Do(day, func() (interface{}, error) {
		// A caller that queued behind a finished regeneration re-checks the
		// slot instead of triggering another run.
		if result := c.fresh(day); result != nil {
			return result, nil
		}

		// The run is shared by every caller blocked on this day, so it must
		// not die with whichever request happened to trigger it.
		slog.Info("regenerating daily result", "day", day)
		result := c.generator.Generate(context.WithoutCancel(ctx), day)

		c.mu.Lock()
		c.current = result
		c.mu.Unlock()

		return result, nil
	})

	return v.(*model.DailyResult)
}

// Warm reports whether the slot currently holds today's result.
func (c *DailyCache) Warm() bool {
	return c.fresh(c.now().Format(model.DateLayout)) != nil
}

func (c *DailyCache) fresh(day string) *model.DailyResult {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.current != nil && c.current.GeneratedOn == day {
		return c.current
	}
	return nil
}
