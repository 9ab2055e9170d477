package join

import (
	"math"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/authzed/lazyseq/internal/logging"
	"github.com/authzed/lazyseq/pkg/cursor"
)

// findNextParallel scans A's remaining range with multiple workers, each
// searching its own chunk with private cursors. The earliest match across
// all chunks is the one committed, so the parallel policy emits the same
// matches as the serial scan; workers that find nothing mutate nothing
// shared. A worker stops early once a match at or before its current
// position is already recorded.
func (c *joinCursor[A, B, K, R]) findNextParallel() {
	remaining := cursor.Distance(c.iterA, c.endA)
	if remaining == 0 {
		return
	}

	workers := runtime.GOMAXPROCS(0)
	if c.cfg.maxWorkers > 0 {
		workers = min(workers, c.cfg.maxWorkers)
	}
	workers = min(workers, remaining)
	if workers <= 1 {
		c.findNextSerial()
		return
	}
	chunk := (remaining + workers - 1) / workers

	logging.Trace().
		Int("workers", workers).
		Int("remaining", remaining).
		Msg("scanning join range in parallel")

	var (
		mu      sync.Mutex
		bestPos atomic.Int64
		foundA  cursor.Cursor[A]
		foundB  cursor.Cursor[B]
	)
	bestPos.Store(math.MaxInt64)

	var group errgroup.Group
	for w := range workers {
		lo := w * chunk
		hi := min(lo+chunk, remaining)
		group.Go(func() error {
			a := c.iterA.Clone()
			cursor.Advance(a, lo)

			// Only the worker holding the current A position may resume the
			// B search mid-range; every other worker starts from a key that
			// is unrelated to the last match.
			b := c.beginB.Clone()
			if w == 0 {
				b = c.iterB.Clone()
			}

			for i := lo; i < hi; i++ {
				if int64(i) >= bestPos.Load() {
					return nil
				}
				key := c.keyA(a.Deref())
				b = lowerBound(b, c.endB, key, c.keyB)
				if !b.Equal(c.endB) && !(key < c.keyB(b.Deref())) {
					mu.Lock()
					if int64(i) < bestPos.Load() {
						bestPos.Store(int64(i))
						foundA = a
						foundB = b
					}
					mu.Unlock()
					return nil
				}
				b = c.beginB.Clone()
				a.Next()
			}
			return nil
		})
	}
	// Workers never return errors; Wait is only a join point.
	_ = group.Wait()

	if foundA == nil {
		c.iterA = c.endA.Clone()
		return
	}
	c.iterA = foundA
	c.iterBFound = foundB
	c.iterB = foundB.Clone()
	c.iterB.Next()
}
