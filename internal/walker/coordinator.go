package walker

import (
	"context"
	"sync"
)

// wakeSignal lets the producer loop block until either the frontier gains
// an entry or activeJobs changes, instead of polling (SPEC_FULL.md §5,
// "busy-wait note" — this implementation takes the condition-variable
// alternative it recommends).
type wakeSignal struct {
	mu   sync.Mutex
	cond *sync.Cond
}

func newWakeSignal() *wakeSignal {
	w := &wakeSignal{}
	w.cond = sync.NewCond(&w.mu)

	return w
}

func (w *wakeSignal) broadcast() {
	w.mu.Lock()
	w.cond.Broadcast()
	w.mu.Unlock()
}

// waitUntil blocks until done reports true, re-checking after every
// broadcast.
func (w *wakeSignal) waitUntil(done func() bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for !done() {
		w.cond.Wait()
	}
}

// coordinator orchestrates the traversal: it owns the completed map and
// the deferred-credit map, and is the only thing that mutates an
// already-inserted DirRecord's SubDirTotalSize/TotalSize.
type coordinator struct {
	mu sync.Mutex

	completed map[string]*DirRecord
	deferred  map[string]int64

	skip []string
	log  logger

	errs  []error
	errMu sync.Mutex

	frontier *frontier
	pool     *pool
	wake     *wakeSignal

	progress progressCounters

	ctx context.Context
}

// progressCounters tracks running totals for the optional progress hook.
// Guarded by coordinator.mu since it is only ever touched alongside a
// completed-map insertion.
type progressCounters struct {
	dirs  int64
	files int64
	bytes int64
}

func newCoordinator(opt Options) *coordinator {
	c := &coordinator{
		completed: make(map[string]*DirRecord),
		deferred:  make(map[string]int64),
		skip:      opt.SkipSubstrings,
		log:       logger{enabled: opt.Debug},
	}

	c.wake = newWakeSignal()
	c.frontier = newFrontier()
	c.pool = newPool(opt.NumWorkers, c.wake.broadcast)

	return c
}

// recordError appends err to the error list under its own lock, distinct
// from the coordinator's map lock so error bookkeeping never contends
// with merge operations.
func (c *coordinator) recordError(err error) {
	c.errMu.Lock()
	defer c.errMu.Unlock()

	c.errs = append(c.errs, err)
}

// snapshotProgress returns the running dirs/files/bytes counters.
func (c *coordinator) snapshotProgress() (dirs, files, bytes int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.progress.dirs, c.progress.files, c.progress.bytes
}

// run drives the producer loop until the frontier is empty and no
// scanner task is in flight, then tears down the pool and returns the
// accumulated result.
func (c *coordinator) run(ctx context.Context, root string) *Result {
	c.ctx = ctx

	c.frontier.push(root, "")
	c.wake.broadcast()

	for {
		select {
		case <-ctx.Done():
			c.drainRemaining()

			goto done
		default:
		}

		c.wake.waitUntil(func() bool {
			return !c.frontier.isEmpty() || c.pool.activeJobsCount() == 0
		})

		// activeJobs is read first: once it is zero no task is left to push,
		// so a frontier seen empty afterwards stays empty.
		if c.pool.activeJobsCount() == 0 && c.frontier.isEmpty() {
			break
		}

		entry, ok := c.frontier.popLIFO()
		if !ok {
			continue
		}

		path, parent := entry.path, entry.parentPath
		c.pool.submit(func() {
			c.scanAndMerge(path, parent)
		})
	}

done:
	c.pool.shutdown()

	c.errMu.Lock()
	errs := append([]error(nil), c.errs...)
	c.errMu.Unlock()

	return &Result{
		Completed: c.completed,
		Errors:    errs,
	}
}

// drainRemaining empties the frontier without scanning, used only when
// the caller's context is cancelled mid-traversal.
func (c *coordinator) drainRemaining() {
	for {
		if _, ok := c.frontier.popLIFO(); !ok {
			return
		}
	}
}

// scanAndMerge is SCAN_AND_MERGE: it runs the scan outside any lock, then
// merges the resulting DirRecord into the completed map under c.mu,
// applying and leaving credits per SPEC_FULL.md §4.5.
func (c *coordinator) scanAndMerge(path, parent string) {
	record, err := scan(c.ctx, path, parent, c.skip, c.log)
	if err != nil {
		c.recordError(err)

		return
	}

	c.mu.Lock()

	if credit, ok := c.deferred[record.Path]; ok {
		record.SubDirTotalSize += credit
		record.TotalSize += credit
		delete(c.deferred, record.Path)
	}

	for _, child := range record.SubDirPaths {
		c.frontier.push(child, record.Path)
	}

	// Credit every already-inserted ancestor, since each has already
	// reported its own total upward; the first ancestor not yet inserted
	// takes the credit as deferred and absorbs it at its own insertion.
	for ancestor := record.ParentPath; ancestor != ""; {
		ancestorRecord, ok := c.completed[ancestor]
		if !ok {
			c.deferred[ancestor] += record.TotalSize

			break
		}

		ancestorRecord.SubDirTotalSize += record.TotalSize
		ancestorRecord.TotalSize += record.TotalSize
		ancestor = ancestorRecord.ParentPath
	}

	c.completed[record.Path] = record

	c.progress.dirs++
	c.progress.files += int64(record.NumFiles)
	c.progress.bytes += record.FileTotalSize

	c.mu.Unlock()

	c.wake.broadcast()
}
