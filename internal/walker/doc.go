// Package walker implements the concurrent directory-inventory engine.
//
// A fixed-size worker pool drains a LIFO frontier of directory paths,
// scans each directory's immediate entries, and merges the resulting
// DirRecord into a shared completed map. Because a child directory may
// finish scanning before or after its parent is itself inserted into
// that map, size totals are propagated through a deferred-credit map
// that the coordinator drains at insertion time. See Walk for the
// orchestration of frontier, pool, and coordinator.
package walker
