// Package render turns a completed directory-walk map into the text
// reports described in SPEC_FULL.md §6: tree, path listing, and
// per-directory info block. Every renderer here is a pure function over
// its inputs — it reads the completed map but never mutates it, and
// invoking the same renderer twice on the same map yields byte-identical
// output (SPEC_FULL.md §8, P7).
package render
