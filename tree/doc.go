// Package tree grows a multi-generational family tree from two founders and
// answers aggregate queries over the result.
//
// Generation is a breadth-first expansion over a FIFO work queue seeded with
// both founders. Each dequeued person not yet expanded (together with their
// partner, since a couple bears one set of children) draws a number of
// children from the birth decade's birth rate, spreads their birth years over
// the elder parent's fertile window, and creates each child, optionally with
// a spouse who married in. Children and spouses are queued for their own
// expansion. Births past the horizon (at most 2120) are skipped, which bounds
// the queue: every generation starts at least 25 years after the previous.
//
// Rules:
//
//	children  U{max(0,⌈b−1.5⌉) .. ⌈b+1.5⌉}, one fewer (floored at 0) without a partner
//	years     fertile window [elder+25, elder+45]; one child at a uniform year,
//	          several evenly spaced (integer even split, no randomness)
//
// After the queue drains the alive-in-decade index is built from every
// person's birth and death years. The tree is then read-only:
//
//	TotalCount, CountByDecade, AliveCountByDecade, DuplicateNames,
//	Generations, IsAncestor, Ancestors, Verify
//
// Randomness comes from a single *rand.Rand owned by the Tree (WithSeed or
// WithRand); without one a time-based seed is used and runs differ.
//
// A Tree is not safe for concurrent mutation; queries after Generate may be
// called from any goroutine.
package tree
