// Package kinship indexes the relations of a generated population as a graph:
// directed parent→child edges plus symmetric partner links, keyed by person.ID.
//
// The graph is an index, not the source of names or years; it answers
// structural questions:
//
//	Generations(g, roots, opts...)  breadth-first generation depth from founders
//	TopologicalOrder(g)             parents-before-children order, or ErrCycleDetected
//	IsAncestor(g, a, d)             whether d descends from a
//	Ancestors(g, id)                every ancestor of id, ascending
//
// Determinism:
//
//	People() is sorted ascending; children keep insertion order; traversals
//	visit roots and people in ascending ID order, so results are stable.
//
// Concurrency:
//
//	A single sync.RWMutex guards the maps. Reads may run concurrently once
//	the population stops growing.
//
// Complexity:
//
//	AddPerson, AddParentage, Link: O(1) amortized.
//	Generations, TopologicalOrder: O(V+E). IsAncestor: O(V+E) worst case.
package kinship
