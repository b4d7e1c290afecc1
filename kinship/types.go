package kinship

import (
	"errors"
	"sync"

	"github.com/katalvlaran/lineage/person"
)

// Sentinel errors for kinship operations.
var (
	// ErrGraphNil is returned when a nil *Graph is passed to a traversal.
	ErrGraphNil = errors.New("kinship: graph is nil")

	// ErrPersonNotFound indicates an operation referenced an unknown ID.
	ErrPersonNotFound = errors.New("kinship: person not found")

	// ErrNegativeID indicates an ID below zero.
	ErrNegativeID = errors.New("kinship: negative id")

	// ErrSelfRelation indicates a parentage or partnership of a person with themself.
	ErrSelfRelation = errors.New("kinship: self relation not allowed")

	// ErrTooManyParents indicates a third parent for the same child.
	ErrTooManyParents = errors.New("kinship: child already has two parents")

	// ErrAlreadyPartnered indicates a link to someone already partnered elsewhere.
	ErrAlreadyPartnered = errors.New("kinship: already partnered")

	// ErrCycleDetected indicates a person reachable from themself via parent→child edges.
	ErrCycleDetected = errors.New("kinship: cycle detected")

	// ErrOptionViolation indicates an invalid traversal option.
	ErrOptionViolation = errors.New("kinship: invalid option supplied")
)

// maxParents bounds the parent list of any child.
const maxParents = 2

// Graph is the kinship index.
//
// children[p] lists p's children in insertion order; parents[c] lists at most
// two parents; partner holds both directions of every link.
type Graph struct {
	mu sync.RWMutex

	people   map[person.ID]struct{}
	children map[person.ID][]person.ID
	parents  map[person.ID][]person.ID
	partner  map[person.ID]person.ID
	edges    int
}

// NewGraph returns an empty kinship graph.
func NewGraph() *Graph {
	return &Graph{
		people:   make(map[person.ID]struct{}),
		children: make(map[person.ID][]person.ID),
		parents:  make(map[person.ID][]person.ID),
		partner:  make(map[person.ID]person.ID),
	}
}
