package kinship

import (
	"fmt"

	"github.com/katalvlaran/lineage/person"
)

// Option configures Generations.
// Invalid values are recorded and surfaced as ErrOptionViolation.
type Option func(*WalkOptions)

// WalkOptions holds hooks and limits for Generations.
type WalkOptions struct {
	// OnVisit is called for every person in visit order with their
	// generation. Returning an error aborts the walk.
	OnVisit func(id person.ID, generation int) error

	// MaxDepth, if > 0, stops descending past this generation.
	MaxDepth int

	err error
}

// DefaultWalkOptions returns options with no hook and no depth limit.
func DefaultWalkOptions() WalkOptions {
	return WalkOptions{
		OnVisit:  func(person.ID, int) error { return nil },
		MaxDepth: 0,
	}
}

// WithOnVisit registers a visit hook; nil is ignored.
func WithOnVisit(fn func(id person.ID, generation int) error) Option {
	return func(o *WalkOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the walk to generations ≤ d. d == 0 means no limit.
func WithMaxDepth(d int) Option {
	return func(o *WalkOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// GenerationResult is the outcome of a Generations walk.
//   - Order: people in visit order.
//   - Depth: generation of each reached person (roots are 0).
//   - Via: the person through whom each non-root was reached: a parent for
//     descendants, the spouse for partners who married in.
type GenerationResult struct {
	Order []person.ID
	Depth map[person.ID]int
	Via   map[person.ID]person.ID
}

// Counts returns the number of people per generation.
func (r *GenerationResult) Counts() map[int]int {
	out := make(map[int]int)
	for _, d := range r.Depth {
		out[d]++
	}

	return out
}

type walkItem struct {
	id    person.ID
	depth int
}

type walker struct {
	g     *Graph
	opts  WalkOptions
	queue []walkItem
	res   *GenerationResult
}

// Generations walks g breadth-first from roots. A partner shares their
// spouse's generation; a child is one generation below the first parent
// reached. Roots are deduplicated and must exist (ErrPersonNotFound).
func Generations(g *Graph, roots []person.ID, opts ...Option) (*GenerationResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Apply options
	o := DefaultWalkOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	// Validate roots
	if err := g.requireLocked(roots...); err != nil {
		return nil, err
	}

	// Prepare walker
	n := len(g.people)
	w := &walker{
		g:     g,
		opts:  o,
		queue: make([]walkItem, 0, n),
		res: &GenerationResult{
			Order: make([]person.ID, 0, n),
			Depth: make(map[person.ID]int, n),
			Via:   make(map[person.ID]person.ID, n),
		},
	}
	// Seed queue; duplicate roots collapse
	for _, r := range roots {
		if _, seen := w.res.Depth[r]; !seen {
			w.enqueue(r, 0, -1)
		}
	}

	return w.res, w.loop()
}

func (w *walker) enqueue(id person.ID, depth int, via person.ID) {
	w.res.Depth[id] = depth
	if via >= 0 {
		w.res.Via[id] = via
	}
	w.queue = append(w.queue, walkItem{id: id, depth: depth})
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// Dequeue
		item := w.queue[0]
		w.queue = w.queue[1:]

		// Visit
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("kinship: OnVisit at %d: %w", item.id, err)
		}

		// Partner stays on this generation
		if p, ok := w.g.partner[item.id]; ok {
			if _, seen := w.res.Depth[p]; !seen {
				w.enqueue(p, item.depth, item.id)
			}
		}
		// Children go one generation down, unless capped
		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, c := range w.g.children[item.id] {
			if _, seen := w.res.Depth[c]; !seen {
				w.enqueue(c, next, item.id)
			}
		}
	}

	return nil
}
