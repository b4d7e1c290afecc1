package tree

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/lineage/factory"
	"github.com/katalvlaran/lineage/person"
)

// Generation constants.
const (
	// FounderYear is the birth year of both founders.
	FounderYear = 1950

	// MaxYear is the last year anyone can be born in.
	MaxYear = factory.MaxYear

	// FertileStart and FertileEnd bound the fertile window, in years after
	// the elder parent's birth.
	FertileStart = 25
	FertileEnd   = 45

	// ChildSpread is the ± band around the birth rate for children drawn.
	ChildSpread = 1.5
)

// Sentinel errors.
var (
	// ErrNilTables is returned by New without tables.
	ErrNilTables = errors.New("tree: tables are nil")

	// ErrAlreadyGenerated is returned by a second Generate call.
	ErrAlreadyGenerated = errors.New("tree: already generated")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("tree: invalid option supplied")

	// ErrInvariantViolated is returned by Verify on the first broken invariant.
	ErrInvariantViolated = errors.New("tree: invariant violated")

	// ErrForeignPerson indicates a person that does not belong to this tree.
	ErrForeignPerson = errors.New("tree: person not in tree")
)

// Founder fixes the identity of one of the two founders.
type Founder struct {
	FirstName string
	LastName  string
	Gender    person.Gender
}

// Default founders.
var (
	DefaultFounderA = Founder{FirstName: "Desmond", LastName: "Jones", Gender: person.Male}
	DefaultFounderB = Founder{FirstName: "Molly", LastName: "Smith", Gender: person.Female}
)

// Option configures a Tree.
type Option func(*Options)

// Options holds the resolved configuration of a Tree.
type Options struct {
	// Rand is the single random source for all draws.
	Rand *rand.Rand

	// Logger receives progress and summary records.
	Logger *slog.Logger

	// Horizon is the last admissible birth year, in (FounderYear, MaxYear].
	Horizon int

	// Founders are the two root individuals.
	Founders [2]Founder

	// OnBirth is called after each child is added, with the child's
	// generation (founders are generation 0).
	OnBirth func(child *person.Person, generation int)

	seed   int64
	seeded bool
	err    error
}

// DefaultOptions returns options with a discarding logger, horizon MaxYear,
// the default founders and no random source (New will seed from time).
func DefaultOptions() Options {
	return Options{
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Horizon:  MaxYear,
		Founders: [2]Founder{DefaultFounderA, DefaultFounderB},
		OnBirth:  func(*person.Person, int) {},
	}
}

// WithSeed uses a new source seeded with seed, making generation reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
		o.seed, o.seeded = seed, true
	}
}

// WithRand uses r for every draw. Panics on nil; use WithSeed for a fresh source.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("tree: WithRand(nil)")
	}
	return func(o *Options) {
		o.Rand = r
		o.seeded = false
	}
}

// WithLogger sets the structured logger; nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithHorizon stops births after year. It must lie in (FounderYear, MaxYear].
func WithHorizon(year int) Option {
	return func(o *Options) {
		if year <= FounderYear || year > MaxYear {
			o.err = fmt.Errorf("%w: horizon %d not in (%d,%d]", ErrOptionViolation, year, FounderYear, MaxYear)
			return
		}
		o.Horizon = year
	}
}

// WithFounders replaces the default founders. Names must be non-empty.
func WithFounders(a, b Founder) Option {
	return func(o *Options) {
		for _, f := range []Founder{a, b} {
			if f.FirstName == "" || f.LastName == "" || f.Gender == "" {
				o.err = fmt.Errorf("%w: founder %+v incomplete", ErrOptionViolation, f)
				return
			}
		}
		o.Founders = [2]Founder{a, b}
	}
}

// WithOnBirth registers a hook called for every child created; nil is ignored.
func WithOnBirth(fn func(child *person.Person, generation int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnBirth = fn
		}
	}
}
