package factory

import "errors"

// Sampling constants.
const (
	// MaxYear is the last year covered by the demographic tables.
	MaxYear = 2120

	// LifeJitter bounds the uniform offset applied to life expectancy.
	LifeJitter = 10

	// PartnerAgeGap bounds the uniform offset between partners' birth years.
	PartnerAgeGap = 10

	// MinLifespan is the shortest lifespan a person can be given.
	MinLifespan = 1
)

var (
	// ErrNilTables is returned by New when no tables are supplied.
	ErrNilTables = errors.New("factory: tables are nil")

	// ErrNeedRand is returned by New when no random source is supplied.
	ErrNeedRand = errors.New("factory: rng is required")

	// ErrNoSurnames indicates a descendant was requested with an empty surname pool.
	ErrNoSurnames = errors.New("factory: descendant needs founder surnames")

	// ErrBadWeights indicates a weighted list with no positive mass or a negative weight.
	ErrBadWeights = errors.New("factory: weights must be non-negative with positive sum")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("factory: invalid option")
)

// Option configures a Factory.
type Option func(*Factory)

// WithHorizon sets the last year in which a partner may be born.
// Values above MaxYear are rejected by New with ErrOptionViolation.
func WithHorizon(year int) Option {
	return func(f *Factory) {
		f.horizon = year
	}
}
