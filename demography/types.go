package demography

import "errors"

// Sentinel errors for table lookups and loading.
var (
	// ErrMissingDecade indicates a table has no row for the requested decade.
	ErrMissingDecade = errors.New("demography: decade not covered")

	// ErrMissingGender indicates the first-name table has no list for a gender.
	ErrMissingGender = errors.New("demography: gender not covered")

	// ErrEmptyTable indicates a table that must hold data holds none.
	ErrEmptyTable = errors.New("demography: table is empty")

	// ErrInvalidValue indicates a loaded value outside its admissible range.
	ErrInvalidValue = errors.New("demography: invalid table value")

	// ErrMalformedRecord indicates a CSV record that could not be parsed.
	ErrMalformedRecord = errors.New("demography: malformed record")

	// ErrBadDecade indicates a string that is not a canonical decade key.
	ErrBadDecade = errors.New("demography: malformed decade string")
)

// Weighted is a named entry with a sampling weight. Weights need not sum to 1;
// draws are proportional to each entry's share of the total.
type Weighted struct {
	Name   string
	Weight float64
}

// RankedName is a surname with its popularity rank (1 = most popular).
type RankedName struct {
	Name string
	Rank int
}

// Rates holds a decade's expected children per couple and the probability
// that a person born in that decade acquires a partner.
type Rates struct {
	Birth    float64
	Marriage float64
}

// Tables is the complete demographic data set consumed by the generator.
//
// The maps are keyed by decade string except Life, which is keyed by year.
// Slices preserve load order.
type Tables struct {
	// Life maps a birth year to an expected lifespan in years.
	Life map[int]float64

	// First maps decade → gender → first names weighted by frequency.
	First map[string]map[string][]Weighted

	// Gender maps decade → probability mass over gender categories.
	Gender map[string][]Weighted

	// Last maps decade → ranked surnames.
	Last map[string][]RankedName

	// RankProbability[i] is the weight of rank i+1.
	RankProbability []float64

	// Rate maps decade → birth and marriage rates.
	Rate map[string]Rates
}

// NewTables returns an empty, ready-to-fill Tables.
func NewTables() *Tables {
	return &Tables{
		Life:   make(map[int]float64),
		First:  make(map[string]map[string][]Weighted),
		Gender: make(map[string][]Weighted),
		Last:   make(map[string][]RankedName),
		Rate:   make(map[string]Rates),
	}
}
