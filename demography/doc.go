// Package demography holds the decade-indexed lookup tables that drive
// stochastic family generation: life expectancy, first-name frequency by
// gender, gender probability, ranked surnames, rank→probability weights and
// birth/marriage rates.
//
// Every table except life expectancy is keyed by a decade string of the form
// "<year rounded down to a multiple of ten>s" (see Decade). Rows keep the
// order in which they were loaded so that weighted draws over them are
// reproducible for a fixed random source.
//
// Lookups never substitute defaults: a decade missing from a table is a
// data-contract violation reported as ErrMissingDecade. Callers are expected
// to Validate the span they intend to generate before drawing from it.
//
// Files:
//
//	life_expectancy.csv          Year,LifeExpectancy
//	first_names.csv              decade,gender,name,frequency
//	gender_name_probability.csv  decade,gender,probability
//	last_names.csv               Decade,Rank,LastName
//	rank_to_probability.csv      p1,p2,...,p30 (single line, no header)
//	birth_and_marriage_rates.csv decade,birth_rate,marriage_rate
//
// Load reads the set from any fs.FS; LoadDir is a shortcut for a directory.
package demography
