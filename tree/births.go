package tree

import (
	"math"

	"github.com/katalvlaran/lineage/demography"
)

// CalculateNumChildren draws how many children a person born in birthYear
// has: uniform over [max(0,⌈b−1.5⌉), ⌈b+1.5⌉] where b is the decade's birth
// rate, minus one (floored at 0) without a partner.
func (t *Tree) CalculateNumChildren(birthYear int, hasPartner bool) (int, error) {
	r, err := t.tables.Rates(demography.Decade(birthYear))
	if err != nil {
		return 0, err
	}
	lo := int(math.Ceil(r.Birth - ChildSpread))
	if lo < 0 {
		lo = 0
	}
	hi := int(math.Ceil(r.Birth + ChildSpread))

	n := lo + t.opts.Rand.Intn(hi-lo+1)
	if !hasPartner && n > 0 {
		n--
	}

	return n, nil
}

// DistributeBirthYears spreads n birth years over the fertile window of a
// parent born in elderYear, [elderYear+FertileStart, elderYear+FertileEnd].
//
// A single child gets a uniform year in the window. Several children are
// evenly spaced from start to end inclusive, each year truncated toward the
// window start; this case draws nothing. n ≤ 0 yields nil.
func (t *Tree) DistributeBirthYears(elderYear, n int) []int {
	if n <= 0 {
		return nil
	}
	start, end := elderYear+FertileStart, elderYear+FertileEnd
	if n == 1 {
		return []int{start + t.opts.Rand.Intn(end-start+1)}
	}

	years := make([]int, n)
	span := end - start
	for i := range years {
		// integer even split: exact truncation of start + i*span/(n-1)
		years[i] = start + i*span/(n-1)
	}

	return years
}
