package demography

import (
	"fmt"
	"sort"
)

// LifeExpectancy returns the expected lifespan for someone born in year.
//
// When year itself is absent the nearest known year is used; on a tie the
// earlier year wins. Returns ErrEmptyTable if no years are known.
// Complexity: O(1) on a hit, O(Y) on a miss (Y = known years).
func (t *Tables) LifeExpectancy(year int) (float64, error) {
	if le, ok := t.Life[year]; ok {
		return le, nil
	}
	if len(t.Life) == 0 {
		return 0, fmt.Errorf("life expectancy for %d: %w", year, ErrEmptyTable)
	}

	best, bestDist := 0, -1
	for y := range t.Life {
		dist := y - year
		if dist < 0 {
			dist = -dist
		}
		if bestDist < 0 || dist < bestDist || (dist == bestDist && y < best) {
			best, bestDist = y, dist
		}
	}

	return t.Life[best], nil
}

// FirstNames returns the weighted first names for decade and gender.
func (t *Tables) FirstNames(decade, gender string) ([]Weighted, error) {
	byGender, ok := t.First[decade]
	if !ok {
		return nil, fmt.Errorf("first names %s: %w", decade, ErrMissingDecade)
	}
	names, ok := byGender[gender]
	if !ok || len(names) == 0 {
		return nil, fmt.Errorf("first names %s/%s: %w", decade, gender, ErrMissingGender)
	}

	return names, nil
}

// GenderWeights returns the probability mass over gender categories for decade.
func (t *Tables) GenderWeights(decade string) ([]Weighted, error) {
	w, ok := t.Gender[decade]
	if !ok || len(w) == 0 {
		return nil, fmt.Errorf("gender probability %s: %w", decade, ErrMissingDecade)
	}

	return w, nil
}

// Surnames returns the decade's surnames weighted by rank probability.
// Only ranks covered by RankProbability participate; order follows the
// loaded surname list.
// Complexity: O(R) with R = ranked names in the decade.
func (t *Tables) Surnames(decade string) ([]Weighted, error) {
	ranked, ok := t.Last[decade]
	if !ok || len(ranked) == 0 {
		return nil, fmt.Errorf("last names %s: %w", decade, ErrMissingDecade)
	}
	out := make([]Weighted, 0, len(ranked))
	for _, rn := range ranked {
		if rn.Rank < 1 || rn.Rank > len(t.RankProbability) {
			continue
		}
		out = append(out, Weighted{Name: rn.Name, Weight: t.RankProbability[rn.Rank-1]})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("last names %s: no rank has a probability: %w", decade, ErrEmptyTable)
	}

	return out, nil
}

// Rates returns the birth and marriage rates for decade.
func (t *Tables) Rates(decade string) (Rates, error) {
	r, ok := t.Rate[decade]
	if !ok {
		return Rates{}, fmt.Errorf("birth/marriage rates %s: %w", decade, ErrMissingDecade)
	}

	return r, nil
}

// Validate checks that every decade touched by [from, to] is fully covered
// and that values lie in range:
//   - gender row present, and first names for each gender it lists;
//   - surnames with at least one weighted rank;
//   - rates present, marriage rate in [0,1], birth rate ≥ 0;
//   - life expectancy table non-empty with positive values.
//
// The first violation found is returned, decades in chronological order.
func (t *Tables) Validate(from, to int) error {
	if len(t.Life) == 0 {
		return fmt.Errorf("life expectancy: %w", ErrEmptyTable)
	}
	years := make([]int, 0, len(t.Life))
	for y := range t.Life {
		years = append(years, y)
	}
	sort.Ints(years)
	for _, y := range years {
		if t.Life[y] <= 0 {
			return fmt.Errorf("life expectancy %d = %.2f: %w", y, t.Life[y], ErrInvalidValue)
		}
	}

	for _, d := range DecadesBetween(from, to) {
		genders, err := t.GenderWeights(d)
		if err != nil {
			return err
		}
		for _, g := range genders {
			if _, err = t.FirstNames(d, g.Name); err != nil {
				return err
			}
		}
		if _, err = t.Surnames(d); err != nil {
			return err
		}
		r, err := t.Rates(d)
		if err != nil {
			return err
		}
		if r.Marriage < 0 || r.Marriage > 1 {
			return fmt.Errorf("marriage rate %s = %.3f: %w", d, r.Marriage, ErrInvalidValue)
		}
		if r.Birth < 0 {
			return fmt.Errorf("birth rate %s = %.3f: %w", d, r.Birth, ErrInvalidValue)
		}
	}

	return nil
}
