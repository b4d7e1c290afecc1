package demography

import (
	"fmt"
	"strconv"
	"strings"
)

// decadeSuffix is appended to the decade's first year to form its key.
const decadeSuffix = "s"

// Decade returns the canonical decade key for year, e.g. 1957 → "1950s".
// Years are floored, so -5 belongs to "-10s".
func Decade(year int) string {
	return strconv.Itoa(decadeFloor(year)) + decadeSuffix
}

// DecadeStart parses a decade key and returns its first year.
// Returns ErrBadDecade unless s is a multiple of ten followed by "s".
func DecadeStart(s string) (int, error) {
	num, ok := strings.CutSuffix(s, decadeSuffix)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrBadDecade, s)
	}
	year, err := strconv.Atoi(num)
	if err != nil || year%10 != 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadDecade, s)
	}

	return year, nil
}

// DecadesBetween lists every decade key touched by the closed year range
// [from, to] in chronological order. It returns nil when to < from.
// Complexity: O((to-from)/10).
func DecadesBetween(from, to int) []string {
	if to < from {
		return nil
	}
	first, last := decadeFloor(from), decadeFloor(to)
	out := make([]string, 0, (last-first)/10+1)
	for d := first; d <= last; d += 10 {
		out = append(out, strconv.Itoa(d)+decadeSuffix)
	}

	return out
}

// decadeFloor rounds year down to a multiple of ten.
func decadeFloor(year int) int {
	d := year / 10 * 10
	if year < 0 && year%10 != 0 {
		d -= 10
	}

	return d
}
