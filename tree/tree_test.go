package tree_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lineage/demography"
	"github.com/katalvlaran/lineage/person"
	"github.com/katalvlaran/lineage/tree"
)

func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name   string
		tables func() *demography.Tables
		opts   []tree.Option
		want   error
	}{
		{"nil tables", func() *demography.Tables { return nil }, nil, tree.ErrNilTables},
		{"horizon at founder year", func() *demography.Tables { return flatTables(2, 0.5) },
			[]tree.Option{tree.WithHorizon(tree.FounderYear)}, tree.ErrOptionViolation},
		{"horizon past max", func() *demography.Tables { return flatTables(2, 0.5) },
			[]tree.Option{tree.WithHorizon(tree.MaxYear + 1)}, tree.ErrOptionViolation},
		{"incomplete founder", func() *demography.Tables { return flatTables(2, 0.5) },
			[]tree.Option{tree.WithFounders(tree.Founder{FirstName: "Ann"}, tree.DefaultFounderB)}, tree.ErrOptionViolation},
		{"missing rates", func() *demography.Tables {
			tb := flatTables(2, 0.5)
			delete(tb.Rate, "2010s")
			return tb
		}, nil, demography.ErrMissingDecade},
		{"unknown founder gender", func() *demography.Tables { return flatTables(2, 0.5) },
			[]tree.Option{tree.WithFounders(tree.Founder{FirstName: "A", LastName: "B", Gender: "other"}, tree.DefaultFounderB)},
			demography.ErrMissingGender},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tree.New(tc.tables(), tc.opts...)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNew_MissingDecadePastHorizonIsFine(t *testing.T) {
	tb := flatTables(2, 0.5)
	delete(tb.Rate, "2100s")

	_, err := tree.New(tb, tree.WithHorizon(2060), tree.WithSeed(1))
	assert.NoError(t, err)
}

func TestNew_Founders(t *testing.T) {
	tr, err := tree.New(flatTables(2, 0.5), tree.WithSeed(3))
	require.NoError(t, err)

	a, b := tr.Founders()[0], tr.Founders()[1]
	assert.Equal(t, person.ID(0), a.ID)
	assert.Equal(t, person.ID(1), b.ID)
	assert.Equal(t, "Desmond Jones", a.FullName())
	assert.Equal(t, "Molly Smith", b.FullName())
	assert.Equal(t, person.Male, a.Gender)
	assert.Equal(t, person.Female, b.Gender)
	for _, f := range []*person.Person{a, b} {
		assert.Equal(t, tree.FounderYear, f.BirthYear)
		assert.Greater(t, f.DeathYear, f.BirthYear)
		_, hasParents := f.Parents()
		assert.False(t, hasParents)
	}
	assert.Same(t, b, a.Partner())
	assert.Same(t, a, b.Partner())

	assert.Equal(t, 2, tr.TotalCount())
	assert.Equal(t, map[string]int{"1950s": 2}, tr.CountByDecade())
	assert.Empty(t, tr.AliveCountByDecade())
	assert.False(t, tr.Generated())
	assert.NoError(t, tr.Verify())
}

func TestNew_CustomFounders(t *testing.T) {
	x := tree.Founder{FirstName: "Ann", LastName: "Lee", Gender: person.Female}
	y := tree.Founder{FirstName: "Bea", LastName: "Kim", Gender: person.Female}
	tr := grown(t, flatTables(2.5, 0.6), tree.WithSeed(5), tree.WithHorizon(2040), tree.WithFounders(x, y))

	assert.Equal(t, "Ann Lee", tr.Founders()[0].FullName())
	assert.Equal(t, "Bea Kim", tr.Founders()[1].FullName())
	for _, p := range tr.People() {
		if _, ok := p.Parents(); ok {
			assert.Contains(t, []string{"Lee", "Kim"}, p.LastName)
		}
	}
}

func TestSeed(t *testing.T) {
	tr, err := tree.New(flatTables(2, 0.5), tree.WithSeed(42))
	require.NoError(t, err)
	seed, ok := tr.Seed()
	assert.True(t, ok)
	assert.Equal(t, int64(42), seed)

	tr, err = tree.New(flatTables(2, 0.5), tree.WithRand(rand.New(rand.NewSource(1))))
	require.NoError(t, err)
	_, ok = tr.Seed()
	assert.False(t, ok)

	tr, err = tree.New(flatTables(2, 0.5))
	require.NoError(t, err)
	_, ok = tr.Seed()
	assert.True(t, ok, "default source is time-seeded and reported")
}

func TestWithRand_NilPanics(t *testing.T) {
	assert.Panics(t, func() { tree.WithRand(nil) })
}

func TestPerson_Lookup(t *testing.T) {
	tr := grown(t, flatTables(2.5, 0.6), tree.WithSeed(9), tree.WithHorizon(2040))

	for i, p := range tr.People() {
		got, ok := tr.Person(person.ID(i))
		require.True(t, ok)
		assert.Same(t, p, got)
	}
	_, ok := tr.Person(-1)
	assert.False(t, ok)
	_, ok = tr.Person(person.ID(tr.TotalCount()))
	assert.False(t, ok)
}
