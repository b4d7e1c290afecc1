package tree_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lineage/person"
	"github.com/katalvlaran/lineage/tree"
)

// QuerySuite runs the read-side queries against one generated tree.
type QuerySuite struct {
	suite.Suite
	tr *tree.Tree
}

func (s *QuerySuite) SetupTest() {
	s.tr = grown(s.T(), realTables(s.T()), tree.WithSeed(2026), tree.WithHorizon(2090))
}

func (s *QuerySuite) TestDuplicateNames() {
	names := map[string]int{}
	for _, p := range s.tr.People() {
		names[p.FullName()]++
	}

	dup := s.tr.DuplicateNames()
	s.True(sort.StringsAreSorted(dup))
	for _, n := range dup {
		s.GreaterOrEqual(names[n], 2, n)
	}
	want := 0
	for _, n := range names {
		if n > 1 {
			want++
		}
	}
	s.Len(dup, want)
}

func (s *QuerySuite) TestGenerationsCoverEveryone() {
	gens, err := s.tr.Generations()
	s.Require().NoError(err)

	sum := 0
	for g, n := range gens {
		s.GreaterOrEqual(g, 0)
		sum += n
	}
	s.Equal(s.tr.TotalCount(), sum)
	s.Equal(2, gens[0], "founders only")
}

func (s *QuerySuite) TestFoundersAreAncestorsOfDescendants() {
	a, b := s.tr.Founders()[0], s.tr.Founders()[1]
	for _, p := range s.tr.People()[2:] {
		_, descends := p.Parents()
		for _, f := range []*person.Person{a, b} {
			ok, err := s.tr.IsAncestor(f, p)
			s.Require().NoError(err)
			s.Equal(descends, ok, "founder %d → %d", f.ID, p.ID)
		}
		ok, err := s.tr.IsAncestor(p, a)
		s.Require().NoError(err)
		s.False(ok)
	}
}

func (s *QuerySuite) TestAncestors() {
	founders := s.tr.Founders()
	for _, p := range s.tr.People() {
		got, err := s.tr.Ancestors(p)
		s.Require().NoError(err)

		parents, descends := p.Parents()
		if !descends {
			s.Empty(got, "%d has no parents", p.ID)
			continue
		}
		s.Contains(got, founders[0])
		s.Contains(got, founders[1])
		s.Contains(got, parents.First)
		for i, a := range got {
			ok, err := s.tr.IsAncestor(a, p)
			s.Require().NoError(err)
			s.True(ok, "%d listed as ancestor of %d", a.ID, p.ID)
			if i > 0 {
				s.Less(got[i-1].ID, a.ID)
			}
		}
	}

	_, err := s.tr.Ancestors(nil)
	s.ErrorIs(err, person.ErrNilPerson)
	_, err = s.tr.Ancestors(person.New(0, 1950, 2000, "No", "Body", person.Male, nil))
	s.ErrorIs(err, tree.ErrForeignPerson)
}

func (s *QuerySuite) TestIsAncestor_Errors() {
	a := s.tr.Founders()[0]

	_, err := s.tr.IsAncestor(nil, a)
	s.ErrorIs(err, person.ErrNilPerson)

	stranger := person.New(0, 1950, 2000, "No", "Body", person.Male, nil)
	_, err = s.tr.IsAncestor(a, stranger)
	s.ErrorIs(err, tree.ErrForeignPerson)
}

func (s *QuerySuite) TestKinshipMirrorsPeople() {
	kin := s.tr.Kinship()
	s.Equal(s.tr.TotalCount(), kin.Len())
	for _, p := range s.tr.People() {
		kids, err := kin.Children(p.ID)
		s.Require().NoError(err)
		s.Len(kids, len(p.Children()))
	}
}

func TestQuerySuite(t *testing.T) {
	suite.Run(t, new(QuerySuite))
}

func TestVerify_DetectsTampering(t *testing.T) {
	cases := []struct {
		name   string
		tamper func(tr *tree.Tree)
	}{
		{"death before birth", func(tr *tree.Tree) {
			p := tr.People()[3]
			p.DeathYear = p.BirthYear
		}},
		{"child older than parent", func(tr *tree.Tree) {
			p := tr.People()[2]
			parents, _ := p.Parents()
			p.BirthYear = parents.First.BirthYear
		}},
		{"born past horizon", func(tr *tree.Tree) {
			tr.People()[0].BirthYear = tr.Horizon() + 1
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := grown(t, flatTables(3, 0.5), tree.WithSeed(6), tree.WithHorizon(2010))
			require.NoError(t, tr.Verify())
			require.Greater(t, tr.TotalCount(), 3)

			tc.tamper(tr)
			assert.ErrorIs(t, tr.Verify(), tree.ErrInvariantViolated)
		})
	}
}

func TestCounts_BeforeAndAfterGenerate(t *testing.T) {
	tr, err := tree.New(flatTables(2.5, 0.5), tree.WithSeed(10), tree.WithHorizon(2030))
	require.NoError(t, err)
	assert.Empty(t, tr.DuplicateNames(), "founders have distinct names")

	require.NoError(t, tr.Generate())
	byDecade := tr.CountByDecade()
	for d := range byDecade {
		assert.Contains(t, []string{"1950s", "1960s", "1970s", "1980s", "1990s", "2000s", "2010s", "2020s", "2030s"}, d)
	}
	assert.Equal(t, 2, byDecade["1950s"], "only founders are born in the 1950s")
}
