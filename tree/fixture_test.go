package tree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lineage/dataset"
	"github.com/katalvlaran/lineage/demography"
	"github.com/katalvlaran/lineage/tree"
)

// flatTables covers 1950–2120 with the same rates in every decade.
func flatTables(birth, marriage float64) *demography.Tables {
	t := demography.NewTables()
	for y := tree.FounderYear; y <= tree.MaxYear; y++ {
		t.Life[y] = 75
	}
	t.RankProbability = []float64{0.6, 0.4}
	for _, d := range demography.DecadesBetween(tree.FounderYear, tree.MaxYear) {
		t.First[d] = map[string][]demography.Weighted{
			"male":   {{Name: "Adam", Weight: 1}, {Name: "Ben", Weight: 1}},
			"female": {{Name: "Cara", Weight: 1}, {Name: "Dana", Weight: 1}},
		}
		t.Gender[d] = []demography.Weighted{{Name: "male", Weight: 0.5}, {Name: "female", Weight: 0.5}}
		t.Last[d] = []demography.RankedName{{Name: "Green", Rank: 1}, {Name: "Hill", Rank: 2}}
		t.Rate[d] = demography.Rates{Birth: birth, Marriage: marriage}
	}

	return t
}

// realTables loads the embedded dataset.
func realTables(t testing.TB) *demography.Tables {
	t.Helper()
	tables, err := demography.Load(dataset.FS())
	require.NoError(t, err)

	return tables
}

// grown returns a generated tree, failing the test on any error.
func grown(t testing.TB, tables *demography.Tables, opts ...tree.Option) *tree.Tree {
	t.Helper()
	tr, err := tree.New(tables, opts...)
	require.NoError(t, err)
	require.NoError(t, tr.Generate())

	return tr
}
