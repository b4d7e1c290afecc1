package kinship_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lineage/kinship"
	"github.com/katalvlaran/lineage/person"
)

// family builds:
//
//	0 ═ 1            founders
//	 ├─ 2 ═ 3        2 is a child, 3 married in
//	 │   └─ 5
//	 └─ 4            single child
//	      └─ 6       child of a single parent
func family(t testing.TB) *kinship.Graph {
	g := kinship.NewGraph()
	for id := person.ID(0); id <= 6; id++ {
		require.NoError(t, g.AddPerson(id))
	}
	require.NoError(t, g.Link(0, 1))
	require.NoError(t, g.Link(2, 3))
	for _, e := range [][2]person.ID{{0, 2}, {1, 2}, {0, 4}, {1, 4}, {2, 5}, {3, 5}, {4, 6}} {
		require.NoError(t, g.AddParentage(e[0], e[1]))
	}

	return g
}
