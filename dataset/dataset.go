// Package dataset embeds the default demographic tables shipped with lineage.
//
// The six CSV files follow the layout read by demography.Load and cover every
// year and decade from 1950 through 2120, the span a generated tree can reach.
package dataset

import (
	"embed"
	"io/fs"
)

//go:embed *.csv
var files embed.FS

// FS returns the embedded table files rooted at the directory containing them.
func FS() fs.FS {
	return files
}
