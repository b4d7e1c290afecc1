package demography_test

import (
	"testing/fstest"

	"github.com/katalvlaran/lineage/demography"
)

// fixtureFS is a minimal, well-formed table set covering 1950–1969.
func fixtureFS() fstest.MapFS {
	return fstest.MapFS{
		demography.FileLifeExpectancy: {Data: []byte("Year,LifeExpectancy\n1950,68.2\n1955,69.5\n1960,70.1\n")},
		demography.FileFirstNames: {Data: []byte("decade,gender,name,frequency\n" +
			"1950s,male,James,0.05\n1950s,male,John,0.04\n1950s,female,Mary,0.06\n" +
			"\n" +
			"1960s,male,Michael,0.05\n1960s,female,Lisa,0.05\n")},
		demography.FileGender: {Data: []byte("decade,gender,probability\n" +
			"1950s,male,0.51\n1950s,female,0.49\n1960s,male,0.5\n1960s,female,0.5\n")},
		demography.FileLastNames: {Data: []byte("Decade,Rank,LastName\n" +
			"1950s,1,Smith\n1950s,2,Johnson\n1950s,3,Overflow\n1960s,1,Brown\n")},
		demography.FileRankProb: {Data: []byte("0.6,0.4\n")},
		demography.FileRates:    {Data: []byte("decade,birth_rate,marriage_rate\n1950s,3.1,0.86\n1960s,2.9,0.8\n")},
	}
}
