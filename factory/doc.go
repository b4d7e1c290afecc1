// Package factory samples individuals from demographic tables.
//
// A Factory owns an explicit *rand.Rand; nothing in the package touches
// global random state, so a seeded source reproduces every draw.
//
// Sampling rules:
//
//	death year   birth + floor(lifeExpectancy(birth)) + U{-10..10}, at least birth+1
//	first name   frequency-weighted draw from (decade, gender)
//	last name    descendant: uniform over the founders' surnames
//	             otherwise:  rank-probability-weighted draw from the decade
//	gender       weighted draw from the decade's gender row
//	partner      Bernoulli(marriage rate); partner born birth + U{-10..10}
//
// No partner is created past the horizon (default MaxYear): the tables end
// there. Partner gender is drawn independently of the original person, so
// same-gender couples occur.
package factory
