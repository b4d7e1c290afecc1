// Package lineage grows random, demographically plausible family trees and
// answers questions about them.
//
// 🌳 What is lineage?
//
//	Two founders born in 1950, a set of per-decade demographic tables, and a
//	breadth-first generator that keeps adding children and married-in spouses
//	until nobody can be born before the horizon (at most 2120):
//		• Tables: life expectancy, first names, gender mix, surnames, birth and marriage rates
//		• People: sampled death year, first name, surname and partner
//		• Tree: FIFO expansion, per-couple child counts, fertile-window birth years
//		• Queries: totals, births and living population per decade, duplicate names, generations
//
// ✨ Why lineage?
//
//   - Reproducible: one seeded *rand.Rand drives every draw
//   - Strict: missing table rows are errors, never silent fallbacks
//   - Observable: slog records for every run, hooks on every birth
//
// Packages:
//
//	demography/  table types, decade keys, CSV loader, validation
//	dataset/     embedded default tables (1950s–2120s)
//	person/      Person, partnership and parent/child links
//	factory/     sampling of individuals and partners
//	kinship/     ID-level relation graph: generations, ancestry, cycle check
//	tree/        generation and the query engine
//	config/      environment and .env configuration, logger construction
//	cmd/lineage  interactive menu
//
// Quick picture:
//
//	Desmond Jones ═ Molly Smith          generation 0
//	        ┌───────┴───────┐
//	   Ann Jones ═ Tom Reed  Lee Smith   generation 1
//	        │
//	    Eva Smith                        generation 2
//
//	go run ./cmd/lineage -seed 42
package lineage
