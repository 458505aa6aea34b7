// Package rng provides RandomSource implementations for the grouping algorithm.
//
// The package includes:
//
//   - PCG: Seeded permuted congruential generator (reproducible)
//   - NewEntropy: PCG seeded from the operating system entropy source
//   - Sequence: Scripted values for deterministic tests
//
// Seeds can be given as decimal numbers or arbitrary phrases; see ParseSeed.
package rng
