// SPDX-License-Identifier: MIT

// Package builder generates synthetic affiliation edge lists for tests,
// examples and the "generate" command.
//
// Every constructor returns a flat []network.Edge in a deterministic order
// (persons ascending, then groups ascending within a person), ready for
// network.New.
//
// Constructors:
//   - CompleteBipartite(n1, n2): every person joins every group.
//   - Chain(n):                  persons P0..P(n-1) linked through n-1 groups,
//     so the projection is a path of length n-1.
//   - DisjointPairs(n):          n groups of two private persons each; n equal
//     components for tie-break checks.
//   - RandomAffiliation(m, k, p): each (person, group) pair is kept with
//     probability p. Requires WithSeed or WithRand.
//
// Identifiers are "<personPrefix><i>" and "<groupPrefix><j>" with defaults
// "P" and "G". Option constructors panic on meaningless input; constructors
// return sentinel errors and never panic.
package builder
