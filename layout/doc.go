// Package layout places the vertices of a core.Graph in the plane and
// exports the result for a drawing tool.
//
// Spring is the Fruchterman–Reingold force-directed algorithm:
//
//  1. Seed every vertex at a pseudo-random point in [0,1)² (sorted vertex
//     order, seeded RNG, so a fixed seed gives a fixed picture).
//  2. For each iteration, every pair repels with force k²/d and every edge
//     attracts with force d²/k. Each vertex moves along its net force by at
//     most the current temperature t, which cools linearly to zero.
//  3. Center on the mean and rescale so the largest coordinate is ±scale.
//
// Defaults: seed 999999, 50 iterations, k = 1/√n, scale 1.
//
// Export bundles the graph and positions into a Drawing whose node list
// carries each vertex's kind (person or group), ready for WriteJSON or
// WriteDOT (Graphviz, neato -n).
package layout
