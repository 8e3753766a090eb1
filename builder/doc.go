// Package builder generates synthetic rail networks for tests, benchmarks
// and demos. It follows a functional-options style: BuildNetwork creates a
// core.Graph, resolves a builder configuration from BuilderOption values
// and applies Constructor closures in order.
//
// Constructors:
//
//   - Corridor(line, n):          n stations strung along one line.
//   - Loop(line, n):              a circle line of n stations (n ≥ 3).
//   - Grid(rows, cols):           stations "r,c"; every row is line "H<r>",
//     every column is line "V<c>", so any two stations are at most one
//     transit apart.
//   - RandomSparse(n, p, lines):  Erdős–Rényi style G(n,p) over n stations,
//     each edge assigned to one of lines lines "R0".."R<lines-1>".
//
// Options:
//
//   - WithIDScheme(fn):   station naming for Corridor, Loop and RandomSparse.
//   - WithSeed(seed):     deterministic RNG for stochastic constructors.
//   - WithRand(r):        caller-provided RNG.
//   - WithSegmentFn(fn):  per-edge distance/cost/duration generator.
//
// Guarantees:
//
//   - Determinism: the same options, seed and constructor order yield an
//     identical graph, edge IDs included.
//   - Constructors return sentinel errors wrapped with their method name;
//     option constructors panic on programmer errors (nil functions).
package builder
