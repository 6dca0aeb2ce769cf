// Package builder places canonical topologies onto a core.Graph canvas:
// paths, cycles, stars, wheels, complete graphs, grids, binary trees and
// seeded random sparse graphs. Every constructor computes node positions
// from the graph's bounds and goes through the regular AddNode/AddEdge
// admission rules, so a layout that does not fit is reported instead of
// squeezed.
//
// Key components:
//
//   - Constructor: func(g, cfg) error, applied in order by BuildGraph or Apply.
//   - BuilderOption: WithSpacing, WithRadius, WithCenter, WithSeed, WithRand.
//   - Preset: a serializable {kind, n, rows, cols, depth, p, seed} description
//     used by scenario files and the HTTP API.
//
// Guarantees:
//
//   - Determinism: same graph bounds, options, seed and constructor order
//     give identical nodes, labels and edges.
//   - Constructors never panic at runtime; option constructors panic on
//     meaningless values (negative spacing, nil RNG).
//   - Labels follow placement order (A, B, C, ...), as for hand-placed nodes.
package builder
