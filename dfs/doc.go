// Package dfs decomposes depth-first search over a core.Adjacency into a
// pull-based sequence of traversal.Step values, and offers the colour-marking
// structure checks (cycle detection, topological order) used by the offline
// classifier.
//
// Key features:
//   - New(adj, start, opts...): resumable step walker with a LIFO stack
//     frontier.
//   - Neighbors are pushed in reverse adjacency order, so the first-listed
//     neighbor is popped first and descent reads left-to-right.
//   - A node already visited is never visited again; a node already on the
//     stack is never pushed twice.
//   - HasCycle(snapshot) and TopologicalOrder(adj) use White/Gray/Black
//     marking.
//
// Degenerate start:
//
//	If the start node is absent from the adjacency index, the first and only
//	step is complete, with an empty visited set and path.
//
// Complexity:
//
//   - Time:   O(V + E) walker work, plus O(V) per step for the value snapshots.
//   - Memory: O(V) walker state.
//
// Errors:
//
//   - ErrCycleDetected  TopologicalOrder found a back edge.
package dfs
