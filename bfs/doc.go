// Package bfs decomposes breadth-first search over a core.Adjacency into a
// pull-based sequence of traversal.Step values.
//
// What
//
//   - The frontier is a FIFO queue seeded with the start node.
//   - Each Next pops the front node and emits a visit step carrying the queue
//     after the pop, then emits one explore step per newly queued neighbor,
//     carrying the queue after the push.
//   - A node already visited is never visited again; a node already queued is
//     never queued twice.
//   - When the queue empties, a single complete step closes the walk.
//
// Determinism
//
//	Neighbors are examined in adjacency order (edge-creation order), so the
//	same snapshot and start node always yield an identical step sequence.
//	Visit order is non-decreasing in edge distance from the start node.
//
// Degenerate start
//
//	If the start node is absent from the adjacency index, the first and only
//	step is complete, with an empty visited set and path. This is not an error.
//
// Complexity (V = nodes, E = adjacency entries)
//
//   - Time:   O(V + E) walker work, plus O(V) per step for the value snapshots.
//   - Memory: O(V) walker state.
package bfs
