// Package traversal defines the contract shared by the step-by-step graph
// walkers in packages bfs and dfs.
//
// A walk is a cooperative, resumable, single-consumer pull sequence: nothing
// runs until Next is called, no goroutines are started, and the consumer may
// abandon the sequence at any point without cleanup.
//
// Every call to Next yields one Step, an immutable value snapshot of the
// walk: the step kind (visit, explore, complete), the node involved, the full
// frontier (queue for BFS, stack for DFS), the visited set and the path of
// visited nodes in visitation order. Slices inside a Step are never shared
// with the walker, so later progress never alters an earlier Step.
//
// Options (shared by both walkers):
//
//   - WithOnVisit(fn)    observe each visit with its discovery depth.
//   - WithOnExplore(fn)  observe each frontier push with its discovery depth.
//
// Errors:
//
//   - ErrUnknownAlgorithm  ParseAlgorithm was given a name other than bfs or dfs.
package traversal
