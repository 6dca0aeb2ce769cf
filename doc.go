// Package lvwalk is a step-by-step graph traversal visualizer.
//
// A user places nodes on a bounded canvas, joins them by selecting pairs,
// picks a start node and watches breadth-first or depth-first search unfold
// one step at a time, with play, pause, single-step and stop controls.
//
// Data flows one way:
//
//	core.Graph → core.Snapshot → core.BuildAdjacency → bfs/dfs Walker
//	           → playback.Controller (timed pump) → session.View → render / server
//
// Packages:
//
//	core/      — Graph, Node, Edge, spatial admission, selection, Snapshot, Adjacency
//	traversal/ — Step, Kind, Algorithm and the pull-based Sequence contract
//	bfs/       — breadth-first Walker
//	dfs/       — depth-first Walker, cycle detection and topological order
//	builder/   — canonical topologies laid out on the canvas (presets)
//	playback/  — Controller state machine, Clock, Prometheus metrics
//	session/   — pointer intents, removal invalidation, View fan-out
//	classify/  — graph-type classification: remote client and structural fallback
//	render/    — per-node visual state and terminal rendering
//	config/    — YAML settings, validation, hot reload, logger
//	server/    — HTTP + WebSocket API
//	cmd/lvwalk — serve, run and classify commands
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	BFS from A visits A, B, C, D; DFS from A visits A, B, D, C.
package lvwalk
