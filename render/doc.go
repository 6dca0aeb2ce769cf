// Package render derives per-node and per-edge visual state from a graph
// snapshot and the playback step on display, and draws it as styled terminal
// text.
//
// Node state precedence, highest first:
//
//	Current → Visited → InFrontier → Selected → Unvisited
//
// An edge is Active when both of its endpoints have been visited.
//
// The terminal renderer is a plain consumer of Frame; the HTTP server ships
// the same Frame to browser renderers as JSON.
package render
