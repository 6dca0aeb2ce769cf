// Package playback drives a traversal step sequence on a wall-clock schedule.
//
// The Controller is a small state machine:
//
//	Idle ──Play──▶ Playing ──Pause──▶ Paused ──Resume──▶ Playing
//	  ▲               │                  │
//	  │               └──(complete)──▶ Stopped + Complete
//	  └──Reset──── any state ◀──Stop── Playing / Paused
//
// Play rebuilds the adjacency snapshot from the live graph, starts a fresh
// bfs or dfs walker and pumps its first step immediately. Every later pump is
// scheduled on the injected Clock after the configured delay, which is read
// at scheduling time. Transitions requested from the wrong state are silent
// no-ops; Play without a designated start node is one of them.
//
// Exactly one pump timer is pending at any instant. Every transition that
// leaves Playing stops the timer and bumps a generation counter, so a timer
// that already fired and is waiting on the lock observes a stale generation
// and does nothing.
//
// Subscribers registered with Subscribe receive a Snapshot after every state
// change, outside the controller lock.
package playback
