// Package classify turns a graph snapshot into the zero-based index-pair
// encoding understood by the graph-type classification service, and talks
// to that service.
//
// Encoding:
//
//	Nodes are numbered by insertion order. Every edge emits [from, to]; an
//	undirected edge also emits [to, from]. The request carries the node count.
//
// Collaborators (Classifier):
//
//   - Client posts {"edges": [[0,1],...], "node_count": n} to
//     /api/predict-graph-type and maps the numeric label 0→Cyclic, 1→DAG,
//     2→Tree, anything else→Unknown. Outbound calls are rate limited
//     (golang.org/x/time/rate), identical in-flight requests are collapsed
//     (golang.org/x/sync/singleflight) and every call is traced with
//     OpenTelemetry.
//   - Structural answers the same question offline from the graph's
//     structure (cycle check and tree shape), with confidence 1.
//
// Errors:
//
//   - ErrTransport  the service could not be reached or the limiter wait failed.
//   - ErrRejected   the service answered with a non-2xx status or an unreadable body.
package classify
