// Package server exposes a Session over HTTP and WebSocket so that a browser
// renderer can drive it.
//
// Routes:
//
//	GET    /healthz                    liveness
//	GET    /metrics                    Prometheus exposition
//	GET    /ws                         live View stream, pointer intents in
//	GET    /api/view                   current View and render Frame
//	POST   /api/nodes                  {"x","y"} place a node
//	DELETE /api/nodes/:id              remove a node (double click)
//	POST   /api/nodes/:id/select       toggle selection (click)
//	POST   /api/edges                  {"from","to"} connect two nodes
//	PUT    /api/mode                   {"directed"} switch edge mode
//	DELETE /api/graph                  clear the graph
//	GET    /api/presets                preset kinds
//	POST   /api/presets                {"kind","n","rows","cols","depth","p","seed"} load a preset
//	PUT    /api/start                  {"node"} designate the start node
//	PUT    /api/playback               {"algorithm","delay_ms"} playback settings
//	POST   /api/playback/:action       play | pause | resume | step | stop | reset
//	POST   /api/classify               classify the current graph
//
// Rejected mutations answer 404 (unknown node), 409 (duplicate edge) or 422
// (out of bounds, too close, self loop). Classification collaborator failures
// answer 502 and leave the session untouched.
package server
