// Package memory provides in-memory implementations of the store
// interfaces, backed by process-lifetime maps.
//
// Each store guards its map with a mutex so that concurrent requests served
// by the HTTP server cannot race on id assignment or map mutation. State is
// reset on process restart; running multiple processes would produce
// divergent copies of the data, which is out of scope for this demo.
package memory
