// Package server implements the relay chat core: the session registry with
// coordinator election, the protocol router, the liveness scheduler, the
// auto-reply trigger engine, and the durable history log, served over TCP and
// a WebSocket bridge.
package server
