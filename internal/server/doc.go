// Package server wires and runs the application's HTTP transport.
//
// It provides orchestration for the server lifecycle, including startup,
// signal handling, and graceful shutdown. Both backend binaries use the
// same wrapper and differ only in the router they hand it.
package server
