// Package server runs the HTTP transport and the background workers of the
// solar-quote service and stops both gracefully on SIGINT, SIGTERM or
// SIGQUIT.
package server
