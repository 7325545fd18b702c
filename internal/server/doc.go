// Package server runs the gateway's HTTP server and owns the process
// lifecycle.
//
// It starts the background workers, serves until a termination signal
// arrives, then drains or closes connections depending on configuration,
// stops the workers and flushes pending trace spans.
package server
