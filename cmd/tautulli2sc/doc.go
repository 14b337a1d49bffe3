// Package main hosts the tautulli2sc CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into
// conversion runs and configuration scaffolding. It centralizes
// configuration resolution, logger setup, and confirmer selection so the
// conversion pipeline in internal/convert stays free of terminal concerns.
package main
