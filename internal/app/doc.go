// Package app wires the cliquer libraries into one run: it loads the input
// graph, runs the configured enumerations and clustering, and renders the
// report. It owns the process-level concerns (logging, run ids, metrics
// output) so that the library packages stay free of them.
package app
