// Package cli implements the command-line interface for the sync job.
//
// The cli package provides the Cobra-based CLI that refreshes the
// tournament dataset from the source site, reports per-season outcomes,
// formats output (text/JSON), and signals newly discovered tournaments
// through its exit code so wrapper scripts can chain the announcer.
package cli
