// SPDX-License-Identifier: MIT

// Command almanac prints the lowest location reachable from the seeds of an
// almanac file.
//
// Usage:
//
//	almanac [flags] <input>
//
// Flags:
//
//	-mode ranges|values  read seeds as (start, length) pairs or single values (default ranges)
//	-workers N           fan seeds out over N goroutines (0 = sequential)
//	-sorted              scan rules sorted by source start
//	-strict              reject stages with overlapping rule sources
//	-stats               log a fragment summary of the final interval set
//	-html                input is a saved puzzle page; use its first example block
//	-watch               re-run whenever the input file is written
//	-v                   verbose logging
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
