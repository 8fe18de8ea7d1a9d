// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/almanac/almanac"
	"github.com/katalvlaran/almanac/interval"
	"github.com/katalvlaran/almanac/remap"
)

// options is the parsed command line.
type options struct {
	path    string
	mode    almanac.SeedMode
	workers int
	sorted  bool
	strict  bool
	stats   bool
	html    bool
	watch   bool
	verbose bool
}

// stageOptions maps flags onto remap stage options.
func (o options) stageOptions() []remap.StageOption {
	var opts []remap.StageOption
	if o.sorted {
		opts = append(opts, remap.WithSortedScan())
	}
	if o.strict {
		opts = append(opts, remap.WithOverlapPolicy(remap.OverlapReject))
	}
	return opts
}

// parseArgs reads flags; usage problems are reported on stderr.
func parseArgs(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("almanac", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		o    options
		mode string
	)
	fs.StringVar(&mode, "mode", almanac.SeedRanges.String(), "seed reading: ranges or values")
	fs.IntVar(&o.workers, "workers", 0, "worker goroutines, 0 runs sequentially")
	fs.BoolVar(&o.sorted, "sorted", false, "scan rules sorted by source start")
	fs.BoolVar(&o.strict, "strict", false, "reject overlapping rule sources")
	fs.BoolVar(&o.stats, "stats", false, "log a summary of the final fragments")
	fs.BoolVar(&o.html, "html", false, "read the first example block of a saved puzzle page")
	fs.BoolVar(&o.watch, "watch", false, "re-run when the input changes")
	fs.BoolVar(&o.verbose, "v", false, "verbose logging")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: almanac [flags] <input>")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return options{}, errors.New("expected exactly one input file")
	}
	if o.workers < 0 {
		return options{}, fmt.Errorf("-workers must not be negative, got %d", o.workers)
	}
	m, err := almanac.ParseSeedMode(mode)
	if err != nil {
		return options{}, err
	}
	o.mode = m
	o.path = fs.Arg(0)
	return o, nil
}

// run is main without the process exit. It returns 0 on success, 1 when
// solving fails and 2 on usage errors.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	o, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "almanac: %v\n", err)
		return 2
	}

	logger := log.New(stderr, "almanac: ", 0)
	debug := log.New(io.Discard, "almanac: debug: ", log.Lmicroseconds)
	if o.verbose {
		debug.SetOutput(stderr)
	}

	s := &solver{opts: o, log: logger, debug: debug}
	answer, err := s.solve(ctx)
	if err != nil {
		logger.Printf("%s: %v", o.path, err)
		if !o.watch {
			return 1
		}
	} else {
		fmt.Fprintln(stdout, answer)
	}

	if o.watch {
		if err := s.watch(ctx, stdout); err != nil {
			logger.Printf("watch: %v", err)
			return 1
		}
	}
	return 0
}

// solver runs one configured solve; it is reused across watch iterations.
type solver struct {
	opts  options
	log   *log.Logger
	debug *log.Logger
}

// load reads and parses the input file.
func (s *solver) load() (*almanac.Almanac, error) {
	raw, err := os.ReadFile(s.opts.path)
	if err != nil {
		return nil, err
	}
	if s.opts.html {
		text, err := almanac.ExtractExample(bytes.NewReader(raw))
		if err != nil {
			return nil, err
		}
		raw = []byte(text)
	}
	return almanac.Parse(bytes.NewReader(raw))
}

// solve loads the almanac and reduces the final fragments to their minimum.
func (s *solver) solve(ctx context.Context) (uint64, error) {
	a, err := s.load()
	if err != nil {
		return 0, err
	}
	p, err := a.Pipeline(s.opts.stageOptions()...)
	if err != nil {
		return 0, err
	}
	seeds, err := a.SeedIntervals(s.opts.mode)
	if err != nil {
		return 0, err
	}
	s.debug.Printf("%d seeds (%s), %d stages, %d seed values", len(seeds), s.opts.mode, p.Len(), interval.TotalLength(seeds))
	if len(seeds) == 0 {
		return 0, remap.ErrEmptySeedSet
	}

	var out []interval.Interval
	if s.opts.workers > 0 {
		out, err = p.ApplyConcurrent(ctx, seeds, s.opts.workers)
		if err != nil {
			return 0, err
		}
	} else {
		out = p.Apply(seeds)
	}

	if s.opts.stats {
		s.log.Printf("stats: %v", remap.Summarize(out))
	}
	return remap.MinStart(out)
}
