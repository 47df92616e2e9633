// SPDX-License-Identifier: MIT
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"

	charmlog "github.com/charmbracelet/log"

	"github.com/katalvlaran/linorder/chacoio"
	"github.com/katalvlaran/linorder/core"
	"github.com/katalvlaran/linorder/functional"
	"github.com/katalvlaran/linorder/psdraw"
)

// runOrder parses the positional arguments, reads a Chaco graph from
// stdin, runs the ordering engine, and writes one rank per line to
// stdout. It is the whole of the CLI's behavior; main only wires stdio
// and the cancellation context.
func runOrder(ctx context.Context, args []string, logger *charmlog.Logger) error {
	fn, err := parseFunctional(args[0])
	if err != nil {
		return err
	}

	opts, psfile, err := parseOrderArgs(args)
	if err != nil {
		return err
	}

	g, err := chacoio.Read(os.Stdin)
	if err != nil {
		return fmt.Errorf("reading graph: %w", err)
	}

	progress := newCLIProgress(logger)
	opts.Progress = progress
	go func() {
		<-ctx.Done()
		progress.cancel()
	}()

	g.Order(fn, opts)

	out := bufio.NewWriter(os.Stdout)
	for i := 1; i <= g.Nodes(); i++ {
		fmt.Fprintln(out, g.Rank(core.NodeIndex(i)))
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("writing permutation: %w", err)
	}

	if psfile != "" {
		if err := writePostScript(psfile, g); err != nil {
			return err
		}
	}

	return nil
}

// parseFunctional resolves a single-rune CLI argument through
// functional.ByLetter.
func parseFunctional(arg string) (functional.Functional, error) {
	letters := []rune(arg)
	if len(letters) != 1 {
		return nil, fmt.Errorf("functional letter must be a single rune, got %q", arg)
	}
	fn := functional.ByLetter(letters[0])
	if fn == nil {
		return nil, fmt.Errorf("unknown functional letter %q (want one of h,g,s,a,r,m)", arg)
	}

	return fn, nil
}

// parseOrderArgs fills core.DefaultOptions() from the optional positional
// arguments args[1:]: iterations, window, period, seed, psfile, in that
// order, each left at its default if not supplied.
func parseOrderArgs(args []string) (core.Options, string, error) {
	opts := core.DefaultOptions()

	intFields := []*int{&opts.Iterations, &opts.Window, &opts.Period}
	for i, dst := range intFields {
		pos := i + 1
		if pos >= len(args) {
			break
		}
		v, err := strconv.Atoi(args[pos])
		if err != nil {
			return opts, "", fmt.Errorf("argument %d (%q): %w", pos+1, args[pos], err)
		}
		*dst = v
	}

	if len(args) >= 5 {
		seed, err := strconv.ParseUint(args[4], 10, 32)
		if err != nil {
			return opts, "", fmt.Errorf("seed %q: %w", args[4], err)
		}
		opts.Seed = uint32(seed)
	}

	var psfile string
	if len(args) >= 6 {
		psfile = args[5]
	}

	return opts, psfile, nil
}

// writePostScript renders the final layout to path as an EPSF drawing.
func writePostScript(path string, g *core.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating psfile %s: %w", path, err)
	}
	defer f.Close()

	if err := psdraw.Draw(f, g, 576, 576); err != nil {
		return fmt.Errorf("drawing %s: %w", path, err)
	}

	return nil
}
