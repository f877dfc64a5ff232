// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"swalign/core/align"
	"swalign/core/fasta"
	"swalign/internal/cli"
	"swalign/internal/cmdutil"
	"swalign/internal/pairs"
	"swalign/internal/pipeline"
	"swalign/internal/pretty"
	"swalign/internal/scoring"
	"swalign/internal/version"
	"swalign/internal/writers"
)

// bigMatrixCells is where the O(m·n) fill starts to hurt: ~100M cells
// is hundreds of MB of matrix and a noticeable wait.
const bigMatrixCells = 100 << 20

// RunContext parses argv, runs the requested mode, and returns an
// exit code. All output goes through stdout/stderr so tests can run
// the whole binary in-process.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("swalign")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		cli.PrintUsage(fs, outw, "swalign")
		return cmdutil.ExitOK
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			cli.PrintUsage(fs, outw, "swalign")
			return cmdutil.ExitOK
		}
		_, _ = fmt.Fprintln(stderr, err)
		cli.PrintUsage(fs, stderr, "swalign")
		return cmdutil.ExitUsage
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "swalign version %s\n", version.Version)
		return cmdutil.ExitOK
	}

	sc := align.DefaultScoring
	if opts.ScoringFile != "" {
		sc, err = scoring.Load(opts.ScoringFile)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return cmdutil.ExitUsage
		}
	}

	dict := make(map[string]string)
	for _, fa := range opts.SeqFiles {
		d, err := fasta.ReadAllCtx(parent, fa)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return cmdutil.ExitIO
		}
		for id, seq := range d {
			if _, dup := dict[id]; !dup {
				dict[id] = seq
			}
		}
	}
	lookup := align.LookupFunc(func(id string) (string, bool) {
		s, ok := dict[id]
		return s, ok
	})

	if opts.PairFile != "" {
		return runBatch(parent, opts, sc, lookup, outw, stderr)
	}
	return runSingle(opts, sc, lookup, outw, stderr)
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func runSingle(opts cli.Options, sc align.Scoring, lookup align.Lookup, outw *bufio.Writer, stderr io.Writer) int {
	seq1, ok := lookup.Sequence(opts.Query)
	if !ok {
		_, _ = fmt.Fprintln(stderr, &align.LookupError{ID: opts.Query})
		return cmdutil.ExitUsage
	}
	seq2, ok := lookup.Sequence(opts.Subject)
	if !ok {
		_, _ = fmt.Fprintln(stderr, &align.LookupError{ID: opts.Subject})
		return cmdutil.ExitUsage
	}

	if cells := (len(seq1) + 1) * (len(seq2) + 1); cells > bigMatrixCells {
		cmdutil.Warnf(stderr, opts.Quiet, "score matrix needs %d cells; long reads may exhaust memory", cells)
	}

	res, err := align.AlignWith(sc, seq1, seq2)
	switch {
	case errors.Is(err, align.ErrNoAlignment):
		_, _ = fmt.Fprintf(stderr, "no significant alignment between %q and %q\n", opts.Query, opts.Subject)
		return cmdutil.ExitNoAlign
	case err != nil:
		_, _ = fmt.Fprintln(stderr, err)
		return cmdutil.ExitIO
	}

	switch opts.Output {
	case "json":
		err = writers.WriteAlignmentJSON(outw, res)
	case "tsv":
		err = writers.WriteAlignmentTSV(outw, opts.Query, opts.Subject, res, opts.Header)
	default:
		_, err = fmt.Fprint(outw, pretty.RenderAlignment(res))
	}
	return finish(outw, stderr, err)
}

func runBatch(ctx context.Context, opts cli.Options, sc align.Scoring, lookup align.Lookup, outw *bufio.Writer, stderr io.Writer) int {
	ps, err := pairs.LoadTSV(opts.PairFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return cmdutil.ExitUsage
	}

	cfg := pipeline.Config{Threads: opts.Threads, Scoring: sc}
	scores, err := pipeline.ScoreAll(ctx, cfg, ps, lookup)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		var le *align.LookupError
		if errors.As(err, &le) {
			return cmdutil.ExitUsage
		}
		return cmdutil.ExitIO
	}

	switch opts.Output {
	case "json":
		err = writers.WriteScoresJSON(outw, scores)
	default: // text and tsv share the tabular form
		err = writers.WriteScoresTSV(outw, scores, opts.Header)
	}
	return finish(outw, stderr, err)
}

// finish flushes buffered output, tolerating an early-closing
// consumer.
func finish(outw *bufio.Writer, stderr io.Writer, err error) int {
	if ferr := outw.Flush(); err == nil {
		err = ferr
	}
	if writers.IsBrokenPipe(err) {
		return cmdutil.ExitOK
	}
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return cmdutil.ExitIO
	}
	return cmdutil.ExitOK
}
