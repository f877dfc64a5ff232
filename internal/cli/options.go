// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	SeqFiles []string // FASTA file(s), '-' = stdin
	PairFile string   // TSV of read-ID pairs (batch scoring mode)
	Query    string   // read ID (single-alignment mode)
	Subject  string   // read ID (single-alignment mode)

	// Scoring
	ScoringFile string

	// Performance
	Threads int

	// Output
	Output string // text | tsv | json
	Header bool   // true unless --no-header
	Quiet  bool

	Version bool
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var noHeader bool

	// Input
	fs.StringSliceVarP(&opt.SeqFiles, "sequences", "s", nil, "FASTA file(s) with the reads (repeatable, '-' = stdin) [*]")
	fs.StringVar(&opt.PairFile, "pairs", "", "TSV file of read-ID pairs to batch-score")
	fs.StringVar(&opt.Query, "query", "", "query read ID (single-alignment mode)")
	fs.StringVar(&opt.Subject, "subject", "", "subject read ID (single-alignment mode)")

	// Scoring
	fs.StringVar(&opt.ScoringFile, "scoring", "", "YAML file overriding match/mismatch/gap scores")

	// Performance
	fs.IntVarP(&opt.Threads, "threads", "t", 0, "worker threads for batch scoring (0 = all CPUs) [0]")

	// Output
	fs.StringVarP(&opt.Output, "output", "o", "text", "output format: text | tsv | json [text]")
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in TSV output [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings [false]")
	fs.BoolVarP(&opt.Version, "version", "v", false, "print version and exit [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	opt.Header = !noHeader
	if opt.Version {
		return opt, nil
	}

	// Validation
	usingPairs := opt.PairFile != ""
	usingSingle := opt.Query != "" || opt.Subject != ""
	switch {
	case usingPairs && usingSingle:
		return opt, errors.New("--pairs conflicts with --query/--subject")
	case usingSingle && (opt.Query == "" || opt.Subject == ""):
		return opt, errors.New("--query and --subject must be supplied together")
	case !usingPairs && !usingSingle:
		return opt, errors.New("provide --pairs or --query/--subject")
	}
	if len(opt.SeqFiles) == 0 {
		return opt, errors.New("at least one --sequences file is required")
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	switch opt.Output {
	case "text", "tsv", "json":
	default:
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}
