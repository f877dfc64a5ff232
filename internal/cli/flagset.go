// internal/cli/flagset.go
package cli

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"swalign/internal/version"
)

// NewFlagSet returns a clean FlagSet with ContinueOnError. Usage is
// printed explicitly via PrintUsage, never as a parse side effect.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {}
	return fs
}

// PrintUsage writes the help banner and flag defaults to w.
func PrintUsage(fs *flag.FlagSet, w io.Writer, name string) {
	fmt.Fprintf(w, `%s: local (overlap) alignment of nucleotide reads

Version: %s

Usage of %s:
`, name, version.Version, name)
	fs.SetOutput(w)
	fs.PrintDefaults()
}
