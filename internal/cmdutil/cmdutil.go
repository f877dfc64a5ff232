// internal/cmdutil/cmdutil.go
package cmdutil

import (
	"fmt"
	"io"
)

// Exit codes shared by the CLI surface.
const (
	ExitOK      = 0
	ExitNoAlign = 1 // no significant alignment between the reads
	ExitUsage   = 2 // bad flags or bad input files
	ExitIO      = 3 // runtime failure (unreadable input, write error)
)

// Warnf writes a one-line warning unless quiet mode is on.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}
