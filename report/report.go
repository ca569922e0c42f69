// Package report prints the human-readable summary of a generation run.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gomlx/glheader/loaderdiff"
)

// MissingWarning is printed before the list of functions not yet wired into the loader.
const MissingWarning = "### Remember to update the OpenGL loader with the new functions!!! ###"

// Report of a generation run. It is advisory only.
type Report struct {
	// Destination where the header was written. Empty if it was not written (dry run).
	Destination string

	NumDefines, NumTypedefs int

	// Missing are the resolved functions not found in the loader region.
	Missing []loaderdiff.Missing
}

var warningColor = color.New(color.FgYellow, color.Bold)

// Write the report to w.
func (r *Report) Write(w io.Writer) error {
	var err error
	p := func(format string, args ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, format, args...)
	}
	if r.Destination != "" {
		p("Successfully wrote %s with\n", r.Destination)
	} else {
		p("Generated header with\n")
	}
	p("%d defines and %d function signatures\n", r.NumDefines, r.NumTypedefs)
	if len(r.Missing) == 0 {
		return err
	}
	if err == nil {
		_, err = warningColor.Fprintln(w, MissingWarning)
	}
	for _, m := range r.Missing {
		p("[%q, %q]\n", m.Request, m.Signature)
	}
	return err
}
