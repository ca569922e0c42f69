package resolve

import (
	"fmt"
	"strings"

	"github.com/gomlx/glheader/reference"
)

// AmbiguousMatchError is returned when a requested symbol matches more than one line of the
// same reference table. It means the matching rule (or the reference) is broken, and the
// generation must be aborted.
type AmbiguousMatchError struct {
	Symbol  string
	Table   reference.Table
	Matches []string
}

// Error implements error.
func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("symbol %q matches %d lines in %s: [%s]",
		e.Symbol, len(e.Matches), e.Table, strings.Join(quoteAll(e.Matches), ", "))
}

func quoteAll(lines []string) []string {
	quoted := make([]string, len(lines))
	for ii, line := range lines {
		quoted[ii] = fmt.Sprintf("%q", line)
	}
	return quoted
}
