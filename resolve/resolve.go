// Package resolve matches requested symbol names against a reference.Index.
//
// Matching is done on whole words: a request for `GL_FOO` never matches a line that only
// contains `GL_FOOBAR`. The reference is expected to be unambiguous, so a request that matches
// more than one line of the same table is a fatal error (see AmbiguousMatchError).
package resolve

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/gomlx/glheader/reference"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// MinRequestLength is the minimum length of a trimmed request line: shorter lines are taken
// as blank or noise.
const MinRequestLength = 3

// Symbol is a requested name with what it resolved to.
type Symbol struct {
	// Request is the line as read from the requests file, without the line terminator.
	Request string

	// Name is Request with trailing whitespace removed.
	Name string

	// Define is the matched `#define` line, or nil.
	Define *string

	// Typedef is the matched function typedef, or nil.
	Typedef *reference.Typedef
}

// Set of resolved symbols, in the order they were requested.
type Set struct {
	Symbols []Symbol
}

// Defines returns the resolved define lines, in request order.
func (s *Set) Defines() []string {
	var defines []string
	for _, sym := range s.Symbols {
		if sym.Define != nil {
			defines = append(defines, *sym.Define)
		}
	}
	return defines
}

// Typedefs returns the symbols that resolved to a function typedef, in request order.
func (s *Set) Typedefs() []Symbol {
	var typedefs []Symbol
	for _, sym := range s.Symbols {
		if sym.Typedef != nil {
			typedefs = append(typedefs, sym)
		}
	}
	return typedefs
}

// NumDefines returns the number of resolved defines.
func (s *Set) NumDefines() int { return len(s.Defines()) }

// NumTypedefs returns the number of resolved function typedefs.
func (s *Set) NumTypedefs() int { return len(s.Typedefs()) }

// ParseRequests splits the contents of a requests file in request lines. Trailing whitespace
// is ignored and lines shorter than MinRequestLength are skipped.
func ParseRequests(contents string) []string {
	var requests []string
	for _, line := range strings.Split(contents, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if len(trimRight(line)) < MinRequestLength {
			continue
		}
		requests = append(requests, line)
	}
	return requests
}

// Resolve each request against the index. Requests are returned in order; the ones that
// match nothing are dropped. It returns an *AmbiguousMatchError if any request matches
// more than one line of the same table.
func Resolve(idx *reference.Index, requests []string) (*Set, error) {
	set := &Set{}
	seen := make(map[string]bool, len(requests))
	typedefLines := idx.Lines(reference.Typedefs)
	for _, request := range requests {
		name := trimRight(request)
		if seen[name] {
			klog.Warningf("%q requested more than once, it will be generated more than once", name)
		}
		seen[name] = true

		reName := regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\b`)
		sym := Symbol{Request: request, Name: name}
		defineIdx, err := matchOne(reName, name, reference.Defines, idx.Defines)
		if err != nil {
			return nil, err
		}
		if defineIdx >= 0 {
			sym.Define = &idx.Defines[defineIdx]
		}
		typedefIdx, err := matchOne(reName, name, reference.Typedefs, typedefLines)
		if err != nil {
			return nil, err
		}
		if typedefIdx >= 0 {
			sym.Typedef = &idx.Typedefs[typedefIdx]
		}

		if sym.Define == nil && sym.Typedef == nil {
			klog.V(1).Infof("%q not found in reference, skipped", name)
			continue
		}
		klog.V(2).Infof("%q resolved: define=%t, typedef=%t", name, sym.Define != nil, sym.Typedef != nil)
		set.Symbols = append(set.Symbols, sym)
	}
	return set, nil
}

// matchOne returns the position of the only line matching reName, or -1 if none matches.
func matchOne(reName *regexp.Regexp, name string, table reference.Table, lines []string) (int, error) {
	found := -1
	var matches []string
	for ii, line := range lines {
		if !reName.MatchString(line) {
			continue
		}
		if found < 0 {
			found = ii
		}
		matches = append(matches, line)
	}
	if len(matches) > 1 {
		return -1, errors.WithStack(&AmbiguousMatchError{Symbol: name, Table: table, Matches: matches})
	}
	return found, nil
}

func trimRight(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
