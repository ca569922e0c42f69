// Package loaderdiff finds which resolved functions are not yet wired into a hand-written loader.
//
// The loader source marks the code that loads the OpenGL function pointers with two markers,
// by default "{Start OpenGLFunction}" and "{End OpenGLFunction}", usually inside comments. A function
// is considered wired if its declared name appears anywhere in between.
//
// Diffing is opportunistic: if any marker is missing, nothing is reported.
package loaderdiff

import (
	"strings"

	"github.com/gomlx/glheader/resolve"
)

// Default markers delimiting the loader region.
const (
	DefaultStartMarker = "{Start OpenGLFunction}"
	DefaultEndMarker   = "{End OpenGLFunction}"
)

// Region returns the text strictly between the first startMarker and the first endMarker that follows it.
// If either marker is absent ok is false, meaning there is no region (as opposed to an empty one).
func Region(contents, startMarker, endMarker string) (region string, ok bool) {
	if startMarker == "" || endMarker == "" {
		return "", false
	}
	if !strings.Contains(contents, startMarker) || !strings.Contains(contents, endMarker) {
		return "", false
	}
	_, after, _ := strings.Cut(contents, startMarker)
	region, _, _ = strings.Cut(after, endMarker)
	return region, true
}

// Missing is a resolved function not found in the loader region.
type Missing struct {
	// Request is the line requesting it.
	Request string

	// Signature is the canonical typedef line.
	Signature string
}

// Scan returns the typedefs of set whose declared form is not found in region, in set order.
// If ok is false (there is no region) it returns nil.
func Scan(region string, ok bool, set *resolve.Set) []Missing {
	if !ok {
		return nil
	}
	var missing []Missing
	for _, sym := range set.Typedefs() {
		declared := strings.TrimRight(sym.Typedef.Declared, " \t\r\n")
		if declared == "" {
			declared = sym.Name
		}
		if strings.Contains(region, declared) {
			continue
		}
		missing = append(missing, Missing{Request: sym.Request, Signature: sym.Typedef.Line})
	}
	return missing
}
