// Package glheader generates a trimmed OpenGL header from the canonical glcorearb.h reference,
// exposing only the constants and function pointers a project asks for.
//
// The inputs are three texts:
//
//   - The reference header (glcorearb.h), with `#define` and `GLAPI ... APIENTRY name(...);` lines.
//   - The requests: one symbol name per line.
//   - The loader source, which wires the function pointers between the "{Start OpenGLFunction}"
//     and "{End OpenGLFunction}" markers.
//
// The output is the generated header (see package header) and the list of requested functions
// that the loader doesn't wire yet (see package loaderdiff).
//
// Generate does the work on texts, and Run does the file plumbing on top of it. The cmd/glheader
// tool is the usual entry point, typically from a build script:
//
//	glheader win32_opengl.h opengl_defs.h ~/gejo/libs/glcorearb.h
//
// Notice that by default the requests file is overwritten by the generated header.
package glheader

import (
	"github.com/gomlx/glheader/config"
	"github.com/gomlx/glheader/header"
	"github.com/gomlx/glheader/loaderdiff"
	"github.com/gomlx/glheader/reference"
	"github.com/gomlx/glheader/report"
	"github.com/gomlx/glheader/resolve"
)

// Result of a generation.
type Result struct {
	// Header is the generated header contents.
	Header string

	// Set of resolved symbols, in request order.
	Set *resolve.Set

	// HasLoaderRegion is false if the loader markers were not found, in which case Missing is empty.
	HasLoaderRegion bool

	// Missing lists the resolved functions not yet wired in the loader region.
	Missing []loaderdiff.Missing

	// Destination where Header was written, empty if it wasn't written.
	Destination string
}

// Report returns the summary of the generation.
func (r *Result) Report() *report.Report {
	return &report.Report{
		Destination: r.Destination,
		NumDefines:  r.Set.NumDefines(),
		NumTypedefs: r.Set.NumTypedefs(),
		Missing:     r.Missing,
	}
}

// Generate the header from the reference, requests and loader contents. The loader contents may be
// empty, which simply disables the loader diff.
//
// It fails only if a request is ambiguous (see resolve.AmbiguousMatchError).
func Generate(referenceContents, requestsContents, loaderContents string, cfg config.Config) (*Result, error) {
	idx := reference.Parse(referenceContents, cfg.Syntax())
	set, err := resolve.Resolve(idx, resolve.ParseRequests(requestsContents))
	if err != nil {
		return nil, err
	}
	result := &Result{Set: set}
	result.assemble(loaderContents, cfg)
	return result, nil
}

// assemble diffs the resolved set against the loader and renders the header.
func (r *Result) assemble(loaderContents string, cfg config.Config) {
	var region string
	region, r.HasLoaderRegion = loaderdiff.Region(loaderContents, cfg.StartMarker, cfg.EndMarker)
	r.Missing = loaderdiff.Scan(region, r.HasLoaderRegion, r.Set)
	r.Header = header.New(cfg.HeaderOptions()).Render(r.Set)
}
