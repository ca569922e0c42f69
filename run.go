package glheader

import (
	"os"

	"github.com/gomlx/glheader/config"
	"github.com/gomlx/glheader/reference"
	"github.com/gomlx/glheader/resolve"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"k8s.io/klog/v2"
)

// Paths of the files used by Run.
type Paths struct {
	// Loader source file. Optional: if empty or missing the loader diff is skipped.
	Loader string

	// Requests file, one symbol per line.
	Requests string

	// Output is where the header is written. If empty it is the same as Requests, which is then
	// overwritten.
	Output string
}

// Destination returns where the header will be written.
func (p Paths) Destination() string {
	if p.Output != "" {
		return p.Output
	}
	return p.Requests
}

// Run reads the inputs from fs, generates the header and writes it to paths.Destination(), fully
// replacing its previous contents. The reference path comes from cfg.Reference.
//
// Each file is read entirely before moving on, and the destination is only written after everything
// else succeeded: if a request is ambiguous nothing is written. The write itself is not atomic.
//
// If dryRun is true, the header is generated but not written.
func Run(fs afero.Fs, cfg config.Config, paths Paths, dryRun bool) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if paths.Requests == "" {
		return nil, errors.New("requests file path must be given")
	}

	referenceContents, err := afero.ReadFile(fs, cfg.Reference)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read reference header %q", cfg.Reference)
	}
	idx := reference.Parse(string(referenceContents), cfg.Syntax())
	klog.V(1).Infof("Reference %q: %d defines, %d functions", cfg.Reference, len(idx.Defines), len(idx.Typedefs))

	requestsContents, err := afero.ReadFile(fs, paths.Requests)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read requests %q", paths.Requests)
	}
	set, err := resolve.Resolve(idx, resolve.ParseRequests(string(requestsContents)))
	if err != nil {
		return nil, errors.WithMessagef(err, "resolving requests from %q", paths.Requests)
	}

	result := &Result{Set: set}
	loaderContents := readLoader(fs, paths.Loader)
	result.assemble(loaderContents, cfg)
	if loaderContents != "" && !result.HasLoaderRegion {
		klog.V(1).Infof("Loader %q has no %q ... %q region, skipping loader diff",
			paths.Loader, cfg.StartMarker, cfg.EndMarker)
	}

	if dryRun {
		return result, nil
	}
	destination := paths.Destination()
	if err = afero.WriteFile(fs, destination, []byte(result.Header), 0644); err != nil {
		return nil, errors.Wrapf(err, "failed to write generated header to %q", destination)
	}
	result.Destination = destination
	return result, nil
}

// readLoader returns the loader contents, or "" if there is no loader to read.
func readLoader(fs afero.Fs, loaderPath string) string {
	if loaderPath == "" {
		return ""
	}
	contents, err := afero.ReadFile(fs, loaderPath)
	if err != nil {
		if os.IsNotExist(err) {
			klog.Warningf("Loader %q not found, skipping loader diff", loaderPath)
		} else {
			klog.Warningf("Failed to read loader %q, skipping loader diff: %v", loaderPath, err)
		}
		return ""
	}
	return string(contents)
}
