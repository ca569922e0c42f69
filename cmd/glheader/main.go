// glheader generates a trimmed OpenGL header with only the requested constants and function pointers,
// taken from the canonical glcorearb.h. It also reports the requested functions the loader doesn't load yet.
//
// See package github.com/gomlx/glheader for details.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gomlx/glheader"
	"github.com/gomlx/glheader/config"
	"github.com/janpfeifer/gonb/common"
	"github.com/janpfeifer/must"
	"github.com/spf13/afero"
	"k8s.io/klog/v2"
)

var (
	flagLoader    = flag.String("loader", "", "Loader source file, with the function loading code between the {Start OpenGLFunction} and {End OpenGLFunction} markers. Optional.")
	flagRequests  = flag.String("requests", "", "File with the requested symbols, one per line.")
	flagOutput    = flag.String("output", "", "Where to write the generated header. If empty, the requests file is overwritten.")
	flagReference = flag.String("reference", "", fmt.Sprintf("Reference header (glcorearb.h). Defaults to %q, or GLHEADER_REFERENCE.", config.DefaultReferencePath))
	flagConfig    = flag.String("config", "", "YAML file with the generation profile (keywords, markers, guard, preamble, names).")
	flagDryRun    = flag.Bool("dry_run", false, "Print the generated header to stdout instead of writing it.")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `glheader generates an OpenGL header with only the requested symbols from glcorearb.h.

$ glheader [flags] <loader> <output> <requests>
$ glheader [flags] <loader> <requests>

The positional arguments can be used instead of --loader, --output and --requests.
The reference header is given with --reference, GLHEADER_REFERENCE or the --config file.
Unless an output is given, **the requests file is overwritten** with the generated header.
With --dry_run the header is printed to stdout and the report to stderr.

Usage:
`)
		flag.PrintDefaults()
	}
	klog.InitFlags(nil)
	flag.Parse()

	paths, err := pathsFromArgs(glheader.Paths{
		Loader:   *flagLoader,
		Requests: *flagRequests,
		Output:   *flagOutput,
	}, flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}
	paths.Loader = common.ReplaceTildeInDir(paths.Loader)
	paths.Requests = common.ReplaceTildeInDir(paths.Requests)
	paths.Output = common.ReplaceTildeInDir(paths.Output)

	// Configuration: defaults <- file <- environment <- flags.
	fs := afero.NewOsFs()
	cfg := config.New()
	if *flagConfig != "" {
		cfg = cfg.Apply(must.M1(config.Load(fs, common.ReplaceTildeInDir(*flagConfig))))
	}
	cfg = cfg.Apply(must.M1(config.FromEnv(os.LookupEnv)))
	cfg = cfg.Apply(config.Config{Reference: *flagReference})
	cfg.Reference = common.ReplaceTildeInDir(cfg.Reference)

	klog.V(1).Infof("Reference %q, requests %q, loader %q, output %q",
		cfg.Reference, paths.Requests, paths.Loader, paths.Destination())

	result, err := glheader.Run(fs, cfg, paths, *flagDryRun)
	if err != nil {
		klog.Fatalf("Failed to generate header: %+v", err)
	}
	if *flagDryRun {
		fmt.Println(result.Header)
	}
	must.M(result.Report().Write(reportWriter(*flagDryRun, os.Stdout, os.Stderr)))
}
