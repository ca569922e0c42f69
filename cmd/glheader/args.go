package main

import (
	"io"

	"github.com/gomlx/glheader"
	"github.com/pkg/errors"
)

// pathsFromArgs combines the path flags with the positional arguments, which follow the order of the
// existing build scripts: <loader> <output> <requests>.
//
// With only <loader> <requests>, and no --output, the requests file is also the output and gets overwritten. The reference
// is never positional: it comes from --reference, GLHEADER_REFERENCE or the configuration.
// Positional arguments take precedence over the flags.
func pathsFromArgs(flags glheader.Paths, args []string) (glheader.Paths, error) {
	paths := flags
	switch len(args) {
	case 0:
	case 1:
		paths.Loader = args[0]
	case 2:
		paths.Loader, paths.Requests = args[0], args[1]
	case 3:
		paths.Loader, paths.Output, paths.Requests = args[0], args[1], args[2]
	default:
		return paths, errors.Errorf("too many arguments %q, expected at most <loader> <output> <requests>", args)
	}
	if paths.Requests == "" {
		return paths, errors.New("the requests file must be given, with --requests or as the last positional argument")
	}
	return paths, nil
}

// reportWriter is where the report goes: on a dry run stdout holds the generated header, so the report goes
// to stderr instead.
func reportWriter(dryRun bool, stdout, stderr io.Writer) io.Writer {
	if dryRun {
		return stderr
	}
	return stdout
}
