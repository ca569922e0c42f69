// Package header assembles the generated OpenGL header from a resolved set of symbols.
//
// The generated header holds, in order: the include guard, a fixed preamble, the requested
// `#define` lines, one typedef per requested function (renamed with a prefix, so it doesn't
// collide with the function name), a union bundling pointers to all the functions and one
// global instance of it. E.g.:
//
//	#if !defined(OPENGL_H)
//	#define OPENGL_H
//	#include <gl/gl.h>
//	...
//	#define GL_RED 0x1903
//	typedef void OPENGL_APIENTRY type_glFoo(GLint x);
//	union OpenGL
//	{
//		struct
//		{
//			type_glFoo* glFoo;
//		};
//	};
//	global_variable OpenGL g_opengl = {};
//	#endif
//
// The global instance is owned by the program including the header, which is responsible
// for filling in the function pointers.
package header

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/gomlx/glheader/resolve"
)

// DefaultPreamble includes the platform OpenGL header and the few types glcorearb.h
// signatures use that it doesn't define.
const DefaultPreamble = `#include <gl/gl.h>
typedef char GLchar;
typedef ptrdiff_t GLsizeiptr;
typedef ptrdiff_t GLintptr;
typedef u32 GLuint;
typedef u8 GLubyte;
`

// Options configure the generated header.
//
// An empty field always means "use the value in DefaultOptions": there is no way to ask for an empty
// preamble or an unqualified instance. To render without an effective preamble use a comment line
// (e.g. "// no preamble"), and for a plain instance declaration use a qualifier macro defined empty
// by the including program.
type Options struct {
	// Guard is the include guard symbol.
	Guard string

	// Preamble is written right after the guard, verbatim.
	Preamble string

	// TypePrefix is prepended to the function names to name their types.
	TypePrefix string

	// AggregateName is the name of the generated union.
	AggregateName string

	// InstanceQualifier qualifies the declaration of the global instance (e.g. "static").
	InstanceQualifier string

	// InstanceName is the name of the global instance.
	InstanceName string
}

// DefaultOptions reproduce the header expected by the gejo platform layer.
var DefaultOptions = Options{
	Guard:             "OPENGL_H",
	Preamble:          DefaultPreamble,
	TypePrefix:        "type_",
	AggregateName:     "OpenGL",
	InstanceQualifier: "global_variable",
	InstanceName:      "g_opengl",
}

// withDefaults fills the empty fields of o with DefaultOptions.
func (o Options) withDefaults() Options {
	if o.Guard == "" {
		o.Guard = DefaultOptions.Guard
	}
	if o.Preamble == "" {
		o.Preamble = DefaultOptions.Preamble
	}
	if o.TypePrefix == "" {
		o.TypePrefix = DefaultOptions.TypePrefix
	}
	if o.AggregateName == "" {
		o.AggregateName = DefaultOptions.AggregateName
	}
	if o.InstanceQualifier == "" {
		o.InstanceQualifier = DefaultOptions.InstanceQualifier
	}
	if o.InstanceName == "" {
		o.InstanceName = DefaultOptions.InstanceName
	}
	return o
}

// Assembler writes generated headers. See New.
type Assembler struct {
	opts Options
}

// New creates an Assembler with the given options. Empty fields take the values in DefaultOptions.
func New(opts Options) *Assembler {
	return &Assembler{opts: opts.withDefaults()}
}

// Options returns the options in use, with defaults filled in.
func (a *Assembler) Options() Options {
	return a.opts
}

// Render returns the generated header as a string.
func (a *Assembler) Render(set *resolve.Set) string {
	var sb strings.Builder
	// Writing to a strings.Builder never fails.
	_ = a.Write(&sb, set)
	return sb.String()
}

// Write the generated header for set to the given writer. The output is deterministic: the same set
// always renders to the same bytes.
func (a *Assembler) Write(writer io.Writer, set *resolve.Set) error {
	var err error
	w := func(format string, args ...any) {
		if err != nil {
			// No op if an error was encountered earlier
			return
		}
		_, err = fmt.Fprintf(writer, format, args...)
	}

	// Guard and preamble.
	w("#if !defined(%s)\n#define %s\n", a.opts.Guard, a.opts.Guard)
	w("%s", a.opts.Preamble)
	if !strings.HasSuffix(a.opts.Preamble, "\n") {
		w("\n")
	}

	// Constants.
	for _, define := range set.Defines() {
		w("%s\n", define)
	}

	// Function types.
	typedefs := set.Typedefs()
	for _, sym := range typedefs {
		w("%s\n", a.typedefLine(sym))
	}

	// Aggregate and its global instance.
	w("union %s\n{\n\tstruct\n\t{\n", a.opts.AggregateName)
	for _, sym := range typedefs {
		name := functionName(sym)
		w("\t\t%s%s* %s;\n", a.opts.TypePrefix, name, name)
	}
	w("\t};\n};\n")
	w("%s %s %s = {};\n", a.opts.InstanceQualifier, a.opts.AggregateName, a.opts.InstanceName)
	w("#endif")
	return err
}

// typedefLine returns the canonical typedef line of sym with the function name replaced by its type name.
func (a *Assembler) typedefLine(sym resolve.Symbol) string {
	name := functionName(sym)
	reName := regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `(\s*\()`)
	if loc := reName.FindStringIndex(sym.Typedef.Line); loc != nil {
		line := sym.Typedef.Line
		return line[:loc[0]] + a.opts.TypePrefix + line[loc[0]:]
	}
	return strings.ReplaceAll(sym.Typedef.Line, name, a.opts.TypePrefix+name)
}

// functionName returns the declared name of the function, falling back to the requested name
// if the declaration could not be parsed.
func functionName(sym resolve.Symbol) string {
	if sym.Typedef.Name != "" {
		return sym.Typedef.Name
	}
	return sym.Name
}
