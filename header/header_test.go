package header

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gomlx/glheader/reference"
	"github.com/gomlx/glheader/resolve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveTest(t *testing.T, ref string, requests ...string) *resolve.Set {
	idx := reference.Parse(ref, reference.DefaultSyntax)
	set, err := resolve.Resolve(idx, requests)
	require.NoError(t, err)
	return set
}

func TestAssembler_Render(t *testing.T) {
	set := resolveTest(t, "#define GL_RED 0x1903\nGLAPI void APIENTRY glFoo(GLint x);\n", "GL_RED", "glFoo")
	got := New(Options{}).Render(set)
	want := `#if !defined(OPENGL_H)
#define OPENGL_H
#include <gl/gl.h>
typedef char GLchar;
typedef ptrdiff_t GLsizeiptr;
typedef ptrdiff_t GLintptr;
typedef u32 GLuint;
typedef u8 GLubyte;
#define GL_RED 0x1903
typedef void OPENGL_APIENTRY type_glFoo(GLint x);
union OpenGL
{
	struct
	{
		type_glFoo* glFoo;
	};
};
global_variable OpenGL g_opengl = {};
#endif`
	require.Equal(t, want, got)
}

func TestAssembler_DefineOnly(t *testing.T) {
	set := resolveTest(t, "#define GL_RED 0x1903\n", "GL_RED")
	got := New(Options{}).Render(set)
	assert.Contains(t, got, "#define GL_RED 0x1903\n")
	assert.Contains(t, got, "union OpenGL\n{\n\tstruct\n\t{\n\t};\n};\n")
	assert.NotContains(t, got, "GL_RED;")
}

func TestAssembler_FieldOrder(t *testing.T) {
	ref := `GLAPI void APIENTRY glA (void);
GLAPI void APIENTRY glB (void);
GLAPI const GLubyte *APIENTRY glC (GLenum name);
`
	set := resolveTest(t, ref, "glC", "glA", "glB")
	got := New(Options{}).Render(set)
	assert.Contains(t, got, "\t\ttype_glC* glC;\n\t\ttype_glA* glA;\n\t\ttype_glB* glB;\n")
	assert.Contains(t, got, "typedef const GLubyte *OPENGL_APIENTRY type_glC (GLenum name);\n"+
		"typedef void OPENGL_APIENTRY type_glA (void);\n")

	// Deterministic.
	assert.Equal(t, got, New(Options{}).Render(set))
}

func TestAssembler_Options(t *testing.T) {
	set := resolveTest(t, "GLAPI void APIENTRY glFoo(GLint x);\n", "glFoo")
	a := New(Options{
		Guard:             "MY_GL_H",
		Preamble:          "#include <GL/glcorearb.h>",
		TypePrefix:        "PFN_",
		AggregateName:     "GLApi",
		InstanceQualifier: "static",
		InstanceName:      "gl",
	})
	assert.Equal(t, "type_", DefaultOptions.TypePrefix)
	got := a.Render(set)
	assert.Contains(t, got, "#if !defined(MY_GL_H)\n#define MY_GL_H\n#include <GL/glcorearb.h>\ntypedef void")
	assert.Contains(t, got, "typedef void OPENGL_APIENTRY PFN_glFoo(GLint x);\n")
	assert.Contains(t, got, "union GLApi\n")
	assert.Contains(t, got, "\t\tPFN_glFoo* glFoo;\n")
	assert.Contains(t, got, "static GLApi gl = {};\n#endif")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestAssembler_WriteError(t *testing.T) {
	set := resolveTest(t, "GLAPI void APIENTRY glFoo(GLint x);\n", "glFoo")
	err := New(Options{}).Write(failingWriter{}, set)
	require.ErrorContains(t, err, "disk full")

	var buf bytes.Buffer
	require.NoError(t, New(Options{}).Write(&buf, set))
	assert.Equal(t, New(Options{}).Render(set), buf.String())
}

func TestAssembler_EmptyOptionsUseDefaults(t *testing.T) {
	a := New(Options{InstanceQualifier: "", Preamble: "", Guard: "MY_GL_H"})
	opts := a.Options()
	assert.Equal(t, "MY_GL_H", opts.Guard)
	assert.Equal(t, DefaultOptions.InstanceQualifier, opts.InstanceQualifier)
	assert.Equal(t, DefaultPreamble, opts.Preamble)

	set := resolveTest(t, "GLAPI void APIENTRY glFoo(GLint x);\n", "glFoo")
	assert.Contains(t, a.Render(set), "global_variable OpenGL g_opengl = {};\n")
}
