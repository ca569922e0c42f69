package report

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/gomlx/glheader/loaderdiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func TestReport_Write(t *testing.T) {
	var buf bytes.Buffer
	r := &Report{Destination: "opengl.h", NumDefines: 1, NumTypedefs: 1}
	require.NoError(t, r.Write(&buf))
	assert.Equal(t, "Successfully wrote opengl.h with\n1 defines and 1 function signatures\n", buf.String())
}

func TestReport_WriteMissing(t *testing.T) {
	var buf bytes.Buffer
	r := &Report{
		Destination: "opengl.h",
		NumDefines:  0,
		NumTypedefs: 2,
		Missing: []loaderdiff.Missing{
			{Request: "glFoo", Signature: "typedef void OPENGL_APIENTRY glFoo(GLint x);"},
		},
	}
	require.NoError(t, r.Write(&buf))
	assert.Equal(t, "Successfully wrote opengl.h with\n"+
		"0 defines and 2 function signatures\n"+
		MissingWarning+"\n"+
		`["glFoo", "typedef void OPENGL_APIENTRY glFoo(GLint x);"]`+"\n", buf.String())
}

func TestReport_DryRun(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&Report{}).Write(&buf))
	assert.Equal(t, "Generated header with\n0 defines and 0 function signatures\n", buf.String())
}
