package config

import (
	"testing"

	"github.com/gomlx/glheader/header"
	"github.com/gomlx/glheader/reference"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	c := New()
	require.NoError(t, c.Validate())
	assert.Equal(t, reference.DefaultSyntax, c.Syntax())
	assert.Equal(t, header.DefaultOptions, c.HeaderOptions())
	assert.Equal(t, "{Start OpenGLFunction}", c.StartMarker)
	assert.Equal(t, "{End OpenGLFunction}", c.EndMarker)
}

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/glheader.yaml", []byte(`
reference: /opt/khronos/glcorearb.h
guard: GEJO_OPENGL_H
type_prefix: PFN_
preamble: |
  #include <GL/gl.h>
  typedef char GLchar;
`), 0644))
	fromFile, err := Load(fs, "/glheader.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/opt/khronos/glcorearb.h", fromFile.Reference)
	assert.Empty(t, fromFile.AggregateName)

	c := New().Apply(fromFile)
	assert.Equal(t, "GEJO_OPENGL_H", c.Guard)
	assert.Equal(t, "PFN_", c.TypePrefix)
	assert.Equal(t, "#include <GL/gl.h>\ntypedef char GLchar;\n", c.Preamble)
	assert.Equal(t, "OpenGL", c.AggregateName)
	assert.Equal(t, "GLAPI", c.FunctionKeyword)
}

func TestLoad_Errors(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, err := Load(fs, "/missing.yaml")
	require.ErrorContains(t, err, `failed to read configuration "/missing.yaml"`)

	require.NoError(t, afero.WriteFile(fs, "/bad.yaml", []byte("guard: [unterminated"), 0644))
	_, err = Load(fs, "/bad.yaml")
	require.ErrorContains(t, err, `failed to parse configuration "/bad.yaml"`)
}

func TestFromEnv(t *testing.T) {
	env := map[string]string{
		"GLHEADER_INSTANCE_NAME": "gl",
		"GLHEADER_START_MARKER":  "BEGIN GL",
	}
	fromEnv, err := FromEnv(func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	})
	require.NoError(t, err)
	assert.Equal(t, "gl", fromEnv.InstanceName)
	assert.Equal(t, "BEGIN GL", fromEnv.StartMarker)
	assert.Empty(t, fromEnv.Guard)
}

func TestApply_Precedence(t *testing.T) {
	fromFile := Config{Guard: "FILE_H", InstanceName: "file_gl"}
	fromEnv := Config{InstanceName: "env_gl"}
	c := New().Apply(fromFile).Apply(fromEnv)
	assert.Equal(t, "FILE_H", c.Guard)
	assert.Equal(t, "env_gl", c.InstanceName)
	assert.Equal(t, "global_variable", c.InstanceQualifier)
}

func TestValidate(t *testing.T) {
	c := New()
	c.Reference = ""
	require.ErrorContains(t, c.Validate(), `"reference" must be set`)
}
