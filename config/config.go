// Package config holds the generation profile: the syntax of the reference, the loader
// markers and the shape of the generated header.
//
// Values are consolidated from, in increasing priority: defaults (New), a YAML file (Load),
// environment variables (FromEnv) and finally command-line flags. Empty values never
// override, so a profile cannot set a field to empty (see header.Options).
package config

import (
	"github.com/gomlx/glheader/header"
	"github.com/gomlx/glheader/loaderdiff"
	"github.com/gomlx/glheader/reference"
	"github.com/mstoykov/envconfig"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// DefaultReferencePath is where glcorearb.h is looked for if not configured.
const DefaultReferencePath = "~/gejo/libs/glcorearb.h"

// Config of a generation run.
type Config struct {
	// Reference is the path to the canonical reference header (glcorearb.h).
	Reference string `yaml:"reference" envconfig:"GLHEADER_REFERENCE"`

	// Keywords in the reference.
	DefineKeyword             string `yaml:"define_keyword" envconfig:"GLHEADER_DEFINE_KEYWORD"`
	FunctionKeyword           string `yaml:"function_keyword" envconfig:"GLHEADER_FUNCTION_KEYWORD"`
	TypedefKeyword            string `yaml:"typedef_keyword" envconfig:"GLHEADER_TYPEDEF_KEYWORD"`
	CallingConvention         string `yaml:"calling_convention" envconfig:"GLHEADER_CALLING_CONVENTION"`
	InternalCallingConvention string `yaml:"internal_calling_convention" envconfig:"GLHEADER_INTERNAL_CALLING_CONVENTION"`

	// Loader region markers.
	StartMarker string `yaml:"start_marker" envconfig:"GLHEADER_START_MARKER"`
	EndMarker   string `yaml:"end_marker" envconfig:"GLHEADER_END_MARKER"`

	// Generated header.
	Guard             string `yaml:"guard" envconfig:"GLHEADER_GUARD"`
	Preamble          string `yaml:"preamble" envconfig:"GLHEADER_PREAMBLE"`
	TypePrefix        string `yaml:"type_prefix" envconfig:"GLHEADER_TYPE_PREFIX"`
	AggregateName     string `yaml:"aggregate_name" envconfig:"GLHEADER_AGGREGATE_NAME"`
	InstanceQualifier string `yaml:"instance_qualifier" envconfig:"GLHEADER_INSTANCE_QUALIFIER"`
	InstanceName      string `yaml:"instance_name" envconfig:"GLHEADER_INSTANCE_NAME"`
}

// New returns the default configuration, which reproduces the gejo platform layer setup.
func New() Config {
	syntax := reference.DefaultSyntax
	opts := header.DefaultOptions
	return Config{
		Reference:                 DefaultReferencePath,
		DefineKeyword:             syntax.DefineKeyword,
		FunctionKeyword:           syntax.FunctionKeyword,
		TypedefKeyword:            syntax.TypedefKeyword,
		CallingConvention:         syntax.CallingConvention,
		InternalCallingConvention: syntax.InternalCallingConvention,
		StartMarker:               loaderdiff.DefaultStartMarker,
		EndMarker:                 loaderdiff.DefaultEndMarker,
		Guard:                     opts.Guard,
		Preamble:                  opts.Preamble,
		TypePrefix:                opts.TypePrefix,
		AggregateName:             opts.AggregateName,
		InstanceQualifier:         opts.InstanceQualifier,
		InstanceName:              opts.InstanceName,
	}
}

// Apply returns c with every non-empty field of other overriding it.
func (c Config) Apply(other Config) Config {
	set := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	set(&c.Reference, other.Reference)
	set(&c.DefineKeyword, other.DefineKeyword)
	set(&c.FunctionKeyword, other.FunctionKeyword)
	set(&c.TypedefKeyword, other.TypedefKeyword)
	set(&c.CallingConvention, other.CallingConvention)
	set(&c.InternalCallingConvention, other.InternalCallingConvention)
	set(&c.StartMarker, other.StartMarker)
	set(&c.EndMarker, other.EndMarker)
	set(&c.Guard, other.Guard)
	set(&c.Preamble, other.Preamble)
	set(&c.TypePrefix, other.TypePrefix)
	set(&c.AggregateName, other.AggregateName)
	set(&c.InstanceQualifier, other.InstanceQualifier)
	set(&c.InstanceName, other.InstanceName)
	return c
}

// Load reads a YAML configuration file from fs. Fields not present in the file are left empty.
func Load(fs afero.Fs, path string) (Config, error) {
	var c Config
	contents, err := afero.ReadFile(fs, path)
	if err != nil {
		return c, errors.Wrapf(err, "failed to read configuration %q", path)
	}
	if err = yaml.Unmarshal(contents, &c); err != nil {
		return c, errors.Wrapf(err, "failed to parse configuration %q", path)
	}
	return c, nil
}

// FromEnv reads the GLHEADER_* variables using lookup (usually os.LookupEnv).
func FromEnv(lookup func(key string) (string, bool)) (Config, error) {
	var c Config
	if err := envconfig.Process("", &c, lookup); err != nil {
		return c, errors.Wrap(err, "failed to read configuration from environment")
	}
	return c, nil
}

// Syntax returns the reference syntax configured.
func (c Config) Syntax() reference.Syntax {
	return reference.Syntax{
		DefineKeyword:             c.DefineKeyword,
		FunctionKeyword:           c.FunctionKeyword,
		TypedefKeyword:            c.TypedefKeyword,
		CallingConvention:         c.CallingConvention,
		InternalCallingConvention: c.InternalCallingConvention,
	}
}

// HeaderOptions returns the generated header options configured.
func (c Config) HeaderOptions() header.Options {
	return header.Options{
		Guard:             c.Guard,
		Preamble:          c.Preamble,
		TypePrefix:        c.TypePrefix,
		AggregateName:     c.AggregateName,
		InstanceQualifier: c.InstanceQualifier,
		InstanceName:      c.InstanceName,
	}
}

// Validate checks that the fields required to generate a header are set.
func (c Config) Validate() error {
	required := []struct{ name, value string }{
		{"reference", c.Reference},
		{"define_keyword", c.DefineKeyword},
		{"function_keyword", c.FunctionKeyword},
		{"typedef_keyword", c.TypedefKeyword},
	}
	for _, r := range required {
		if r.value == "" {
			return errors.Errorf("configuration %q must be set", r.name)
		}
	}
	return nil
}
