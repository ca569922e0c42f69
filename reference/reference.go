// Package reference indexes a canonical OpenGL reference header (glcorearb.h style)
// into the constant definitions and function declarations it carries.
//
// Only two kinds of lines matter:
//
//   - `#define GL_RED 0x1903` lines, kept verbatim.
//   - `GLAPI void APIENTRY glCullFace (GLenum mode);` lines, converted to their canonical
//     typedef form `typedef void OPENGL_APIENTRY glCullFace (GLenum mode);`.
//
// Everything else is ignored. There is no real C parsing: the lines are treated as free text,
// and lookups are done by whole-word matching (see package resolve).
package reference

import (
	"regexp"
	"strings"
)

// Syntax holds the keywords used to recognize and rewrite reference lines.
type Syntax struct {
	// DefineKeyword is the first token of constant definition lines.
	DefineKeyword string

	// FunctionKeyword is the first token of function declaration lines.
	FunctionKeyword string

	// TypedefKeyword replaces FunctionKeyword in the canonical form.
	TypedefKeyword string

	// CallingConvention is the calling convention marker used in the reference declarations,
	// and InternalCallingConvention is what it is replaced with in the canonical form.
	CallingConvention, InternalCallingConvention string
}

// DefaultSyntax matches glcorearb.h.
var DefaultSyntax = Syntax{
	DefineKeyword:             "#define",
	FunctionKeyword:           "GLAPI",
	TypedefKeyword:            "typedef",
	CallingConvention:         "APIENTRY",
	InternalCallingConvention: "OPENGL_APIENTRY",
}

// Typedef is a function declaration from the reference, in its canonical typedef form.
type Typedef struct {
	// Line is the canonical form, without the line terminator.
	Line string

	// Declared is the function name as declared in the reference. It is what requested
	// names and loader code are matched against.
	Declared string

	// ReturnType, CallingConvention, Name and Params are the parsed parts of the canonical form.
	// Params doesn't include the enclosing parenthesis.
	ReturnType, CallingConvention, Name, Params string
}

// Index of the reference: both lists are in source order and not de-duplicated.
type Index struct {
	Defines  []string
	Typedefs []Typedef
}

// Lines returns the lines of the given table.
func (idx *Index) Lines(table Table) []string {
	switch table {
	case Defines:
		return idx.Defines
	case Typedefs:
		lines := make([]string, len(idx.Typedefs))
		for ii, td := range idx.Typedefs {
			lines[ii] = td.Line
		}
		return lines
	default:
		return nil
	}
}

var reDeclaration = regexp.MustCompile(`^(.*?)\b(\w+)\s*\((.*)\)`)

// Parse indexes the reference header contents. It never fails: lines that are not recognized
// are simply skipped.
func Parse(contents string, syntax Syntax) *Index {
	p := newParser(syntax)
	idx := &Index{}
	for _, line := range splitLines(contents) {
		switch firstToken(line) {
		case "":
			continue
		case syntax.DefineKeyword:
			idx.Defines = append(idx.Defines, line)
		case syntax.FunctionKeyword:
			idx.Typedefs = append(idx.Typedefs, p.typedef(line))
		}
	}
	return idx
}

type parser struct {
	syntax                         Syntax
	reCallConv, reInternalCallConv *regexp.Regexp
}

func newParser(syntax Syntax) *parser {
	return &parser{
		syntax:             syntax,
		reCallConv:         wholeWord(syntax.CallingConvention),
		reInternalCallConv: wholeWord(syntax.InternalCallingConvention),
	}
}

// typedef converts a declaration line (starting with the function keyword) to its canonical form.
func (p *parser) typedef(line string) Typedef {
	keywordPos := strings.Index(line, p.syntax.FunctionKeyword)
	canonical := line[:keywordPos] + p.syntax.TypedefKeyword + line[keywordPos+len(p.syntax.FunctionKeyword):]
	if p.reCallConv != nil {
		canonical = p.reCallConv.ReplaceAllLiteralString(canonical, p.syntax.InternalCallingConvention)
	}
	td := Typedef{Line: canonical}

	// Structured parts are parsed from what follows the typedef keyword.
	rest := strings.TrimSpace(canonical[keywordPos+len(p.syntax.TypedefKeyword):])
	matches := reDeclaration.FindStringSubmatch(rest)
	if matches == nil {
		return td
	}
	td.Name = matches[2]
	td.Declared = matches[2]
	td.Params = strings.TrimSpace(matches[3])
	prefix := strings.TrimSpace(matches[1])
	if p.reInternalCallConv != nil {
		if loc := p.reInternalCallConv.FindStringIndex(prefix); loc != nil {
			td.CallingConvention = prefix[loc[0]:loc[1]]
			prefix = strings.TrimSpace(prefix[:loc[0]] + " " + prefix[loc[1]:])
		}
	}
	td.ReturnType = prefix
	return td
}

// wholeWord returns a regular expression matching the literal word only on word boundaries,
// or nil if word is empty.
func wholeWord(word string) *regexp.Regexp {
	if word == "" {
		return nil
	}
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(word) + `\b`)
}

// splitLines splits the contents in lines, dropping the "\n" or "\r\n" terminators.
func splitLines(contents string) []string {
	lines := strings.Split(contents, "\n")
	for ii, line := range lines {
		lines[ii] = strings.TrimSuffix(line, "\r")
	}
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func firstToken(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
