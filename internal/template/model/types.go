package model

import "os"

// Special file and directory names used by unjucks.
const (
	// TemplatesDirName is the default templates root directory name.
	TemplatesDirName = "_templates"
	// TemplateConfigFile is the optional per-generator or per-template
	// configuration file declaring variables and settings.
	TemplateConfigFile = "unjucks.yaml"
	// ProjectConfigFile is the project configuration file name.
	ProjectConfigFile = ".unjucks.yaml"
	// TemplateSuffix is stripped from rendered file names. A file named
	// "handler.go.njk" is emitted as "handler.go".
	TemplateSuffix = ".njk"
)

// VarType represents the type of a template variable.
type VarType string

const (
	// VarTypeString represents a string variable type.
	VarTypeString VarType = "string"
	// VarTypeInt represents an integer variable type.
	VarTypeInt VarType = "int"
	// VarTypeNumber represents a floating-point number variable type.
	VarTypeNumber VarType = "number"
	// VarTypeBool represents a boolean variable type.
	VarTypeBool VarType = "bool"
)

// TemplateFile represents a single file in a template directory.
type TemplateFile struct {
	// Path is the relative path from the template root. It may contain
	// {{ expressions }} that are rendered before output.
	Path string
	// Content is the raw file content including any frontmatter block.
	Content []byte
	// Mode is the file permission mode from the template source.
	Mode os.FileMode
	// IsBinary indicates the file must be copied verbatim, without
	// frontmatter parsing or rendering.
	IsBinary bool
}

// Variables holds the variable values available during rendering.
type Variables map[string]interface{}

// Clone returns a shallow copy of the variable map.
func (v Variables) Clone() Variables {
	out := make(Variables, len(v))
	for key, value := range v {
		out[key] = value
	}
	return out
}

// Merge returns a copy of v with entries from other layered on top.
func (v Variables) Merge(other Variables) Variables {
	out := v.Clone()
	for key, value := range other {
		out[key] = value
	}
	return out
}
