// Package settings provides build metadata, runtime configuration, and
// context helpers shared by the nodeedit CLI and library packages.
package settings

// CliBinaryName is the canonical binary name for this tool.
const CliBinaryName = "nodeedit"

// VersionInformation is populated at build time via ldflags.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: "v0.0.0-nightly",
	BuildTime:    "unknown",
}

// VersionInfo holds metadata about the build.
type VersionInfo struct {
	Commit       string
	BuildVersion string
	BuildTime    string
}

// Run holds the settings of a single execution: logging, where the document
// comes from, and how edits are written back.
type Run struct {
	MinLogLevel  int8
	DocumentPath string
	DefaultType  string
	DryRun       bool
	Backup       bool
	IsQuiet      bool
}

// NewCliParams returns the defaults used by the CLI before config and flags
// are applied.
func NewCliParams() *Run {
	return &Run{
		MinLogLevel: 0,
		DefaultType: "string",
	}
}
