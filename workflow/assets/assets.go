// Package assets bundles the static workflow material installed by the
// init commands: one config.yaml template, one Snakefile and (for most
// kinds) a directory of Snakemake rule fragments per workflow kind.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed scRNA scATAC integrate multiome
var files embed.FS

// Kind identifies one bundled workflow.
type Kind string

const (
	ScRNA     Kind = "scRNA"
	ScATAC    Kind = "scATAC"
	Integrate Kind = "integrate"
	Multiome  Kind = "multiome"
)

// Template returns the config.yaml template of a workflow kind.
func Template(kind Kind) ([]byte, error) {
	return files.ReadFile(string(kind) + "/config_template.yaml")
}

// Snakefile returns the workflow definition of a workflow kind.
func Snakefile(kind Kind) ([]byte, error) {
	return files.ReadFile(string(kind) + "/Snakefile")
}

// Rules returns the rule fragment directory of a workflow kind. The second
// return value is false for kinds that ship no rules (integrate).
func Rules(kind Kind) (fs.FS, bool) {
	sub, err := fs.Sub(files, string(kind)+"/rules")
	if err != nil {
		return nil, false
	}
	if _, err := fs.Stat(sub, "."); err != nil {
		return nil, false
	}
	return sub, true
}
