// Package cmd implements the scflow command tree. Each subcommand
// initializes one single-cell analysis workflow in a target directory:
// it validates the flag combination, renders config.yaml and installs the
// bundled Snakemake assets. The actual analysis is run by Snakemake using
// the installed workflow.
package cmd

import (
	"v.io/x/lib/cmdline"
)

// Run executes the scflow command tree.
func Run() {
	cmdline.HideGlobalFlagsExcept()
	cmdline.Main(&cmdline.Command{
		Name:  "scflow",
		Short: "Initialize single-cell genomics analysis workflows",
		Long: `
scflow initializes single-cell genomics analysis workflows. Each init
subcommand writes a config.yaml and installs a Snakefile (plus rule files)
into a given directory; configure the config file according to your needs,
then run the workflow with Snakemake.
`,
		LookPath: false,
		Children: []*cmdline.Command{
			newCmdScRNAInit(),
			newCmdScATACInit(),
			newCmdIntegrateInit(),
			newCmdMultiomeInit(),
		},
	})
}
