package cmd

import (
	"fmt"

	"github.com/cistrome/scflow/workflow"
	"github.com/grailbio/base/cmdutil"
	"v.io/x/lib/cmdline"
)

func newCmdIntegrateInit() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:  "integrate-init",
		Short: "Initialize the cross-modality integration workflow in a given directory",
		Long: `
integrate-init installs a Snakefile and a config file for integrating a
scRNA-seq and a scATAC-seq dataset of the same tissue. Configure the config
file according to your needs, then run the workflow with Snakemake.
`,
	}
	opts := workflow.DefaultIntegrateOptions

	// Input files arguments.
	cmd.Flags.StringVar(&opts.RNAObject, "rna-object", opts.RNAObject,
		"Path of the scRNA Seurat object generated by the scRNA pipeline. Required.")
	cmd.Flags.StringVar(&opts.ATACObject, "atac-object", opts.ATACObject,
		"Path of the scATAC Seurat object generated by the scATAC pipeline. Required.")

	// Running and output arguments.
	cmd.Flags.StringVar(&opts.Directory, "directory", opts.Directory,
		"Path to the directory where the workflow shall be initialized and results shall be stored.")
	cmd.Flags.StringVar(&opts.Directory, "d", opts.Directory, "Shorthand for -directory.")
	cmd.Flags.StringVar(&opts.OutPrefix, "outprefix", opts.OutPrefix,
		"Prefix of output files.")

	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 0 {
			return fmt.Errorf("integrate-init takes no positional arguments, but got %v", argv)
		}
		if err := workflow.ValidateIntegrate(&opts); err != nil {
			return err
		}
		return workflow.InitIntegrate(&opts)
	})
	return cmd
}
