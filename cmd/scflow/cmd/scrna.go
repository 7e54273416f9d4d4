package cmd

import (
	"fmt"

	"github.com/cistrome/scflow/workflow"
	"github.com/grailbio/base/cmdutil"
	"v.io/x/lib/cmdline"
)

func newCmdScRNAInit() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:  "scrna-init",
		Short: "Initialize the scRNA-seq workflow in a given directory",
		Long: `
scrna-init installs a Snakefile and a config file in a given directory.
Configure the config file according to your needs, then run the workflow
with Snakemake.
`,
	}
	opts := workflow.DefaultScRNAOptions

	// Input files arguments.
	cmd.Flags.StringVar(&opts.Platform, "platform", opts.Platform,
		"Platform of single cell RNA-seq: 10x-genomics, Dropseq or Smartseq2.")
	cmd.Flags.StringVar(&opts.SampleFile, "sample-file", opts.SampleFile,
		"JSON file with sample file information.")
	cmd.Flags.StringVar(&opts.InputPath, "input_path", opts.InputPath,
		"Directory where fastq files are stored (Dropseq and Smartseq2).")
	cmd.Flags.StringVar(&opts.FastqBarcode, "fastq-barcode", opts.FastqBarcode,
		"Barcode fastq file, Dropseq only. For multiple pairs provide a comma-separated list, e.g. test1_1.fastq,test2_1.fastq.")
	cmd.Flags.StringVar(&opts.FastqTranscript, "fastq-transcript", opts.FastqTranscript,
		"Transcript fastq file, Dropseq only. For multiple pairs provide a comma-separated list, e.g. test1_2.fastq,test2_2.fastq.")
	cmd.Flags.StringVar(&opts.Species, "species", opts.Species,
		"Genome assembly (GRCh38 for human and GRCm38 for mouse).")

	// STARsolo parameters arguments.
	cmd.Flags.StringVar(&opts.STARsoloFeatures, "STARsolo_Features", opts.STARsoloFeatures,
		"Passed to STARsolo --soloFeatures: Gene for single-cell data, GeneFull for single-nuclei data, 'Gene GeneFull' for both exon-level and exon+intron-level counts, SJ or Velocyto.")
	cmd.Flags.IntVar(&opts.STARsoloThreads, "STARsolo_threads", opts.STARsoloThreads,
		"Threads for running STARsolo.")

	// Running and output arguments.
	cmd.Flags.IntVar(&opts.Cores, "cores", opts.Cores, "The number of cores to use.")
	cmd.Flags.BoolVar(&opts.RSeQC, "rseqc", opts.RSeQC,
		"Run the RSeQC part of the pipeline; it takes a longer time.")
	cmd.Flags.StringVar(&opts.Directory, "directory", opts.Directory,
		"Path to the directory where the workflow shall be initialized and results shall be stored.")
	cmd.Flags.StringVar(&opts.MergedName, "mergedname", opts.MergedName,
		"Prefix of merged output files.")
	cmd.Flags.StringVar(&opts.OutPrefix, "outprefix", opts.OutPrefix,
		"Prefix of output files.")

	// Quality control arguments.
	cmd.Flags.IntVar(&opts.CountCutoff, "count-cutoff", opts.CountCutoff,
		"Cutoff for the number of counts in each cell.")
	cmd.Flags.IntVar(&opts.GeneCutoff, "gene-cutoff", opts.GeneCutoff,
		"Cutoff for the number of genes included in each cell.")
	cmd.Flags.IntVar(&opts.CellCutoff, "cell-cutoff", opts.CellCutoff,
		"Cutoff for the number of cells covered by each gene.")

	// Reference genome arguments.
	cmd.Flags.StringVar(&opts.MapIndex, "mapindex", opts.MapIndex,
		"Genome index directory for STAR, e.g. Refdata_scRNA_GRCh38/GRCh38_STAR_2.7.6a. Required.")
	cmd.Flags.StringVar(&opts.RSEM, "rsem", opts.RSEM,
		"Prefix of transcript references for RSEM as used by rsem-prepare-reference, e.g. Refdata_scRNA_GRCh38/GRCh38_RSEM_1.3.2/GRCh38. Required only for Smartseq2.")

	// Barcode arguments, for Dropseq or 10x-genomics.
	cmd.Flags.StringVar(&opts.Whitelist, "whitelist", opts.Whitelist,
		"Barcode library (whitelist) so STARsolo can error-correct and demultiplex cell barcodes. Make sure the whitelist matches the 10X chemistry version (V2 or V3).")
	cmd.Flags.IntVar(&opts.BarcodeStart, "barcode-start", opts.BarcodeStart,
		"The start site of each barcode.")
	cmd.Flags.IntVar(&opts.BarcodeLength, "barcode-length", opts.BarcodeLength,
		"The length of the cell barcode (16 for 10x-genomics).")
	cmd.Flags.IntVar(&opts.UMIStart, "umi-start", opts.UMIStart,
		"The start site of the UMI.")
	cmd.Flags.IntVar(&opts.UMILength, "umi-length", opts.UMILength,
		"The length of the UMI (10 for 10X V2 chemistry, 12 for V3).")
	cmd.Flags.BoolVar(&opts.TrimR1, "trimR1", opts.TrimR1,
		"Trim anything on R1 reads past the barcode information. Only necessary if reads were sequenced past these barcodes.")

	// Regulator identification arguments.
	cmd.Flags.StringVar(&opts.LisaDir, "lisadir", opts.LisaDir,
		"Path to lisa data files for regulator identification.")

	// Cell signature arguments.
	cmd.Flags.StringVar(&opts.Signature, "signature", opts.Signature,
		"Cell signature used to annotate cell types: a built-in set (human.immune.CIBERSORT, mouse.brain.ALLEN, mouse.all.facs.TabulaMuris, mouse.all.droplet.TabulaMuris) or the path of a tab-separated custom signature file (cell type, signature gene).")

	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 0 {
			return fmt.Errorf("scrna-init takes no positional arguments, but got %v", argv)
		}
		if err := workflow.ValidateScRNA(&opts); err != nil {
			return err
		}
		return workflow.InitScRNA(&opts)
	})
	return cmd
}
