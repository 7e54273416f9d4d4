package cmd

import (
	"fmt"

	"github.com/cistrome/scflow/workflow"
	"github.com/grailbio/base/cmdutil"
	"v.io/x/lib/cmdline"
)

func newCmdScATACInit() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:  "scatac-init",
		Short: "Initialize the scATAC-seq workflow in a given directory",
		Long: `
scatac-init installs the scATAC-seq Snakemake rules and a config file in a
given directory. Configure the config file according to your needs, then run
the workflow with Snakemake.
`,
	}
	opts := workflow.DefaultScATACOptions

	// Multi-sample processing parameters.
	cmd.Flags.BoolVar(&opts.Batch, "batch", opts.Batch,
		"Call peaks on each sample individually first and merge peaks from all samples. A count matrix per sample is produced from the merged peak set.")
	cmd.Flags.BoolVar(&opts.ConsensusPeaks, "consensus_peaks", opts.ConsensusPeaks,
		"With -batch, merge consensus peaks from each sample. Set -cutoff_samples to define consensus.")
	cmd.Flags.IntVar(&opts.CutoffSamples, "cutoff_samples", opts.CutoffSamples,
		"Minimum number of samples a consensus peak must be present in.")
	cmd.Flags.BoolVar(&opts.BulkPeaks, "bulk_peaks", opts.BulkPeaks,
		"Call peaks after merging all bam files. Mutually exclusive with -consensus_peaks.")
	cmd.Flags.BoolVar(&opts.Downsample, "downsample", opts.Downsample,
		"Downsample bam files to -target_reads reads before peak calling.")
	cmd.Flags.IntVar(&opts.TargetReads, "target_reads", opts.TargetReads,
		"Number of reads to keep in downsampling. Samples with fewer reads keep their original count.")

	// Input files arguments.
	cmd.Flags.StringVar(&opts.InputPath, "input_path", opts.InputPath, "Path to input files.")
	cmd.Flags.BoolVar(&opts.Gzip, "gzip", opts.Gzip, "Set if the input files are gzipped.")
	cmd.Flags.StringVar(&opts.Species, "species", opts.Species,
		"Genome assembly (GRCh38 for human and GRCm38 for mouse).")
	cmd.Flags.StringVar(&opts.Platform, "platform", opts.Platform,
		"Platform of single cell ATAC-seq: 10x-genomics, sci-ATAC-seq or microfluidic.")
	cmd.Flags.StringVar(&opts.Format, "format", opts.Format,
		"Format of input files: fastq, fragments or bam (bam with CB tag or fragments.tsv.gz from CellRanger ATAC).")
	cmd.Flags.StringVar(&opts.Mapping, "mapping", opts.Mapping,
		"Alignment tool for scATAC-seq: chromap or minimap2.")
	cmd.Flags.StringVar(&opts.Deduplication, "deduplication", opts.Deduplication,
		"Deduplication level: cell-level or bulk-level.")

	// Reference genome arguments.
	cmd.Flags.StringVar(&opts.GiggleAnnotation, "giggleannotation", opts.GiggleAnnotation,
		"Path of the giggle annotation file required for regulator identification.")
	cmd.Flags.StringVar(&opts.Fasta, "fasta", opts.Fasta,
		"Genome fasta file for minimap2 and chromap.")
	cmd.Flags.StringVar(&opts.Index, "index", opts.Index,
		"Path of the reference index file for chromap (build with: chromap -i -r ref.fa -o index).")

	// Barcode library arguments.
	cmd.Flags.StringVar(&opts.Whitelist, "whitelist", opts.Whitelist,
		"Barcode library for sci-ATAC-seq and 10x-genomics so cell barcodes with 1 base mismatched can be corrected. Without it, barcodes with enough read count (>1000) are kept.")

	// Output arguments.
	cmd.Flags.IntVar(&opts.Cores, "cores", opts.Cores, "Number of cores to use.")
	cmd.Flags.StringVar(&opts.Directory, "directory", opts.Directory,
		"Path to the directory where the workflow shall be initialized and results shall be stored.")
	cmd.Flags.StringVar(&opts.Directory, "d", opts.Directory, "Shorthand for -directory.")

	// Cell-type annotation arguments.
	cmd.Flags.BoolVar(&opts.Annotation, "annotation", opts.Annotation,
		"Perform cell-type annotation. Specify the annotation method through -method.")
	cmd.Flags.StringVar(&opts.Method, "method", opts.Method,
		"Cell-type annotation method: RP-based, peak-based or both.")
	cmd.Flags.StringVar(&opts.Signature, "signature", opts.Signature,
		"Cell signature used to annotate cell types (required when -method is RP-based): a built-in set (human.immune.CIBERSORT, mouse.brain.ALLEN, mouse.all.facs.TabulaMuris, mouse.all.droplet.TabulaMuris) or the path of a tab-separated custom signature file (cell type, signature gene).")

	// Customized peak arguments.
	cmd.Flags.BoolVar(&opts.CustomPeak, "custompeak", opts.CustomPeak,
		"Provide custom peaks through -custompeak_file; they are merged with the peaks called by the pipeline.")
	cmd.Flags.StringVar(&opts.CustomPeakFile, "custompeak_file", opts.CustomPeakFile,
		"BED-formatted custom peak file (chrom, chromStart, chromEnd).")
	cmd.Flags.BoolVar(&opts.ShortPeak, "shortpeak", opts.ShortPeak,
		"Also call peaks from short fragments (<150bp) and merge them with the peaks called from all fragments.")
	cmd.Flags.BoolVar(&opts.ClusterPeak, "clusterpeak", opts.ClusterPeak,
		"Split the bam file by clustering result and call peaks per cluster.")

	// Gene score arguments.
	cmd.Flags.StringVar(&opts.RPModel, "rpmodel", opts.RPModel,
		"RP model for gene score calculation: Simple or Enhanced.")
	cmd.Flags.IntVar(&opts.GeneDistance, "genedistance", opts.GeneDistance,
		"Gene score decay distance, from 1kb (promoter-based regulation) to 10kb (enhancer-based regulation).")

	// Quality control arguments.
	cmd.Flags.IntVar(&opts.PeakCutoff, "peak_cutoff", opts.PeakCutoff,
		"Minimum number of peaks included in each cell.")
	cmd.Flags.IntVar(&opts.CountCutoff, "count_cutoff", opts.CountCutoff,
		"Cutoff for the number of counts in each cell.")
	cmd.Flags.Float64Var(&opts.FripCutoff, "frip_cutoff", opts.FripCutoff,
		"Cutoff for the fraction of reads in promoters in each cell.")
	cmd.Flags.IntVar(&opts.CellCutoff, "cell_cutoff", opts.CellCutoff,
		"Minimum number of cells covered by each peak.")

	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 0 {
			return fmt.Errorf("scatac-init takes no positional arguments, but got %v", argv)
		}
		if err := workflow.ValidateScATAC(&opts); err != nil {
			return err
		}
		return workflow.InitScATAC(&opts)
	})
	return cmd
}
