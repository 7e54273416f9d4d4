package cmd

import (
	"fmt"

	"github.com/cistrome/scflow/workflow"
	"github.com/grailbio/base/cmdutil"
	"v.io/x/lib/cmdline"
)

func newCmdMultiomeInit() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:  "multiome-init",
		Short: "Initialize the multiome workflow in a given directory",
		Long: `
multiome-init installs the Snakemake rules and a config file for a joint
RNA + ATAC (multiome) library. Configure the config file according to your
needs, then run the workflow with Snakemake.
`,
	}
	opts := workflow.DefaultMultiomeOptions

	// Running arguments for both RNA and ATAC libraries.
	cmd.Flags.StringVar(&opts.Species, "species", opts.Species,
		"Genome assembly (GRCh38 for human and GRCm38 for mouse).")
	cmd.Flags.IntVar(&opts.Cores, "cores", opts.Cores, "Number of cores to use.")
	cmd.Flags.StringVar(&opts.Directory, "directory", opts.Directory,
		"Path to the directory where the workflow shall be initialized and results shall be stored.")
	cmd.Flags.StringVar(&opts.Directory, "d", opts.Directory, "Shorthand for -directory.")
	cmd.Flags.StringVar(&opts.OutPrefix, "outprefix", opts.OutPrefix,
		"Prefix of output files.")
	cmd.Flags.BoolVar(&opts.Gzip, "gzip", opts.Gzip, "Set if the input files are gzipped.")

	// Input and running arguments for scRNA-seq.
	cmd.Flags.StringVar(&opts.RNAFastqDir, "rna-fastq-dir", opts.RNAFastqDir,
		"Directory where RNA fastq files are stored.")
	cmd.Flags.StringVar(&opts.RNAWhitelist, "rna-whitelist", opts.RNAWhitelist,
		"RNA barcode whitelist for STARsolo error correction and demultiplexing. The RNA and ATAC barcode lists are associated by line number.")
	cmd.Flags.StringVar(&opts.RNAMapIndex, "rna-mapindex", opts.RNAMapIndex,
		"Genome index directory for STAR. Required.")
	cmd.Flags.BoolVar(&opts.RSeQC, "rseqc", opts.RSeQC,
		"Run the RSeQC part of the pipeline; it takes a longer time.")
	cmd.Flags.StringVar(&opts.LisaDir, "lisadir", opts.LisaDir,
		"Path to lisa data files for regulator identification.")

	// Quality control arguments for scRNA-seq.
	cmd.Flags.IntVar(&opts.RNACountCutoff, "rna-count-cutoff", opts.RNACountCutoff,
		"Cutoff for the number of counts in each cell for the RNA library.")
	cmd.Flags.IntVar(&opts.RNAGeneCutoff, "rna-gene-cutoff", opts.RNAGeneCutoff,
		"Cutoff for the number of genes included in each cell.")
	cmd.Flags.IntVar(&opts.RNACellCutoff, "rna-cell-cutoff", opts.RNACellCutoff,
		"Cutoff for the number of cells covered by each gene for the RNA library.")

	// Input and running arguments for scATAC-seq.
	cmd.Flags.StringVar(&opts.ATACFastqDir, "atac-fastq-dir", opts.ATACFastqDir,
		"Directory where ATAC fastq files are stored.")
	cmd.Flags.StringVar(&opts.ATACWhitelist, "atac-whitelist", opts.ATACWhitelist,
		"ATAC barcode whitelist. The RNA and ATAC barcode lists are associated by line number.")
	cmd.Flags.StringVar(&opts.Mapping, "mapping", opts.Mapping,
		"Alignment tool for scATAC-seq: chromap or minimap2.")
	cmd.Flags.StringVar(&opts.ATACFasta, "atac-fasta", opts.ATACFasta,
		"Genome fasta file for minimap2 and chromap.")
	cmd.Flags.StringVar(&opts.ATACMapIndex, "atac-mapindex", opts.ATACMapIndex,
		"Path of the reference index file for chromap (build with: chromap -i -r ref.fa -o index).")
	cmd.Flags.StringVar(&opts.GiggleAnnotation, "giggleannotation", opts.GiggleAnnotation,
		"Path of the giggle annotation file required for regulator identification. Required.")

	// Quality control arguments for scATAC-seq.
	cmd.Flags.IntVar(&opts.ATACPeakCutoff, "atac-peak-cutoff", opts.ATACPeakCutoff,
		"Minimum number of peaks included in each cell.")
	cmd.Flags.IntVar(&opts.ATACCountCutoff, "atac-count-cutoff", opts.ATACCountCutoff,
		"Cutoff for the number of counts in each cell for the ATAC library.")
	cmd.Flags.Float64Var(&opts.ATACFripCutoff, "atac-frip-cutoff", opts.ATACFripCutoff,
		"Cutoff for the fraction of reads in promoters in each cell.")
	cmd.Flags.IntVar(&opts.ATACCellCutoff, "atac-cell-cutoff", opts.ATACCellCutoff,
		"Minimum number of cells covered by each peak.")

	// Customized peak arguments for scATAC-seq.
	cmd.Flags.BoolVar(&opts.CustomPeak, "custompeak", opts.CustomPeak,
		"Provide custom peaks through -custompeak-file; they are merged with the peaks called by the pipeline.")
	cmd.Flags.StringVar(&opts.CustomPeakFile, "custompeak-file", opts.CustomPeakFile,
		"BED-formatted custom peak file (chrom, chromStart, chromEnd).")
	cmd.Flags.BoolVar(&opts.ShortPeak, "shortpeak", opts.ShortPeak,
		"Also call peaks from short fragments (<150bp) and merge them with the peaks called from all fragments.")
	cmd.Flags.BoolVar(&opts.ClusterPeak, "clusterpeak", opts.ClusterPeak,
		"Split the bam file by clustering result and call peaks per cluster.")

	// Gene score arguments for scATAC-seq.
	cmd.Flags.StringVar(&opts.RPModel, "rpmodel", opts.RPModel,
		"RP model for gene score calculation: Simple or Enhanced.")
	cmd.Flags.IntVar(&opts.GeneDistance, "genedistance", opts.GeneDistance,
		"Gene score decay distance, from 1kb (promoter-based regulation) to 10kb (enhancer-based regulation).")

	// Cell-type annotation arguments.
	cmd.Flags.BoolVar(&opts.Annotation, "annotation", opts.Annotation,
		"Perform cell-type annotation for scATAC-seq (the RNA library is always annotated). Specify the method through -method.")
	cmd.Flags.StringVar(&opts.Method, "method", opts.Method,
		"Cell-type annotation method for scATAC-seq: RP-based, peak-based or both.")
	cmd.Flags.StringVar(&opts.Signature, "signature", opts.Signature,
		"Cell signature used to annotate cell types: a built-in set (human.immune.CIBERSORT, mouse.brain.ALLEN, mouse.all.facs.TabulaMuris, mouse.all.droplet.TabulaMuris) or the path of a tab-separated custom signature file (cell type, signature gene).")

	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 0 {
			return fmt.Errorf("multiome-init takes no positional arguments, but got %v", argv)
		}
		if err := workflow.ValidateMultiome(&opts); err != nil {
			return err
		}
		return workflow.InitMultiome(&opts)
	})
	return cmd
}
