// Package workflow implements the option model, combination validation and
// config generation for the single-cell analysis workflows installed by
// scflow. Each workflow kind (scRNA-seq, scATAC-seq, integration, multiome)
// carries its own options struct; the validators decide whether a parsed
// combination is runnable, and the Init functions render the config.yaml and
// install the Snakemake assets the downstream engine consumes.
package workflow

// Platforms recognized by the expression (scRNA-seq) workflow.
const (
	PlatformTenX      = "10x-genomics"
	PlatformDropseq   = "Dropseq"
	PlatformSmartseq2 = "Smartseq2"
)

// Additional platforms recognized by the chromatin-accessibility
// (scATAC-seq) workflow.
const (
	PlatformSciATAC      = "sci-ATAC-seq"
	PlatformMicrofluidic = "microfluidic"
)

// Input formats accepted by the scATAC-seq workflow.
const (
	FormatFastq     = "fastq"
	FormatBAM       = "bam"
	FormatFragments = "fragments"
)

// Alignment tools selectable for scATAC-seq and multiome data.
const (
	MappingChromap  = "chromap"
	MappingMinimap2 = "minimap2"
)

// ScRNAOptions holds the option surface of scrna-init.
type ScRNAOptions struct {
	Platform string
	// SampleFile is a JSON file describing the input fastq files per sample.
	SampleFile string
	// InputPath is the directory holding fastq files. Dropseq and Smartseq2
	// read their input from here.
	InputPath string
	// FastqBarcode and FastqTranscript are comma-separated fastq lists,
	// Dropseq only.
	FastqBarcode    string
	FastqTranscript string
	Species         string

	// Parameters forwarded to STARsolo.
	STARsoloFeatures string
	STARsoloThreads  int

	Cores      int
	RSeQC      bool
	Directory  string
	MergedName string
	OutPrefix  string

	// Quality-control cutoffs, accepted as-is.
	CountCutoff int
	GeneCutoff  int
	CellCutoff  int

	// MapIndex is the STAR genome index directory.
	MapIndex string
	// RSEM is the transcript reference prefix for rsem-prepare-reference,
	// Smartseq2 only.
	RSEM string

	// Barcode geometry, for Dropseq and 10x-genomics.
	Whitelist     string
	BarcodeStart  int
	BarcodeLength int
	UMIStart      int
	UMILength     int
	TrimR1        bool

	// LisaDir points at the lisa data files for regulator identification.
	LisaDir string
	// Signature is a built-in cell signature name or the path of a custom
	// signature file.
	Signature string
}

// DefaultScRNAOptions mirrors the documented flag defaults of scrna-init.
var DefaultScRNAOptions = ScRNAOptions{
	Platform:         PlatformTenX,
	SampleFile:       "samples.json",
	Species:          "GRCh38",
	STARsoloFeatures: "Gene",
	STARsoloThreads:  12,
	Cores:            10,
	Directory:        "MAESTRO",
	MergedName:       "All_sample",
	OutPrefix:        "MAESTRO",
	CountCutoff:      1000,
	GeneCutoff:       500,
	CellCutoff:       10,
	BarcodeStart:     1,
	BarcodeLength:    16, // 10x-genomics barcode length
	UMIStart:         17,
	UMILength:        10, // 10x V2 chemistry; V3 uses 12
	Signature:        "human.immune.CIBERSORT",
}

// ScATACOptions holds the option surface of scatac-init.
type ScATACOptions struct {
	// Multi-sample processing. BulkPeaks and ConsensusPeaks are mutually
	// exclusive ways of deriving a common peak set.
	Batch          bool
	ConsensusPeaks bool
	CutoffSamples  int
	BulkPeaks      bool
	Downsample     bool
	TargetReads    int

	InputPath string
	Gzip      bool
	Species   string
	Platform  string
	Format    string
	Mapping   string
	// Deduplication level, cell-level or bulk-level.
	Deduplication string

	// GiggleAnnotation is the giggle annotation path required for regulator
	// identification.
	GiggleAnnotation string
	// Fasta is the genome fasta for minimap2 and chromap.
	Fasta string
	// Index is the prebuilt chromap reference index.
	Index string

	Whitelist string

	Cores     int
	Directory string

	Annotation bool
	Method     string
	Signature  string

	CustomPeak     bool
	CustomPeakFile string
	ShortPeak      bool
	ClusterPeak    bool

	RPModel      string
	GeneDistance int

	PeakCutoff  int
	CountCutoff int
	FripCutoff  float64
	CellCutoff  int
}

// DefaultScATACOptions mirrors the documented flag defaults of scatac-init.
var DefaultScATACOptions = ScATACOptions{
	CutoffSamples: 2,
	TargetReads:   50000000,
	Species:       "GRCh38",
	Platform:      PlatformTenX,
	Format:        FormatFastq,
	Mapping:       MappingChromap,
	Deduplication: "cell-level",
	Cores:         8,
	Directory:     "MAESTRO",
	Method:        "RP-based",
	Signature:     "human.immune.CIBERSORT",
	RPModel:       "Enhanced",
	GeneDistance:  10000,
	PeakCutoff:    100,
	CountCutoff:   1000,
	FripCutoff:    0.2,
	CellCutoff:    10,
}

// IntegrateOptions holds the option surface of integrate-init.
type IntegrateOptions struct {
	// RNAObject and ATACObject are the Seurat objects produced by the scRNA
	// and scATAC workflows.
	RNAObject  string
	ATACObject string
	Directory  string
	OutPrefix  string
}

// DefaultIntegrateOptions mirrors the documented flag defaults of
// integrate-init.
var DefaultIntegrateOptions = IntegrateOptions{
	Directory: "MAESTRO",
	OutPrefix: "MAESTRO",
}

// MultiomeOptions holds the option surface of multiome-init, covering a
// paired RNA and ATAC library of the same cells.
type MultiomeOptions struct {
	Species   string
	Cores     int
	Directory string
	OutPrefix string
	Gzip      bool

	RNAFastqDir  string
	RNAWhitelist string
	RNAMapIndex  string
	RSeQC        bool
	LisaDir      string

	RNACountCutoff int
	RNAGeneCutoff  int
	RNACellCutoff  int

	ATACFastqDir     string
	ATACWhitelist    string
	Mapping          string
	ATACFasta        string
	ATACMapIndex     string
	GiggleAnnotation string

	ATACPeakCutoff  int
	ATACCountCutoff int
	ATACFripCutoff  float64
	ATACCellCutoff  int

	CustomPeak     bool
	CustomPeakFile string
	ShortPeak      bool
	ClusterPeak    bool

	RPModel      string
	GeneDistance int

	Annotation bool
	Method     string
	Signature  string
}

// DefaultMultiomeOptions mirrors the documented flag defaults of
// multiome-init.
var DefaultMultiomeOptions = MultiomeOptions{
	Species:         "GRCh38",
	Cores:           8,
	Directory:       "MAESTRO",
	OutPrefix:       "MAESTRO",
	Mapping:         MappingChromap,
	RNACountCutoff:  1000,
	RNAGeneCutoff:   500,
	RNACellCutoff:   10,
	ATACPeakCutoff:  100,
	ATACCountCutoff: 1000,
	ATACFripCutoff:  0.2,
	ATACCellCutoff:  10,
	RPModel:         "Enhanced",
	GeneDistance:    10000,
	Method:          "RP-based",
	Signature:       "human.immune.CIBERSORT",
}
