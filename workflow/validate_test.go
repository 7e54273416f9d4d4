package workflow

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/grailbio/testutil/expect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validScATAC returns a combination accepted for every platform/format pair
// that the rule table allows.
func validScATAC() ScATACOptions {
	o := DefaultScATACOptions
	o.GiggleAnnotation = "/ref/giggle"
	o.InputPath = "/data/fastq"
	o.Fasta = "/ref/GRCh38_genome.fa"
	o.Index = "/ref/GRCh38_chromap.index"
	o.Whitelist = "/ref/737K-cratac-v1.txt"
	return o
}

func TestScATACRules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ScATACOptions)
		wantErr string // empty means accept
	}{
		{"defaults with inputs", func(o *ScATACOptions) {}, ""},
		{"10x fastq missing input_path", func(o *ScATACOptions) { o.InputPath = "" }, "-input_path"},
		{"10x fastq missing fasta", func(o *ScATACOptions) { o.Fasta = "" }, "-fasta"},
		{"10x fastq missing whitelist", func(o *ScATACOptions) { o.Whitelist = "" }, "-whitelist"},
		{"10x bam needs only input_path", func(o *ScATACOptions) {
			o.Format = FormatBAM
			o.Fasta, o.Whitelist, o.Index = "", "", ""
		}, ""},
		{"10x bam missing input_path", func(o *ScATACOptions) {
			o.Format = FormatBAM
			o.InputPath = ""
		}, "-input_path"},
		{"10x fragments needs only input_path", func(o *ScATACOptions) {
			o.Format = FormatFragments
			o.Fasta, o.Whitelist, o.Index = "", "", ""
		}, ""},
		{"chromap fastq missing index warns only", func(o *ScATACOptions) { o.Index = "" }, ""},
		{"minimap2 fastq without index", func(o *ScATACOptions) {
			o.Mapping = MappingMinimap2
			o.Index = ""
		}, ""},
		{"sci fastq with minimap2", func(o *ScATACOptions) {
			o.Platform = PlatformSciATAC
			o.Mapping = MappingMinimap2
			o.Index = ""
		}, ""},
		{"sci fastq missing fasta", func(o *ScATACOptions) {
			o.Platform = PlatformSciATAC
			o.Mapping = MappingMinimap2
			o.Fasta = ""
		}, "-fasta"},
		{"sci fragments always rejected", func(o *ScATACOptions) {
			o.Platform = PlatformSciATAC
			o.Mapping = MappingMinimap2
			o.Format = FormatFragments
		}, "'fragments'"},
		{"sci with chromap warns only", func(o *ScATACOptions) {
			o.Platform = PlatformSciATAC
		}, ""},
		{"microfluidic fastq with minimap2", func(o *ScATACOptions) {
			o.Platform = PlatformMicrofluidic
			o.Mapping = MappingMinimap2
			o.Index = ""
		}, ""},
		{"microfluidic bam always rejected", func(o *ScATACOptions) {
			o.Platform = PlatformMicrofluidic
			o.Format = FormatBAM
		}, "'bam'"},
		{"microfluidic fragments always rejected", func(o *ScATACOptions) {
			o.Platform = PlatformMicrofluidic
			o.Format = FormatFragments
		}, "'fragments'"},
		{"missing giggleannotation", func(o *ScATACOptions) { o.GiggleAnnotation = "" }, "-giggleannotation"},
		{"unknown platform", func(o *ScATACOptions) { o.Platform = "nanowell" }, "-platform"},
		{"unknown format", func(o *ScATACOptions) { o.Format = "cram" }, "-format"},
		{"unknown mapping tool", func(o *ScATACOptions) { o.Mapping = "bwa" }, "-mapping"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := validScATAC()
			tt.mutate(&o)
			err := ValidateScATAC(&o)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

// Two combinations are diagnosed but still accepted: chromap without a
// prebuilt index, and sci-ATAC-seq with a mapping tool other than minimap2.
func TestScATACWarnRules(t *testing.T) {
	o := validScATAC()
	o.Index = ""
	warnings, err := evalRules(scatacRules(&o))
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "-index")

	o = validScATAC()
	o.Platform = PlatformSciATAC
	warnings, err = evalRules(scatacRules(&o))
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "minimap2")
}

// The fragments format is rejected for sci-ATAC-seq regardless of any other
// field.
func TestSciATACFragmentsUnconditional(t *testing.T) {
	o := validScATAC()
	o.Platform = PlatformSciATAC
	o.Mapping = MappingMinimap2
	o.Format = FormatFragments
	o.InputPath = "/data/fragments"
	require.Error(t, ValidateScATAC(&o))
}

func validScRNA() ScRNAOptions {
	o := DefaultScRNAOptions
	o.MapIndex = "/ref/GRCh38_STAR_2.7.6a"
	o.Whitelist = "/ref/737K-august-2016.txt"
	return o
}

func TestScRNARules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ScRNAOptions)
		wantErr string
	}{
		{"10x with whitelist", func(o *ScRNAOptions) {}, ""},
		{"10x missing whitelist", func(o *ScRNAOptions) { o.Whitelist = "" }, "-whitelist"},
		{"missing mapindex", func(o *ScRNAOptions) { o.MapIndex = "" }, "-mapindex"},
		{"Dropseq complete", func(o *ScRNAOptions) {
			o.Platform = PlatformDropseq
			o.InputPath = "/data/fastq"
			o.FastqBarcode = "test1_1.fastq,test2_1.fastq"
			o.FastqTranscript = "test1_2.fastq,test2_2.fastq"
		}, ""},
		{"Dropseq missing input_path", func(o *ScRNAOptions) {
			o.Platform = PlatformDropseq
			o.FastqBarcode = "test_1.fastq"
			o.FastqTranscript = "test_2.fastq"
		}, "-input_path"},
		{"Dropseq missing fastq-barcode", func(o *ScRNAOptions) {
			o.Platform = PlatformDropseq
			o.InputPath = "/data/fastq"
			o.FastqTranscript = "test_2.fastq"
		}, "-fastq-barcode"},
		{"Dropseq missing fastq-transcript", func(o *ScRNAOptions) {
			o.Platform = PlatformDropseq
			o.InputPath = "/data/fastq"
			o.FastqBarcode = "test_1.fastq"
		}, "-fastq-transcript"},
		{"Dropseq missing whitelist", func(o *ScRNAOptions) {
			o.Platform = PlatformDropseq
			o.InputPath = "/data/fastq"
			o.FastqBarcode = "test_1.fastq"
			o.FastqTranscript = "test_2.fastq"
			o.Whitelist = ""
		}, "-whitelist"},
		{"Smartseq2 complete", func(o *ScRNAOptions) {
			o.Platform = PlatformSmartseq2
			o.InputPath = "/data/fastq"
			o.RSEM = "/ref/GRCh38_RSEM_1.3.2/GRCh38"
			o.Whitelist = ""
		}, ""},
		{"Smartseq2 missing rsem", func(o *ScRNAOptions) {
			o.Platform = PlatformSmartseq2
			o.InputPath = "/data/fastq"
			o.Whitelist = ""
		}, "-rsem"},
		{"unknown platform", func(o *ScRNAOptions) { o.Platform = "inDrop" }, "-platform"},
		{"unknown soloFeatures", func(o *ScRNAOptions) { o.STARsoloFeatures = "Exon" }, "-STARsolo_Features"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := validScRNA()
			tt.mutate(&o)
			err := ValidateScRNA(&o)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestSignature(t *testing.T) {
	// Built-in names are accepted independent of filesystem state.
	for _, s := range BuiltinSignatures {
		expect.EQ(t, checkSignature(s), nil)
	}

	// Arbitrary names that do not exist on disk are rejected.
	assert.Error(t, checkSignature("human.lung.custom"))
	assert.Error(t, checkSignature(filepath.Join(t.TempDir(), "absent.txt")))

	// Any existing path is accepted.
	custom := filepath.Join(t.TempDir(), "signature.txt")
	require.NoError(t, os.WriteFile(custom, []byte("B cell\tCD19\n"), 0666))
	assert.NoError(t, checkSignature(custom))
}

func TestValidateIntegrate(t *testing.T) {
	o := DefaultIntegrateOptions
	assert.ErrorContains(t, ValidateIntegrate(&o), "-rna-object")
	o.RNAObject = "/result/rna.rds"
	assert.ErrorContains(t, ValidateIntegrate(&o), "-atac-object")
	o.ATACObject = "/result/atac.rds"
	assert.NoError(t, ValidateIntegrate(&o))
}

func TestValidateMultiome(t *testing.T) {
	o := DefaultMultiomeOptions
	o.RNAMapIndex = "/ref/GRCh38_STAR_2.7.6a"
	o.GiggleAnnotation = "/ref/giggle"
	o.ATACMapIndex = "/ref/GRCh38_chromap.index"
	assert.NoError(t, ValidateMultiome(&o))

	missing := o
	missing.RNAMapIndex = ""
	assert.ErrorContains(t, ValidateMultiome(&missing), "-rna-mapindex")

	missing = o
	missing.GiggleAnnotation = ""
	assert.ErrorContains(t, ValidateMultiome(&missing), "-giggleannotation")

	// chromap without a prebuilt index is diagnosed but accepted.
	missing = o
	missing.ATACMapIndex = ""
	assert.NoError(t, ValidateMultiome(&missing))
	warnings, err := evalRules(multiomeRules(&missing))
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "-atac-mapindex")

	missing.Mapping = MappingMinimap2
	warnings, err = evalRules(multiomeRules(&missing))
	require.NoError(t, err)
	assert.Empty(t, warnings)
}
