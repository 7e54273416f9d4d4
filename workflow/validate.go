package workflow

import (
	"fmt"
	"os"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
)

// BuiltinSignatures are the cell signature sets shipped with the pipeline.
// The -signature flag must name one of these or an existing signature file.
var BuiltinSignatures = []string{
	"human.immune.CIBERSORT",
	"mouse.brain.ALLEN",
	"mouse.all.facs.TabulaMuris",
	"mouse.all.droplet.TabulaMuris",
}

// requirement names an option value that must be non-empty, together with
// the diagnostic reported when it is not.
type requirement struct {
	value   string
	message string
}

// rule is one row of a validation decision table. A rule only applies when
// its predicate holds. A matching rule either rejects the combination
// outright or demands a set of non-empty option values. Rules are evaluated
// in order and validation stops at the first violation. Rules marked warn
// report their diagnostic without failing validation; existing callers
// depend on these combinations still initializing a workflow.
type rule struct {
	when    bool
	warn    bool
	reject  string
	require []requirement
}

func evalRules(rules []rule) (warnings []string, err error) {
	for _, r := range rules {
		if !r.when {
			continue
		}
		if r.reject != "" {
			if r.warn {
				warnings = append(warnings, r.reject)
				continue
			}
			return warnings, errors.E(r.reject)
		}
		for _, req := range r.require {
			if req.value != "" {
				continue
			}
			if r.warn {
				warnings = append(warnings, req.message)
				continue
			}
			return warnings, errors.E(req.message)
		}
	}
	return warnings, nil
}

func logWarnings(warnings []string) {
	for _, w := range warnings {
		log.Error.Printf("%s", w)
	}
}

// checkChoice rejects values outside an enumerated flag domain.
func checkChoice(flag, value string, choices ...string) error {
	for _, c := range choices {
		if value == c {
			return nil
		}
	}
	return errors.E(fmt.Sprintf("-%s must be one of %s, got %q", flag, strings.Join(choices, "|"), value))
}

// checkSignature accepts a built-in signature name, or any value that names
// an existing file or directory.
func checkSignature(signature string) error {
	if isBuiltinSignature(signature) {
		return nil
	}
	if _, err := os.Stat(signature); err == nil {
		return nil
	}
	return errors.E("-signature must name a built-in signature set or an existing custom signature file. See -signature help for more details")
}

func isBuiltinSignature(signature string) bool {
	for _, s := range BuiltinSignatures {
		if signature == s {
			return true
		}
	}
	return false
}

// scatacRules encodes the platform/format/mapping compatibility matrix of
// the scATAC-seq workflow.
func scatacRules(o *ScATACOptions) []rule {
	return []rule{
		{
			when: true,
			require: []requirement{
				{o.GiggleAnnotation, "-giggleannotation is required for regulator identification. Please provide the giggle annotation path"},
			},
		},
		{
			when: o.Platform == PlatformTenX && o.Format == FormatFastq,
			require: []requirement{
				{o.InputPath, "-input_path is required. Please specify the directory where fastq files are stored"},
				{o.Fasta, "-fasta is required if fastq files are provided"},
				{o.Whitelist, "-whitelist is required for 10x-genomics data"},
			},
		},
		{
			when: o.Platform == PlatformTenX && o.Format == FormatBAM,
			require: []requirement{
				{o.InputPath, "-input_path is required. Please specify the directory where bam files are stored"},
			},
		},
		{
			when: o.Platform == PlatformTenX && o.Format == FormatFragments,
			require: []requirement{
				{o.InputPath, "-input_path is required. Please specify the directory where fragments files are stored"},
			},
		},
		{
			// Warn-only for compatibility: chromap cannot run without an
			// index, but a missing -index never blocked initialization.
			when: o.Mapping == MappingChromap && o.Format == FormatFastq,
			warn: true,
			require: []requirement{
				{o.Index, "-index is required if using chromap as the alignment tool"},
			},
		},
		{
			when: o.Platform == PlatformSciATAC && o.Format == FormatFastq,
			require: []requirement{
				{o.InputPath, "-input_path is required. Please specify the directory where fastq files are stored"},
				{o.Fasta, "-fasta is required if fastq files are provided"},
			},
		},
		{
			when:   o.Platform == PlatformSciATAC && o.Format == FormatFragments,
			reject: "format of 'fragments' is supported only when the platform is '10x-genomics'",
		},
		{
			// Warn-only for compatibility, as above.
			when:   o.Platform == PlatformSciATAC && (o.Mapping == MappingChromap || o.Mapping == ""),
			warn:   true,
			reject: "sci-ATAC-seq only supports mapping with minimap2",
		},
		{
			when: o.Platform == PlatformMicrofluidic && o.Format == FormatFastq,
			require: []requirement{
				{o.InputPath, "-input_path is required. Please specify the directory where fastq files are stored"},
				{o.Fasta, "-fasta is required if fastq files are provided"},
			},
		},
		{
			when:   o.Platform == PlatformMicrofluidic && o.Format == FormatBAM,
			reject: "format of 'bam' is supported when the platform is '10x-genomics' or 'sci-ATAC-seq'",
		},
		{
			when:   o.Platform == PlatformMicrofluidic && o.Format == FormatFragments,
			reject: "format of 'fragments' is supported only when the platform is '10x-genomics'",
		},
	}
}

// ValidateScATAC decides whether a scatac-init option combination is
// runnable. The compatibility matrix is an ordered rule table; the first
// violated rule produces the diagnostic.
func ValidateScATAC(o *ScATACOptions) error {
	if err := checkChoice("platform", o.Platform, PlatformTenX, PlatformSciATAC, PlatformMicrofluidic); err != nil {
		return err
	}
	if err := checkChoice("format", o.Format, FormatFastq, FormatFragments, FormatBAM); err != nil {
		return err
	}
	if err := checkChoice("mapping", o.Mapping, MappingChromap, MappingMinimap2); err != nil {
		return err
	}
	if err := checkChoice("species", o.Species, "GRCh38", "GRCm38"); err != nil {
		return err
	}
	if err := checkChoice("deduplication", o.Deduplication, "cell-level", "bulk-level"); err != nil {
		return err
	}
	if err := checkChoice("method", o.Method, "RP-based", "peak-based", "both"); err != nil {
		return err
	}
	if err := checkChoice("rpmodel", o.RPModel, "Simple", "Enhanced"); err != nil {
		return err
	}
	warnings, err := evalRules(scatacRules(o))
	logWarnings(warnings)
	if err != nil {
		return err
	}
	return checkSignature(o.Signature)
}

func scrnaRules(o *ScRNAOptions) []rule {
	return []rule{
		{
			when: true,
			require: []requirement{
				{o.MapIndex, "-mapindex is required. Please specify the STAR genome index directory"},
			},
		},
		{
			when: o.Platform == PlatformTenX,
			require: []requirement{
				{o.Whitelist, "-whitelist is required for 10x-genomics data"},
			},
		},
		{
			when: o.Platform == PlatformDropseq,
			require: []requirement{
				{o.InputPath, "-input_path is required for Dropseq data. Please specify the directory where fastq files are stored"},
				{o.FastqBarcode, "-fastq-barcode is required for Dropseq data. Please specify the barcode fastq file"},
				{o.FastqTranscript, "-fastq-transcript is required for Dropseq data. Please specify the transcript fastq file"},
				{o.Whitelist, "-whitelist is required for Dropseq data. Please provide the barcode whitelist"},
			},
		},
		{
			when: o.Platform == PlatformSmartseq2,
			require: []requirement{
				{o.InputPath, "-input_path is required. Please specify the directory where fastq files are stored"},
				{o.RSEM, "-rsem is required. Please provide the prefix of transcript references for RSEM. See -rsem help for more details"},
			},
		},
	}
}

// ValidateScRNA decides whether a scrna-init option combination is runnable.
func ValidateScRNA(o *ScRNAOptions) error {
	if err := checkChoice("platform", o.Platform, PlatformTenX, PlatformDropseq, PlatformSmartseq2); err != nil {
		return err
	}
	if err := checkChoice("species", o.Species, "GRCh38", "GRCm38"); err != nil {
		return err
	}
	if err := checkChoice("STARsolo_Features", o.STARsoloFeatures, "Gene", "GeneFull", "Gene GeneFull", "SJ", "Velocyto"); err != nil {
		return err
	}
	warnings, err := evalRules(scrnaRules(o))
	logWarnings(warnings)
	if err != nil {
		return err
	}
	return checkSignature(o.Signature)
}

// ValidateIntegrate decides whether an integrate-init option combination is
// runnable.
func ValidateIntegrate(o *IntegrateOptions) error {
	_, err := evalRules([]rule{
		{
			when: true,
			require: []requirement{
				{o.RNAObject, "-rna-object is required. Please provide the scRNA Seurat object"},
				{o.ATACObject, "-atac-object is required. Please provide the scATAC Seurat object"},
			},
		},
	})
	return err
}

func multiomeRules(o *MultiomeOptions) []rule {
	return []rule{
		{
			when: true,
			require: []requirement{
				{o.RNAMapIndex, "-rna-mapindex is required. Please specify the STAR genome index directory"},
				{o.GiggleAnnotation, "-giggleannotation is required for regulator identification. Please provide the giggle annotation path"},
			},
		},
		{
			// Same compatibility quirk as the scATAC chromap rule.
			when: o.Mapping == MappingChromap,
			warn: true,
			require: []requirement{
				{o.ATACMapIndex, "-atac-mapindex is required if using chromap as the alignment tool"},
			},
		},
	}
}

// ValidateMultiome decides whether a multiome-init option combination is
// runnable.
func ValidateMultiome(o *MultiomeOptions) error {
	if err := checkChoice("mapping", o.Mapping, MappingChromap, MappingMinimap2); err != nil {
		return err
	}
	if err := checkChoice("species", o.Species, "GRCh38", "GRCm38"); err != nil {
		return err
	}
	if err := checkChoice("method", o.Method, "RP-based", "peak-based", "both"); err != nil {
		return err
	}
	if err := checkChoice("rpmodel", o.RPModel, "Simple", "Enhanced"); err != nil {
		return err
	}
	warnings, err := evalRules(multiomeRules(o))
	logWarnings(warnings)
	if err != nil {
		return err
	}
	return checkSignature(o.Signature)
}
