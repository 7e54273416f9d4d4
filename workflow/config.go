package workflow

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/cistrome/scflow/util"
	"github.com/cistrome/scflow/workflow/assets"
	"github.com/grailbio/base/log"
	"github.com/pkg/errors"
	"github.com/valyala/fasttemplate"
)

// absPath returns the absolute form of path. The empty string is the
// sentinel for "not provided" and is passed through unchanged rather than
// resolved against the working directory.
func absPath(path string) string {
	if path == "" {
		return ""
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		// Abs fails only when the working directory is unavailable.
		return path
	}
	return abs
}

// signaturePath keeps built-in signature names as-is and absolutizes custom
// signature file paths.
func signaturePath(signature string) string {
	if isBuiltinSignature(signature) {
		return signature
	}
	return absPath(signature)
}

// Template values are rendered into YAML text, so everything is bound as a
// preformatted string. Booleans use the True/False spelling the downstream
// Snakemake configs expect.
func boolValue(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

func intValue(i int) string { return strconv.Itoa(i) }

func floatValue(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

// install materializes one workflow under dir: the rendered config.yaml,
// the workflow Snakefile, and the rule fragments for kinds that ship them.
// The directory is created if absent. config.yaml and Snakefile overwrite
// existing files; the rules/ copy refuses to touch an existing destination,
// and a failure partway leaves a partially populated directory behind.
func install(kind assets.Kind, dir string, vars map[string]interface{}) error {
	if err := os.MkdirAll(dir, 0777); err != nil {
		return errors.Wrapf(err, "creating workflow directory %s", dir)
	}
	tmpl, err := assets.Template(kind)
	if err != nil {
		return errors.Wrapf(err, "loading %s config template", kind)
	}
	rendered := fasttemplate.New(string(tmpl), "{{", "}}").ExecuteString(vars)
	configPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(rendered), 0666); err != nil {
		return errors.Wrapf(err, "writing %s", configPath)
	}
	log.Printf("wrote %s", configPath)

	snakefile, err := assets.Snakefile(kind)
	if err != nil {
		return errors.Wrapf(err, "loading %s Snakefile", kind)
	}
	snakePath := filepath.Join(dir, "Snakefile")
	if err := os.WriteFile(snakePath, snakefile, 0666); err != nil {
		return errors.Wrapf(err, "writing %s", snakePath)
	}
	log.Printf("installed %s", snakePath)

	if rules, ok := assets.Rules(kind); ok {
		rulesPath := filepath.Join(dir, "rules")
		if err := util.CopyTree(rules, rulesPath); err != nil {
			return errors.Wrapf(err, "installing %s rules", kind)
		}
		log.Printf("installed %s", rulesPath)
	}
	return nil
}

func (o *ScATACOptions) bindings() map[string]interface{} {
	return map[string]interface{}{
		// Multi-sample parameters.
		"batch":           boolValue(o.Batch),
		"consensus_peaks": boolValue(o.ConsensusPeaks),
		"cutoff_samples":  intValue(o.CutoffSamples),
		"bulk_peaks":      boolValue(o.BulkPeaks),
		"downsample":      boolValue(o.Downsample),
		"target_reads":    intValue(o.TargetReads),

		// Input.
		"input_path":    absPath(o.InputPath),
		"gzip":          boolValue(o.Gzip),
		"species":       o.Species,
		"platform":      o.Platform,
		"format":        o.Format,
		"mapping":       o.Mapping,
		"deduplication": o.Deduplication,

		// Reference genome.
		"giggleannotation": absPath(o.GiggleAnnotation),
		"fasta":            absPath(o.Fasta),
		"index":            absPath(o.Index),

		// Barcode library.
		"whitelist": absPath(o.Whitelist),

		// Running.
		"cores": intValue(o.Cores),

		// Cell-type annotation.
		"annotation": boolValue(o.Annotation),
		"method":     o.Method,
		"signature":  signaturePath(o.Signature),

		// Customized peaks.
		"custompeaks":    boolValue(o.CustomPeak),
		"custompeaksloc": absPath(o.CustomPeakFile),
		"shortpeaks":     boolValue(o.ShortPeak),
		"clusterpeaks":   boolValue(o.ClusterPeak),

		// Gene score.
		"rpmodel":      o.RPModel,
		"genedistance": intValue(o.GeneDistance),

		// Quality-control cutoffs.
		"peak":  intValue(o.PeakCutoff),
		"count": intValue(o.CountCutoff),
		"frip":  floatValue(o.FripCutoff),
		"cell":  intValue(o.CellCutoff),
	}
}

func (o *ScRNAOptions) bindings() map[string]interface{} {
	return map[string]interface{}{
		"sample_file":       o.SampleFile,
		"species":           o.Species,
		"platform":          o.Platform,
		"STARsolo_Features": o.STARsoloFeatures,
		"STARsolo_threads":  intValue(o.STARsoloThreads),
		"mergedname":        o.MergedName,
		"outprefix":         o.OutPrefix,
		"rseqc":             boolValue(o.RSeQC),
		"cores":             intValue(o.Cores),
		"count":             intValue(o.CountCutoff),
		"gene":              intValue(o.GeneCutoff),
		"cell":              intValue(o.CellCutoff),
		"signature":         signaturePath(o.Signature),
		"lisadir":           absPath(o.LisaDir),
		"mapindex":          absPath(o.MapIndex),
		"rsem":              absPath(o.RSEM),
		"whitelist":         absPath(o.Whitelist),
		"barcodestart":      intValue(o.BarcodeStart),
		"barcodelength":     intValue(o.BarcodeLength),
		"umistart":          intValue(o.UMIStart),
		"umilength":         intValue(o.UMILength),
		"trimr1":            boolValue(o.TrimR1),
		// Comma-separated fastq lists are recorded verbatim.
		"barcode":    o.FastqBarcode,
		"transcript": o.FastqTranscript,
	}
}

func (o *IntegrateOptions) bindings() map[string]interface{} {
	return map[string]interface{}{
		"rnaobject":  absPath(o.RNAObject),
		"atacobject": absPath(o.ATACObject),
		"outprefix":  o.OutPrefix,
	}
}

func (o *MultiomeOptions) bindings() map[string]interface{} {
	return map[string]interface{}{
		"rna_fastqdir":  absPath(o.RNAFastqDir),
		"atac_fastqdir": absPath(o.ATACFastqDir),
		"species":       o.Species,
		"outprefix":     o.OutPrefix,
		"cores":         intValue(o.Cores),
		"gzip":          boolValue(o.Gzip),

		"rna_count": intValue(o.RNACountCutoff),
		"rna_gene":  intValue(o.RNAGeneCutoff),
		"rna_cell":  intValue(o.RNACellCutoff),

		"lisadir":          absPath(o.LisaDir),
		"giggleannotation": absPath(o.GiggleAnnotation),
		"rna_mapindex":     absPath(o.RNAMapIndex),
		"atac_fasta":       absPath(o.ATACFasta),
		"atac_mapindex":    absPath(o.ATACMapIndex),
		"mapping":          o.Mapping,
		"rna_whitelist":    absPath(o.RNAWhitelist),
		"atac_whitelist":   absPath(o.ATACWhitelist),
		"rseqc":            boolValue(o.RSeQC),

		"atac_peak":  intValue(o.ATACPeakCutoff),
		"atac_count": intValue(o.ATACCountCutoff),
		"atac_frip":  floatValue(o.ATACFripCutoff),
		"atac_cell":  intValue(o.ATACCellCutoff),

		"annotation": boolValue(o.Annotation),
		"method":     o.Method,
		"signature":  signaturePath(o.Signature),

		"custompeaks":    boolValue(o.CustomPeak),
		"custompeaksloc": absPath(o.CustomPeakFile),
		"shortpeaks":     boolValue(o.ShortPeak),
		"clusterpeaks":   boolValue(o.ClusterPeak),

		"rpmodel":      o.RPModel,
		"genedistance": intValue(o.GeneDistance),
	}
}

// InitScATAC writes the scATAC-seq workflow config and Snakemake assets
// into o.Directory.
func InitScATAC(o *ScATACOptions) error {
	return install(assets.ScATAC, o.Directory, o.bindings())
}

// InitScRNA writes the scRNA-seq workflow config and Snakemake assets into
// o.Directory.
func InitScRNA(o *ScRNAOptions) error {
	return install(assets.ScRNA, o.Directory, o.bindings())
}

// InitIntegrate writes the integration workflow config and Snakefile into
// o.Directory. The integration workflow ships no rule fragments.
func InitIntegrate(o *IntegrateOptions) error {
	return install(assets.Integrate, o.Directory, o.bindings())
}

// InitMultiome writes the multiome workflow config and Snakemake assets
// into o.Directory.
func InitMultiome(o *MultiomeOptions) error {
	return install(assets.Multiome, o.Directory, o.bindings())
}
