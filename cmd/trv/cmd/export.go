package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/490951954-a11y/TCRL-in-china-area-analysis/internal/config"
	"github.com/490951954-a11y/TCRL-in-china-area-analysis/internal/domain"
	"github.com/490951954-a11y/TCRL-in-china-area-analysis/internal/export"
	"github.com/490951954-a11y/TCRL-in-china-area-analysis/internal/observability"
	"github.com/490951954-a11y/TCRL-in-china-area-analysis/internal/pipeline"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write the parsed dataset as JSON, CSV, or GeoJSON",
	Long: `export scans the input and writes every recovered block to a flat
file. JSON preserves all original fields losslessly and can be re-ingested;
CSV flattens to one row per track point with lat/lon/velocity converted to
degrees and m/s; GeoJSON emits one LineString feature per track.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := newEnv()
		if err != nil {
			return err
		}
		path, err := resolveInput(cfg, args)
		if err != nil {
			return err
		}

		runner := pipeline.NewRunner(logger, observability.NewMetrics())
		out, err := runner.Run(path)
		if err != nil {
			return err
		}

		dest, err := writeExport(cfg, exportFormat, exportOut, out.Blocks)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d blocks to %s\n", len(out.Blocks), dest)
		return nil
	},
}

// writeExport writes blocks in the named format, defaulting the output path
// into cfg.ExportDir when none was given. Returns the path written.
func writeExport(cfg *config.Config, format, outPath string, blocks []domain.Block) (string, error) {
	type formatDef struct {
		ext   string
		write func(string, []domain.Block) error
	}
	formats := map[string]formatDef{
		"json":    {ext: "json", write: export.WriteJSONFile},
		"csv":     {ext: "csv", write: export.WriteCSVFile},
		"geojson": {ext: "geojson", write: export.WriteGeoJSONFile},
	}

	def, ok := formats[format]
	if !ok {
		return "", fmt.Errorf("unknown export format %q: want json, csv, or geojson", format)
	}

	dest := outPath
	if dest == "" {
		dest = filepath.Join(cfg.ExportDir, "trv_parsed."+def.ext)
	}
	if err := def.write(dest, blocks); err != nil {
		return "", err
	}
	return dest, nil
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "export format: json, csv, or geojson")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output path (default: <export dir>/trv_parsed.<ext>)")
	rootCmd.AddCommand(exportCmd)
}
