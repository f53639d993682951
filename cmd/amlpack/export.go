package amlpack

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/amlpack/pkg/aml"
	"github.com/arthur-debert/amlpack/pkg/classify"
	"github.com/arthur-debert/amlpack/pkg/export"
	"github.com/arthur-debert/amlpack/pkg/filesystem"
	"github.com/arthur-debert/amlpack/pkg/logging"
	"github.com/arthur-debert/amlpack/pkg/paths"
	"github.com/arthur-debert/amlpack/pkg/style"
	"github.com/spf13/cobra"
)

func newExportCmd(opts *rootOptions) *cobra.Command {
	var (
		output string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:     "export <input.xml>",
		Short:   MsgExportShort,
		Long:    MsgExportLong,
		Example: MsgExportExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.export")
			input := args[0]
			if output == "" {
				output = defaultOutput(input)
			}
			logger.Info().
				Str("input", input).
				Str("output", output).
				Bool("dryRun", dryRun).
				Msg("Starting export")

			records, err := aml.ReadRecordsFile(input)
			if err != nil {
				return err
			}

			cfg := opts.cfg
			items := classify.ClassifyAll(records, classifyOptions(cfg))

			bundle, err := export.Plan(items, paths.NewAllocator(pathOptions(cfg)))
			if err != nil {
				return err
			}

			format, err := cfg.ManifestFormat()
			if err != nil {
				return err
			}

			var fsys filesystem.FS = filesystem.NewOS()
			if dryRun {
				fsys = filesystem.NewMemory()
			}
			if err := export.Write(fsys, bundle, output, export.Options{
				Manifest: cfg.Export.Manifest,
				Format:   format,
			}); err != nil {
				return err
			}

			title := fmt.Sprintf(MsgExportTitle, output)
			var files []string
			if dryRun {
				title = fmt.Sprintf(MsgDryRunTitle, output)
				files = bundle.Paths()
			}
			fmt.Fprint(cmd.OutOrStdout(), style.ExportReport(sheet(cmd), title, items, files))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	return cmd
}

// defaultOutput places the export next to its input: dir/parts.xml exports
// to dir/parts
func defaultOutput(input string) string {
	base := filepath.Base(input)
	return filepath.Join(filepath.Dir(input), strings.TrimSuffix(base, filepath.Ext(base)))
}
