package amlpack

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/arthur-debert/amlpack/pkg/aml"
	"github.com/arthur-debert/amlpack/pkg/classify"
	"github.com/arthur-debert/amlpack/pkg/config"
	"github.com/arthur-debert/amlpack/pkg/diff"
	"github.com/arthur-debert/amlpack/pkg/errors"
	"github.com/arthur-debert/amlpack/pkg/export"
	"github.com/arthur-debert/amlpack/pkg/filesystem"
	"github.com/arthur-debert/amlpack/pkg/logging"
	"github.com/arthur-debert/amlpack/pkg/style"
	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

func newDiffCmd(opts *rootOptions) *cobra.Command {
	var (
		asJSON bool
		all    bool
	)

	cmd := &cobra.Command{
		Use:     "diff <base> <head>",
		Short:   MsgDiffShort,
		Long:    MsgDiffLong,
		Example: MsgDiffExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := loadSide(opts.cfg, args[0])
			if err != nil {
				return err
			}
			head, err := loadSide(opts.cfg, args[1])
			if err != nil {
				return err
			}

			changes := diff.Compare(base, head)
			logger := logging.GetLogger("cmd.diff")
			logger.Info().
				Str("base", args[0]).
				Str("head", args[1]).
				Stringer("summary", diff.Summarize(changes)).
				Msg("Compared exports")

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), changes)
			}
			fmt.Fprint(cmd.OutOrStdout(), style.DiffReport(sheet(cmd), changes, all))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, MsgFlagJSON)
	cmd.Flags().BoolVar(&all, "all", false, MsgFlagAll)
	return cmd
}

// loadSide reads one side of a diff: an export directory, a manifest, or
// an AML document
func loadSide(cfg *config.Config, path string) ([]diff.File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", path).
			WithDetail("path", path)
	}

	if info.IsDir() {
		if cfg.Export.Manifest == "" {
			return nil, errors.Newf(errors.ErrInvalidInput, MsgErrNoManifest, path)
		}
		path = filepath.Join(path, cfg.Export.Manifest)
	}

	if _, err := export.FormatForPath(path); err == nil {
		m, err := export.ReadManifest(filesystem.NewOS(), path)
		if err != nil {
			return nil, err
		}
		return m.Files(), nil
	}

	records, err := aml.ReadRecordsFile(path)
	if err != nil {
		return nil, err
	}
	return diff.Items(classify.ClassifyAll(records, classifyOptions(cfg))), nil
}

type jsonChange struct {
	Key    string      `json:"key"`
	Status diff.Status `json:"status"`
	Label  string      `json:"label"`
	Base   string      `json:"base_compare_key,omitempty"`
	Head   string      `json:"head_compare_key,omitempty"`
}

type jsonReport struct {
	Changes []jsonChange `json:"changes"`
	Summary diff.Summary `json:"summary"`
}

func writeJSON(w io.Writer, changes []diff.Change) error {
	report := jsonReport{
		Changes: make([]jsonChange, 0, len(changes)),
		Summary: diff.Summarize(changes),
	}
	for _, c := range changes {
		jc := jsonChange{Key: c.Key, Status: c.Status, Label: c.Label()}
		if c.Base != nil {
			jc.Base = c.Base.CompareKey()
		}
		if c.Head != nil {
			jc.Head = c.Head.CompareKey()
		}
		report.Changes = append(report.Changes, jc)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return errors.Wrap(err, errors.ErrInternal, MsgErrEncodeJSON)
	}
	return nil
}
