package amlpack

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/arthur-debert/amlpack/internal/version"
	"github.com/arthur-debert/amlpack/pkg/classify"
	"github.com/arthur-debert/amlpack/pkg/cobrax/topics"
	"github.com/arthur-debert/amlpack/pkg/config"
	"github.com/arthur-debert/amlpack/pkg/errors"
	"github.com/arthur-debert/amlpack/pkg/logging"
	"github.com/arthur-debert/amlpack/pkg/paths"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicsFS embed.FS

// rootOptions carries global flags and the loaded configuration to
// subcommands
type rootOptions struct {
	verbosity  int
	configPath string
	cfg        *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "amlpack",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Setup logging based on verbosity
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", MsgFlagConfig)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})
	rootCmd.SetCompletionCommandGroupID("misc")

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newExportCmd(opts))
	rootCmd.AddCommand(newDiffCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	// Initialize topic-based help system
	helpTopics, err := fs.Sub(topicsFS, "topics")
	if err == nil {
		var renderer topics.Renderer = &topics.PlainRenderer{}
		if isTerminal(os.Stdout) {
			renderer = topics.NewGlamourRenderer()
		}
		topicOpts := topics.Options{
			Extensions: []string{".txt", ".md"},
			Renderer:   renderer,
		}
		if err := topics.InitializeWithOptions(rootCmd, helpTopics, topicOpts); err != nil {
			log.Warn().Err(err).Msg("Failed to load help topics")
		}
	}
	rootCmd.SetHelpCommandGroupID("misc")

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		// skip config loading
		PersistentPreRun: func(cmd *cobra.Command, args []string) {},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

// classifyOptions maps the configuration onto the batch classifier
func classifyOptions(cfg *config.Config) classify.Options {
	return classify.Options{
		Workers:          cfg.Classify.Workers,
		DependencyChecks: cfg.Classify.DependencyChecks,
	}
}

// pathOptions maps the configuration onto the path allocator
func pathOptions(cfg *config.Config) paths.Options {
	return paths.Options{
		ScriptsFolder: cfg.Export.ScriptsFolder,
		Extension:     cfg.Export.Extension,
	}
}
