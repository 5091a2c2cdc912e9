// Package cli implements the renamer command line.
package cli

import (
	"embed"
	stderrors "errors"
	"io/fs"

	"github.com/arthur-debert/renamer/internal/version"
	"github.com/arthur-debert/renamer/pkg/config"
	"github.com/arthur-debert/renamer/pkg/errors"
	"github.com/arthur-debert/renamer/pkg/executor"
	"github.com/arthur-debert/renamer/pkg/logging"
	"github.com/arthur-debert/renamer/pkg/naming"
	"github.com/arthur-debert/renamer/pkg/topics"
	"github.com/arthur-debert/renamer/pkg/types"
	"github.com/arthur-debert/renamer/pkg/ui"
	"github.com/arthur-debert/renamer/pkg/ui/confirmations"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

// flags holds the raw command line values
type flags struct {
	configPath      string
	verbosity       int
	global          bool
	dryRun          bool
	force           bool
	interactive     bool
	ignoreInvalid   bool
	format          string
	patterns        []string
	prefixIncrement string
	suffixIncrement string
}

// app is the state shared by the commands of one invocation
type app struct {
	flags flags
	cfg   *config.Config
	// fs replaces the OS filesystem in tests
	fs types.FS
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{})
}

func newRootCmd(a *app) *cobra.Command {
	initTemplateFormatting()

	rootCmd := &cobra.Command{
		Use:     "renamer [flags] PATTERN FILES...",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New(errors.ErrInvalidInput, MsgErrArgs)
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Flag verbosity covers config loading until the merged config is known
			logging.SetupLoggerWithOptions(logging.Options{
				Verbosity: a.flags.verbosity - 1,
				Console:   cmd.ErrOrStderr(),
			})
			if err := a.loadConfig(cmd); err != nil {
				return err
			}
			logging.SetupLoggerWithOptions(logging.Options{
				Verbosity: a.cfg.Behavior.Verbose - 1,
				LogFile:   a.cfg.Log.File,
				Console:   cmd.ErrOrStderr(),
			})
			log.Debug().Str("command", cmd.Name()).Str("config", a.cfg.Source).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args[0], args[1:])
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.flags.configPath, "config", "", MsgFlagConfig)
	pf.CountVarP(&a.flags.verbosity, "verbose", "v", MsgFlagVerbose)

	f := rootCmd.Flags()
	f.BoolVarP(&a.flags.global, "global", "g", false, MsgFlagGlobal)
	f.BoolVarP(&a.flags.dryRun, "dry-run", "d", false, MsgFlagDryRun)
	f.BoolVarP(&a.flags.force, "force", "f", false, MsgFlagForce)
	f.BoolVarP(&a.flags.interactive, "interactive", "i", false, MsgFlagInteractive)
	f.BoolVar(&a.flags.ignoreInvalid, "ignore-invalid-files", false, MsgFlagIgnoreInvalidFiles)
	f.StringVar(&a.flags.format, "format", "", MsgFlagFormat)
	// StringArray keeps commas inside regular expressions intact
	f.StringArrayVarP(&a.flags.patterns, "regexp", "e", nil, MsgFlagRegexp)
	f.StringVar(&a.flags.prefixIncrement, "prefix-increment", "", MsgFlagPrefixIncrement)
	f.StringVar(&a.flags.suffixIncrement, "suffix-increment", "", MsgFlagSuffixIncrement)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())
	rootCmd.AddCommand(newConfigCmd(a))

	tm, err := newTopicManager()
	if err != nil {
		// Embedded topics are part of the binary; this only fails on a broken build
		panic(err)
	}
	rootCmd.AddCommand(tm.Command(rootCmd.Name()))
	topics.Initialize(rootCmd, tm)

	return rootCmd
}

func newTopicManager() (*topics.TopicManager, error) {
	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		return nil, err
	}
	return topics.New(sub, topics.Options{Renderer: topics.NewGlamourRenderer()})
}

// loadConfig layers the explicitly set flags over the configuration
func (a *app) loadConfig(cmd *cobra.Command) error {
	cfg, err := config.Load(a.flags.configPath)
	if err != nil {
		return err
	}

	changed := cmd.Flags().Changed
	overrides := map[string]interface{}{}
	if changed("verbose") {
		overrides["behavior.verbose"] = a.flags.verbosity
	}
	if changed("global") {
		overrides["behavior.global"] = a.flags.global
	}
	// An overwrite policy given on the command line replaces the configured one
	if changed("force") {
		overrides["behavior.force"] = a.flags.force
		if a.flags.force && !changed("interactive") {
			overrides["behavior.interactive"] = false
		}
	}
	if changed("interactive") {
		overrides["behavior.interactive"] = a.flags.interactive
		if a.flags.interactive && !changed("force") {
			overrides["behavior.force"] = false
		}
	}
	if changed("ignore-invalid-files") {
		overrides["behavior.ignore_invalid_files"] = a.flags.ignoreInvalid
	}
	if changed("format") {
		overrides["output.format"] = a.flags.format
	}

	if len(overrides) > 0 {
		if cfg, err = config.LoadOverrides(cfg, overrides); err != nil {
			return err
		}
	}
	a.cfg = cfg
	return nil
}

// run renames files according to pattern and the parsed flags. Failures
// after the renderer exists are rendered by it and come back reported.
func (a *app) run(cmd *cobra.Command, pattern string, files []string) error {
	format, err := ui.ParseFormat(a.cfg.Output.Format)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput, MsgErrFormat, a.cfg.Output.Format)
	}
	renderer, err := ui.NewRenderer(format, cmd.OutOrStdout())
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "cannot create renderer")
	}

	if err := a.runBatch(cmd, format, renderer, pattern, files); err != nil {
		return renderFailure(cmd, format, renderer, err)
	}
	return nil
}

func (a *app) runBatch(cmd *cobra.Command, format ui.Format, renderer ui.Renderer, pattern string, files []string) error {
	rules, err := naming.ParseRules(append([]string{pattern}, a.flags.patterns...))
	if err != nil {
		return err
	}

	prefix, err := parseIncrementFlag("prefix-increment", a.flags.prefixIncrement)
	if err != nil {
		return err
	}
	suffix, err := parseIncrementFlag("suffix-increment", a.flags.suffixIncrement)
	if err != nil {
		return err
	}

	behavior := a.cfg.Behavior
	batch := executor.Batch{
		Transformer: naming.Transformer{
			Rules:    rules,
			MatchAll: behavior.Global,
			Prefix:   prefix,
			Suffix:   suffix,
		},
		Files:              files,
		DryRun:             a.flags.dryRun,
		Verbose:            behavior.Verbose > 0,
		Force:              behavior.Force,
		Interactive:        behavior.Interactive,
		IgnoreInvalidFiles: behavior.IgnoreInvalidFiles,
	}

	exec := executor.New(executor.Options{
		FS:      a.fs,
		Confirm: confirmations.NewPrompter(cmd.InOrStdin(), cmd.ErrOrStderr()),
		Sink:    renderer,
	})

	report, err := exec.Run(batch)
	if err != nil {
		return err
	}

	if behavior.Verbose > 1 || (format == ui.FormatJSON && (batch.Verbose || batch.DryRun)) {
		return renderer.RenderSummary(report)
	}
	return nil
}

// reportedError marks an error the renderer already showed the user
type reportedError struct {
	error
}

func (e *reportedError) Unwrap() error {
	return e.error
}

// IsReported reports whether err was already rendered, so callers only
// need to set the exit status.
func IsReported(err error) bool {
	var reported *reportedError
	return stderrors.As(err, &reported)
}

// renderFailure keeps JSON errors in the event stream on stdout; the other
// formats write the error to stderr.
func renderFailure(cmd *cobra.Command, format ui.Format, renderer ui.Renderer, err error) error {
	target := renderer
	if format != ui.FormatJSON {
		errRenderer, rerr := ui.NewRenderer(format, cmd.ErrOrStderr())
		if rerr != nil {
			return err
		}
		target = errRenderer
	}
	if rerr := target.RenderError(err); rerr != nil {
		return err
	}
	return &reportedError{error: err}
}

func parseIncrementFlag(name, value string) (*naming.IncrementSpec, error) {
	if value == "" {
		return nil, nil
	}
	spec, err := naming.ParseIncrement(value)
	if err != nil {
		if renameErr, ok := err.(*errors.RenameError); ok {
			return nil, renameErr.WithDetail("flag", name)
		}
		return nil, err
	}
	return &spec, nil
}
