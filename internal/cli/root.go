package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dl/rxd/internal/output"
)

// Version is the rxd release, overridden at build time with -ldflags.
var Version = "v0.1.0"

// Streams are the process streams the command reads its output targets from.
type Streams struct {
	Out io.Writer
	Err io.Writer
	// Interactive is set when Out is a terminal; rows are then written
	// one at a time instead of in batches.
	Interactive bool
}

// StdStreams returns stdout and stderr, with stdout written through writev.
func StdStreams() Streams {
	return Streams{
		Out:         output.NewWriter(),
		Err:         os.Stderr,
		Interactive: output.StdoutIsTerminal(),
	}
}

// flagValues receives the raw flag values before they are merged with the
// config file.
type flagValues struct {
	lines   int
	width   int
	group   int
	control bool
	header  bool
	json    bool
}

// NewRootCommand builds the rxd command.
func NewRootCommand(streams Streams, logger *log.Logger) *cobra.Command {
	var fv flagValues
	defaults := DefaultConfig()

	cmd := &cobra.Command{
		Use:           "rxd [OPTIONS] <FILE_PATH>",
		Short:         "Print a hexadecimal dump of a file",
		Long:          "rxd prints FILE_PATH as rows of grouped hex bytes with a character sidebar.\nUse - to read standard input.",
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return &UsageError{Err: fmt.Errorf("expected exactly one FILE_PATH argument, got %d", len(args))}
			}
			return nil
		},
		PreRun: func(cmd *cobra.Command, args []string) {
			cmd.Flags().Visit(func(f *pflag.Flag) {
				logger.Debug("flag", "name", f.Name, "value", f.Value.String())
			})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd.Flags(), fv, args[0], logger)
			if err != nil {
				return err
			}
			cfg.Interactive = streams.Interactive
			return Run(cmd.Context(), cfg, cmd.OutOrStdout(), logger)
		},
	}

	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.Err)
	cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	flags := cmd.Flags()
	flags.SortFlags = false
	flags.IntVarP(&fv.lines, "lines", "l", 0, "maximum number of rows to print (unset = unlimited)")
	flags.IntVarP(&fv.width, "width", "w", defaults.LineWidth, "bytes per row")
	flags.IntVarP(&fv.group, "group", "g", defaults.GroupLength, "bytes per group within a row")
	flags.BoolVarP(&fv.control, "control", "c", false, "render C0 control codes as characters instead of '.'")
	flags.BoolVar(&fv.header, "header", false, "print a column index header above the dump")
	flags.BoolVar(&fv.json, "json", false, "print one JSON object per row")
	flags.BoolP("version", "V", false, "print version and exit")

	return cmd
}

// resolveConfig layers defaults, the config file and explicitly set flags,
// in that order, and validates the result.
func resolveConfig(flags *pflag.FlagSet, fv flagValues, path string, logger *log.Logger) (Config, error) {
	cfg := DefaultConfig()
	cfg.Path = path

	fc, cfgPath, err := loadConfigFile()
	if err != nil {
		return Config{}, err
	}
	if cfgPath != "" {
		logger.Debug("loaded config file", "path", cfgPath)
	}
	fc.apply(&cfg)

	if flags.Changed("lines") {
		cfg.LineLimit = fv.lines
		cfg.LineLimitSet = true
	}
	if flags.Changed("width") {
		cfg.LineWidth = fv.width
	}
	if flags.Changed("group") {
		cfg.GroupLength = fv.group
	}
	if flags.Changed("control") {
		cfg.ShowControlChars = fv.control
	}
	if flags.Changed("header") {
		cfg.Header = fv.header
	}
	if flags.Changed("json") {
		cfg.JSONOutput = fv.json
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Main runs rxd with args (excluding the program name) and returns the
// process exit code. Errors are reported on streams.Err.
func Main(ctx context.Context, args []string, streams Streams) int {
	logger := NewLogger(streams.Err)

	if args == nil {
		args = []string{}
	}
	cmd := NewRootCommand(streams, logger)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	code := exitCode(err)
	switch code {
	case ExitOK:
	case ExitConfig:
		logger.Error("invalid options", "err", err)
		fmt.Fprintln(streams.Err, "Run 'rxd --help' for usage.")
	case ExitInterrupted:
		logger.Warn("interrupted")
	default:
		logger.Error("dump failed", "err", err)
	}
	return code
}
