package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iamdustan/postcss/internal/config"
	"github.com/iamdustan/postcss/internal/logging"
	"github.com/iamdustan/postcss/scanner"
)

// app holds the state shared by all subcommands of one invocation.
type app struct {
	cfgFile  string
	format   string
	color    bool
	lenient  bool
	logLevel string
	logFile  string

	cfg     config.Config
	logger  *slog.Logger
	closers []io.Closer
}

// Execute runs the csstok command line.
func Execute() error {
	a := &app{}
	root := a.newRootCommand()
	err := a.execute(root)
	if err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "csstok: %v\n", err)
	}
	return err
}

// NewRootCommand returns the csstok command tree.
func NewRootCommand() *cobra.Command {
	return (&app{}).newRootCommand()
}

// execute runs root and closes the files opened by setup. Cobra skips
// PersistentPostRun when a command fails, so closing happens here as well.
func (a *app) execute(root *cobra.Command) error {
	defer a.close()
	return root.Execute()
}

func (a *app) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "csstok",
		Short: "Tokenize stylesheets",
		Long: `csstok splits stylesheet source into positioned tokens.

Input is read from the named file, or from stdin when the file is "-" or
omitted. Printing the tokens back reproduces the input exactly.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { a.close() },
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (.toml, .yaml or .cue)")
	flags.StringVarP(&a.format, "format", "f", "", "dump format: text, json or yaml")
	flags.BoolVar(&a.color, "color", false, "color text dumps")
	flags.BoolVar(&a.lenient, "lenient", false, "scan unexpected characters as words")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.StringVar(&a.logFile, "log-file", "", "append JSON logs to this file")

	root.AddCommand(
		a.newTokensCommand(),
		a.newPrintCommand(),
		a.newCheckCommand(),
		newVersionCommand(),
	)
	return root
}

// setup loads the configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	a.cfg = config.Default()
	if a.cfgFile != "" {
		cfg, err := config.Load(a.cfgFile)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		a.cfg.Format = a.format
	}
	if flags.Changed("color") {
		a.cfg.Color = a.color
	}
	if flags.Changed("lenient") {
		a.cfg.Lenient = a.lenient
	}
	if flags.Changed("log-level") {
		a.cfg.LogLevel = a.logLevel
	}
	if flags.Changed("log-file") {
		a.cfg.LogFile = a.logFile
	}
	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	opts := logging.Options{Level: a.cfg.LogLevel, Stderr: cmd.ErrOrStderr()}
	if a.cfg.LogFile != "" {
		f, err := os.OpenFile(a.cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		a.closers = append(a.closers, f)
		opts.File = f
	}
	logger, err := logging.New(opts)
	if err != nil {
		return err
	}
	a.logger = logger.With("command", cmd.Name())
	a.logger.Debug("configuration loaded", "config_file", a.cfgFile, "format", a.cfg.Format, "lenient", a.cfg.Lenient)
	return nil
}

func (a *app) close() {
	for _, c := range a.closers {
		_ = c.Close()
	}
	a.closers = nil
}

// scan reads the named input and scans it. The name "-" or an empty name
// reads from stdin.
func (a *app) scan(cmd *cobra.Command, name string) (*scanner.Scanner, error) {
	var r io.Reader = cmd.InOrStdin()
	if name != "" && name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	s, err := scanner.NewReader(r, a.cfg.ScannerOptions())
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", displayName(name), err)
	}
	return s, nil
}

func displayName(name string) string {
	if name == "" || name == "-" {
		return "<stdin>"
	}
	return name
}

func inputName(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return strings.TrimSpace(args[0])
}
