package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/todolist/internal/app"
	"github.com/idilsaglam/todolist/internal/config"
	"github.com/idilsaglam/todolist/internal/logging"
	"github.com/idilsaglam/todolist/internal/tui"
	"github.com/idilsaglam/todolist/internal/ui"
)

// exitError carries a process exit code: 1 for failures, 2 for usage.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func usageErr(format string, args ...any) error {
	return &exitError{code: 2, err: fmt.Errorf(format, args...)}
}

// root holds flags and what PersistentPreRunE derives from them.
type root struct {
	ConfigPath string
	Page       string
	Theme      string
	LogLevel   string
	LogFile    string
	NoColor    bool
	ForceColor bool
	NoAlt      bool

	cfg      config.Config
	log      *log.Logger
	closeLog func() error
}

// Execute runs the command line and returns the process exit code.
func Execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return execute(&root{}, args, stdin, stdout, stderr)
}

func execute(r *root, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd(r)
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	// cobra skips post-run hooks when RunE fails, so the log is closed here.
	err := cmd.Execute()
	if cerr := r.closeLogger(); err == nil {
		err = cerr
	}
	if err == nil {
		return 0
	}
	ui.Fail(stderr, err.Error())
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return 1
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(&root{})
}

func newRootCmd(r *root) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "todolist",
		Short:         "In-memory todo list page, in your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start the interactive page
  todolist

  # Drive the page from a script
  printf 'add Buy milk\ndone 1\nls\n' | todolist script

  # Print the page markup
  todolist html
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runTUI()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return r.setup(cmd)
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&r.ConfigPath, "config", "", "Path to config file (default: user config dir/todolist/config.toml)")
	pf.StringVar(&r.Page, "page", "", "HTML page to mount the list on (default: built-in page)")
	pf.StringVar(&r.Theme, "theme", "", "Theme: classic|neon|mono")
	pf.StringVar(&r.LogLevel, "log-level", "", "Log level: debug|info|warn|error|off")
	pf.StringVar(&r.LogFile, "log-file", "", "Append logs to this file")
	pf.BoolVar(&r.NoColor, "no-color", false, "Disable colors")
	pf.BoolVar(&r.ForceColor, "force-color", false, "Force colors even when not a TTY")
	cmd.Flags().BoolVar(&r.NoAlt, "no-alt-screen", false, "Draw inline instead of on the alternate screen")

	cmd.AddCommand(newRunCmd(r))
	cmd.AddCommand(newScriptCmd(r))
	cmd.AddCommand(newHTMLCmd(r))
	return cmd
}

// setup layers flags over the loaded config, then applies theme and logging.
func (r *root) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(r.ConfigPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("page") {
		cfg.Page = r.Page
	}
	if flags.Changed("theme") {
		cfg.Theme = r.Theme
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = r.LogLevel
	}
	if flags.Changed("log-file") {
		cfg.LogFile = r.LogFile
	}
	if r.NoAlt {
		cfg.AltScreen = false
	}
	if err := cfg.Validate(); err != nil {
		return usageErr("%w", err)
	}
	r.cfg = cfg

	ui.SetTheme(cfg.Theme)
	ui.SetColorForcing(r.ForceColor, r.NoColor || cfg.Theme == "mono")

	// The TUI owns the terminal, so it only logs to a file.
	var fallback io.Writer
	if cmd.Name() != "todolist" && cmd.Name() != "run" {
		fallback = cmd.ErrOrStderr()
	}
	logger, closeFn, err := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile, Fallback: fallback})
	if err != nil {
		return err
	}
	r.log, r.closeLog = logger, closeFn
	return nil
}

// closeLogger releases the log file opened by setup, once.
func (r *root) closeLogger() error {
	if r.closeLog == nil {
		return nil
	}
	closeFn := r.closeLog
	r.closeLog = nil
	if err := closeFn(); err != nil {
		return fmt.Errorf("close log: %w", err)
	}
	return nil
}

func (r *root) mount() (*app.App, error) {
	opt := app.Options{
		ListSelector:   r.cfg.ListSelector,
		ToggleSelector: r.cfg.ToggleSelector,
		Logger:         r.log,
	}
	if r.cfg.Page != "" {
		return app.Open(r.cfg.Page, opt)
	}
	return app.NewPage(opt)
}

func (r *root) runTUI() error {
	a, err := r.mount()
	if err != nil {
		return err
	}
	return tui.Run(a, tui.Options{AltScreen: r.cfg.AltScreen, Logger: r.log})
}

func newRunCmd(r *root) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the interactive page (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runTUI()
		},
	}
	cmd.Flags().BoolVar(&r.NoAlt, "no-alt-screen", false, "Draw inline instead of on the alternate screen")
	return cmd
}

func newHTMLCmd(r *root) *cobra.Command {
	return &cobra.Command{
		Use:   "html",
		Short: "Print the mounted page markup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := r.mount()
			if err != nil {
				return err
			}
			if err := a.Doc.Render(cmd.OutOrStdout()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
}
