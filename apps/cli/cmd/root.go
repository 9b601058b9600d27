package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/abdul-hamid-achik/httpie/packages/core/config"
	"github.com/abdul-hamid-achik/httpie/packages/core/parser"
	"github.com/abdul-hamid-achik/httpie/packages/http"
	"github.com/abdul-hamid-achik/httpie/packages/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries what the subcommands share for one invocation.
type app struct {
	stdout  io.Writer
	stderr  io.Writer
	verbose bool
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "httpie",
		Short:   "A minimal httpie: send GET and POST requests, read colored responses.",
		Version: version,
		Long: `httpie sends a single HTTP request and prints the response with a
colored status line, colored header names and a syntax-highlighted
body for JSON and HTML responses.

Author: ` + author,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return newUsageError(fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath()))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return newUsageError(errors.New("a subcommand is required: get or post"))
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.SetVersionTemplate(versionTemplate)
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return newUsageError(err)
	})

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log request details to stderr")

	rootCmd.AddCommand(newGetCmd(a))
	rootCmd.AddCommand(newPostCmd(a))

	return rootCmd
}

// usageArgs turns Cobra's positional argument errors into usage errors.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return newUsageError(check(cmd, args))
	}
}

// Execute runs the CLI with the process arguments and exits.
func Execute(v, bt string) {
	version = v
	buildTime = bt
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}

// Run executes the CLI with args and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}
	rootCmd := newRootCmd(a)
	if args == nil {
		// a nil slice makes Cobra fall back to os.Args
		args = []string{}
	}
	rootCmd.SetArgs(args)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd, err := rootCmd.ExecuteContextC(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if isUsageError(err) {
			fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", cmd.CommandPath())
		}
	}
	return exitCode(err)
}

// run sends the request and renders the response. Any HTTP status counts as
// success.
func (a *app) run(ctx context.Context, opts parser.Options) error {
	cfg := config.DefaultConfig().Merge(&config.Config{Verbose: config.BoolPtr(a.verbose)})
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(a.stderr, cfg.GetVerbose())
	defer func() { _ = logger.Sync() }()
	logger.Debug("starting",
		zap.String("version", version),
		zap.String("built", buildTime),
		zap.String("method", opts.Method()),
		zap.String("url", opts.Target()))

	client := http.NewClient(
		http.WithTimeout(cfg.Timeout),
		http.WithFollowRedirects(cfg.GetFollowRedirects()),
		http.WithMaxRedirects(cfg.MaxRedirects),
		http.WithLogger(logger),
	)

	resp, err := client.Execute(ctx, opts)
	if err != nil {
		return err
	}

	renderer := output.NewRenderer(
		output.WithWriter(a.stdout),
		output.WithTheme(cfg.Theme),
		output.WithLogger(logger),
	)
	return renderer.Render(resp)
}
