// Command argsdemo parses an argument list against a go-args schema and
// prints what each declared flag resolved to.
//
//	argsdemo parse --schema 'l,p#,d*' -- -l -p 8080 -d /var/log extra
//	ARGS_SCHEMA='x[*]' argsdemo parse --json -- -x a -x b
//	argsdemo markers
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dzonerzy/go-args/args"
	argsio "github.com/dzonerzy/go-args/io"
)

var exitCodes = args.NewExitCodes()

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		var reported *reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintln(cmd.ErrOrStderr(), args.NewErrorHandler().Format(err))
		}
		os.Exit(exitCodes.Resolve(err))
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "argsdemo",
		Short: "Exercise the go-args schema parser from the command line",
		Long: `argsdemo feeds a schema and an argument list to go-args and reports the
typed value of every declared flag, the stop index and the unconsumed rest.

Schema elements are a letter followed by a type marker:
  x      boolean        x*   string        x#   integer
  x##    float          x[*] string list   x&   key:value map
  x$     color (RED, GREEN, BLUE)

Pass the argument list after "--" so argsdemo does not read it as its own flags.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.PersistentFlags().String("log-format", "circles", "Log format: circles, symbols, tagged, plain (env "+envLogFormat+")")
	root.PersistentFlags().String("log-file", "", "Also write logs to this rotated file (env "+envLogFile+")")
	root.PersistentFlags().Bool("no-color", false, "Disable colored output (env "+envNoColor+")")
	root.PersistentFlags().BoolP("verbose", "v", false, "Log debug details")

	root.AddCommand(newParseCmd(), newMarkersCmd())
	return root
}

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [--schema S] [--json] -- [argv...]",
		Short: "Parse argv against a schema and print the result",
		RunE:  runParse,
	}
	cmd.Flags().StringP("schema", "s", "", "Schema string, e.g. 'l,p#,d*' (env "+envSchema+")")
	cmd.Flags().Bool("json", false, "Print the result as JSON")
	return cmd
}

func newMarkersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "markers",
		Short: "List the schema type markers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := resolveConfig(cmd.Flags())
			iom := newIO(cmd, cfg)
			printMarkers(iom)
			return nil
		},
	}
}

func runParse(cmd *cobra.Command, argv []string) error {
	cfg := resolveConfig(cmd.Flags())
	iom := newIO(cmd, cfg)

	logger, err := newLogger(iom, cfg)
	if err != nil {
		return err
	}
	defer logger.Close()

	logger.Debug("schema %q from %s, %d argument(s)", cfg.Schema, cfg.SchemaSource, len(argv))

	parsed, err := args.New(cfg.Schema, argv)
	if err != nil {
		fmt.Fprintln(iom.Err(), args.NewErrorHandler().Format(err))
		logger.Debug("parse failed: %v", err)
		return &reportedError{err: err}
	}
	defer parsed.Release()

	rep := buildReport(parsed)
	logger.Debug("found %d flag(s), next argument %d", len(parsed.Found()), parsed.NextArgument())

	if cfg.JSON {
		return writeJSON(iom.Out(), rep)
	}
	writeText(iom, rep)
	return nil
}

func newIO(cmd *cobra.Command, cfg config) *argsio.IOManager {
	iom := argsio.New().WithOut(cmd.OutOrStdout()).WithErr(cmd.ErrOrStderr())
	if cfg.NoColor {
		iom.NoColor()
	}
	return iom
}

// newLogger sends diagnostics to stderr so stdout stays machine-readable
func newLogger(iom *argsio.IOManager, cfg config) (*argsio.Logger, error) {
	format, err := argsio.ParseLogFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	diag := argsio.New().WithOut(iom.Err()).WithErr(iom.Err())
	if cfg.NoColor {
		diag.NoColor()
	}
	level := argsio.LevelInfo
	if cfg.Verbose {
		level = argsio.LevelDebug
	}
	return argsio.NewLogger(diag).WithFormat(format).WithLevel(level).ToFile(cfg.LogFile), nil
}
