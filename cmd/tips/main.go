package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/tips/internal/config"
	"github.com/vango-dev/tips/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// globalFlags are shared by every command.
type globalFlags struct {
	dir        string
	configFile string
	logLevel   string
	dev        bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "tips",
		Short: "Serve and export the course assistant tips fragment",
		Long: `tips renders the usage tips shown next to the course assistant.

The fragment can be served over HTTP, mounted live over a websocket,
rendered to stdout, or exported as static files to a directory or S3.

Configuration is read from tips.json in --dir (defaults apply when the
file does not exist). Flags override file values.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&flags.dir, "dir", "C", ".", "Directory containing tips.json")
	rootCmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", "", "Path to a config file (overrides --dir)")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flags.dev, "dev", false, "Development mode: no caching, text logs")

	rootCmd.AddCommand(
		serveCmd(flags),
		renderCmd(flags),
		exportCmd(flags),
		stylesCmd(flags),
		versionCmd(),
	)

	return rootCmd
}

// loadConfig loads the configuration and applies global flag overrides.
func loadConfig(flags *globalFlags) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if flags.configFile != "" {
		cfg, err = config.LoadFile(flags.configFile)
	} else {
		cfg, err = config.LoadOrDefault(flags.dir)
	}
	if err != nil {
		return nil, err
	}

	if flags.dev {
		cfg.Dev = true
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// printError prints coded errors with their full context. Anything else
// comes from cobra's argument and flag parsing and is reported as a
// single E140 line.
func printError(w io.Writer, err error) {
	coded := errors.Code(err) != ""
	te := errors.FromError(err, "E140")
	if coded {
		fmt.Fprintln(w, te.Format())
		return
	}
	fmt.Fprintln(w, te.FormatCompact())
	fmt.Fprintln(w, "Run 'tips --help' for usage.")
}
