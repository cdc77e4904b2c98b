package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wippyai/wasi-shim/engine"
	"github.com/wippyai/wasi-shim/preview1"
	"github.com/wippyai/wasi-shim/runner"
)

var rootCmd = &cobra.Command{
	Use:   "run <module.wasm> [args...]",
	Short: "Run a WASI preview1 command module",
	Long: `run executes a WebAssembly command module against the host system.

The module must export a nullary _start function and a linear memory named
"memory". Guest writes to stdout/stderr pass through to the host streams, and
a guest-requested exit code becomes this process's exit status.`,
	Args: cobra.MinimumNArgs(1),
	Run:  runModule,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringArray("env", nil, "Additional environment variable KEY=VALUE (repeatable)")
	rootCmd.Flags().StringArray("dir", nil, "Preopened directory path (repeatable)")
	rootCmd.Flags().Uint32("max-pages", engine.DefaultMaxMemoryPages, "Guest memory limit in 64KiB pages")
	rootCmd.Flags().BoolP("verbose", "v", false, "Log lifecycle diagnostics to stderr")
}

func runModule(cmd *cobra.Command, args []string) {
	envFlags, _ := cmd.Flags().GetStringArray("env")
	dirs, _ := cmd.Flags().GetStringArray("dir")
	maxPages, _ := cmd.Flags().GetUint32("max-pages")
	verbose, _ := cmd.Flags().GetBool("verbose")

	var logger *zap.Logger
	if verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		engine.SetLogger(logger)
	}

	binary, err := loadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	system := preview1.NewLocalSystem(
		preview1.WithEnviron(append(os.Environ(), envFlags...)),
		preview1.WithPreopens(dirs),
	)
	defer system.Close()

	r := runner.New(runner.Config{
		System:         system,
		MaxMemoryPages: maxPages,
		Logger:         logger,
	})

	outcome, err := r.Run(context.Background(), binary, args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(outcome.ExitStatus())
}
