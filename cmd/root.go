package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gcmt/internal/application"
	"gcmt/internal/bootstrap"
	"gcmt/internal/config"
	"gcmt/internal/env"
	"gcmt/internal/logging"
)

// appConfig stores the settings read from GCMT_* environment variables.
// They only affect logging on stderr; the stdout line and the exit status
// never depend on them.
var appConfig config.Config

// logOutput is where the global logger writes once initConfig has run.
// It is stderr so that stdout carries nothing but the diagnostic line.
var logOutput io.Writer = os.Stderr

// probe resolves the working directory reported before the application runs.
// The OS-backed probe is used in production; tests replace it with a fixed
// directory or a fixed failure.
var probe env.Probe = env.OSProbe{}

// newApp constructs the application the bootstrap hands control to.
// It is called exactly once per run, after the diagnostic line is written.
var newApp bootstrap.Factory = func() bootstrap.Application {
	return application.New()
}

// exitCode holds the application's status once the root command has run.
// Execute returns it unmodified so main can pass it to os.Exit.
var exitCode int

// rootCmd runs the bootstrap. Arguments are accepted and ignored: flag
// parsing is disabled and Execute places every argument after "--" so that
// none of them can select a subcommand.
var rootCmd = &cobra.Command{
	Use:                "gcmt [args...]",
	Short:              "Report the working directory and run the application",
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
	Run: func(cmd *cobra.Command, args []string) {
		exitCode = runApp(cmd.OutOrStdout())
	},
}

// Execute is the main entry point for the CLI application.
// It runs the root command with the process arguments and returns the exit
// status for the process. A working directory that cannot be resolved panics
// out of Execute.
func Execute() int {
	return execute(os.Args[1:])
}

// execute runs the root command with args. The leading "--" ends command
// lookup, so tokens such as "__complete" reach the root command as plain
// arguments instead of triggering cobra's shell completion.
func execute(args []string) int {
	rootCmd.SetArgs(append([]string{"--"}, args...))
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Command failed")
		return 1
	}
	return exitCode
}

// init registers initConfig so the logger is configured before the root
// command runs.
func init() {
	cobra.OnInitialize(initConfig)
}

// initConfig loads the environment configuration and installs the global logger.
func initConfig() {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to load config: %v\n", err)
	}
	appConfig = cfg
	logging.Setup(logOutput, appConfig.Log)
}

// runApp executes the bootstrap sequence against stdout.
func runApp(stdout io.Writer) int {
	b := bootstrap.New(probe, stdout, newApp, bootstrap.WithLogger(log.Logger))
	return b.MustRun()
}
