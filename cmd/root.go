package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pixpay/pacs008-client/libs/clients"
	cmdutils "github.com/pixpay/pacs008-client/libs/cmd"
	appctx "github.com/pixpay/pacs008-client/libs/context"
	errorutils "github.com/pixpay/pacs008-client/libs/errors"
	"github.com/pixpay/pacs008-client/libs/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// RootCmd is the base command (what the binary is called)
	RootCmd = &cobra.Command{
		Use:   "pacs008",
		Short: "pacs008 generates pacs.008 payment messages from payment forms",
	}
	ctx = context.Background()
)

// Execute - the main entrypoint for all subcommands
func Execute(version, commit, buildTime string) {
	// setup context with logging, but first we need to setup the environment
	var logger *zerolog.Logger
	ctx, logger = logging.SetupLogger(loggingContext(ctx))

	ctx = context.WithValue(ctx, appctx.VersionCTXKey, version)
	ctx = context.WithValue(ctx, appctx.CommitCTXKey, commit)
	ctx = context.WithValue(ctx, appctx.BuildTimeCTXKey, buildTime)

	// execute the root cmd
	if err := RootCmd.ExecuteContext(ctx); err != nil {
		logger.Error().Err(err).Msg("pacs008 command encountered an error")
		os.Exit(1)
	}
}

// loggingContext copies the logging settings from viper onto the context
func loggingContext(ctx context.Context) context.Context {
	ctx = context.WithValue(ctx, appctx.EnvironmentCTXKey, viper.GetString("environment"))
	ctx = context.WithValue(ctx, appctx.DebugLoggingCTXKey, viper.GetBool("debug"))
	if level := viper.GetString("log-level"); level != "" {
		ctx = context.WithValue(ctx, appctx.LogLevelCTXKey, level)
	}
	return ctx
}

// configuredLevel is the log level asked for by --log-level and --debug
func configuredLevel() zerolog.Level {
	if viper.GetBool("debug") {
		return zerolog.DebugLevel
	}
	level, err := zerolog.ParseLevel(viper.GetString("log-level"))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

func init() {
	// env - defaults to local
	RootCmd.PersistentFlags().String("environment", "local",
		"the default environment")
	cmdutils.Must(viper.BindPFlag("environment", RootCmd.PersistentFlags().Lookup("environment")))
	cmdutils.Must(viper.BindEnv("environment", "ENV"))

	// debug logging - defaults to off
	RootCmd.PersistentFlags().Bool("debug", false, "turn on debug logging")
	cmdutils.Must(viper.BindPFlag("debug", RootCmd.PersistentFlags().Lookup("debug")))
	cmdutils.Must(viper.BindEnv("debug", "DEBUG"))

	// log level - defaults to info
	RootCmd.PersistentFlags().String("log-level", "info",
		"the logging level (trace, debug, info, warn, error)")
	cmdutils.Must(viper.BindPFlag("log-level", RootCmd.PersistentFlags().Lookup("log-level")))
	cmdutils.Must(viper.BindEnv("log-level", "LOG_LEVEL"))

	RootCmd.AddCommand(VersionCmd)
}

// VersionCmd is the command to get the code's version information
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "get the version of this binary",
	Run:   versionRun,
}

func versionRun(command *cobra.Command, args []string) {
	version, _ := appctx.GetStringFromContext(command.Context(), appctx.VersionCTXKey)
	commit, _ := appctx.GetStringFromContext(command.Context(), appctx.CommitCTXKey)
	buildTime, _ := appctx.GetStringFromContext(command.Context(), appctx.BuildTimeCTXKey)
	fmt.Fprintf(command.OutOrStdout(), "version: %s\ncommit: %s\nbuild time: %s\n",
		version, commit, buildTime,
	)
}

// logFailure logs a failed action, with the http state and error data when present
func logFailure(logger *zerolog.Logger, action string, err error) {
	log := logger.Err(err).Str("action", action)
	if state, serr := clients.UnwrapHTTPState(err); serr == nil {
		log = log.Int("status", state.Status).
			Str("path", state.Path)
	}
	var bundle *errorutils.ErrorBundle
	if errors.As(err, &bundle) && bundle.Data() != nil {
		log = log.Str("data", bundle.DataToString())
	}
	log.Msg("failed")
}

// Perform performs a run
func Perform(action string, fn func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		err := fn(cmd, args)
		if err != nil {
			logger, lerr := appctx.GetLogger(cmd.Context())
			if lerr != nil {
				_, logger = logging.SetupLogger(cmd.Context())
			}

			logFailure(logger, action, err)
		}
		// let the diode writer drain
		<-time.After(10 * time.Millisecond)
		if err != nil {
			os.Exit(1)
		}
	}
}
