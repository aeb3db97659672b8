package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/pixpay/pacs008-client/libs/clients/pacs008"
	cmdutils "github.com/pixpay/pacs008-client/libs/cmd"
	appctx "github.com/pixpay/pacs008-client/libs/context"
	errorutils "github.com/pixpay/pacs008-client/libs/errors"
	"github.com/pixpay/pacs008-client/libs/logging"
	"github.com/pixpay/pacs008-client/libs/prompt"
	"github.com/pixpay/pacs008-client/payment"
	"github.com/pixpay/pacs008-client/submission"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ErrSubmissionFailed - the message could not be generated, details were presented
var ErrSubmissionFailed = errors.New("pacs.008 message was not generated")

// SubmitCmd sends one payment form to the message generation server
var SubmitCmd = &cobra.Command{
	Use:   "submit",
	Short: "generate a pacs.008 message for a payment",
	Long: "collects the payment form from flags, environment, a form file and " +
		"interactive prompts, in that order, and prints the generated message",
	Run: Perform("submit", RunSubmit),
}

func init() {
	RootCmd.AddCommand(SubmitCmd)

	builder := cmdutils.NewFlagBuilder(SubmitCmd)

	// one flag per form field, --payerName or PACS008_PAYERNAME etc.
	for _, field := range payment.Fields {
		builder.Flag().String(field.Name, "", field.Label).
			Bind().
			Env(FieldEnv(field.Name))
	}

	builder.Flag().String("form-file", "",
		"yaml file mapping form field names to values").
		Bind().
		Env("PACS008_FORM_FILE")

	builder.Flag().String("server", "http://localhost:8080",
		"the message generation server address").
		Bind().
		Env("PACS008_SERVER")

	builder.Flag().String("token", "",
		"bearer token for the message generation server").
		Bind().
		Env("PACS008_TOKEN")

	builder.Flag().Duration("timeout", 0,
		"client request timeout, zero waits for the server indefinitely").
		Bind().
		Env("PACS008_TIMEOUT")

	builder.Flag().String("metrics-textfile", "",
		"write metrics to this node exporter textfile when done").
		Bind().
		Env("METRICS_TEXTFILE")

	builder.Flag().Bool("interactive", prompt.IsTerminal(),
		"prompt for fields that were not supplied").
		Bind()
}

// FieldEnv is the environment variable supplying a form field
func FieldEnv(name string) string {
	return "PACS008_" + strings.ToUpper(name)
}

// flagsForm reads form fields from flags and the environment
type flagsForm struct{}

func (flagsForm) Value(name string) string {
	return viper.GetString(name)
}

// RunSubmit is the runner for the submit command
func RunSubmit(command *cobra.Command, args []string) error {
	// flags are parsed by now, the logger set up in Execute only saw the environment
	ctx, logger := logging.WithLevel(command.Context(), configuredLevel())

	if sentryDsn := os.Getenv("SENTRY_DSN"); sentryDsn != "" {
		version, _ := appctx.GetStringFromContext(ctx, appctx.VersionCTXKey)
		commit, _ := appctx.GetStringFromContext(ctx, appctx.CommitCTXKey)
		err := sentry.Init(sentry.ClientOptions{
			Dsn:     sentryDsn,
			Release: fmt.Sprintf("pacs008@%s-%s", version, commit),
		})
		defer sentry.Flush(2 * time.Second)
		if err != nil {
			logger.Error().Err(err).Msg("unable to setup reporting")
		}
	}

	ctx = context.WithValue(ctx, appctx.Pacs008ServerCTXKey, viper.GetString("server"))
	ctx = context.WithValue(ctx, appctx.Pacs008AccessTokenCTXKey, viper.GetString("token"))
	ctx = context.WithValue(ctx, appctx.Pacs008TimeoutCTXKey, viper.GetDuration("timeout"))

	form, err := BuildForm(viper.GetString("form-file"), viper.GetBool("interactive"), os.Stdin, os.Stderr)
	if err != nil {
		return err
	}

	settlement, err := Submit(ctx, form, os.Stderr, command.OutOrStdout())

	if path := viper.GetString("metrics-textfile"); path != "" {
		var errs = new(errorutils.MultiError)
		if err != nil {
			errs.Append(err)
		}
		if merr := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); merr != nil {
			errs.Append(fmt.Errorf("failed to write metrics textfile: %w", merr))
		}
		err = errs.ErrOrNil()
	}
	if err != nil {
		return err
	}

	if _, ok := settlement.(submission.Failure); ok {
		return ErrSubmissionFailed
	}
	return nil
}

// BuildForm layers flags and environment over the form file over prompts
func BuildForm(formFile string, interactive bool, in io.Reader, out io.Writer) (payment.Form, error) {
	layers := payment.Layered{flagsForm{}}

	if formFile != "" {
		values, err := payment.LoadValues(formFile)
		if err != nil {
			return nil, err
		}
		layers = append(layers, values)
	}

	if interactive {
		layers = append(layers, prompt.NewForm(in, out, payment.Fields...))
	}

	// ask everything up front, prompts must not interleave with the submission
	return payment.Snapshot(layers), nil
}

// Submit runs one submission of form against the server configured on ctx,
// reporting progress to status and the result to out
func Submit(ctx context.Context, form payment.Form, status, out io.Writer) (submission.Settlement, error) {
	client, err := pacs008.NewWithContext(ctx)
	if err != nil {
		return nil, err
	}

	controller := submission.NewController(
		client,
		submission.NewButton(status, submission.DefaultLabel),
		submission.NewResultPanel(out),
	)
	return controller.Submit(ctx, form)
}
