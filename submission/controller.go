package submission

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/getsentry/sentry-go"
	"github.com/pixpay/pacs008-client/libs/clients"
	"github.com/pixpay/pacs008-client/libs/clients/pacs008"
	errorutils "github.com/pixpay/pacs008-client/libs/errors"
	"github.com/pixpay/pacs008-client/libs/logging"
	"github.com/pixpay/pacs008-client/libs/requestutils"
	"github.com/pixpay/pacs008-client/payment"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// InProgressLabel is shown on the trigger while a request is in flight
const InProgressLabel = "Generating..."

// ErrSubmissionInFlight - the trigger is disabled while a submission is in flight
var ErrSubmissionInFlight = errors.New("a submission is already in flight")

var submissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "pacs008_submissions_total",
		Help: "Submissions by outcome",
	},
	[]string{"outcome"},
)

// Controller owns the submission lifecycle of one form
type Controller struct {
	client  pacs008.Client
	trigger Trigger
	result  ResultArea

	mu    sync.Mutex
	state State
}

// NewController returns an Idle controller driving the given trigger and result area
func NewController(client pacs008.Client, trigger Trigger, result ResultArea) *Controller {
	return &Controller{
		client:  client,
		trigger: trigger,
		result:  result,
	}
}

// State returns a snapshot of the current state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Submit collects the form, asks the server for a message and presents the
// outcome. Failures are presented, not returned; the only error is
// ErrSubmissionInFlight when the trigger is still disabled.
func (c *Controller) Submit(ctx context.Context, form payment.Form) (settlement Settlement, err error) {
	label, err := c.begin()
	if err != nil {
		submissionsTotal.WithLabelValues("rejected").Inc()
		return nil, err
	}

	requestID := requestutils.NewRequestID()
	ctx = requestutils.WithRequestID(ctx, requestID)
	ctx = logging.AddRequestIDToContext(ctx, requestID)
	logger := logging.Logger(ctx, "submission.Controller")

	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Msg("submission panicked")
			settlement = Failure{Detail: fmt.Sprint(r)}
			err = nil
		}
		c.finish(settlement, label)
	}()

	req := payment.Collect(form)
	logger.Info().
		Str("amount", req.Amount.String()).
		Str("payer_ispb", req.PayerIspb).
		Str("receiver_ispb", req.ReceiverIspb).
		Msg("requesting pacs.008 message")

	settlement = c.generate(ctx, req)
	return settlement, nil
}

// begin moves to Submitting, returning the trigger label to restore
func (c *Controller) begin() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Phase == Submitting {
		return "", ErrSubmissionInFlight
	}
	c.state = State{Phase: Submitting}

	label := c.trigger.Label()
	c.trigger.SetEnabled(false)
	c.trigger.SetLabel(InProgressLabel)
	c.result.Hide()
	return label, nil
}

// finish settles, presents and restores the trigger in one step so a new
// submission can never observe a half restored control
func (c *Controller) finish(s Settlement, label string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if s == nil {
		s = Failure{Detail: "submission did not complete"}
	}
	c.state = State{Phase: Settled, Settlement: s}

	switch s.(type) {
	case Success:
		submissionsTotal.WithLabelValues("success").Inc()
	default:
		submissionsTotal.WithLabelValues("failure").Inc()
	}

	Present(c.result, s)

	c.trigger.SetEnabled(true)
	c.trigger.SetLabel(label)
}

func (c *Controller) generate(ctx context.Context, req pacs008.PaymentRequest) Settlement {
	logger := logging.Logger(ctx, "submission.Controller")

	document, err := c.client.GenerateMessage(ctx, req)
	if err == nil {
		logger.Info().Int("length", len(document)).Msg("pacs.008 message generated")
		return Success{Message: document}
	}

	if state, serr := clients.UnwrapHTTPState(err); serr == nil && state.FromResponse() {
		logger.Error().
			Err(err).
			Int("status", state.Status).
			Str("body", state.ResponseBody()).
			Msg("server rejected the payment request")
		return Failure{Detail: fmt.Sprintf("server error: %d\n%s", state.Status, state.ResponseBody())}
	}

	logger.Error().Err(err).Msg("failed to reach the message generation server")
	sentry.CaptureException(err)
	return Failure{Detail: describe(err)}
}

// describe includes the cause of error bundles, whose message alone is terse
func describe(err error) string {
	var eb *errorutils.ErrorBundle
	if errors.As(err, &eb) && eb.Cause() != nil {
		return fmt.Sprintf("%s: %s", err.Error(), eb.Cause().Error())
	}
	return err.Error()
}
