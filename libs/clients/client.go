package clients

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"net/url"
	"regexp"
	"time"

	appctx "github.com/pixpay/pacs008-client/libs/context"
	"github.com/pixpay/pacs008-client/libs/errors"
	"github.com/pixpay/pacs008-client/libs/middleware"
	"github.com/pixpay/pacs008-client/libs/requestutils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

// regular expression mapped to the replacement
var redactHeaders = map[*regexp.Regexp][]byte{
	regexp.MustCompile(`(?i)authorization: (?i)basic.+\n`):  []byte("Authorization: Basic <token>\n"),
	regexp.MustCompile(`(?i)authorization: (?i)bearer.+\n`): []byte("Authorization: Bearer <token>\n"),
}

// RedactSensitiveHeaders from http request dumps
func RedactSensitiveHeaders(corpus []byte) []byte {
	for k, v := range redactHeaders {
		corpus = k.ReplaceAll(corpus, v)
	}
	return corpus
}

var concurrentClientRequests = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "concurrent_client_requests",
		Help: "Gauge that holds the current number of client requests",
	},
	[]string{
		"host",
		"method",
	},
)

func init() {
	prometheus.MustRegister(concurrentClientRequests)
}

// SimpleHTTPClient wraps http.Client for making simple token authorized requests
type SimpleHTTPClient struct {
	BaseURL   *url.URL
	AuthToken string
	// Timeout bounds a single call, zero means the call may wait indefinitely
	Timeout time.Duration

	client *http.Client
}

// New returns a new SimpleHTTPClient, timeout of zero disables the request timeout
func New(serverURL string, authToken string, timeout time.Duration) (*SimpleHTTPClient, error) {
	return NewWithHTTPClient(serverURL, authToken, timeout, &http.Client{})
}

// NewInstrumented returns a new SimpleHTTPClient whose transport reports prometheus metrics under name
func NewInstrumented(name, serverURL, authToken string, timeout time.Duration) (*SimpleHTTPClient, error) {
	return NewWithHTTPClient(serverURL, authToken, timeout, &http.Client{
		Transport: middleware.InstrumentRoundTripper(http.DefaultTransport, name),
	})
}

// NewWithHTTPClient returns a new SimpleHTTPClient, using the provided http.Client
func NewWithHTTPClient(serverURL string, authToken string, timeout time.Duration, client *http.Client) (*SimpleHTTPClient, error) {
	baseURL, err := url.Parse(serverURL)
	if err != nil {
		return nil, err
	}

	return &SimpleHTTPClient{
		BaseURL:   baseURL,
		AuthToken: authToken,
		Timeout:   timeout,
		client:    client,
	}, nil
}

func (c *SimpleHTTPClient) request(
	ctx context.Context,
	method string,
	resolvedURL string,
	buf io.Reader,
) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, resolvedURL, buf)
	if err != nil {
		switch err.(type) {
		case url.EscapeError:
			err = NewHTTPError(err, resolvedURL, ErrUnableToEscapeURL, http.StatusBadRequest, nil)
		case url.InvalidHostError:
			err = NewHTTPError(err, resolvedURL, ErrInvalidHost, http.StatusBadRequest, nil)
		default:
			err = NewHTTPError(err, resolvedURL, ErrMalformedRequest, http.StatusBadRequest, nil)
		}
		return nil, err
	}
	return req, nil
}

// NewRequest creates a request, JSON encoding the body passed. The accept
// header defaults to json, callers expecting another representation override it.
func (c *SimpleHTTPClient) NewRequest(
	ctx context.Context,
	method,
	path string,
	body interface{},
) (*http.Request, error) {
	var buf io.ReadWriter

	resolvedURL := c.BaseURL.ResolveReference(&url.URL{Path: path})

	if body != nil && method != http.MethodGet {
		buf = new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return nil, NewHTTPError(err, resolvedURL.String(), ErrUnableToEncodeBody, 0, body)
		}
	}

	req, err := c.request(ctx, method, resolvedURL.String(), buf)
	if err != nil {
		return nil, err
	}

	req.Header.Set("accept", "application/json")
	if body != nil {
		req.Header.Add("content-type", "application/json")
	}
	requestutils.SetRequestID(ctx, req)
	if c.AuthToken != "" {
		req.Header.Set("authorization", "Bearer "+c.AuthToken)
	}
	return req, nil
}

var errNilDestination = stderrors.New("nil decode destination")

// decode places the body into v: raw text for *string and *[]byte, json otherwise
func decode(body []byte, v interface{}) error {
	switch dst := v.(type) {
	case nil:
		return nil
	case *string:
		if dst == nil {
			return errors.Wrap(errNilDestination, ErrUnableToDecode)
		}
		*dst = string(body)
		return nil
	case *[]byte:
		if dst == nil {
			return errors.Wrap(errNilDestination, ErrUnableToDecode)
		}
		*dst = body
		return nil
	default:
		if err := json.Unmarshal(body, v); err != nil {
			return errors.Wrap(err, ErrUnableToDecode)
		}
		return nil
	}
}

// do the specified http request, decoding the result into v
func (c *SimpleHTTPClient) do(ctx context.Context, req *http.Request, v interface{}) (*http.Response, error) {
	concurrentClientRequests.With(
		prometheus.Labels{
			"host": req.URL.Host, "method": req.Method,
		}).Inc()

	defer func() {
		concurrentClientRequests.With(
			prometheus.Labels{
				"host": req.URL.Host, "method": req.Method,
			}).Dec()
	}()

	logger := log.Ctx(ctx)
	debug, okDebug := ctx.Value(appctx.DebugLoggingCTXKey).(bool)

	if okDebug && debug {
		// dump out the full request, right before we submit it
		requestDump, err := httputil.DumpRequestOut(req, true)
		if err != nil {
			logger.Error().Err(err).Str("type", "http.Request").Msg("failed to dump request body")
		} else {
			logger.Debug().Str("type", "http.Request").Msg(string(RedactSensitiveHeaders(requestDump)))
		}
	}

	// the call is only ever bounded by the configured timeout, cancelling the
	// caller's context does not abort a request already on the wire, its
	// values stay visible to the transport
	reqCtx, cancel := context.Background(), context.CancelFunc(func() {})
	if c.Timeout > 0 {
		reqCtx, cancel = context.WithTimeout(reqCtx, c.Timeout)
	}
	defer cancel()
	req = req.WithContext(appctx.Wrap(req.Context(), reqCtx))

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	status := resp.StatusCode

	if okDebug && debug {
		dump, err := httputil.DumpResponse(resp, true)
		if err != nil {
			logger.Error().Err(err).Str("type", "http.Response").Msg("failed to dump response body")
		} else {
			logger.Debug().Str("type", "http.Response").Msg(string(dump))
		}
	}

	// the body is read in full whatever the status
	bodyBytes, err := requestutils.Read(ctx, resp.Body)
	if err != nil {
		return nil, err
	}
	resp.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

	if status >= 200 && status <= 299 {
		if err := decode(bodyBytes, v); err != nil {
			return resp, err
		}
		return resp, nil
	}

	logger.Warn().
		Int("response_status", status).
		Str("body", string(bodyBytes)).
		Msg("failed http client call")
	logger.Debug().Str("host", req.URL.Host).Str("path", req.URL.Path).Str("body", string(bodyBytes)).Msg("failed http client call")
	return resp, errors.Wrap(fmt.Errorf("status %d", status), ErrProtocolError)
}

// RespErrData - error data for http response
type RespErrData struct {
	ResponseHeaders interface{}
	Body            interface{}
}

// Do the specified http request, decoding the result into v
func (c *SimpleHTTPClient) Do(ctx context.Context, req *http.Request, v interface{}) (*http.Response, error) {
	resp, err := c.do(ctx, req, v)
	if err != nil {
		// errors returned from c.do could be go errors or upstream api errors
		if resp != nil {
			b, _ := io.ReadAll(resp.Body)
			resp.Body = io.NopCloser(bytes.NewBuffer(b))

			// put response body/headers in the err state data
			errorData := RespErrData{
				ResponseHeaders: resp.Header,
				Body:            string(b),
			}

			return resp, NewHTTPError(err, req.URL.String(), "response", resp.StatusCode, errorData)
		}
		return nil, fmt.Errorf("failed c.do, no response body: %w", err)
	}
	return resp, nil
}
