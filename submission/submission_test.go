package submission_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pixpay/pacs008-client/libs/clients/pacs008"
	"github.com/pixpay/pacs008-client/payment"
	"github.com/pixpay/pacs008-client/submission"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func form(amount string) payment.Values {
	return payment.Values{
		payment.FieldPayerName:           "Maria Silva",
		payment.FieldPayerCpfCnpj:        "12345678901",
		payment.FieldPayerIspb:           "00000000",
		payment.FieldPayerAgency:         "0001",
		payment.FieldPayerAccount:        "123456",
		payment.FieldPayerAccountType:    "CACC",
		payment.FieldReceiverName:        "Joao Souza",
		payment.FieldReceiverCpfCnpj:     "10987654321",
		payment.FieldReceiverIspb:        "60701190",
		payment.FieldReceiverAgency:      "0002",
		payment.FieldReceiverAccount:     "654321",
		payment.FieldReceiverPixKey:      "",
		payment.FieldReceiverAccountType: "CACC",
		payment.FieldAmount:              amount,
		payment.FieldDescription:         "rent",
	}
}

// backend answers like the message generator: 201 with the document, 400 for a missing amount
func backend(t *testing.T, requests *int) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*requests++
		var payload map[string]interface{}
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload)) {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		assert.Len(t, payload, 15)

		if payload["amount"] == nil {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte("Invalid amount"))
			return
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("<Document>...</Document>"))
	}))
}

func newController(t *testing.T, serverURL string) (*submission.Controller, *submission.Button, *submission.ResultPanel) {
	client, err := pacs008.New(serverURL, "", 0)
	require.NoError(t, err)

	button := submission.NewButton(nil, submission.DefaultLabel)
	panel := submission.NewResultPanel(new(bytes.Buffer))
	return submission.NewController(client, button, panel), button, panel
}

func TestScenarioSuccess(t *testing.T) {
	var requests int
	ts := backend(t, &requests)
	defer ts.Close()

	controller, button, panel := newController(t, ts.URL)

	_, err := controller.Submit(context.Background(), form("150.50"))
	require.NoError(t, err)

	assert.Equal(t, 1, requests)
	assert.True(t, panel.Visible())
	assert.Equal(t, "<Document>...</Document>", panel.Text())
	assert.True(t, button.Enabled())
	assert.Equal(t, submission.DefaultLabel, button.Label())
}

func TestScenarioServerRejection(t *testing.T) {
	var requests int
	ts := backend(t, &requests)
	defer ts.Close()

	controller, button, panel := newController(t, ts.URL)

	_, err := controller.Submit(context.Background(), form(""))
	require.NoError(t, err)

	assert.Equal(t, 1, requests)
	assert.Contains(t, panel.Text(), "400")
	assert.Contains(t, panel.Text(), "Invalid amount")
	assert.Contains(t, panel.Text(), submission.FailurePrefix)
	assert.True(t, button.Enabled())
	assert.Equal(t, submission.DefaultLabel, button.Label())
}

func TestScenarioTransportFailure(t *testing.T) {
	var requests int
	ts := backend(t, &requests)
	serverURL := ts.URL
	ts.Close()

	controller, button, panel := newController(t, serverURL)

	settlement, err := controller.Submit(context.Background(), form("150.50"))
	require.NoError(t, err)

	failure, ok := settlement.(submission.Failure)
	require.True(t, ok)
	assert.Contains(t, panel.Text(), submission.FailurePrefix)
	assert.Contains(t, panel.Text(), failure.Detail)
	assert.Contains(t, failure.Detail, "failed to generate pacs.008 message")
	assert.True(t, button.Enabled())
	assert.Equal(t, submission.DefaultLabel, button.Label())
}

func TestOversizedDocumentSettlesAsFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("<Document>" + strings.Repeat("x", 11*1024*1024) + "</Document>"))
	}))
	defer ts.Close()

	controller, button, panel := newController(t, ts.URL)

	settlement, err := controller.Submit(context.Background(), form("150.50"))
	require.NoError(t, err)

	assert.IsType(t, submission.Failure{}, settlement)
	assert.Contains(t, panel.Text(), submission.FailurePrefix)
	assert.NotContains(t, panel.Text(), "<Document>")
	assert.True(t, button.Enabled())
}
