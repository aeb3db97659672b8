package payment

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/pixpay/pacs008-client/libs/clients/pacs008"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() Values {
	return Values{
		FieldPayerName:           "Maria Silva",
		FieldPayerCpfCnpj:        "12345678901",
		FieldPayerIspb:           "00000000",
		FieldPayerAgency:         "0001",
		FieldPayerAccount:        "123456",
		FieldPayerAccountType:    pacs008.AccountTypeChecking,
		FieldReceiverName:        "Joao Souza",
		FieldReceiverCpfCnpj:     "10987654321",
		FieldReceiverIspb:        "60701190",
		FieldReceiverAgency:      "0002",
		FieldReceiverAccount:     "654321",
		FieldReceiverPixKey:      "joao@example.com",
		FieldReceiverAccountType: pacs008.AccountTypeSavings,
		FieldAmount:              "150.50",
		FieldDescription:         "rent",
	}
}

func TestCollect(t *testing.T) {
	actual := Collect(validForm())

	assert.Equal(t, pacs008.PaymentRequest{
		PayerName:           "Maria Silva",
		PayerCpfCnpj:        "12345678901",
		PayerIspb:           "00000000",
		PayerAgency:         "0001",
		PayerAccount:        "123456",
		PayerAccountType:    "CACC",
		ReceiverName:        "Joao Souza",
		ReceiverCpfCnpj:     "10987654321",
		ReceiverIspb:        "60701190",
		ReceiverAgency:      "0002",
		ReceiverAccount:     "654321",
		ReceiverPixKey:      "joao@example.com",
		ReceiverAccountType: "SVGS",
		Amount:              150.50,
		Description:         "rent",
	}, actual)

	for _, amount := range []string{"150.50 ", " 150.50", "150.50\t", "\n150.50\r\n"} {
		form := validForm()
		form[FieldAmount] = amount

		assert.Equal(t, pacs008.Amount(150.50), Collect(form).Amount, "amount %q", amount)
	}
}

func TestCollect_KeepsRawText(t *testing.T) {
	form := validForm()
	form[FieldPayerName] = "  Maria  "
	form[FieldReceiverPixKey] = ""

	actual := Collect(form)

	assert.Equal(t, "  Maria  ", actual.PayerName)
	assert.Equal(t, "", actual.ReceiverPixKey)
}

func TestCollect_NonNumericAmount(t *testing.T) {
	for _, amount := range []string{"", "   ", "abc", "12,50", "1e400", "1 50"} {
		form := validForm()
		form[FieldAmount] = amount

		actual := Collect(form)
		assert.True(t, math.IsNaN(float64(actual.Amount)), "amount %q should collect as NaN", amount)
	}
}

func TestCollect_FreshRequestPerCall(t *testing.T) {
	form := validForm()
	first := Collect(form)

	form[FieldAmount] = "10"
	second := Collect(form)

	assert.Equal(t, pacs008.Amount(150.50), first.Amount)
	assert.Equal(t, pacs008.Amount(10), second.Amount)
}

func TestLayered(t *testing.T) {
	form := Layered{
		Values{FieldPayerName: "from flags"},
		nil,
		Values{FieldPayerName: "from file", FieldDescription: "from file"},
	}

	assert.Equal(t, "from flags", form.Value(FieldPayerName))
	assert.Equal(t, "from file", form.Value(FieldDescription))
	assert.Equal(t, "", form.Value(FieldAmount))
}

func TestLoadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payment.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
payerName: Maria Silva
payerAgency: 0001
amount: 150.50
receiverPixKey:
`), 0o600))

	values, err := LoadValues(path)
	require.NoError(t, err)

	assert.Equal(t, "Maria Silva", values.Value(FieldPayerName))
	assert.Equal(t, "0001", values.Value(FieldPayerAgency))
	assert.Equal(t, "150.50", values.Value(FieldAmount))
	assert.Equal(t, "", values.Value(FieldReceiverPixKey))
}

func TestLoadValues_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	values, err := LoadValues(path)
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestLoadValues_Missing(t *testing.T) {
	_, err := LoadValues(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "unable to open form file")
}

func TestFields(t *testing.T) {
	assert.Len(t, Fields, 15)
	assert.Equal(t, "CACC, SLRY, SVGS, TRAN", Fields[5].Hint)
}

type countingForm struct {
	Values
	reads map[string]int
}

func (c *countingForm) Value(name string) string {
	c.reads[name]++
	return c.Values.Value(name)
}

func TestSnapshot(t *testing.T) {
	source := &countingForm{Values: validForm(), reads: map[string]int{}}

	snapshot := Snapshot(source)
	assert.Equal(t, validForm(), snapshot)

	// collecting from the snapshot never goes back to the source
	Collect(snapshot)
	Collect(snapshot)
	for _, field := range Fields {
		assert.Equal(t, 1, source.reads[field.Name], field.Name)
	}
}
