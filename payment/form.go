package payment

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pixpay/pacs008-client/libs/clients/pacs008"
	"github.com/pixpay/pacs008-client/libs/prompt"
	"gopkg.in/yaml.v2"
)

// Names of the form fields, identical to the request keys on the wire
const (
	FieldPayerName           = "payerName"
	FieldPayerCpfCnpj        = "payerCpfCnpj"
	FieldPayerIspb           = "payerIspb"
	FieldPayerAgency         = "payerAgency"
	FieldPayerAccount        = "payerAccount"
	FieldPayerAccountType    = "payerAccountType"
	FieldReceiverName        = "receiverName"
	FieldReceiverCpfCnpj     = "receiverCpfCnpj"
	FieldReceiverIspb        = "receiverIspb"
	FieldReceiverAgency      = "receiverAgency"
	FieldReceiverAccount     = "receiverAccount"
	FieldReceiverPixKey      = "receiverPixKey"
	FieldReceiverAccountType = "receiverAccountType"
	FieldAmount              = "amount"
	FieldDescription         = "description"
)

// Fields describes every form field in display order
var Fields = []prompt.Field{
	{Name: FieldPayerName, Label: "Payer name"},
	{Name: FieldPayerCpfCnpj, Label: "Payer CPF/CNPJ"},
	{Name: FieldPayerIspb, Label: "Payer ISPB"},
	{Name: FieldPayerAgency, Label: "Payer agency"},
	{Name: FieldPayerAccount, Label: "Payer account"},
	{Name: FieldPayerAccountType, Label: "Payer account type", Hint: accountTypeHint()},
	{Name: FieldReceiverName, Label: "Receiver name"},
	{Name: FieldReceiverCpfCnpj, Label: "Receiver CPF/CNPJ"},
	{Name: FieldReceiverIspb, Label: "Receiver ISPB"},
	{Name: FieldReceiverAgency, Label: "Receiver agency"},
	{Name: FieldReceiverAccount, Label: "Receiver account"},
	{Name: FieldReceiverPixKey, Label: "Receiver PIX key (optional)"},
	{Name: FieldReceiverAccountType, Label: "Receiver account type", Hint: accountTypeHint()},
	{Name: FieldAmount, Label: "Amount"},
	{Name: FieldDescription, Label: "Description"},
}

func accountTypeHint() string {
	var hint string
	for i, t := range pacs008.AccountTypes {
		if i > 0 {
			hint += ", "
		}
		hint += t
	}
	return hint
}

// Form is anything holding the current value of named input fields
type Form interface {
	Value(name string) string
}

// Values is an in memory form
type Values map[string]string

// Value implements Form
func (v Values) Value(name string) string {
	return v[name]
}

// LoadValues reads a yaml form file mapping field names to values
func LoadValues(path string) (values Values, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open form file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("unable to close form file: %w", cerr)
		}
	}()

	// scalars decode into strings as written, so 0001 and 150.50 survive untouched
	values = Values{}
	if err = yaml.NewDecoder(f).Decode(&values); err != nil {
		if errors.Is(err, io.EOF) {
			return values, nil
		}
		return nil, fmt.Errorf("unable to decode form file: %w", err)
	}
	return values, nil
}

// Layered reads each field from the first form holding a non empty value
type Layered []Form

// Value implements Form
func (l Layered) Value(name string) string {
	for _, f := range l {
		if f == nil {
			continue
		}
		if v := f.Value(name); v != "" {
			return v
		}
	}
	return ""
}

// Snapshot reads every known field from form into an in memory form, so
// interactive sources are asked once before a submission starts
func Snapshot(form Form) Values {
	values := make(Values, len(Fields))
	for _, field := range Fields {
		values[field.Name] = form.Value(field.Name)
	}
	return values
}
