package pacs008

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// AccountType is the ISO 20022 cash account type code
type AccountType = string

const (
	// AccountTypeChecking - current/checking account
	AccountTypeChecking AccountType = "CACC"
	// AccountTypeSalary - salary account
	AccountTypeSalary AccountType = "SLRY"
	// AccountTypeSavings - savings account
	AccountTypeSavings AccountType = "SVGS"
	// AccountTypeTransactional - payment (transactional) account
	AccountTypeTransactional AccountType = "TRAN"
)

// AccountTypes lists the account type codes the message generator knows about.
// They are offered as hints only, the server owns validation.
var AccountTypes = []AccountType{
	AccountTypeChecking,
	AccountTypeSalary,
	AccountTypeSavings,
	AccountTypeTransactional,
}

// Amount is the transfer amount as typed by the user. It may be NaN when the
// input was not a number, that is encoded as null and left for the server to reject.
type Amount float64

// MarshalJSON implements json.Marshaler
func (a Amount) MarshalJSON() ([]byte, error) {
	f := float64(a)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(f, 'f', -1, 64)), nil
}

// UnmarshalJSON implements json.Unmarshaler, null decodes to NaN
func (a *Amount) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*a = Amount(math.NaN())
		return nil
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return err
	}
	*a = Amount(f)
	return nil
}

// Valid reports whether the amount is a finite number
func (a Amount) Valid() bool {
	f := float64(a)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// String renders the amount with two decimal places, or NaN
func (a Amount) String() string {
	if !a.Valid() {
		return "NaN"
	}
	return decimal.NewFromFloat(float64(a)).StringFixed(2)
}

// PaymentRequest is the body of a message generation request
type PaymentRequest struct {
	PayerName        string      `json:"payerName"`
	PayerCpfCnpj     string      `json:"payerCpfCnpj"`
	PayerIspb        string      `json:"payerIspb"`
	PayerAgency      string      `json:"payerAgency"`
	PayerAccount     string      `json:"payerAccount"`
	PayerAccountType AccountType `json:"payerAccountType"`

	ReceiverName        string      `json:"receiverName"`
	ReceiverCpfCnpj     string      `json:"receiverCpfCnpj"`
	ReceiverIspb        string      `json:"receiverIspb"`
	ReceiverAgency      string      `json:"receiverAgency"`
	ReceiverAccount     string      `json:"receiverAccount"`
	ReceiverPixKey      string      `json:"receiverPixKey"`
	ReceiverAccountType AccountType `json:"receiverAccountType"`

	Amount      Amount `json:"amount"`
	Description string `json:"description"`
}
