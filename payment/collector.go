package payment

import (
	"math"
	"strconv"
	"strings"

	"github.com/pixpay/pacs008-client/libs/clients/pacs008"
)

// Collect reads the current form state into a new request. Values are taken
// as they are; an amount that does not parse becomes NaN and is left for the
// server to reject.
func Collect(form Form) pacs008.PaymentRequest {
	return pacs008.PaymentRequest{
		PayerName:        form.Value(FieldPayerName),
		PayerCpfCnpj:     form.Value(FieldPayerCpfCnpj),
		PayerIspb:        form.Value(FieldPayerIspb),
		PayerAgency:      form.Value(FieldPayerAgency),
		PayerAccount:     form.Value(FieldPayerAccount),
		PayerAccountType: form.Value(FieldPayerAccountType),

		ReceiverName:        form.Value(FieldReceiverName),
		ReceiverCpfCnpj:     form.Value(FieldReceiverCpfCnpj),
		ReceiverIspb:        form.Value(FieldReceiverIspb),
		ReceiverAgency:      form.Value(FieldReceiverAgency),
		ReceiverAccount:     form.Value(FieldReceiverAccount),
		ReceiverPixKey:      form.Value(FieldReceiverPixKey),
		ReceiverAccountType: form.Value(FieldReceiverAccountType),

		Amount:      parseAmount(form.Value(FieldAmount)),
		Description: form.Value(FieldDescription),
	}
}

// parseAmount ignores surrounding whitespace, prompts and form files keep it
func parseAmount(s string) pacs008.Amount {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return pacs008.Amount(math.NaN())
	}
	return pacs008.Amount(f)
}
