package entity

import (
	"sort"
	"strings"
)

const (
	DefaultPaymentCode = "189"
	DefaultCurrency    = "RSD"
)

// PaymentRecord is the content of a paper payment slip (nalog za uplatu).
// Amount is kept in canonical form: "." as decimal separator, no grouping.
type PaymentRecord struct {
	PayerName    string `json:"payerName"`
	PayerAddress string `json:"payerAddress"`
	PayerCity    string `json:"payerCity"`

	Purpose string `json:"purpose"`

	ReceiverName    string `json:"receiverName"`
	ReceiverAddress string `json:"receiverAddress"`
	ReceiverCity    string `json:"receiverCity"`
	ReceiverAccount string `json:"receiverAccount"`

	PaymentCode string `json:"paymentCode"`
	Currency    string `json:"currency"`
	Amount      string `json:"amount"`

	Model     string `json:"model"`
	Reference string `json:"reference"`
}

// NewPaymentRecord returns a blank slip with the form defaults.
func NewPaymentRecord() PaymentRecord {
	return PaymentRecord{
		PaymentCode: DefaultPaymentCode,
		Currency:    DefaultCurrency,
	}
}

// ValidationErrors maps a JSON field name to a message for the user.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for k := range v {
		fields = append(fields, k)
	}

	sort.Strings(fields)

	return "invalid fields: " + strings.Join(fields, ", ")
}

// PayloadResult is what the form gets back on every edit.
type PayloadResult struct {
	Payload        *string // nil while the slip cannot be encoded
	Errors         ValidationErrors
	DisplayAmount  string
	DisplayAccount string
}

// Valid reports whether the payload exists and the form checks pass.
func (r PayloadResult) Valid() bool {
	return r.Payload != nil && len(r.Errors) == 0
}
