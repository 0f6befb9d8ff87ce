package request

import (
	"encoding/json"
	"errors"
	"strings"
)

var ErrInvalidPaymentBody = errors.New("request body is not valid json")

// InvoicePaymentRequest wraps the provider payment request. The payload is kept
// raw since its schema belongs to the payment provider. A bare provider body
// without the envelope is accepted too.
type InvoicePaymentRequest struct {
	ProviderPayload json.RawMessage `json:"provider_payload"`
}

// ParseInvoicePayment extracts the provider payload from a request body. An
// empty body yields "{}".
func ParseInvoicePayment(raw []byte) (json.RawMessage, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, ErrInvalidPaymentBody
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["provider_payload"]; ok {
			if v := strings.TrimSpace(string(wrapped)); v == "" || v == "null" {
				return nil, errors.New("provider_payload cannot be empty")
			}
			return wrapped, nil
		}
	}
	return json.RawMessage(raw), nil
}
