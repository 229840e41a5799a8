package request

import "encoding/json"

// PaymentRequest is the payload for paying a billing schedule entry.
//
// `mp_payload` is passed to Mercado Pago as-is, with the amount and external
// reference taken from the entry. A bare payment object is accepted too.
type PaymentRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
