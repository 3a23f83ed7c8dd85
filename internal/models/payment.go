package models

// PaymentInfo is the card payment behind a transaction, as seen by the processor.
type PaymentInfo struct {
	SessionID string  `json:"sessionId"`
	Status    string  `json:"status"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
}
