package entities

import "time"

type QuoteRequestStatus string

const (
	QuoteRequestStatusReceived QuoteRequestStatus = "received"
	QuoteRequestStatusReviewed QuoteRequestStatus = "reviewed"
	QuoteRequestStatusAccepted QuoteRequestStatus = "accepted"
)

// QuoteRequest is a compiled quote submitted by the visitor for follow-up.
//
// Storage model (DynamoDB):
//   - PK: quote_number
//   - the full quote is stored as a nested map for traceability.
type QuoteRequest struct {
	ID           string             `json:"id"`
	QuoteNumber  string             `json:"quote_number"`
	SessionID    string             `json:"session_id"`
	ClientUserID string             `json:"client_user_id,omitempty"`
	Language     string             `json:"language"`
	Status       QuoteRequestStatus `json:"status"`
	Quote        Quote              `json:"quote"`
	CreatedAt    time.Time          `json:"created_at"`
}
