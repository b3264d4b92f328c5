package entities

import "time"

// Notification represents one inbound notification/message item. Read is a
// display affordance only; it never feeds back into appointment state.
type Notification struct {
	ID            int64         `json:"id"`
	RecipientType RecipientType `json:"recipientType"`
	RecipientID   int64         `json:"recipientId"`
	Message       string        `json:"message"`
	Read          bool          `json:"read"`
	CreatedAt     time.Time     `json:"createdAt"`
}
