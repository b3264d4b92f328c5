package entities

import "time"

// Session carries the logged-in identity that parameterizes backend calls.
// It is passed explicitly into every scheduling and lifecycle operation
// rather than read from ambient global state.
type Session struct {
	UserID    int64         `json:"userId"`
	FullName  string        `json:"fullName"`
	Gender    string        `json:"gender"`
	Role      RecipientType `json:"role"`
	CreatedAt time.Time     `json:"createdAt"`
}
