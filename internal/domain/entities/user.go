package entities

// User represents a patient snapshot as embedded in appointment responses
type User struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Gender   string `json:"gender"`
}

// RecipientType identifies which side of a consultation a notification or
// appointment list is addressed to
type RecipientType string

const (
	RecipientUser   RecipientType = "user"
	RecipientDoctor RecipientType = "doctor"
)
