package entities

// ApprovalStatus represents the admin approval status of a doctor profile
type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "PENDING"
	ApprovalStatusApproved ApprovalStatus = "APPROVED"
)

// Doctor represents an immutable doctor snapshot as fetched from the backend.
// The client never mutates it; a newer fetch replaces the whole value.
type Doctor struct {
	ID             int64          `json:"id"`
	FullName       string         `json:"fullName"`
	Email          string         `json:"email"`
	Gender         string         `json:"gender"`
	Specialization string         `json:"specialization"`
	Qualification  string         `json:"qualification"`
	Bio            string         `json:"bio"`
	Fees           float64        `json:"fees"`
	Rating         float64        `json:"rating"`
	Status         ApprovalStatus `json:"status"`
	Tags           []string       `json:"tags"`
	Schedules      []string       `json:"schedules"`
}
