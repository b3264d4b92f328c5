package entities

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "PENDING"
	AppointmentStatusApproved  AppointmentStatus = "APPROVED"
	AppointmentStatusCompleted AppointmentStatus = "COMPLETED"
)

// Appointment represents one booking and its lifecycle state. Doctor and
// User are embedded snapshots returned by the backend list endpoints; the
// ids remain the weak references the client resolves against lookups.
//
// Date is the calendar date in ISO "YYYY-MM-DD" form and Time the 24-hour
// "HH:MM:SS" start time. Both are set at booking and overwritten only by an
// approval response, which is authoritative for the assigned slot.
type Appointment struct {
	ID       int64             `json:"id"`
	UserID   int64             `json:"userId,omitempty"`
	DoctorID int64             `json:"doctorId,omitempty"`
	User     *User             `json:"user,omitempty"`
	Doctor   *Doctor           `json:"doctor,omitempty"`
	Date     string            `json:"date"`
	Time     string            `json:"time"`
	Status   AppointmentStatus `json:"status"`
	Paid     bool              `json:"paid"`
}

// Clone returns a copy of the appointment with the embedded snapshots shared.
// Lifecycle operations mutate copies so a backend failure never leaves a
// half-applied record visible.
func (a *Appointment) Clone() *Appointment {
	if a == nil {
		return nil
	}
	cp := *a
	return &cp
}
