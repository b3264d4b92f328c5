package entities

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// AppointmentEventType represents the type of appointment update event
type AppointmentEventType string

const (
	AppointmentEventTypeBooked    AppointmentEventType = "booked"
	AppointmentEventTypeApproved  AppointmentEventType = "approved"
	AppointmentEventTypePaid      AppointmentEventType = "paid"
	AppointmentEventTypeCompleted AppointmentEventType = "completed"
)

// AppointmentEvent is a lightweight refresh hint published when an
// appointment changes on the backend. It carries no appointment payload:
// consumers re-fetch, so a stale or duplicated event can never corrupt
// local state.
type AppointmentEvent struct {
	ID            string               `json:"id"`
	AppointmentID int64                `json:"appointment_id"`
	UserID        int64                `json:"user_id"`
	DoctorID      int64                `json:"doctor_id"`
	EventType     AppointmentEventType `json:"event_type"`
	Timestamp     time.Time            `json:"timestamp"`
}

// NewAppointmentEvent creates a new appointment event
func NewAppointmentEvent(appointmentID, userID, doctorID int64, eventType AppointmentEventType) *AppointmentEvent {
	return &AppointmentEvent{
		ID:            generateEventID(),
		AppointmentID: appointmentID,
		UserID:        userID,
		DoctorID:      doctorID,
		EventType:     eventType,
		Timestamp:     time.Now(),
	}
}

// generateEventID generates a unique event ID
func generateEventID() string {
	return time.Now().Format("20060102150405") + "-" + randomString(8)
}

// randomString generates a random string of specified length
func randomString(length int) string {
	bytes := make([]byte, length/2+1)
	if _, err := rand.Read(bytes); err != nil {
		// Fallback to timestamp-based if crypto/rand fails
		return time.Now().Format("150405.000")
	}
	return hex.EncodeToString(bytes)[:length]
}
