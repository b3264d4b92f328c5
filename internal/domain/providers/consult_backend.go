package providers

import (
	"context"

	"github.com/doctorconsult/appcore/internal/domain/entities"
	"github.com/doctorconsult/appcore/internal/domain/scheduling"
)

// ConsultBackend defines the interface to the consultation REST service.
// The service owns all persistence and the doctor directory; the client
// holds immutable snapshots per fetch and never writes around this port.
type ConsultBackend interface {
	// GetDoctorProfile fetches one doctor snapshot
	GetDoctorProfile(ctx context.Context, doctorID int64) (*entities.Doctor, error)

	// SearchDoctors lists doctor snapshots for a specialization
	SearchDoctors(ctx context.Context, specialization string) ([]*entities.Doctor, error)

	// BookAppointment submits a booking request for a canonical slot and
	// returns the created PENDING appointment
	BookAppointment(ctx context.Context, userID, doctorID int64, slot scheduling.Slot) (*entities.Appointment, error)

	// ListUserAppointments lists the patient's appointment snapshots
	ListUserAppointments(ctx context.Context, userID int64) ([]*entities.Appointment, error)

	// ListDoctorAppointments lists the doctor's appointment snapshots
	ListDoctorAppointments(ctx context.Context, doctorID int64) ([]*entities.Appointment, error)

	// ApproveAppointment approves a pending appointment. The returned
	// appointment carries the server-assigned date/time/paid state.
	ApproveAppointment(ctx context.Context, appointmentID int64) (*entities.Appointment, error)

	// CompleteAppointment marks a paid appointment as completed
	CompleteAppointment(ctx context.Context, appointmentID int64) (*entities.Appointment, error)

	// PayAppointment settles the consultation fee for an approved appointment
	PayAppointment(ctx context.Context, appointmentID int64) error

	// ListNotifications lists notification items for a recipient
	ListNotifications(ctx context.Context, recipient entities.RecipientType, recipientID int64, unreadOnly bool) ([]*entities.Notification, error)

	// MarkNotificationRead flips a notification's read flag
	MarkNotificationRead(ctx context.Context, notificationID int64) (*entities.Notification, error)
}
