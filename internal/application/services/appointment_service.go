package services

import (
	"context"
	"time"

	"github.com/doctorconsult/appcore/internal/domain/entities"
	"github.com/doctorconsult/appcore/internal/domain/providers"
	"github.com/doctorconsult/appcore/internal/domain/scheduling"
	"github.com/doctorconsult/appcore/internal/infrastructure/observability"
	apperrors "github.com/doctorconsult/appcore/pkg/errors"
)

// AppointmentService applies appointment lifecycle transitions. Every
// transition is requested against the backend first; the local record is
// mutated only after a successful acknowledgment, and a failed request
// leaves the caller's record untouched.
type AppointmentService struct {
	backend  providers.ConsultBackend
	eventBus providers.EventBus
}

// NewAppointmentService creates a new appointment service
func NewAppointmentService(backend providers.ConsultBackend) *AppointmentService {
	return &AppointmentService{
		backend: backend,
	}
}

// SetEventBus enables publishing refresh hints after acknowledged transitions
func (s *AppointmentService) SetEventBus(bus providers.EventBus) {
	s.eventBus = bus
}

// Book submits a booking request for the given doctor and canonical slot on
// behalf of the session's patient. The created appointment starts PENDING;
// its slot may still be adjusted by the doctor's approval.
func (s *AppointmentService) Book(ctx context.Context, session *entities.Session, doctorID int64, slot scheduling.Slot) (*entities.Appointment, error) {
	if session == nil {
		return nil, apperrors.NewInternalError("no session for booking", nil)
	}

	appointment, err := s.backend.BookAppointment(ctx, session.UserID, doctorID, slot)
	if err != nil {
		return nil, err
	}

	observability.LoggerFromContext(ctx).Info().
		Int64("appointment_id", appointment.ID).
		Int64("doctor_id", doctorID).
		Str("date", appointment.Date).
		Str("time", appointment.Time).
		Msg("appointment booked")

	s.publish(ctx, appointment, entities.AppointmentEventTypeBooked)
	return appointment, nil
}

// Approve applies the doctor's approval to a pending appointment. The
// approval response is authoritative: the server may assign or confirm the
// slot at approval time, so its date/time/paid values replace the local
// ones, never the reverse.
func (s *AppointmentService) Approve(ctx context.Context, appointment *entities.Appointment) (*entities.Appointment, error) {
	if appointment.Status != entities.AppointmentStatusPending {
		return nil, apperrors.NewInvalidTransitionError("only a pending appointment can be approved")
	}

	ack, err := s.backend.ApproveAppointment(ctx, appointment.ID)
	if err != nil {
		return nil, err
	}

	approved := appointment.Clone()
	approved.Status = entities.AppointmentStatusApproved
	approved.Paid = ack.Paid
	if ack.Date != "" {
		approved.Date = ack.Date
	}
	if ack.Time != "" {
		approved.Time = ack.Time
	}

	s.publish(ctx, approved, entities.AppointmentEventTypeApproved)
	return approved, nil
}

// Pay settles the consultation fee. Paying is only meaningful once the
// doctor has approved: paying a pending (or already paid, or completed)
// appointment fails with INVALID_TRANSITION before any backend call.
func (s *AppointmentService) Pay(ctx context.Context, appointment *entities.Appointment) (*entities.Appointment, error) {
	if appointment.Status != entities.AppointmentStatusApproved {
		return nil, apperrors.NewInvalidTransitionError("only an approved appointment can be paid")
	}
	if appointment.Paid {
		return nil, apperrors.NewInvalidTransitionError("appointment is already paid")
	}

	if err := s.backend.PayAppointment(ctx, appointment.ID); err != nil {
		return nil, err
	}

	paid := appointment.Clone()
	paid.Paid = true

	s.publish(ctx, paid, entities.AppointmentEventTypePaid)
	return paid, nil
}

// Complete closes out a consultation that has been approved and paid
func (s *AppointmentService) Complete(ctx context.Context, appointment *entities.Appointment) (*entities.Appointment, error) {
	if appointment.Status != entities.AppointmentStatusApproved || !appointment.Paid {
		return nil, apperrors.NewInvalidTransitionError("only an approved and paid appointment can be completed")
	}

	if _, err := s.backend.CompleteAppointment(ctx, appointment.ID); err != nil {
		return nil, err
	}

	completed := appointment.Clone()
	completed.Status = entities.AppointmentStatusCompleted

	s.publish(ctx, completed, entities.AppointmentEventTypeCompleted)
	return completed, nil
}

// Joinable reports whether the patient may enter the video consultation.
// Approval and payment are the only local gates; the "30 minutes before the
// slot" access window is granted server-side when the call room opens, so
// now is not consulted yet.
func Joinable(appointment *entities.Appointment, now time.Time) bool {
	_ = now
	return appointment.Status == entities.AppointmentStatusApproved && appointment.Paid
}

func (s *AppointmentService) publish(ctx context.Context, appointment *entities.Appointment, eventType entities.AppointmentEventType) {
	if s.eventBus == nil {
		return
	}

	userID := appointment.UserID
	if userID == 0 && appointment.User != nil {
		userID = appointment.User.ID
	}
	doctorID := appointment.DoctorID
	if doctorID == 0 && appointment.Doctor != nil {
		doctorID = appointment.Doctor.ID
	}

	event := entities.NewAppointmentEvent(appointment.ID, userID, doctorID, eventType)
	for _, channel := range []string{
		providers.EventChannelAppointmentUpdates,
		providers.GetUserChannel(userID),
		providers.GetDoctorChannel(doctorID),
	} {
		if err := s.eventBus.Publish(ctx, channel, event); err != nil {
			observability.LoggerFromContext(ctx).Warn().Err(err).
				Str("channel", channel).
				Msg("failed to publish appointment event")
		}
	}
}
