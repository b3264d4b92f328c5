package providers

import (
	"context"
	"strconv"

	"github.com/doctorconsult/appcore/internal/domain/entities"
)

// EventBus defines the interface for publishing and subscribing to
// appointment update hints
type EventBus interface {
	// Publish publishes an event to all subscribers
	Publish(ctx context.Context, channel string, event *entities.AppointmentEvent) error

	// Subscribe subscribes to events on a channel
	Subscribe(ctx context.Context, channel string) (<-chan *entities.AppointmentEvent, error)

	// Unsubscribe unsubscribes from a channel
	Unsubscribe(ctx context.Context, channel string) error

	// Close closes the event bus and all subscriptions
	Close() error
}

const (
	// EventChannelAppointmentUpdates is the channel for all appointment updates
	EventChannelAppointmentUpdates = "appointments:updates"

	// EventChannelUserPrefix is the prefix for per-patient channels
	EventChannelUserPrefix = "appointments:user:"

	// EventChannelDoctorPrefix is the prefix for per-doctor channels
	EventChannelDoctorPrefix = "appointments:doctor:"
)

// GetUserChannel returns the channel carrying one patient's updates
func GetUserChannel(userID int64) string {
	return EventChannelUserPrefix + strconv.FormatInt(userID, 10)
}

// GetDoctorChannel returns the channel carrying one doctor's updates
func GetDoctorChannel(doctorID int64) string {
	return EventChannelDoctorPrefix + strconv.FormatInt(doctorID, 10)
}
