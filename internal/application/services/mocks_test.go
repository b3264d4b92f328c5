package services_test

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/doctorconsult/appcore/internal/domain/entities"
	"github.com/doctorconsult/appcore/internal/domain/scheduling"
)

// MockConsultBackend is a mock implementation of providers.ConsultBackend
type MockConsultBackend struct {
	mock.Mock
}

func (m *MockConsultBackend) GetDoctorProfile(ctx context.Context, doctorID int64) (*entities.Doctor, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Doctor), args.Error(1)
}

func (m *MockConsultBackend) SearchDoctors(ctx context.Context, specialization string) ([]*entities.Doctor, error) {
	args := m.Called(ctx, specialization)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Doctor), args.Error(1)
}

func (m *MockConsultBackend) BookAppointment(ctx context.Context, userID, doctorID int64, slot scheduling.Slot) (*entities.Appointment, error) {
	args := m.Called(ctx, userID, doctorID, slot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Appointment), args.Error(1)
}

func (m *MockConsultBackend) ListUserAppointments(ctx context.Context, userID int64) ([]*entities.Appointment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Appointment), args.Error(1)
}

func (m *MockConsultBackend) ListDoctorAppointments(ctx context.Context, doctorID int64) ([]*entities.Appointment, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Appointment), args.Error(1)
}

func (m *MockConsultBackend) ApproveAppointment(ctx context.Context, appointmentID int64) (*entities.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Appointment), args.Error(1)
}

func (m *MockConsultBackend) CompleteAppointment(ctx context.Context, appointmentID int64) (*entities.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Appointment), args.Error(1)
}

func (m *MockConsultBackend) PayAppointment(ctx context.Context, appointmentID int64) error {
	args := m.Called(ctx, appointmentID)
	return args.Error(0)
}

func (m *MockConsultBackend) ListNotifications(ctx context.Context, recipient entities.RecipientType, recipientID int64, unreadOnly bool) ([]*entities.Notification, error) {
	args := m.Called(ctx, recipient, recipientID, unreadOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Notification), args.Error(1)
}

func (m *MockConsultBackend) MarkNotificationRead(ctx context.Context, notificationID int64) (*entities.Notification, error) {
	args := m.Called(ctx, notificationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Notification), args.Error(1)
}

// fakeEventBus records published events in memory and fans them out to
// in-process subscribers
type fakeEventBus struct {
	mu          sync.Mutex
	published   map[string][]*entities.AppointmentEvent
	subscribers map[string][]chan *entities.AppointmentEvent
}

func newFakeEventBus() *fakeEventBus {
	return &fakeEventBus{
		published:   make(map[string][]*entities.AppointmentEvent),
		subscribers: make(map[string][]chan *entities.AppointmentEvent),
	}
}

func (b *fakeEventBus) Publish(ctx context.Context, channel string, event *entities.AppointmentEvent) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published[channel] = append(b.published[channel], event)
	for _, ch := range b.subscribers[channel] {
		select {
		case ch <- event:
		default:
		}
	}
	return nil
}

func (b *fakeEventBus) Subscribe(ctx context.Context, channel string) (<-chan *entities.AppointmentEvent, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	ch := make(chan *entities.AppointmentEvent, 16)
	b.subscribers[channel] = append(b.subscribers[channel], ch)
	return ch, nil
}

func (b *fakeEventBus) Unsubscribe(ctx context.Context, channel string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subscribers[channel] {
		close(ch)
	}
	delete(b.subscribers, channel)
	return nil
}

func (b *fakeEventBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for channel, chans := range b.subscribers {
		for _, ch := range chans {
			close(ch)
		}
		delete(b.subscribers, channel)
	}
	return nil
}

func (b *fakeEventBus) eventsOn(channel string) []*entities.AppointmentEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]*entities.AppointmentEvent, len(b.published[channel]))
	copy(out, b.published[channel])
	return out
}
