package services

import (
	"context"
	"sync"

	"github.com/doctorconsult/appcore/internal/domain/entities"
	"github.com/doctorconsult/appcore/internal/domain/providers"
	"github.com/doctorconsult/appcore/internal/infrastructure/observability"
	apperrors "github.com/doctorconsult/appcore/pkg/errors"
)

// SyncCoordinator keeps one screen session's view of an appointment list
// consistent with the backend. Every trigger — initial entry, regained
// focus, explicit pull-to-refresh — runs the same full re-fetch and
// replaces local state wholesale; there is no field-level merging against
// pending optimistic updates. A caller that has just performed a lifecycle
// action installs the acknowledged result with ApplyLocal instead of racing
// an immediate re-fetch against it.
//
// Each screen owns its own coordinator. There is no shared cache between
// screens; duplicate fetches are the accepted price for never serving
// another screen's stale view.
type SyncCoordinator struct {
	backend   providers.ConsultBackend
	recipient entities.RecipientType
	ownerID   int64

	mu           sync.RWMutex
	appointments []*entities.Appointment
	loaded       bool
}

// NewSyncCoordinator creates a coordinator for one recipient's appointment list
func NewSyncCoordinator(backend providers.ConsultBackend, recipient entities.RecipientType, ownerID int64) *SyncCoordinator {
	return &SyncCoordinator{
		backend:   backend,
		recipient: recipient,
		ownerID:   ownerID,
	}
}

// Refresh re-fetches the appointment list and replaces the local snapshot.
// On failure the previously fetched list stays observable and the error is
// returned; an empty successful fetch becomes an empty (loaded) list, which
// is distinct from a failed one. A response that lands after ctx is done is
// discarded without touching state, so a fetch outliving its screen is
// harmless.
func (c *SyncCoordinator) Refresh(ctx context.Context) ([]*entities.Appointment, error) {
	var fetched []*entities.Appointment
	var err error

	switch c.recipient {
	case entities.RecipientDoctor:
		fetched, err = c.backend.ListDoctorAppointments(ctx, c.ownerID)
	default:
		fetched, err = c.backend.ListUserAppointments(ctx, c.ownerID)
	}
	if err != nil {
		return c.Appointments(), err
	}
	if ctx.Err() != nil {
		return c.Appointments(), apperrors.NewFetchFailedError("refresh abandoned", ctx.Err())
	}

	c.mu.Lock()
	c.appointments = fetched
	c.loaded = true
	c.mu.Unlock()

	return fetched, nil
}

// Appointments returns the last good snapshot
func (c *SyncCoordinator) Appointments() []*entities.Appointment {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*entities.Appointment, len(c.appointments))
	copy(out, c.appointments)
	return out
}

// Loaded reports whether at least one fetch has succeeded. It is what
// distinguishes "fetched an empty list" from "never fetched / all fetches
// failed".
func (c *SyncCoordinator) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// Appointment resolves a detail view from the last good snapshot
func (c *SyncCoordinator) Appointment(id int64) (*entities.Appointment, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, a := range c.appointments {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, apperrors.NewNotFoundError("appointment not in current list")
}

// ApplyLocal installs a backend-acknowledged appointment into the snapshot.
// The acknowledged result is authoritative until the next explicit Refresh;
// callers use this after approve/pay so the just-completed action cannot be
// overwritten by a racing fetch they did not ask for.
func (c *SyncCoordinator) ApplyLocal(appointment *entities.Appointment) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, a := range c.appointments {
		if a.ID == appointment.ID {
			c.appointments[i] = appointment
			return
		}
	}
	c.appointments = append(c.appointments, appointment)
	c.loaded = true
}

// WatchEvents subscribes to the recipient's appointment update hints and
// refreshes on each one until ctx is done. Refresh failures are logged and
// the watcher keeps going; the prior snapshot stays observable.
func (c *SyncCoordinator) WatchEvents(ctx context.Context, bus providers.EventBus) error {
	channel := providers.GetUserChannel(c.ownerID)
	if c.recipient == entities.RecipientDoctor {
		channel = providers.GetDoctorChannel(c.ownerID)
	}

	events, err := bus.Subscribe(ctx, channel)
	if err != nil {
		return apperrors.NewInternalError("failed to subscribe to appointment events", err)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-events:
				if !ok {
					return
				}
				if _, err := c.Refresh(ctx); err != nil {
					observability.LoggerFromContext(ctx).Warn().Err(err).
						Str("event_id", event.ID).
						Msg("refresh on appointment event failed")
				}
			}
		}
	}()

	return nil
}
