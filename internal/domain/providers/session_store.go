package providers

import (
	"context"

	"github.com/doctorconsult/appcore/internal/domain/entities"
)

// SessionStore defines the interface for persisting the logged-in session.
// Callers load the session once and pass it explicitly into operations;
// nothing below this port reads identity as ambient state.
type SessionStore interface {
	// Get retrieves the current session, NOT_FOUND if nobody is logged in
	Get(ctx context.Context) (*entities.Session, error)

	// Save stores the session
	Save(ctx context.Context, session *entities.Session) error

	// Clear removes the session
	Clear(ctx context.Context) error
}
