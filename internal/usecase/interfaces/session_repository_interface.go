package interfaces

//go:generate mockgen -source=session_repository_interface.go -destination=mocks/session_repository_interface_mock.go -package=mock_interfaces

import (
	"context"

	"studioo/internal/domain/entities"
)

// ISessionRepository stores in-progress wizard sessions.
//
// Get returns a zero session (ID == "") when the session does not exist or
// has expired.
type ISessionRepository interface {
	Get(ctx context.Context, id string) (entities.WizardSession, error)
	Save(ctx context.Context, s entities.WizardSession) error
	Delete(ctx context.Context, id string) error
}
