package interfaces

//go:generate mockgen -source=client_repository_interface.go -destination=mocks/client_repository_interface_mock.go -package=mock_interfaces

import (
	"context"

	"studioo/internal/domain/entities"
)

// IClientRepository reads partner profiles. GetByUserID returns a zero
// Client when the user has no profile.
type IClientRepository interface {
	GetByUserID(ctx context.Context, userID string) (entities.Client, error)
}
