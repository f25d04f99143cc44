package usecase

import (
	"context"

	"studioo/internal/domain/entities"
	"studioo/internal/usecase/interfaces"
)

type IClientUseCase interface {
	GetProfile(ctx context.Context, userID string) (entities.Client, error)
}

type ClientUseCase struct {
	clients interfaces.IClientRepository
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(clients interfaces.IClientRepository) *ClientUseCase {
	return &ClientUseCase{clients: clients}
}

func (u *ClientUseCase) GetProfile(ctx context.Context, userID string) (entities.Client, error) {
	return resolveClient(ctx, u.clients, userID)
}
