package interfaces

//go:generate mockgen -source=project_repository_interface.go -destination=mocks/project_repository_interface_mock.go -package=mock_interfaces

import (
	"context"

	"studioo/internal/domain/entities"
)

// IProjectRepository abstracts DynamoDB persistence for Project.
//
// The partner hub must be able to:
//   - list the projects of one client
//   - read a single project
//   - update the editable details of a project owned by the client
//
// Lookups return a zero Project (ID == "") when nothing matches.
type IProjectRepository interface {
	GetByID(ctx context.Context, id string) (entities.Project, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Project, error)
	UpdateDetails(ctx context.Context, p entities.Project) (entities.Project, error)
}
