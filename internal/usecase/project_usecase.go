package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"studioo/internal/domain/entities"
	"studioo/internal/usecase/interfaces"
)

var (
	ErrClientNotFound   = errors.New("client profile not found")
	ErrProjectNotFound  = errors.New("project not found")
	ErrInvalidProjectID = errors.New("invalid project id")
	ErrInvalidUserID    = errors.New("invalid user id")
)

// IProjectUseCase exposes the partner hub project operations. Every call is
// scoped to the client profile of the signed-in user.
type IProjectUseCase interface {
	ListProjects(ctx context.Context, userID string) ([]entities.Project, error)
	GetProject(ctx context.Context, userID, projectID string) (entities.Project, error)
	UpdateProjectDetails(ctx context.Context, userID, projectID string, d entities.ProjectDetails) (entities.Project, error)
}

type ProjectUseCase struct {
	projects interfaces.IProjectRepository
	clients  interfaces.IClientRepository
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(projects interfaces.IProjectRepository, clients interfaces.IClientRepository) *ProjectUseCase {
	return &ProjectUseCase{projects: projects, clients: clients}
}

func (u *ProjectUseCase) ListProjects(ctx context.Context, userID string) ([]entities.Project, error) {
	client, err := u.client(ctx, userID)
	if err != nil {
		return nil, err
	}
	projects, err := u.projects.ListByClientID(ctx, client.ID)
	if err != nil {
		return nil, err
	}
	if projects == nil {
		projects = []entities.Project{}
	}
	return projects, nil
}

func (u *ProjectUseCase) GetProject(ctx context.Context, userID, projectID string) (entities.Project, error) {
	client, err := u.client(ctx, userID)
	if err != nil {
		return entities.Project{}, err
	}
	return u.owned(ctx, client, projectID)
}

// UpdateProjectDetails validates and stores the editable fields of a
// project. Projects of other clients are reported as not found.
func (u *ProjectUseCase) UpdateProjectDetails(ctx context.Context, userID, projectID string, d entities.ProjectDetails) (entities.Project, error) {
	if errs := d.Validate(); len(errs) > 0 {
		return entities.Project{}, errs
	}
	client, err := u.client(ctx, userID)
	if err != nil {
		return entities.Project{}, err
	}
	current, err := u.owned(ctx, client, projectID)
	if err != nil {
		return entities.Project{}, err
	}

	updated, err := u.projects.UpdateDetails(ctx, current.Apply(d, time.Now().UTC()))
	if err != nil {
		return entities.Project{}, err
	}
	if updated.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return updated, nil
}

func (u *ProjectUseCase) owned(ctx context.Context, client entities.Client, projectID string) (entities.Project, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.Project{}, ErrInvalidProjectID
	}
	p, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" || p.ClientID != client.ID {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (u *ProjectUseCase) client(ctx context.Context, userID string) (entities.Client, error) {
	return resolveClient(ctx, u.clients, userID)
}

func resolveClient(ctx context.Context, clients interfaces.IClientRepository, userID string) (entities.Client, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Client{}, ErrInvalidUserID
	}
	c, err := clients.GetByUserID(ctx, userID)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}
