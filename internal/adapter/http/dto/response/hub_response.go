package response

import (
	"time"

	"studioo/internal/domain/entities"
)

type ClientResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Company string `json:"company,omitempty"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
}

func FromClient(c entities.Client) ClientResponse {
	return ClientResponse{ID: c.ID, Name: c.Name, Company: c.Company, Email: c.Email, Phone: c.Phone}
}

type ProjectResponse struct {
	ID           string                   `json:"id"`
	Title        string                   `json:"title"`
	ProjectType  string                   `json:"project_type"`
	SubService   string                   `json:"sub_service,omitempty"`
	Style        string                   `json:"style,omitempty"`
	Description  string                   `json:"description"`
	Location     string                   `json:"location"`
	StartDate    string                   `json:"start_date"`
	Requirements string                   `json:"requirements,omitempty"`
	Status       string                   `json:"status"`
	Timeline     []entities.TimelineEvent `json:"timeline"`
	Files        []entities.ProjectFile   `json:"files"`
	CreatedAt    time.Time                `json:"created_at"`
	UpdatedAt    time.Time                `json:"updated_at"`
}

func FromProject(p entities.Project) ProjectResponse {
	res := ProjectResponse{
		ID:           p.ID,
		Title:        p.Title,
		ProjectType:  p.ProjectType,
		SubService:   p.SubService,
		Style:        p.Style,
		Description:  p.Description,
		Location:     p.Location,
		StartDate:    p.StartDate,
		Requirements: p.Requirements,
		Status:       string(p.Status),
		Timeline:     p.Timeline,
		Files:        p.Files,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
	if res.Timeline == nil {
		res.Timeline = []entities.TimelineEvent{}
	}
	if res.Files == nil {
		res.Files = []entities.ProjectFile{}
	}
	return res
}

func FromProjects(ps []entities.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProject(p))
	}
	return out
}
