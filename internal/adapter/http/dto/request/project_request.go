package request

import "studioo/internal/domain/entities"

// ProjectDetailsRequest is the partner hub edit form.
type ProjectDetailsRequest struct {
	Title        string `json:"title"`
	ProjectType  string `json:"project_type"`
	SubService   string `json:"sub_service"`
	Style        string `json:"style"`
	Description  string `json:"description"`
	Location     string `json:"location"`
	StartDate    string `json:"start_date"`
	Requirements string `json:"requirements"`
}

func (r ProjectDetailsRequest) ToDetails() entities.ProjectDetails {
	return entities.ProjectDetails{
		Title:        r.Title,
		ProjectType:  r.ProjectType,
		SubService:   r.SubService,
		Style:        r.Style,
		Description:  r.Description,
		Location:     r.Location,
		StartDate:    r.StartDate,
		Requirements: r.Requirements,
	}.Normalize()
}
