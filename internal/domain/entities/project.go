package entities

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ProjectStatus is managed by the studio; partners can only read it.
type ProjectStatus string

const (
	ProjectStatusPendingApproval  ProjectStatus = "Pending Approval"
	ProjectStatusInProgress       ProjectStatus = "In Progress"
	ProjectStatusAwaitingFeedback ProjectStatus = "Awaiting Feedback"
	ProjectStatusCompleted        ProjectStatus = "Completed"
)

type MilestoneStatus string

const (
	MilestoneCompleted MilestoneStatus = "completed"
	MilestoneUpcoming  MilestoneStatus = "upcoming"
)

type TimelineEvent struct {
	Date   string          `json:"date"`
	Title  string          `json:"title"`
	Status MilestoneStatus `json:"status"`
}

type ProjectFile struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Size string `json:"size,omitempty"`
}

// Project is a booked piece of work shown in the partner hub.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_id-index): client_id
type Project struct {
	ID           string          `json:"id"`
	ClientID     string          `json:"client_id"`
	Title        string          `json:"title"`
	ProjectType  string          `json:"project_type"`
	SubService   string          `json:"sub_service,omitempty"`
	Style        string          `json:"style,omitempty"`
	Description  string          `json:"description"`
	Location     string          `json:"location"`
	StartDate    string          `json:"start_date"`
	Requirements string          `json:"requirements,omitempty"`
	Status       ProjectStatus   `json:"status"`
	Timeline     []TimelineEvent `json:"timeline,omitempty"`
	Files        []ProjectFile   `json:"files,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProjectDetails are the fields a partner may edit from the hub.
type ProjectDetails struct {
	Title        string `json:"title"`
	ProjectType  string `json:"project_type"`
	SubService   string `json:"sub_service"`
	Style        string `json:"style"`
	Description  string `json:"description"`
	Location     string `json:"location"`
	StartDate    string `json:"start_date"`
	Requirements string `json:"requirements"`
}

func (d ProjectDetails) Normalize() ProjectDetails {
	return ProjectDetails{
		Title:        strings.TrimSpace(d.Title),
		ProjectType:  strings.TrimSpace(d.ProjectType),
		SubService:   strings.TrimSpace(d.SubService),
		Style:        strings.TrimSpace(d.Style),
		Description:  strings.TrimSpace(d.Description),
		Location:     strings.TrimSpace(d.Location),
		StartDate:    strings.TrimSpace(d.StartDate),
		Requirements: strings.TrimSpace(d.Requirements),
	}
}

func (d ProjectDetails) Validate() ValidationErrors {
	n := d.Normalize()
	err := validation.ValidateStruct(&n,
		validation.Field(&n.Title, validation.Required.ErrorObject(errRequired)),
		validation.Field(&n.Description, validation.Required.ErrorObject(errRequired)),
		validation.Field(&n.Location, validation.Required.ErrorObject(errRequired)),
		validation.Field(&n.StartDate,
			validation.Required.ErrorObject(errRequired),
			validation.Date("2006-01-02").ErrorObject(errDateFormat),
		),
	)
	return fromOzzo(err, "title", "description", "location", "start_date")
}

// Apply copies the editable fields onto p. Status and ownership are untouched.
func (p Project) Apply(d ProjectDetails, now time.Time) Project {
	n := d.Normalize()
	p.Title = n.Title
	p.ProjectType = n.ProjectType
	p.SubService = n.SubService
	p.Style = n.Style
	p.Description = n.Description
	p.Location = n.Location
	p.StartDate = n.StartDate
	p.Requirements = n.Requirements
	p.UpdatedAt = now
	return p
}
