package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactInfo_Validate(t *testing.T) {
	tests := []struct {
		name    string
		contact ContactInfo
		want    ValidationErrors
	}{
		{
			name:    "valid without company",
			contact: ContactInfo{Name: "Jane Doe", Email: "jane@example.com", Phone: "+971 50 123 4567"},
		},
		{
			name:    "whitespace only is missing",
			contact: ContactInfo{Name: "   ", Email: "jane@example.com", Phone: "1"},
			want:    ValidationErrors{{Field: "name", Code: CodeRequired}},
		},
		{
			name:    "malformed email",
			contact: ContactInfo{Name: "Jane", Email: "jane@example", Phone: "1"},
			want:    ValidationErrors{{Field: "email", Code: CodeInvalidFormat}},
		},
		{
			name:    "everything missing keeps screen order",
			contact: ContactInfo{},
			want: ValidationErrors{
				{Field: "name", Code: CodeRequired},
				{Field: "email", Code: CodeRequired},
				{Field: "phone", Code: CodeRequired},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.contact.Validate())
		})
	}
}

func TestProjectDetails_Validate(t *testing.T) {
	d := ProjectDetails{Title: "Launch", Description: "Hero shots", Location: "Dubai", StartDate: "2025-03-01"}
	assert.Empty(t, d.Validate())

	d.StartDate = "01/03/2025"
	e, ok := d.Validate().Field("start_date")
	require.True(t, ok)
	assert.Equal(t, CodeInvalidFormat, e.Code)

	errs := ProjectDetails{}.Validate()
	assert.Len(t, errs, 4)
}

func TestProject_ApplyKeepsStatus(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	p := Project{ID: "p1", ClientID: "c1", Status: ProjectStatusInProgress}

	got := p.Apply(ProjectDetails{Title: " New ", Location: "Sharjah"}, now)

	assert.Equal(t, "New", got.Title)
	assert.Equal(t, "Sharjah", got.Location)
	assert.Equal(t, ProjectStatusInProgress, got.Status)
	assert.Equal(t, "c1", got.ClientID)
	assert.Equal(t, now, got.UpdatedAt)
}
