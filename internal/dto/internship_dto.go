package dto

import (
	"strings"

	"github.com/fadilmartias/intern-coach/internal/model"
)

// CreateInternshipInput carries the submitted fields of a new application.
// Status is deliberately free-form: the UI enumerates the allowed values and
// the server keeps the original permissive contract for it.
type CreateInternshipInput struct {
	Company  string `json:"company" validate:"required,min=2"`
	Role     string `json:"role" validate:"required,min=2"`
	Platform string `json:"platform"`
	Location string `json:"location" validate:"required,min=2"`
	Status   string `json:"status"`
	Deadline string `json:"deadline" validate:"required,notfuture"`
	Notes    string `json:"notes" validate:"max=500"`
}

// Trim normalizes whitespace the same way the submit form does.
func (in *CreateInternshipInput) Trim() {
	in.Company = strings.TrimSpace(in.Company)
	in.Role = strings.TrimSpace(in.Role)
	in.Location = strings.TrimSpace(in.Location)
	in.Notes = strings.TrimSpace(in.Notes)
}

// Record builds the internship to store. Identity fields are left empty for
// the repository to assign.
func (in CreateInternshipInput) Record() model.Internship {
	return model.Internship{
		Company:  in.Company,
		Role:     in.Role,
		Platform: in.Platform,
		Location: in.Location,
		Status:   model.Status(in.Status),
		Deadline: in.Deadline,
		Notes:    in.Notes,
	}
}

// UpdateInternshipInput is a partial update. Nil fields are absent from the
// request body and must be preserved on the stored record.
type UpdateInternshipInput struct {
	Company  *string `json:"company"`
	Role     *string `json:"role"`
	Platform *string `json:"platform"`
	Location *string `json:"location"`
	Status   *string `json:"status"`
	Deadline *string `json:"deadline"`
	Notes    *string `json:"notes"`
}

// Apply merges the supplied fields over rec, shallow overwrite only.
func (in UpdateInternshipInput) Apply(rec *model.Internship) {
	if in.Company != nil {
		rec.Company = *in.Company
	}
	if in.Role != nil {
		rec.Role = *in.Role
	}
	if in.Platform != nil {
		rec.Platform = *in.Platform
	}
	if in.Location != nil {
		rec.Location = *in.Location
	}
	if in.Status != nil {
		rec.Status = model.Status(*in.Status)
	}
	if in.Deadline != nil {
		rec.Deadline = *in.Deadline
	}
	if in.Notes != nil {
		rec.Notes = *in.Notes
	}
}
