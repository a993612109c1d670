package dtos

import "github.com/campushire/campushire/internal/models"

type JobCreateRequest struct {
	Title       string `json:"job_title" binding:"required"`
	Description string `json:"description" binding:"required"`

	// Optional Fields
	Stipend  string   `json:"stipend"`
	Location string   `json:"location"`
	Skills   []string `json:"skills"`
}

// JobUpdateRequest is the allow-listed patch for a posting. Nil means
// "leave unchanged". Setting IsActive true on a closed job is a
// reactivation and can collide with a newer active posting of the same
// title, which fails the same way a duplicate create does.
type JobUpdateRequest struct {
	Title       *string   `json:"job_title"`
	Description *string   `json:"description"`
	Stipend     *string   `json:"stipend"`
	Location    *string   `json:"location"`
	IsActive    *bool     `json:"is_active"`
	Skills      *[]string `json:"skills"`
}

// CompanyJobSummary is a posting as the owning company sees it on the
// dashboard, with the number of applications it has collected.
type CompanyJobSummary struct {
	models.Job
	ApplicantCount int64 `json:"applicant_count"`
}

type SuggestSkillsRequest struct {
	Description string `json:"description" binding:"required"`
}
