package dtos

import "time"

type ApplyRequest struct {
	JobID uint `json:"job_id" binding:"required"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required,oneof=Applied Shortlisted Rejected"`
}

// StudentSummary is the applicant projection shown to a company. Only the
// fields a student shares with employers appear here; GPA and graduation
// year stay private.
type StudentSummary struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	College    string `json:"college"`
	ResumeLink string `json:"resume_link"`
}

type ApplicantView struct {
	ApplicationID uint           `json:"application_id"`
	Status        string         `json:"status"`
	AppliedAt     time.Time      `json:"applied_at"`
	Student       StudentSummary `json:"student"`
}
