package models

import (
	"time"
)

type Company struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name         string `gorm:"uniqueIndex;not null" json:"company_name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`

	WebsiteURL  string `json:"website_url"`
	CompanyType string `json:"company_type"`
	Industry    string `json:"industry"`
	Location    string `json:"location"`

	// 'omitempty' prevents infinite loops when fetching a Job -> Company -> Jobs -> ...
	Jobs []Job `json:"jobs,omitempty"`
}

type Student struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`

	Phone      string  `json:"phone"`
	College    string  `json:"college"`
	GPA        float64 `json:"gpa"`
	GradYear   int     `json:"grad_year"`
	ResumeLink string  `json:"resume_link"`
}

type Job struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Foreign Key
	CompanyID uint    `gorm:"not null;uniqueIndex:idx_company_active_title" json:"company_id"`
	Company   Company `json:"company"`

	// The partial index enforces the dedup rule at the store: among one
	// company's jobs, at most one ACTIVE job per exact title. Inactive jobs
	// never collide, so closing a posting frees its title.
	Title       string `gorm:"not null;uniqueIndex:idx_company_active_title,where:is_active = true" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Stipend     string `json:"stipend"`
	Location    string `json:"location"`
	IsActive    bool   `json:"is_active"`

	// Skills are shared across jobs; join rows carry no ownership.
	Skills []Skill `gorm:"many2many:job_skills" json:"skills,omitempty"`
}

type Skill struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

// Application status values. Rejected is terminal.
const (
	StatusApplied     = "Applied"
	StatusShortlisted = "Shortlisted"
	StatusRejected    = "Rejected"
)

// CanTransition reports whether an application may move from status `from`
// to status `to`. Re-setting the current status is handled by the caller as
// a no-op and is not a transition.
func CanTransition(from, to string) bool {
	switch from {
	case StatusApplied:
		return to == StatusShortlisted || to == StatusRejected
	case StatusShortlisted:
		return to == StatusRejected
	default:
		return false
	}
}

type Application struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// One application per (student, job): the composite index makes the
	// second concurrent insert fail at the store instead of racing a check.
	StudentID uint    `gorm:"not null;uniqueIndex:idx_student_job" json:"student_id"`
	Student   Student `json:"student"`

	// No FK cascade from Job: applications outlive a closed or removed job
	// so the history a student sees never silently shrinks.
	JobID uint `gorm:"not null;uniqueIndex:idx_student_job" json:"job_id"`
	Job   Job  `json:"job"`

	Status string `gorm:"not null;default:'Applied'" json:"status"`
}

// Session is an issued opaque bearer token. Tokens are random UUIDs looked
// up on every request; expiry is checked at lookup, not reaped.
type Session struct {
	Token     string    `gorm:"primaryKey" json:"token"`
	ActorKind string    `gorm:"not null" json:"actor_kind"`
	ActorID   uint      `gorm:"not null" json:"actor_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `gorm:"index" json:"expires_at"`
}
