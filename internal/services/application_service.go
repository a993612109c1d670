package services

import (
	"errors"

	"github.com/campushire/campushire/internal/apperr"
	"github.com/campushire/campushire/internal/dtos"
	"github.com/campushire/campushire/internal/models"
	"gorm.io/gorm"
)

// ApplicationService records applications and moves them through the
// Applied -> Shortlisted -> Rejected pipeline.
type ApplicationService struct {
	DB *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{DB: db}
}

// Apply files the student's application to an active job. A closed or
// missing job answers ErrJobNotFound. The (student_id, job_id) unique index
// settles concurrent duplicate applies: exactly one insert lands, the other
// caller gets ErrDuplicateApplication.
func (s *ApplicationService) Apply(studentID, jobID uint) (*models.Application, error) {
	var job models.Job
	err := s.DB.Where("id = ? AND is_active = ?", jobID, true).First(&job).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrJobNotFound
	}
	if err != nil {
		return nil, apperr.Store(err)
	}

	app := &models.Application{
		StudentID: studentID,
		JobID:     jobID,
		Status:    models.StatusApplied,
	}
	if err := s.DB.Create(app).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.ErrDuplicateApplication
		}
		return nil, apperr.Store(err)
	}
	return app, nil
}

// SetStatus moves an application to newStatus on behalf of the company that
// owns its job. Ownership is resolved through the job row, never from the
// request. Re-setting the current status is a no-op success; a disallowed
// transition is ErrInvalidTransition and leaves the record unchanged.
func (s *ApplicationService) SetStatus(companyID, applicationID uint, newStatus string) (*models.Application, error) {
	var app models.Application
	err := s.DB.
		Joins("JOIN jobs ON jobs.id = applications.job_id AND jobs.company_id = ?", companyID).
		Where("applications.id = ?", applicationID).
		First(&app).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, apperr.Store(err)
	}

	if app.Status == newStatus {
		return &app, nil
	}
	if !models.CanTransition(app.Status, newStatus) {
		return nil, apperr.ErrInvalidTransition
	}

	// Guard on the status we read so a concurrent transition cannot be
	// overwritten blindly; losing the race reads as an invalid transition.
	res := s.DB.Model(&models.Application{}).
		Where("id = ? AND status = ?", app.ID, app.Status).
		Update("status", newStatus)
	if res.Error != nil {
		return nil, apperr.Store(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.ErrInvalidTransition
	}
	app.Status = newStatus
	return &app, nil
}

// ListForStudent returns the student's applications, newest first, with the
// job and company attached so closed jobs still render in their history.
func (s *ApplicationService) ListForStudent(studentID uint) ([]models.Application, error) {
	var apps []models.Application
	err := s.DB.Preload("Job").Preload("Job.Company").
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, apperr.Store(err)
	}
	return apps, nil
}

// ListForJob returns the applicants for one of the company's jobs. Each
// entry carries the shared applicant projection only; a job owned by
// another company reads as missing.
func (s *ApplicationService) ListForJob(companyID, jobID uint) ([]dtos.ApplicantView, error) {
	var job models.Job
	err := s.DB.Where("id = ? AND company_id = ?", jobID, companyID).First(&job).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, apperr.Store(err)
	}

	var apps []models.Application
	err = s.DB.Preload("Student").
		Where("job_id = ?", jobID).
		Order("created_at ASC").
		Find(&apps).Error
	if err != nil {
		return nil, apperr.Store(err)
	}

	views := make([]dtos.ApplicantView, len(apps))
	for i, app := range apps {
		views[i] = dtos.ApplicantView{
			ApplicationID: app.ID,
			Status:        app.Status,
			AppliedAt:     app.CreatedAt,
			Student: dtos.StudentSummary{
				ID:         app.Student.ID,
				Name:       app.Student.Name,
				Email:      app.Student.Email,
				Phone:      app.Student.Phone,
				College:    app.Student.College,
				ResumeLink: app.Student.ResumeLink,
			},
		}
	}
	return views, nil
}
