package services

import (
	"errors"

	"github.com/campushire/campushire/internal/apperr"
	"github.com/campushire/campushire/internal/dtos"
	"github.com/campushire/campushire/internal/models"
	"gorm.io/gorm"
)

// JobService owns the posting lifecycle. Every operation that touches an
// existing job filters by the owning company's id in the query itself, so a
// foreign jobId behaves exactly like a missing one.
type JobService struct {
	DB     *gorm.DB
	Skills *SkillService
}

func NewJobService(db *gorm.DB, skills *SkillService) *JobService {
	return &JobService{DB: db, Skills: skills}
}

// CreateJob posts a new active job for the company. The partial unique
// index on (company_id, title) rejects a second active posting with the
// same title; two concurrent creates cannot both win.
func (s *JobService) CreateJob(companyID uint, req *dtos.JobCreateRequest) (*models.Job, error) {
	skills, err := s.Skills.Resolve(req.Skills)
	if err != nil {
		return nil, err
	}

	job := &models.Job{
		CompanyID:   companyID,
		Title:       req.Title,
		Description: req.Description,
		Stipend:     req.Stipend,
		Location:    req.Location,
		IsActive:    true,
		Skills:      skills,
	}
	if err := s.DB.Create(job).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.ErrDuplicateActiveJob
		}
		return nil, apperr.Store(err)
	}
	return job, nil
}

// UpdateJob applies an allow-listed patch to a job the company owns. The
// patch is all-or-nothing: skills are resolved before anything is written,
// and the field save plus the skill replacement commit in one transaction,
// so a rejected patch leaves the job exactly as it was. Replacing the skill
// list detaches join rows only; the skill entities themselves stay in the
// catalog.
func (s *JobService) UpdateJob(companyID, jobID uint, patch *dtos.JobUpdateRequest) (*models.Job, error) {
	var job models.Job
	err := s.DB.Where("id = ? AND company_id = ?", jobID, companyID).First(&job).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, apperr.Store(err)
	}

	// Resolving may create catalog rows; that is fine even if the patch
	// fails later, since skills are global and never removed.
	var skills []models.Skill
	if patch.Skills != nil {
		skills, err = s.Skills.Resolve(*patch.Skills)
		if err != nil {
			return nil, err
		}
	}

	if patch.Title != nil {
		job.Title = *patch.Title
	}
	if patch.Description != nil {
		job.Description = *patch.Description
	}
	if patch.Stipend != nil {
		job.Stipend = *patch.Stipend
	}
	if patch.Location != nil {
		job.Location = *patch.Location
	}
	if patch.IsActive != nil {
		job.IsActive = *patch.IsActive
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&job).Error; err != nil {
			return err
		}
		if patch.Skills != nil {
			return tx.Model(&job).Association("Skills").Replace(skills)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Renaming or reactivating collided with another active posting.
			return nil, apperr.ErrDuplicateActiveJob
		}
		return nil, apperr.Store(err)
	}

	if patch.Skills != nil {
		job.Skills = skills
	}
	return &job, nil
}

// DeactivateJob closes a posting. Closing an already-closed job succeeds
// quietly. Existing applications are untouched: applicants keep their
// history after a job closes.
func (s *JobService) DeactivateJob(companyID, jobID uint) error {
	res := s.DB.Model(&models.Job{}).
		Where("id = ? AND company_id = ?", jobID, companyID).
		Update("is_active", false)
	if res.Error != nil {
		return apperr.Store(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// GetJobForCompany loads one job, with skills, for its owner.
func (s *JobService) GetJobForCompany(companyID, jobID uint) (*models.Job, error) {
	var job models.Job
	err := s.DB.Preload("Skills").
		Where("id = ? AND company_id = ?", jobID, companyID).
		First(&job).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, apperr.Store(err)
	}
	return &job, nil
}

// ListActiveForStudents returns every active posting, newest first, with
// the company summary and skill list students browse by.
func (s *JobService) ListActiveForStudents() ([]models.Job, error) {
	var jobs []models.Job
	err := s.DB.Preload("Skills").Preload("Company").
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, apperr.Store(err)
	}
	return jobs, nil
}

// ListForCompany returns all of the company's jobs, active and closed, each
// with its applicant count for the dashboard.
func (s *JobService) ListForCompany(companyID uint) ([]dtos.CompanyJobSummary, error) {
	var jobs []models.Job
	err := s.DB.Preload("Skills").
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, apperr.Store(err)
	}

	counts := make(map[uint]int64, len(jobs))
	if len(jobs) > 0 {
		ids := make([]uint, len(jobs))
		for i, job := range jobs {
			ids[i] = job.ID
		}
		var rows []struct {
			JobID uint
			Total int64
		}
		err = s.DB.Model(&models.Application{}).
			Select("job_id, count(*) as total").
			Where("job_id IN ?", ids).
			Group("job_id").
			Scan(&rows).Error
		if err != nil {
			return nil, apperr.Store(err)
		}
		for _, row := range rows {
			counts[row.JobID] = row.Total
		}
	}

	summaries := make([]dtos.CompanyJobSummary, len(jobs))
	for i, job := range jobs {
		summaries[i] = dtos.CompanyJobSummary{Job: job, ApplicantCount: counts[job.ID]}
	}
	return summaries, nil
}
