package services

import (
	"sync"
	"testing"

	"github.com/campushire/campushire/internal/apperr"
	"github.com/campushire/campushire/internal/dtos"
	"github.com/campushire/campushire/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyToInactiveOrMissingJob(t *testing.T) {
	db := newTestDB(t)
	jobs := NewJobService(db, NewSkillService(db))
	apps := NewApplicationService(db)
	acme := seedCompany(t, db, "Acme")
	asha := seedStudent(t, db, "Asha")

	job, err := jobs.CreateJob(acme.ID, &dtos.JobCreateRequest{Title: "Backend Intern", Description: "d"})
	require.NoError(t, err)
	require.NoError(t, jobs.DeactivateJob(acme.ID, job.ID))

	_, err = apps.Apply(asha.ID, job.ID)
	assert.ErrorIs(t, err, apperr.ErrJobNotFound)

	_, err = apps.Apply(asha.ID, job.ID+100)
	assert.ErrorIs(t, err, apperr.ErrJobNotFound)
}

func TestApplyDuplicate(t *testing.T) {
	db := newTestDB(t)
	jobs := NewJobService(db, NewSkillService(db))
	apps := NewApplicationService(db)
	acme := seedCompany(t, db, "Acme")
	asha := seedStudent(t, db, "Asha")

	job, err := jobs.CreateJob(acme.ID, &dtos.JobCreateRequest{Title: "Backend Intern", Description: "d"})
	require.NoError(t, err)

	app, err := apps.Apply(asha.ID, job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApplied, app.Status)

	_, err = apps.Apply(asha.ID, job.ID)
	assert.ErrorIs(t, err, apperr.ErrDuplicateApplication)

	var count int64
	require.NoError(t, db.Model(&models.Application{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestApplyConcurrentDuplicates(t *testing.T) {
	db := newTestDB(t)
	// One pooled connection so sqlite serializes the two callers the way
	// the production store's transactions would; the unique index, not
	// call ordering, decides the winner.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	jobs := NewJobService(db, NewSkillService(db))
	apps := NewApplicationService(db)
	acme := seedCompany(t, db, "Acme")
	asha := seedStudent(t, db, "Asha")

	job, err := jobs.CreateJob(acme.ID, &dtos.JobCreateRequest{Title: "Backend Intern", Description: "d"})
	require.NoError(t, err)

	start := make(chan struct{})
	results := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := apps.Apply(asha.ID, job.ID)
			results <- err
		}()
	}
	close(start)
	wg.Wait()
	close(results)

	var successes, duplicates int
	for err := range results {
		if err == nil {
			successes++
			continue
		}
		require.ErrorIs(t, err, apperr.ErrDuplicateApplication)
		duplicates++
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, duplicates)

	var count int64
	require.NoError(t, db.Model(&models.Application{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSetStatusTransitions(t *testing.T) {
	cases := []struct {
		name    string
		from    string
		to      string
		wantErr error
	}{
		{"applied to shortlisted", models.StatusApplied, models.StatusShortlisted, nil},
		{"applied to rejected", models.StatusApplied, models.StatusRejected, nil},
		{"shortlisted to rejected", models.StatusShortlisted, models.StatusRejected, nil},
		{"rejected to shortlisted", models.StatusRejected, models.StatusShortlisted, apperr.ErrInvalidTransition},
		{"rejected to applied", models.StatusRejected, models.StatusApplied, apperr.ErrInvalidTransition},
		{"shortlisted to applied", models.StatusShortlisted, models.StatusApplied, apperr.ErrInvalidTransition},
		{"same status is a no-op", models.StatusShortlisted, models.StatusShortlisted, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db := newTestDB(t)
			jobs := NewJobService(db, NewSkillService(db))
			apps := NewApplicationService(db)
			acme := seedCompany(t, db, "Acme")
			asha := seedStudent(t, db, "Asha")

			job, err := jobs.CreateJob(acme.ID, &dtos.JobCreateRequest{Title: "Backend Intern", Description: "d"})
			require.NoError(t, err)

			seeded := &models.Application{StudentID: asha.ID, JobID: job.ID, Status: tc.from}
			require.NoError(t, db.Create(seeded).Error)

			got, err := apps.SetStatus(acme.ID, seeded.ID, tc.to)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				// The stored status must be untouched after a refusal.
				var stored models.Application
				require.NoError(t, db.First(&stored, seeded.ID).Error)
				assert.Equal(t, tc.from, stored.Status)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.to, got.Status)
		})
	}
}

func TestSetStatusCrossTenantReadsAsMissing(t *testing.T) {
	db := newTestDB(t)
	jobs := NewJobService(db, NewSkillService(db))
	apps := NewApplicationService(db)
	acme := seedCompany(t, db, "Acme")
	globex := seedCompany(t, db, "Globex")
	asha := seedStudent(t, db, "Asha")

	job, err := jobs.CreateJob(acme.ID, &dtos.JobCreateRequest{Title: "Backend Intern", Description: "d"})
	require.NoError(t, err)
	app, err := apps.Apply(asha.ID, job.ID)
	require.NoError(t, err)

	_, err = apps.SetStatus(globex.ID, app.ID, models.StatusShortlisted)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = apps.ListForJob(globex.ID, job.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestListForJobProjectsSharedFieldsOnly(t *testing.T) {
	db := newTestDB(t)
	jobs := NewJobService(db, NewSkillService(db))
	apps := NewApplicationService(db)
	acme := seedCompany(t, db, "Acme")
	asha := seedStudent(t, db, "Asha")

	job, err := jobs.CreateJob(acme.ID, &dtos.JobCreateRequest{Title: "Backend Intern", Description: "d"})
	require.NoError(t, err)
	_, err = apps.Apply(asha.ID, job.ID)
	require.NoError(t, err)

	applicants, err := apps.ListForJob(acme.ID, job.ID)
	require.NoError(t, err)
	require.Len(t, applicants, 1)

	got := applicants[0].Student
	assert.Equal(t, asha.ID, got.ID)
	assert.Equal(t, asha.Name, got.Name)
	assert.Equal(t, asha.Email, got.Email)
	assert.Equal(t, asha.Phone, got.Phone)
	assert.Equal(t, asha.College, got.College)
	assert.Equal(t, asha.ResumeLink, got.ResumeLink)
}

func TestDeactivationPreservesApplications(t *testing.T) {
	db := newTestDB(t)
	jobs := NewJobService(db, NewSkillService(db))
	apps := NewApplicationService(db)
	acme := seedCompany(t, db, "Acme")
	asha := seedStudent(t, db, "Asha")

	job, err := jobs.CreateJob(acme.ID, &dtos.JobCreateRequest{Title: "Backend Intern", Description: "d"})
	require.NoError(t, err)
	app, err := apps.Apply(asha.ID, job.ID)
	require.NoError(t, err)
	_, err = apps.SetStatus(acme.ID, app.ID, models.StatusShortlisted)
	require.NoError(t, err)

	require.NoError(t, jobs.DeactivateJob(acme.ID, job.ID))

	history, err := apps.ListForStudent(asha.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, models.StatusShortlisted, history[0].Status)
	assert.Equal(t, "Backend Intern", history[0].Job.Title)
	assert.False(t, history[0].Job.IsActive)
	assert.Equal(t, "Acme", history[0].Job.Company.Name)
}

// The end-to-end posting scenario: duplicate posting rejected, first
// application lands, shortlisting works, second application rejected.
func TestPostingAndApplicationScenario(t *testing.T) {
	db := newTestDB(t)
	jobs := NewJobService(db, NewSkillService(db))
	apps := NewApplicationService(db)
	acme := seedCompany(t, db, "Acme")
	asha := seedStudent(t, db, "Asha")

	req := &dtos.JobCreateRequest{
		Title:       "Backend Intern",
		Description: "Build Go services",
		Skills:      []string{"Go", "SQL"},
	}
	job, err := jobs.CreateJob(acme.ID, req)
	require.NoError(t, err)
	assert.True(t, job.IsActive)
	require.Len(t, job.Skills, 2)

	_, err = jobs.CreateJob(acme.ID, req)
	require.ErrorIs(t, err, apperr.ErrDuplicateActiveJob)

	app, err := apps.Apply(asha.ID, job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApplied, app.Status)

	updated, err := apps.SetStatus(acme.ID, app.ID, models.StatusShortlisted)
	require.NoError(t, err)
	assert.Equal(t, models.StatusShortlisted, updated.Status)

	_, err = apps.Apply(asha.ID, job.ID)
	require.ErrorIs(t, err, apperr.ErrDuplicateApplication)
}
