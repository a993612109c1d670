package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/campushire/campushire/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a fresh in-memory database per test with the same schema
// (and therefore the same unique constraints) the real store migrates.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Company{},
		&models.Student{},
		&models.Skill{},
		&models.Job{},
		&models.Application{},
		&models.Session{},
	))
	return db
}

func seedCompany(t *testing.T, db *gorm.DB, name string) *models.Company {
	t.Helper()
	company := &models.Company{
		Name:         name,
		Email:        strings.ToLower(name) + "@example.com",
		PasswordHash: "not-a-real-hash",
	}
	require.NoError(t, db.Create(company).Error)
	return company
}

func seedStudent(t *testing.T, db *gorm.DB, name string) *models.Student {
	t.Helper()
	student := &models.Student{
		Name:         name,
		Email:        strings.ToLower(name) + "@college.edu",
		PasswordHash: "not-a-real-hash",
		Phone:        "555-0100",
		College:      "State College",
		GPA:          8.4,
		GradYear:     2027,
		ResumeLink:   "https://example.com/" + strings.ToLower(name) + ".pdf",
	}
	require.NoError(t, db.Create(student).Error)
	return student
}
