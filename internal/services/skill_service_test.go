package services

import (
	"testing"

	"github.com/campushire/campushire/internal/apperr"
	"github.com/campushire/campushire/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTrimsAndDedupes(t *testing.T) {
	db := newTestDB(t)
	skills := NewSkillService(db)

	first, err := skills.Resolve([]string{"React", " React "})
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, "React", first[0].Name)

	// Resolving again must reuse the same row, not create a second one.
	second, err := skills.Resolve([]string{"React"})
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].ID, second[0].ID)

	var count int64
	require.NoError(t, db.Model(&models.Skill{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestResolveRejectsEmptyNames(t *testing.T) {
	db := newTestDB(t)
	skills := NewSkillService(db)

	_, err := skills.Resolve([]string{"Go", "   "})
	assert.ErrorIs(t, err, apperr.ErrEmptySkill)
}

func TestResolveIsCaseSensitive(t *testing.T) {
	db := newTestDB(t)
	skills := NewSkillService(db)

	resolved, err := skills.Resolve([]string{"Go", "go"})
	require.NoError(t, err)
	require.Len(t, resolved, 2)
	assert.NotEqual(t, resolved[0].ID, resolved[1].ID)
}

func TestResolveMixesExistingAndNew(t *testing.T) {
	db := newTestDB(t)
	skills := NewSkillService(db)

	existing, err := skills.Resolve([]string{"SQL"})
	require.NoError(t, err)

	resolved, err := skills.Resolve([]string{"SQL", "Docker"})
	require.NoError(t, err)
	require.Len(t, resolved, 2)
	assert.Equal(t, existing[0].ID, resolved[0].ID)

	var count int64
	require.NoError(t, db.Model(&models.Skill{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}
