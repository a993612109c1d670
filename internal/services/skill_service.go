package services

import (
	"errors"
	"strings"

	"github.com/campushire/campushire/internal/apperr"
	"github.com/campushire/campushire/internal/models"
	"gorm.io/gorm"
)

// SkillService keeps the shared skill catalog. Skills are global: the first
// posting to mention a name creates it, every later posting reuses the same
// row, and nothing ever deletes one.
type SkillService struct {
	DB *gorm.DB
}

func NewSkillService(db *gorm.DB) *SkillService {
	return &SkillService{DB: db}
}

// Resolve maps raw skill names to persisted Skill rows, creating the ones
// that do not exist yet. Names are trimmed; an empty name is an error.
// Matching is exact (case-sensitive), so "Go" and "go" are two skills.
func (s *SkillService) Resolve(names []string) ([]models.Skill, error) {
	seen := make(map[string]bool, len(names))
	skills := make([]models.Skill, 0, len(names))

	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			return nil, apperr.ErrEmptySkill
		}
		if seen[name] {
			continue
		}
		seen[name] = true

		var skill models.Skill
		err := s.DB.Where("name = ?", name).First(&skill).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			skill = models.Skill{Name: name}
			err = s.DB.Create(&skill).Error
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// A concurrent request created this name first. The unique
				// index guarantees one row exists, so re-read and use it.
				err = s.DB.Where("name = ?", name).First(&skill).Error
			}
		}
		if err != nil {
			return nil, apperr.Store(err)
		}
		skills = append(skills, skill)
	}
	return skills, nil
}
