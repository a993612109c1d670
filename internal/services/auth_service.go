package services

import (
	"errors"
	"time"

	"github.com/campushire/campushire/internal/apperr"
	"github.com/campushire/campushire/internal/dtos"
	"github.com/campushire/campushire/internal/models"
	"github.com/campushire/campushire/internal/scope"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService is the identity directory: signup, login, and session tokens
// for both actor kinds. Tokens are opaque UUIDs; the rest of the system
// only ever sees the scope.Actor a token resolves to.
type AuthService struct {
	DB         *gorm.DB
	SessionTTL time.Duration
}

func NewAuthService(db *gorm.DB, sessionTTL time.Duration) *AuthService {
	return &AuthService{DB: db, SessionTTL: sessionTTL}
}

// RegisterCompany creates a company account. Email and company name are
// both unique; either clash reports as a duplicate company.
func (s *AuthService) RegisterCompany(req *dtos.CompanySignupRequest) (*models.Company, *models.Session, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	company := &models.Company{
		Name:         req.CompanyName,
		Email:        req.Email,
		PasswordHash: string(hash),
		WebsiteURL:   req.WebsiteURL,
		CompanyType:  req.CompanyType,
		Industry:     req.Industry,
		Location:     req.Location,
	}
	if err := s.DB.Create(company).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, nil, apperr.ErrDuplicateCompany
		}
		return nil, nil, apperr.Store(err)
	}

	session, err := s.issueSession(scope.KindCompany, company.ID)
	if err != nil {
		return nil, nil, err
	}
	return company, session, nil
}

func (s *AuthService) RegisterStudent(req *dtos.StudentSignupRequest) (*models.Student, *models.Session, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	student := &models.Student{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Phone:        req.Phone,
		College:      req.College,
		GPA:          req.GPA,
		GradYear:     req.GradYear,
		ResumeLink:   req.ResumeLink,
	}
	if err := s.DB.Create(student).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, nil, apperr.ErrDuplicateStudent
		}
		return nil, nil, apperr.Store(err)
	}

	session, err := s.issueSession(scope.KindStudent, student.ID)
	if err != nil {
		return nil, nil, err
	}
	return student, session, nil
}

// LoginCompany checks credentials and issues a session. A missing account
// and a wrong password read identically to the caller.
func (s *AuthService) LoginCompany(email, password string) (*models.Company, *models.Session, error) {
	var company models.Company
	err := s.DB.Where("email = ?", email).First(&company).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, apperr.ErrInvalidCredentials
	}
	if err != nil {
		return nil, nil, apperr.Store(err)
	}
	if bcrypt.CompareHashAndPassword([]byte(company.PasswordHash), []byte(password)) != nil {
		return nil, nil, apperr.ErrInvalidCredentials
	}

	session, err := s.issueSession(scope.KindCompany, company.ID)
	if err != nil {
		return nil, nil, err
	}
	return &company, session, nil
}

func (s *AuthService) LoginStudent(email, password string) (*models.Student, *models.Session, error) {
	var student models.Student
	err := s.DB.Where("email = ?", email).First(&student).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, apperr.ErrInvalidCredentials
	}
	if err != nil {
		return nil, nil, apperr.Store(err)
	}
	if bcrypt.CompareHashAndPassword([]byte(student.PasswordHash), []byte(password)) != nil {
		return nil, nil, apperr.ErrInvalidCredentials
	}

	session, err := s.issueSession(scope.KindStudent, student.ID)
	if err != nil {
		return nil, nil, err
	}
	return &student, session, nil
}

func (s *AuthService) issueSession(kind scope.Kind, actorID uint) (*models.Session, error) {
	session := &models.Session{
		Token:     uuid.NewString(),
		ActorKind: string(kind),
		ActorID:   actorID,
		ExpiresAt: time.Now().Add(s.SessionTTL),
	}
	if err := s.DB.Create(session).Error; err != nil {
		return nil, apperr.Store(err)
	}
	return session, nil
}

// ResolveToken maps a bearer token back to its actor. Unknown and expired
// tokens both fail as invalid credentials.
func (s *AuthService) ResolveToken(token string) (scope.Actor, error) {
	var session models.Session
	err := s.DB.Where("token = ?", token).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return scope.Actor{}, apperr.ErrInvalidCredentials
	}
	if err != nil {
		return scope.Actor{}, apperr.Store(err)
	}
	if time.Now().After(session.ExpiresAt) {
		return scope.Actor{}, apperr.ErrInvalidCredentials
	}
	return scope.Actor{Kind: scope.Kind(session.ActorKind), ID: session.ActorID}, nil
}

func (s *AuthService) GetCompany(companyID uint) (*models.Company, error) {
	var company models.Company
	err := s.DB.First(&company, companyID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, apperr.Store(err)
	}
	return &company, nil
}

func (s *AuthService) GetStudent(studentID uint) (*models.Student, error) {
	var student models.Student
	err := s.DB.First(&student, studentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, apperr.Store(err)
	}
	return &student, nil
}

// UpdateCompanyProfile applies the allow-listed profile patch.
func (s *AuthService) UpdateCompanyProfile(companyID uint, patch *dtos.CompanyProfilePatch) (*models.Company, error) {
	company, err := s.GetCompany(companyID)
	if err != nil {
		return nil, err
	}

	if patch.WebsiteURL != nil {
		company.WebsiteURL = *patch.WebsiteURL
	}
	if patch.CompanyType != nil {
		company.CompanyType = *patch.CompanyType
	}
	if patch.Industry != nil {
		company.Industry = *patch.Industry
	}
	if patch.Location != nil {
		company.Location = *patch.Location
	}

	if err := s.DB.Save(company).Error; err != nil {
		return nil, apperr.Store(err)
	}
	return company, nil
}

// ListCompanies returns the public company directory with per-company job
// counts.
func (s *AuthService) ListCompanies() ([]dtos.CompanyDirectoryEntry, error) {
	var entries []dtos.CompanyDirectoryEntry
	err := s.DB.Model(&models.Company{}).
		Select("companies.id, companies.name as company_name, companies.website_url, companies.company_type, companies.industry, companies.location, count(jobs.id) as job_count").
		Joins("LEFT JOIN jobs ON jobs.company_id = companies.id").
		Group("companies.id").
		Order("companies.name ASC").
		Scan(&entries).Error
	if err != nil {
		return nil, apperr.Store(err)
	}
	return entries, nil
}
