package handlers

import (
	"net/http"
	"strconv"

	"github.com/campushire/campushire/internal/dtos"
	"github.com/campushire/campushire/internal/services"
	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	Auth         *services.AuthService
	Jobs         *services.JobService
	Applications *services.ApplicationService
	Suggest      *services.SuggestService
}

func NewCompanyHandler(auth *services.AuthService, jobs *services.JobService, apps *services.ApplicationService, suggest *services.SuggestService) *CompanyHandler {
	return &CompanyHandler{
		Auth:         auth,
		Jobs:         jobs,
		Applications: apps,
		Suggest:      suggest,
	}
}

func (h *CompanyHandler) Signup(c *gin.Context) {
	var req dtos.CompanySignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	company, session, err := h.Auth.RegisterCompany(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"token": session.Token, "company": company})
}

func (h *CompanyHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	company, session, err := h.Auth.LoginCompany(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": session.Token, "company": company})
}

// Dashboard returns the company profile with every posting and its
// applicant count.
func (h *CompanyHandler) Dashboard(c *gin.Context) {
	companyID := currentActor(c).ID

	company, err := h.Auth.GetCompany(companyID)
	if err != nil {
		respondError(c, err)
		return
	}
	jobs, err := h.Jobs.ListForCompany(companyID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"company": company, "jobs": jobs})
}

func (h *CompanyHandler) UpdateProfile(c *gin.Context) {
	var patch dtos.CompanyProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	company, err := h.Auth.UpdateCompanyProfile(currentActor(c).ID, &patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

func (h *CompanyHandler) CreateJob(c *gin.Context) {
	var req dtos.JobCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	job, err := h.Jobs.CreateJob(currentActor(c).ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

func (h *CompanyHandler) GetJob(c *gin.Context) {
	jobID, ok := pathID(c)
	if !ok {
		return
	}

	job, err := h.Jobs.GetJobForCompany(currentActor(c).ID, jobID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *CompanyHandler) UpdateJob(c *gin.Context) {
	jobID, ok := pathID(c)
	if !ok {
		return
	}

	var patch dtos.JobUpdateRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	job, err := h.Jobs.UpdateJob(currentActor(c).ID, jobID, &patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// DeleteJob closes the posting. The job row and its applications stay.
func (h *CompanyHandler) DeleteJob(c *gin.Context) {
	jobID, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.Jobs.DeactivateJob(currentActor(c).ID, jobID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "job deactivated"})
}

func (h *CompanyHandler) ListApplicants(c *gin.Context) {
	jobID, ok := pathID(c)
	if !ok {
		return
	}

	applicants, err := h.Applications.ListForJob(currentActor(c).ID, jobID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applicants": applicants})
}

func (h *CompanyHandler) SetApplicationStatus(c *gin.Context) {
	applicationID, ok := pathID(c)
	if !ok {
		return
	}

	var req dtos.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	app, err := h.Applications.SetStatus(currentActor(c).ID, applicationID, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

func (h *CompanyHandler) SuggestSkills(c *gin.Context) {
	var req dtos.SuggestSkillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	skills, err := h.Suggest.SuggestSkills(c.Request.Context(), req.Description)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "skill suggestion failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"skills": skills})
}

// ListCompanies is the public directory, no auth.
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	companies, err := h.Auth.ListCompanies()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, companies)
}

// pathID parses the :id path segment; answers 400 itself on garbage.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
