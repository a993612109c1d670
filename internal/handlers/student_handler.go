package handlers

import (
	"net/http"

	"github.com/campushire/campushire/internal/dtos"
	"github.com/campushire/campushire/internal/services"
	"github.com/gin-gonic/gin"
)

type StudentHandler struct {
	Auth         *services.AuthService
	Jobs         *services.JobService
	Applications *services.ApplicationService
}

func NewStudentHandler(auth *services.AuthService, jobs *services.JobService, apps *services.ApplicationService) *StudentHandler {
	return &StudentHandler{
		Auth:         auth,
		Jobs:         jobs,
		Applications: apps,
	}
}

func (h *StudentHandler) Signup(c *gin.Context) {
	var req dtos.StudentSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	student, session, err := h.Auth.RegisterStudent(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"token": session.Token, "student": student})
}

func (h *StudentHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	student, session, err := h.Auth.LoginStudent(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": session.Token, "student": student})
}

func (h *StudentHandler) Dashboard(c *gin.Context) {
	student, err := h.Auth.GetStudent(currentActor(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, student)
}

// ListJobs shows every active posting, newest first.
func (h *StudentHandler) ListJobs(c *gin.Context) {
	jobs, err := h.Jobs.ListActiveForStudents()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

// Apply files an application under the authenticated student's identity.
// The student id comes from the session, never from the body.
func (h *StudentHandler) Apply(c *gin.Context) {
	var req dtos.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	app, err := h.Applications.Apply(currentActor(c).ID, req.JobID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

func (h *StudentHandler) ListApplied(c *gin.Context) {
	apps, err := h.Applications.ListForStudent(currentActor(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}
