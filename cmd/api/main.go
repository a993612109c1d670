package main

import (
	"context"
	"log"

	"github.com/campushire/campushire/internal/config"
	"github.com/campushire/campushire/internal/database"
	"github.com/campushire/campushire/internal/handlers"
	"github.com/campushire/campushire/internal/scope"
	"github.com/campushire/campushire/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}
	cfg := config.Load()

	// 2. Database Connection
	db := database.Connect(cfg.DBDSN)

	// 3. Initialize Core Services
	authService := services.NewAuthService(db, cfg.SessionTTL)
	skillService := services.NewSkillService(db)
	jobService := services.NewJobService(db, skillService)
	applicationService := services.NewApplicationService(db)

	// 4. Optional skill suggestion via Gemini
	var suggestService *services.SuggestService
	if cfg.GeminiAPIKey != "" {
		var err error
		suggestService, err = services.NewSuggestService(context.Background(), cfg.GeminiAPIKey)
		if err != nil {
			log.Printf("Skill suggestion disabled: %v", err)
			suggestService = nil
		} else {
			log.Println("Skill suggestion enabled")
		}
	}

	// 5. Initialize Handlers
	companyHandler := handlers.NewCompanyHandler(authService, jobService, applicationService, suggestService)
	studentHandler := handlers.NewStudentHandler(authService, jobService, applicationService)

	// 6. Setup Router & CORS
	gin.EnableJsonDecoderDisallowUnknownFields()
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true // For development only
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 7. Define Routes
	r.GET("/api/v1/health", handlers.HealthCheck)
	r.GET("/companies", companyHandler.ListCompanies)

	company := r.Group("/company")
	{
		company.POST("/signup", companyHandler.Signup)
		company.POST("/login", companyHandler.Login)

		dashboard := company.Group("/dashboard", handlers.AuthRequired(authService, scope.KindCompany))
		{
			dashboard.GET("", companyHandler.Dashboard)
			dashboard.PATCH("/profile", companyHandler.UpdateProfile)
			dashboard.POST("/job", companyHandler.CreateJob)
			dashboard.GET("/job/:id", companyHandler.GetJob)
			dashboard.PATCH("/job/:id", companyHandler.UpdateJob)
			dashboard.DELETE("/job/:id", companyHandler.DeleteJob)
			dashboard.GET("/job/:id/applicants", companyHandler.ListApplicants)
			dashboard.PATCH("/application/:id/status", companyHandler.SetApplicationStatus)
			if suggestService != nil {
				dashboard.POST("/job-skill-suggestions", companyHandler.SuggestSkills)
			}
		}
	}

	student := r.Group("/student")
	{
		student.POST("/signup", studentHandler.Signup)
		student.POST("/login", studentHandler.Login)

		auth := student.Group("", handlers.AuthRequired(authService, scope.KindStudent))
		{
			auth.GET("/dashboard", studentHandler.Dashboard)
			auth.GET("/dashboard/jobs", studentHandler.ListJobs)
			auth.POST("/apply", studentHandler.Apply)
			auth.GET("/jobsApplied", studentHandler.ListApplied)
		}
	}

	log.Printf("Server starting on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
