package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/mithildabhi/Smart-Job-Portal/internal/database"
	"github.com/mithildabhi/Smart-Job-Portal/internal/handlers"
	"github.com/mithildabhi/Smart-Job-Portal/internal/services"
	"github.com/mithildabhi/Smart-Job-Portal/internal/storage"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	// 2. Database Connection
	db := database.Connect()

	// 3. Media storage for resumes and profile pictures
	mediaRoot := os.Getenv("MEDIA_ROOT")
	if mediaRoot == "" {
		mediaRoot = "./media"
	}
	media := storage.NewLocalStore(mediaRoot, "/media")

	// 4. Core Services
	profileService := services.NewProfileService(db)
	jobService := services.NewJobService(db)

	// 5. Handlers
	profileHandler := handlers.NewProfileHandler(profileService, media)
	jobHandler := handlers.NewJobHandler(jobService, media)

	// 6. Router, CORS and CSRF
	r := gin.Default()
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true // For development only
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", handlers.CSRFHeader, "X-Requested-With"}
	r.Use(cors.New(config))
	r.Use(handlers.CSRF())

	r.Static("/media", mediaRoot)
	r.GET("/health", handlers.HealthCheck)

	// 7. Routes, same paths the server-rendered pages call
	students := r.Group("/students", handlers.RequireStudent())
	{
		students.GET("/profile/", profileHandler.GetProfile)
		students.POST("/profile/update-skills/", profileHandler.UpdateSkills)
		students.POST("/profile/update-education/", profileHandler.UpdateEducation)
		students.POST("/profile/update-experience/", profileHandler.UpdateExperience)
		students.POST("/profile/update-projects/", profileHandler.UpdateProjects)
		students.POST("/profile/upload-picture/", profileHandler.UploadPicture)
		students.POST("/profile/delete-picture/", profileHandler.DeletePicture)
	}

	jobs := r.Group("/jobs")
	{
		jobs.GET("/", jobHandler.ListJobs)
		jobs.POST("/", jobHandler.CreateJob)
		jobs.POST("/apply/", handlers.RequireStudent(), jobHandler.Apply)
		jobs.POST("/bookmark/", handlers.RequireStudent(), jobHandler.Bookmark)
		jobs.POST("/applications/:id/status", jobHandler.UpdateApplicationStatus)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Server starting on port " + port + "...")
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
