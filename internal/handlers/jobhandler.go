package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mithildabhi/Smart-Job-Portal/internal/dtos"
	"github.com/mithildabhi/Smart-Job-Portal/internal/models"
	"github.com/mithildabhi/Smart-Job-Portal/internal/services"
	"github.com/mithildabhi/Smart-Job-Portal/internal/storage"
	"gorm.io/gorm"
)

// JobStore is what the handler needs from the job service.
type JobStore interface {
	CreateJob(req *dtos.JobCreationRequest) (*models.Job, error)
	ListActive() ([]models.Job, error)
	Apply(studentID, jobID uint, resumePath, coverLetter, portfolioURL string) (*models.Application, error)
	ToggleBookmark(studentID, jobID uint) (bool, error)
	UpdateApplicationStatus(applicationID uint, status string) error
}

type JobHandler struct {
	Jobs  JobStore
	Media storage.MediaStore
}

// NewJobHandler creates the handler with dependencies
func NewJobHandler(jobs JobStore, media storage.MediaStore) *JobHandler {
	return &JobHandler{Jobs: jobs, Media: media}
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListJobs is the GET /jobs/ endpoint backing the job board.
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.Jobs.ListActive()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load jobs: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "jobs": jobs})
}

// CreateJob is the recruiter-side posting endpoint.
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dtos.JobCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid JSON format: " + err.Error()})
		return
	}
	job, err := h.Jobs.CreateJob(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create job: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "job": job})
}

// Apply is the POST /jobs/apply/ endpoint behind the application modal.
// Multipart: job_id, cover_letter, resume file, optional portfolio_url.
func (h *JobHandler) Apply(c *gin.Context) {
	jobID, err := strconv.ParseUint(c.PostForm("job_id"), 10, 64)
	if err != nil || jobID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid job",
			"errors":  gin.H{"job_id": []string{"This field is required."}},
		})
		return
	}
	resume, err := c.FormFile("resume")
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"message": "Please attach your resume",
			"errors":  gin.H{"resume": []string{"This field is required."}},
		})
		return
	}
	src, err := resume.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to read resume: " + err.Error()})
		return
	}
	defer src.Close()

	resumePath, err := h.Media.Save("resumes", resume.Filename, src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to store resume: " + err.Error()})
		return
	}

	_, err = h.Jobs.Apply(
		CurrentStudent(c),
		uint(jobID),
		resumePath,
		c.PostForm("cover_letter"),
		c.PostForm("portfolio_url"),
	)
	if err != nil {
		// the stored resume belongs to no application now
		_ = h.Media.Remove(resumePath)
		switch {
		case errors.Is(err, services.ErrAlreadyApplied):
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "You have already applied to this job."})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "This job is no longer available."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to submit application: " + err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Application submitted successfully!",
	})
}

// UpdateApplicationStatus is the recruiter-side POST
// /jobs/applications/:id/status endpoint moving an application through
// pending/reviewed/accepted/rejected.
func (h *JobHandler) UpdateApplicationStatus(c *gin.Context) {
	appID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || appID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid application id"})
		return
	}
	var req dtos.ApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid JSON format: " + err.Error()})
		return
	}
	if err := h.Jobs.UpdateApplicationStatus(uint(appID), req.Status); err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownStatus):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": services.ErrUnknownStatus.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Application not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update status: " + err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Application status updated",
		"status":  req.Status,
	})
}

// Bookmark is the POST /jobs/bookmark/ toggle.
func (h *JobHandler) Bookmark(c *gin.Context) {
	var req dtos.BookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid JSON format: " + err.Error()})
		return
	}
	bookmarked, err := h.Jobs.ToggleBookmark(CurrentStudent(c), req.JobID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update bookmark: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"bookmarked": bookmarked,
	})
}
