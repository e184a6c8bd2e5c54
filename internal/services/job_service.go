package services

import (
	"errors"
	"time"

	"github.com/mithildabhi/Smart-Job-Portal/internal/dtos"
	"github.com/mithildabhi/Smart-Job-Portal/internal/models"
	"gorm.io/gorm"
)

// ErrAlreadyApplied rejects a second application to the same job.
var ErrAlreadyApplied = errors.New("you have already applied to this job")

// ErrUnknownStatus rejects a status outside the recruiter flow.
var ErrUnknownStatus = errors.New("unknown application status")

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{
		DB: db,
	}
}

func (s *JobService) CreateJob(req *dtos.JobCreationRequest) (*models.Job, error) {
	// So we have to create a Job and enter its entry into the database
	var company models.Company
	// it create an entry if it already don't exist
	err := s.DB.Where(models.Company{Name: req.CompanyName}).
		FirstOrCreate(&company).Error
	if err != nil {
		return nil, err
	}
	job := &models.Job{
		CompanyID:    company.ID,
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		Salary:       req.Salary,
		Requirements: req.Requirements,
		JobType:      req.JobType,
	}
	if req.Deadline != "" {
		deadline, err := time.Parse("2006-01-02", req.Deadline)
		if err != nil {
			return nil, err
		}
		job.Deadline = &deadline
	}
	err = s.DB.Create(job).Error
	if err != nil {
		return nil, err
	}
	return job, nil
}

// ListActive returns the open jobs with their companies, newest first.
func (s *JobService) ListActive() ([]models.Job, error) {
	var jobs []models.Job
	err := s.DB.Preload("Company").
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

// Apply files an application for a student. The (job, student) pair is
// unique, so applying twice fails with ErrAlreadyApplied.
func (s *JobService) Apply(studentID, jobID uint, resumePath, coverLetter, portfolioURL string) (*models.Application, error) {
	var job models.Job
	if err := s.DB.First(&job, jobID).Error; err != nil {
		return nil, err
	}
	var count int64
	err := s.DB.Model(&models.Application{}).
		Where("job_id = ? AND student_id = ?", jobID, studentID).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAlreadyApplied
	}
	app := &models.Application{
		JobID:        jobID,
		StudentID:    studentID,
		ResumePath:   resumePath,
		CoverLetter:  coverLetter,
		PortfolioURL: portfolioURL,
		Status:       models.StatusPending,
	}
	if err := s.DB.Create(app).Error; err != nil {
		return nil, err
	}
	return app, nil
}

// UpdateApplicationStatus moves an application through the recruiter flow.
func (s *JobService) UpdateApplicationStatus(applicationID uint, status string) error {
	switch status {
	case models.StatusPending, models.StatusReviewed, models.StatusAccepted, models.StatusRejected:
	default:
		return ErrUnknownStatus
	}
	var app models.Application
	if err := s.DB.First(&app, applicationID).Error; err != nil {
		return err
	}
	return s.DB.Model(&app).Update("status", status).Error
}

// ToggleBookmark flips the bookmark for (student, job) and reports whether
// the job ended up bookmarked.
func (s *JobService) ToggleBookmark(studentID, jobID uint) (bool, error) {
	var bookmark models.Bookmark
	err := s.DB.Where("job_id = ? AND student_id = ?", jobID, studentID).
		First(&bookmark).Error
	if err == nil {
		if err := s.DB.Delete(&bookmark).Error; err != nil {
			return false, err
		}
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	bookmark = models.Bookmark{JobID: jobID, StudentID: studentID}
	if err := s.DB.Create(&bookmark).Error; err != nil {
		return false, err
	}
	return true, nil
}
