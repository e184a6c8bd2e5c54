package dtos

type JobCreationRequest struct {
	CompanyName string `json:"company_name" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`

	// Optional Fields
	Location     string `json:"location"`
	Deadline     string `json:"deadline"` // YYYY-MM-DD
	Salary       string `json:"salary"`
	Requirements string `json:"requirements"`
	JobType      string `json:"job_type"` // Defaults to "full_time" if empty
}

type BookmarkRequest struct {
	JobID uint `json:"job_id" binding:"required"`
}

type ApplicationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
