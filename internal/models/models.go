package models

import (
	"time"

	"gorm.io/gorm"
)

type Student struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name  string `gorm:"not null" json:"name"`
	Email string `gorm:"uniqueIndex;not null" json:"email"`

	// Association: GORM needs Preload() to fill this
	Profile StudentProfile `json:"profile,omitempty"`
}

type StudentProfile struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	StudentID  uint   `gorm:"uniqueIndex" json:"student_id"`
	PictureURL string `json:"picture_url"`

	// The four bounded profile sections. Each update replaces its section
	// wholesale, so Position preserves the submitted order.
	Skills      []Skill      `json:"skills,omitempty"`
	Educations  []Education  `json:"education,omitempty"`
	Experiences []Experience `json:"experience,omitempty"`
	Projects    []Project    `json:"projects,omitempty"`
}

type Skill struct {
	ID               uint   `gorm:"primaryKey" json:"-"`
	StudentProfileID uint   `gorm:"index" json:"-"`
	Position         int    `json:"-"`
	Name             string `gorm:"not null" json:"name"`
}

type Education struct {
	ID               uint   `gorm:"primaryKey" json:"-"`
	StudentProfileID uint   `gorm:"index" json:"-"`
	Position         int    `json:"-"`
	ClientKey        string `json:"id"`
	Degree           string `gorm:"not null" json:"degree"`
	Institute        string `json:"institute"`
	StartYear        string `json:"start_year"`
	EndYear          string `json:"end_year"`
	CGPA             string `json:"cgpa"`
	Description      string `gorm:"type:text" json:"description"`
}

type Experience struct {
	ID               uint   `gorm:"primaryKey" json:"-"`
	StudentProfileID uint   `gorm:"index" json:"-"`
	Position         int    `json:"-"`
	ClientKey        string `json:"id"`
	Title            string `gorm:"not null" json:"title"`
	Company          string `json:"company"`
	Start            string `json:"start"`
	End              string `json:"end"`
	Duration         string `json:"duration"`
	Description      string `gorm:"type:text" json:"description"`
}

type Project struct {
	ID               uint   `gorm:"primaryKey" json:"-"`
	StudentProfileID uint   `gorm:"index" json:"-"`
	Position         int    `json:"-"`
	ClientKey        string `json:"id"`
	Title            string `gorm:"not null" json:"title"`
	Technologies     string `json:"technologies"`
	Start            string `json:"start"`
	End              string `json:"end"`
	Description      string `gorm:"type:text" json:"description"`
}

type Company struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name     string `gorm:"uniqueIndex;not null" json:"company_name"`
	Industry string `gorm:"default:'Technology'" json:"industry"`
	Website  string `json:"website"`
	Location string `json:"location"`

	// 'omitempty' prevents infinite loops when fetching a Job -> Company -> Jobs -> ...
	Jobs []Job `json:"jobs,omitempty"`
}

type Job struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CompanyID uint    `json:"company_id"`
	Company   Company `json:"company"`

	Title        string     `gorm:"not null" json:"title"`
	Description  string     `gorm:"type:text" json:"description"`
	Location     string     `json:"location"`
	Deadline     *time.Time `json:"deadline"`
	Salary       string     `json:"salary"`
	Requirements string     `gorm:"type:text" json:"requirements"`
	JobType      string     `gorm:"default:'full_time'" json:"job_type"`
	IsActive     bool       `gorm:"default:true" json:"is_active"`
}

// Application statuses, advanced by the recruiter side.
const (
	StatusPending  = "pending"
	StatusReviewed = "reviewed"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

type Application struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	JobID     uint    `gorm:"index:idx_app_job_student,unique" json:"job_id"`
	StudentID uint    `gorm:"index:idx_app_job_student,unique" json:"student_id"`
	Job       Job     `json:"job"`
	Student   Student `json:"-"`

	ResumePath   string `gorm:"not null" json:"resume_path"`
	CoverLetter  string `gorm:"type:text" json:"cover_letter"`
	PortfolioURL string `json:"portfolio_url"`
	Status       string `gorm:"default:'pending'" json:"status"`
}

type Bookmark struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	JobID     uint `gorm:"index:idx_bookmark_job_student,unique" json:"job_id"`
	StudentID uint `gorm:"index:idx_bookmark_job_student,unique" json:"student_id"`
}
