package dtos

// The section update requests. Each carries the FULL list for its section;
// the server replaces the stored rows wholesale and echoes the result back,
// so the client always re-renders from the authoritative order.

type SkillsUpdateRequest struct {
	Skills []string `json:"skills"`
}

type EducationRecord struct {
	ID          string `json:"id"`
	Degree      string `json:"degree" binding:"required"`
	Institute   string `json:"institute"`
	StartYear   string `json:"start_year"`
	EndYear     string `json:"end_year"`
	CGPA        string `json:"cgpa" binding:"omitempty,numeric"`
	Description string `json:"description"`
}

type EducationUpdateRequest struct {
	Education []EducationRecord `json:"education" binding:"dive"`
}

type ExperienceRecord struct {
	ID          string `json:"id"`
	Title       string `json:"title" binding:"required"`
	Company     string `json:"company"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

type ExperienceUpdateRequest struct {
	Experience []ExperienceRecord `json:"experience" binding:"dive"`
}

type ProjectRecord struct {
	ID           string `json:"id"`
	Title        string `json:"title" binding:"required"`
	Technologies string `json:"technologies"`
	Start        string `json:"start"`
	End          string `json:"end"`
	Description  string `json:"description"`
}

type ProjectsUpdateRequest struct {
	Projects []ProjectRecord `json:"projects" binding:"dive"`
}
