package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/mithildabhi/Smart-Job-Portal/internal/dtos"
	"github.com/mithildabhi/Smart-Job-Portal/internal/models"
	"github.com/mithildabhi/Smart-Job-Portal/internal/services"
	"github.com/mithildabhi/Smart-Job-Portal/internal/storage"
)

// Picture upload limits, same numbers the old portal enforced.
const maxPictureBytes = 5 * 1024 * 1024

// ProfileStore is what the handler needs from the profile service.
type ProfileStore interface {
	GetOrCreate(studentID uint) (*models.StudentProfile, error)
	ReplaceSkills(studentID uint, names []string) ([]string, error)
	ReplaceEducation(studentID uint, entries []models.Education) ([]models.Education, error)
	ReplaceExperience(studentID uint, entries []models.Experience) ([]models.Experience, error)
	ReplaceProjects(studentID uint, entries []models.Project) ([]models.Project, error)
	SetPicture(studentID uint, url string) (string, error)
	ClearPicture(studentID uint) (string, error)
}

type ProfileHandler struct {
	Profiles ProfileStore
	Media    storage.MediaStore
}

func NewProfileHandler(profiles ProfileStore, media storage.MediaStore) *ProfileHandler {
	return &ProfileHandler{Profiles: profiles, Media: media}
}

// GetProfile is the bootstrap the profile page loads its editors from: the
// four section lists in stored order.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.Profiles.GetOrCreate(CurrentStudent(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load profile: " + err.Error()})
		return
	}
	names := make([]string, len(profile.Skills))
	for i, s := range profile.Skills {
		names[i] = s.Name
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"picture_url": profile.PictureURL,
		"skills":      names,
		"education":   profile.Educations,
		"experience":  profile.Experiences,
		"projects":    profile.Projects,
	})
}

// UpdateSkills replaces the skill list. Skills travel as bare names.
func (h *ProfileHandler) UpdateSkills(c *gin.Context) {
	var req dtos.SkillsUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFail(c, err)
		return
	}
	names, err := h.Profiles.ReplaceSkills(CurrentStudent(c), req.Skills)
	if err != nil {
		replaceFail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Skills updated successfully",
		"skills":  names,
	})
}

// UpdateEducation replaces the education list (capped at 2 entries).
func (h *ProfileHandler) UpdateEducation(c *gin.Context) {
	var req dtos.EducationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFail(c, err)
		return
	}
	entries := make([]models.Education, len(req.Education))
	for i, r := range req.Education {
		entries[i] = models.Education{
			ClientKey:   r.ID,
			Degree:      r.Degree,
			Institute:   r.Institute,
			StartYear:   r.StartYear,
			EndYear:     r.EndYear,
			CGPA:        r.CGPA,
			Description: r.Description,
		}
	}
	stored, err := h.Profiles.ReplaceEducation(CurrentStudent(c), entries)
	if err != nil {
		replaceFail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Education updated successfully",
		"education": stored,
	})
}

// UpdateExperience replaces the experience list (capped at 4 entries).
func (h *ProfileHandler) UpdateExperience(c *gin.Context) {
	var req dtos.ExperienceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFail(c, err)
		return
	}
	entries := make([]models.Experience, len(req.Experience))
	for i, r := range req.Experience {
		entries[i] = models.Experience{
			ClientKey:   r.ID,
			Title:       r.Title,
			Company:     r.Company,
			Start:       r.Start,
			End:         r.End,
			Duration:    r.Duration,
			Description: r.Description,
		}
	}
	stored, err := h.Profiles.ReplaceExperience(CurrentStudent(c), entries)
	if err != nil {
		replaceFail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Experience updated successfully",
		"experience": stored,
	})
}

// UpdateProjects replaces the project list (capped at 3 entries).
func (h *ProfileHandler) UpdateProjects(c *gin.Context) {
	var req dtos.ProjectsUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFail(c, err)
		return
	}
	entries := make([]models.Project, len(req.Projects))
	for i, r := range req.Projects {
		entries[i] = models.Project{
			ClientKey:    r.ID,
			Title:        r.Title,
			Technologies: r.Technologies,
			Start:        r.Start,
			End:          r.End,
			Description:  r.Description,
		}
	}
	stored, err := h.Profiles.ReplaceProjects(CurrentStudent(c), entries)
	if err != nil {
		replaceFail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Projects updated successfully",
		"projects": stored,
	})
}

// UploadPicture stores a new profile picture (5MB cap, JPEG/PNG/GIF only)
// and cleans the previous file up.
func (h *ProfileHandler) UploadPicture(c *gin.Context) {
	file, err := c.FormFile("profile_picture")
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"message": "No picture uploaded",
			"errors":  gin.H{"profile_picture": []string{"This field is required."}},
		})
		return
	}
	if file.Size > maxPictureBytes {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"message": "Image file too large",
			"errors":  gin.H{"profile_picture": []string{"Image file too large. Please keep it under 5MB."}},
		})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to read upload: " + err.Error()})
		return
	}
	defer src.Close()

	if !sniffImage(src) {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"message": "Unsupported image format",
			"errors":  gin.H{"profile_picture": []string{"Please upload a valid image file (JPG, PNG, GIF)."}},
		})
		return
	}

	url, err := h.Media.Save("profile_pics", file.Filename, src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to store picture: " + err.Error()})
		return
	}
	old, err := h.Profiles.SetPicture(CurrentStudent(c), url)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update profile: " + err.Error()})
		return
	}
	if old != "" {
		// best effort, the DB row is already updated
		_ = h.Media.Remove(old)
	}
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Profile picture updated successfully",
		"image_url": url,
	})
}

// DeletePicture removes the stored picture.
func (h *ProfileHandler) DeletePicture(c *gin.Context) {
	old, err := h.Profiles.ClearPicture(CurrentStudent(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update profile: " + err.Error()})
		return
	}
	if old != "" {
		_ = h.Media.Remove(old)
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile picture deleted successfully",
	})
}

// sniffImage checks the upload's magic bytes against the allowed formats.
// The filename and declared content type are both attacker-controlled, the
// first 512 bytes are not. The reader is rewound afterwards.
func sniffImage(src io.ReadSeeker) bool {
	head := make([]byte, 512)
	n, _ := src.Read(head)
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return false
	}
	switch http.DetectContentType(head[:n]) {
	case "image/jpeg", "image/png", "image/gif":
		return true
	}
	return false
}

// bindFail turns a gin binding error into the field-errors shape the page
// renders next to inputs.
func bindFail(c *gin.Context, err error) {
	fields := make(map[string][]string)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			name := strings.ToLower(fe.Field())
			fields[name] = append(fields[name], validationMessage(fe))
		}
	}
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": "Invalid request: " + err.Error(),
		"errors":  fields,
	})
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "numeric":
		return "Enter a number."
	}
	return "Invalid value."
}

// replaceFail maps service errors: a full section is the caller's mistake,
// anything else is ours.
func replaceFail(c *gin.Context, err error) {
	var full *services.SectionFullError
	if errors.As(err, &full) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": full.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save changes: " + err.Error()})
}
