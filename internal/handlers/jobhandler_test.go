package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mithildabhi/Smart-Job-Portal/internal/dtos"
	"github.com/mithildabhi/Smart-Job-Portal/internal/models"
	"github.com/mithildabhi/Smart-Job-Portal/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeJobs struct {
	applications []models.Application
	applyErr     error
	bookmarked   bool
	statuses     map[uint]string
	statusErr    error
}

func (f *fakeJobs) CreateJob(req *dtos.JobCreationRequest) (*models.Job, error) {
	return &models.Job{Title: req.Title}, nil
}

func (f *fakeJobs) ListActive() ([]models.Job, error) {
	return nil, nil
}

func (f *fakeJobs) Apply(studentID, jobID uint, resumePath, coverLetter, portfolioURL string) (*models.Application, error) {
	if f.applyErr != nil {
		return nil, f.applyErr
	}
	app := models.Application{
		JobID: jobID, StudentID: studentID,
		ResumePath: resumePath, CoverLetter: coverLetter, PortfolioURL: portfolioURL,
	}
	f.applications = append(f.applications, app)
	return &app, nil
}

func (f *fakeJobs) ToggleBookmark(studentID, jobID uint) (bool, error) {
	f.bookmarked = !f.bookmarked
	return f.bookmarked, nil
}

func (f *fakeJobs) UpdateApplicationStatus(applicationID uint, status string) error {
	if f.statusErr != nil {
		return f.statusErr
	}
	if f.statuses == nil {
		f.statuses = make(map[uint]string)
	}
	f.statuses[applicationID] = status
	return nil
}

func jobRouter(jobs *fakeJobs, media *fakeMedia) *gin.Engine {
	h := NewJobHandler(jobs, media)
	r := gin.New()
	g := r.Group("/jobs", RequireStudent())
	g.POST("/apply/", h.Apply)
	g.POST("/bookmark/", h.Bookmark)
	r.POST("/jobs/applications/:id/status", h.UpdateApplicationStatus)
	return r
}

func applicationForm(t *testing.T, jobID uint, withResume bool) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	require.NoError(t, form.WriteField("job_id", strconv.FormatUint(uint64(jobID), 10)))
	require.NoError(t, form.WriteField("cover_letter", "Dear team"))
	if withResume {
		part, err := form.CreateFormFile("resume", "resume.pdf")
		require.NoError(t, err)
		_, err = part.Write([]byte("pdf-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, form.Close())
	return &buf, form.FormDataContentType()
}

func postForm(t *testing.T, r *gin.Engine, path string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, asStudent(req))
	return w
}

func TestApplyStoresResumeAndFilesApplication(t *testing.T) {
	jobs := &fakeJobs{}
	media := &fakeMedia{}
	r := jobRouter(jobs, media)

	body, contentType := applicationForm(t, 42, true)
	w := postForm(t, r, "/jobs/apply/", body, contentType)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Application submitted successfully!")
	require.Len(t, jobs.applications, 1)
	assert.Equal(t, uint(42), jobs.applications[0].JobID)
	assert.Equal(t, "/media/resumes/resume.pdf", jobs.applications[0].ResumePath)
	assert.Equal(t, "Dear team", jobs.applications[0].CoverLetter)
}

func TestApplyRequiresResume(t *testing.T) {
	media := &fakeMedia{}
	r := jobRouter(&fakeJobs{}, media)

	body, contentType := applicationForm(t, 42, false)
	w := postForm(t, r, "/jobs/apply/", body, contentType)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success bool                `json:"success"`
		Errors  map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Errors, "resume")
	assert.Empty(t, media.saved)
}

func TestApplyDuplicateIsRejected(t *testing.T) {
	jobs := &fakeJobs{applyErr: services.ErrAlreadyApplied}
	media := &fakeMedia{}
	r := jobRouter(jobs, media)

	body, contentType := applicationForm(t, 42, true)
	w := postForm(t, r, "/jobs/apply/", body, contentType)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
	assert.Contains(t, w.Body.String(), "already applied")
	// orphaned resume file was cleaned up again
	assert.Equal(t, media.saved, media.removed)
}

func TestUpdateApplicationStatus(t *testing.T) {
	jobs := &fakeJobs{}
	r := jobRouter(jobs, &fakeMedia{})

	body, _ := json.Marshal(gin.H{"status": models.StatusReviewed})
	req := httptest.NewRequest(http.MethodPost, "/jobs/applications/9/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"reviewed"`)
	assert.Equal(t, models.StatusReviewed, jobs.statuses[9])
}

func TestUpdateApplicationStatusRejectsUnknown(t *testing.T) {
	jobs := &fakeJobs{statusErr: services.ErrUnknownStatus}
	r := jobRouter(jobs, &fakeMedia{})

	body, _ := json.Marshal(gin.H{"status": "hired"})
	req := httptest.NewRequest(http.MethodPost, "/jobs/applications/9/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestBookmarkToggles(t *testing.T) {
	r := jobRouter(&fakeJobs{}, &fakeMedia{})

	body, _ := json.Marshal(gin.H{"job_id": 7})
	req := httptest.NewRequest(http.MethodPost, "/jobs/bookmark/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, asStudent(req))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"bookmarked":true}`, w.Body.String())
}
