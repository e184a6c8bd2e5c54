package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// Portal is the client for the endpoints around the profile editor: job
// applications, bookmarks and the profile picture. Same token and transport
// rules as the gateway.
type Portal struct {
	http    *http.Client
	baseURL string
	token   TokenFunc
}

func NewPortal(httpClient *http.Client, baseURL string, token TokenFunc) *Portal {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Portal{http: httpClient, baseURL: baseURL, token: token}
}

// Application is the apply-modal form: cover letter, resume file and an
// optional portfolio link for one job.
type Application struct {
	JobID        uint
	CoverLetter  string
	PortfolioURL string
	ResumeName   string
	Resume       io.Reader
}

// Apply submits an application as multipart form data. Non-2xx statuses get
// range-specific wording (404, 403 and 5xx each read differently).
func (p *Portal) Apply(ctx context.Context, app Application) (string, error) {
	token, err := p.token()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	_ = form.WriteField("job_id", fmt.Sprint(app.JobID))
	_ = form.WriteField("cover_letter", app.CoverLetter)
	if app.PortfolioURL != "" {
		_ = form.WriteField("portfolio_url", app.PortfolioURL)
	}
	if app.Resume != nil {
		part, err := form.CreateFormFile("resume", app.ResumeName)
		if err != nil {
			return "", err
		}
		if _, err := io.Copy(part, app.Resume); err != nil {
			return "", err
		}
	}
	if err := form.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/jobs/apply/", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	req.Header.Set(Header, token)

	resp, err := p.http.Do(req)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{Code: resp.StatusCode, Message: statusMessage(resp.StatusCode)}
	}

	var payload struct {
		Success bool                `json:"success"`
		Message string              `json:"message"`
		Errors  map[string][]string `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", &TransportError{Err: err}
	}
	if !payload.Success {
		return "", &AppError{Message: payload.Message, FieldErrors: payload.Errors}
	}
	return payload.Message, nil
}

// ToggleBookmark flips the bookmark for a job and reports the new state.
func (p *Portal) ToggleBookmark(ctx context.Context, jobID uint) (bool, error) {
	token, err := p.token()
	if err != nil {
		return false, err
	}
	body, _ := json.Marshal(map[string]uint{"job_id": jobID})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/jobs/bookmark/", bytes.NewReader(body))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	req.Header.Set(Header, token)

	resp, err := p.http.Do(req)
	if err != nil {
		return false, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false, &StatusError{Code: resp.StatusCode}
	}
	var payload struct {
		Success    bool   `json:"success"`
		Bookmarked bool   `json:"bookmarked"`
		Message    string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return false, &TransportError{Err: err}
	}
	if !payload.Success {
		return false, &AppError{Message: payload.Message}
	}
	return payload.Bookmarked, nil
}

// UploadPicture replaces the profile picture and returns the URL of the
// stored image.
func (p *Portal) UploadPicture(ctx context.Context, filename string, picture io.Reader) (string, error) {
	token, err := p.token()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreateFormFile("profile_picture", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, picture); err != nil {
		return "", err
	}
	if err := form.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/students/profile/upload-picture/", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	req.Header.Set(Header, token)

	resp, err := p.http.Do(req)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{Code: resp.StatusCode}
	}
	var payload struct {
		Success  bool                `json:"success"`
		Message  string              `json:"message"`
		ImageURL string              `json:"image_url"`
		Errors   map[string][]string `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", &TransportError{Err: err}
	}
	if !payload.Success {
		return "", &AppError{Message: payload.Message, FieldErrors: payload.Errors}
	}
	return payload.ImageURL, nil
}

// DeletePicture removes the profile picture.
func (p *Portal) DeletePicture(ctx context.Context) error {
	token, err := p.token()
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/students/profile/delete-picture/", nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	req.Header.Set(Header, token)

	resp, err := p.http.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode}
	}
	var payload struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return &TransportError{Err: err}
	}
	if !payload.Success {
		return &AppError{Message: payload.Message}
	}
	return nil
}
