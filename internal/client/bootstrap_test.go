package client

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/mithildabhi/Smart-Job-Portal/internal/editor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProfile(t *testing.T) {
	p := newTestPortal(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/students/profile/", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success":     true,
			"picture_url": "/media/profile_pics/me.png",
			"skills":      []string{"Go", "SQL"},
			"education": []map[string]string{
				{"id": "edu-1", "degree": "BSc", "institute": "MIT", "cgpa": "8.5"},
			},
			"experience": []map[string]string{},
			"projects": []map[string]string{
				{"id": "p-1", "title": "Portfolio", "technologies": "Go"},
			},
		})
	})

	boot, err := p.LoadProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/media/profile_pics/me.png", boot.PictureURL)

	skills := boot.Sections[editor.KindSkills]
	require.Len(t, skills, 2)
	assert.Equal(t, "Go", skills[0].Get("name"))

	edu := boot.Sections[editor.KindEducation]
	require.Len(t, edu, 1)
	assert.Equal(t, "edu-1", edu[0].Key)
	assert.Equal(t, "MIT", edu[0].Get("institute"))

	assert.Empty(t, boot.Sections[editor.KindExperience])
	require.Len(t, boot.Sections[editor.KindProjects], 1)
}

func TestLoadProfileUnauthorized(t *testing.T) {
	p := newTestPortal(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	_, err := p.LoadProfile(context.Background())
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnauthorized, se.Code)
}
