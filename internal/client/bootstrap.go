package client

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mithildabhi/Smart-Job-Portal/internal/editor"
)

// Bootstrap is the profile payload the page's editors are seeded from: one
// list per section, in the server's stored order.
type Bootstrap struct {
	PictureURL string
	Sections   map[editor.Kind][]editor.Record
}

// LoadProfile fetches the student's profile bootstrap. This happens once at
// startup; afterwards the section lists live client-side and only full
// replacements travel back.
func (p *Portal) LoadProfile(ctx context.Context) (*Bootstrap, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/students/profile/", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Requested-With", "XMLHttpRequest")

	resp, err := p.http.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode}
	}
	var payload map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &TransportError{Err: err}
	}

	boot := &Bootstrap{
		PictureURL: rawString(payload["picture_url"]),
		Sections:   make(map[editor.Kind][]editor.Record, 4),
	}
	for _, kind := range []editor.Kind{editor.KindSkills, editor.KindEducation, editor.KindExperience, editor.KindProjects} {
		raw, ok := payload[kind.PayloadKey()]
		if !ok {
			boot.Sections[kind] = nil
			continue
		}
		records, err := decodeRecords(kind, raw)
		if err != nil {
			return nil, &TransportError{Err: err}
		}
		boot.Sections[kind] = records
	}
	return boot, nil
}
