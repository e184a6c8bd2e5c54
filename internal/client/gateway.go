package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mithildabhi/Smart-Job-Portal/internal/editor"
)

// TokenFunc supplies the anti-forgery token at submission time.
type TokenFunc func() (string, error)

// StaticToken wraps an already-resolved token.
func StaticToken(token string) TokenFunc {
	return func() (string, error) {
		if token == "" {
			return "", &ConfigError{Message: "anti-forgery token not configured"}
		}
		return token, nil
	}
}

// PageToken resolves the token from a loaded page on every call.
func PageToken(r *TokenResolver, page *Page) TokenFunc {
	return func() (string, error) { return r.Resolve(page) }
}

// DefaultEndpoints are the portal's section update paths, relative to the
// base URL.
func DefaultEndpoints() map[editor.Kind]string {
	return map[editor.Kind]string{
		editor.KindSkills:     "/students/profile/update-skills/",
		editor.KindEducation:  "/students/profile/update-education/",
		editor.KindExperience: "/students/profile/update-experience/",
		editor.KindProjects:   "/students/profile/update-projects/",
	}
}

// GatewayConfig wires one Gateway. Every editor instance gets its endpoint
// and token source handed in explicitly; nothing is read from shared
// globals.
type GatewayConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	// Endpoints overrides DefaultEndpoints when non-nil.
	Endpoints map[editor.Kind]string
	Token     TokenFunc
}

// Gateway serializes a section's full list and posts it to the section's
// endpoint. Every mutation ships the complete ordered replacement, which
// makes submissions idempotent and order-preserving by construction.
type Gateway struct {
	http      *http.Client
	baseURL   string
	endpoints map[editor.Kind]string
	token     TokenFunc
}

func NewGateway(cfg GatewayConfig) *Gateway {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	endpoints := cfg.Endpoints
	if endpoints == nil {
		endpoints = DefaultEndpoints()
	}
	return &Gateway{
		http:      cfg.HTTPClient,
		baseURL:   cfg.BaseURL,
		endpoints: endpoints,
		token:     cfg.Token,
	}
}

// Submit sends the full list for kind. Oversized lists and missing
// endpoint/token configuration fail locally; no request goes out.
func (g *Gateway) Submit(ctx context.Context, kind editor.Kind, records []editor.Record) (*editor.SubmitResult, error) {
	if max := kind.MaxSize(); max > 0 && len(records) > max {
		return nil, &editor.ValidationError{
			Message: fmt.Sprintf("cannot save more than %d %s entries", max, kind),
		}
	}
	path, ok := g.endpoints[kind]
	if !ok {
		return nil, &ConfigError{Message: fmt.Sprintf("no endpoint configured for %s", kind)}
	}
	token, err := g.token()
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(map[string]any{kind.PayloadKey(): encodeRecords(kind, records)})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	req.Header.Set(Header, token)

	resp, err := g.http.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	var payload map[string]json.RawMessage
	decodeErr := json.NewDecoder(resp.Body).Decode(&payload)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		se := &StatusError{Code: resp.StatusCode}
		if decodeErr == nil {
			// Validation rejections arrive as 400 with the same
			// success/errors body a 200 rejection carries; keep the
			// per-field errors so they reach the inputs.
			if raw, ok := payload["errors"]; ok {
				ae := &AppError{Message: rawString(payload["message"])}
				if json.Unmarshal(raw, &ae.FieldErrors) == nil && len(ae.FieldErrors) > 0 {
					return nil, ae
				}
			}
			se.Message = rawString(payload["message"])
		}
		return nil, se
	}
	if decodeErr != nil {
		return nil, &TransportError{Err: decodeErr}
	}

	var success bool
	_ = json.Unmarshal(payload["success"], &success)
	message := rawString(payload["message"])
	if !success {
		ae := &AppError{Message: message}
		_ = json.Unmarshal(payload["errors"], &ae.FieldErrors)
		return nil, ae
	}

	result := &editor.SubmitResult{Message: message}
	if raw, ok := payload[kind.PayloadKey()]; ok {
		echoed, err := decodeRecords(kind, raw)
		if err != nil {
			return nil, &TransportError{Err: err}
		}
		result.Records = echoed
	}
	return result, nil
}

// encodeRecords shapes the request list. Skills travel as bare names;
// every other section sends full field objects plus the client key, which
// the server stores and echoes so rows keep their identity across round
// trips.
func encodeRecords(kind editor.Kind, records []editor.Record) any {
	if kind == editor.KindSkills {
		names := make([]string, len(records))
		for i, r := range records {
			names[i] = r.Get("name")
		}
		return names
	}
	out := make([]map[string]string, len(records))
	for i, r := range records {
		entry := make(map[string]string, len(r.Fields)+1)
		for k, v := range r.Fields {
			entry[k] = v
		}
		entry["id"] = r.Key
		out[i] = entry
	}
	return out
}

func decodeRecords(kind editor.Kind, raw json.RawMessage) ([]editor.Record, error) {
	if kind == editor.KindSkills {
		var names []string
		if err := json.Unmarshal(raw, &names); err != nil {
			return nil, err
		}
		records := make([]editor.Record, len(names))
		for i, name := range names {
			records[i] = editor.Record{Fields: map[string]string{"name": name}}
		}
		return records, nil
	}
	var entries []map[string]string
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, err
	}
	records := make([]editor.Record, len(entries))
	for i, entry := range entries {
		r := editor.Record{Key: entry["id"], Fields: make(map[string]string, len(entry))}
		for k, v := range entry {
			if k != "id" {
				r.Fields[k] = v
			}
		}
		records[i] = r
	}
	return records, nil
}

func rawString(raw json.RawMessage) string {
	var s string
	_ = json.Unmarshal(raw, &s)
	return s
}
