package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Kind names one profile section whose entries the editor manages.
type Kind string

const (
	KindSkills     Kind = "skills"
	KindEducation  Kind = "education"
	KindExperience Kind = "experience"
	KindProjects   Kind = "projects"
)

// MaxSize is the entry cap for the section. 0 means unbounded.
func (k Kind) MaxSize() int {
	switch k {
	case KindEducation:
		return 2
	case KindExperience:
		return 4
	case KindProjects:
		return 3
	}
	return 0
}

// PayloadKey is the JSON key the section's list travels under, both in the
// request body and in the server's echoed response.
func (k Kind) PayloadKey() string {
	return string(k)
}

// Fields lists the section's field names in display order.
func (k Kind) Fields() []string {
	switch k {
	case KindSkills:
		return []string{"name"}
	case KindEducation:
		return []string{"degree", "institute", "start_year", "end_year", "cgpa", "description"}
	case KindExperience:
		return []string{"title", "company", "start", "end", "duration", "description"}
	case KindProjects:
		return []string{"title", "technologies", "start", "end", "description"}
	}
	return nil
}

// TitleField is the one field that must be non-empty before an entry can be
// saved: the skill name, the degree, or the title.
func (k Kind) TitleField() string {
	switch k {
	case KindSkills:
		return "name"
	case KindEducation:
		return "degree"
	}
	return "title"
}

// Dated reports whether the section carries start/end dates, and therefore a
// live duration preview.
func (k Kind) Dated() bool {
	return k == KindExperience || k == KindProjects
}

// Record is one entry of a section: a field-name to value mapping plus a
// stable key the reconciler diffs on. Keys are minted client-side so a fresh
// entry can be tracked before the server has ever seen it.
type Record struct {
	Key    string
	Fields map[string]string
}

// NewRecord mints a record with a fresh key. The field map is copied.
func NewRecord(fields map[string]string) Record {
	return Record{Key: uuid.NewString(), Fields: copyFields(fields)}
}

// Get returns the named field, or "" when unset.
func (r Record) Get(name string) string {
	return r.Fields[name]
}

// Set assigns the named field, allocating the map if needed.
func (r *Record) Set(name, value string) {
	if r.Fields == nil {
		r.Fields = make(map[string]string)
	}
	r.Fields[name] = value
}

func copyFields(fields map[string]string) map[string]string {
	out := make(map[string]string, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	return out
}

// ValidationError is a local, pre-network rejection: a required field is
// empty, a numeric field does not parse, or the section is full.
type ValidationError struct {
	Field   string // empty for collection-level failures
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// Validate applies the section's field constraints: the title field must be
// non-empty, and a CGPA, when present, must be a number. Everything else is
// free text.
func (k Kind) Validate(r Record) error {
	title := k.TitleField()
	if strings.TrimSpace(r.Get(title)) == "" {
		return &ValidationError{Field: title, Message: "cannot be empty"}
	}
	if cgpa := strings.TrimSpace(r.Get("cgpa")); cgpa != "" {
		if _, err := strconv.ParseFloat(cgpa, 64); err != nil {
			return &ValidationError{Field: "cgpa", Message: fmt.Sprintf("%q is not a number", cgpa)}
		}
	}
	return nil
}
