package editor

import "fmt"

// Store is the canonical ordered list of one section's entries. The display
// is a projection of this list and is never read back; every mutation goes
// through the store first and the view is reconciled afterwards.
type Store struct {
	kind    Kind
	records []Record
}

// NewStore builds a store seeded with the page's initial entries. Records
// without keys (server bootstrap data carries none for skills) get fresh
// ones.
func NewStore(kind Kind, initial []Record) *Store {
	records := make([]Record, len(initial))
	for i, r := range initial {
		if r.Key == "" {
			r.Key = NewRecord(nil).Key
		}
		r.Fields = copyFields(r.Fields)
		records[i] = r
	}
	return &Store{kind: kind, records: records}
}

func (s *Store) Kind() Kind { return s.kind }

func (s *Store) Len() int { return len(s.records) }

// Full reports whether the section is at its entry cap.
func (s *Store) Full() bool {
	max := s.kind.MaxSize()
	return max > 0 && len(s.records) >= max
}

// Add appends a record. Fails with a ValidationError when the record is
// invalid or the section is already full; nothing is sent over the network
// in either case.
func (s *Store) Add(r Record) error {
	if err := s.kind.Validate(r); err != nil {
		return err
	}
	if s.Full() {
		return &ValidationError{
			Message: fmt.Sprintf("maximum of %d %s entries reached", s.kind.MaxSize(), s.kind),
		}
	}
	if r.Key == "" {
		r = NewRecord(r.Fields)
	} else {
		r.Fields = copyFields(r.Fields)
	}
	s.records = append(s.records, r)
	return nil
}

// Update replaces the fields at index i, keeping the existing key so the
// reconciler treats it as the same row.
func (s *Store) Update(i int, r Record) error {
	if i < 0 || i >= len(s.records) {
		return fmt.Errorf("no %s entry at index %d", s.kind, i)
	}
	if err := s.kind.Validate(r); err != nil {
		return err
	}
	s.records[i] = Record{Key: s.records[i].Key, Fields: copyFields(r.Fields)}
	return nil
}

// Remove deletes the record at index i.
func (s *Store) Remove(i int) error {
	if i < 0 || i >= len(s.records) {
		return fmt.Errorf("no %s entry at index %d", s.kind, i)
	}
	s.records = append(s.records[:i], s.records[i+1:]...)
	return nil
}

// IndexOf finds the record with the given key, or -1.
func (s *Store) IndexOf(key string) int {
	for i, r := range s.records {
		if r.Key == key {
			return i
		}
	}
	return -1
}

// ToList returns a deep copy of the current list, in display order.
func (s *Store) ToList() []Record {
	out := make([]Record, len(s.records))
	for i, r := range s.records {
		out[i] = Record{Key: r.Key, Fields: copyFields(r.Fields)}
	}
	return out
}

// Replace adopts a full list wholesale, used for the server's authoritative
// echo and for rolling back to a snapshot after a failed submission.
func (s *Store) Replace(records []Record) {
	s.records = make([]Record, len(records))
	for i, r := range records {
		if r.Key == "" {
			r.Key = NewRecord(nil).Key
		}
		s.records[i] = Record{Key: r.Key, Fields: copyFields(r.Fields)}
	}
}

// MergeKeys carries local record keys onto an echoed list that lacks them.
// The skills endpoint echoes bare names, so position-aligned entries keep
// their local identity and the reconciler can update rows in place.
func MergeKeys(local, echoed []Record) []Record {
	out := make([]Record, len(echoed))
	for i, r := range echoed {
		if r.Key == "" && i < len(local) {
			r.Key = local[i].Key
		}
		out[i] = r
	}
	return out
}
