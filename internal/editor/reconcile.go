package editor

// RowView is the displayed row list for one section. The engine treats it as
// a dumb surface: it is told exactly which rows to touch and never asked for
// state beyond the keys it is currently showing.
type RowView interface {
	// Keys returns the keys of the displayed rows, top to bottom.
	Keys() []string
	// UpdateRow refreshes the bound fields of an existing row in place.
	// The row element itself must survive, so an open inline editor or
	// focused input is not destroyed.
	UpdateRow(i int, r Record)
	// InsertRow creates a fresh row at position i.
	InsertRow(i int, r Record)
	// RemoveRow destroys the row at position i.
	RemoveRow(i int)
	// OpenEditor reveals the row's inline form, pre-filled from r.
	OpenEditor(i int, r Record)
	// CloseEditor hides the row's inline form, discarding typed values.
	CloseEditor(i int)
	// SetSummary writes the live duration preview onto a dated row.
	SetSummary(i int, duration, summary string)
	// SetAddEnabled toggles the section's "add" control.
	SetAddEnabled(enabled bool)
	// ClearAddForm resets and hides the standalone "new entry" form.
	ClearAddForm()
	// AttachDatePickers re-binds picker behavior to every editable date
	// field. Must be idempotent.
	AttachDatePickers()
}

// Reconcile updates the view to match records, diffing on record keys. Rows
// whose key survives are updated in place so their element identity (open
// editors, focus, scroll) is preserved; rows whose key vanished are removed
// and new keys get fresh rows at their list position. Afterwards the add
// control reflects whether the section is full, and dated sections get
// their pickers re-attached.
func Reconcile(view RowView, kind Kind, records []Record) {
	keep := make(map[string]bool, len(records))
	for _, r := range records {
		keep[r.Key] = true
	}

	shown := view.Keys()
	for i := len(shown) - 1; i >= 0; i-- {
		if !keep[shown[i]] {
			view.RemoveRow(i)
			shown = append(shown[:i], shown[i+1:]...)
		}
	}

	// The server preserves submission order, so what remains displayed is a
	// subsequence of records: a key mismatch at position i is either a new
	// key (insert there) or a reorder, in which case the tail is rebuilt
	// from the mismatch onward.
	present := make(map[string]bool, len(shown))
	for _, k := range shown {
		present[k] = true
	}
	for i, r := range records {
		switch {
		case i < len(shown) && shown[i] == r.Key:
			view.UpdateRow(i, r)
		case !present[r.Key]:
			view.InsertRow(i, r)
			shown = append(shown[:i], append([]string{r.Key}, shown[i:]...)...)
			present[r.Key] = true
		default:
			for j := len(shown) - 1; j >= i; j-- {
				present[shown[j]] = false
				view.RemoveRow(j)
			}
			shown = shown[:i]
			view.InsertRow(i, r)
			shown = append(shown, r.Key)
			present[r.Key] = true
		}
	}

	max := kind.MaxSize()
	view.SetAddEnabled(max == 0 || len(records) < max)
	if kind.Dated() {
		view.AttachDatePickers()
	}
}
