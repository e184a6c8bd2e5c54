package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRow stands in for a displayed row element. Pointer identity is what
// "the element survived" means.
type fakeRow struct {
	key         string
	fields      map[string]string
	editorOpen  bool
	duration    string
	summaryLine string
}

type fakeView struct {
	rows            []*fakeRow
	addEnabled      bool
	addFormCleared  int
	pickersAttached int
}

func (v *fakeView) Keys() []string {
	keys := make([]string, len(v.rows))
	for i, r := range v.rows {
		keys[i] = r.key
	}
	return keys
}

func (v *fakeView) UpdateRow(i int, r Record) {
	v.rows[i].fields = copyFields(r.Fields)
}

func (v *fakeView) InsertRow(i int, r Record) {
	row := &fakeRow{key: r.Key, fields: copyFields(r.Fields)}
	v.rows = append(v.rows[:i], append([]*fakeRow{row}, v.rows[i:]...)...)
}

func (v *fakeView) RemoveRow(i int) {
	v.rows = append(v.rows[:i], v.rows[i+1:]...)
}

func (v *fakeView) OpenEditor(i int, r Record) { v.rows[i].editorOpen = true }
func (v *fakeView) CloseEditor(i int)          { v.rows[i].editorOpen = false }

func (v *fakeView) SetSummary(i int, duration, summary string) {
	v.rows[i].duration = duration
	v.rows[i].summaryLine = summary
}

func (v *fakeView) SetAddEnabled(enabled bool) { v.addEnabled = enabled }
func (v *fakeView) ClearAddForm()              { v.addFormCleared++ }
func (v *fakeView) AttachDatePickers()         { v.pickersAttached++ }

func records(names ...string) []Record {
	out := make([]Record, len(names))
	for i, n := range names {
		out[i] = Record{Key: "k-" + n, Fields: map[string]string{"name": n}}
	}
	return out
}

func TestReconcileUpdatesInPlace(t *testing.T) {
	view := &fakeView{}
	list := records("Go", "SQL")
	Reconcile(view, KindSkills, list)
	require.Len(t, view.rows, 2)

	first, second := view.rows[0], view.rows[1]
	first.editorOpen = true

	list[0].Fields["name"] = "Golang"
	Reconcile(view, KindSkills, list)

	// same elements, refreshed fields, open editor untouched
	assert.Same(t, first, view.rows[0])
	assert.Same(t, second, view.rows[1])
	assert.Equal(t, "Golang", view.rows[0].fields["name"])
	assert.True(t, view.rows[0].editorOpen)
}

func TestReconcileRemovalPreservesSurvivors(t *testing.T) {
	view := &fakeView{}
	Reconcile(view, KindSkills, records("Go", "SQL", "Docker"))
	first, third := view.rows[0], view.rows[2]

	Reconcile(view, KindSkills, records("Go", "Docker"))
	require.Len(t, view.rows, 2)
	assert.Same(t, first, view.rows[0])
	assert.Same(t, third, view.rows[1])
}

func TestReconcileInsertAtPosition(t *testing.T) {
	view := &fakeView{}
	Reconcile(view, KindSkills, records("Go", "Docker"))
	first, second := view.rows[0], view.rows[1]

	list := records("Go", "SQL", "Docker")
	Reconcile(view, KindSkills, list)
	require.Len(t, view.rows, 3)
	assert.Same(t, first, view.rows[0])
	assert.Equal(t, "k-SQL", view.rows[1].key)
	assert.Same(t, second, view.rows[2])
}

func TestReconcileRebuildsOnReorder(t *testing.T) {
	view := &fakeView{}
	Reconcile(view, KindSkills, records("Go", "SQL"))

	Reconcile(view, KindSkills, records("SQL", "Go"))
	require.Len(t, view.rows, 2)
	assert.Equal(t, "k-SQL", view.rows[0].key)
	assert.Equal(t, "k-Go", view.rows[1].key)
}

func TestReconcileTogglesAddControl(t *testing.T) {
	view := &fakeView{}
	list := []Record{
		{Key: "a", Fields: map[string]string{"title": "One"}},
		{Key: "b", Fields: map[string]string{"title": "Two"}},
	}
	Reconcile(view, KindProjects, list)
	assert.True(t, view.addEnabled)

	list = append(list, Record{Key: "c", Fields: map[string]string{"title": "Three"}})
	Reconcile(view, KindProjects, list)
	assert.False(t, view.addEnabled)

	Reconcile(view, KindProjects, list[:1])
	assert.True(t, view.addEnabled)
}

func TestReconcileAttachesPickersForDatedKinds(t *testing.T) {
	view := &fakeView{}
	Reconcile(view, KindExperience, nil)
	assert.Equal(t, 1, view.pickersAttached)

	Reconcile(view, KindSkills, nil)
	assert.Equal(t, 1, view.pickersAttached)
}
