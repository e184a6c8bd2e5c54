package editor

import (
	"context"
	"sync"
	"time"
)

// SubmitResult is the gateway's view of a successful round trip. Records is
// the server's authoritative echoed list when the response carried one, nil
// otherwise.
type SubmitResult struct {
	Message string
	Records []Record
}

// Submitter persists a full section list. Implemented by client.Gateway.
type Submitter interface {
	Submit(ctx context.Context, kind Kind, records []Record) (*SubmitResult, error)
}

// Config wires one Controller instance. Each section gets its own config so
// nothing is shared between the four editors on the page.
type Config struct {
	Kind    Kind
	View    RowView
	Gateway Submitter
	// Confirm asks the user before a destructive action. Defaults to
	// always-yes, which only makes sense in tests.
	Confirm func(prompt string) bool
	// Alert surfaces a user-visible message; level is "success", "info" or
	// "danger". Defaults to a no-op.
	Alert func(level, message string)
}

// Controller drives one section's editor: the per-row Viewing/Editing state
// machine, optimistic mutation of the Store, submission through the
// gateway, and re-reconciliation from the server's echo. A failed
// submission rolls the store back to its pre-mutation snapshot.
type Controller struct {
	cfg   Config
	store *Store

	mu      sync.Mutex
	editing map[string]bool // record key -> inline editor open
	busy    map[string]bool // record key (or addKey) -> submission in flight
	seq     uint64          // last issued submission, stale echoes lose
}

// addKey is the busy-guard slot for the collection-level add form.
const addKey = "\x00add"

// NewController builds the controller and renders the initial list.
func NewController(cfg Config, initial []Record) *Controller {
	if cfg.Confirm == nil {
		cfg.Confirm = func(string) bool { return true }
	}
	if cfg.Alert == nil {
		cfg.Alert = func(string, string) {}
	}
	c := &Controller{
		cfg:     cfg,
		store:   NewStore(cfg.Kind, initial),
		editing: make(map[string]bool),
		busy:    make(map[string]bool),
	}
	Reconcile(cfg.View, cfg.Kind, c.store.ToList())
	return c
}

// Store exposes the canonical list, mainly for tests and bootstrap code.
func (c *Controller) Store() *Store { return c.store }

// Edit opens the row's inline form pre-filled with its current fields.
// Clicking Edit on a row that is already editing is a no-op.
func (c *Controller) Edit(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.editing[key] {
		return
	}
	i := c.store.IndexOf(key)
	if i < 0 {
		return
	}
	c.editing[key] = true
	c.cfg.View.OpenEditor(i, c.store.ToList()[i])
}

// Cancel closes the inline form and discards typed values. No store
// mutation, no network call.
func (c *Controller) Cancel(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.editing[key] {
		return
	}
	delete(c.editing, key)
	if i := c.store.IndexOf(key); i >= 0 {
		c.cfg.View.CloseEditor(i)
	}
}

// Save validates the drafted fields and, on success, applies them
// optimistically, closes the editor and submits the full list. On a
// validation failure the row stays in Editing and nothing is sent. A Save
// while the row's previous submission is still in flight is ignored.
func (c *Controller) Save(ctx context.Context, key string, draft map[string]string) error {
	c.mu.Lock()
	if c.busy[key] {
		c.mu.Unlock()
		return nil
	}
	i := c.store.IndexOf(key)
	if i < 0 {
		c.mu.Unlock()
		return nil
	}
	snapshot := c.store.ToList()
	if err := c.store.Update(i, Record{Fields: draft}); err != nil {
		c.mu.Unlock()
		c.cfg.Alert("danger", err.Error())
		return err
	}
	delete(c.editing, key)
	c.cfg.View.CloseEditor(i)
	Reconcile(c.cfg.View, c.cfg.Kind, c.store.ToList())
	c.busy[key] = true
	c.mu.Unlock()

	return c.submit(ctx, key, snapshot, "")
}

// Delete asks for confirmation, removes the row optimistically and submits
// the shrunk list. Declining the confirmation leaves everything untouched.
func (c *Controller) Delete(ctx context.Context, key string) error {
	if !c.cfg.Confirm("Are you sure you want to delete this entry?") {
		return nil
	}
	c.mu.Lock()
	if c.busy[key] {
		c.mu.Unlock()
		return nil
	}
	i := c.store.IndexOf(key)
	if i < 0 {
		c.mu.Unlock()
		return nil
	}
	snapshot := c.store.ToList()
	if err := c.store.Remove(i); err != nil {
		c.mu.Unlock()
		return err
	}
	delete(c.editing, key)
	Reconcile(c.cfg.View, c.cfg.Kind, c.store.ToList())
	c.busy[key] = true
	c.mu.Unlock()

	return c.submit(ctx, key, snapshot, "")
}

// Add validates the "new entry" form, appends the record and submits. The
// add form is cleared only after the server accepts the list.
func (c *Controller) Add(ctx context.Context, fields map[string]string) error {
	c.mu.Lock()
	if c.busy[addKey] {
		c.mu.Unlock()
		return nil
	}
	snapshot := c.store.ToList()
	if err := c.store.Add(Record{Fields: fields}); err != nil {
		c.mu.Unlock()
		c.cfg.Alert("danger", err.Error())
		return err
	}
	Reconcile(c.cfg.View, c.cfg.Kind, c.store.ToList())
	c.busy[addKey] = true
	c.mu.Unlock()

	return c.submit(ctx, addKey, snapshot, "clear-add")
}

// PreviewDates recomputes the live duration text for a dated row whenever
// either date field changes. Nothing is persisted until Save.
func (c *Controller) PreviewDates(key string, start, end *time.Time) {
	if !c.cfg.Kind.Dated() {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if i := c.store.IndexOf(key); i >= 0 {
		c.cfg.View.SetSummary(i, Duration(start, end), Summary(start, end))
	}
}

// submit sends the full current list and finishes the operation: re-render
// from the echo on success, roll back to the snapshot on failure. Only the
// most recently issued submission gets to re-render, so a slow stale
// response cannot clobber a newer list.
func (c *Controller) submit(ctx context.Context, key string, snapshot []Record, onSuccess string) error {
	c.mu.Lock()
	c.seq++
	issued := c.seq
	local := c.store.ToList()
	c.mu.Unlock()

	res, err := c.cfg.Gateway.Submit(ctx, c.cfg.Kind, local)

	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.busy, key)
	stale := issued != c.seq

	if err != nil {
		if !stale {
			c.store.Replace(snapshot)
			Reconcile(c.cfg.View, c.cfg.Kind, c.store.ToList())
		}
		c.cfg.Alert("danger", err.Error())
		return err
	}
	if stale {
		return nil
	}
	if res.Records != nil {
		c.store.Replace(MergeKeys(local, res.Records))
	}
	Reconcile(c.cfg.View, c.cfg.Kind, c.store.ToList())
	if onSuccess == "clear-add" {
		c.cfg.View.ClearAddForm()
	}
	if res.Message != "" {
		c.cfg.Alert("success", res.Message)
	}
	return nil
}
