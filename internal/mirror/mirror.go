// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mirror

import (
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/work-diary/models"
)

// Mutation changes an entry in place. It is applied on top of the confirmed
// copy and must tolerate being applied more than once to different copies.
type Mutation func(*models.Diary)

type pending struct {
	seq      uint64
	apply    Mutation
	inFlight bool
}

type overlayKey struct {
	userID string
	day    string
}

// Mirror is safe for concurrent use.
type Mirror struct {
	mu sync.RWMutex

	order     []string
	confirmed map[string]models.Diary
	pending   map[string][]pending
	overlays  map[overlayKey]string

	view     View
	pages    Pages
	revision uint64

	loc *time.Location
}

// New returns an empty mirror. loc decides the calendar day of entries when
// matching overlays and day lookups.
func New(loc *time.Location) *Mirror {
	if loc == nil {
		loc = time.Local
	}
	return &Mirror{
		confirmed: make(map[string]models.Diary),
		pending:   make(map[string][]pending),
		overlays:  make(map[overlayKey]string),
		loc:       loc,
	}
}

// Snapshot returns the entries of the active view in display order, with
// pending mutations and overlays applied.
func (m *Mirror) Snapshot() []models.Diary {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Diary, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.current(id))
	}
	return out
}

// Get returns the optimistic state of one entry.
func (m *Mirror) Get(id string) (models.Diary, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, ok := m.confirmed[id]; !ok {
		return models.Diary{}, false
	}
	return m.current(id), true
}

// Confirmed returns the last server-confirmed copy of an entry.
func (m *Mirror) Confirmed(id string) (models.Diary, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	d, ok := m.confirmed[id]
	if !ok {
		return models.Diary{}, false
	}
	return d.Clone(), true
}

// FindByDay returns userID's entry for day, if the view holds it.
func (m *Mirror) FindByDay(userID, day string) (models.Diary, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, id := range m.order {
		d := m.confirmed[id]
		if d.User.ID == userID && d.Day(m.loc) == day {
			return m.current(id), true
		}
	}
	return models.Diary{}, false
}

// Apply records an optimistic mutation of entry id under seq. It returns
// false, and records nothing, when the entry is not in the mirror.
func (m *Mirror) Apply(id string, seq uint64, fn Mutation) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.confirmed[id]; !ok {
		return false
	}
	m.pending[id] = append(m.pending[id], pending{seq: seq, apply: fn})
	m.revision++
	return true
}

// Dispatch marks mutation seq of entry id as sent to the server. Until it
// is confirmed or discarded, a refetch cannot tell whether the server copy
// already contains it.
func (m *Mirror) Dispatch(id string, seq uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.pending[id] {
		if m.pending[id][i].seq == seq {
			m.pending[id][i].inFlight = true
			return
		}
	}
}

// Confirm replaces the confirmed copy of the entry with the server's
// representation and retires mutation seq. Mutations still pending are
// replayed on top of the new copy. An entry that left the view meanwhile is
// not re-added.
func (m *Mirror) Confirm(id string, seq uint64, entry models.Diary) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.retire(id, seq)
	if _, ok := m.confirmed[id]; ok {
		m.confirmed[id] = entry.Clone()
	}
	m.revision++
}

// Discard drops mutation seq, reverting the entry to its confirmed copy with
// the remaining pending mutations replayed.
func (m *Mirror) Discard(id string, seq uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.retire(id, seq)
	m.revision++
}

// Revert drops every pending mutation of entry id.
func (m *Mirror) Revert(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.pending, id)
	m.revision++
}

// Replace installs entry as the confirmed copy of an entry already in the
// mirror. It reports false when the entry is not held.
func (m *Mirror) Replace(entry models.Diary) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.confirmed[entry.ID]; !ok {
		return false
	}
	m.confirmed[entry.ID] = entry.Clone()
	m.revision++
	return true
}

// Upsert stores a confirmed entry outside of any pending mutation. An entry
// that is not yet in the mirror is prepended when the active view would
// list it.
func (m *Mirror) Upsert(entry models.Diary) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.confirmed[entry.ID]; ok {
		m.confirmed[entry.ID] = entry.Clone()
		m.revision++
		return
	}
	if !m.accepts(entry) {
		return
	}
	m.confirmed[entry.ID] = entry.Clone()
	m.order = slices.Insert(m.order, 0, entry.ID)
	m.revision++
}

// ReplaceAll installs a freshly fetched page as the confirmed state of view.
// Pending mutations of entries that are still listed are kept and replayed;
// those of entries that dropped out are forgotten. An entry with a
// dispatched mutation keeps its previous confirmed copy, so the mutation is
// not shown twice; its confirmation brings the server copy.
func (m *Mirror) ReplaceAll(view View, page models.DiaryPage) {
	m.mu.Lock()
	defer m.mu.Unlock()

	confirmed := make(map[string]models.Diary, len(page.Diaries))
	order := make([]string, 0, len(page.Diaries))
	for _, d := range page.Diaries {
		if _, dup := confirmed[d.ID]; dup {
			continue
		}
		confirmed[d.ID] = d.Clone()
		order = append(order, d.ID)
	}

	for id, ops := range m.pending {
		if _, ok := confirmed[id]; !ok {
			delete(m.pending, id)
			continue
		}
		if prev, ok := m.confirmed[id]; ok && slices.ContainsFunc(ops, func(p pending) bool { return p.inFlight }) {
			confirmed[id] = prev
		}
	}

	m.confirmed = confirmed
	m.order = order
	m.view = view
	m.pages = Pages{Total: page.TotalPages, Current: page.CurrentPage}
	m.revision++
}

// View returns the active view.
func (m *Mirror) View() View {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.view
}

// SetView changes the active view without fetching. Entries stay until the
// next ReplaceAll.
func (m *Mirror) SetView(view View) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.view = view
	m.revision++
}

func (m *Mirror) Pages() Pages {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pages
}

// Revision increases with every change of the mirror.
func (m *Mirror) Revision() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.revision
}

// PendingCount returns the number of unconfirmed mutations of entry id.
func (m *Mirror) PendingCount(id string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.pending[id])
}

// SetOverlay shows text as the body of userID's entry for day until it is
// cleared.
func (m *Mirror) SetOverlay(userID, day, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.overlays[overlayKey{userID, day}] = text
	m.revision++
}

// ClearOverlay removes the overlay only if it still shows text, so that a
// newer keystroke is not lost when an older write completes.
func (m *Mirror) ClearOverlay(userID, day, text string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := overlayKey{userID, day}
	if current, ok := m.overlays[key]; !ok || current != text {
		return false
	}
	delete(m.overlays, key)
	m.revision++
	return true
}

// Overlay returns the pending body text for userID's entry of day.
func (m *Mirror) Overlay(userID, day string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	text, ok := m.overlays[overlayKey{userID, day}]
	return text, ok
}

// current must be called with mu held.
func (m *Mirror) current(id string) models.Diary {
	d := m.confirmed[id].Clone()
	for _, p := range m.pending[id] {
		p.apply(&d)
	}
	if text, ok := m.overlays[overlayKey{d.User.ID, d.Day(m.loc)}]; ok {
		d.Content = text
	}
	return d
}

// retire must be called with mu held.
func (m *Mirror) retire(id string, seq uint64) {
	ops := m.pending[id]
	ops = slices.DeleteFunc(ops, func(p pending) bool { return p.seq == seq })
	if len(ops) == 0 {
		delete(m.pending, id)
		return
	}
	m.pending[id] = ops
}

// accepts must be called with mu held.
func (m *Mirror) accepts(entry models.Diary) bool {
	if !m.view.firstPage() {
		return false
	}
	if m.view.UserID != "" && m.view.UserID != entry.User.ID {
		return false
	}
	if m.view.Date != "" && m.view.Date != entry.Day(m.loc) {
		return false
	}
	return true
}
