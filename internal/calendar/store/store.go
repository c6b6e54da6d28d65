// Package store is the process-wide calendar state container: the
// canonical server-confirmed events, the derived filtered subset, the
// actor lists and the current view/date/sidebar selection. Mutations
// are synchronous and last-writer-wins; the filtered subset is fully
// recomputed on every mutation that can affect it, never patched.
package store

import (
	"sync"
	"time"

	"github.com/careviah/care-scheduler/internal/calendar"
	"go.uber.org/zap"
)

// serializedEvent mirrors calendar.Event with its instants flattened to
// RFC3339 strings, the stable form events are held in between reads.
type serializedEvent struct {
	calendar.Event
	start string
	end   string
	date  string
}

type Store struct {
	mu     sync.RWMutex
	logger *zap.SugaredLogger

	events   []serializedEvent
	filtered []serializedEvent

	careWorkers []calendar.Actor
	officeStaff []calendar.Actor
	clients     []calendar.Actor

	activeView  calendar.View
	currentDate string
	sidebarMode calendar.SidebarMode

	loading bool
	lastErr string
}

func New(logger *zap.SugaredLogger) *Store {
	return &Store{
		logger:      logger,
		activeView:  calendar.ViewWeek,
		currentDate: time.Now().Format(time.RFC3339),
		sidebarMode: calendar.SidebarClients,
	}
}

// SetEvents replaces the canonical event collection.
func (s *Store) SetEvents(events []calendar.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = make([]serializedEvent, len(events))
	for i, e := range events {
		s.events[i] = serialize(e)
	}
	s.recomputeFiltered()
}

// AddEvent appends a newly persisted event.
func (s *Store) AddEvent(e calendar.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, serialize(e))
	s.recomputeFiltered()
}

// UpdateEvent overwrites the stored event with the same id. A miss is a
// no-op: if two edits race, the later response simply wins.
func (s *Store) UpdateEvent(e calendar.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.events {
		if s.events[i].ID == e.ID {
			s.events[i] = serialize(e)
			break
		}
	}
	s.recomputeFiltered()
}

// DeleteEvent removes the event with the given id, if present.
func (s *Store) DeleteEvent(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.events[:0]
	for _, e := range s.events {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	s.events = kept
	s.recomputeFiltered()
}

// Event returns the canonical event with the given id.
func (s *Store) Event(id string) (calendar.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.events {
		if e.ID == id {
			return s.deserialize(e), true
		}
	}
	return calendar.Event{}, false
}

// Events returns the canonical event collection.
func (s *Store) Events() []calendar.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.deserializeAll(s.events)
}

// FilteredEvents returns the subset visible under the current sidebar
// mode and actor selection.
func (s *Store) FilteredEvents() []calendar.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.deserializeAll(s.filtered)
}

func (s *Store) SetCareWorkers(actors []calendar.Actor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.careWorkers = copyActors(actors)
	s.recomputeFiltered()
}

func (s *Store) SetOfficeStaff(actors []calendar.Actor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.officeStaff = copyActors(actors)
	s.recomputeFiltered()
}

func (s *Store) SetClients(actors []calendar.Actor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients = copyActors(actors)
	s.recomputeFiltered()
}

func (s *Store) CareWorkers() []calendar.Actor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyActors(s.careWorkers)
}

func (s *Store) OfficeStaff() []calendar.Actor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyActors(s.officeStaff)
}

func (s *Store) Clients() []calendar.Actor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyActors(s.clients)
}

// ToggleSelection flips the selected flag of one actor in the given
// population.
func (s *Store) ToggleSelection(mode calendar.SidebarMode, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.actorsFor(mode) {
		if a.ID == id {
			a.Selected = !a.Selected
			break
		}
	}
	s.recomputeFiltered()
}

// SetAllSelected marks every actor of the given population selected or
// deselected.
func (s *Store) SetAllSelected(mode calendar.SidebarMode, selected bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.actorsFor(mode) {
		a.Selected = selected
	}
	s.recomputeFiltered()
}

func (s *Store) SetSidebarMode(mode calendar.SidebarMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sidebarMode = mode
	s.recomputeFiltered()
}

func (s *Store) SidebarMode() calendar.SidebarMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sidebarMode
}

func (s *Store) SetActiveView(view calendar.View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeView = view
}

func (s *Store) ActiveView() calendar.View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeView
}

func (s *Store) SetCurrentDate(t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentDate = t.Format(time.RFC3339)
}

// CurrentDate returns the stored reference date. A malformed stored
// value falls back to now; the substitution is logged, never surfaced.
func (s *Store) CurrentDate() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := calendar.ParseInstant(s.currentDate)
	if !ok {
		s.logger.Warnw("invalid stored current date, falling back to now", "value", s.currentDate)
	}
	return t
}

// Navigate moves the current date one unit in the given direction for
// the active view.
func (s *Store) Navigate(dir calendar.Direction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := calendar.ParseInstant(s.currentDate)
	if !ok {
		s.logger.Warnw("invalid stored current date, falling back to now", "value", s.currentDate)
	}
	s.currentDate = calendar.Navigate(t, s.activeView, dir).Format(time.RFC3339)
}

// Range returns the display window for the current date and view.
func (s *Store) Range() calendar.Range {
	return calendar.ComputeRange(s.CurrentDate(), s.ActiveView())
}

func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = loading
}

// Loading is advisory only; it never locks out other interactions.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Store) SetError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = msg
}

func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = ""
}

func (s *Store) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// recomputeFiltered rebuilds the filtered subset from scratch. Called
// under the write lock by every mutation touching events, actors or the
// sidebar mode, so the derived collection can never go stale.
func (s *Store) recomputeFiltered() {
	events := s.deserializeAll(s.events)
	filtered := calendar.FilterEvents(events, s.careWorkers, s.officeStaff, s.clients, s.sidebarMode)

	s.filtered = make([]serializedEvent, len(filtered))
	for i, e := range filtered {
		s.filtered[i] = serialize(e)
	}
}

func (s *Store) actorsFor(mode calendar.SidebarMode) []*calendar.Actor {
	var actors []calendar.Actor
	switch mode {
	case calendar.SidebarCareWorkers:
		actors = s.careWorkers
	case calendar.SidebarOfficeStaff:
		actors = s.officeStaff
	default:
		actors = s.clients
	}

	refs := make([]*calendar.Actor, len(actors))
	for i := range actors {
		refs[i] = &actors[i]
	}
	return refs
}

func serialize(e calendar.Event) serializedEvent {
	return serializedEvent{
		Event: e,
		start: e.Start.Format(time.RFC3339),
		end:   e.End.Format(time.RFC3339),
		date:  e.Date.Format(time.RFC3339),
	}
}

func (s *Store) deserialize(se serializedEvent) calendar.Event {
	e := se.Event

	var ok bool
	if e.Start, ok = calendar.ParseInstant(se.start); !ok {
		s.logger.Warnw("invalid stored event start, falling back to now", "event_id", e.ID, "value", se.start)
	}
	if e.End, ok = calendar.ParseInstant(se.end); !ok {
		s.logger.Warnw("invalid stored event end, falling back to now", "event_id", e.ID, "value", se.end)
	}
	if e.Date, ok = calendar.ParseInstant(se.date); !ok {
		s.logger.Warnw("invalid stored event date, falling back to now", "event_id", e.ID, "value", se.date)
	}

	return e
}

func (s *Store) deserializeAll(events []serializedEvent) []calendar.Event {
	res := make([]calendar.Event, len(events))
	for i, e := range events {
		res[i] = s.deserialize(e)
	}
	return res
}

func copyActors(actors []calendar.Actor) []calendar.Actor {
	return append([]calendar.Actor(nil), actors...)
}
