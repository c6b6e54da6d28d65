// Package sync keeps the calendar store in step with the remote
// schedule and user APIs: it refetches events when the view or date
// changes and runs the optimistic create/reschedule/delete flows.
package sync

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/careviah/care-scheduler/internal/calendar"
	"github.com/careviah/care-scheduler/internal/calendar/store"
	"github.com/careviah/care-scheduler/internal/pkg/validator"
	"go.uber.org/zap"
)

type scheduleAPI interface {
	Schedules(ctx context.Context, agencyID string, from, to time.Time) ([]calendar.Event, error)
	CreateSchedule(ctx context.Context, e calendar.Event) (calendar.Event, error)
	UpdateSchedule(ctx context.Context, e calendar.Event) (calendar.Event, error)
	DeleteSchedule(ctx context.Context, id string) error
}

type userAPI interface {
	FilteredActors(ctx context.Context, agencyID string) (*calendar.ActorLists, error)
}

// ValidationError carries per-field problems caught before any network
// submission.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for key, msg := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", key, msg))
	}
	return "invalid appointment: " + strings.Join(msgs, "; ")
}

type Controller struct {
	logger    *zap.SugaredLogger
	store     *store.Store
	schedules scheduleAPI
	users     userAPI
	agencyID  string

	fetchGen uint64
}

func NewController(
	logger *zap.SugaredLogger,
	st *store.Store,
	schedules scheduleAPI,
	users userAPI,
	agencyID string,
) *Controller {
	return &Controller{
		logger:    logger,
		store:     st,
		schedules: schedules,
		users:     users,
		agencyID:  agencyID,
	}
}

// Refresh fetches the schedules for the store's current display window
// and replaces the canonical event collection. A response that arrives
// after a newer Refresh started is dropped so a slow fetch can never
// overwrite fresher state.
func (c *Controller) Refresh(ctx context.Context) error {
	gen := atomic.AddUint64(&c.fetchGen, 1)

	r := c.store.Range()
	c.store.SetLoading(true)
	defer c.store.SetLoading(false)

	events, err := c.schedules.Schedules(ctx, c.agencyID, r.Start, r.End)
	if err != nil {
		c.store.SetError(err.Error())
		return fmt.Errorf("fetch schedules: %w", err)
	}

	if atomic.LoadUint64(&c.fetchGen) != gen {
		c.logger.Debugw("dropping superseded schedules response", "from", r.Start, "to", r.End)
		return nil
	}

	c.store.SetEvents(events)
	c.store.ClearError()
	return nil
}

// RefreshUsers fetches the actor populations and replaces the sidebar
// lists. Every actor arrives selected, mirroring a fresh session.
func (c *Controller) RefreshUsers(ctx context.Context) error {
	lists, err := c.users.FilteredActors(ctx, c.agencyID)
	if err != nil {
		c.store.SetError(err.Error())
		return fmt.Errorf("fetch users: %w", err)
	}

	c.store.SetCareWorkers(lists.CareWorkers)
	c.store.SetOfficeStaff(lists.OfficeStaff)
	c.store.SetClients(lists.Clients)
	return nil
}

// Navigate shifts the current date one view unit and refetches.
func (c *Controller) Navigate(ctx context.Context, dir calendar.Direction) error {
	c.store.Navigate(dir)
	return c.Refresh(ctx)
}

// SetView switches the active view granularity and refetches.
func (c *Controller) SetView(ctx context.Context, view calendar.View) error {
	c.store.SetActiveView(view)
	return c.Refresh(ctx)
}

// CommitReschedule persists a drag-rescheduled event. The update is
// merged optimistically so the UI reflects the new time immediately;
// on success the canonical response reconciles derived fields, on
// failure the prior event is restored (explicit rollback) and the
// error is returned for the caller to surface.
func (c *Controller) CommitReschedule(ctx context.Context, updated calendar.Event) error {
	if err := validateEvent(updated); err != nil {
		return err
	}

	prior, ok := c.store.Event(updated.ID)
	if !ok {
		return fmt.Errorf("unknown event %q", updated.ID)
	}

	c.store.UpdateEvent(updated)

	canonical, err := c.schedules.UpdateSchedule(ctx, updated)
	if err != nil {
		c.store.UpdateEvent(prior)
		c.store.SetError(err.Error())
		return fmt.Errorf("update schedule: %w", err)
	}

	c.store.UpdateEvent(canonical)
	c.store.ClearError()
	return nil
}

// CreateAppointment persists a new event and appends the canonical
// record to the store.
func (c *Controller) CreateAppointment(ctx context.Context, e calendar.Event) error {
	if err := validateEvent(e); err != nil {
		return err
	}

	canonical, err := c.schedules.CreateSchedule(ctx, e)
	if err != nil {
		c.store.SetError(err.Error())
		return fmt.Errorf("create schedule: %w", err)
	}

	c.store.AddEvent(canonical)
	c.store.ClearError()
	return nil
}

// DeleteAppointment removes an event after the backend confirms.
func (c *Controller) DeleteAppointment(ctx context.Context, id string) error {
	if err := c.schedules.DeleteSchedule(ctx, id); err != nil {
		c.store.SetError(err.Error())
		return fmt.Errorf("delete schedule: %w", err)
	}

	c.store.DeleteEvent(id)
	c.store.ClearError()
	return nil
}

func validateEvent(e calendar.Event) error {
	v := validator.New()

	v.Check(e.ClientID != "", "client_id", "client must be set")
	v.Check(e.ResourceID != "", "resource_id", "staff member must be set")
	v.Check(!e.Start.IsZero(), "start", "start must be set")
	v.Check(e.End.After(e.Start), "end", "end must be after start")
	v.Check(e.Start.Year() == e.Date.Year() && e.Start.YearDay() == e.Date.YearDay(),
		"date", "start must fall on the anchor date")

	if !v.Valid() {
		return &ValidationError{Fields: v.Errors}
	}
	return nil
}
