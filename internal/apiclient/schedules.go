package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/careviah/care-scheduler/internal/calendar"
	"github.com/careviah/care-scheduler/internal/model"
)

const dateFormat = "2006-01-02"

type scheduleDTO struct {
	ID                  string  `json:"id"`
	Title               string  `json:"title"`
	ClientID            string  `json:"client_id"`
	UserID              string  `json:"user_id"`
	Date                string  `json:"date"`
	StartTime           string  `json:"start_time"`
	EndTime             string  `json:"end_time"`
	Type                string  `json:"type"`
	Status              string  `json:"status"`
	Notes               string  `json:"notes"`
	ChargeRate          float64 `json:"charge_rate"`
	Color               string  `json:"color"`
	ClientFirstName     string  `json:"client_first_name"`
	CareWorkerFirstName string  `json:"care_worker_first_name"`
}

type scheduleReq struct {
	ClientID   string  `json:"client_id"`
	UserID     string  `json:"user_id"`
	Date       string  `json:"date"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	Type       string  `json:"type"`
	Status     string  `json:"status"`
	Notes      string  `json:"notes"`
	ChargeRate float64 `json:"charge_rate"`
	Color      string  `json:"color"`
}

func (c *Client) Schedules(ctx context.Context, agencyID string, from, to time.Time) ([]calendar.Event, error) {
	q := url.Values{}
	q.Set("agencyId", agencyID)
	q.Set("startDate", from.Format(dateFormat))
	q.Set("endDate", to.Format(dateFormat))

	resp := &struct {
		Data []scheduleDTO `json:"data"`
	}{}

	if err := c.do(ctx, http.MethodGet, "/schedules?"+q.Encode(), nil, resp); err != nil {
		return nil, fmt.Errorf("fetch schedules: %w", err)
	}

	events := make([]calendar.Event, len(resp.Data))
	for i, dto := range resp.Data {
		events[i] = c.mapToEvent(dto)
	}

	return events, nil
}

func (c *Client) CreateSchedule(ctx context.Context, e calendar.Event) (calendar.Event, error) {
	var dto scheduleDTO
	if err := c.do(ctx, http.MethodPost, "/schedules", mapToScheduleReq(e), &dto); err != nil {
		return calendar.Event{}, fmt.Errorf("create schedule: %w", err)
	}

	return c.mapToEvent(dto), nil
}

func (c *Client) UpdateSchedule(ctx context.Context, e calendar.Event) (calendar.Event, error) {
	var dto scheduleDTO
	if err := c.do(ctx, http.MethodPut, "/schedules/"+e.ID, mapToScheduleReq(e), &dto); err != nil {
		return calendar.Event{}, fmt.Errorf("update schedule: %w", err)
	}

	return c.mapToEvent(dto), nil
}

func (c *Client) DeleteSchedule(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/schedules/"+id, nil, nil); err != nil {
		return fmt.Errorf("delete schedule: %w", err)
	}

	return nil
}

// mapToEvent normalizes a wire schedule into a renderable event. A
// record with an unparsable date is anchored at the current day rather
// than dropped; types, statuses and colors fall back to their
// defaults.
func (c *Client) mapToEvent(dto scheduleDTO) calendar.Event {
	date, err := time.Parse(dateFormat, dto.Date)
	if err != nil {
		c.logger.Warnw("schedule has invalid date, substituting today",
			"id", dto.ID, "date", dto.Date)
		now := time.Now().UTC()
		date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}

	start := combine(date, dto.StartTime, 9, 0)
	end := combine(date, dto.EndTime, 10, 0)

	scheduleType := model.ScheduleType(dto.Type)
	if !model.KnownScheduleType(scheduleType) {
		scheduleType = model.ScheduleTypeAppointment
	}

	status := model.ScheduleStatus(dto.Status)
	if !model.KnownScheduleStatus(status) {
		status = model.ScheduleStatusPending
	}

	title := dto.Title
	if title == "" {
		title = dto.ClientFirstName + " with " + dto.CareWorkerFirstName
	}

	color := dto.Color
	if color == "" {
		color = calendar.ColorFor(scheduleType)
	}

	return calendar.Event{
		ID:         dto.ID,
		Title:      title,
		Start:      start,
		End:        end,
		Date:       date,
		StartTime:  start.Format("15:04"),
		EndTime:    end.Format("15:04"),
		ResourceID: dto.UserID,
		ClientID:   dto.ClientID,
		Type:       scheduleType,
		Status:     status,
		Notes:      dto.Notes,
		ChargeRate: dto.ChargeRate,
		Color:      color,
	}
}

// combine anchors a wall-clock "HH:MM" on the given date, falling back
// to the provided default hour and minute when the string is malformed.
func combine(date time.Time, hhmm string, defaultHour, defaultMinute int) time.Time {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Date(date.Year(), date.Month(), date.Day(), defaultHour, defaultMinute, 0, 0, date.Location())
	}

	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location())
}

func mapToScheduleReq(e calendar.Event) *scheduleReq {
	return &scheduleReq{
		ClientID:   e.ClientID,
		UserID:     e.ResourceID,
		Date:       e.Date.Format(dateFormat),
		StartTime:  e.StartTime,
		EndTime:    e.EndTime,
		Type:       string(e.Type),
		Status:     string(e.Status),
		Notes:      e.Notes,
		ChargeRate: e.ChargeRate,
		Color:      e.Color,
	}
}
