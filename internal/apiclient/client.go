// Package apiclient consumes the scheduling REST API and adapts wire
// records into the calendar's normalized event model. Malformed dates
// never fail a sync; they are logged and substituted so one bad record
// cannot blank the whole calendar.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/careviah/care-scheduler/internal/model"
	"go.uber.org/zap"
)

const requestTimeout = 15 * time.Second

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *zap.SugaredLogger
}

func NewClient(logger *zap.SugaredLogger, baseURL, token string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     logger,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, dst interface{}) error {
	var reqBody io.Reader
	if body != nil {
		js, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(js)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.errorFromResponse(resp)
	}

	if dst == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// errorFromResponse turns an error payload back into a typed error.
// 404 maps to model.ErrNoRecord and 409 to a conflict error naming the
// double-booked party.
func (c *Client) errorFromResponse(resp *http.Response) error {
	payload := &struct {
		Error interface{} `json:"error"`
	}{}

	message := resp.Status
	if err := json.NewDecoder(resp.Body).Decode(payload); err == nil {
		if s, ok := payload.Error.(string); ok && s != "" {
			message = s
		}
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return model.ErrNoRecord
	case http.StatusConflict:
		return parseConflict(message)
	default:
		return fmt.Errorf("api error (%d): %s", resp.StatusCode, message)
	}
}

const conflictSuffix = " is already booked for this time"

func parseConflict(message string) error {
	party := strings.TrimSuffix(message, conflictSuffix)

	switch {
	case strings.HasPrefix(party, "care worker "):
		return &model.ScheduleConflictError{
			Party: strings.TrimPrefix(party, "care worker "),
			Role:  "care worker",
		}
	case strings.HasPrefix(party, "client "):
		return &model.ScheduleConflictError{
			Party: strings.TrimPrefix(party, "client "),
			Role:  "client",
		}
	default:
		return &model.ScheduleConflictError{Party: party}
	}
}
