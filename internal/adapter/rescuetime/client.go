package rescuetime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"rescuetime-bar/internal/domain"
	"rescuetime-bar/internal/ports"
)

const (
	DefaultBaseURL   = "https://www.rescuetime.com"
	defaultUserAgent = "rescuetime-bar/1.0"
	defaultTimeout   = 30 * time.Second
	maxErrorBody     = 200

	dataPath  = "/anapi/data"
	pulsePath = "/anapi/current_productivity_pulse.json"
)

var _ ports.ActivityClient = (*Client)(nil)

// Client implements ports.ActivityClient using the RescueTime Analytic API.
type Client struct {
	baseURL *url.URL
	apiKey  string
	http    *http.Client
	log     *slog.Logger
}

// NewClient builds a Client. An empty baseURL selects DefaultBaseURL and a
// non-positive timeout selects 30s.
func NewClient(baseURL, apiKey string, timeout time.Duration, log *slog.Logger) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("parse base url %q: scheme and host required", baseURL)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		baseURL: u,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}, nil
}

// ListActivities fetches the activity rows for the calendar day of day, in
// the order the API returns them (descending time spent).
// GET /anapi/data?format=json&resolution_time=day&restrict_kind=activity&...
func (c *Client) ListActivities(ctx context.Context, day time.Time) ([]domain.Activity, error) {
	date := day.Format("2006-01-02")
	q := url.Values{}
	q.Set("format", "json")
	q.Set("key", c.apiKey)
	q.Set("resolution_time", "day")
	q.Set("restrict_begin", date)
	q.Set("restrict_end", date)
	q.Set("restrict_kind", "activity")

	var raw Table
	if err := c.get(ctx, dataPath, q, &raw); err != nil {
		return nil, err
	}
	if raw.Error != "" {
		return nil, fmt.Errorf("rescuetime: %s", raw.Error)
	}
	records, err := Extract(raw)
	if err != nil {
		return nil, err
	}
	activities, err := ParseActivities(records)
	if err != nil {
		return nil, err
	}
	c.log.Debug("fetched activities", slog.String("date", date), slog.Int("count", len(activities)))
	return activities, nil
}

// CurrentPulse fetches the productivity pulse for today.
func (c *Client) CurrentPulse(ctx context.Context) (domain.Pulse, error) {
	q := url.Values{}
	q.Set("key", c.apiKey)

	var raw rawPulse
	if err := c.get(ctx, pulsePath, q, &raw); err != nil {
		return domain.Pulse{}, err
	}
	if raw.Error != "" {
		return domain.Pulse{}, fmt.Errorf("rescuetime: %s", raw.Error)
	}
	color := strings.TrimSpace(raw.Color)
	if color == "" {
		return domain.Pulse{}, &FieldError{Where: "pulse", Field: "color", Err: errMissingField}
	}
	p := domain.Pulse{Color: color}
	if raw.Pulse != nil {
		p.Score = *raw.Pulse
	}
	return p, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, dest any) error {
	if c.apiKey == "" {
		return errors.New("missing api key")
	}
	u := *c.baseURL
	u.Path = c.baseURL.Path + path
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", defaultUserAgent)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		// url.Error carries the full URL, including the key.
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return fmt.Errorf("get %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.Debug("rescuetime request",
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("dur", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("rescuetime: %s returned status %d: %s", path, resp.StatusCode, errorBody(body))
	}
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(dest); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// errorBody folds an error response onto one line of at most maxErrorBody
// runes.
func errorBody(b []byte) string {
	s := strings.Join(strings.Fields(string(b)), " ")
	if r := []rune(s); len(r) > maxErrorBody {
		s = string(r[:maxErrorBody]) + "…"
	}
	return s
}

// rawPulse mirrors current_productivity_pulse.json.
type rawPulse struct {
	Pulse *float64 `json:"pulse"`
	Color string   `json:"color"`
	Error string   `json:"error"`
}
