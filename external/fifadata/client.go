package fifadata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/TobiasMoreno/wc-2026-be/internal/platform/logging"
	"github.com/TobiasMoreno/wc-2026-be/internal/platform/resilience"
	"github.com/TobiasMoreno/wc-2026-be/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

const (
	defaultBaseURL      = "https://api.fifa.com/api/v3"
	schedulePath        = "/calendar/matches"
	responseBodyMaxSize = 6 << 20
)

var errFIFATransient = crerr.New("fifa feed transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client pulls the tournament schedule from the official feed. It
// implements usecase.ScheduleFeed.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		maxRetries:     maxInt(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

func (c *Client) FetchSchedule(ctx context.Context) (usecase.ExternalSchedule, error) {
	var envelope scheduleEnvelope
	if err := c.doJSON(ctx, schedulePath, &envelope); err != nil {
		return usecase.ExternalSchedule{}, fmt.Errorf("fetch schedule: %w", err)
	}

	teams := make([]usecase.ExternalTeam, 0, len(envelope.Teams))
	for _, item := range envelope.Teams {
		teams = append(teams, usecase.ExternalTeam{
			ID:         strings.TrimSpace(item.ID),
			Name:       strings.TrimSpace(item.Name),
			FIFACode:   strings.TrimSpace(item.FIFACode),
			FlagURL:    strings.TrimSpace(item.FlagURL),
			GroupLabel: strings.TrimSpace(item.GroupLabel),
		})
	}

	matches := make([]usecase.ExternalMatch, 0, len(envelope.Matches))
	for _, item := range envelope.Matches {
		kickoffAt, err := parseFeedTime(item.KickoffAt)
		if err != nil {
			return usecase.ExternalSchedule{}, fmt.Errorf("parse kickoff for match %q: %w", item.ID, err)
		}
		matches = append(matches, usecase.ExternalMatch{
			ID:         strings.TrimSpace(item.ID),
			HomeTeamID: strings.TrimSpace(item.HomeTeamID),
			AwayTeamID: strings.TrimSpace(item.AwayTeamID),
			KickoffAt:  kickoffAt,
			City:       strings.TrimSpace(item.City),
			Stadium:    strings.TrimSpace(item.Stadium),
			Phase:      strings.TrimSpace(item.Phase),
			GroupLabel: strings.TrimSpace(item.GroupLabel),
		})
	}

	return usecase.ExternalSchedule{Teams: teams, Matches: matches}, nil
}

func (c *Client) doJSON(ctx context.Context, path string, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "fifa feed circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: schedule feed is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	fullURL := c.baseURL + path
	out, err, _ := c.flight.Do(path, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && crerr.Is(reqErr, errFIFATransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode feed payload: %w", err)
	}

	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %v", errFIFATransient, err)
		} else {
			raw, readErr := readBody(resp.Body)
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = fmt.Errorf("%w: read response body: %v", errFIFATransient, readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case isRetryableStatus(resp.StatusCode):
				lastErr = fmt.Errorf("%w: feed status=%d", errFIFATransient, resp.StatusCode)
			default:
				return nil, fmt.Errorf("feed status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("feed request failed")
	}
	c.logger.WarnContext(ctx, "fifa feed request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func readBody(body io.Reader) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if _, err := io.Copy(buf, io.LimitReader(body, responseBodyMaxSize)); err != nil {
		return nil, err
	}

	out := make([]byte, len(buf.B))
	copy(out, buf.B)
	return out, nil
}

func isRetryableStatus(status int) bool {
	switch status {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

func abbreviateBody(raw []byte) string {
	const maxLen = 256
	value := strings.TrimSpace(string(raw))
	if len(value) > maxLen {
		return value[:maxLen] + "..."
	}
	return value
}

func parseFeedTime(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, fmt.Errorf("timestamp is empty")
	}

	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05Z07:00",
		"2006-01-02 15:04:05",
	}
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported timestamp %q", raw)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

type scheduleEnvelope struct {
	Teams   []teamItem  `json:"teams"`
	Matches []matchItem `json:"matches"`
}

type teamItem struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	FIFACode   string `json:"fifaCode"`
	FlagURL    string `json:"flagUrl"`
	GroupLabel string `json:"groupLabel"`
}

type matchItem struct {
	ID         string `json:"id"`
	HomeTeamID string `json:"homeTeamId"`
	AwayTeamID string `json:"awayTeamId"`
	KickoffAt  string `json:"kickoffAt"`
	City       string `json:"city"`
	Stadium    string `json:"stadium"`
	Phase      string `json:"phase"`
	GroupLabel string `json:"groupLabel"`
}
