// ABOUTME: HTTP client for the remote metric row store.
// ABOUTME: Row-shaped reads/upserts with status codes mapped to typed errors.
package remote

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/harperreed/stride/internal/models"
)

// Client talks to the metric store API. Retry is handled by the caller's
// retry wrapper, not by the underlying HTTP client.
type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

// NewClient creates a store client for the given base URL and auth token.
func NewClient(baseURL, authToken string, logger *zap.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(15 * time.Second).
		SetAuthToken(authToken).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		http:   httpClient,
		logger: logger,
	}
}

// ReadingsForDay fetches every reading recorded for (user, date).
func (c *Client) ReadingsForDay(ctx context.Context, userID, date string) ([]*models.MetricReading, error) {
	op := "readings_for_day"
	var readings []*models.MetricReading

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("date", date).
		SetResult(&readings).
		Get(fmt.Sprintf("/v1/users/%s/readings", userID))
	if err := c.checkResponse(op, userID, resp, err); err != nil {
		return nil, err
	}

	return readings, nil
}

// UpsertReading writes a reading keyed by (user, date, metric type).
// Last writer wins; repeated upserts overwrite, they never append.
func (c *Client) UpsertReading(ctx context.Context, r *models.MetricReading) error {
	op := "upsert_reading"

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(r).
		Put(fmt.Sprintf("/v1/users/%s/readings/%s", r.UserID, r.MetricType))
	return c.checkResponse(op, r.UserID, resp, err)
}

// UpsertDailyTotal writes a daily total keyed by (user, date).
func (c *Client) UpsertDailyTotal(ctx context.Context, t models.DailyTotal) error {
	op := "upsert_daily_total"

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(t).
		Put(fmt.Sprintf("/v1/users/%s/totals/%s", t.UserID, t.Date))
	return c.checkResponse(op, t.UserID, resp, err)
}

// DailyTotals fetches a user's daily totals in the inclusive [from, to]
// date range.
func (c *Client) DailyTotals(ctx context.Context, userID, from, to string) ([]models.DailyTotal, error) {
	op := "daily_totals"
	var totals []models.DailyTotal

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{"from": from, "to": to}).
		SetResult(&totals).
		Get(fmt.Sprintf("/v1/users/%s/totals", userID))
	if err := c.checkResponse(op, userID, resp, err); err != nil {
		return nil, err
	}

	return totals, nil
}

// Series fetches the chronological historical series for one metric,
// covering the most recent days, oldest first.
func (c *Client) Series(ctx context.Context, userID string, metricType models.MetricType, days int) ([]models.SeriesPoint, error) {
	op := "series"
	var series []models.SeriesPoint

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("days", fmt.Sprintf("%d", days)).
		SetResult(&series).
		Get(fmt.Sprintf("/v1/users/%s/series/%s", userID, metricType))
	if err := c.checkResponse(op, userID, resp, err); err != nil {
		return nil, err
	}

	return series, nil
}

// Leaderboard fetches unranked leaderboard entries for a period.
// Period is "daily" or "weekly"; date anchors the period.
func (c *Client) Leaderboard(ctx context.Context, period, date string) ([]models.LeaderboardEntry, error) {
	op := "leaderboard"
	var entries []models.LeaderboardEntry

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{"period": period, "date": date}).
		SetResult(&entries).
		Get("/v1/leaderboard")
	if err := c.checkResponse(op, "", resp, err); err != nil {
		return nil, err
	}

	return entries, nil
}

// checkResponse maps transport errors and HTTP status codes onto the
// typed error taxonomy.
func (c *Client) checkResponse(op, userID string, resp *resty.Response, err error) error {
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	if resp.IsSuccess() {
		return nil
	}

	c.logger.Warn("store request failed",
		zap.String("operation", op),
		zap.Int("status", resp.StatusCode()),
	)

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return &AuthorizationError{Op: op, UserID: userID}
	case http.StatusForbidden:
		return &PermissionDeniedError{Op: op, Message: resp.String()}
	case http.StatusTooManyRequests:
		return &RateLimitedError{Op: op}
	default:
		return &NetworkError{Op: op, Err: fmt.Errorf("unexpected status %d", resp.StatusCode())}
	}
}
