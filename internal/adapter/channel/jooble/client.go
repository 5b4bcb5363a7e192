package jooble

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"jobcast/internal/adapter/channel"
	"jobcast/internal/adapter/metrics"
	"jobcast/internal/core/domain"
)

const (
	contentTypeJSON = "application/json"
	maxBodyBytes    = 1 << 20
	maxRetryAfter   = time.Minute
	dateLayout      = "2006-01-02"
)

// HTTPClient represents a minimal http client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config configures the Jooble API client.
type Config struct {
	BaseURL     string
	APIKey      string
	HTTPClient  HTTPClient
	Reliability channel.ReliabilityConfig
	Metrics     *metrics.Metrics
}

// Client talks to the Jooble advertiser API. Every call goes through the
// channel reliability wrapper.
type Client struct {
	baseURL string
	apiKey  string
	http    HTTPClient
	rel     *channel.Reliable
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("jooble base url required")
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{}
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    cfg.HTTPClient,
		rel:     channel.NewReliable(ChannelID, cfg.Reliability, cfg.Metrics),
	}, nil
}

type campaignResponse struct {
	ID      string `json:"id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

type statisticsResponse struct {
	Spend        decimal.Decimal `json:"spend"`
	Clicks       int64           `json:"clicks"`
	Impressions  int64           `json:"impressions"`
	Applications int64           `json:"applies"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (c *Client) CreateCampaign(ctx context.Context, payload domain.ExternalPayload) (domain.ChannelResponse, error) {
	var out campaignResponse
	if err := c.do(ctx, "create", http.MethodPost, "/campaigns", payload, &out); err != nil {
		return domain.ChannelResponse{}, err
	}
	return domain.ChannelResponse{
		ChannelCampaignID: out.ID,
		Status:            out.Status,
		Accepted:          out.ID != "",
		Message:           out.Message,
	}, nil
}

func (c *Client) EditCampaign(ctx context.Context, id string, payload domain.ExternalPayload) (domain.ChannelResponse, error) {
	path, err := campaignPath(id, "")
	if err != nil {
		return domain.ChannelResponse{}, err
	}
	var out campaignResponse
	if err := c.do(ctx, "edit", http.MethodPut, path, payload, &out); err != nil {
		return domain.ChannelResponse{}, err
	}
	if out.ID == "" {
		out.ID = id
	}
	return domain.ChannelResponse{ChannelCampaignID: out.ID, Status: out.Status, Accepted: true, Message: out.Message}, nil
}

// SetStatus switches a campaign between "active" and "paused".
func (c *Client) SetStatus(ctx context.Context, id, status string) error {
	path, err := campaignPath(id, "/status")
	if err != nil {
		return err
	}
	return c.do(ctx, "status_"+status, http.MethodPost, path, map[string]string{"status": status}, nil)
}

func (c *Client) DeleteCampaign(ctx context.Context, id string) error {
	path, err := campaignPath(id, "")
	if err != nil {
		return err
	}
	return c.do(ctx, "delete", http.MethodDelete, path, nil, nil)
}

func (c *Client) UpdateBid(ctx context.Context, id string, clickPrice decimal.Decimal) error {
	if !clickPrice.IsPositive() {
		return &domain.ValidationError{ChannelID: ChannelID, Problems: []string{"click price must be positive"}}
	}
	path, err := campaignPath(id, "/bid")
	if err != nil {
		return err
	}
	return c.do(ctx, "update_bid", http.MethodPatch, path, map[string]decimal.Decimal{"clickPrice": clickPrice}, nil)
}

// Statistics fetches the figures for [from, to], both dates inclusive.
func (c *Client) Statistics(ctx context.Context, id string, from, to time.Time) (domain.ChannelStats, error) {
	path, err := campaignPath(id, "/statistics")
	if err != nil {
		return domain.ChannelStats{}, err
	}
	q := url.Values{}
	q.Set("from", from.Format(dateLayout))
	q.Set("to", to.Format(dateLayout))

	var out statisticsResponse
	if err := c.do(ctx, "statistics", http.MethodGet, path+"?"+q.Encode(), nil, &out); err != nil {
		return domain.ChannelStats{}, err
	}
	return domain.ChannelStats{
		Spend:        out.Spend.InexactFloat64(),
		Clicks:       out.Clicks,
		Impressions:  out.Impressions,
		Applications: out.Applications,
	}, nil
}

func campaignPath(id, suffix string) (string, error) {
	if strings.TrimSpace(id) == "" {
		return "", &domain.ValidationError{ChannelID: ChannelID, Problems: []string{"channel campaign id is empty"}}
	}
	return "/campaigns/" + url.PathEscape(id) + suffix, nil
}

func (c *Client) do(ctx context.Context, op, method, path string, in, out any) error {
	return c.rel.Do(ctx, op, func(ctx context.Context) error {
		return c.roundTrip(ctx, op, method, path, in, out)
	})
}

func (c *Client) roundTrip(ctx context.Context, op, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return &domain.ExternalChannelError{ChannelID: ChannelID, Op: op, Err: fmt.Errorf("encode request: %w", err)}
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &domain.ExternalChannelError{ChannelID: ChannelID, Op: op, Err: err}
	}
	req.Header.Set("Accept", contentTypeJSON)
	if body != nil {
		req.Header.Set("Content-Type", contentTypeJSON)
	}
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &domain.ExternalChannelError{
			ChannelID: ChannelID,
			Op:        op,
			Retryable: !errors.Is(err, context.Canceled),
			Err:       err,
		}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return &domain.ExternalChannelError{ChannelID: ChannelID, Op: op, StatusCode: resp.StatusCode, Retryable: true, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &domain.ExternalChannelError{
			ChannelID:  ChannelID,
			Op:         op,
			StatusCode: resp.StatusCode,
			Retryable:  resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Err:        errors.New(apiMessage(data, resp.Status)),
		}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &domain.ExternalChannelError{ChannelID: ChannelID, Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func apiMessage(data []byte, fallback string) string {
	var e errorResponse
	if json.Unmarshal(data, &e) == nil {
		if e.Message != "" {
			return e.Message
		}
		if e.Error != "" {
			return e.Error
		}
	}
	return fallback
}

// parseRetryAfter accepts delta seconds or an HTTP date, capped at a minute.
func parseRetryAfter(v string) time.Duration {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0
	}
	var d time.Duration
	if secs, err := strconv.Atoi(v); err == nil {
		d = time.Duration(secs) * time.Second
	} else if at, err := http.ParseTime(v); err == nil {
		d = time.Until(at)
	}
	if d < 0 {
		return 0
	}
	if d > maxRetryAfter {
		return maxRetryAfter
	}
	return d
}
