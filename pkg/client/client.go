package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/kshetty/huntboard/pkg/domain"
)

// Client is the huntboard tracker API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new API client for the given base origin.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Metrics returns the dashboard aggregate counts.
func (c *Client) Metrics(ctx context.Context) (*domain.Metrics, error) {
	var m domain.Metrics
	if err := c.get(ctx, "/api/metrics", &m); err != nil {
		return nil, fmt.Errorf("client.Metrics: %w", err)
	}
	return &m, nil
}

// TodaysAgenda returns upcoming interviews.
func (c *Client) TodaysAgenda(ctx context.Context) ([]domain.AgendaItem, error) {
	var items []domain.AgendaItem
	if err := c.get(ctx, "/api/todays-agenda", &items); err != nil {
		return nil, fmt.Errorf("client.TodaysAgenda: %w", err)
	}
	return items, nil
}

// Pipeline returns the active (non-terminal) opportunities.
func (c *Client) Pipeline(ctx context.Context) ([]domain.Opportunity, error) {
	var opps []domain.Opportunity
	if err := c.get(ctx, "/api/pipeline", &opps); err != nil {
		return nil, fmt.Errorf("client.Pipeline: %w", err)
	}
	return opps, nil
}

// ArchivedPipeline returns opportunities with terminal statuses.
func (c *Client) ArchivedPipeline(ctx context.Context) ([]domain.Opportunity, error) {
	var opps []domain.Opportunity
	if err := c.get(ctx, "/api/archived-pipeline", &opps); err != nil {
		return nil, fmt.Errorf("client.ArchivedPipeline: %w", err)
	}
	return opps, nil
}

// Sources returns the known opportunity sources.
func (c *Client) Sources(ctx context.Context) ([]domain.Source, error) {
	var sources []domain.Source
	if err := c.get(ctx, "/api/sources", &sources); err != nil {
		return nil, fmt.Errorf("client.Sources: %w", err)
	}
	return sources, nil
}

// AddSource creates a source record for the given name.
func (c *Client) AddSource(ctx context.Context, name string) (*domain.Source, error) {
	var created domain.Source
	if err := c.post(ctx, "/api/add-source", domain.Source{SourceName: name}, &created); err != nil {
		return nil, fmt.Errorf("client.AddSource: %w", err)
	}
	return &created, nil
}

// AddOpportunityRequest is the payload for creating a new opportunity.
type AddOpportunityRequest struct {
	Company          string `json:"company"`
	Role             string `json:"role"`
	Source           string `json:"source"`
	IsRemote         bool   `json:"is_remote"`
	TechStack        string `json:"tech_stack,omitempty"`
	RecruiterContact string `json:"recruiter_contact,omitempty"`
	Notes            string `json:"notes,omitempty"`
	Status           string `json:"status"`
	Priority         string `json:"priority"`
}

// AddOpportunity creates a new opportunity and returns the server-assigned ID.
func (c *Client) AddOpportunity(ctx context.Context, req AddOpportunityRequest) (int64, error) {
	var resp struct {
		ID int64 `json:"id"`
	}
	if err := c.post(ctx, "/api/add-opportunity", req, &resp); err != nil {
		return 0, fmt.Errorf("client.AddOpportunity: %w", err)
	}
	return resp.ID, nil
}

// UpdateOpportunity applies a partial update to a single opportunity.
// Fields maps mutable column names (status, is_remote, notes, ...) to
// their new values.
func (c *Client) UpdateOpportunity(ctx context.Context, id int64, fields map[string]any) (*domain.Opportunity, error) {
	var updated domain.Opportunity
	path := "/api/update-opportunity/" + strconv.FormatInt(id, 10)
	if err := c.doRequest(ctx, http.MethodPatch, path, fields, &updated); err != nil {
		return nil, fmt.Errorf("client.UpdateOpportunity: %w", err)
	}
	return &updated, nil
}

// --- Sacred work ---

// SacredWorkStats returns aggregates over the stone log.
func (c *Client) SacredWorkStats(ctx context.Context) (*domain.SacredWorkStats, error) {
	var stats domain.SacredWorkStats
	if err := c.get(ctx, "/api/sacred-work-stats", &stats); err != nil {
		return nil, fmt.Errorf("client.SacredWorkStats: %w", err)
	}
	return &stats, nil
}

// SacredWorkProgress returns the full stone log in stone order.
func (c *Client) SacredWorkProgress(ctx context.Context) ([]domain.Stone, error) {
	var stones []domain.Stone
	if err := c.get(ctx, "/api/sacred-work-progress", &stones); err != nil {
		return nil, fmt.Errorf("client.SacredWorkProgress: %w", err)
	}
	return stones, nil
}

// RecentSacredWork returns the most recently logged stones.
func (c *Client) RecentSacredWork(ctx context.Context) ([]domain.Stone, error) {
	var stones []domain.Stone
	if err := c.get(ctx, "/api/recent-sacred-work", &stones); err != nil {
		return nil, fmt.Errorf("client.RecentSacredWork: %w", err)
	}
	return stones, nil
}

// AddStone appends a stone to the sacred work log.
func (c *Client) AddStone(ctx context.Context, stone domain.Stone) (int64, error) {
	var resp struct {
		ID int64 `json:"id"`
	}
	if err := c.post(ctx, "/api/add-sacred-work", stone, &resp); err != nil {
		return 0, fmt.Errorf("client.AddStone: %w", err)
	}
	return resp.ID, nil
}

// --- Scraped jobs ---

// ScrapedJobs returns scraper matches at or above minScore.
func (c *Client) ScrapedJobs(ctx context.Context, minScore, limit int) ([]domain.ScrapedJob, error) {
	params := url.Values{}
	params.Set("min_score", strconv.Itoa(minScore))
	params.Set("limit", strconv.Itoa(limit))

	var jobs []domain.ScrapedJob
	if err := c.get(ctx, "/api/scraped-jobs?"+params.Encode(), &jobs); err != nil {
		return nil, fmt.Errorf("client.ScrapedJobs: %w", err)
	}
	return jobs, nil
}

// ScrapedJobStats returns per-tier counts over the scraped pool.
func (c *Client) ScrapedJobStats(ctx context.Context) (*domain.ScrapedJobStats, error) {
	var stats domain.ScrapedJobStats
	if err := c.get(ctx, "/api/scraped-jobs/stats", &stats); err != nil {
		return nil, fmt.Errorf("client.ScrapedJobStats: %w", err)
	}
	return &stats, nil
}

// ImportScrapedJob promotes a scraped job into the opportunity pipeline.
// One-way: there is no un-import.
func (c *Client) ImportScrapedJob(ctx context.Context, id int64) error {
	path := "/api/scraped-jobs/" + strconv.FormatInt(id, 10) + "/import"
	if err := c.doRequest(ctx, http.MethodPost, path, nil, nil); err != nil {
		return fmt.Errorf("client.ImportScrapedJob: %w", err)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	return c.doRequest(ctx, http.MethodPost, path, body, out)
}

func (c *Client) doRequest(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet {
		// Mutations carry a request ID so server logs can tie retries together.
		req.Header.Set("X-Request-Id", uuid.NewString())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode >= 400 {
		respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // 1 MB max error body
		if readErr != nil {
			return &HTTPError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("failed to read body: %v", readErr)}
		}
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error != "" {
			return &HTTPError{StatusCode: resp.StatusCode, Message: apiErr.Error}
		}
		return &HTTPError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.doRequest(ctx, http.MethodGet, path, nil, out)
}
