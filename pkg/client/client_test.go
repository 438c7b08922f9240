package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/kshetty/huntboard/pkg/domain"
)

func TestMetrics(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/metrics" {
			http.NotFound(w, r)
			return
		}
		json.NewEncoder(w).Encode(domain.Metrics{ //nolint:errcheck
			ActiveCount:    8,
			InterviewCount: 3,
			RemoteCount:    6,
			PriorityCount:  4,
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	m, err := c.Metrics(context.Background())
	if err != nil {
		t.Fatalf("Metrics() error: %v", err)
	}
	if m.ActiveCount != 8 {
		t.Errorf("ActiveCount = %d, want 8", m.ActiveCount)
	}
	if m.InterviewCount != 3 {
		t.Errorf("InterviewCount = %d, want 3", m.InterviewCount)
	}
}

func TestPipeline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/pipeline" {
			http.NotFound(w, r)
			return
		}
		// Shapes as the sqlite-backed server emits them.
		body := `[
			{"id":1,"company":"Company A","role":"QA Lead","status":"Screening","is_remote":1,"priority":"High","updated_at":"2026-08-27 10:00:00"},
			{"id":2,"company":"Company B","role":"ETL Test Engineer","status":"Technical","is_remote":0,"priority":"Medium","updated_at":null}
		]`
		w.Write([]byte(body)) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL)
	opps, err := c.Pipeline(context.Background())
	if err != nil {
		t.Fatalf("Pipeline() error: %v", err)
	}
	if len(opps) != 2 {
		t.Fatalf("got %d opportunities, want 2", len(opps))
	}
	if !opps[0].IsRemote {
		t.Error("opps[0].IsRemote = false, want true")
	}
	if opps[1].Status != "Technical" {
		t.Errorf("opps[1].Status = %q, want Technical", opps[1].Status)
	}
}

func TestAddOpportunity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if r.Header.Get("X-Request-Id") == "" {
			t.Error("expected X-Request-Id header on mutation")
		}
		var req AddOpportunityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if req.Company != "TechCorp" {
			t.Errorf("company = %q, want TechCorp", req.Company)
		}
		json.NewEncoder(w).Encode(map[string]any{"success": true, "id": 42}) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL)
	id, err := c.AddOpportunity(context.Background(), AddOpportunityRequest{
		Company:  "TechCorp",
		Role:     "QA Lead",
		Source:   "LinkedIn",
		Status:   "Lead",
		Priority: "High",
	})
	if err != nil {
		t.Fatalf("AddOpportunity() error: %v", err)
	}
	if id != 42 {
		t.Errorf("id = %d, want 42", id)
	}
}

func TestUpdateOpportunityPatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("method = %s, want PATCH", r.Method)
		}
		if r.URL.Path != "/api/update-opportunity/7" {
			t.Errorf("path = %s, want /api/update-opportunity/7", r.URL.Path)
		}
		var fields map[string]any
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if fields["status"] != "Declined" {
			t.Errorf("status field = %v, want Declined", fields["status"])
		}
		json.NewEncoder(w).Encode(domain.Opportunity{ID: 7, Status: "Declined"}) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL)
	updated, err := c.UpdateOpportunity(context.Background(), 7, map[string]any{"status": "Declined"})
	if err != nil {
		t.Fatalf("UpdateOpportunity() error: %v", err)
	}
	if updated.Status != "Declined" {
		t.Errorf("updated.Status = %q, want Declined", updated.Status)
	}
}

func TestScrapedJobsQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("min_score"); got != "60" {
			t.Errorf("min_score = %q, want 60", got)
		}
		if got := r.URL.Query().Get("limit"); got != "50" {
			t.Errorf("limit = %q, want 50", got)
		}
		json.NewEncoder(w).Encode([]domain.ScrapedJob{ //nolint:errcheck
			{ID: 1, Company: "RemoteOK Co", JobTitle: "SDET", MatchScore: 88, MatchedSkills: `["python"]`},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	jobs, err := c.ScrapedJobs(context.Background(), 60, 50)
	if err != nil {
		t.Fatalf("ScrapedJobs() error: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("got %d jobs, want 1", len(jobs))
	}
	if jobs[0].Skills()[0] != "python" {
		t.Errorf("skills = %v, want [python]", jobs[0].Skills())
	}
}

func TestHTTPErrorCarriesServerReason(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "Stone number already exists"}) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.AddStone(context.Background(), domain.Stone{StoneNumber: 3})
	if err == nil {
		t.Fatal("expected error for 409 response")
	}
	if !IsStatus(err, http.StatusConflict) {
		t.Errorf("IsStatus(err, 409) = false for %v", err)
	}
	if got := Reason(err); !strings.Contains(got, "already exists") {
		t.Errorf("Reason(err) = %q, want the server message", got)
	}
}

func TestMalformedPayloadIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"error": "Not found"}`)) //nolint:errcheck // object where an array is expected
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Pipeline(context.Background())
	if err == nil {
		t.Fatal("expected decode error for unexpected payload shape")
	}
}

func TestCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(5 * time.Second) // slow server
		json.NewEncoder(w).Encode(domain.Metrics{}) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Metrics(ctx)
	if err == nil {
		t.Fatal("expected error for canceled context")
	}
}

func TestSacredWorkEndpoints(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/sacred-work-stats":
			w.Write([]byte(`{"total_stones":7,"total_minutes":840,"avg_minutes_per_stone":120}`)) //nolint:errcheck
		case "/api/sacred-work-progress":
			w.Write([]byte(`[{"stone_number":1,"stone_title":"api client","time_spent_minutes":120}]`)) //nolint:errcheck
		case "/api/recent-sacred-work":
			w.Write([]byte(`[{"stone_number":7,"stone_title":"toast stack","time_spent_minutes":45}]`)) //nolint:errcheck
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)

	stats, err := c.SacredWorkStats(context.Background())
	if err != nil {
		t.Fatalf("SacredWorkStats() error: %v", err)
	}
	if stats.TotalStones != 7 {
		t.Errorf("TotalStones = %d, want 7", stats.TotalStones)
	}

	progress, err := c.SacredWorkProgress(context.Background())
	if err != nil {
		t.Fatalf("SacredWorkProgress() error: %v", err)
	}
	if len(progress) != 1 || progress[0].StoneNumber != 1 {
		t.Errorf("unexpected progress log: %+v", progress)
	}

	recent, err := c.RecentSacredWork(context.Background())
	if err != nil {
		t.Fatalf("RecentSacredWork() error: %v", err)
	}
	if len(recent) != 1 || recent[0].StoneTitle != "toast stack" {
		t.Errorf("unexpected recent stones: %+v", recent)
	}
}
