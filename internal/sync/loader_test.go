package sync

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kshetty/huntboard/pkg/client"
	"github.com/kshetty/huntboard/pkg/domain"
)

// trackerStub serves the four dashboard endpoints, failing the paths
// listed in fail with a 500.
func trackerStub(t *testing.T, fail map[string]bool) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail[r.URL.Path] {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": "boom"}) //nolint:errcheck
			return
		}
		switch r.URL.Path {
		case "/api/metrics":
			json.NewEncoder(w).Encode(domain.Metrics{ActiveCount: 5}) //nolint:errcheck
		case "/api/todays-agenda":
			json.NewEncoder(w).Encode([]domain.AgendaItem{{Company: "Company A", Time: "10:00 AM"}}) //nolint:errcheck
		case "/api/pipeline":
			json.NewEncoder(w).Encode([]domain.Opportunity{{ID: 1, Company: "Company A", Status: "Screening"}}) //nolint:errcheck
		case "/api/archived-pipeline":
			json.NewEncoder(w).Encode([]domain.Opportunity{{ID: 2, Company: "Company B", Status: "Declined"}}) //nolint:errcheck
		default:
			http.NotFound(w, r)
		}
	}))
}

func TestDashboardLoadsAllResources(t *testing.T) {
	srv := trackerStub(t, nil)
	defer srv.Close()

	l := NewLoader(client.New(srv.URL))
	snap := l.Dashboard(context.Background())

	if snap.Degraded() {
		t.Fatalf("unexpected degraded snapshot: %+v", snap)
	}
	if snap.Metrics == nil || snap.Metrics.ActiveCount != 5 {
		t.Errorf("Metrics = %+v, want active_count 5", snap.Metrics)
	}
	if len(snap.Agenda) != 1 || len(snap.Pipeline) != 1 || len(snap.Archived) != 1 {
		t.Errorf("got agenda=%d pipeline=%d archived=%d, want 1 each",
			len(snap.Agenda), len(snap.Pipeline), len(snap.Archived))
	}
	if snap.LoadedAt.IsZero() {
		t.Error("LoadedAt not set")
	}
}

func TestDashboardPartialDegradation(t *testing.T) {
	// One failing resource must not prevent the other three from loading.
	srv := trackerStub(t, map[string]bool{"/api/metrics": true})
	defer srv.Close()

	l := NewLoader(client.New(srv.URL))
	snap := l.Dashboard(context.Background())

	if snap.MetricsErr == nil {
		t.Error("expected MetricsErr for failing metrics endpoint")
	}
	if !snap.Degraded() {
		t.Error("Degraded() = false with a failed resource")
	}
	if snap.AgendaErr != nil || snap.PipelineErr != nil || snap.ArchivedErr != nil {
		t.Errorf("healthy resources reported errors: agenda=%v pipeline=%v archived=%v",
			snap.AgendaErr, snap.PipelineErr, snap.ArchivedErr)
	}
	if len(snap.Pipeline) != 1 {
		t.Errorf("pipeline should still load, got %d rows", len(snap.Pipeline))
	}
}

func TestDashboardAllResourcesFail(t *testing.T) {
	srv := trackerStub(t, nil)
	srv.Close() // connection refused for every request

	l := NewLoader(client.New(srv.URL))
	snap := l.Dashboard(context.Background())

	if snap.MetricsErr == nil || snap.AgendaErr == nil || snap.PipelineErr == nil || snap.ArchivedErr == nil {
		t.Errorf("expected every resource to carry an error, got %+v", snap)
	}
}
