package sync

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kshetty/huntboard/pkg/client"
	"github.com/kshetty/huntboard/pkg/domain"
)

// ErrDeleteUnsupported is returned for any delete attempt. No destructive
// endpoint is exposed; rows are archived, never deleted.
var ErrDeleteUnsupported = errors.New("delete is not supported — archive the opportunity instead (press a)")

// Mutation is one state-changing user action. Apply issues the HTTP
// call(s); Resync names the resources whose views the caller must
// re-fetch afterwards: on success to render authoritative state, on
// failure to roll the controls back. Describe is the success toast text.
type Mutation interface {
	Apply(ctx context.Context, c *client.Client) error
	Resync() []Resource
	Describe() string
}

// SetStatus moves an opportunity to a new pipeline status. A transition
// into a terminal status shifts the row from the active view to the
// archive, so both views and the metrics are resynced.
type SetStatus struct {
	ID     int64
	Status string
}

func (m SetStatus) Apply(ctx context.Context, c *client.Client) error {
	if !domain.ValidStatus(m.Status) {
		return fmt.Errorf("unknown status %q", m.Status)
	}
	_, err := c.UpdateOpportunity(ctx, m.ID, map[string]any{"status": m.Status})
	return err
}

func (m SetStatus) Resync() []Resource {
	return []Resource{ResourcePipeline, ResourceArchived, ResourceMetrics}
}

func (m SetStatus) Describe() string { return "status set to " + m.Status }

// ToggleRemote flips the remote flag on an opportunity.
type ToggleRemote struct {
	ID     int64
	Remote bool
}

func (m ToggleRemote) Apply(ctx context.Context, c *client.Client) error {
	_, err := c.UpdateOpportunity(ctx, m.ID, map[string]any{"is_remote": m.Remote})
	return err
}

func (m ToggleRemote) Resync() []Resource {
	return []Resource{ResourcePipeline, ResourceMetrics}
}

func (m ToggleRemote) Describe() string {
	if m.Remote {
		return "marked remote"
	}
	return "marked on-site"
}

// EditNotes replaces an opportunity's notes.
type EditNotes struct {
	ID    int64
	Notes string
}

func (m EditNotes) Apply(ctx context.Context, c *client.Client) error {
	_, err := c.UpdateOpportunity(ctx, m.ID, map[string]any{"notes": m.Notes})
	return err
}

func (m EditNotes) Resync() []Resource { return []Resource{ResourcePipeline} }

func (m EditNotes) Describe() string { return "notes saved" }

// Archive retires an opportunity from the active pipeline. Archival is
// modeled as a status write; there is no separate flag on the wire.
type Archive struct {
	ID int64
}

func (m Archive) Apply(ctx context.Context, c *client.Client) error {
	_, err := c.UpdateOpportunity(ctx, m.ID, map[string]any{"status": domain.StatusArchived})
	return err
}

func (m Archive) Resync() []Resource {
	return []Resource{ResourcePipeline, ResourceArchived, ResourceMetrics}
}

func (m Archive) Describe() string { return "archived" }

// Restore pulls an archived opportunity back into the pipeline as a Lead.
type Restore struct {
	ID int64
}

func (m Restore) Apply(ctx context.Context, c *client.Client) error {
	_, err := c.UpdateOpportunity(ctx, m.ID, map[string]any{"status": "Lead"})
	return err
}

func (m Restore) Resync() []Resource {
	return []Resource{ResourcePipeline, ResourceArchived, ResourceMetrics}
}

func (m Restore) Describe() string { return "restored to pipeline" }

// AddOpportunity creates a new opportunity. When UseNewSource is set the
// free-text source name is resolved into a durable source record first;
// only after that succeeds is the opportunity submitted referencing it.
// A source-create failure aborts the whole submission.
type AddOpportunity struct {
	Req           client.AddOpportunityRequest
	UseNewSource  bool
	NewSourceName string
}

func (m AddOpportunity) Apply(ctx context.Context, c *client.Client) error {
	if strings.TrimSpace(m.Req.Company) == "" {
		return errors.New("company is required")
	}
	if strings.TrimSpace(m.Req.Role) == "" {
		return errors.New("role is required")
	}

	req := m.Req
	if m.UseNewSource {
		name := strings.TrimSpace(m.NewSourceName)
		if name == "" {
			return errors.New("new source name is required")
		}
		created, err := c.AddSource(ctx, name)
		if err != nil {
			return fmt.Errorf("create source: %w", err)
		}
		req.Source = created.SourceName
	}

	_, err := c.AddOpportunity(ctx, req)
	return err
}

func (m AddOpportunity) Resync() []Resource {
	out := []Resource{ResourcePipeline, ResourceMetrics}
	if m.UseNewSource {
		out = append(out, ResourceSources)
	}
	return out
}

func (m AddOpportunity) Describe() string { return "opportunity added" }

// AddStone appends one unit of sacred work to the log.
type AddStone struct {
	Stone domain.Stone
}

func (m AddStone) Apply(ctx context.Context, c *client.Client) error {
	s := m.Stone
	if s.StoneNumber <= 0 {
		return errors.New("stone number is required")
	}
	if strings.TrimSpace(s.StoneTitle) == "" {
		return errors.New("stone title is required")
	}
	if s.TimeSpentMinutes <= 0 {
		return errors.New("time spent is required")
	}
	if strings.TrimSpace(s.WhatBuilt) == "" {
		return errors.New("what was built is required")
	}
	_, err := c.AddStone(ctx, s)
	return err
}

func (m AddStone) Resync() []Resource {
	return []Resource{ResourceSacredStats, ResourceSacredProgress}
}

func (m AddStone) Describe() string {
	return fmt.Sprintf("stone %d placed", m.Stone.StoneNumber)
}

// ImportJob promotes a scraped match into the pipeline.
type ImportJob struct {
	ID int64
}

func (m ImportJob) Apply(ctx context.Context, c *client.Client) error {
	return c.ImportScrapedJob(ctx, m.ID)
}

func (m ImportJob) Resync() []Resource {
	return []Resource{ResourceScrapedJobs, ResourcePipeline, ResourceMetrics}
}

func (m ImportJob) Describe() string { return "imported to pipeline" }

// Delete is intercepted client-side: Apply never constructs a request.
type Delete struct {
	ID int64
}

func (m Delete) Apply(_ context.Context, _ *client.Client) error {
	return ErrDeleteUnsupported
}

func (m Delete) Resync() []Resource { return nil }

func (m Delete) Describe() string { return "" }
