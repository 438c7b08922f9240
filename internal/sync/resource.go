// Package sync implements the dashboard's state synchronization with the
// tracker API: concurrent, independently-failing resource loads, and the
// mutate-then-resync protocol that keeps rendered state authoritative.
//
// The dashboard never applies a mutation to its own view state. Every
// user action issues exactly one HTTP mutation; the affected resources
// are then re-fetched so the view reflects what the server accepted. A
// failed mutation re-fetches the same resources, which is also the only
// rollback mechanism; controls snap back to the last known-good server
// state.
package sync

// Resource identifies one independently fetched and rendered region of
// the dashboard.
type Resource int

const (
	ResourceMetrics Resource = iota
	ResourceAgenda
	ResourcePipeline
	ResourceArchived
	ResourceSources
	ResourceSacredStats
	ResourceSacredProgress
	ResourceScrapedJobs
)

func (r Resource) String() string {
	switch r {
	case ResourceMetrics:
		return "metrics"
	case ResourceAgenda:
		return "agenda"
	case ResourcePipeline:
		return "pipeline"
	case ResourceArchived:
		return "archived-pipeline"
	case ResourceSources:
		return "sources"
	case ResourceSacredStats:
		return "sacred-work-stats"
	case ResourceSacredProgress:
		return "sacred-work-progress"
	case ResourceScrapedJobs:
		return "scraped-jobs"
	default:
		return "unknown"
	}
}
