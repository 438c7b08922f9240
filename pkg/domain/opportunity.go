package domain

// Opportunity is a tracked job application or lead.
type Opportunity struct {
	ID                  int64     `json:"id"`
	Company             string    `json:"company"`
	Role                string    `json:"role"`
	Status              string    `json:"status"`
	IsRemote            BoolFlag  `json:"is_remote"`
	Priority            string    `json:"priority"`
	TechStack           string    `json:"tech_stack,omitempty"`
	SalaryRange         string    `json:"salary_range,omitempty"`
	Source              string    `json:"source,omitempty"`
	RecruiterName       string    `json:"recruiter_name,omitempty"`
	RecruiterPhone      string    `json:"recruiter_phone,omitempty"`
	Notes               string    `json:"notes,omitempty"`
	DiscoveredDate      string    `json:"discovered_date,omitempty"`
	LastInteractionDate string    `json:"last_interaction_date,omitempty"`
	UpdatedAt           Timestamp `json:"updated_at"`
}

// Valid opportunity statuses, in pipeline order.
var ValidStatuses = []string{
	"Lead",
	"Applied",
	"Screening",
	"Technical",
	"Manager",
	"Offer",
	"Rejected",
	"Declined",
	"Ghosted",
	"Accepted",
}

// ValidPriorities in display order.
var ValidPriorities = []string{"High", "Medium", "Low"}

var validStatusSet = func() map[string]bool {
	m := make(map[string]bool, len(ValidStatuses))
	for _, s := range ValidStatuses {
		m[s] = true
	}
	return m
}()

// ValidStatus returns true if the given status is a known pipeline status.
func ValidStatus(status string) bool {
	return validStatusSet[status]
}

// Terminal reports whether a status takes an opportunity out of the active
// pipeline. The server filters exactly this set out of /api/pipeline, so
// a transition into it moves the row to the archived view.
func Terminal(status string) bool {
	switch status {
	case "Rejected", "Declined", "Ghosted", "Accepted":
		return true
	}
	return false
}

// StatusArchived is the status the dashboard writes when archiving.
// Archival has no flag of its own on the wire.
const StatusArchived = "Declined"

// NextStatus returns the status following s in pipeline order, wrapping
// at the end. Unknown statuses restart at Lead.
func NextStatus(s string) string {
	for i, v := range ValidStatuses {
		if v == s {
			return ValidStatuses[(i+1)%len(ValidStatuses)]
		}
	}
	return ValidStatuses[0]
}

// Metrics is the aggregate counts header of the dashboard.
type Metrics struct {
	ActiveCount    int `json:"active_count"`
	InterviewCount int `json:"interview_count"`
	RemoteCount    int `json:"remote_count"`
	PriorityCount  int `json:"priority_count"`
}
