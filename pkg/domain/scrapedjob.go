package domain

import "encoding/json"

// ScrapedJob is a listing ingested and pre-scored by the external
// scraper. Read-only here except for the one-way import action.
type ScrapedJob struct {
	ID            int64    `json:"id"`
	Company       string   `json:"company"`
	JobTitle      string   `json:"job_title"`
	Location      string   `json:"location,omitempty"`
	SalaryRange   string   `json:"salary_range,omitempty"`
	Source        string   `json:"source,omitempty"`
	JobURL        string   `json:"job_url,omitempty"`
	MatchScore    float64  `json:"match_score"`
	MatchedSkills string   `json:"matched_skills,omitempty"` // JSON-encoded list
	RedFlags      string   `json:"red_flags,omitempty"`      // JSON-encoded list
	Imported      BoolFlag `json:"imported_to_opportunities"`
}

// Skills decodes the matched_skills column. Malformed JSON degrades to
// nil so a bad row still renders.
func (j ScrapedJob) Skills() []string {
	return decodeStringList(j.MatchedSkills)
}

// Flags decodes the red_flags column, degrading to nil like Skills.
func (j ScrapedJob) Flags() []string {
	return decodeStringList(j.RedFlags)
}

func decodeStringList(raw string) []string {
	if raw == "" {
		return nil
	}
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil
	}
	return items
}

// MatchTier buckets a match score for display. The boundaries mirror the
// scorer's classification and are recomputed here, never stored.
type MatchTier string

const (
	TierExcellent MatchTier = "EXCELLENT"
	TierHighFit   MatchTier = "HIGH_FIT"
	TierMedium    MatchTier = "MEDIUM"
	TierLowFit    MatchTier = "LOW_FIT"
	TierNoFit     MatchTier = "NO_FIT"
)

// TierFor returns the display tier for a 0-100 match score.
func TierFor(score float64) MatchTier {
	switch {
	case score >= 85:
		return TierExcellent
	case score >= 75:
		return TierHighFit
	case score >= 65:
		return TierMedium
	case score >= 40:
		return TierLowFit
	default:
		return TierNoFit
	}
}

// ScrapedJobStats is the per-tier count summary from the scraper store.
type ScrapedJobStats struct {
	Total     int `json:"total"`
	Excellent int `json:"excellent"`
	HighFit   int `json:"high_fit"`
	Medium    int `json:"medium"`
	LowFit    int `json:"low_fit"`
	NoFit     int `json:"no_fit"`
	Imported  int `json:"imported"`
}
