package domain

// AgendaItem is an upcoming interview, derived server-side per day.
// Read-only: the dashboard never mutates interactions.
type AgendaItem struct {
	ID           int64  `json:"id"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Type         string `json:"type"`
	Company      string `json:"company"`
	Role         string `json:"role"`
	Status       string `json:"status,omitempty"`
	MeetLink     string `json:"meet_link,omitempty"`
	Participants string `json:"participants,omitempty"`
	Summary      string `json:"summary,omitempty"`
}

// Source is a place opportunities come from (job board, referral, ...).
// Created on demand when the add-opportunity form names a new one.
type Source struct {
	SourceName string `json:"source_name"`
}
