package domain

// Stone is one logged unit of sacred work. The log is append-only; there
// is no client-side edit path.
type Stone struct {
	ID               int64  `json:"id,omitempty"`
	StoneNumber      int    `json:"stone_number"`
	StoneTitle       string `json:"stone_title"`
	TimeSpentMinutes int    `json:"time_spent_minutes"`
	WhatBuilt        string `json:"what_built"`
	Insights         string `json:"insights,omitempty"`
	NextStone        string `json:"next_stone,omitempty"`
	FeltSense        string `json:"felt_sense,omitempty"`
	Status           string `json:"status,omitempty"`
	Date             string `json:"date,omitempty"`
}

// SacredWorkStats is the aggregate view over the stone log.
type SacredWorkStats struct {
	TotalStones        int     `json:"total_stones"`
	TotalMinutes       int     `json:"total_minutes"`
	AvgMinutesPerStone float64 `json:"avg_minutes_per_stone"`
	TotalHours         float64 `json:"total_hours"`
	FirstStoneDate     string  `json:"first_stone_date,omitempty"`
	LatestStoneDate    string  `json:"latest_stone_date,omitempty"`
}
