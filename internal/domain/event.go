package domain

import "time"

// Event represents a dated happening: a festival, a market, an exhibition.
// StartDate is never after EndDate.
type Event struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	EventType string    `json:"eventType"`
	Address   string    `json:"address,omitempty"`
	Sido      string    `json:"sido"`
	Sigungu   string    `json:"sigungu"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	Website   string    `json:"website,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EventFilters is the closed set of predicates a caller may filter events by.
type EventFilters struct {
	Sido      string
	Sigungu   string
	EventType string
	Search    string
}
