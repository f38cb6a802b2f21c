package domain

import "time"

// Place represents a physical venue served by the platform: a cafe, a
// restaurant, an attraction. Slug is unique and immutable once published;
// the (name, address) pair is the duplicate-detection key at creation time.
type Place struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Category      string    `json:"category"`
	Subcategory   string    `json:"subcategory,omitempty"`
	Description   string    `json:"description,omitempty"`
	Address       string    `json:"address"`
	Sido          string    `json:"sido"`
	Sigungu       string    `json:"sigungu"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	Phone         string    `json:"phone,omitempty"`
	Website       string    `json:"website,omitempty"`
	OverallRating float64   `json:"overallRating"`
	ReviewCount   int       `json:"reviewCount"`
	Verified      bool      `json:"verified"`
	Featured      bool      `json:"featured"`
	Source        string    `json:"source,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// PlaceFilters is the closed set of predicates a caller may filter places
// by. Absent fields contribute nothing to the query; arbitrary column
// names are never accepted.
type PlaceFilters struct {
	Sido      string
	Sigungu   string
	Category  string
	Verified  *bool
	Featured  *bool
	MinRating float64
	Search    string
}
