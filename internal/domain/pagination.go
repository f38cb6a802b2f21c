package domain

// Sort is a caller-supplied sort request. Field is validated against a
// per-entity whitelist before it reaches SQL; Order is normalized to
// ASC or DESC.
type Sort struct {
	Field string `json:"field"`
	Order string `json:"order"`
}

// Page is a caller-supplied pagination request. Page is 1-based.
type Page struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Pagination is the metadata returned alongside every paged result.
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasMore    bool `json:"hasMore"`
}

// NewPagination computes the paging metadata for a total row count.
func NewPagination(page, limit, total int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasMore:    page < totalPages,
	}
}

// RegionCount is an aggregate row for the statistics displays.
type RegionCount struct {
	Sido  string `json:"sido"`
	Count int    `json:"count"`
}

// CategoryCount is an aggregate row for the statistics displays.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}
