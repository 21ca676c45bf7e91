// Package dto contains request and response structures for the HTTP layer
package dto

// EventsRequest carries the month window for the public calendar feed
type EventsRequest struct {
	Year  int `json:"year" query:"year" validate:"required,min=2000,max=2100"`
	Month int `json:"month" query:"month" validate:"required,min=1,max=12"`
}

// PromotionEventDTO is a single calendar entry with its brand denormalized in.
// Keys are camelCase: the calendar frontend consumes this shape as-is.
type PromotionEventDTO struct {
	ID          string `json:"id"`
	Brand       string `json:"brand"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Category    string `json:"category"`
	Type        string `json:"type"`
}

// EventsResponse is the payload of the public month-window feed.
// BrandLogos maps brand name to logo URL; Sources is reserved and
// always serialized as an empty array.
type EventsResponse struct {
	Events     []PromotionEventDTO `json:"events"`
	BrandLogos map[string]string   `json:"brandLogos"`
	Sources    []string            `json:"sources"`
}
