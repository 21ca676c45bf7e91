package dto

// AdminEventDTO is the admin representation of an event row
type AdminEventDTO struct {
	ID          uint    `json:"id"`
	UUID        string  `json:"uuid"`
	BrandID     uint    `json:"brand_id"`
	BrandUUID   string  `json:"brand_uuid"`
	BrandName   string  `json:"brand_name"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Category    string  `json:"category"`
	EventType   string  `json:"event_type"`
	Source      *string `json:"source,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// CreateEventRequest creates an event under an existing brand
type CreateEventRequest struct {
	BrandUUID   string  `json:"brand_uuid" validate:"required,uuid4"`
	Title       string  `json:"title" validate:"required,min=1,max=512"`
	Description *string `json:"description" validate:"omitempty,max=10000"`
	StartDate   string  `json:"start_date" validate:"required"`
	EndDate     *string `json:"end_date" validate:"omitempty"`
	Category    *string `json:"category" validate:"omitempty"`
	EventType   *string `json:"event_type" validate:"omitempty"`
	Source      *string `json:"source" validate:"omitempty,max=2048"`
}

// UpdateEventRequest rewrites an event's schedule. Title and start date are
// mandatory on every update; a missing end date resets the event to
// single-day. The remaining fields are optional patches.
type UpdateEventRequest struct {
	Title       string  `json:"title" validate:"required,min=1,max=512"`
	StartDate   string  `json:"start_date" validate:"required"`
	EndDate     *string `json:"end_date" validate:"omitempty"`
	BrandUUID   *string `json:"brand_uuid" validate:"omitempty,uuid4"`
	Description *string `json:"description" validate:"omitempty,max=10000"`
	Category    *string `json:"category" validate:"omitempty"`
	EventType   *string `json:"event_type" validate:"omitempty"`
	Source      *string `json:"source" validate:"omitempty,max=2048"`
}

// AdminEventListResponse wraps the admin event listing
type AdminEventListResponse struct {
	Events []AdminEventDTO `json:"events"`
	Total  int             `json:"total"`
}
