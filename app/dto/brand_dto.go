package dto

// BrandDTO is the public representation of a brand
type BrandDTO struct {
	ID          uint    `json:"id"`
	UUID        string  `json:"uuid"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	LogoURL     *string `json:"logo_url,omitempty"`
	OfficialURL *string `json:"official_url,omitempty"`
	IsActive    bool    `json:"is_active"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// AdminBrandDTO extends the public brand with counters the dashboard shows
type AdminBrandDTO struct {
	BrandDTO
	EventCount    int64 `json:"event_count"`
	FavoriteCount int64 `json:"favorite_count"`
}

// CreateBrandRequest creates a brand; the logo arrives as a separate multipart part
type CreateBrandRequest struct {
	Name        string  `json:"name" form:"name" validate:"required,min=1,max=255"`
	Category    string  `json:"category" form:"category" validate:"required"`
	OfficialURL *string `json:"official_url" form:"official_url" validate:"omitempty,url,max=2048"`
	IsActive    *bool   `json:"is_active" form:"is_active" validate:"omitempty"`
}

// UpdateBrandRequest patches a brand; nil fields are left untouched
type UpdateBrandRequest struct {
	Name        *string `json:"name" form:"name" validate:"omitempty,min=1,max=255"`
	Category    *string `json:"category" form:"category" validate:"omitempty"`
	OfficialURL *string `json:"official_url" form:"official_url" validate:"omitempty,url,max=2048"`
	IsActive    *bool   `json:"is_active" form:"is_active" validate:"omitempty"`
}

// BrandListResponse wraps the public brand listing
type BrandListResponse struct {
	Brands []BrandDTO `json:"brands"`
	Total  int        `json:"total"`
}

// AdminBrandListResponse wraps the admin brand listing
type AdminBrandListResponse struct {
	Brands []AdminBrandDTO `json:"brands"`
	Total  int             `json:"total"`
}

// FavoriteDTO is a user who favorited a brand, joined with their display name
type FavoriteDTO struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	CreatedAt   string `json:"created_at"`
}

// AdminBrandDetailResponse is the drill-down view of one brand
type AdminBrandDetailResponse struct {
	Brand     BrandDTO        `json:"brand"`
	Events    []AdminEventDTO `json:"events"`
	Favorites []FavoriteDTO   `json:"favorites"`
}
