// Package models contains domain entities and business models for the promotion calendar
package models

// Category is the closed set of brand/event categories.
// Values are the Korean display strings stored in the database;
// CategoryAll is a UI-only filter value and is never persisted.
type Category string

const (
	CategoryAll           Category = "전체"
	CategoryBeauty        Category = "뷰티"
	CategoryFashion       Category = "패션"
	CategoryFood          Category = "음식"
	CategoryAccommodation Category = "숙박"
	CategoryCulture       Category = "문화"
	CategoryOther         Category = "기타"
)

// CategoryList is the fixed presentation order, ALL first.
var CategoryList = []Category{
	CategoryAll,
	CategoryBeauty,
	CategoryFashion,
	CategoryFood,
	CategoryAccommodation,
	CategoryCulture,
	CategoryOther,
}

// storableCategories are the values a brand or event row may carry.
var storableCategories = map[Category]bool{
	CategoryBeauty:        true,
	CategoryFashion:       true,
	CategoryFood:          true,
	CategoryAccommodation: true,
	CategoryCulture:       true,
	CategoryOther:         true,
}

// ParseCategory matches raw input against the six storable enum values.
// ALL never parses; it is not a stored category.
func ParseCategory(raw string) (Category, bool) {
	c := Category(raw)
	if storableCategories[c] {
		return c, true
	}
	return "", false
}

// ResolveCategory picks the event's category with the documented fallback
// chain: the event row's own value if valid, else the owning brand's
// category, else OTHER.
func ResolveCategory(rowCategory, brandCategory string) Category {
	if c, ok := ParseCategory(rowCategory); ok {
		return c
	}
	if c, ok := ParseCategory(brandCategory); ok {
		return c
	}
	return CategoryOther
}

func (c Category) String() string { return string(c) }
