package model

// DefaultCategoryColor is applied when a category is created without an
// explicit color.
const DefaultCategoryColor = "#8B5CF6"

// UnknownCategoryName is rendered for tasks whose category_id no longer
// resolves to an existing category.
const UnknownCategoryName = "Unknown"

// Category groups tasks under a named, colored label.
type Category struct {
	// ID is the server-assigned unique identifier.
	ID string `json:"id"`

	// Name is the user-chosen label.
	Name string `json:"name"`

	// Color is a hex color string (e.g., "#8B5CF6").
	Color string `json:"color"`
}
