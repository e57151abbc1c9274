package entity

// ServiceGroup is the top level of the 4-level service catalog tree
type ServiceGroup struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

// Category belongs to a service group
type Category struct {
	ID      string `json:"id"`
	GroupID string `json:"group_id"`
	Name    string `json:"name"`
}

// Subcategory belongs to a category; regular requests reference it
type Subcategory struct {
	ID         string `json:"id"`
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
}

// QuickService is a fixed-price offering under a subcategory
type QuickService struct {
	ID            string  `json:"id"`
	SubcategoryID string  `json:"subcategory_id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	DurationHours int     `json:"duration_hours"`
}

// CategoryWithSubcategories is the category detail shape; the data layer
// attaches the subcategories on read
type CategoryWithSubcategories struct {
	Category
	Subcategories []Subcategory `json:"subcategories"`
}
