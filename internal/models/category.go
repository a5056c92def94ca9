package models

// Category groups products. Name is required; description is optional.
type Category struct {
	Entity
	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"size:1000" json:"description"`
}

func (Category) TableName() string {
	return "categories"
}
