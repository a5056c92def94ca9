package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a catalog item. CategoryID must reference an existing
// category; deleting a referenced category is refused by the database.
type Product struct {
	Entity
	Name       string          `gorm:"size:255;not null" json:"name"`
	Price      decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"price"`
	CategoryID uuid.UUID       `gorm:"type:uuid;not null;index" json:"categoryId"`
	Category   Category        `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"category"`
}

func (Product) TableName() string {
	return "products"
}
