package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultAuthor is recorded in the audit columns when no user is known.
const DefaultAuthor = "Admin"

// Entity holds the identifier and audit columns shared by catalog tables.
type Entity struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedBy    string     `gorm:"size:255;not null;default:Admin" json:"createdBy"`
	CreatedDate  time.Time  `gorm:"not null;index" json:"createdDate"`
	ModifiedBy   *string    `gorm:"size:255" json:"modifiedBy,omitempty"`
	ModifiedDate *time.Time `json:"modifiedDate,omitempty"`
}
