package models

import (
	"strings"
	"time"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type PropertyType struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:255;not null" json:"name"`
	Slug        string `gorm:"uniqueIndex;size:255" json:"slug"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	Icon        string `gorm:"size:100" json:"icon,omitempty"`
	SortOrder   int    `gorm:"default:0;index" json:"sort_order"`
	IsActive    bool   `gorm:"default:true;index" json:"is_active"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (t *PropertyType) BeforeCreate(tx *gorm.DB) error {
	if strings.TrimSpace(t.Slug) == "" {
		t.Slug = slug.Make(t.Name)
	}
	return nil
}

// ActiveRef scopes reference-entity queries to active records.
func ActiveRef(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

// Ordered sorts reference entities by their configured order, then name.
func Ordered(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order").Order("name")
}
