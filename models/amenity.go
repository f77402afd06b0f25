package models

import (
	"strings"
	"time"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type Amenity struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:255;not null" json:"name"`
	Slug        string `gorm:"uniqueIndex;size:255" json:"slug"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	Category    string `gorm:"size:100;index" json:"category,omitempty"`
	Icon        string `gorm:"size:100" json:"icon,omitempty"`
	SortOrder   int    `gorm:"default:0;index" json:"sort_order"`
	IsActive    bool   `gorm:"default:true;index" json:"is_active"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (a *Amenity) BeforeCreate(tx *gorm.DB) error {
	if strings.TrimSpace(a.Slug) == "" {
		a.Slug = slug.Make(a.Name)
	}
	return nil
}
