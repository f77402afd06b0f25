package models

import (
	"strings"
	"time"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// District is a named sub-region used for location-based filtering,
// independent of the free-text city/state fields on a property.
type District struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	Name             string `gorm:"size:255;not null" json:"name"`
	Slug             string `gorm:"uniqueIndex;size:255" json:"slug"`
	Description      string `gorm:"type:text" json:"description,omitempty"`
	Country          string `gorm:"size:100" json:"country,omitempty"`
	StateProvince    string `gorm:"size:100" json:"state_province,omitempty"`
	PostalCodePrefix string `gorm:"size:10" json:"postal_code_prefix,omitempty"`
	SortOrder        int    `gorm:"default:0;index" json:"sort_order"`
	IsActive         bool   `gorm:"default:true;index" json:"is_active"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (d *District) BeforeCreate(tx *gorm.DB) error {
	if strings.TrimSpace(d.Slug) == "" {
		d.Slug = slug.Make(d.Name)
	}
	return nil
}

// FullName appends the state/province when present.
func (d *District) FullName() string {
	if d.StateProvince != "" {
		return d.Name + ", " + d.StateProvince
	}
	return d.Name
}
