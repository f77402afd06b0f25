package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Listing statuses a property can be in. Only "active" listings are eligible
// for the public search surface.
const (
	StatusActive    = "active"
	StatusPending   = "pending"
	StatusSold      = "sold"
	StatusRented    = "rented"
	StatusOffMarket = "off_market"
)

type Property struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title       string          `gorm:"size:255;not null" json:"title"`
	Slug        string          `gorm:"uniqueIndex;size:255" json:"slug"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);index" json:"price"`
	Currency    string          `gorm:"size:3;default:USD" json:"currency"`

	PropertyTypeID *uint  `gorm:"index" json:"property_type_id,omitempty"`
	Tenure         string `gorm:"size:50;index" json:"tenure,omitempty"`
	ListingStatus  string `gorm:"size:50;default:active;index" json:"listing_status"`

	Address    string `gorm:"size:255" json:"address"`
	City       string `gorm:"size:100;index" json:"city"`
	State      string `gorm:"size:100" json:"state"`
	ZipCode    string `gorm:"size:20" json:"zip_code"`
	Country    string `gorm:"size:100;default:US" json:"country"`
	DistrictID *uint  `gorm:"index" json:"district_id,omitempty"`

	Latitude  *decimal.Decimal `gorm:"type:decimal(10,8)" json:"latitude,omitempty"`
	Longitude *decimal.Decimal `gorm:"type:decimal(11,8)" json:"longitude,omitempty"`

	Bedrooms      *int             `gorm:"index" json:"bedrooms,omitempty"`
	Bathrooms     *decimal.Decimal `gorm:"type:decimal(3,1)" json:"bathrooms,omitempty"`
	HalfBathrooms *int             `json:"half_bathrooms,omitempty"`
	SquareFootage *int             `json:"square_footage,omitempty"`
	LotSize       *decimal.Decimal `gorm:"type:decimal(8,2)" json:"lot_size,omitempty"`
	YearBuilt     *int             `json:"year_built,omitempty"`
	GarageSpaces  *int             `json:"garage_spaces,omitempty"`

	Photos         datatypes.JSON `json:"photos,omitempty"`
	VirtualTourURL string         `gorm:"size:255" json:"virtual_tour_url,omitempty"`
	VideoURL       string         `gorm:"size:255" json:"video_url,omitempty"`

	AgentName  string `gorm:"size:255" json:"agent_name,omitempty"`
	AgentEmail string `gorm:"size:255" json:"agent_email,omitempty"`
	AgentPhone string `gorm:"size:50" json:"agent_phone,omitempty"`

	ListingDate   *time.Time `gorm:"index" json:"listing_date,omitempty"`
	AvailableDate *time.Time `json:"available_date,omitempty"`

	IsFeatured  bool `gorm:"index" json:"is_featured"`
	IsPublished bool `gorm:"index" json:"is_published"`

	MetaTitle       string         `gorm:"size:255" json:"meta_title,omitempty"`
	MetaDescription string         `gorm:"type:text" json:"meta_description,omitempty"`
	SEOKeywords     datatypes.JSON `gorm:"column:seo_keywords" json:"seo_keywords,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	PropertyType *PropertyType `gorm:"foreignKey:PropertyTypeID" json:"property_type,omitempty"`
	District     *District     `gorm:"foreignKey:DistrictID" json:"district,omitempty"`
	Amenities    []Amenity     `gorm:"many2many:property_amenities;constraint:OnDelete:CASCADE" json:"amenities,omitempty"`
	Features     []Feature     `gorm:"many2many:property_features;constraint:OnDelete:CASCADE" json:"features,omitempty"`
}

// BeforeCreate derives the slug from the title when absent and defaults the
// listing date to the creation time, mirroring the catalog's write rules.
func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if strings.TrimSpace(p.Slug) == "" {
		p.Slug = slug.Make(p.Title)
	}
	if p.ListingDate == nil {
		now := time.Now()
		p.ListingDate = &now
	}
	return nil
}

// PhotoList decodes the ordered photo references.
func (p *Property) PhotoList() []string {
	if len(p.Photos) == 0 {
		return nil
	}
	var photos []string
	if err := json.Unmarshal(p.Photos, &photos); err != nil {
		return nil
	}
	return photos
}

// SetPhotoList stores the ordered photo references.
func (p *Property) SetPhotoList(photos []string) error {
	raw, err := json.Marshal(photos)
	if err != nil {
		return err
	}
	p.Photos = datatypes.JSON(raw)
	return nil
}

// PrimaryPhoto returns the first photo reference, if any.
func (p *Property) PrimaryPhoto() string {
	if photos := p.PhotoList(); len(photos) > 0 {
		return photos[0]
	}
	return ""
}

// FullAddress joins the non-empty address parts.
func (p *Property) FullAddress() string {
	parts := make([]string, 0, 4)
	for _, part := range []string{p.Address, p.City, p.State, p.ZipCode} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}

// BathroomDisplay renders full plus half bathrooms, e.g. "2.5" or "3".
func (p *Property) BathroomDisplay() string {
	total := decimal.Zero
	if p.Bathrooms != nil {
		total = *p.Bathrooms
	}
	if p.HalfBathrooms != nil {
		total = total.Add(decimal.NewFromInt(int64(*p.HalfBathrooms)).Mul(decimal.NewFromFloat(0.5)))
	}
	if total.IsInteger() {
		return total.StringFixed(0)
	}
	return total.StringFixed(1)
}

// SEOTitle falls back to the listing title when no meta title is set.
func (p *Property) SEOTitle() string {
	if p.MetaTitle != "" {
		return p.MetaTitle
	}
	return p.Title
}

// SEODescription falls back to the description, truncated to meta length.
func (p *Property) SEODescription() string {
	if p.MetaDescription != "" {
		return p.MetaDescription
	}
	desc := strings.Join(strings.Fields(p.Description), " ")
	if len(desc) > 160 {
		desc = strings.TrimSpace(desc[:157]) + "..."
	}
	return desc
}

func (p *Property) HasVirtualTour() bool { return p.VirtualTourURL != "" }

func (p *Property) HasVideo() bool { return p.VideoURL != "" }

// StructuredData builds the schema.org RealEstateListing document for the
// detail page.
func (p *Property) StructuredData(url string) map[string]any {
	availability := "OutOfStock"
	if p.ListingStatus == StatusActive {
		availability = "InStock"
	}
	data := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "RealEstateListing",
		"name":        p.Title,
		"description": p.Description,
		"url":         url,
		"address": map[string]any{
			"@type":           "PostalAddress",
			"streetAddress":   p.Address,
			"addressLocality": p.City,
			"addressRegion":   p.State,
			"postalCode":      p.ZipCode,
			"addressCountry":  p.Country,
		},
		"offers": map[string]any{
			"@type":         "Offer",
			"price":         p.Price,
			"priceCurrency": p.Currency,
			"availability":  availability,
		},
		"numberOfBathroomsTotal": p.BathroomDisplay(),
	}
	if p.Bedrooms != nil {
		data["numberOfRooms"] = *p.Bedrooms
	}
	if p.SquareFootage != nil {
		data["floorSize"] = map[string]any{
			"@type":    "QuantitativeValue",
			"value":    *p.SquareFootage,
			"unitText": "sq ft",
		}
	}
	return data
}

// Published scopes a query to publicly visible records.
func Published(db *gorm.DB) *gorm.DB {
	return db.Where("is_published = ?", true)
}

// ActiveListing scopes a query to active listings.
func ActiveListing(db *gorm.DB) *gorm.DB {
	return db.Where("listing_status = ?", StatusActive)
}

// FeaturedOnly scopes a query to featured listings.
func FeaturedOnly(db *gorm.DB) *gorm.DB {
	return db.Where("is_featured = ?", true)
}
