package services

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"time"

	"realestate-backend/config"
	"realestate-backend/models"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

var listingStatuses = map[string]bool{
	models.StatusActive:    true,
	models.StatusPending:   true,
	models.StatusSold:      true,
	models.StatusRented:    true,
	models.StatusOffMarket: true,
}

// PropertyInput is the write payload for a property. Pointer fields
// distinguish "absent" from zero; nil AmenityIDs/FeatureIDs/Photos leave the
// existing selection untouched on update.
type PropertyInput struct {
	Title       string          `json:"title"`
	Slug        string          `json:"slug"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency"`

	PropertyTypeID *uint  `json:"property_type_id"`
	Tenure         string `json:"tenure"`
	ListingStatus  string `json:"listing_status"`

	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	ZipCode    string `json:"zip_code"`
	Country    string `json:"country"`
	DistrictID *uint  `json:"district_id"`

	Latitude  *decimal.Decimal `json:"latitude"`
	Longitude *decimal.Decimal `json:"longitude"`

	Bedrooms      *int             `json:"bedrooms"`
	Bathrooms     *decimal.Decimal `json:"bathrooms"`
	HalfBathrooms *int             `json:"half_bathrooms"`
	SquareFootage *int             `json:"square_footage"`
	LotSize       *decimal.Decimal `json:"lot_size"`
	YearBuilt     *int             `json:"year_built"`
	GarageSpaces  *int             `json:"garage_spaces"`

	Photos         []string `json:"photos"`
	VirtualTourURL string   `json:"virtual_tour_url"`
	VideoURL       string   `json:"video_url"`

	AgentName  string `json:"agent_name"`
	AgentEmail string `json:"agent_email"`
	AgentPhone string `json:"agent_phone"`

	ListingDate   *time.Time `json:"listing_date"`
	AvailableDate *time.Time `json:"available_date"`

	IsFeatured  bool `json:"is_featured"`
	IsPublished bool `json:"is_published"`

	MetaTitle       string   `json:"meta_title"`
	MetaDescription string   `json:"meta_description"`
	SEOKeywords     []string `json:"seo_keywords"`

	AmenityIDs []uint `json:"amenity_ids"`
	FeatureIDs []uint `json:"feature_ids"`
}

// AdminListQuery filters the admin property table.
type AdminListQuery struct {
	Status    string
	Published *bool
	Trashed   bool
	Keyword   string
	Page      int
	PerPage   int
}

type PropertyService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewPropertyService(db *gorm.DB, cfg *config.Config) *PropertyService {
	return &PropertyService{db: db, cfg: cfg}
}

func (s *PropertyService) Create(in PropertyInput) (*models.Property, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}

	var property models.Property
	s.apply(&property, in)

	if err := s.db.Create(&property).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, &ValidationError{Fields: map[string]string{"slug": "already in use"}}
		}
		return nil, err
	}
	if err := s.syncRelations(&property, in); err != nil {
		return nil, err
	}
	return s.Get(property.ID, false)
}

func (s *PropertyService) Update(id uint, in PropertyInput) (*models.Property, error) {
	var property models.Property
	if err := s.db.First(&property, id).Error; err != nil {
		return nil, err
	}
	if err := s.validate(in); err != nil {
		return nil, err
	}

	s.apply(&property, in)
	if err := s.db.Save(&property).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, &ValidationError{Fields: map[string]string{"slug": "already in use"}}
		}
		return nil, err
	}
	if err := s.syncRelations(&property, in); err != nil {
		return nil, err
	}
	return s.Get(id, false)
}

func (s *PropertyService) Get(id uint, withTrashed bool) (*models.Property, error) {
	query := s.db
	if withTrashed {
		query = query.Unscoped()
	}
	var property models.Property
	err := query.
		Preload("PropertyType").
		Preload("District").
		Preload("Amenities", refOptions).
		Preload("Features", refOptions).
		First(&property, id).Error
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// List serves the admin table, including the trashed-record filter.
func (s *PropertyService) List(q AdminListQuery) ([]models.Property, int64, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = s.cfg.Search.DefaultPerPage
	}
	if q.PerPage > s.cfg.Search.MaxPerPage {
		q.PerPage = s.cfg.Search.MaxPerPage
	}

	base := s.db.Model(&models.Property{})
	if q.Trashed {
		base = base.Unscoped().Where("deleted_at IS NOT NULL")
	}
	if q.Status != "" {
		base = base.Where("listing_status = ?", q.Status)
	}
	if q.Published != nil {
		base = base.Where("is_published = ?", *q.Published)
	}
	if kw := strings.ToLower(strings.TrimSpace(q.Keyword)); kw != "" {
		base = base.Where("(LOWER(title) LIKE ? OR LOWER(address) LIKE ? OR LOWER(city) LIKE ?)",
			"%"+kw+"%", "%"+kw+"%", "%"+kw+"%")
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var properties []models.Property
	err := base.Session(&gorm.Session{}).
		Preload("PropertyType").
		Preload("District").
		Order("listing_date DESC").Order("created_at DESC").Order("id DESC").
		Limit(q.PerPage).
		Offset((q.Page - 1) * q.PerPage).
		Find(&properties).Error
	return properties, total, err
}

func (s *PropertyService) Delete(id uint) error {
	result := s.db.Delete(&models.Property{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *PropertyService) Restore(id uint) error {
	result := s.db.Unscoped().Model(&models.Property{}).
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Update("deleted_at", nil)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// BulkSetPublished flips the published flag record by record. A failure on
// one record never aborts the batch; every failed id is reported.
func (s *PropertyService) BulkSetPublished(ids []uint, published bool) BulkResult {
	result := newBulkResult(len(ids))
	for _, id := range ids {
		res := s.db.Model(&models.Property{}).Where("id = ?", id).Update("is_published", published)
		switch {
		case res.Error != nil:
			result.Failed = append(result.Failed, BulkFailure{ID: id, Reason: "storage error"})
		case res.RowsAffected == 0:
			result.Failed = append(result.Failed, BulkFailure{ID: id, Reason: "not found"})
		default:
			result.Updated = append(result.Updated, id)
		}
	}
	return result
}

func (s *PropertyService) BulkDelete(ids []uint) BulkResult {
	result := newBulkResult(len(ids))
	for _, id := range ids {
		switch err := s.Delete(id); {
		case errors.Is(err, gorm.ErrRecordNotFound):
			result.Failed = append(result.Failed, BulkFailure{ID: id, Reason: "not found"})
		case err != nil:
			result.Failed = append(result.Failed, BulkFailure{ID: id, Reason: "storage error"})
		default:
			result.Updated = append(result.Updated, id)
		}
	}
	return result
}

func (s *PropertyService) BulkRestore(ids []uint) BulkResult {
	result := newBulkResult(len(ids))
	for _, id := range ids {
		switch err := s.Restore(id); {
		case errors.Is(err, gorm.ErrRecordNotFound):
			result.Failed = append(result.Failed, BulkFailure{ID: id, Reason: "not found"})
		case err != nil:
			result.Failed = append(result.Failed, BulkFailure{ID: id, Reason: "storage error"})
		default:
			result.Updated = append(result.Updated, id)
		}
	}
	return result
}

// AddPhoto appends a stored photo reference, preserving order.
func (s *PropertyService) AddPhoto(id uint, ref string) (*models.Property, error) {
	var property models.Property
	if err := s.db.First(&property, id).Error; err != nil {
		return nil, err
	}
	photos := append(property.PhotoList(), ref)
	if err := property.SetPhotoList(photos); err != nil {
		return nil, err
	}
	if err := s.db.Model(&property).Update("photos", property.Photos).Error; err != nil {
		return nil, err
	}
	return &property, nil
}

// RemovePhoto drops a photo reference; removing an absent reference is a
// no-op.
func (s *PropertyService) RemovePhoto(id uint, ref string) (*models.Property, error) {
	var property models.Property
	if err := s.db.First(&property, id).Error; err != nil {
		return nil, err
	}
	photos := property.PhotoList()
	kept := photos[:0]
	for _, p := range photos {
		if p != ref {
			kept = append(kept, p)
		}
	}
	if err := property.SetPhotoList(kept); err != nil {
		return nil, err
	}
	if err := s.db.Model(&property).Update("photos", property.Photos).Error; err != nil {
		return nil, err
	}
	return &property, nil
}

func (s *PropertyService) validate(in PropertyInput) error {
	ve := newValidationError()

	for _, field := range s.cfg.Properties.RequiredFields {
		switch field {
		case "title":
			if strings.TrimSpace(in.Title) == "" {
				ve.Fields["title"] = "required"
			}
		case "property_type_id":
			if in.PropertyTypeID == nil || *in.PropertyTypeID == 0 {
				ve.Fields["property_type_id"] = "required"
			}
		case "price":
			if !in.Price.IsPositive() {
				ve.Fields["price"] = "must be a positive amount"
			}
		case "address":
			if strings.TrimSpace(in.Address) == "" {
				ve.Fields["address"] = "required"
			}
		case "city":
			if strings.TrimSpace(in.City) == "" {
				ve.Fields["city"] = "required"
			}
		}
	}

	if in.Slug != "" && !slugPattern.MatchString(in.Slug) {
		ve.Fields["slug"] = "may only contain lowercase letters, digits and hyphens"
	}
	if in.ListingStatus != "" && !listingStatuses[in.ListingStatus] {
		ve.Fields["listing_status"] = "unknown status"
	}
	if in.Currency != "" && !s.cfg.SupportedCurrency(in.Currency) {
		ve.Fields["currency"] = "unsupported currency"
	}

	if len(ve.Fields) > 0 {
		return ve
	}
	return nil
}

// apply copies the input onto the model, honoring the optional-attribute
// feature toggles.
func (s *PropertyService) apply(p *models.Property, in PropertyInput) {
	p.Title = in.Title
	if in.Slug != "" {
		p.Slug = in.Slug
	}
	p.Description = in.Description
	p.Price = in.Price
	if in.Currency != "" {
		p.Currency = in.Currency
	} else if p.Currency == "" {
		p.Currency = s.cfg.Currency.Default
	}

	p.PropertyTypeID = in.PropertyTypeID
	if in.ListingStatus != "" {
		p.ListingStatus = in.ListingStatus
	} else if p.ListingStatus == "" {
		p.ListingStatus = models.StatusActive
	}

	p.Address = in.Address
	p.City = in.City
	p.State = in.State
	p.ZipCode = in.ZipCode
	if in.Country != "" {
		p.Country = in.Country
	}
	p.DistrictID = in.DistrictID

	p.Bedrooms = in.Bedrooms
	p.Bathrooms = in.Bathrooms
	p.HalfBathrooms = in.HalfBathrooms
	p.SquareFootage = in.SquareFootage
	p.LotSize = in.LotSize
	p.YearBuilt = in.YearBuilt
	p.GarageSpaces = in.GarageSpaces
	p.VideoURL = in.VideoURL

	p.ListingDate = in.ListingDate
	p.AvailableDate = in.AvailableDate
	p.IsFeatured = in.IsFeatured
	p.IsPublished = in.IsPublished

	if s.cfg.Properties.EnableTenure {
		p.Tenure = in.Tenure
	}
	if s.cfg.Properties.EnableCoordinates {
		p.Latitude = in.Latitude
		p.Longitude = in.Longitude
	}
	if s.cfg.Properties.EnableVirtualTours {
		p.VirtualTourURL = in.VirtualTourURL
	}
	if s.cfg.Properties.EnableAgentFields {
		p.AgentName = in.AgentName
		p.AgentEmail = in.AgentEmail
		p.AgentPhone = in.AgentPhone
	}
	if s.cfg.Properties.EnableSEOFields {
		p.MetaTitle = in.MetaTitle
		p.MetaDescription = in.MetaDescription
		if in.SEOKeywords != nil {
			raw, _ := json.Marshal(in.SEOKeywords)
			p.SEOKeywords = datatypes.JSON(raw)
		}
	}

	if in.Photos != nil {
		_ = p.SetPhotoList(in.Photos)
	}
}

// syncRelations replaces the amenity/feature selections; nil id lists leave
// the current selection untouched.
func (s *PropertyService) syncRelations(p *models.Property, in PropertyInput) error {
	if in.AmenityIDs != nil {
		var amenities []models.Amenity
		if len(in.AmenityIDs) > 0 {
			if err := s.db.Find(&amenities, in.AmenityIDs).Error; err != nil {
				return err
			}
		}
		if err := s.db.Model(p).Association("Amenities").Replace(amenities); err != nil {
			return err
		}
	}
	if in.FeatureIDs != nil {
		var features []models.Feature
		if len(in.FeatureIDs) > 0 {
			if err := s.db.Find(&features, in.FeatureIDs).Error; err != nil {
				return err
			}
		}
		if err := s.db.Model(p).Association("Features").Replace(features); err != nil {
			return err
		}
	}
	return nil
}
