package services

import (
	"strconv"
	"strings"

	"realestate-backend/config"
	"realestate-backend/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Sort keys accepted by the composer. Anything else falls back to latest.
const (
	SortLatest        = "latest"
	SortPriceLow      = "price_low"
	SortPriceHigh     = "price_high"
	SortBedrooms      = "bedrooms"
	SortSquareFootage = "square_footage"
)

// CompareOp is the operator of a structured count filter. The legacy "N+"
// string shorthand only exists inside ParseCountToken.
type CompareOp int

const (
	OpEqual CompareOp = iota
	OpAtLeast
)

// CountFilter is a structured {operator, value} filter for bedroom/bathroom
// counts.
type CountFilter struct {
	Op    CompareOp
	Value int
}

// ParseCountToken converts the legacy filter tokens into a structured filter:
// "5+" means at least 5, "3" means exactly 3. Unparseable input yields nil,
// which means no constraint.
func ParseCountToken(raw string) *CountFilter {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	op := OpEqual
	if strings.HasSuffix(raw, "+") {
		op = OpAtLeast
		raw = strings.TrimSuffix(raw, "+")
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return nil
	}
	return &CountFilter{Op: op, Value: n}
}

// ParseDecimal parses a numeric filter value. Values that fail to parse are
// ignored, not treated as zero.
func ParseDecimal(raw string) *decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	return &d
}

// ParseInt parses an integer filter value, ignoring unparseable input.
func ParseInt(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}

// SearchQuery is the full set of optional search criteria. Zero values mean
// "no constraint".
type SearchQuery struct {
	// Keyword is matched case-insensitively as a substring against the
	// configured searchable fields, OR-combined across them.
	Keyword string

	PropertyTypeID uint

	// DistrictIDs is the union of the legacy single district parameter and
	// the multi-value districts parameter. An empty list means no
	// constraint, never "exclude all".
	DistrictIDs []uint

	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal

	MinBedrooms *int
	MaxBedrooms *int
	Bedrooms    *CountFilter

	MinBathrooms *decimal.Decimal
	Bathrooms    *CountFilter

	Tenures []string

	Sort    string
	Page    int
	PerPage int

	// IncludeUnpublished lifts the published/active restriction for the
	// admin surface.
	IncludeUnpublished bool
}

type SearchResult struct {
	Properties []models.Property `json:"data"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PerPage    int               `json:"per_page"`
	TotalPages int               `json:"total_pages"`
}

// SearchService composes property searches. It is the only non-trivial read
// path: every supplied filter becomes an independent AND predicate, then the
// result is sorted deterministically and paginated.
type SearchService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewSearchService(db *gorm.DB, cfg *config.Config) *SearchService {
	return &SearchService{db: db, cfg: cfg}
}

// Columns the keyword search may touch. The configured field list is checked
// against this so configuration can narrow but never inject.
var searchableColumns = map[string]bool{
	"title":            true,
	"description":      true,
	"address":          true,
	"city":             true,
	"state":            true,
	"zip_code":         true,
	"agent_name":       true,
	"meta_title":       true,
	"meta_description": true,
}

func (s *SearchService) Search(q SearchQuery) (*SearchResult, error) {
	q = s.normalize(q)

	base := s.db.Model(&models.Property{})
	if !q.IncludeUnpublished {
		base = base.Scopes(models.Published, models.ActiveListing)
	}

	base = s.applyKeyword(base, q.Keyword)

	if q.PropertyTypeID != 0 {
		base = base.Where("property_type_id = ?", q.PropertyTypeID)
	}
	if len(q.DistrictIDs) > 0 {
		base = base.Where("district_id IN ?", q.DistrictIDs)
	}
	if q.MinPrice != nil {
		base = base.Where("price >= ?", *q.MinPrice)
	}
	if q.MaxPrice != nil {
		base = base.Where("price <= ?", *q.MaxPrice)
	}
	if q.MinBedrooms != nil {
		base = base.Where("bedrooms >= ?", *q.MinBedrooms)
	}
	if q.MaxBedrooms != nil {
		base = base.Where("bedrooms <= ?", *q.MaxBedrooms)
	}
	if q.Bedrooms != nil {
		base = applyCountFilter(base, "bedrooms", q.Bedrooms)
	}
	if q.MinBathrooms != nil {
		base = base.Where("bathrooms >= ?", *q.MinBathrooms)
	}
	if q.Bathrooms != nil {
		base = applyCountFilter(base, "bathrooms", q.Bathrooms)
	}
	if len(q.Tenures) > 0 {
		base = base.Where("tenure IN ?", q.Tenures)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	var properties []models.Property
	err := base.Session(&gorm.Session{}).
		Scopes(orderFor(q.Sort)).
		Preload("PropertyType").
		Preload("District").
		Limit(q.PerPage).
		Offset((q.Page - 1) * q.PerPage).
		Find(&properties).Error
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(q.PerPage) - 1) / int64(q.PerPage))
	return &SearchResult{
		Properties: properties,
		Total:      total,
		Page:       q.Page,
		PerPage:    q.PerPage,
		TotalPages: totalPages,
	}, nil
}

// GetBySlug loads a published property for the detail page together with up
// to three related listings of the same type.
func (s *SearchService) GetBySlug(slugValue string) (*models.Property, []models.Property, error) {
	var property models.Property
	err := s.db.Scopes(models.Published).
		Preload("PropertyType").
		Preload("District").
		Preload("Amenities", refOptions).
		Preload("Features", refOptions).
		Where("slug = ?", slugValue).
		First(&property).Error
	if err != nil {
		return nil, nil, err
	}

	var related []models.Property
	relatedQuery := s.db.Scopes(models.Published, models.ActiveListing).
		Where("id <> ?", property.ID)
	if property.PropertyTypeID != nil {
		relatedQuery = relatedQuery.Where("property_type_id = ?", *property.PropertyTypeID)
	}
	if err := relatedQuery.Scopes(orderFor(SortLatest)).Limit(3).Find(&related).Error; err != nil {
		return nil, nil, err
	}

	return &property, related, nil
}

// FeaturedProperty resolves the spotlight block: a manually chosen listing
// when propertyID is set, otherwise the latest featured one.
func (s *SearchService) FeaturedProperty(propertyID uint) (*models.Property, error) {
	query := s.db.Scopes(models.Published).
		Preload("PropertyType").
		Preload("District").
		Preload("Amenities", refOptions)
	if propertyID != 0 {
		query = query.Where("id = ?", propertyID)
	} else {
		query = query.Scopes(models.ActiveListing, models.FeaturedOnly, orderFor(SortLatest))
	}

	var property models.Property
	if err := query.First(&property).Error; err != nil {
		return nil, err
	}
	return &property, nil
}

// BlockQuery selects properties for the curated listings block.
type BlockQuery struct {
	DisplayType    string // featured, latest, specific_type, price_range
	PropertyTypeID uint
	MinPrice       *decimal.Decimal
	MaxPrice       *decimal.Decimal
	Limit          int
	Sort           string
}

func (s *SearchService) ListingsBlock(q BlockQuery) ([]models.Property, error) {
	base := s.db.Scopes(models.Published, models.ActiveListing).
		Preload("PropertyType").
		Preload("District")

	switch q.DisplayType {
	case "featured", "":
		base = base.Scopes(models.FeaturedOnly)
	case "latest":
	case "specific_type":
		if q.PropertyTypeID != 0 {
			base = base.Where("property_type_id = ?", q.PropertyTypeID)
		}
	case "price_range":
		if q.MinPrice != nil {
			base = base.Where("price >= ?", *q.MinPrice)
		}
		if q.MaxPrice != nil {
			base = base.Where("price <= ?", *q.MaxPrice)
		}
	}

	// Block limit is 3..12 with 6 as the unset default.
	limit := q.Limit
	if limit < 1 {
		limit = 6
	} else if limit < 3 {
		limit = 3
	}
	if limit > 12 {
		limit = 12
	}

	var properties []models.Property
	err := base.Scopes(orderFor(q.Sort)).Limit(limit).Find(&properties).Error
	return properties, err
}

func (s *SearchService) normalize(q SearchQuery) SearchQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = s.cfg.Search.DefaultPerPage
	}
	if q.PerPage > s.cfg.Search.MaxPerPage {
		q.PerPage = s.cfg.Search.MaxPerPage
	}
	if q.Sort == "" {
		q.Sort = s.cfg.Search.DefaultSort
	}
	return q
}

func (s *SearchService) applyKeyword(db *gorm.DB, keyword string) *gorm.DB {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return db
	}

	var clauses []string
	var args []any
	for _, field := range s.cfg.Search.SearchableFields {
		if !searchableColumns[field] {
			continue
		}
		clauses = append(clauses, "LOWER("+field+") LIKE ?")
		args = append(args, "%"+keyword+"%")
	}
	if len(clauses) == 0 {
		return db
	}
	return db.Where("("+strings.Join(clauses, " OR ")+")", args...)
}

func applyCountFilter(db *gorm.DB, column string, f *CountFilter) *gorm.DB {
	if f.Op == OpAtLeast {
		return db.Where(column+" >= ?", f.Value)
	}
	return db.Where(column+" = ?", f.Value)
}

// orderFor maps a sort key to a deterministic ordering; ties always break on
// id so pagination is stable. Unrecognized keys fall back to latest.
func orderFor(sort string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch sort {
		case SortPriceLow:
			return db.Order("price ASC").Order("id ASC")
		case SortPriceHigh:
			return db.Order("price DESC").Order("id ASC")
		case SortBedrooms:
			return db.Order("bedrooms DESC").Order("id ASC")
		case SortSquareFootage:
			return db.Order("square_footage DESC").Order("id ASC")
		default: // latest
			return db.Order("listing_date DESC").Order("created_at DESC").Order("id DESC")
		}
	}
}

func refOptions(db *gorm.DB) *gorm.DB {
	return db.Scopes(models.ActiveRef, models.Ordered)
}
