package config

import (
	"log"

	"realestate-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed installs the reference data and the default admin. Idempotent: every
// record is matched by slug (or email) before insert, so re-running is safe.
func Seed(db *gorm.DB) {
	seedAdmin(db)
	seedPropertyTypes(db)
	seedDistricts(db)
	seedAmenities(db)
	seedFeatures(db)
	log.Println("reference data ensured")
}

func seedAdmin(db *gorm.DB) {
	email := envOrDefault("ADMIN_EMAIL", "admin@realestate.local")
	password := envOrDefault("ADMIN_PASSWORD", "admin123")

	var count int64
	db.Model(&models.Admin{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("warning: failed to hash default admin password: %v", err)
		return
	}
	admin := models.Admin{FullName: "Admin User", Email: email, Password: string(hash)}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("warning: failed to create default admin: %v", err)
		return
	}
	log.Println("default admin seeded")
}

func seedPropertyTypes(db *gorm.DB) {
	types := []models.PropertyType{
		{Name: "HDB Flat", Slug: "hdb-flat", SortOrder: 1},
		{Name: "Condominium", Slug: "condominium", SortOrder: 2},
		{Name: "Landed House", Slug: "landed-house", SortOrder: 3},
		{Name: "Executive Condominium", Slug: "executive-condominium", SortOrder: 4},
		{Name: "Commercial", Slug: "commercial", SortOrder: 5},
		{Name: "Industrial", Slug: "industrial", SortOrder: 6},
	}
	for i := range types {
		types[i].IsActive = true
		db.Where(models.PropertyType{Slug: types[i].Slug}).FirstOrCreate(&types[i])
	}
}

func seedDistricts(db *gorm.DB) {
	districts := []models.District{
		{Name: "Boat Quay", Slug: "boat-quay", PostalCodePrefix: "01", SortOrder: 1},
		{Name: "Chinatown", Slug: "chinatown", PostalCodePrefix: "01", SortOrder: 2},
		{Name: "Raffles Place", Slug: "raffles-place", PostalCodePrefix: "01", SortOrder: 3},
		{Name: "Anson", Slug: "anson", PostalCodePrefix: "02", SortOrder: 4},
		{Name: "Tanjong Pagar", Slug: "tanjong-pagar", PostalCodePrefix: "02", SortOrder: 5},
		{Name: "Alexandra", Slug: "alexandra", PostalCodePrefix: "03", SortOrder: 6},
		{Name: "Commonwealth", Slug: "commonwealth", PostalCodePrefix: "03", SortOrder: 7},
		{Name: "Orchard", Slug: "orchard", PostalCodePrefix: "09", SortOrder: 8},
		{Name: "River Valley", Slug: "river-valley", PostalCodePrefix: "09", SortOrder: 9},
		{Name: "Ardmore", Slug: "ardmore", PostalCodePrefix: "10", SortOrder: 10},
		{Name: "Bukit Timah", Slug: "bukit-timah", PostalCodePrefix: "10", SortOrder: 11},
		{Name: "Holland Road", Slug: "holland-road", PostalCodePrefix: "10", SortOrder: 12},
		{Name: "Novena", Slug: "novena", PostalCodePrefix: "11", SortOrder: 13},
		{Name: "Newton", Slug: "newton", PostalCodePrefix: "11", SortOrder: 14},
		{Name: "Clementi", Slug: "clementi", PostalCodePrefix: "12", SortOrder: 15},
		{Name: "Jurong East", Slug: "jurong-east", PostalCodePrefix: "60", SortOrder: 16},
		{Name: "Tampines", Slug: "tampines", PostalCodePrefix: "52", SortOrder: 17},
		{Name: "Bedok", Slug: "bedok", PostalCodePrefix: "46", SortOrder: 18},
		{Name: "Hougang", Slug: "hougang", PostalCodePrefix: "53", SortOrder: 19},
		{Name: "Ang Mo Kio", Slug: "ang-mo-kio", PostalCodePrefix: "56", SortOrder: 20},
	}
	for i := range districts {
		districts[i].Country = "Singapore"
		districts[i].IsActive = true
		db.Where(models.District{Slug: districts[i].Slug}).FirstOrCreate(&districts[i])
	}
}

func seedAmenities(db *gorm.DB) {
	amenities := []models.Amenity{
		{Name: "Swimming Pool", Slug: "swimming-pool", Category: "building", SortOrder: 1},
		{Name: "Gym/Fitness Center", Slug: "gym-fitness-center", Category: "building", SortOrder: 2},
		{Name: "Tennis Court", Slug: "tennis-court", Category: "building", SortOrder: 3},
		{Name: "Basketball Court", Slug: "basketball-court", Category: "building", SortOrder: 4},
		{Name: "Playground", Slug: "playground", Category: "building", SortOrder: 5},
		{Name: "BBQ Pits", Slug: "bbq-pits", Category: "building", SortOrder: 6},
		{Name: "Function Room", Slug: "function-room", Category: "building", SortOrder: 7},
		{Name: "Concierge", Slug: "concierge", Category: "building", SortOrder: 8},
		{Name: "Near MRT", Slug: "near-mrt", Category: "location", SortOrder: 9},
		{Name: "Near Shopping Mall", Slug: "near-shopping-mall", Category: "location", SortOrder: 10},
		{Name: "Near Schools", Slug: "near-schools", Category: "location", SortOrder: 11},
		{Name: "Near Hospital", Slug: "near-hospital", Category: "location", SortOrder: 12},
		{Name: "Near Park", Slug: "near-park", Category: "location", SortOrder: 13},
		{Name: "24/7 Security", Slug: "24-7-security", Category: "security", SortOrder: 14},
		{Name: "CCTV", Slug: "cctv", Category: "security", SortOrder: 15},
		{Name: "Access Card System", Slug: "access-card-system", Category: "security", SortOrder: 16},
		{Name: "Covered Parking", Slug: "covered-parking", Category: "parking", SortOrder: 17},
		{Name: "Visitor Parking", Slug: "visitor-parking", Category: "parking", SortOrder: 18},
	}
	for i := range amenities {
		amenities[i].IsActive = true
		db.Where(models.Amenity{Slug: amenities[i].Slug}).FirstOrCreate(&amenities[i])
	}
}

func seedFeatures(db *gorm.DB) {
	features := []models.Feature{
		{Name: "Air Conditioning", Slug: "air-conditioning", Category: "interior", SortOrder: 1},
		{Name: "Built-in Wardrobes", Slug: "built-in-wardrobes", Category: "interior", SortOrder: 2},
		{Name: "Study Room", Slug: "study-room", Category: "interior", SortOrder: 3},
		{Name: "Maid Room", Slug: "maid-room", Category: "interior", SortOrder: 4},
		{Name: "High Ceiling", Slug: "high-ceiling", Category: "interior", SortOrder: 5},
		{Name: "Open Kitchen", Slug: "open-kitchen", Category: "kitchen", SortOrder: 6},
		{Name: "Kitchen Island", Slug: "kitchen-island", Category: "kitchen", SortOrder: 7},
		{Name: "Built-in Appliances", Slug: "built-in-appliances", Category: "kitchen", SortOrder: 8},
		{Name: "Jacuzzi", Slug: "jacuzzi", Category: "bathroom", SortOrder: 9},
		{Name: "Shower Stall", Slug: "shower-stall", Category: "bathroom", SortOrder: 10},
		{Name: "Bathtub", Slug: "bathtub", Category: "bathroom", SortOrder: 11},
		{Name: "Balcony", Slug: "balcony", Category: "exterior", SortOrder: 12},
		{Name: "Terrace", Slug: "terrace", Category: "exterior", SortOrder: 13},
		{Name: "Garden", Slug: "garden", Category: "exterior", SortOrder: 14},
		{Name: "Pool View", Slug: "pool-view", Category: "exterior", SortOrder: 15},
		{Name: "Sea View", Slug: "sea-view", Category: "exterior", SortOrder: 16},
		{Name: "City View", Slug: "city-view", Category: "exterior", SortOrder: 17},
		{Name: "Parquet Flooring", Slug: "parquet-flooring", Category: "flooring", SortOrder: 18},
		{Name: "Marble Flooring", Slug: "marble-flooring", Category: "flooring", SortOrder: 19},
		{Name: "Tiles", Slug: "tiles", Category: "flooring", SortOrder: 20},
		{Name: "Central Air", Slug: "central-air", Category: "utilities", SortOrder: 21},
		{Name: "Water Heater", Slug: "water-heater", Category: "utilities", SortOrder: 22},
	}
	for i := range features {
		features[i].IsActive = true
		db.Where(models.Feature{Slug: features[i].Slug}).FirstOrCreate(&features[i])
	}
}
