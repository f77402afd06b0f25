package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"realestate-backend/config"
	"realestate-backend/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database migrated to the full
// schema. Each test gets its own database keyed by the test name.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := config.MigrateModels(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func testConfig() *config.Config {
	return config.Load()
}

func intp(n int) *int { return &n }

func decp(t *testing.T, s string) *decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return &d
}

func mustDec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	return *decp(t, s)
}

// listedDaysAgo returns a listing date n days in the past so tests can force
// a known latest ordering.
func listedDaysAgo(n int) *time.Time {
	ts := time.Now().AddDate(0, 0, -n)
	return &ts
}

// createProperty inserts a published active listing and applies any
// overrides before saving.
func createProperty(t *testing.T, db *gorm.DB, title, price string, mutate func(*models.Property)) *models.Property {
	t.Helper()
	p := models.Property{
		Title:         title,
		Price:         mustDec(t, price),
		Currency:      "USD",
		ListingStatus: models.StatusActive,
		Address:       "1 Test Street",
		City:          "Singapore",
		IsPublished:   true,
	}
	if mutate != nil {
		mutate(&p)
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("create property %q: %v", title, err)
	}
	return &p
}

func createPropertyType(t *testing.T, db *gorm.DB, name string) *models.PropertyType {
	t.Helper()
	pt := models.PropertyType{Name: name, IsActive: true}
	if err := db.Create(&pt).Error; err != nil {
		t.Fatalf("create property type %q: %v", name, err)
	}
	return &pt
}

func createDistrict(t *testing.T, db *gorm.DB, name string) *models.District {
	t.Helper()
	d := models.District{Name: name, Country: "Singapore", IsActive: true}
	if err := db.Create(&d).Error; err != nil {
		t.Fatalf("create district %q: %v", name, err)
	}
	return &d
}

func resultTitles(result *SearchResult) []string {
	titles := make([]string, 0, len(result.Properties))
	for _, p := range result.Properties {
		titles = append(titles, p.Title)
	}
	return titles
}

func assertTitles(t *testing.T, got []string, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d results %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("result %d = %q, want %q (full: %v)", i, got[i], want[i], got)
		}
	}
}
