package services

import (
	"errors"
	"testing"

	"realestate-backend/models"

	"gorm.io/gorm"
)

func TestCatalogCreateDerivesSlug(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService[models.Amenity](db)

	amenity := models.Amenity{Name: "Swimming Pool", IsActive: true}
	if err := svc.Create(&amenity); err != nil {
		t.Fatal(err)
	}
	if amenity.Slug != "swimming-pool" {
		t.Fatalf("slug = %q", amenity.Slug)
	}
}

func TestCatalogDuplicateSlug(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService[models.District](db)

	if err := svc.Create(&models.District{Name: "Orchard", IsActive: true}); err != nil {
		t.Fatal(err)
	}
	err := svc.Create(&models.District{Name: "Orchard Copy", Slug: "orchard", IsActive: true})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected duplicate-slug validation error, got %v", err)
	}
}

func TestCatalogOptionsOrderAndVisibility(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService[models.PropertyType](db)

	for _, pt := range []models.PropertyType{
		{Name: "Landed House", SortOrder: 3, IsActive: true},
		{Name: "Condominium", SortOrder: 1, IsActive: true},
		{Name: "Retired Type", SortOrder: 2, IsActive: false},
		{Name: "HDB Flat", SortOrder: 2, IsActive: true},
	} {
		record := pt
		if err := svc.Create(&record); err != nil {
			t.Fatal(err)
		}
	}

	options, err := svc.Options()
	if err != nil {
		t.Fatal(err)
	}
	names := make([]string, 0, len(options))
	for _, o := range options {
		names = append(names, o.Name)
	}
	want := []string{"Condominium", "HDB Flat", "Landed House"}
	if len(names) != len(want) {
		t.Fatalf("options = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("options = %v, want %v", names, want)
		}
	}
}

func TestCatalogUpdateStripsProtectedKeys(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService[models.Feature](db)

	feature := models.Feature{Name: "Balcony", IsActive: true}
	if err := svc.Create(&feature); err != nil {
		t.Fatal(err)
	}

	updated, err := svc.Update(feature.ID, map[string]any{
		"name":     "Large Balcony",
		"id":       999,
		"category": "exterior",
	})
	if err != nil {
		t.Fatal(err)
	}
	if updated.ID != feature.ID {
		t.Fatalf("id changed to %d", updated.ID)
	}
	if updated.Name != "Large Balcony" || updated.Category != "exterior" {
		t.Fatalf("update not applied: %+v", updated)
	}
}

func TestCatalogDeleteRestoreLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService[models.Amenity](db)

	amenity := models.Amenity{Name: "Gym", IsActive: true}
	if err := svc.Create(&amenity); err != nil {
		t.Fatal(err)
	}

	if err := svc.Delete(amenity.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Get(amenity.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("deleted record still found: %v", err)
	}

	trashed, err := svc.List(true)
	if err != nil {
		t.Fatal(err)
	}
	if len(trashed) != 1 {
		t.Fatalf("trashed list = %v", trashed)
	}

	if err := svc.Restore(amenity.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Get(amenity.ID); err != nil {
		t.Fatalf("restored record not found: %v", err)
	}

	if err := svc.Delete(12345); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("deleting missing id: %v", err)
	}
}

func TestCatalogBulkSetActive(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService[models.District](db)

	a := models.District{Name: "Bedok", IsActive: true}
	b := models.District{Name: "Tampines", IsActive: true}
	for _, d := range []*models.District{&a, &b} {
		if err := svc.Create(d); err != nil {
			t.Fatal(err)
		}
	}

	result := svc.BulkSetActive([]uint{a.ID, 777, b.ID}, false)
	if len(result.Updated) != 2 {
		t.Fatalf("updated = %v", result.Updated)
	}
	if len(result.Failed) != 1 || result.Failed[0].Reason != "not found" {
		t.Fatalf("failed = %v", result.Failed)
	}

	options, err := svc.Options()
	if err != nil {
		t.Fatal(err)
	}
	if len(options) != 0 {
		t.Fatalf("deactivated districts still offered: %v", options)
	}
}
