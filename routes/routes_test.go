package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"realestate-backend/config"
	"realestate-backend/controllers"
	"realestate-backend/models"
	"realestate-backend/services"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func buildTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:routes_%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := config.MigrateModels(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := config.Load()
	authSvc := services.NewAuthService(db, "routes-test-secret")
	searchSvc := services.NewSearchService(db, cfg)
	propSvc := services.NewPropertyService(db, cfg)
	imageSvc := services.NewImageService(cfg)

	h := Handlers{
		Auth:     controllers.NewAuthController(authSvc),
		Search:   controllers.NewSearchController(searchSvc, cfg),
		Blocks:   controllers.NewBlockController(searchSvc, cfg),
		Props:    controllers.NewPropertyController(propSvc, imageSvc),
		Types:    controllers.NewReferenceController(services.NewCatalogService[models.PropertyType](db)),
		Dists:    controllers.NewReferenceController(services.NewCatalogService[models.District](db)),
		Amens:    controllers.NewReferenceController(services.NewCatalogService[models.Amenity](db)),
		Feats:    controllers.NewReferenceController(services.NewCatalogService[models.Feature](db)),
		Settings: controllers.NewSettingsController(cfg),
		AuthSvc:  authSvc,
	}
	return SetupRouter(h), db
}

func loginToken(t *testing.T, r *gin.Engine, db *gorm.DB) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("pass1234"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	admin := models.Admin{FullName: "Route Tester", Email: "routes@example.com", Password: string(hash)}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatal(err)
	}

	payload := bytes.NewBufferString(`{"email":"routes@example.com","password":"pass1234"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", payload)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", resp.Code, resp.Body.String())
	}

	var body struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Data.Token == "" {
		t.Fatalf("no token in %s", resp.Body.String())
	}
	return body.Data.Token
}

func TestHealthEndpoint(t *testing.T) {
	r, _ := buildTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("health status = %d", resp.Code)
	}
}

func TestAdminRoutesRequireToken(t *testing.T) {
	r, db := buildTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/properties", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("no-token status = %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/admin/properties", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("bad-token status = %d", resp.Code)
	}

	token := loginToken(t, r, db)
	req = httptest.NewRequest(http.MethodGet, "/api/admin/properties", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("valid-token status = %d, body %s", resp.Code, resp.Body.String())
	}
}

func TestAdminPropertyLifecycleOverHTTP(t *testing.T) {
	r, db := buildTestRouter(t)
	token := loginToken(t, r, db)

	condo := models.PropertyType{Name: "Condominium", IsActive: true}
	if err := db.Create(&condo).Error; err != nil {
		t.Fatal(err)
	}

	create := fmt.Sprintf(`{
		"title": "HTTP Created Home",
		"price": "480000",
		"property_type_id": %d,
		"address": "7 Handler Way",
		"city": "Singapore",
		"is_published": true
	}`, condo.ID)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/properties", bytes.NewBufferString(create))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", resp.Code, resp.Body.String())
	}

	var created struct {
		Data models.Property `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}
	if created.Data.Slug != "http-created-home" {
		t.Fatalf("slug = %q", created.Data.Slug)
	}

	// The freshly published listing is publicly visible.
	req = httptest.NewRequest(http.MethodGet, "/property/http-created-home", nil)
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("public detail status = %d", resp.Code)
	}

	// Soft delete hides it again.
	req = httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/admin/properties/%d", created.Data.ID), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("delete status = %d, body %s", resp.Code, resp.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/property/http-created-home", nil)
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("deleted listing still public, status = %d", resp.Code)
	}
}

func TestPublicOptionsEndpoint(t *testing.T) {
	r, db := buildTestRouter(t)

	if err := db.Create(&models.Amenity{Name: "Swimming Pool", IsActive: true}).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Create(&models.Amenity{Name: "Hidden", IsActive: false}).Error; err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/amenities", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("options status = %d", resp.Code)
	}
	body := resp.Body.String()
	if !strings.Contains(body, "Swimming Pool") || strings.Contains(body, "Hidden") {
		t.Fatalf("options body = %s", body)
	}
}

func TestParseCorsOrigins(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "")
	if got := parseCorsOrigins(); len(got) != 1 || got[0] != "*" {
		t.Fatalf("default origins = %v", got)
	}

	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example ,")
	got := parseCorsOrigins()
	if len(got) != 2 || got[0] != "https://a.example" || got[1] != "https://b.example" {
		t.Fatalf("parsed origins = %v", got)
	}
}
