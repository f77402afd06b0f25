package services

import (
	"errors"
	"testing"

	"realestate-backend/models"

	"golang.org/x/crypto/bcrypt"
)

func TestLoginAndTokenRoundtrip(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret")

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	admin := models.Admin{FullName: "Test Admin", Email: "admin@example.com", Password: string(hash)}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatal(err)
	}

	token, got, err := svc.Login("admin@example.com", "s3cret")
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != admin.ID {
		t.Fatalf("login returned admin %d, want %d", got.ID, admin.ID)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.AdminID != admin.ID || claims.Email != admin.Email {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret")

	hash, _ := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.MinCost)
	if err := db.Create(&models.Admin{FullName: "A", Email: "a@example.com", Password: string(hash)}).Error; err != nil {
		t.Fatal(err)
	}

	if _, _, err := svc.Login("a@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: %v", err)
	}
	if _, _, err := svc.Login("nobody@example.com", "right"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email: %v", err)
	}
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret")
	other := NewAuthService(db, "other-secret")

	hash, _ := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	if err := db.Create(&models.Admin{FullName: "A", Email: "a@example.com", Password: string(hash)}).Error; err != nil {
		t.Fatal(err)
	}
	token, _, err := svc.Login("a@example.com", "pw")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := other.ValidateToken(token); err == nil {
		t.Fatal("token verified against the wrong secret")
	}
	if _, err := svc.ValidateToken(token + "x"); err == nil {
		t.Fatal("tampered token verified")
	}
}
