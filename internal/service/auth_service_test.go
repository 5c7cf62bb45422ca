package service

import (
	"errors"
	"testing"
	"time"

	"quiz_master_backend/internal/config"
	"quiz_master_backend/internal/model"
	"quiz_master_backend/internal/repository"
	"quiz_master_backend/internal/util"

	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *AuthService {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-test-secret-test-secret"
	cfg.JWT.ExpireTime = time.Hour
	cfg.Admin.Username = "admin"
	cfg.Admin.Password = "admin123"
	return NewAuthService(repository.NewUserRepository(db), cfg)
}

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	req := RegisterRequest{
		Username:      "student1",
		Password:      "secret123",
		FullName:      "Student One",
		Qualification: "BSc",
		DOB:           "2000-05-20",
	}
	user, err := svc.Register(req)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Role != model.RoleUser {
		t.Errorf("role = %q, want user", user.Role)
	}
	if user.Password == "secret123" {
		t.Error("password stored in plaintext")
	}

	token, err := svc.Login("student1", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	claims, err := util.ParseJWT(token, svc.Cfg.JWT.Secret)
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("claims user id = %d, want %d", claims.UserID, user.ID)
	}
	if claims.Role != model.RoleUser {
		t.Errorf("claims role = %q, want user", claims.Role)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	req := RegisterRequest{
		Username: "student1",
		Password: "secret123",
		FullName: "Student One",
		DOB:      "2000-05-20",
	}
	if _, err := svc.Register(req); err != nil {
		t.Fatalf("first register: %v", err)
	}

	req.FullName = "Impostor"
	if _, err := svc.Register(req); !errors.Is(err, util.ErrUsernameTaken) {
		t.Errorf("err = %v, want ErrUsernameTaken", err)
	}
}

func TestRegisterInvalidDOB(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	req := RegisterRequest{
		Username: "student1",
		Password: "secret123",
		FullName: "Student One",
		DOB:      "20-05-2000",
	}
	if _, err := svc.Register(req); !errors.Is(err, util.ErrInvalidDate) {
		t.Errorf("err = %v, want ErrInvalidDate", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	req := RegisterRequest{
		Username: "student1",
		Password: "secret123",
		FullName: "Student One",
		DOB:      "2000-05-20",
	}
	if _, err := svc.Register(req); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Login("student1", "wrong"); !errors.Is(err, util.ErrInvalidCredentials) {
		t.Errorf("wrong password err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login("nobody", "secret123"); !errors.Is(err, util.ErrInvalidCredentials) {
		t.Errorf("unknown user err = %v, want ErrInvalidCredentials", err)
	}
}

func TestAdminLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	token, err := svc.AdminLogin("admin", "admin123")
	if err != nil {
		t.Fatalf("AdminLogin: %v", err)
	}

	claims, err := util.ParseJWT(token, svc.Cfg.JWT.Secret)
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims.Role != model.RoleAdmin {
		t.Errorf("role = %q, want admin", claims.Role)
	}
	if claims.UserID != 0 {
		t.Errorf("user id = %d, want 0", claims.UserID)
	}

	if _, err := svc.AdminLogin("admin", "wrong"); !errors.Is(err, util.ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}
