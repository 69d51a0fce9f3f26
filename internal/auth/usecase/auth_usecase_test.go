package usecase

import (
	"testing"
	"time"

	"chaintasks-backend/internal/auth/domain"
	authdto "chaintasks-backend/internal/auth/dto"
	"chaintasks-backend/internal/auth/repository"
	"chaintasks-backend/pkg/config"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testWallet = "0xAbCdEf0123456789aBcDeF0123456789AbCdEf01"

func newTestAuthUsecase(t *testing.T) (AuthUsecase, repository.UserRepository) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	// an in-memory sqlite database exists per connection
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&domain.User{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	repo := repository.NewUserRepository(db)
	cfg := &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  time.Hour,
		JWTRefreshExpiry: 24 * time.Hour,
	}
	return NewAuthUsecase(repo, cfg), repo
}

func registerRequest() *authdto.RegisterRequest {
	return &authdto.RegisterRequest{
		Email:           "alice@example.com",
		FirstName:       "Alice",
		LastName:        "Nguyen",
		Password:        "Str0ng!pass",
		ConfirmPassword: "Str0ng!pass",
		WalletAddress:   testWallet,
	}
}

func TestRegisterAndLogin(t *testing.T) {
	uc, _ := newTestAuthUsecase(t)

	resp, err := uc.Register(registerRequest())
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("expected both tokens to be issued")
	}
	if resp.User.WalletAddress != "0xabcdef0123456789abcdef0123456789abcdef01" {
		t.Errorf("wallet address must be stored lowercased, got %s", resp.User.WalletAddress)
	}

	login, err := uc.Login(&authdto.LoginRequest{
		Email:         "alice@example.com",
		Password:      "Str0ng!pass",
		WalletAddress: testWallet,
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if login.User.ID != resp.User.ID {
		t.Error("login must resolve the registered user")
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	uc, _ := newTestAuthUsecase(t)

	if _, err := uc.Register(registerRequest()); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	dup := registerRequest()
	dup.WalletAddress = "0x1111111111111111111111111111111111111111"
	if _, err := uc.Register(dup); err == nil {
		t.Fatal("expected duplicate email to be rejected")
	}
}

func TestRegisterRejectsDuplicateWallet(t *testing.T) {
	uc, _ := newTestAuthUsecase(t)

	if _, err := uc.Register(registerRequest()); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	dup := registerRequest()
	dup.Email = "bob@example.com"
	// same wallet, different casing
	dup.WalletAddress = "0xABCDEF0123456789ABCDEF0123456789ABCDEF01"
	if _, err := uc.Register(dup); err == nil {
		t.Fatal("expected duplicate wallet to be rejected regardless of casing")
	}
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	uc, _ := newTestAuthUsecase(t)

	req := registerRequest()
	req.Password = "alllowercase1"
	req.ConfirmPassword = "alllowercase1"
	if _, err := uc.Register(req); err == nil {
		t.Fatal("expected weak password to be rejected")
	}
}

func TestLoginRejectsWrongWallet(t *testing.T) {
	uc, _ := newTestAuthUsecase(t)

	if _, err := uc.Register(registerRequest()); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, err := uc.Login(&authdto.LoginRequest{
		Email:         "alice@example.com",
		Password:      "Str0ng!pass",
		WalletAddress: "0x2222222222222222222222222222222222222222",
	})
	if err == nil {
		t.Fatal("expected login with a foreign wallet to fail")
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	uc, _ := newTestAuthUsecase(t)

	if _, err := uc.Register(registerRequest()); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, err := uc.Login(&authdto.LoginRequest{
		Email:         "alice@example.com",
		Password:      "Wr0ng!pass!",
		WalletAddress: testWallet,
	})
	if err == nil {
		t.Fatal("expected wrong password to fail")
	}
}

func TestValidateTokenRoundTrip(t *testing.T) {
	uc, _ := newTestAuthUsecase(t)

	resp, err := uc.Register(registerRequest())
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	user, err := uc.ValidateToken(resp.AccessToken)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if user.ID != resp.User.ID {
		t.Errorf("expected user %s, got %s", resp.User.ID, user.ID)
	}

	if _, err := uc.ValidateToken("not-a-token"); err == nil {
		t.Error("expected garbage token to be rejected")
	}
}

func TestRefreshTokenRotation(t *testing.T) {
	uc, _ := newTestAuthUsecase(t)

	resp, err := uc.Register(registerRequest())
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	rotated, err := uc.RefreshToken(resp.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshToken failed: %v", err)
	}
	if rotated.AccessToken == "" {
		t.Error("expected a fresh access token")
	}

	// rotation invalidates the old refresh token once a new one was stored
	if rotated.RefreshToken != resp.RefreshToken {
		if _, err := uc.RefreshToken(resp.RefreshToken); err == nil {
			t.Error("expected rotated-out refresh token to be rejected")
		}
	}
}

func TestLogoutClearsRefreshToken(t *testing.T) {
	uc, repo := newTestAuthUsecase(t)

	resp, err := uc.Register(registerRequest())
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if err := uc.Logout(resp.RefreshToken); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}

	user, err := repo.FindByID(resp.User.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if user.RefreshToken != "" {
		t.Error("expected stored refresh token to be cleared")
	}

	if _, err := uc.RefreshToken(resp.RefreshToken); err == nil {
		t.Error("expected refresh after logout to fail")
	}
}
