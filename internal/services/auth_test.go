package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/skillhive/skillhive-backend/internal/logger"
	"github.com/skillhive/skillhive-backend/internal/repos"
	"github.com/skillhive/skillhive-backend/internal/requestdata"
	"github.com/skillhive/skillhive-backend/internal/types"
)

func newAuthFixture(t *testing.T) (AuthService, repos.UserRepo) {
	t.Helper()
	db := newTestDB(t, &types.User{}, &types.UserToken{})
	log := logger.NewNop()
	userRepo := repos.NewUserRepo(db, log)
	userTokenRepo := repos.NewUserTokenRepo(db, log)
	svc := NewAuthService(db, log, userRepo, userTokenRepo, "test-secret", time.Hour, 24*time.Hour)
	return svc, userRepo
}

func TestRegisterNormalizesAndHashes(t *testing.T) {
	svc, userRepo := newAuthFixture(t)
	ctx := context.Background()

	user := &types.User{
		Username: "  Alice  ",
		Email:    "Alice@Example.COM",
		Password: "s3cret",
	}
	if err := svc.RegisterUser(ctx, user); err != nil {
		t.Fatalf("register: %v", err)
	}

	stored, err := userRepo.GetByEmails(ctx, nil, []string{"alice@example.com"})
	if err != nil || len(stored) != 1 {
		t.Fatalf("expected normalized email lookup to hit, got %v (%v)", len(stored), err)
	}
	if stored[0].Username != "alice" {
		t.Fatalf("username must be normalized, got %q", stored[0].Username)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored[0].Password), []byte("s3cret")); err != nil {
		t.Fatalf("stored password must be a bcrypt hash of the input: %v", err)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	first := &types.User{Username: "alice", Email: "alice@example.com", Password: "pw"}
	if err := svc.RegisterUser(ctx, first); err != nil {
		t.Fatalf("register: %v", err)
	}
	second := &types.User{Username: "alice2", Email: "alice@example.com", Password: "pw"}
	if err := svc.RegisterUser(ctx, second); err == nil {
		t.Fatalf("expected duplicate email rejection")
	}
}

func TestLoginAndTokenRoundTrip(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	user := &types.User{Username: "bob", Email: "bob@example.com", Password: "pw"}
	if err := svc.RegisterUser(ctx, user); err != nil {
		t.Fatalf("register: %v", err)
	}

	accessToken, refreshToken, err := svc.LoginUser(ctx, "bob@example.com", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if accessToken == "" || refreshToken == "" {
		t.Fatalf("expected both tokens")
	}

	authedCtx, err := svc.SetContextFromToken(ctx, accessToken)
	if err != nil {
		t.Fatalf("set context: %v", err)
	}
	rd := requestdata.GetRequestData(authedCtx)
	if rd == nil || rd.UserID == uuid.Nil {
		t.Fatalf("expected request data with user id, got %+v", rd)
	}
	if rd.UserID != user.ID {
		t.Fatalf("token subject mismatch: %s vs %s", rd.UserID, user.ID)
	}
	if rd.RefreshToken != refreshToken {
		t.Fatalf("refresh token must be resolved from the stored row")
	}

	if err := svc.LogoutUser(authedCtx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, _, err := svc.RefreshUser(authedCtx); err == nil {
		t.Fatalf("refresh after logout must fail")
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	user := &types.User{Username: "carol", Email: "carol@example.com", Password: "right"}
	if err := svc.RegisterUser(ctx, user); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, _, err := svc.LoginUser(ctx, "carol@example.com", "wrong"); err == nil {
		t.Fatalf("expected invalid password error")
	}
	if _, _, err := svc.LoginUser(ctx, "nobody@example.com", "right"); err == nil {
		t.Fatalf("expected invalid email error")
	}
}
