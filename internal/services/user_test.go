package services

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/skillhive/skillhive-backend/internal/logger"
	"github.com/skillhive/skillhive-backend/internal/repos"
	"github.com/skillhive/skillhive-backend/internal/types"
)

func newUserFixture(t *testing.T) (UserService, repos.UserRepo) {
	t.Helper()
	db := newTestDB(t, &types.User{})
	log := logger.NewNop()
	userRepo := repos.NewUserRepo(db, log)
	return NewUserService(db, log, userRepo, nil, nil), userRepo
}

func seedUser(t *testing.T, userRepo repos.UserRepo, username string, skills []string) *types.User {
	t.Helper()
	user := &types.User{
		ID:       uuid.New(),
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
		Skills:   skills,
	}
	if _, err := userRepo.Create(context.Background(), nil, []*types.User{user}); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestFollowAddsBothEdgesAndIsIdempotent(t *testing.T) {
	svc, userRepo := newUserFixture(t)
	ctx := context.Background()
	alice := seedUser(t, userRepo, "alice", nil)
	bob := seedUser(t, userRepo, "bob", nil)

	followed, err := svc.Follow(ctx, alice.ID, bob.ID)
	if err != nil || !followed {
		t.Fatalf("expected follow, got %v %v", followed, err)
	}

	reloadedAlice, _ := svc.GetByID(ctx, alice.ID)
	reloadedBob, _ := svc.GetByID(ctx, bob.ID)
	if len(reloadedAlice.Following) != 1 || reloadedAlice.Following[0] != bob.ID {
		t.Fatalf("alice.following wrong: %v", reloadedAlice.Following)
	}
	if len(reloadedBob.Followers) != 1 || reloadedBob.Followers[0] != alice.ID {
		t.Fatalf("bob.followers wrong: %v", reloadedBob.Followers)
	}

	followed, err = svc.Follow(ctx, alice.ID, bob.ID)
	if err != nil || followed {
		t.Fatalf("repeat follow must be a no-op, got %v %v", followed, err)
	}
	reloadedBob, _ = svc.GetByID(ctx, bob.ID)
	if len(reloadedBob.Followers) != 1 {
		t.Fatalf("repeat follow must not duplicate edges: %v", reloadedBob.Followers)
	}
}

func TestFollowUnknownUserIsNoOp(t *testing.T) {
	svc, userRepo := newUserFixture(t)
	ctx := context.Background()
	alice := seedUser(t, userRepo, "alice", nil)

	followed, err := svc.Follow(ctx, alice.ID, uuid.New())
	if err != nil || followed {
		t.Fatalf("following a missing user must be a no-op, got %v %v", followed, err)
	}
	followed, err = svc.Follow(ctx, uuid.New(), alice.ID)
	if err != nil || followed {
		t.Fatalf("missing follower must be a no-op, got %v %v", followed, err)
	}
}

func TestUnfollowRemovesBothEdges(t *testing.T) {
	svc, userRepo := newUserFixture(t)
	ctx := context.Background()
	alice := seedUser(t, userRepo, "alice", nil)
	bob := seedUser(t, userRepo, "bob", nil)

	if _, err := svc.Follow(ctx, alice.ID, bob.ID); err != nil {
		t.Fatalf("follow: %v", err)
	}
	if err := svc.Unfollow(ctx, alice.ID, bob.ID); err != nil {
		t.Fatalf("unfollow: %v", err)
	}

	reloadedAlice, _ := svc.GetByID(ctx, alice.ID)
	reloadedBob, _ := svc.GetByID(ctx, bob.ID)
	if len(reloadedAlice.Following) != 0 || len(reloadedBob.Followers) != 0 {
		t.Fatalf("edges must be gone: %v / %v", reloadedAlice.Following, reloadedBob.Followers)
	}

	// unfollowing again is silent
	if err := svc.Unfollow(ctx, alice.ID, bob.ID); err != nil {
		t.Fatalf("repeat unfollow must be silent, got %v", err)
	}
}

func TestSuggestBySkillsReturnsIntersectingUsersOnly(t *testing.T) {
	svc, userRepo := newUserFixture(t)
	ctx := context.Background()
	alice := seedUser(t, userRepo, "alice", []string{"go", "sql"})
	bob := seedUser(t, userRepo, "bob", []string{"go"})
	carol := seedUser(t, userRepo, "carol", []string{"painting"})
	_ = carol

	suggestions, err := svc.SuggestBySkills(ctx, alice.ID)
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if len(suggestions) != 1 || suggestions[0].ID != bob.ID {
		ids := make([]uuid.UUID, 0, len(suggestions))
		for _, s := range suggestions {
			ids = append(ids, s.ID)
		}
		t.Fatalf("expected only bob, got %v", ids)
	}
}

func TestUpdateSkillsTrimsAndDropsEmpty(t *testing.T) {
	svc, userRepo := newUserFixture(t)
	ctx := context.Background()
	alice := seedUser(t, userRepo, "alice", nil)

	updated, err := svc.UpdateSkills(ctx, alice.ID, []string{" go ", "", "sql"})
	if err != nil {
		t.Fatalf("update skills: %v", err)
	}
	if len(updated.Skills) != 2 || updated.Skills[0] != "go" || updated.Skills[1] != "sql" {
		t.Fatalf("unexpected skills: %v", updated.Skills)
	}
}
