package services

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/skillhive/skillhive-backend/internal/logger"
	"github.com/skillhive/skillhive-backend/internal/repos"
	"github.com/skillhive/skillhive-backend/internal/types"
)

type socialFixture struct {
	commentService      CommentService
	likeService         LikeService
	notificationService NotificationService
	postRepo            repos.PostRepo
	userRepo            repos.UserRepo
	notificationRepo    repos.NotificationRepo
}

func newSocialFixture(t *testing.T) *socialFixture {
	t.Helper()
	db := newTestDB(t, &types.User{}, &types.Post{}, &types.Comment{}, &types.Like{}, &types.Notification{})
	log := logger.NewNop()
	userRepo := repos.NewUserRepo(db, log)
	postRepo := repos.NewPostRepo(db, log)
	commentRepo := repos.NewCommentRepo(db, log)
	likeRepo := repos.NewLikeRepo(db, log)
	notificationRepo := repos.NewNotificationRepo(db, log)
	notificationService := NewNotificationService(db, log, notificationRepo, nil, nil)
	return &socialFixture{
		commentService:      NewCommentService(db, log, commentRepo, postRepo, userRepo, notificationService),
		likeService:         NewLikeService(db, log, likeRepo, postRepo, userRepo, notificationService),
		notificationService: notificationService,
		postRepo:            postRepo,
		userRepo:            userRepo,
		notificationRepo:    notificationRepo,
	}
}

func (f *socialFixture) seedPost(t *testing.T, ownerID uuid.UUID) *types.Post {
	t.Helper()
	post := &types.Post{ID: uuid.New(), UserID: ownerID, Description: "post"}
	if _, err := f.postRepo.Create(context.Background(), nil, []*types.Post{post}); err != nil {
		t.Fatalf("seed post: %v", err)
	}
	return post
}

func TestCommentCreateNotifiesPostOwner(t *testing.T) {
	f := newSocialFixture(t)
	ctx := context.Background()
	owner := seedUser(t, f.userRepo, "owner", nil)
	commenter := seedUser(t, f.userRepo, "commenter", nil)
	post := f.seedPost(t, owner.ID)

	created, err := f.commentService.Create(ctx, &types.Comment{
		PostID:      post.ID,
		UserID:      commenter.ID,
		CommentText: "nice work",
	})
	if err != nil {
		t.Fatalf("create comment: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatalf("comment id must be assigned")
	}

	notifications, err := f.notificationService.GetForUser(ctx, owner.ID)
	if err != nil {
		t.Fatalf("get notifications: %v", err)
	}
	if len(notifications) != 1 {
		t.Fatalf("expected 1 notification got %d", len(notifications))
	}
	n := notifications[0]
	if n.SenderUserID != commenter.ID || n.PostID != post.ID {
		t.Fatalf("unexpected notification: %+v", n)
	}
}

func TestCommentOnOwnPostDoesNotNotify(t *testing.T) {
	f := newSocialFixture(t)
	ctx := context.Background()
	owner := seedUser(t, f.userRepo, "owner", nil)
	post := f.seedPost(t, owner.ID)

	if _, err := f.commentService.Create(ctx, &types.Comment{
		PostID:      post.ID,
		UserID:      owner.ID,
		CommentText: "note to self",
	}); err != nil {
		t.Fatalf("create comment: %v", err)
	}

	notifications, _ := f.notificationService.GetForUser(ctx, owner.ID)
	if len(notifications) != 0 {
		t.Fatalf("self-comment must not notify, got %d", len(notifications))
	}
}

func TestLikeCreateNotifiesOnceAndIsIdempotent(t *testing.T) {
	f := newSocialFixture(t)
	ctx := context.Background()
	owner := seedUser(t, f.userRepo, "owner", nil)
	fan := seedUser(t, f.userRepo, "fan", nil)
	post := f.seedPost(t, owner.ID)

	first, err := f.likeService.Create(ctx, &types.Like{PostID: post.ID, UserID: fan.ID})
	if err != nil {
		t.Fatalf("like: %v", err)
	}
	second, err := f.likeService.Create(ctx, &types.Like{PostID: post.ID, UserID: fan.ID})
	if err != nil {
		t.Fatalf("repeat like: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("repeat like must return the existing row")
	}

	count, err := f.likeService.CountByPostID(ctx, post.ID)
	if err != nil || count != 1 {
		t.Fatalf("expected 1 like got %d (%v)", count, err)
	}
	notifications, _ := f.notificationService.GetForUser(ctx, owner.ID)
	if len(notifications) != 1 {
		t.Fatalf("expected exactly 1 notification got %d", len(notifications))
	}
}

func TestLikeDeleteRemovesLike(t *testing.T) {
	f := newSocialFixture(t)
	ctx := context.Background()
	owner := seedUser(t, f.userRepo, "owner", nil)
	fan := seedUser(t, f.userRepo, "fan", nil)
	post := f.seedPost(t, owner.ID)

	like, err := f.likeService.Create(ctx, &types.Like{PostID: post.ID, UserID: fan.ID})
	if err != nil {
		t.Fatalf("like: %v", err)
	}
	deleted, err := f.likeService.Delete(ctx, like.ID)
	if err != nil || !deleted {
		t.Fatalf("expected delete, got %v %v", deleted, err)
	}
	count, _ := f.likeService.CountByPostID(ctx, post.ID)
	if count != 0 {
		t.Fatalf("expected 0 likes got %d", count)
	}

	deleted, err = f.likeService.Delete(ctx, uuid.New())
	if err != nil || deleted {
		t.Fatalf("deleting a missing like must be silent, got %v %v", deleted, err)
	}
}
