package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ghostwire/ghostwire/models"
)

func TestComposeFeedOrdersNewestFirst(t *testing.T) {
	now := time.Now()
	posts := []models.Post{
		{ID: "p-old", UserID: "u1", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "p-new", UserID: "u1", CreatedAt: now.Add(-30 * time.Minute)},
		{ID: "p-mid", UserID: "u2", CreatedAt: now.Add(-time.Hour)},
	}
	users := map[string]models.User{
		"u1": {ID: "u1", Username: "alice"},
		"u2": {ID: "u2", Username: "bob"},
	}

	items := ComposeFeed(posts, users, nil)
	assert.Len(t, items, 3)
	assert.Equal(t, "p-new", items[0].Post.ID)
	assert.Equal(t, "p-mid", items[1].Post.ID)
	assert.Equal(t, "p-old", items[2].Post.ID)
	assert.Equal(t, "alice", items[0].Author.Username)
	assert.Equal(t, "bob", items[1].Author.Username)
}

func TestComposeFeedBreaksTimestampTiesByID(t *testing.T) {
	at := time.Now()
	posts := []models.Post{
		{ID: "aaa", UserID: "u1", CreatedAt: at},
		{ID: "zzz", UserID: "u1", CreatedAt: at},
	}

	items := ComposeFeed(posts, nil, nil)
	assert.Equal(t, "zzz", items[0].Post.ID)
	assert.Equal(t, "aaa", items[1].Post.ID)
}

func TestComposeFeedToleratesMissingAuthor(t *testing.T) {
	posts := []models.Post{{ID: "p1", UserID: "deleted-user", CreatedAt: time.Now()}}

	items := ComposeFeed(posts, map[string]models.User{}, nil)
	assert.Len(t, items, 1)
	assert.Nil(t, items[0].Author)
}

func TestComposeFeedAttachesCounts(t *testing.T) {
	posts := []models.Post{
		{ID: "p1", UserID: "u1", CreatedAt: time.Now()},
		{ID: "p2", UserID: "u1", CreatedAt: time.Now().Add(-time.Minute)},
	}
	interactions := []models.PostInteraction{
		{PostID: "p1", UserID: "u2", Kind: models.InteractionWire},
		{PostID: "p1", UserID: "u3", Kind: models.InteractionSupport},
		{PostID: "p2", UserID: "u2", Kind: models.InteractionShare},
	}

	items := ComposeFeed(posts, nil, interactions)
	assert.Equal(t, 1, items[0].Counts.Wire)
	assert.Equal(t, 1, items[0].Counts.Support)
	assert.Equal(t, 0, items[0].Counts.Share)
	assert.Equal(t, 1, items[1].Counts.Share)
}

func TestFeedAssemblesPage(t *testing.T) {
	posts := new(MockPostRepository)
	users := new(MockUserRepository)
	interactions := new(MockInteractionRepository)
	svc := NewFeedService(posts, users, interactions)

	now := time.Now()
	page := []models.Post{
		{ID: "p1", UserID: "u1", CreatedAt: now},
		{ID: "p2", UserID: "u2", CreatedAt: now.Add(-time.Minute)},
	}
	posts.On("List", 1, 10).Return(page, int64(2), nil)
	users.On("FindByIDs", []string{"u1", "u2"}).Return([]models.User{
		{ID: "u1", Username: "alice"},
		{ID: "u2", Username: "bob"},
	}, nil)
	interactions.On("ListByPosts", []string{"p1", "p2"}).Return([]models.PostInteraction{
		{PostID: "p1", UserID: "u2", Kind: models.InteractionWire},
	}, nil)

	items, total, err := svc.Feed(1, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, items, 2)
	assert.Equal(t, "alice", items[0].Author.Username)
	assert.Equal(t, 1, items[0].Counts.Wire)
}

func TestFeedDegradesWhenAuthorLookupFails(t *testing.T) {
	posts := new(MockPostRepository)
	users := new(MockUserRepository)
	interactions := new(MockInteractionRepository)
	svc := NewFeedService(posts, users, interactions)

	posts.On("List", 1, 10).Return([]models.Post{{ID: "p1", UserID: "u1", CreatedAt: time.Now()}}, int64(1), nil)
	users.On("FindByIDs", []string{"u1"}).Return(nil, errors.New("connection refused"))
	interactions.On("ListByPosts", []string{"p1"}).Return([]models.PostInteraction{}, nil)

	items, total, err := svc.Feed(1, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, items, 1)
	assert.Nil(t, items[0].Author)
}

func TestFeedEmptyPage(t *testing.T) {
	posts := new(MockPostRepository)
	svc := NewFeedService(posts, new(MockUserRepository), new(MockInteractionRepository))

	posts.On("List", 3, 10).Return([]models.Post{}, int64(12), nil)

	items, total, err := svc.Feed(3, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(12), total)
	assert.Empty(t, items)
}

func TestFeedPropagatesListError(t *testing.T) {
	posts := new(MockPostRepository)
	svc := NewFeedService(posts, new(MockUserRepository), new(MockInteractionRepository))

	posts.On("List", 1, 10).Return(nil, int64(0), errors.New("bad connection"))

	_, _, err := svc.Feed(1, 10)
	assert.Error(t, err)
}
