package services

import (
	"sort"

	"github.com/ghostwire/ghostwire/models"
	"github.com/ghostwire/ghostwire/repository"
	"github.com/ghostwire/ghostwire/utils"
)

// FeedItem is one composed feed entry: the post, its author when resolvable,
// and its aggregated interaction counts.
type FeedItem struct {
	Post   models.Post              `json:"post"`
	Author *models.User             `json:"author,omitempty"`
	Counts models.InteractionCounts `json:"counts"`
}

// ComposeFeed orders posts newest first (ties broken by id for determinism),
// attaches each author from usersByID, and attaches aggregated counts. A post
// whose author cannot be resolved still produces an item with a nil Author;
// composition never fails as a whole.
func ComposeFeed(posts []models.Post, usersByID map[string]models.User, interactions []models.PostInteraction) []FeedItem {
	ordered := make([]models.Post, len(posts))
	copy(ordered, posts)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].CreatedAt.Equal(ordered[j].CreatedAt) {
			return ordered[i].CreatedAt.After(ordered[j].CreatedAt)
		}
		return ordered[i].ID > ordered[j].ID
	})

	items := make([]FeedItem, 0, len(ordered))
	for _, post := range ordered {
		item := FeedItem{
			Post:   post,
			Counts: CountsFor(post.ID, interactions),
		}
		if author, ok := usersByID[post.UserID]; ok {
			u := author
			item.Author = &u
		}
		items = append(items, item)
	}
	return items
}

// FeedService assembles the home feed from the entity store.
type FeedService struct {
	posts        repository.PostRepository
	users        repository.UserRepository
	interactions repository.InteractionRepository
}

// NewFeedService creates a FeedService.
func NewFeedService(posts repository.PostRepository, users repository.UserRepository, interactions repository.InteractionRepository) *FeedService {
	return &FeedService{posts: posts, users: users, interactions: interactions}
}

// Feed returns one page of the composed feed plus the total post count.
func (s *FeedService) Feed(page, pageSize int) ([]FeedItem, int64, error) {
	posts, total, err := s.posts.List(page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	if len(posts) == 0 {
		return []FeedItem{}, total, nil
	}

	postIDs := make([]string, 0, len(posts))
	authorIDs := make([]string, 0, len(posts))
	for _, p := range posts {
		postIDs = append(postIDs, p.ID)
		authorIDs = append(authorIDs, p.UserID)
	}

	usersByID := map[string]models.User{}
	users, err := s.users.FindByIDs(utils.UniqueStrings(authorIDs))
	if err != nil {
		// Partial-failure tolerance: items still compose without authors.
		if utils.Sugar != nil {
			utils.Sugar.Warnf("feed author lookup failed err=%v", err)
		}
	} else {
		for _, u := range users {
			usersByID[u.ID] = u
		}
	}

	interactions, err := s.interactions.ListByPosts(postIDs)
	if err != nil {
		if utils.Sugar != nil {
			utils.Sugar.Warnf("feed interaction lookup failed err=%v", err)
		}
		interactions = nil
	}

	return ComposeFeed(posts, usersByID, interactions), total, nil
}
