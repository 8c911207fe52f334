package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ghostwire/ghostwire/models"
	"github.com/ghostwire/ghostwire/repository"
)

func TestCountsForPartitionsByKind(t *testing.T) {
	rows := []models.PostInteraction{
		{PostID: "p1", UserID: "u1", Kind: models.InteractionWire},
		{PostID: "p1", UserID: "u2", Kind: models.InteractionWire},
		{PostID: "p1", UserID: "u1", Kind: models.InteractionComment},
		{PostID: "p1", UserID: "u3", Kind: models.InteractionSupport},
		{PostID: "p1", UserID: "u1", Kind: models.InteractionShare},
		{PostID: "p1", UserID: "u1", Kind: models.InteractionShare},
		// A different post must not bleed into p1's counts.
		{PostID: "p2", UserID: "u1", Kind: models.InteractionWire},
	}

	counts := CountsFor("p1", rows)
	assert.Equal(t, 2, counts.Wire)
	assert.Equal(t, 1, counts.Comment)
	assert.Equal(t, 1, counts.Support)
	assert.Equal(t, 2, counts.Share)
	assert.Equal(t, 6, counts.Total())
}

func TestCountsForEmpty(t *testing.T) {
	counts := CountsFor("p1", nil)
	assert.Equal(t, models.InteractionCounts{}, counts)
	assert.Equal(t, 0, counts.Total())
}

func TestAddToggleKindIsIdempotent(t *testing.T) {
	interactions := new(MockInteractionRepository)
	posts := new(MockPostRepository)
	svc := NewInteractionService(interactions, posts)

	posts.On("FindByID", "p1").Return(&models.Post{ID: "p1"}, nil)
	existing := &models.PostInteraction{ID: "row-1", PostID: "p1", UserID: "u1", Kind: models.InteractionWire}
	interactions.On("Find", "p1", "u1", models.InteractionWire).Return(existing, nil)

	row, err := svc.Add("p1", "u1", models.InteractionWire)
	assert.NoError(t, err)
	assert.Equal(t, existing, row)

	// No Create call: the second wire for the same tuple reuses the row.
	interactions.AssertNotCalled(t, "Create", mock.Anything)
	interactions.AssertExpectations(t)
}

func TestAddToggleKindCreatesWhenAbsent(t *testing.T) {
	interactions := new(MockInteractionRepository)
	posts := new(MockPostRepository)
	svc := NewInteractionService(interactions, posts)

	posts.On("FindByID", "p1").Return(&models.Post{ID: "p1"}, nil)
	interactions.On("Find", "p1", "u1", models.InteractionSupport).Return(nil, repository.ErrNotFound)
	interactions.On("Create", mock.AnythingOfType("*models.PostInteraction")).Return(nil)

	row, err := svc.Add("p1", "u1", models.InteractionSupport)
	assert.NoError(t, err)
	assert.Equal(t, models.InteractionSupport, row.Kind)
	interactions.AssertExpectations(t)
}

func TestAddAccumulatingKindSkipsLookup(t *testing.T) {
	interactions := new(MockInteractionRepository)
	posts := new(MockPostRepository)
	svc := NewInteractionService(interactions, posts)

	posts.On("FindByID", "p1").Return(&models.Post{ID: "p1"}, nil)
	interactions.On("Create", mock.AnythingOfType("*models.PostInteraction")).Return(nil)

	_, err := svc.Add("p1", "u1", models.InteractionShare)
	assert.NoError(t, err)
	_, err = svc.Add("p1", "u1", models.InteractionShare)
	assert.NoError(t, err)

	interactions.AssertNotCalled(t, "Find", mock.Anything, mock.Anything, mock.Anything)
	interactions.AssertNumberOfCalls(t, "Create", 2)
}

func TestAddRejectsUnknownKind(t *testing.T) {
	svc := NewInteractionService(new(MockInteractionRepository), new(MockPostRepository))

	_, err := svc.Add("p1", "u1", models.InteractionKind("boost"))
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Add("", "u1", models.InteractionWire)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAddMissingPost(t *testing.T) {
	interactions := new(MockInteractionRepository)
	posts := new(MockPostRepository)
	svc := NewInteractionService(interactions, posts)

	posts.On("FindByID", "gone").Return(nil, repository.ErrNotFound)

	_, err := svc.Add("gone", "u1", models.InteractionWire)
	assert.ErrorIs(t, err, ErrNotFound)
	interactions.AssertNotCalled(t, "Create", mock.Anything)
}

func TestRemoveDeletesTuple(t *testing.T) {
	interactions := new(MockInteractionRepository)
	svc := NewInteractionService(interactions, new(MockPostRepository))

	interactions.On("DeleteMatching", "p1", "u1", models.InteractionWire).Return(nil)

	assert.NoError(t, svc.Remove("p1", "u1", models.InteractionWire))
	interactions.AssertExpectations(t)
}

func TestStatsForDegradesToZeroOnStoreFailure(t *testing.T) {
	interactions := new(MockInteractionRepository)
	svc := NewInteractionService(interactions, new(MockPostRepository))

	interactions.On("ListByPost", "p1").Return(nil, errors.New("connection refused"))

	counts := svc.StatsFor("p1")
	assert.Equal(t, models.InteractionCounts{}, counts)
}

func TestHasInteracted(t *testing.T) {
	interactions := new(MockInteractionRepository)
	svc := NewInteractionService(interactions, new(MockPostRepository))

	interactions.On("Find", "p1", "u1", models.InteractionWire).
		Return(&models.PostInteraction{ID: "row-1"}, nil)
	interactions.On("Find", "p1", "u2", models.InteractionWire).
		Return(nil, repository.ErrNotFound)

	ok, err := svc.HasInteracted("p1", "u1", models.InteractionWire)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.HasInteracted("p1", "u2", models.InteractionWire)
	assert.NoError(t, err)
	assert.False(t, ok)
}
