package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ghostwire/ghostwire/models"
)

func TestRecordAppendsAsynchronously(t *testing.T) {
	repo := new(MockAdminRepository)
	svc := NewActivityService(repo)

	done := make(chan struct{})
	repo.On("InsertActivity", mock.AnythingOfType("*models.AdminActivityLog")).
		Run(func(args mock.Arguments) {
			entry := args.Get(0).(*models.AdminActivityLog)
			assert.Equal(t, "admin-1", entry.AdminID)
			assert.Equal(t, "Admin Login", entry.Action)
			assert.Equal(t, "203.0.113.9", entry.IPAddress)
			assert.Contains(t, string(entry.Details), "admin@example.com")
			close(done)
		}).
		Return(nil)

	svc.Record("admin-1", "Admin Login", map[string]interface{}{"email": "admin@example.com"}, "203.0.113.9")

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("activity entry was never written")
	}
	repo.AssertExpectations(t)
}

func TestRecordSwallowsStoreFailure(t *testing.T) {
	repo := new(MockAdminRepository)
	svc := NewActivityService(repo)

	done := make(chan struct{})
	repo.On("InsertActivity", mock.AnythingOfType("*models.AdminActivityLog")).
		Run(func(mock.Arguments) { close(done) }).
		Return(errors.New("table unavailable"))

	// Must not panic or surface the error to the caller.
	svc.Record("admin-1", "Delete Post", nil, "203.0.113.9")

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("activity write was never attempted")
	}
}

func TestRecentDefaultsLimit(t *testing.T) {
	repo := new(MockAdminRepository)
	svc := NewActivityService(repo)

	repo.On("RecentActivity", DefaultActivityLimit).Return([]models.AdminActivityLog{}, nil)

	_, err := svc.Recent(0)
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestRecentHonorsExplicitLimit(t *testing.T) {
	repo := new(MockAdminRepository)
	svc := NewActivityService(repo)

	entries := []models.AdminActivityLog{
		{ID: "a3", Action: "Admin Login"},
		{ID: "a2", Action: "Delete Post"},
		{ID: "a1", Action: "Admin Login"},
	}
	repo.On("RecentActivity", 3).Return(entries, nil)

	got, err := svc.Recent(3)
	assert.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Equal(t, "a3", got[0].ID)
}
