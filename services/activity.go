package services

import (
	"encoding/json"

	"github.com/ghostwire/ghostwire/models"
	"github.com/ghostwire/ghostwire/repository"
	"github.com/ghostwire/ghostwire/utils"
)

// DefaultActivityLimit is the recent-activity page size when the caller does
// not supply one.
const DefaultActivityLimit = 10

// ActivityService appends admin audit entries and serves the recent view.
// Writes are best-effort: a failed append is logged and never surfaced to the
// operation it annotates.
type ActivityService struct {
	admins repository.AdminRepository
}

// NewActivityService creates an ActivityService.
func NewActivityService(admins repository.AdminRepository) *ActivityService {
	return &ActivityService{admins: admins}
}

// Record appends one activity entry asynchronously. The caller never learns
// whether the write succeeded; audit logging must not block or fail the
// primary operation.
func (s *ActivityService) Record(adminID, action string, details map[string]interface{}, sourceAddr string) {
	entry := &models.AdminActivityLog{
		AdminID:   adminID,
		Action:    action,
		IPAddress: sourceAddr,
	}
	if len(details) > 0 {
		if b, err := json.Marshal(details); err == nil {
			entry.Details = b
		}
	}
	go func() {
		defer func() { _ = recover() }()
		if err := s.admins.InsertActivity(entry); err != nil {
			if utils.Sugar != nil {
				utils.Sugar.Warnf("activity log append failed admin=%s action=%s err=%v", adminID, action, err)
			}
		}
	}()
}

// Recent returns the most recent entries, newest first. A non-positive limit
// falls back to DefaultActivityLimit.
func (s *ActivityService) Recent(limit int) ([]models.AdminActivityLog, error) {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}
	return s.admins.RecentActivity(limit)
}
