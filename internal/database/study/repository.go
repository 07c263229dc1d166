// Package study provides database operations for study activities,
// study sessions, and word review items.
package study

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/hunlearn/lang-portal/internal/entities"
)

var (
	// ErrGroupNotFound is returned when a referenced group does not exist.
	ErrGroupNotFound = errors.New("group not found")
	// ErrSessionNotFound is returned when a referenced study session does not exist.
	ErrSessionNotFound = errors.New("study session not found")
	// ErrWordNotFound is returned when a referenced word does not exist.
	ErrWordNotFound = errors.New("word not found")
)

// Repository handles study activity, session, and review database
// operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new study repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// --- Activities ---

// CreateActivity inserts a new study activity for a group.
func (r *Repository) CreateActivity(name, thumbnailURL, description string, groupID uint) (*entities.StudyActivity, error) {
	var group entities.Group
	if err := r.db.First(&group, groupID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}

	activity := &entities.StudyActivity{
		Name:         name,
		ThumbnailURL: thumbnailURL,
		Description:  description,
		GroupID:      groupID,
	}
	if err := r.db.Create(activity).Error; err != nil {
		return nil, err
	}
	return activity, nil
}

// GetActivity retrieves a study activity by id.
func (r *Repository) GetActivity(id uint) (*entities.StudyActivity, error) {
	var activity entities.StudyActivity
	err := r.db.First(&activity, id).Error
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

// --- Sessions ---

// CreateSession starts a new study session for a group/activity pair.
func (r *Repository) CreateSession(groupID, activityID uint) (*entities.StudySession, error) {
	session := &entities.StudySession{
		GroupID:         groupID,
		StudyActivityID: activityID,
	}
	if err := r.db.Create(session).Error; err != nil {
		return nil, err
	}
	return session, nil
}

// GetSession retrieves a session with its group and activity loaded.
func (r *Repository) GetSession(id uint) (*entities.StudySession, error) {
	var session entities.StudySession
	err := r.db.Preload("Group").Preload("StudyActivity").First(&session, id).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// ListSessions retrieves a page of sessions, newest first.
func (r *Repository) ListSessions(offset, limit int) ([]entities.StudySession, error) {
	return r.listSessions(r.db, offset, limit)
}

// CountSessions returns the total number of sessions.
func (r *Repository) CountSessions() (int64, error) {
	var count int64
	err := r.db.Model(&entities.StudySession{}).Count(&count).Error
	return count, err
}

// ListSessionsByGroup retrieves a page of a group's sessions, newest first.
func (r *Repository) ListSessionsByGroup(groupID uint, offset, limit int) ([]entities.StudySession, error) {
	return r.listSessions(r.db.Where("group_id = ?", groupID), offset, limit)
}

// CountSessionsByGroup returns the number of sessions for a group.
func (r *Repository) CountSessionsByGroup(groupID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entities.StudySession{}).Where("group_id = ?", groupID).Count(&count).Error
	return count, err
}

// ListSessionsByActivity retrieves a page of an activity's sessions,
// newest first.
func (r *Repository) ListSessionsByActivity(activityID uint, offset, limit int) ([]entities.StudySession, error) {
	return r.listSessions(r.db.Where("study_activity_id = ?", activityID), offset, limit)
}

// CountSessionsByActivity returns the number of sessions for an activity.
func (r *Repository) CountSessionsByActivity(activityID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entities.StudySession{}).Where("study_activity_id = ?", activityID).Count(&count).Error
	return count, err
}

func (r *Repository) listSessions(query *gorm.DB, offset, limit int) ([]entities.StudySession, error) {
	var sessions []entities.StudySession
	err := query.
		Preload("Group").Preload("StudyActivity").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&sessions).Error
	return sessions, err
}

// CloseStale stamps an end time on sessions that started before the
// cutoff and were never closed. Returns the number of sessions closed.
func (r *Repository) CloseStale(cutoff time.Time) (int64, error) {
	now := time.Now()
	result := r.db.Model(&entities.StudySession{}).
		Where("end_time IS NULL AND created_at < ?", cutoff).
		Update("end_time", now)
	return result.RowsAffected, result.Error
}

// --- Reviews ---

// CreateReview appends a review outcome for a word within a session.
// Both the session and the word must exist.
func (r *Repository) CreateReview(sessionID, wordID uint, correct bool) (*entities.WordReviewItem, error) {
	var session entities.StudySession
	if err := r.db.First(&session, sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	var word entities.Word
	if err := r.db.First(&word, wordID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWordNotFound
		}
		return nil, err
	}

	review := &entities.WordReviewItem{
		WordID:         wordID,
		StudySessionID: sessionID,
		Correct:        correct,
	}
	if err := r.db.Create(review).Error; err != nil {
		return nil, err
	}
	return review, nil
}

// ReviewCount returns the number of review items recorded in a session.
func (r *Repository) ReviewCount(sessionID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entities.WordReviewItem{}).Where("study_session_id = ?", sessionID).Count(&count).Error
	return count, err
}
