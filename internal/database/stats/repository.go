// Package stats derives study statistics from raw review events.
//
// Every value is recomputed from word_review_items and study_sessions
// on each call. Nothing here is cached or stored: the reset endpoints
// can delete the underlying rows at any moment, and recomputing keeps
// the numbers impossible to drift.
package stats

import (
	"errors"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/hunlearn/lang-portal/internal/entities"
)

// activeGroupWindow is the trailing window a group must have a session
// in to count as active.
const activeGroupWindow = 30 * 24 * time.Hour

// Repository computes read-only statistics over the review history.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new stats repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WordCounts returns the number of correct and wrong reviews recorded
// for a word. A word with no reviews yields (0, 0).
func (r *Repository) WordCounts(wordID uint) (correct, wrong int64, err error) {
	var total int64
	err = r.db.Model(&entities.WordReviewItem{}).Where("word_id = ?", wordID).Count(&total).Error
	if err != nil {
		return 0, 0, err
	}
	err = r.db.Model(&entities.WordReviewItem{}).Where("word_id = ? AND correct = ?", wordID, true).Count(&correct).Error
	if err != nil {
		return 0, 0, err
	}
	return correct, total - correct, nil
}

// SuccessRate returns the percentage of all reviews answered
// correctly, rounded to one decimal place. Zero reviews means 0.
func (r *Repository) SuccessRate() (float64, error) {
	var total, correct int64
	if err := r.db.Model(&entities.WordReviewItem{}).Count(&total).Error; err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, nil
	}
	if err := r.db.Model(&entities.WordReviewItem{}).Where("correct = ?", true).Count(&correct).Error; err != nil {
		return 0, err
	}
	rate := float64(correct) / float64(total) * 100
	return math.Round(rate*10) / 10, nil
}

// TotalStudySessions returns the number of sessions ever recorded.
func (r *Repository) TotalStudySessions() (int64, error) {
	var count int64
	err := r.db.Model(&entities.StudySession{}).Count(&count).Error
	return count, err
}

// TotalWordsStudied returns the number of distinct words that have at
// least one review.
func (r *Repository) TotalWordsStudied() (int64, error) {
	var count int64
	err := r.db.Model(&entities.WordReviewItem{}).Distinct("word_id").Count(&count).Error
	return count, err
}

// TotalWords returns the number of words available for study.
func (r *Repository) TotalWords() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Word{}).Count(&count).Error
	return count, err
}

// ActiveGroups returns the number of distinct groups with at least one
// study session in the trailing 30 days ending at now.
func (r *Repository) ActiveGroups(now time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&entities.StudySession{}).
		Distinct("group_id").
		Where("created_at >= ?", now.Add(-activeGroupWindow)).
		Count(&count).Error
	return count, err
}

// StudyStreak returns the number of consecutive calendar days, counted
// backward from the most recent session's date, with at least one
// session each day. Days are compared by calendar date, not by 24-hour
// windows, so a session at 23:59 and one at 00:01 the next day are two
// streak days. Zero when no sessions exist.
func (r *Repository) StudyStreak() (int, error) {
	last, err := r.LastStudySession()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	streak := 0
	day := last.CreatedAt
	for {
		var count int64
		err := r.db.Model(&entities.StudySession{}).
			Where("DATE(created_at) = DATE(?)", day).
			Count(&count).Error
		if err != nil {
			return 0, err
		}
		if count == 0 {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak, nil
}

// LastStudySession returns the most recent session with its group
// loaded, or gorm.ErrRecordNotFound when none exist.
func (r *Repository) LastStudySession() (*entities.StudySession, error) {
	var session entities.StudySession
	err := r.db.Preload("Group").Order("created_at DESC").First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}
