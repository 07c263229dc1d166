// Package groups provides database operations for thematic word groups.
package groups

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/hunlearn/lang-portal/internal/entities"
)

// ErrDuplicateName is returned when a group with the same name
// already exists. Group names are unique across the whole store.
var ErrDuplicateName = errors.New("group already exists")

// Repository handles all group database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new groups repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new group, enforcing name uniqueness.
func (r *Repository) Create(name string) (*entities.Group, error) {
	if err := r.checkNameAvailable(name); err != nil {
		return nil, err
	}

	group := &entities.Group{Name: name}
	if err := r.db.Create(group).Error; err != nil {
		return nil, err
	}
	return group, nil
}

// GetByID retrieves a group by id.
func (r *Repository) GetByID(id uint) (*entities.Group, error) {
	var group entities.Group
	err := r.db.First(&group, id).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// Rename changes a group's name, enforcing uniqueness against the
// other groups.
func (r *Repository) Rename(id uint, name string) (*entities.Group, error) {
	var group entities.Group
	if err := r.db.First(&group, id).Error; err != nil {
		return nil, err
	}

	if name != group.Name {
		if err := r.checkNameAvailable(name); err != nil {
			return nil, err
		}
	}

	group.Name = name
	if err := r.db.Save(&group).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

// Delete removes a group, its word memberships, and everything that
// hangs off it (activities, sessions, and their review items). The
// words themselves survive.
func (r *Repository) Delete(id uint) error {
	var group entities.Group
	if err := r.db.First(&group, id).Error; err != nil {
		return err
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"DELETE FROM word_review_items WHERE study_session_id IN (SELECT id FROM study_sessions WHERE group_id = ?)", id,
		).Error; err != nil {
			return fmt.Errorf("failed to delete review items: %w", err)
		}
		if err := tx.Where("group_id = ?", id).Delete(&entities.StudySession{}).Error; err != nil {
			return fmt.Errorf("failed to delete study sessions: %w", err)
		}
		if err := tx.Where("group_id = ?", id).Delete(&entities.StudyActivity{}).Error; err != nil {
			return fmt.Errorf("failed to delete study activities: %w", err)
		}
		if err := tx.Model(&group).Association("Words").Clear(); err != nil {
			return fmt.Errorf("failed to clear word memberships: %w", err)
		}
		return tx.Delete(&group).Error
	})
}

// List retrieves a page of groups ordered by id.
func (r *Repository) List(offset, limit int) ([]entities.Group, error) {
	var groups []entities.Group
	err := r.db.Order("id ASC").Offset(offset).Limit(limit).Find(&groups).Error
	return groups, err
}

// Count returns the total number of groups.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Group{}).Count(&count).Error
	return count, err
}

// WordCount returns the number of words in a group.
func (r *Repository) WordCount(id uint) (int64, error) {
	var count int64
	err := r.db.Table("words_groups").Where("group_id = ?", id).Count(&count).Error
	return count, err
}

func (r *Repository) checkNameAvailable(name string) error {
	var existing entities.Group
	err := r.db.Where("name = ?", name).First(&existing).Error
	if err == nil {
		return ErrDuplicateName
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}
