// Package words provides database operations for vocabulary words.
package words

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/hunlearn/lang-portal/internal/entities"
)

var (
	// ErrDuplicateWord is returned when a word with the same Hungarian
	// or English text already exists.
	ErrDuplicateWord = errors.New("word already exists")
	// ErrUnknownGroup is returned when a referenced group id does not exist.
	ErrUnknownGroup = errors.New("one or more groups not found")
)

// Repository handles all word database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new words repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateParams holds the fields for creating a word.
type CreateParams struct {
	Hungarian string
	English   string
	Parts     map[string]any
	GroupIDs  []uint
}

// UpdateParams holds the optional fields for a partial word update.
// Nil fields are left unchanged. A non-nil GroupIDs replaces the
// word's group memberships wholesale.
type UpdateParams struct {
	Hungarian *string
	English   *string
	Parts     map[string]any
	GroupIDs  *[]uint
}

// Create inserts a new word and attaches it to the given groups.
func (r *Repository) Create(params CreateParams) (*entities.Word, error) {
	var existing entities.Word
	err := r.db.Where("hungarian = ? OR english = ?", params.Hungarian, params.English).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateWord
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	groups, err := r.resolveGroups(params.GroupIDs)
	if err != nil {
		return nil, err
	}

	word := &entities.Word{
		Hungarian: params.Hungarian,
		English:   params.English,
		Parts:     params.Parts,
	}

	err = r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(word).Error; err != nil {
			return err
		}
		if len(groups) > 0 {
			return tx.Model(word).Association("Groups").Append(&groups)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return word, nil
}

// GetByID retrieves a word with its group memberships.
func (r *Repository) GetByID(id uint) (*entities.Word, error) {
	var word entities.Word
	err := r.db.Preload("Groups").First(&word, id).Error
	if err != nil {
		return nil, err
	}
	return &word, nil
}

// Update applies a partial update to a word.
func (r *Repository) Update(id uint, params UpdateParams) (*entities.Word, error) {
	var word entities.Word
	if err := r.db.First(&word, id).Error; err != nil {
		return nil, err
	}

	if params.Hungarian != nil {
		word.Hungarian = *params.Hungarian
	}
	if params.English != nil {
		word.English = *params.English
	}
	if params.Parts != nil {
		word.Parts = params.Parts
	}

	var groups []entities.Group
	if params.GroupIDs != nil {
		var err error
		groups, err = r.resolveGroups(*params.GroupIDs)
		if err != nil {
			return nil, err
		}
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&word).Error; err != nil {
			return err
		}
		if params.GroupIDs != nil {
			return tx.Model(&word).Association("Groups").Replace(&groups)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &word, nil
}

// Delete removes a word together with its review items and group
// memberships.
func (r *Repository) Delete(id uint) error {
	var word entities.Word
	if err := r.db.First(&word, id).Error; err != nil {
		return err
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("word_id = ?", id).Delete(&entities.WordReviewItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete review items: %w", err)
		}
		if err := tx.Model(&word).Association("Groups").Clear(); err != nil {
			return fmt.Errorf("failed to clear group memberships: %w", err)
		}
		return tx.Delete(&word).Error
	})
}

// List retrieves a page of words ordered by id.
func (r *Repository) List(offset, limit int) ([]entities.Word, error) {
	var words []entities.Word
	err := r.db.Order("id ASC").Offset(offset).Limit(limit).Find(&words).Error
	return words, err
}

// Count returns the total number of words.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Word{}).Count(&count).Error
	return count, err
}

// ListByGroup retrieves a page of words belonging to a group.
func (r *Repository) ListByGroup(groupID uint, offset, limit int) ([]entities.Word, error) {
	var words []entities.Word
	err := r.db.
		Joins("JOIN words_groups ON words_groups.word_id = words.id").
		Where("words_groups.group_id = ?", groupID).
		Order("words.id ASC").
		Offset(offset).Limit(limit).
		Find(&words).Error
	return words, err
}

// CountByGroup returns the number of words in a group.
func (r *Repository) CountByGroup(groupID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entities.Word{}).
		Joins("JOIN words_groups ON words_groups.word_id = words.id").
		Where("words_groups.group_id = ?", groupID).
		Count(&count).Error
	return count, err
}

// ListBySession retrieves a page of distinct words reviewed in a
// study session.
func (r *Repository) ListBySession(sessionID uint, offset, limit int) ([]entities.Word, error) {
	var words []entities.Word
	err := r.db.Distinct("words.*").
		Joins("JOIN word_review_items ON word_review_items.word_id = words.id").
		Where("word_review_items.study_session_id = ?", sessionID).
		Order("words.id ASC").
		Offset(offset).Limit(limit).
		Find(&words).Error
	return words, err
}

// CountBySession returns the number of distinct words reviewed in a
// study session.
func (r *Repository) CountBySession(sessionID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entities.Word{}).
		Distinct("words.id").
		Joins("JOIN word_review_items ON word_review_items.word_id = words.id").
		Where("word_review_items.study_session_id = ?", sessionID).
		Count(&count).Error
	return count, err
}

func (r *Repository) resolveGroups(ids []uint) ([]entities.Group, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var groups []entities.Group
	if err := r.db.Where("id IN ?", ids).Find(&groups).Error; err != nil {
		return nil, err
	}
	if len(groups) != len(ids) {
		return nil, ErrUnknownGroup
	}
	return groups, nil
}
