package database

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hunlearn/lang-portal/internal/entities"
)

func setupTestDB(t *testing.T) (*Database, func()) {
	t.Helper()
	dbPath := "./test_database_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"

	db, err := NewDatabase(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, cleanup
}

func seedHistory(t *testing.T, db *Database) {
	t.Helper()

	group := entities.Group{Name: "Numbers"}
	require.NoError(t, db.DB.Create(&group).Error)

	word := entities.Word{Hungarian: "egy", English: "one"}
	require.NoError(t, db.DB.Create(&word).Error)
	require.NoError(t, db.DB.Model(&group).Association("Words").Append(&word))

	activity := entities.StudyActivity{Name: "Vocabulary Quiz", GroupID: group.ID}
	require.NoError(t, db.DB.Create(&activity).Error)

	session := entities.StudySession{GroupID: group.ID, StudyActivityID: activity.ID}
	require.NoError(t, db.DB.Create(&session).Error)

	review := entities.WordReviewItem{WordID: word.ID, StudySessionID: session.ID, Correct: true}
	require.NoError(t, db.DB.Create(&review).Error)
}

func TestNewDatabase(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	migrator := db.DB.Migrator()
	for _, table := range []string{"words", "groups", "words_groups", "study_activities", "study_sessions", "word_review_items"} {
		assert.True(t, migrator.HasTable(table), "expected table %s", table)
	}
}

func TestResetHistory(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	seedHistory(t, db)

	require.NoError(t, db.ResetHistory())

	var sessions, reviews, words, groups int64
	require.NoError(t, db.DB.Model(&entities.StudySession{}).Count(&sessions).Error)
	require.NoError(t, db.DB.Model(&entities.WordReviewItem{}).Count(&reviews).Error)
	require.NoError(t, db.DB.Model(&entities.Word{}).Count(&words).Error)
	require.NoError(t, db.DB.Model(&entities.Group{}).Count(&groups).Error)

	assert.Equal(t, int64(0), sessions)
	assert.Equal(t, int64(0), reviews)
	assert.Equal(t, int64(1), words, "words must survive a history reset")
	assert.Equal(t, int64(1), groups, "groups must survive a history reset")
}

func TestFullReset(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	seedHistory(t, db)

	require.NoError(t, db.FullReset())

	// Schema is back and completely empty.
	for _, table := range []string{"words", "groups", "words_groups", "study_activities", "study_sessions", "word_review_items"} {
		assert.True(t, db.DB.Migrator().HasTable(table), "expected table %s", table)
	}

	var words, groups int64
	require.NoError(t, db.DB.Model(&entities.Word{}).Count(&words).Error)
	require.NoError(t, db.DB.Model(&entities.Group{}).Count(&groups).Error)
	assert.Equal(t, int64(0), words)
	assert.Equal(t, int64(0), groups)

	// The recreated schema is usable.
	require.NoError(t, db.DB.Create(&entities.Word{Hungarian: "öt", English: "five"}).Error)
}
