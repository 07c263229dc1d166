package groups

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hunlearn/lang-portal/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, *gorm.DB, func()) {
	t.Helper()
	dbPath := "./test_groups_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entities.Word{},
		&entities.Group{},
		&entities.StudyActivity{},
		&entities.StudySession{},
		&entities.WordReviewItem{},
	)
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}
	return repo, db, cleanup
}

func TestRepository_Create(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	group, err := repo.Create("Numbers")
	require.NoError(t, err)
	assert.NotZero(t, group.ID)
	assert.Equal(t, "Numbers", group.Name)
}

func TestRepository_Create_DuplicateName(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.Create("Numbers")
	require.NoError(t, err)

	_, err = repo.Create("Numbers")
	assert.ErrorIs(t, err, ErrDuplicateName)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "failed create must leave the store unchanged")
}

func TestRepository_Rename(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	group, err := repo.Create("Numbers")
	require.NoError(t, err)
	_, err = repo.Create("Common Verbs")
	require.NoError(t, err)

	t.Run("renames to a free name", func(t *testing.T) {
		renamed, err := repo.Rename(group.ID, "Cardinal Numbers")
		require.NoError(t, err)
		assert.Equal(t, "Cardinal Numbers", renamed.Name)
	})

	t.Run("rejects a taken name", func(t *testing.T) {
		_, err := repo.Rename(group.ID, "Common Verbs")
		assert.ErrorIs(t, err, ErrDuplicateName)
	})

	t.Run("allows renaming to the same name", func(t *testing.T) {
		renamed, err := repo.Rename(group.ID, "Cardinal Numbers")
		require.NoError(t, err)
		assert.Equal(t, "Cardinal Numbers", renamed.Name)
	})

	t.Run("missing group fails", func(t *testing.T) {
		_, err := repo.Rename(9999, "Anything")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestRepository_Delete(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	group, err := repo.Create("Numbers")
	require.NoError(t, err)

	word := entities.Word{Hungarian: "egy", English: "one"}
	require.NoError(t, db.Create(&word).Error)
	require.NoError(t, db.Model(group).Association("Words").Append(&word))

	activity := entities.StudyActivity{Name: "Vocabulary Quiz", GroupID: group.ID}
	require.NoError(t, db.Create(&activity).Error)
	session := entities.StudySession{GroupID: group.ID, StudyActivityID: activity.ID}
	require.NoError(t, db.Create(&session).Error)
	review := entities.WordReviewItem{WordID: word.ID, StudySessionID: session.ID, Correct: true}
	require.NoError(t, db.Create(&review).Error)

	require.NoError(t, repo.Delete(group.ID))

	_, err = repo.GetByID(group.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var sessions, activities, reviews, memberships, words int64
	require.NoError(t, db.Model(&entities.StudySession{}).Count(&sessions).Error)
	require.NoError(t, db.Model(&entities.StudyActivity{}).Count(&activities).Error)
	require.NoError(t, db.Model(&entities.WordReviewItem{}).Count(&reviews).Error)
	require.NoError(t, db.Table("words_groups").Count(&memberships).Error)
	require.NoError(t, db.Model(&entities.Word{}).Count(&words).Error)

	assert.Equal(t, int64(0), sessions)
	assert.Equal(t, int64(0), activities)
	assert.Equal(t, int64(0), reviews)
	assert.Equal(t, int64(0), memberships)
	assert.Equal(t, int64(1), words, "the word itself survives group deletion")
}

func TestRepository_List(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	for _, name := range []string{"Basic Greetings", "Numbers", "Common Verbs"} {
		_, err := repo.Create(name)
		require.NoError(t, err)
	}

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	page, err := repo.List(1, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "Numbers", page[0].Name)
}

func TestRepository_WordCount(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	group, err := repo.Create("Numbers")
	require.NoError(t, err)

	count, err := repo.WordCount(group.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	for _, pair := range [][2]string{{"egy", "one"}, {"kettő", "two"}} {
		word := entities.Word{Hungarian: pair[0], English: pair[1]}
		require.NoError(t, db.Create(&word).Error)
		require.NoError(t, db.Model(group).Association("Words").Append(&word))
	}

	count, err = repo.WordCount(group.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
