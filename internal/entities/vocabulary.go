package entities

import "time"

// Word is a single vocabulary entry (Hungarian/English pair).
type Word struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Hungarian string `gorm:"index;size:256" json:"hungarian"`
	English   string `gorm:"index;size:256" json:"english"`

	// Parts holds structured metadata about the word, e.g.
	// {"type": "verb", "category": "motion"}.
	Parts map[string]any `gorm:"serializer:json" json:"parts,omitempty"`

	Groups      []Group          `gorm:"many2many:words_groups;" json:"groups,omitempty"`
	ReviewItems []WordReviewItem `gorm:"foreignKey:WordID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Group is a thematic set of words (e.g. "Basic Greetings").
type Group struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;size:256" json:"name"`

	Words           []Word          `gorm:"many2many:words_groups;" json:"-"`
	StudyActivities []StudyActivity `gorm:"foreignKey:GroupID" json:"-"`
	StudySessions   []StudySession  `gorm:"foreignKey:GroupID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// StudyActivity is a way of practising a group, e.g. a flashcard quiz.
type StudyActivity struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:256" json:"name"`
	ThumbnailURL string    `gorm:"size:2048" json:"thumbnail_url,omitempty"`
	Description  string    `gorm:"size:1024" json:"description,omitempty"`
	GroupID      uint      `gorm:"index" json:"group_id"`
	Group        Group     `gorm:"foreignKey:GroupID" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// StudySession is one practice run of an activity against a group.
type StudySession struct {
	ID              uint          `gorm:"primaryKey" json:"id"`
	GroupID         uint          `gorm:"index" json:"group_id"`
	StudyActivityID uint          `gorm:"index" json:"study_activity_id"`
	Group           Group         `gorm:"foreignKey:GroupID" json:"-"`
	StudyActivity   StudyActivity `gorm:"foreignKey:StudyActivityID" json:"-"`

	WordReviewItems []WordReviewItem `gorm:"foreignKey:StudySessionID" json:"-"`

	CreatedAt time.Time  `gorm:"index" json:"created_at"`
	EndTime   *time.Time `json:"end_time,omitempty"`
}

// WordReviewItem records one correct/incorrect answer for a word
// during a session. Rows are append-only; every statistic the API
// reports is recomputed from them.
type WordReviewItem struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	WordID         uint      `gorm:"index" json:"word_id"`
	StudySessionID uint      `gorm:"index" json:"study_session_id"`
	Correct        bool      `json:"correct"`
	CreatedAt      time.Time `gorm:"index" json:"created_at"`

	Word         Word         `gorm:"foreignKey:WordID" json:"-"`
	StudySession StudySession `gorm:"foreignKey:StudySessionID" json:"-"`
}

func (Word) TableName() string {
	return "words"
}

func (Group) TableName() string {
	return "groups"
}

func (StudyActivity) TableName() string {
	return "study_activities"
}

func (StudySession) TableName() string {
	return "study_sessions"
}

func (WordReviewItem) TableName() string {
	return "word_review_items"
}
