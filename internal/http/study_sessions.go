package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hunlearn/lang-portal/internal/database/stats"
	"github.com/hunlearn/lang-portal/internal/database/study"
	"github.com/hunlearn/lang-portal/internal/database/words"
	"github.com/hunlearn/lang-portal/internal/entities"
	"github.com/hunlearn/lang-portal/internal/pagination"
)

// SessionSummary is the uniform session shape used by every
// session-listing endpoint.
type SessionSummary struct {
	ID               uint       `json:"id"`
	ActivityName     string     `json:"activity_name"`
	GroupName        string     `json:"group_name"`
	StartTime        time.Time  `json:"start_time"`
	EndTime          *time.Time `json:"end_time"`
	ReviewItemsCount int64      `json:"review_items_count"`
}

// buildSessionSummaries shapes sessions for listing responses. The
// sessions must have Group and StudyActivity preloaded.
func buildSessionSummaries(studyRepo *study.Repository, sessions []entities.StudySession) ([]SessionSummary, error) {
	items := make([]SessionSummary, 0, len(sessions))
	for _, session := range sessions {
		reviewCount, err := studyRepo.ReviewCount(session.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, SessionSummary{
			ID:               session.ID,
			ActivityName:     session.StudyActivity.Name,
			GroupName:        session.Group.Name,
			StartTime:        session.CreatedAt,
			EndTime:          session.EndTime,
			ReviewItemsCount: reviewCount,
		})
	}
	return items, nil
}

type StudySessionsController struct {
	study *study.Repository
	words *words.Repository
	stats *stats.Repository
}

func NewStudySessionsController(studyRepo *study.Repository, wordsRepo *words.Repository, statsRepo *stats.Repository) *StudySessionsController {
	return &StudySessionsController{
		study: studyRepo,
		words: wordsRepo,
		stats: statsRepo,
	}
}

// List handles GET /api/study_sessions.
func (controller *StudySessionsController) List(c *gin.Context) {
	params, ok := parsePagination(c)
	if !ok {
		return
	}

	total, err := controller.study.CountSessions()
	if err != nil {
		respondInternalError(c, err, "count sessions")
		return
	}

	sessions, err := controller.study.ListSessions(params.Offset(), params.Limit())
	if err != nil {
		respondInternalError(c, err, "list sessions")
		return
	}

	items, err := buildSessionSummaries(controller.study, sessions)
	if err != nil {
		respondInternalError(c, err, "session summaries")
		return
	}

	c.JSON(http.StatusOK, pagination.NewEnvelope(items, total, params))
}

// Get handles GET /api/study_sessions/:id.
func (controller *StudySessionsController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	session, err := controller.study.GetSession(id)
	if err != nil {
		if isNotFound(err) {
			respondNotFound(c, "study session")
			return
		}
		respondInternalError(c, err, "get session")
		return
	}

	reviewCount, err := controller.study.ReviewCount(session.ID)
	if err != nil {
		respondInternalError(c, err, "session review count")
		return
	}

	c.JSON(http.StatusOK, SessionSummary{
		ID:               session.ID,
		ActivityName:     session.StudyActivity.Name,
		GroupName:        session.Group.Name,
		StartTime:        session.CreatedAt,
		EndTime:          session.EndTime,
		ReviewItemsCount: reviewCount,
	})
}

// GetWords handles GET /api/study_sessions/:id/words.
func (controller *StudySessionsController) GetWords(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	params, ok := parsePagination(c)
	if !ok {
		return
	}

	if _, err := controller.study.GetSession(id); err != nil {
		if isNotFound(err) {
			respondNotFound(c, "study session")
			return
		}
		respondInternalError(c, err, "get session")
		return
	}

	total, err := controller.words.CountBySession(id)
	if err != nil {
		respondInternalError(c, err, "count session words")
		return
	}

	page, err := controller.words.ListBySession(id, params.Offset(), params.Limit())
	if err != nil {
		respondInternalError(c, err, "list session words")
		return
	}

	items := make([]WordListItem, 0, len(page))
	for _, word := range page {
		correct, wrong, err := controller.stats.WordCounts(word.ID)
		if err != nil {
			respondInternalError(c, err, "word stats")
			return
		}
		items = append(items, WordListItem{
			Hungarian:    word.Hungarian,
			English:      word.English,
			CorrectCount: correct,
			WrongCount:   wrong,
		})
	}

	c.JSON(http.StatusOK, pagination.NewEnvelope(items, total, params))
}

type createReviewRequest struct {
	Correct *bool `json:"correct" binding:"required"`
}

// CreateReview handles POST /api/study_sessions/:id/words/:word_id/review.
func (controller *StudySessionsController) CreateReview(c *gin.Context) {
	sessionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	wordID, ok := parseIDParam(c, "word_id")
	if !ok {
		return
	}

	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "correct is required")
		return
	}

	review, err := controller.study.CreateReview(sessionID, wordID, *req.Correct)
	if err != nil {
		switch {
		case errors.Is(err, study.ErrSessionNotFound):
			respondNotFound(c, "study session")
		case errors.Is(err, study.ErrWordNotFound):
			respondNotFound(c, "word")
		default:
			respondInternalError(c, err, "create review")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"word_id":          review.WordID,
		"study_session_id": review.StudySessionID,
		"correct":          review.Correct,
		"created_at":       review.CreatedAt,
	})
}
