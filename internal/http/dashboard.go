package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hunlearn/lang-portal/internal/database/stats"
)

type DashboardController struct {
	stats *stats.Repository
}

func NewDashboardController(statsRepo *stats.Repository) *DashboardController {
	return &DashboardController{stats: statsRepo}
}

// LastStudySession handles GET /api/dashboard/last_study_session.
// Responds 404 when no sessions have been recorded yet.
func (controller *DashboardController) LastStudySession(c *gin.Context) {
	session, err := controller.stats.LastStudySession()
	if err != nil {
		if isNotFound(err) {
			respondNotFound(c, "study session")
			return
		}
		respondInternalError(c, err, "last session")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":                session.ID,
		"group_id":          session.GroupID,
		"created_at":        session.CreatedAt,
		"study_activity_id": session.StudyActivityID,
		"group_name":        session.Group.Name,
	})
}

// StudyProgress handles GET /api/dashboard/study_progress.
func (controller *DashboardController) StudyProgress(c *gin.Context) {
	studied, err := controller.stats.TotalWordsStudied()
	if err != nil {
		respondInternalError(c, err, "words studied")
		return
	}

	available, err := controller.stats.TotalWords()
	if err != nil {
		respondInternalError(c, err, "total words")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_words_studied":   studied,
		"total_available_words": available,
	})
}

// QuickStats handles GET /api/dashboard/quick-stats.
func (controller *DashboardController) QuickStats(c *gin.Context) {
	successRate, err := controller.stats.SuccessRate()
	if err != nil {
		respondInternalError(c, err, "success rate")
		return
	}

	totalSessions, err := controller.stats.TotalStudySessions()
	if err != nil {
		respondInternalError(c, err, "total sessions")
		return
	}

	activeGroups, err := controller.stats.ActiveGroups(time.Now())
	if err != nil {
		respondInternalError(c, err, "active groups")
		return
	}

	streak, err := controller.stats.StudyStreak()
	if err != nil {
		respondInternalError(c, err, "study streak")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success_rate":         successRate,
		"total_study_sessions": totalSessions,
		"total_active_groups":  activeGroups,
		"study_streak_days":    streak,
	})
}
