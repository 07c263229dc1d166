package http

import (
	"github.com/gin-gonic/gin"

	"github.com/hunlearn/lang-portal/internal/database"
	"github.com/hunlearn/lang-portal/internal/database/groups"
	"github.com/hunlearn/lang-portal/internal/database/stats"
	"github.com/hunlearn/lang-portal/internal/database/study"
	"github.com/hunlearn/lang-portal/internal/database/words"
)

// RouterConfig carries every dependency the router needs, keeping
// NewRouter's signature stable as wiring grows.
type RouterConfig struct {
	Database *database.Database

	Words  *words.Repository
	Groups *groups.Repository
	Study  *study.Repository
	Stats  *stats.Repository

	// AdminMiddleware guards the destructive /api/system endpoints
	// when set. Nil leaves them open (the default).
	AdminMiddleware gin.HandlerFunc

	Version string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.Database, cfg.Version)
	router.GET("/health", health.Status)

	wordsController := NewWordsController(cfg.Words, cfg.Stats)
	groupsController := NewGroupsController(cfg.Groups, cfg.Words, cfg.Study, cfg.Stats)
	activitiesController := NewStudyActivitiesController(cfg.Study)
	sessionsController := NewStudySessionsController(cfg.Study, cfg.Words, cfg.Stats)
	dashboardController := NewDashboardController(cfg.Stats)
	systemController := NewSystemController(cfg.Database)

	api := router.Group("/api")

	api.GET("/words", wordsController.List)
	api.GET("/words/:id", wordsController.Get)
	api.POST("/words", wordsController.Create)
	api.PUT("/words/:id", wordsController.Update)
	api.DELETE("/words/:id", wordsController.Delete)

	api.GET("/groups", groupsController.List)
	api.GET("/groups/:id", groupsController.Get)
	api.GET("/groups/:id/words", groupsController.GetWords)
	api.GET("/groups/:id/study_sessions", groupsController.GetStudySessions)
	api.POST("/groups", groupsController.Create)
	api.PUT("/groups/:id", groupsController.Update)
	api.DELETE("/groups/:id", groupsController.Delete)

	api.GET("/study_activities/:id", activitiesController.Get)
	api.GET("/study_activities/:id/study_sessions", activitiesController.GetStudySessions)
	api.POST("/study_activities", activitiesController.Create)

	api.GET("/study_sessions", sessionsController.List)
	api.GET("/study_sessions/:id", sessionsController.Get)
	api.GET("/study_sessions/:id/words", sessionsController.GetWords)
	api.POST("/study_sessions/:id/words/:word_id/review", sessionsController.CreateReview)

	api.GET("/dashboard/last_study_session", dashboardController.LastStudySession)
	api.GET("/dashboard/study_progress", dashboardController.StudyProgress)
	api.GET("/dashboard/quick-stats", dashboardController.QuickStats)

	system := api.Group("/system")
	if cfg.AdminMiddleware != nil {
		system.Use(cfg.AdminMiddleware)
	}
	system.POST("/reset_history", systemController.ResetHistory)
	system.POST("/full_reset", systemController.FullReset)

	return router
}
