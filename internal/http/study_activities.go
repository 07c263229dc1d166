package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hunlearn/lang-portal/internal/database/study"
	"github.com/hunlearn/lang-portal/internal/pagination"
)

type StudyActivitiesController struct {
	study *study.Repository
}

func NewStudyActivitiesController(studyRepo *study.Repository) *StudyActivitiesController {
	return &StudyActivitiesController{study: studyRepo}
}

// Get handles GET /api/study_activities/:id.
func (controller *StudyActivitiesController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	activity, err := controller.study.GetActivity(id)
	if err != nil {
		if isNotFound(err) {
			respondNotFound(c, "study activity")
			return
		}
		respondInternalError(c, err, "get activity")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":            activity.ID,
		"name":          activity.Name,
		"thumbnail_url": activity.ThumbnailURL,
		"description":   activity.Description,
	})
}

// GetStudySessions handles GET /api/study_activities/:id/study_sessions.
func (controller *StudyActivitiesController) GetStudySessions(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	params, ok := parsePagination(c)
	if !ok {
		return
	}

	if _, err := controller.study.GetActivity(id); err != nil {
		if isNotFound(err) {
			respondNotFound(c, "study activity")
			return
		}
		respondInternalError(c, err, "get activity")
		return
	}

	total, err := controller.study.CountSessionsByActivity(id)
	if err != nil {
		respondInternalError(c, err, "count activity sessions")
		return
	}

	sessions, err := controller.study.ListSessionsByActivity(id, params.Offset(), params.Limit())
	if err != nil {
		respondInternalError(c, err, "list activity sessions")
		return
	}

	items, err := buildSessionSummaries(controller.study, sessions)
	if err != nil {
		respondInternalError(c, err, "session summaries")
		return
	}

	c.JSON(http.StatusOK, pagination.NewEnvelope(items, total, params))
}

type createActivityRequest struct {
	Name         string `json:"name" binding:"required"`
	GroupID      uint   `json:"group_id" binding:"required"`
	ThumbnailURL string `json:"thumbnail_url"`
	Description  string `json:"description"`
}

// Create handles POST /api/study_activities.
func (controller *StudyActivitiesController) Create(c *gin.Context) {
	var req createActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "name and group_id are required")
		return
	}

	activity, err := controller.study.CreateActivity(req.Name, req.ThumbnailURL, req.Description, req.GroupID)
	if err != nil {
		if errors.Is(err, study.ErrGroupNotFound) {
			respondBadRequest(c, "group not found")
			return
		}
		respondInternalError(c, err, "create activity")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":            activity.ID,
		"name":          activity.Name,
		"thumbnail_url": activity.ThumbnailURL,
		"description":   activity.Description,
	})
}
