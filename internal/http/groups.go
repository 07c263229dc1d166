package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hunlearn/lang-portal/internal/database/groups"
	"github.com/hunlearn/lang-portal/internal/database/stats"
	"github.com/hunlearn/lang-portal/internal/database/study"
	"github.com/hunlearn/lang-portal/internal/database/words"
	"github.com/hunlearn/lang-portal/internal/pagination"
)

type GroupsController struct {
	groups *groups.Repository
	words  *words.Repository
	study  *study.Repository
	stats  *stats.Repository
}

func NewGroupsController(groupsRepo *groups.Repository, wordsRepo *words.Repository, studyRepo *study.Repository, statsRepo *stats.Repository) *GroupsController {
	return &GroupsController{
		groups: groupsRepo,
		words:  wordsRepo,
		study:  studyRepo,
		stats:  statsRepo,
	}
}

// List handles GET /api/groups.
func (controller *GroupsController) List(c *gin.Context) {
	params, ok := parsePagination(c)
	if !ok {
		return
	}

	total, err := controller.groups.Count()
	if err != nil {
		respondInternalError(c, err, "count groups")
		return
	}

	page, err := controller.groups.List(params.Offset(), params.Limit())
	if err != nil {
		respondInternalError(c, err, "list groups")
		return
	}

	items := make([]gin.H, 0, len(page))
	for _, group := range page {
		wordCount, err := controller.groups.WordCount(group.ID)
		if err != nil {
			respondInternalError(c, err, "group word count")
			return
		}
		items = append(items, gin.H{
			"id":         group.ID,
			"name":       group.Name,
			"word_count": wordCount,
		})
	}

	c.JSON(http.StatusOK, pagination.NewEnvelope(items, total, params))
}

// Get handles GET /api/groups/:id.
func (controller *GroupsController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	group, err := controller.groups.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			respondNotFound(c, "group")
			return
		}
		respondInternalError(c, err, "get group")
		return
	}

	wordCount, err := controller.groups.WordCount(group.ID)
	if err != nil {
		respondInternalError(c, err, "group word count")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":   group.ID,
		"name": group.Name,
		"stats": gin.H{
			"total_word_count": wordCount,
		},
	})
}

// GetWords handles GET /api/groups/:id/words.
func (controller *GroupsController) GetWords(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	params, ok := parsePagination(c)
	if !ok {
		return
	}

	if _, err := controller.groups.GetByID(id); err != nil {
		if isNotFound(err) {
			respondNotFound(c, "group")
			return
		}
		respondInternalError(c, err, "get group")
		return
	}

	total, err := controller.words.CountByGroup(id)
	if err != nil {
		respondInternalError(c, err, "count group words")
		return
	}

	page, err := controller.words.ListByGroup(id, params.Offset(), params.Limit())
	if err != nil {
		respondInternalError(c, err, "list group words")
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

// GetStudySessions handles GET /api/groups/:id/study_sessions.
func (controller *GroupsController) GetStudySessions(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	params, ok := parsePagination(c)
	if !ok {
		return
	}

	if _, err := controller.groups.GetByID(id); err != nil {
		if isNotFound(err) {
			respondNotFound(c, "group")
			return
		}
		respondInternalError(c, err, "get group")
		return
	}

	total, err := controller.study.CountSessionsByGroup(id)
	if err != nil {
		respondInternalError(c, err, "count group sessions")
		return
	}

	sessions, err := controller.study.ListSessionsByGroup(id, params.Offset(), params.Limit())
	if err != nil {
		respondInternalError(c, err, "list group sessions")
		return
	}

	items, err := buildSessionSummaries(controller.study, sessions)
	if err != nil {
		respondInternalError(c, err, "session summaries")
		return
	}

	c.JSON(http.StatusOK, pagination.NewEnvelope(items, total, params))
}

type groupRequest struct {
	Name string `json:"name" binding:"required"`
}

// Create handles POST /api/groups.
func (controller *GroupsController) Create(c *gin.Context) {
	var req groupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "name is required")
		return
	}

	group, err := controller.groups.Create(req.Name)
	if err != nil {
		if errors.Is(err, groups.ErrDuplicateName) {
			respondBadRequest(c, "group already exists")
			return
		}
		respondInternalError(c, err, "create group")
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": group.ID, "name": group.Name})
}

// Update handles PUT /api/groups/:id.
func (controller *GroupsController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req groupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "name is required")
		return
	}

	group, err := controller.groups.Rename(id, req.Name)
	if err != nil {
		switch {
		case isNotFound(err):
			respondNotFound(c, "group")
		case errors.Is(err, groups.ErrDuplicateName):
			respondBadRequest(c, "group name already exists")
		default:
			respondInternalError(c, err, "rename group")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": group.ID, "name": group.Name})
}

// Delete handles DELETE /api/groups/:id.
func (controller *GroupsController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := controller.groups.Delete(id); err != nil {
		if isNotFound(err) {
			respondNotFound(c, "group")
			return
		}
		respondInternalError(c, err, "delete group")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
