package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hunlearn/lang-portal/internal/database/stats"
	"github.com/hunlearn/lang-portal/internal/database/words"
	"github.com/hunlearn/lang-portal/internal/entities"
	"github.com/hunlearn/lang-portal/internal/pagination"
)

// WordListItem is one row of a paginated word listing, carrying the
// word's derived review counts.
type WordListItem struct {
	Hungarian    string `json:"hungarian"`
	English      string `json:"english"`
	CorrectCount int64  `json:"correct_count"`
	WrongCount   int64  `json:"wrong_count"`
}

type WordsController struct {
	words *words.Repository
	stats *stats.Repository
}

func NewWordsController(wordsRepo *words.Repository, statsRepo *stats.Repository) *WordsController {
	return &WordsController{
		words: wordsRepo,
		stats: statsRepo,
	}
}

// List handles GET /api/words.
func (controller *WordsController) List(c *gin.Context) {
	params, ok := parsePagination(c)
	if !ok {
		return
	}

	total, err := controller.words.Count()
	if err != nil {
		respondInternalError(c, err, "count words")
		return
	}

	page, err := controller.words.List(params.Offset(), params.Limit())
	if err != nil {
		respondInternalError(c, err, "list words")
		return
	}

	items, err := controller.buildListItems(page)
	if err != nil {
		respondInternalError(c, err, "word stats")
		return
	}

	c.JSON(http.StatusOK, pagination.NewEnvelope(items, total, params))
}

// Get handles GET /api/words/:id.
func (controller *WordsController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	word, err := controller.words.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			respondNotFound(c, "word")
			return
		}
		respondInternalError(c, err, "get word")
		return
	}

	correct, wrong, err := controller.stats.WordCounts(word.ID)
	if err != nil {
		respondInternalError(c, err, "word stats")
		return
	}

	groups := make([]gin.H, 0, len(word.Groups))
	for _, group := range word.Groups {
		groups = append(groups, gin.H{"id": group.ID, "name": group.Name})
	}

	c.JSON(http.StatusOK, gin.H{
		"hungarian": word.Hungarian,
		"english":   word.English,
		"stats": gin.H{
			"correct_count": correct,
			"wrong_count":   wrong,
		},
		"groups": groups,
	})
}

type createWordRequest struct {
	Hungarian string         `json:"hungarian" binding:"required"`
	English   string         `json:"english" binding:"required"`
	Parts     map[string]any `json:"parts"`
	GroupIDs  []uint         `json:"group_ids"`
}

// Create handles POST /api/words.
func (controller *WordsController) Create(c *gin.Context) {
	var req createWordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "hungarian and english are required")
		return
	}

	word, err := controller.words.Create(words.CreateParams{
		Hungarian: req.Hungarian,
		English:   req.English,
		Parts:     req.Parts,
		GroupIDs:  req.GroupIDs,
	})
	if err != nil {
		switch {
		case errors.Is(err, words.ErrDuplicateWord):
			respondBadRequest(c, "word already exists")
		case errors.Is(err, words.ErrUnknownGroup):
			respondBadRequest(c, "one or more groups not found")
		default:
			respondInternalError(c, err, "create word")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        word.ID,
		"hungarian": word.Hungarian,
		"english":   word.English,
	})
}

type updateWordRequest struct {
	Hungarian *string        `json:"hungarian"`
	English   *string        `json:"english"`
	Parts     map[string]any `json:"parts"`
	GroupIDs  *[]uint        `json:"group_ids"`
}

// Update handles PUT /api/words/:id. Absent fields keep their values.
func (controller *WordsController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req updateWordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	word, err := controller.words.Update(id, words.UpdateParams{
		Hungarian: req.Hungarian,
		English:   req.English,
		Parts:     req.Parts,
		GroupIDs:  req.GroupIDs,
	})
	if err != nil {
		switch {
		case isNotFound(err):
			respondNotFound(c, "word")
		case errors.Is(err, words.ErrUnknownGroup):
			respondBadRequest(c, "one or more groups not found")
		default:
			respondInternalError(c, err, "update word")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        word.ID,
		"hungarian": word.Hungarian,
		"english":   word.English,
	})
}

// Delete handles DELETE /api/words/:id.
func (controller *WordsController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := controller.words.Delete(id); err != nil {
		if isNotFound(err) {
			respondNotFound(c, "word")
			return
		}
		respondInternalError(c, err, "delete word")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// buildListItems attaches review counts to a page of words.
func (controller *WordsController) buildListItems(page []entities.Word) ([]WordListItem, error) {
	items := make([]WordListItem, 0, len(page))
	for _, word := range page {
		correct, wrong, err := controller.stats.WordCounts(word.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, WordListItem{
			Hungarian:    word.Hungarian,
			English:      word.English,
			CorrectCount: correct,
			WrongCount:   wrong,
		})
	}
	return items, nil
}
