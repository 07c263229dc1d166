package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hunlearn/lang-portal/internal/database"
)

type SystemController struct {
	db *database.Database
}

func NewSystemController(db *database.Database) *SystemController {
	return &SystemController{db: db}
}

// ResetHistory handles POST /api/system/reset_history. Words and
// groups survive; sessions and review items do not.
func (controller *SystemController) ResetHistory(c *gin.Context) {
	if err := controller.db.ResetHistory(); err != nil {
		respondInternalError(c, err, "reset history")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Study history has been reset",
	})
}

// FullReset handles POST /api/system/full_reset. Drops and recreates
// the entire schema.
func (controller *SystemController) FullReset(c *gin.Context) {
	if err := controller.db.FullReset(); err != nil {
		respondInternalError(c, err, "full reset")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "System has been fully reset",
	})
}
