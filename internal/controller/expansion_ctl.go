package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"elite_cards/pkg/expansions"
)

// ExpansionController 静态系列目录
type ExpansionController struct{}

func NewExpansionController() *ExpansionController {
	return &ExpansionController{}
}

// ListExpansions
// @Summary 扩展包与系列目录
// @Tags Expansion
// @Produce json
// @Param id query string false "扩展包ID，只返回该扩展包"
// @Param setId query string false "系列ID，返回所属扩展包"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/expansions [get]
func (ctrl *ExpansionController) ListExpansions(c *gin.Context) {
	if id := c.Query("id"); id != "" {
		exp, ok := expansions.ByID(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Expansion not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"expansion": exp})
		return
	}

	if setID := c.Query("setId"); setID != "" {
		exp, ok := expansions.ExpansionBySetID(setID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Set not found"})
			return
		}
		set, _ := expansions.SetByID(setID)
		c.JSON(http.StatusOK, gin.H{"expansion": exp, "set": set})
		return
	}

	c.JSON(http.StatusOK, gin.H{"expansions": expansions.All()})
}
