package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fintrack/internal/services"
)

// InsightHandler handles budget-vs-actual reporting requests.
type InsightHandler struct {
	insightService services.InsightServicer
}

// NewInsightHandler creates a new InsightHandler.
func NewInsightHandler(insightService services.InsightServicer) *InsightHandler {
	return &InsightHandler{insightService: insightService}
}

// GetInsights returns per-category spending insights
// @Summary     Get spending insights
// @Description Evaluate the authenticated user's spending against their category limits
// @Tags        insights
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.SpendingReport "Per-category insights and the largest overspend"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /insights [get]
func (h *InsightHandler) GetInsights(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	report, err := h.insightService.GetSpendingReport(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
