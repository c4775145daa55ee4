package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"
)

// BudgetHandler handles budget-related requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// SetBudgetRequest represents the request payload for replacing the budget.
// The mapping is replaced wholesale: a category omitted here loses its limit.
type SetBudgetRequest struct {
	CategoryLimits models.CategoryLimits `json:"category_limits"`
}

// BudgetResponse represents the budget in the response
type BudgetResponse struct {
	CategoryLimits models.CategoryLimits `json:"category_limits"`
}

// GetBudget returns the user's category limits
// @Summary     Get budget
// @Description Get the authenticated user's category limits; empty when no budget has been saved
// @Tags        budget
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} BudgetResponse "Category limits"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	limits, err := h.budgetService.GetCategoryLimits(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category_limits": limits})
}

// SetBudget replaces the user's category limits
// @Summary     Set budget
// @Description Replace the authenticated user's category limits with the supplied mapping
// @Tags        budget
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SetBudgetRequest true "Category limits"
// @Success     200 {object} BudgetResponse "Saved category limits"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget [post]
func (h *BudgetHandler) SetBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SetBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	saved, err := h.budgetService.SetCategoryLimits(userID, req.CategoryLimits)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category_limits": saved})
}
