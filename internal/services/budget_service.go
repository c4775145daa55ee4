package services

import (
	"errors"
	"math"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// budgetService handles budget business logic.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// GetCategoryLimits returns the user's stored category limits, or an empty
// mapping when no budget exists yet. Reading never creates a record.
func (s *budgetService) GetCategoryLimits(userID string) (models.CategoryLimits, error) {
	var budget models.Budget
	if err := s.db.Where("user_id = ?", userID).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.CategoryLimits{}, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if budget.CategoryLimits == nil {
		return models.CategoryLimits{}, nil
	}
	return budget.CategoryLimits, nil
}

// SetCategoryLimits upserts the user's budget, replacing the whole mapping.
// Categories omitted from the new mapping lose their limit. Limits must be
// finite and non-negative; malformed limits are rejected rather than
// silently coerced.
func (s *budgetService) SetCategoryLimits(userID string, limits models.CategoryLimits) (models.CategoryLimits, error) {
	if limits == nil {
		limits = models.CategoryLimits{}
	}
	for category, limit := range limits {
		if category == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name must not be empty")
		}
		if limit < 0 || math.IsInf(limit, 0) || math.IsNaN(limit) {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "limit for "+category+" must be a non-negative number")
		}
	}

	var budget models.Budget
	err := s.db.Where("user_id = ?", userID).First(&budget).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		budget = models.Budget{UserID: userID, CategoryLimits: limits}
		if err := s.db.Create(&budget).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	case err != nil:
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	default:
		if err := s.db.Model(&budget).Update("category_limits", limits).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return limits, nil
}
