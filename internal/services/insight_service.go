package services

import (
	"gorm.io/gorm"

	"fintrack/internal/insights"
)

// insightService derives budget-vs-actual figures from the budget and
// ledger stores. The computation itself lives in the insights package and
// persists nothing.
type insightService struct {
	transactions TransactionServicer
	budgets      BudgetServicer
}

// NewInsightService creates a new InsightServicer.
func NewInsightService(db *gorm.DB) InsightServicer {
	return &insightService{
		transactions: NewTransactionService(db),
		budgets:      NewBudgetService(db),
	}
}

// GetSpendingReport evaluates the user's category limits against their
// ledger and selects the largest overspend, if any.
func (s *insightService) GetSpendingReport(userID string) (*SpendingReport, error) {
	limits, err := s.budgets.GetCategoryLimits(userID)
	if err != nil {
		return nil, err
	}

	transactions, err := s.transactions.GetUserTransactions(userID)
	if err != nil {
		return nil, err
	}

	categoryInsights := insights.Evaluate(limits, transactions)
	return &SpendingReport{
		Insights:         categoryInsights,
		LargestOverspend: insights.LargestOverspend(categoryInsights),
	}, nil
}
