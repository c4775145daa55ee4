package services

import (
	"time"

	"fintrack/internal/insights"
	"fintrack/internal/models"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// TransactionUpdate holds the mutable transaction fields for a partial
// update. Nil fields are left unchanged; id and owner are immutable.
type TransactionUpdate struct {
	Kind        *models.TransactionKind
	Category    *string
	Amount      *float64
	Description *string
	Date        *time.Time
}

// TransactionServicer defines the contract for ledger business logic. Every
// method takes the caller's user ID and filters by it internally; a
// transaction is never visible or mutable to any other user.
type TransactionServicer interface {
	CreateTransaction(userID string, kind models.TransactionKind, category string, amount float64, description string, date time.Time) (*models.Transaction, error)
	GetUserTransactions(userID string) ([]models.Transaction, error)
	UpdateTransaction(userID, transactionID string, update TransactionUpdate) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID string) error
}

// BudgetServicer defines the contract for budget business logic.
type BudgetServicer interface {
	GetCategoryLimits(userID string) (models.CategoryLimits, error)
	SetCategoryLimits(userID string, limits models.CategoryLimits) (models.CategoryLimits, error)
}

// SpendingReport pairs per-category insights with the single worst
// overspend, which is absent when no category is overspent.
type SpendingReport struct {
	Insights         []insights.CategoryInsight `json:"insights"`
	LargestOverspend *insights.CategoryInsight  `json:"largest_overspend,omitempty"`
}

// InsightServicer defines the contract for budget-vs-actual reporting.
type InsightServicer interface {
	GetSpendingReport(userID string) (*SpendingReport, error)
}
