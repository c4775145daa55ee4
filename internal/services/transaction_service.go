package services

import (
	"errors"
	"math"
	"time"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// transactionService handles ledger business logic.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

func validAmount(amount float64) bool {
	return amount > 0 && !math.IsInf(amount, 0) && !math.IsNaN(amount)
}

// CreateTransaction records a new transaction for the user. The owner is
// always the authenticated caller; any client-supplied owner is ignored.
// The date defaults to the current time when zero.
func (s *transactionService) CreateTransaction(
	userID string,
	kind models.TransactionKind,
	category string,
	amount float64,
	description string,
	date time.Time,
) (*models.Transaction, error) {
	if !kind.Valid() {
		return nil, apperrors.ErrInvalidKind
	}
	if category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}
	if description == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "description is required")
	}
	if !validAmount(amount) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be a positive number")
	}
	if date.IsZero() {
		date = time.Now()
	}

	transaction := &models.Transaction{
		UserID:      userID,
		Kind:        kind,
		Category:    category,
		Amount:      amount,
		Description: description,
		Date:        date,
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return transaction, nil
}

// GetUserTransactions returns the user's complete ledger, most recent date
// first. Transactions sharing a date keep their insertion order.
func (s *transactionService) GetUserTransactions(userID string) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := s.db.
		Where("user_id = ?", userID).
		Order("date DESC, created_at ASC").
		Find(&transactions).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// getOwnedTransaction fetches a transaction by ID scoped to the owner. A
// transaction belonging to another user yields the same not-found error as
// a missing one.
func (s *transactionService) getOwnedTransaction(userID, transactionID string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Where("id = ? AND user_id = ?", transactionID, userID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// UpdateTransaction applies a partial update to the user's transaction.
// Supplied fields are validated like on create; id and owner never change.
func (s *transactionService) UpdateTransaction(userID, transactionID string, update TransactionUpdate) (*models.Transaction, error) {
	transaction, err := s.getOwnedTransaction(userID, transactionID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if update.Kind != nil {
		if !update.Kind.Valid() {
			return nil, apperrors.ErrInvalidKind
		}
		updates["kind"] = *update.Kind
	}
	if update.Category != nil {
		if *update.Category == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category must not be empty")
		}
		updates["category"] = *update.Category
	}
	if update.Amount != nil {
		if !validAmount(*update.Amount) {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be a positive number")
		}
		updates["amount"] = *update.Amount
	}
	if update.Description != nil {
		if *update.Description == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "description must not be empty")
		}
		updates["description"] = *update.Description
	}
	if update.Date != nil {
		updates["date"] = *update.Date
	}

	if len(updates) > 0 {
		if err := s.db.Model(transaction).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return transaction, nil
}

// DeleteTransaction removes the user's transaction, with the same
// not-found semantics as UpdateTransaction.
func (s *transactionService) DeleteTransaction(userID, transactionID string) error {
	transaction, err := s.getOwnedTransaction(userID, transactionID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(transaction).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
