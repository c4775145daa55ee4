package models

import "time"

// TransactionKind distinguishes money coming in from money going out.
type TransactionKind string

const (
	TransactionKindIncome  TransactionKind = "income"
	TransactionKindExpense TransactionKind = "expense"
)

// Valid reports whether the kind is one of the two supported values.
func (k TransactionKind) Valid() bool {
	return k == TransactionKindIncome || k == TransactionKindExpense
}

// Transaction represents a single ledger entry. Every transaction belongs
// to exactly one user; UserID is set by the service from the authenticated
// identity and never from client input.
type Transaction struct {
	Base
	UserID      string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Kind        TransactionKind `gorm:"not null" json:"kind"`
	Category    string          `gorm:"not null" json:"category"`
	Amount      float64         `gorm:"not null" json:"amount"`
	Description string          `gorm:"not null" json:"description"`
	Date        time.Time       `gorm:"not null" json:"date"`
}
