package models

// User represents an account holder. The email is stored exactly as
// supplied and compared case-sensitively; the password column only ever
// holds a bcrypt hash.
type User struct {
	Base
	Email        string        `gorm:"uniqueIndex;not null" json:"email"`
	Password     string        `gorm:"not null" json:"-"`
	Transactions []Transaction `gorm:"foreignKey:UserID" json:"transactions,omitempty"`
	Budget       *Budget       `gorm:"foreignKey:UserID" json:"budget,omitempty"`
}
