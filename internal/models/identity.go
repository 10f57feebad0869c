package models

import "time"

// Identity is the persisted row of a registered user.
type Identity struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" db:"id"`
	Name         string    `gorm:"size:255;not null" db:"name"`
	Email        string    `gorm:"size:320;uniqueIndex;not null" db:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-" db:"password_hash"`
	CreatedAt    time.Time `gorm:"not null" db:"created_at"`
}

// TableName pins the gorm table name.
func (Identity) TableName() string { return "identities" }
