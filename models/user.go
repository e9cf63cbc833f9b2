package models

import "time"

type User struct {
	ID    string `gorm:"primaryKey;type:VARCHAR(64)" json:"id"`
	Name  string `json:"name"`
	Email string `gorm:"unique;not null" json:"email"`
	// Stored as submitted. A legacy defect carried over from the
	// original system; never returned in responses.
	Password  string    `json:"-"`
	Role      string    `gorm:"type:VARCHAR(20);default:'user'" json:"role"`
	Status    string    `gorm:"type:VARCHAR(20);default:'active'" json:"status"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Zip       string    `json:"zip"`
	CreatedAt time.Time `json:"created_at"`
}
