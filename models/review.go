package models

import "time"

type Review struct {
	ID        string    `gorm:"primaryKey;type:VARCHAR(64)" json:"id"`
	ProductID string    `gorm:"index" json:"productId"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Date      time.Time `json:"date"`
}
