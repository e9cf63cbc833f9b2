package models

import "time"

type Product struct {
	ID           string    `gorm:"primaryKey;type:VARCHAR(64)" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Price        float64   `gorm:"not null" json:"price"`
	Category     string    `json:"category"`
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	ShippingCost float64   `json:"shippingCost"`
	IsVisible    bool      `gorm:"default:true" json:"isVisible"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}
