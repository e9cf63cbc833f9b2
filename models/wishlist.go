package models

// WishlistItem is keyed on (user, product) so a duplicate add cannot
// create a second row.
type WishlistItem struct {
	UserID    string `gorm:"primaryKey;type:VARCHAR(64)" json:"userId"`
	ProductID string `gorm:"primaryKey;type:VARCHAR(64)" json:"productId"`
}
