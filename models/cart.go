package models

// CartLine is one product in a user's cart. A user holds at most one line
// per product; adding the same product again increments Quantity.
type CartLine struct {
	UserID    int64 `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	ProductID uint  `json:"product_id" gorm:"primaryKey;autoIncrement:false"`
	Quantity  int   `json:"quantity" gorm:"not null"`
}

// CartEntry is a cart line joined with the current catalog name and price.
// Prices here track the catalog until checkout freezes them.
type CartEntry struct {
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

// Subtotal returns the line total at the current catalog price.
func (e CartEntry) Subtotal() int64 {
	return e.UnitPrice * int64(e.Quantity)
}
