package models

// Setting is a generic key/value row. Known keys: payment_methods,
// payment_text.
type Setting struct {
	Key   string `json:"key" gorm:"primaryKey"`
	Value string `json:"value" gorm:"not null"`
}
