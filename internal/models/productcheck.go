package models

// CheckCategories is the closed set of quality-check categories.
var CheckCategories = []string{"sugar", "alcohol", "water"}

// ProductCheck represents a quality check recorded for a product.
// Date is stored as YYYY-MM-DD.
type ProductCheck struct {
	ID        int    `json:"id"`
	Category  string `json:"category"`
	Date      string `json:"date"`
	ProductID int    `json:"product_id"`
}
