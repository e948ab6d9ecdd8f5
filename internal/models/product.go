package models

// Product represents a product belonging to a company.
type Product struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CompanyID   int    `json:"company_id"`
}
