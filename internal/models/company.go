package models

// Company represents a company that owns products.
type Company struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Address  string `json:"address"`
}
