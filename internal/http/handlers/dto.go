package handlers

import "time"

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type UserResponse struct {
	ID          int       `json:"id"`
	Email       string    `json:"email"`
	DateCreated time.Time `json:"date_created"`
}

type CompanyRequest struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Address  string `json:"address"`
}

// CompanyUpdateRequest is a merge-patch body: nil fields are left untouched.
type CompanyUpdateRequest struct {
	Title    *string `json:"title"`
	Category *string `json:"category"`
	Address  *string `json:"address"`
}

type ProductRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CompanyID   int    `json:"company_id"`
}

// ProductUpdateRequest is a merge-patch body. company_id is not updatable.
type ProductUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type CheckRequest struct {
	Category  string `json:"category"`
	Date      string `json:"date"`
	ProductID int    `json:"product_id"`
}

// CheckUpdateRequest is a merge-patch body. product_id is not updatable.
type CheckUpdateRequest struct {
	Category *string `json:"category"`
	Date     *string `json:"date"`
}
