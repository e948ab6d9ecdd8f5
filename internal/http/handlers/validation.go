package handlers

import (
	"slices"
	"strings"
	"time"

	"github.com/lucas-barreto/foodcheck/internal/models"
)

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateCompany(c CompanyRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(c.Title) == "" {
		errs = append(errs, ValidationError{Field: "Title", Description: "Title is required"})
	}
	return errs
}

func validateProduct(p ProductRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(p.Title) == "" {
		errs = append(errs, ValidationError{Field: "Title", Description: "Title is required"})
	}
	if p.CompanyID <= 0 {
		errs = append(errs, ValidationError{Field: "CompanyId", Description: "Company id is required"})
	}
	return errs
}

func validCheckCategory(category string) bool {
	return slices.Contains(models.CheckCategories, category)
}

func validCheckDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

func validateCheck(c CheckRequest) []ValidationError {
	errs := []ValidationError{}
	if !validCheckCategory(c.Category) {
		errs = append(errs, ValidationError{Field: "Category", Description: "Category must be one of sugar, alcohol, water"})
	}
	if !validCheckDate(c.Date) {
		errs = append(errs, ValidationError{Field: "Date", Description: "Date is required in YYYY-MM-DD format"})
	}
	if c.ProductID <= 0 {
		errs = append(errs, ValidationError{Field: "ProductId", Description: "Product id is required"})
	}
	return errs
}

func validateCheckUpdate(c CheckUpdateRequest) []ValidationError {
	errs := []ValidationError{}
	if c.Category != nil && !validCheckCategory(*c.Category) {
		errs = append(errs, ValidationError{Field: "Category", Description: "Category must be one of sugar, alcohol, water"})
	}
	if c.Date != nil && !validCheckDate(*c.Date) {
		errs = append(errs, ValidationError{Field: "Date", Description: "Date must be in YYYY-MM-DD format"})
	}
	return errs
}
