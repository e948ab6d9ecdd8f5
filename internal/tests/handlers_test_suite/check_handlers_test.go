package handlers_test_suite

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	api "github.com/lucas-barreto/foodcheck/internal/http"
	handler "github.com/lucas-barreto/foodcheck/internal/http/handlers"
	"github.com/lucas-barreto/foodcheck/internal/models"
)

func mustCreateProduct(t *testing.T, r http.Handler, title string) models.Product {
	t.Helper()

	company := mustCreateCompany(t, r, title+" maker")

	w := createProduct(r, handler.ProductRequest{Title: title, CompanyID: company.ID})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK creating product, got %d", w.Code)
	}

	var p models.Product
	if err := json.NewDecoder(w.Body).Decode(&p); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	return p
}

func TestCreateCheckHandler_Valid(t *testing.T) {
	t.Cleanup(clearAllCompanies)
	t.Cleanup(clearAllProducts)
	t.Cleanup(clearAllChecks)
	r := api.NewRouter()

	product := mustCreateProduct(t, r, "Widget")

	w := createCheck(r, handler.CheckRequest{Category: "sugar", Date: "2024-05-10", ProductID: product.ID})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp models.ProductCheck
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.ID == 0 {
		t.Error("expected a generated id")
	}
	if resp.Category != "sugar" {
		t.Errorf("expected category 'sugar', got %v", resp.Category)
	}
	if resp.Date != "2024-05-10" {
		t.Errorf("expected date '2024-05-10', got %v", resp.Date)
	}
}

func TestCreateCheckHandler_InvalidCategory(t *testing.T) {
	t.Cleanup(clearAllCompanies)
	t.Cleanup(clearAllProducts)
	t.Cleanup(clearAllChecks)
	r := api.NewRouter()

	product := mustCreateProduct(t, r, "Widget")

	w := createCheck(r, handler.CheckRequest{Category: "salt", Date: "2024-05-10", ProductID: product.ID})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 Bad Request, got %d", w.Code)
	}

	var resp []handler.ValidationError
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	found := false
	for _, e := range resp {
		if strings.EqualFold(e.Field, "Category") {
			found = true
		}
	}
	if !found {
		t.Error("expected a validation error for field Category")
	}

	// Validation happens before any persistence.
	all, _ := checkRepo.GetAll()
	if len(all) != 0 {
		t.Errorf("expected no persisted check, found %d", len(all))
	}
}

func TestCreateCheckHandler_InvalidDate(t *testing.T) {
	t.Cleanup(clearAllCompanies)
	t.Cleanup(clearAllProducts)
	t.Cleanup(clearAllChecks)
	r := api.NewRouter()

	product := mustCreateProduct(t, r, "Widget")

	w := createCheck(r, handler.CheckRequest{Category: "water", Date: "10/05/2024", ProductID: product.ID})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 Bad Request, got %d", w.Code)
	}
}

func TestCreateCheckHandler_UnknownProduct(t *testing.T) {
	t.Cleanup(clearAllChecks)
	r := api.NewRouter()

	w := createCheck(r, handler.CheckRequest{Category: "water", Date: "2024-05-10", ProductID: 999})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 Bad Request, got %d", w.Code)
	}
	if body := strings.TrimSpace(w.Body.String()); body != "product with that id does not exist" {
		t.Errorf("expected body 'product with that id does not exist', got %q", body)
	}

	all, _ := checkRepo.GetAll()
	if len(all) != 0 {
		t.Errorf("expected no persisted check, found %d", len(all))
	}
}

func TestUpdateCheckHandler_MergePatch(t *testing.T) {
	t.Cleanup(clearAllCompanies)
	t.Cleanup(clearAllProducts)
	t.Cleanup(clearAllChecks)
	r := api.NewRouter()

	product := mustCreateProduct(t, r, "Widget")
	cw := createCheck(r, handler.CheckRequest{Category: "sugar", Date: "2024-05-10", ProductID: product.ID})
	var created models.ProductCheck
	if err := json.NewDecoder(cw.Body).Decode(&created); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	category := "alcohol"
	uw := doJSON(r, http.MethodPut, fmt.Sprintf("/products/check/%d", created.ID), handler.CheckUpdateRequest{Category: &category}, token)
	if uw.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", uw.Code)
	}

	var updated models.ProductCheck
	if err := json.NewDecoder(uw.Body).Decode(&updated); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if updated.Category != "alcohol" {
		t.Errorf("expected category 'alcohol', got %v", updated.Category)
	}
	if updated.Date != "2024-05-10" {
		t.Errorf("expected date untouched, got %v", updated.Date)
	}
	if updated.ProductID != product.ID {
		t.Errorf("expected product_id untouched, got %d", updated.ProductID)
	}
}

func TestUpdateCheckHandler_InvalidCategory(t *testing.T) {
	t.Cleanup(clearAllCompanies)
	t.Cleanup(clearAllProducts)
	t.Cleanup(clearAllChecks)
	r := api.NewRouter()

	product := mustCreateProduct(t, r, "Widget")
	cw := createCheck(r, handler.CheckRequest{Category: "sugar", Date: "2024-05-10", ProductID: product.ID})
	var created models.ProductCheck
	if err := json.NewDecoder(cw.Body).Decode(&created); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	category := "salt"
	uw := doJSON(r, http.MethodPut, fmt.Sprintf("/products/check/%d", created.ID), handler.CheckUpdateRequest{Category: &category}, token)
	if uw.Code != http.StatusBadRequest {
		t.Errorf("expected 400 Bad Request, got %d", uw.Code)
	}
}

func TestDeleteCheckHandler_NotFound(t *testing.T) {
	t.Cleanup(clearAllChecks)
	r := api.NewRouter()

	w := doJSON(r, http.MethodDelete, "/products/check/999", nil, token)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestGetChecksHandler_Public(t *testing.T) {
	t.Cleanup(clearAllCompanies)
	t.Cleanup(clearAllProducts)
	t.Cleanup(clearAllChecks)
	r := api.NewRouter()

	product := mustCreateProduct(t, r, "Widget")
	createCheck(r, handler.CheckRequest{Category: "water", Date: "2024-05-10", ProductID: product.ID})

	w := doJSON(r, http.MethodGet, "/products/check", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp []models.ProductCheck
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(resp) != 1 {
		t.Errorf("expected 1 check, got %d", len(resp))
	}
}
