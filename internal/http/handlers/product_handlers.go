package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/lucas-barreto/foodcheck/internal/models"
	"github.com/lucas-barreto/foodcheck/internal/repo"
)

// GetProductsHandler godoc
// @Summary List all products
// @Tags products
// @Produce json
// @Success 200 {array} models.Product
// @Failure 500 {string} string "Internal error"
// @Router /products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := productRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(products)
}

// CreateProductHandler godoc
// @Summary Create a new product
// @Description The referenced company must exist.
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body ProductRequest true "Product to add"
// @Success 200 {object} models.Product
// @Failure 400 {string} string "company with that id does not exist"
// @Failure 409 {string} string "Duplicated title"
// @Router /products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateProduct(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	exists, err := refChecker.Exists("companies", "id", req.CompanyID)
	if err != nil {
		http.Error(w, "could not create product", http.StatusInternalServerError)
		return
	}
	if !exists {
		http.Error(w, "company with that id does not exist", http.StatusBadRequest)
		return
	}

	created, err := productRepo.Create(models.Product{
		Title:       req.Title,
		Description: req.Description,
		CompanyID:   req.CompanyID,
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicatedValueUnique) {
			http.Error(w, "product with that title already exists", http.StatusConflict)
			return
		}
		http.Error(w, "could not create product", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, created); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Product
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /products/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	product, err := productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, product); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// UpdateProductHandler godoc
// @Summary Update a product with a partial payload
// @Description Title and description only; the company foreign key is immutable.
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param product body ProductUpdateRequest true "Fields to change"
// @Success 200 {object} models.Product
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Not found"
// @Router /products/{id} [put]
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	var req ProductUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	updated, err := productRepo.Update(id, repo.ProductPatch{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		if errors.Is(err, repo.ErrDuplicatedValueUnique) {
			http.Error(w, "product with that title already exists", http.StatusConflict)
			return
		}
		http.Error(w, "could not update product", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, updated); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} map[string]string
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /products/{id} [delete]
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	if err := productRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete product", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, map[string]string{}); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}
