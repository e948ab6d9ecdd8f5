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

// GetChecksHandler godoc
// @Summary List all product checks
// @Tags checks
// @Produce json
// @Success 200 {array} models.ProductCheck
// @Failure 500 {string} string "Internal error"
// @Router /products/check [get]
func GetChecksHandler(w http.ResponseWriter, r *http.Request) {
	checks, err := checkRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch product checks", http.StatusInternalServerError)
		return
	}
	if checks == nil {
		checks = []models.ProductCheck{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(checks)
}

// CreateCheckHandler godoc
// @Summary Record a quality check for a product
// @Description The referenced product must exist. Validation runs before any persistence.
// @Tags checks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param check body CheckRequest true "Check to add"
// @Success 200 {object} models.ProductCheck
// @Failure 400 {string} string "product with that id does not exist"
// @Router /products/check [post]
func CreateCheckHandler(w http.ResponseWriter, r *http.Request) {
	var req CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateCheck(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	exists, err := refChecker.Exists("products", "id", req.ProductID)
	if err != nil {
		http.Error(w, "could not create product check", http.StatusInternalServerError)
		return
	}
	if !exists {
		http.Error(w, "product with that id does not exist", http.StatusBadRequest)
		return
	}

	created, err := checkRepo.Create(models.ProductCheck{
		Category:  req.Category,
		Date:      req.Date,
		ProductID: req.ProductID,
	})
	if err != nil {
		http.Error(w, "could not create product check", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, created); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// GetCheckByIDHandler godoc
// @Summary Get product check by ID
// @Tags checks
// @Produce json
// @Param id path int true "Check ID"
// @Success 200 {object} models.ProductCheck
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /products/check/{id} [get]
func GetCheckByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid check ID", http.StatusBadRequest)
		return
	}

	check, err := checkRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrCheckNotFound) {
			http.Error(w, "product check not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product check", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, check); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// UpdateCheckHandler godoc
// @Summary Update a product check with a partial payload
// @Description Category and date only; the product foreign key is immutable.
// @Tags checks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Check ID"
// @Param check body CheckUpdateRequest true "Fields to change"
// @Success 200 {object} models.ProductCheck
// @Failure 400 {array} ValidationError
// @Failure 404 {string} string "Not found"
// @Router /products/check/{id} [put]
func UpdateCheckHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid check ID", http.StatusBadRequest)
		return
	}

	var req CheckUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateCheckUpdate(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	updated, err := checkRepo.Update(id, repo.CheckPatch{
		Category: req.Category,
		Date:     req.Date,
	})
	if err != nil {
		if errors.Is(err, repo.ErrCheckNotFound) {
			http.Error(w, "product check not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not update product check", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, updated); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// DeleteCheckHandler godoc
// @Summary Delete a product check
// @Tags checks
// @Produce json
// @Security BearerAuth
// @Param id path int true "Check ID"
// @Success 200 {object} map[string]string
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /products/check/{id} [delete]
func DeleteCheckHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid check ID", http.StatusBadRequest)
		return
	}

	if err := checkRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrCheckNotFound) {
			http.Error(w, "product check not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete product check", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, map[string]string{}); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}
