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

// GetCompaniesHandler godoc
// @Summary List all companies
// @Tags companies
// @Produce json
// @Success 200 {array} models.Company
// @Failure 500 {string} string "Internal error"
// @Router /companies [get]
func GetCompaniesHandler(w http.ResponseWriter, r *http.Request) {
	companies, err := companyRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch companies", http.StatusInternalServerError)
		return
	}
	if companies == nil {
		companies = []models.Company{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(companies)
}

// CreateCompanyHandler godoc
// @Summary Create a new company
// @Tags companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param company body CompanyRequest true "Company to add"
// @Success 200 {object} models.Company
// @Failure 400 {array} ValidationError
// @Router /companies [post]
func CreateCompanyHandler(w http.ResponseWriter, r *http.Request) {
	var req CompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateCompany(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	created, err := companyRepo.Create(models.Company{
		Title:    req.Title,
		Category: req.Category,
		Address:  req.Address,
	})
	if err != nil {
		http.Error(w, "could not create company", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, created); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// GetCompanyByIDHandler godoc
// @Summary Get company by ID
// @Tags companies
// @Produce json
// @Param id path int true "Company ID"
// @Success 200 {object} models.Company
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /companies/{id} [get]
func GetCompanyByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid company ID", http.StatusBadRequest)
		return
	}

	company, err := companyRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrCompanyNotFound) {
			http.Error(w, "company not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch company", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, company); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// UpdateCompanyHandler godoc
// @Summary Update a company with a partial payload
// @Tags companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Company ID"
// @Param company body CompanyUpdateRequest true "Fields to change"
// @Success 200 {object} models.Company
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Not found"
// @Router /companies/{id} [put]
func UpdateCompanyHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid company ID", http.StatusBadRequest)
		return
	}

	var req CompanyUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	updated, err := companyRepo.Update(id, repo.CompanyPatch{
		Title:    req.Title,
		Category: req.Category,
		Address:  req.Address,
	})
	if err != nil {
		if errors.Is(err, repo.ErrCompanyNotFound) {
			http.Error(w, "company not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not update company", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, updated); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// DeleteCompanyHandler godoc
// @Summary Delete a company
// @Tags companies
// @Produce json
// @Security BearerAuth
// @Param id path int true "Company ID"
// @Success 200 {object} map[string]string
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /companies/{id} [delete]
func DeleteCompanyHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid company ID", http.StatusBadRequest)
		return
	}

	if err := companyRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrCompanyNotFound) {
			http.Error(w, "company not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete company", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, map[string]string{}); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}
