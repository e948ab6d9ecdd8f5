package repo

import (
	"errors"

	"github.com/lucas-barreto/foodcheck/internal/models"
)

// CompanyPatch lists the updatable company fields; nil fields are left
// untouched on update.
type CompanyPatch struct {
	Title    *string
	Category *string
	Address  *string
}

// CompanyRepository defines the interface for company data operations.
type CompanyRepository interface {
	Create(c models.Company) (models.Company, error)
	GetAll() ([]models.Company, error)
	GetByID(id int) (models.Company, error)
	Update(id int, patch CompanyPatch) (models.Company, error)
	Delete(id int) error
}

var ErrCompanyNotFound = errors.New("company not found")
