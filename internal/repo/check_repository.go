package repo

import (
	"errors"

	"github.com/lucas-barreto/foodcheck/internal/models"
)

// CheckPatch lists the updatable product-check fields. The product foreign
// key is deliberately absent: it cannot be changed after creation.
type CheckPatch struct {
	Category *string
	Date     *string
}

// ProductCheckRepository defines the interface for product-check data operations.
type ProductCheckRepository interface {
	Create(c models.ProductCheck) (models.ProductCheck, error)
	GetAll() ([]models.ProductCheck, error)
	GetByID(id int) (models.ProductCheck, error)
	Update(id int, patch CheckPatch) (models.ProductCheck, error)
	Delete(id int) error
}

var ErrCheckNotFound = errors.New("product check not found")
