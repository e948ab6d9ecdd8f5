package repo

import (
	"errors"

	"github.com/lucas-barreto/foodcheck/internal/models"
)

// ProductPatch lists the updatable product fields. The company foreign key
// is deliberately absent: it cannot be changed after creation.
type ProductPatch struct {
	Title       *string
	Description *string
}

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	Create(p models.Product) (models.Product, error)
	GetAll() ([]models.Product, error)
	GetByID(id int) (models.Product, error)
	Update(id int, patch ProductPatch) (models.Product, error)
	Delete(id int) error
}

var (
	ErrProductNotFound       = errors.New("product not found")
	ErrDuplicatedValueUnique = errors.New("duplicated value for unique field")
)
