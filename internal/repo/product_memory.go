package repo

import "github.com/lucas-barreto/foodcheck/internal/models"

// InMemoryProductRepository is an in-memory implementation of ProductRepository.
type InMemoryProductRepository struct {
	products []models.Product
	nextID   int
}

func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: []models.Product{},
		nextID:   1,
	}
}

func (r *InMemoryProductRepository) Create(p models.Product) (models.Product, error) {
	for _, existing := range r.products {
		if existing.Title == p.Title {
			return models.Product{}, ErrDuplicatedValueUnique
		}
	}

	p.ID = r.nextID
	r.nextID++
	r.products = append(r.products, p)
	return p, nil
}

func (r *InMemoryProductRepository) GetAll() ([]models.Product, error) {
	return r.products, nil
}

func (r *InMemoryProductRepository) GetByID(id int) (models.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) Update(id int, patch ProductPatch) (models.Product, error) {
	for i, p := range r.products {
		if p.ID != id {
			continue
		}
		if patch.Title != nil {
			for _, other := range r.products {
				if other.ID != id && other.Title == *patch.Title {
					return models.Product{}, ErrDuplicatedValueUnique
				}
			}
			p.Title = *patch.Title
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		r.products[i] = p
		return p, nil
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) Delete(id int) error {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

// Clear removes all products. Used by tests.
func (r *InMemoryProductRepository) Clear() {
	r.products = []models.Product{}
	r.nextID = 1
}
