package repo

import "github.com/lucas-barreto/foodcheck/internal/models"

// InMemoryProductCheckRepository is an in-memory implementation of ProductCheckRepository.
type InMemoryProductCheckRepository struct {
	checks []models.ProductCheck
	nextID int
}

func NewInMemoryProductCheckRepository() *InMemoryProductCheckRepository {
	return &InMemoryProductCheckRepository{
		checks: []models.ProductCheck{},
		nextID: 1,
	}
}

func (r *InMemoryProductCheckRepository) Create(c models.ProductCheck) (models.ProductCheck, error) {
	c.ID = r.nextID
	r.nextID++
	r.checks = append(r.checks, c)
	return c, nil
}

func (r *InMemoryProductCheckRepository) GetAll() ([]models.ProductCheck, error) {
	return r.checks, nil
}

func (r *InMemoryProductCheckRepository) GetByID(id int) (models.ProductCheck, error) {
	for _, c := range r.checks {
		if c.ID == id {
			return c, nil
		}
	}
	return models.ProductCheck{}, ErrCheckNotFound
}

func (r *InMemoryProductCheckRepository) Update(id int, patch CheckPatch) (models.ProductCheck, error) {
	for i, c := range r.checks {
		if c.ID != id {
			continue
		}
		if patch.Category != nil {
			c.Category = *patch.Category
		}
		if patch.Date != nil {
			c.Date = *patch.Date
		}
		r.checks[i] = c
		return c, nil
	}
	return models.ProductCheck{}, ErrCheckNotFound
}

func (r *InMemoryProductCheckRepository) Delete(id int) error {
	for i, c := range r.checks {
		if c.ID == id {
			r.checks = append(r.checks[:i], r.checks[i+1:]...)
			return nil
		}
	}
	return ErrCheckNotFound
}

// Clear removes all checks. Used by tests.
func (r *InMemoryProductCheckRepository) Clear() {
	r.checks = []models.ProductCheck{}
	r.nextID = 1
}
