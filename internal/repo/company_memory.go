package repo

import "github.com/lucas-barreto/foodcheck/internal/models"

// InMemoryCompanyRepository is an in-memory implementation of CompanyRepository.
type InMemoryCompanyRepository struct {
	companies []models.Company
	nextID    int
}

func NewInMemoryCompanyRepository() *InMemoryCompanyRepository {
	return &InMemoryCompanyRepository{
		companies: []models.Company{},
		nextID:    1,
	}
}

func (r *InMemoryCompanyRepository) Create(c models.Company) (models.Company, error) {
	c.ID = r.nextID
	r.nextID++
	r.companies = append(r.companies, c)
	return c, nil
}

func (r *InMemoryCompanyRepository) GetAll() ([]models.Company, error) {
	return r.companies, nil
}

func (r *InMemoryCompanyRepository) GetByID(id int) (models.Company, error) {
	for _, c := range r.companies {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Company{}, ErrCompanyNotFound
}

func (r *InMemoryCompanyRepository) Update(id int, patch CompanyPatch) (models.Company, error) {
	for i, c := range r.companies {
		if c.ID != id {
			continue
		}
		if patch.Title != nil {
			c.Title = *patch.Title
		}
		if patch.Category != nil {
			c.Category = *patch.Category
		}
		if patch.Address != nil {
			c.Address = *patch.Address
		}
		r.companies[i] = c
		return c, nil
	}
	return models.Company{}, ErrCompanyNotFound
}

func (r *InMemoryCompanyRepository) Delete(id int) error {
	for i, c := range r.companies {
		if c.ID == id {
			r.companies = append(r.companies[:i], r.companies[i+1:]...)
			return nil
		}
	}
	return ErrCompanyNotFound
}

// Clear removes all companies. Used by tests.
func (r *InMemoryCompanyRepository) Clear() {
	r.companies = []models.Company{}
	r.nextID = 1
}
