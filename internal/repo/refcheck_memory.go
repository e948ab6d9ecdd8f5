package repo

import "fmt"

// InMemoryRefChecker answers existence checks against the in-memory
// repositories. Used by the handler test suites.
type InMemoryRefChecker struct {
	Companies *InMemoryCompanyRepository
	Products  *InMemoryProductRepository
}

func (c *InMemoryRefChecker) Exists(table, column string, value int) (bool, error) {
	switch table {
	case "companies":
		_, err := c.Companies.GetByID(value)
		return err == nil, nil
	case "products":
		_, err := c.Products.GetByID(value)
		return err == nil, nil
	}
	return false, fmt.Errorf("unknown parent table %q", table)
}
