package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lucas-barreto/foodcheck/internal/models"
)

type PostgresCompanyRepository struct {
	db *sql.DB
}

func NewPostgresCompanyRepository(db *sql.DB) *PostgresCompanyRepository {
	return &PostgresCompanyRepository{db: db}
}

func (r *PostgresCompanyRepository) Create(c models.Company) (models.Company, error) {
	query := `INSERT INTO companies (title, category, address) VALUES ($1, $2, $3) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, c.Title, c.Category, c.Address).Scan(&c.ID)
	return c, err
}

func (r *PostgresCompanyRepository) GetAll() ([]models.Company, error) {
	query := `SELECT id, title, category, address FROM companies ORDER BY id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []models.Company
	for rows.Next() {
		var c models.Company
		if err := rows.Scan(&c.ID, &c.Title, &c.Category, &c.Address); err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

func (r *PostgresCompanyRepository) GetByID(id int) (models.Company, error) {
	query := `SELECT id, title, category, address FROM companies WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var c models.Company
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Title, &c.Category, &c.Address)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Company{}, ErrCompanyNotFound
	}
	return c, err
}

func (r *PostgresCompanyRepository) Update(id int, patch CompanyPatch) (models.Company, error) {
	query := `
		UPDATE companies
		SET title = COALESCE($1, title), category = COALESCE($2, category), address = COALESCE($3, address)
		WHERE id = $4
		RETURNING id, title, category, address
	`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var c models.Company
	err := r.db.QueryRowContext(ctx, query, patch.Title, patch.Category, patch.Address, id).
		Scan(&c.ID, &c.Title, &c.Category, &c.Address)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Company{}, ErrCompanyNotFound
	}
	return c, err
}

func (r *PostgresCompanyRepository) Delete(id int) error {
	query := `DELETE FROM companies WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrCompanyNotFound
	}
	return nil
}
