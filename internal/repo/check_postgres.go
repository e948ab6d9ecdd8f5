package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lucas-barreto/foodcheck/internal/models"
)

type PostgresProductCheckRepository struct {
	db *sql.DB
}

func NewPostgresProductCheckRepository(db *sql.DB) *PostgresProductCheckRepository {
	return &PostgresProductCheckRepository{db: db}
}

func (r *PostgresProductCheckRepository) Create(c models.ProductCheck) (models.ProductCheck, error) {
	query := `INSERT INTO product_checks (category, date, product_id) VALUES ($1, $2::date, $3) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, c.Category, c.Date, c.ProductID).Scan(&c.ID)
	return c, err
}

func (r *PostgresProductCheckRepository) GetAll() ([]models.ProductCheck, error) {
	query := `SELECT id, category, date::text, product_id FROM product_checks ORDER BY id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var checks []models.ProductCheck
	for rows.Next() {
		var c models.ProductCheck
		if err := rows.Scan(&c.ID, &c.Category, &c.Date, &c.ProductID); err != nil {
			return nil, err
		}
		checks = append(checks, c)
	}
	return checks, rows.Err()
}

func (r *PostgresProductCheckRepository) GetByID(id int) (models.ProductCheck, error) {
	query := `SELECT id, category, date::text, product_id FROM product_checks WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var c models.ProductCheck
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Category, &c.Date, &c.ProductID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ProductCheck{}, ErrCheckNotFound
	}
	return c, err
}

func (r *PostgresProductCheckRepository) Update(id int, patch CheckPatch) (models.ProductCheck, error) {
	query := `
		UPDATE product_checks
		SET category = COALESCE($1, category), date = COALESCE($2::date, date)
		WHERE id = $3
		RETURNING id, category, date::text, product_id
	`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var c models.ProductCheck
	err := r.db.QueryRowContext(ctx, query, patch.Category, patch.Date, id).
		Scan(&c.ID, &c.Category, &c.Date, &c.ProductID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ProductCheck{}, ErrCheckNotFound
	}
	return c, err
}

func (r *PostgresProductCheckRepository) Delete(id int) error {
	query := `DELETE FROM product_checks WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrCheckNotFound
	}
	return nil
}
