package repository

import (
	"context"
	"time"

	"github.com/kashrut-ops/mashguiach-manager/backend/internal/domain"
)

func (r *Repository) GetAllEstablishments() ([]*domain.Establishment, error) {
	query := `
		SELECT id, name, address, city, phone, created_at, version
		FROM establishments
		ORDER BY id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	establishments := make([]*domain.Establishment, 0)
	for rows.Next() {
		e := &domain.Establishment{}
		dst := []any{&e.ID, &e.Name, &e.Address, &e.City, &e.Phone, &e.CreatedAt, &e.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		establishments = append(establishments, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return establishments, nil
}

func (r *Repository) GetEstablishmentByID(id int64) (*domain.Establishment, error) {
	query := `
		SELECT name, address, city, phone, created_at, version
		FROM establishments WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	e := &domain.Establishment{
		ID: id,
	}

	dst := []any{&e.Name, &e.Address, &e.City, &e.Phone, &e.CreatedAt, &e.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return e, nil
}

func (r *Repository) CreateEstablishment(e *domain.Establishment) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO establishments (name, address, city, phone)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, version
	`

	args := []any{e.Name, e.Address, e.City, e.Phone}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&e.ID, &e.CreatedAt, &e.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateEstablishment(e *domain.Establishment) error {
	query := `
		UPDATE establishments
		SET
			name = $1,
			address = $2,
			city = $3,
			phone = $4,
			version = version + 1
		WHERE id = $5 AND version = $6
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{e.Name, e.Address, e.City, e.Phone, e.ID, e.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&e.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteEstablishment(id int64) error {
	query := `
		DELETE FROM establishments WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
