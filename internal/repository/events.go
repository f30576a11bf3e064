package repository

import (
	"context"
	"time"

	"github.com/kashrut-ops/mashguiach-manager/backend/internal/domain"
)

func (r *Repository) CreateEvent(e *domain.Event) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO events (establishment_id, title, date)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, version
	`

	args := []any{e.EstablishmentID, e.Title, e.Date}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&e.ID, &e.CreatedAt, &e.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetEventByID(id int64) (*domain.Event, error) {
	query := `
		SELECT establishment_id, title, date, created_at, version
		FROM events WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	e := &domain.Event{
		ID: id,
	}

	dst := []any{&e.EstablishmentID, &e.Title, &e.Date, &e.CreatedAt, &e.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return e, nil
}

func (r *Repository) GetAllEvents() ([]*domain.Event, error) {
	query := `
		SELECT id, establishment_id, title, date, created_at, version
		FROM events
		ORDER BY date DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)
	for rows.Next() {
		e := &domain.Event{}
		dst := []any{&e.ID, &e.EstablishmentID, &e.Title, &e.Date, &e.CreatedAt, &e.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

func (r *Repository) DeleteEvent(id int64) error {
	query := `
		DELETE FROM events WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
