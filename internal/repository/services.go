package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/kashrut-ops/mashguiach-manager/backend/internal/domain"
)

const serviceColumns = `
	id, event_id, mashguiach_id, arrive_time, end_time,
	day_rate, night_rate, transport_fee, is_paid,
	day_hours, night_hours, day_amount, night_amount, total_amount,
	created_at, version
`

func scanService(scanner interface{ Scan(...any) error }) (*domain.Service, error) {
	svc := &domain.Service{}

	var mashguiachID sql.NullInt64
	var dayRate, nightRate sql.NullFloat64

	dst := []any{
		&svc.ID, &svc.EventID, &mashguiachID, &svc.ArriveTime, &svc.EndTime,
		&dayRate, &nightRate, &svc.TransportFee, &svc.IsPaid,
		&svc.DayHours, &svc.NightHours, &svc.DayAmount, &svc.NightAmount, &svc.TotalAmount,
		&svc.CreatedAt, &svc.Version,
	}
	if err := scanner.Scan(dst...); err != nil {
		return nil, err
	}

	if mashguiachID.Valid {
		svc.MashguiachID = &mashguiachID.Int64
	}
	if dayRate.Valid {
		svc.DayRate = &dayRate.Float64
	}
	if nightRate.Valid {
		svc.NightRate = &nightRate.Float64
	}

	return svc, nil
}

func (r *Repository) queryServices(query string, args ...any) ([]*domain.Service, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		services = append(services, svc)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return services, nil
}

func (r *Repository) CreateService(svc *domain.Service) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO services (
			event_id, mashguiach_id, arrive_time, end_time,
			day_rate, night_rate, transport_fee,
			day_hours, night_hours, day_amount, night_amount, total_amount
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, is_paid, created_at, version
	`

	args := []any{
		svc.EventID, svc.MashguiachID, svc.ArriveTime, svc.EndTime,
		svc.DayRate, svc.NightRate, svc.TransportFee,
		svc.DayHours, svc.NightHours, svc.DayAmount, svc.NightAmount, svc.TotalAmount,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&svc.ID, &svc.IsPaid, &svc.CreatedAt, &svc.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateService(svc *domain.Service) error {
	query := `
		UPDATE services
		SET
			mashguiach_id = $1,
			arrive_time = $2,
			end_time = $3,
			day_rate = $4,
			night_rate = $5,
			transport_fee = $6,
			is_paid = $7,
			day_hours = $8,
			night_hours = $9,
			day_amount = $10,
			night_amount = $11,
			total_amount = $12,
			version = version + 1
		WHERE id = $13 AND version = $14
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{
		svc.MashguiachID, svc.ArriveTime, svc.EndTime,
		svc.DayRate, svc.NightRate, svc.TransportFee, svc.IsPaid,
		svc.DayHours, svc.NightHours, svc.DayAmount, svc.NightAmount, svc.TotalAmount,
		svc.ID, svc.Version,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&svc.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetServiceByID(id int64) (*domain.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = $1`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	return scanService(r.dbpool.QueryRowContext(ctx, query, id))
}

func (r *Repository) GetServicesByEvent(eventID int64) ([]*domain.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE event_id = $1 ORDER BY arrive_time`
	return r.queryServices(query, eventID)
}

// GetServicesByMashguiachInRange feeds the monthly payroll report.
func (r *Repository) GetServicesByMashguiachInRange(mashguiachID int64, from, to time.Time) ([]*domain.Service, error) {
	query := `
		SELECT ` + serviceColumns + `
		FROM services
		WHERE mashguiach_id = $1 AND arrive_time >= $2 AND arrive_time < $3
		ORDER BY arrive_time
	`
	return r.queryServices(query, mashguiachID, from, to)
}

// GetServicesByEstablishmentInRange feeds the monthly billing report.
func (r *Repository) GetServicesByEstablishmentInRange(establishmentID int64, from, to time.Time) ([]*domain.Service, error) {
	query := `
		SELECT ` + serviceColumns + `
		FROM services
		WHERE event_id IN (SELECT id FROM events WHERE establishment_id = $1)
			AND arrive_time >= $2 AND arrive_time < $3
		ORDER BY arrive_time
	`
	return r.queryServices(query, establishmentID, from, to)
}

// GetServicesInRange feeds the dashboard aggregate.
func (r *Repository) GetServicesInRange(from, to time.Time) ([]*domain.Service, error) {
	query := `
		SELECT ` + serviceColumns + `
		FROM services
		WHERE arrive_time >= $1 AND arrive_time < $2
		ORDER BY arrive_time
	`
	return r.queryServices(query, from, to)
}

// GetAssignmentsOverlapping returns the assigned services that intersect the
// window, the secondary input of the availability filter.
func (r *Repository) GetAssignmentsOverlapping(start, end time.Time) ([]*domain.Service, error) {
	query := `
		SELECT ` + serviceColumns + `
		FROM services
		WHERE mashguiach_id IS NOT NULL AND arrive_time < $2 AND end_time > $1
		ORDER BY arrive_time
	`
	return r.queryServices(query, start, end)
}

func (r *Repository) DeleteService(id int64) error {
	query := `
		DELETE FROM services WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
