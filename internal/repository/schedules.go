package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/kashrut-ops/mashguiach-manager/backend/internal/domain"
)

func (r *Repository) GetWeeklyScheduleByMashguiach(mashguiachID int64) (*domain.WeeklySchedule, error) {
	query := `
		SELECT
			ws.id,
			ws.establishment_id,
			ws.created_at,
			ws.version,
			s.id,
			s.weekday,
			s.time_in,
			s.time_out,
			s.is_day_off,
			s.sunday_of_month
		FROM weekly_schedules ws
		LEFT JOIN weekly_schedule_slots s ON ws.id = s.schedule_id
		WHERE ws.mashguiach_id = $1
		ORDER BY s.id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, mashguiachID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ws *domain.WeeklySchedule

	for rows.Next() {
		var row struct {
			ID              int64
			EstablishmentID int64
			CreatedAt       time.Time
			Version         int32

			SlotID        sql.NullInt64
			Weekday       sql.NullString
			TimeIn        sql.NullString
			TimeOut       sql.NullString
			IsDayOff      sql.NullBool
			SundayOfMonth sql.NullInt32
		}

		dst := []any{
			&row.ID,
			&row.EstablishmentID,
			&row.CreatedAt,
			&row.Version,
			&row.SlotID,
			&row.Weekday,
			&row.TimeIn,
			&row.TimeOut,
			&row.IsDayOff,
			&row.SundayOfMonth,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		if ws == nil {
			ws = &domain.WeeklySchedule{
				ID:              row.ID,
				MashguiachID:    mashguiachID,
				EstablishmentID: row.EstablishmentID,
				CreatedAt:       row.CreatedAt,
				Version:         row.Version,
				Slots:           make([]domain.DaySlot, 0, 7),
			}
		}

		// A schedule row without slots is possible right after creation.
		if !row.SlotID.Valid {
			continue
		}

		slot := domain.DaySlot{
			ID:       row.SlotID.Int64,
			Weekday:  row.Weekday.String,
			IsDayOff: row.IsDayOff.Bool,
		}
		if row.TimeIn.Valid {
			slot.TimeIn = &row.TimeIn.String
		}
		if row.TimeOut.Valid {
			slot.TimeOut = &row.TimeOut.String
		}
		if row.SundayOfMonth.Valid {
			slot.SundayOfMonth = &row.SundayOfMonth.Int32
		}

		ws.Slots = append(ws.Slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if ws == nil {
		return nil, sql.ErrNoRows
	}

	return ws, nil
}

// GetAllWeeklySchedules returns every fixed job keyed by supervisor, the
// shape the availability filter consumes.
func (r *Repository) GetAllWeeklySchedules() (map[int64]*domain.WeeklySchedule, error) {
	query := `
		SELECT
			ws.id,
			ws.mashguiach_id,
			ws.establishment_id,
			ws.created_at,
			ws.version,
			s.id,
			s.weekday,
			s.time_in,
			s.time_out,
			s.is_day_off,
			s.sunday_of_month
		FROM weekly_schedules ws
		LEFT JOIN weekly_schedule_slots s ON ws.id = s.schedule_id
		ORDER BY ws.id, s.id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	schedules := make(map[int64]*domain.WeeklySchedule)

	for rows.Next() {
		var row struct {
			ID              int64
			MashguiachID    int64
			EstablishmentID int64
			CreatedAt       time.Time
			Version         int32

			SlotID        sql.NullInt64
			Weekday       sql.NullString
			TimeIn        sql.NullString
			TimeOut       sql.NullString
			IsDayOff      sql.NullBool
			SundayOfMonth sql.NullInt32
		}

		dst := []any{
			&row.ID,
			&row.MashguiachID,
			&row.EstablishmentID,
			&row.CreatedAt,
			&row.Version,
			&row.SlotID,
			&row.Weekday,
			&row.TimeIn,
			&row.TimeOut,
			&row.IsDayOff,
			&row.SundayOfMonth,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		ws, exists := schedules[row.MashguiachID]
		if !exists {
			ws = &domain.WeeklySchedule{
				ID:              row.ID,
				MashguiachID:    row.MashguiachID,
				EstablishmentID: row.EstablishmentID,
				CreatedAt:       row.CreatedAt,
				Version:         row.Version,
				Slots:           make([]domain.DaySlot, 0, 7),
			}
			schedules[row.MashguiachID] = ws
		}

		if !row.SlotID.Valid {
			continue
		}

		slot := domain.DaySlot{
			ID:       row.SlotID.Int64,
			Weekday:  row.Weekday.String,
			IsDayOff: row.IsDayOff.Bool,
		}
		if row.TimeIn.Valid {
			slot.TimeIn = &row.TimeIn.String
		}
		if row.TimeOut.Valid {
			slot.TimeOut = &row.TimeOut.String
		}
		if row.SundayOfMonth.Valid {
			slot.SundayOfMonth = &row.SundayOfMonth.Int32
		}

		ws.Slots = append(ws.Slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return schedules, nil
}

// ReplaceWeeklySchedule swaps a supervisor's whole fixed job in one
// transaction: the previous schedule and all its slots are deleted and the
// new set is inserted. The editor never patches single slots, so a wholesale
// replace is the only write path.
func (r *Repository) ReplaceWeeklySchedule(ws *domain.WeeklySchedule) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		DELETE FROM weekly_schedules WHERE mashguiach_id = $1
	`
	if _, err := tx.ExecContext(ctx, query, ws.MashguiachID); err != nil {
		return err
	}

	query = `
		INSERT INTO weekly_schedules (mashguiach_id, establishment_id)
		VALUES ($1, $2)
		RETURNING id, created_at, version
	`
	if err := tx.QueryRowContext(ctx, query, ws.MashguiachID, ws.EstablishmentID).Scan(&ws.ID, &ws.CreatedAt, &ws.Version); err != nil {
		return err
	}

	for i := range ws.Slots {
		query = `
			INSERT INTO weekly_schedule_slots (schedule_id, weekday, time_in, time_out, is_day_off, sunday_of_month)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`
		params := []any{ws.ID, ws.Slots[i].Weekday, ws.Slots[i].TimeIn, ws.Slots[i].TimeOut, ws.Slots[i].IsDayOff, ws.Slots[i].SundayOfMonth}
		if err := tx.QueryRowContext(ctx, query, params...).Scan(&ws.Slots[i].ID); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteWeeklySchedule(mashguiachID int64) error {
	query := `
		DELETE FROM weekly_schedules WHERE mashguiach_id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, mashguiachID)
	if err != nil {
		return err
	}

	return nil
}
