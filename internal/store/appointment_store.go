package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/dtcdev/invaccess/internal/domain"
)

type AppointmentStore struct {
	db *sql.DB
}

func NewAppointmentStore(db *sql.DB) *AppointmentStore {
	return &AppointmentStore{db: db}
}

// Create persists a new appointment and returns it with its assigned
// id. The item list is stored as a JSON array.
func (s *AppointmentStore) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	items, err := json.Marshal(appt.Items)
	if err != nil {
		return nil, fmt.Errorf("failed to encode appointment items: %w", err)
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO appointments (requester_name, email, phone, department, date, time, purpose, items, status, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, appt.RequesterName, appt.Email, appt.Phone, appt.Department, appt.Date, appt.Time,
		appt.Purpose, string(items), appt.Status, appt.Notes, appt.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return s.GetByID(ctx, id)
}

func (s *AppointmentStore) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, requester_name, email, phone, department, date, time, purpose, items, status, notes, created_at
		FROM appointments WHERE id = ?
	`, id)

	appt, err := scanAppointment(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return appt, nil
}

// List returns appointments in insertion order, optionally filtered by
// status ("" means all).
func (s *AppointmentStore) List(ctx context.Context, status domain.AppointmentStatus) ([]*domain.Appointment, error) {
	query := `
		SELECT id, requester_name, email, phone, department, date, time, purpose, items, status, notes, created_at
		FROM appointments`
	var args []any
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY id ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("failed to close rows", "error", err)
		}
	}()

	var appts []*domain.Appointment
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan appointment: %w", err)
		}
		appts = append(appts, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating appointments: %w", err)
	}

	return appts, nil
}

func (s *AppointmentStore) CountByStatus(ctx context.Context, status domain.AppointmentStatus) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM appointments WHERE status = ?
	`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count appointments: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	appt := &domain.Appointment{}
	var items string
	err := row.Scan(&appt.ID, &appt.RequesterName, &appt.Email, &appt.Phone, &appt.Department,
		&appt.Date, &appt.Time, &appt.Purpose, &items, &appt.Status, &appt.Notes, &appt.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(items), &appt.Items); err != nil {
		return nil, fmt.Errorf("failed to decode appointment items: %w", err)
	}
	return appt, nil
}
