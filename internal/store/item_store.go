package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dtcdev/invaccess/internal/domain"
)

type ItemStore struct {
	db *sql.DB
}

func NewItemStore(db *sql.DB) *ItemStore {
	return &ItemStore{db: db}
}

// ItemFilter narrows an inventory listing. Search matches description
// or serial number, case-insensitively; Category and Status are exact
// matches when set.
type ItemFilter struct {
	Search   string
	Category string
	Status   domain.ItemStatus
}

func (s *ItemStore) Create(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO inventory_items (description, serial_no, qr_code, status, category, location)
		VALUES (?, ?, ?, ?, ?, ?)
	`, item.Description, item.SerialNo, item.QRCode, item.Status, item.Category, item.Location)
	if err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return s.GetByID(ctx, id)
}

func (s *ItemStore) GetByID(ctx context.Context, id int64) (*domain.InventoryItem, error) {
	item := &domain.InventoryItem{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, description, serial_no, qr_code, status, category, location
		FROM inventory_items WHERE id = ?
	`, id).Scan(&item.ID, &item.Description, &item.SerialNo, &item.QRCode, &item.Status, &item.Category, &item.Location)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	return item, nil
}

// GetByQRCode performs the exact-match lookup behind the simulated QR
// scan. Returns (nil, nil) when no item carries the code.
func (s *ItemStore) GetByQRCode(ctx context.Context, code string) (*domain.InventoryItem, error) {
	item := &domain.InventoryItem{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, description, serial_no, qr_code, status, category, location
		FROM inventory_items WHERE qr_code = ?
	`, code).Scan(&item.ID, &item.Description, &item.SerialNo, &item.QRCode, &item.Status, &item.Category, &item.Location)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item by qr code: %w", err)
	}

	return item, nil
}

// List returns inventory items in insertion order. Filtering never
// mutates stored state; an empty filter returns the full collection.
func (s *ItemStore) List(ctx context.Context, f ItemFilter) ([]*domain.InventoryItem, error) {
	query := `
		SELECT id, description, serial_no, qr_code, status, category, location
		FROM inventory_items WHERE 1=1`
	var args []any

	if f.Search != "" {
		pattern := "%" + strings.ToLower(f.Search) + "%"
		query += ` AND (LOWER(description) LIKE ? OR LOWER(serial_no) LIKE ?)`
		args = append(args, pattern, pattern)
	}
	if f.Category != "" {
		query += ` AND category = ?`
		args = append(args, f.Category)
	}
	if f.Status != "" {
		query += ` AND status = ?`
		args = append(args, f.Status)
	}
	query += ` ORDER BY id ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("failed to close rows", "error", err)
		}
	}()

	var items []*domain.InventoryItem
	for rows.Next() {
		item := &domain.InventoryItem{}
		if err := rows.Scan(&item.ID, &item.Description, &item.SerialNo, &item.QRCode, &item.Status, &item.Category, &item.Location); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating items: %w", err)
	}

	return items, nil
}

// Categories lists the distinct categories currently present, for the
// filter dropdown.
func (s *ItemStore) Categories(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT category FROM inventory_items ORDER BY category ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("failed to close rows", "error", err)
		}
	}()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

// CountByStatus reports item counts keyed by status.
func (s *ItemStore) CountByStatus(ctx context.Context) (map[domain.ItemStatus]int, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT status, COUNT(*) FROM inventory_items GROUP BY status
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to count items: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("failed to close rows", "error", err)
		}
	}()

	counts := make(map[domain.ItemStatus]int)
	for rows.Next() {
		var status domain.ItemStatus
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("failed to scan count: %w", err)
		}
		counts[status] = n
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating counts: %w", err)
	}

	return counts, nil
}
