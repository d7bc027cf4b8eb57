package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dtcdev/invaccess/internal/domain"
)

// CatalogStore reads the static list of bookable catalog entries. The
// catalog is reference data: seeded once, never mutated at runtime.
type CatalogStore struct {
	db *sql.DB
}

func NewCatalogStore(db *sql.DB) *CatalogStore {
	return &CatalogStore{db: db}
}

// CatalogFilter narrows a catalog listing. Search is a case-insensitive
// substring match on the name; Category must match exactly, with "" or
// "all" meaning every category.
type CatalogFilter struct {
	Search   string
	Category string
}

func (s *CatalogStore) List(ctx context.Context, f CatalogFilter) ([]*domain.CatalogItem, error) {
	query := `SELECT id, name, category, status FROM catalog_items WHERE 1=1`
	var args []any

	if f.Search != "" {
		query += ` AND LOWER(name) LIKE ?`
		args = append(args, "%"+strings.ToLower(f.Search)+"%")
	}
	if f.Category != "" && f.Category != "all" {
		query += ` AND category = ?`
		args = append(args, f.Category)
	}
	query += ` ORDER BY id ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("failed to close rows", "error", err)
		}
	}()

	var entries []*domain.CatalogItem
	for rows.Next() {
		entry := &domain.CatalogItem{}
		if err := rows.Scan(&entry.ID, &entry.Name, &entry.Category, &entry.Status); err != nil {
			return nil, fmt.Errorf("failed to scan catalog entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating catalog: %w", err)
	}

	return entries, nil
}

func (s *CatalogStore) GetByID(ctx context.Context, id int64) (*domain.CatalogItem, error) {
	entry := &domain.CatalogItem{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, category, status FROM catalog_items WHERE id = ?
	`, id).Scan(&entry.ID, &entry.Name, &entry.Category, &entry.Status)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog entry: %w", err)
	}

	return entry, nil
}

// CountAvailable reports how many catalog entries are bookable, for the
// dashboard counters.
func (s *CatalogStore) CountAvailable(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM catalog_items WHERE status = 'available'
	`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count available catalog entries: %w", err)
	}
	return count, nil
}
