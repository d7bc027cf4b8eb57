package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/dtcdev/invaccess/internal/domain"
)

type RequestStore struct {
	db *sql.DB
}

func NewRequestStore(db *sql.DB) *RequestStore {
	return &RequestStore{db: db}
}

func (s *RequestStore) Create(ctx context.Context, description, requester string) (*domain.ItemRequest, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO item_requests (description, requester) VALUES (?, ?)
	`, description, requester)
	if err != nil {
		return nil, fmt.Errorf("failed to create item request: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	req := &domain.ItemRequest{}
	err = s.db.QueryRowContext(ctx, `
		SELECT id, description, requester, created_at FROM item_requests WHERE id = ?
	`, id).Scan(&req.ID, &req.Description, &req.Requester, &req.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get item request: %w", err)
	}

	return req, nil
}

func (s *RequestStore) List(ctx context.Context) ([]*domain.ItemRequest, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, description, requester, created_at FROM item_requests ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list item requests: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("failed to close rows", "error", err)
		}
	}()

	var reqs []*domain.ItemRequest
	for rows.Next() {
		req := &domain.ItemRequest{}
		if err := rows.Scan(&req.ID, &req.Description, &req.Requester, &req.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan item request: %w", err)
		}
		reqs = append(reqs, req)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating item requests: %w", err)
	}

	return reqs, nil
}
