package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/dtcdev/invaccess/internal/domain"
)

// TransactionStore owns the borrow/return lifecycle. Borrow and
// MarkReturned touch the transactions and inventory_items tables inside
// one SQL transaction, so the one-open-loan-per-item invariant holds
// even under concurrent requests.
type TransactionStore struct {
	db *sql.DB
}

func NewTransactionStore(db *sql.DB) *TransactionStore {
	return &TransactionStore{db: db}
}

// Borrow opens a loan against an available item: creates the
// transaction record and flips the item to borrowed atomically.
// Returns domain.ErrNotFound for an unknown item and
// domain.ErrItemUnavailable when the item is not available or an open
// loan already references it.
func (s *TransactionStore) Borrow(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin borrow: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var status domain.ItemStatus
	err = tx.QueryRowContext(ctx, `
		SELECT status FROM inventory_items WHERE id = ?
	`, txn.ItemID).Scan(&status)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to check item status: %w", err)
	}
	if status != domain.ItemAvailable {
		return nil, domain.ErrItemUnavailable
	}

	var open int
	err = tx.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM transactions WHERE item_id = ? AND status = 'borrowed'
	`, txn.ItemID).Scan(&open)
	if err != nil {
		return nil, fmt.Errorf("failed to check open loans: %w", err)
	}
	if open > 0 {
		return nil, domain.ErrItemUnavailable
	}

	result, err := tx.ExecContext(ctx, `
		INSERT INTO transactions (item_id, borrower_name, borrower_email, office, date_borrowed, expected_return, date_returned, status)
		VALUES (?, ?, ?, ?, ?, ?, NULL, 'borrowed')
	`, txn.ItemID, txn.BorrowerName, txn.BorrowerEmail, txn.Office, txn.DateBorrowed, txn.ExpectedReturn)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE inventory_items SET status = 'borrowed' WHERE id = ?
	`, txn.ItemID); err != nil {
		return nil, fmt.Errorf("failed to mark item borrowed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit borrow: %w", err)
	}

	created := *txn
	created.ID = id
	created.DateReturned = nil
	created.Status = domain.TransactionBorrowed
	return &created, nil
}

// MarkReturned closes a loan: stamps the return date, sets the
// transaction to returned, and cascades the item back to available,
// atomically. Unknown ids surface domain.ErrNotFound; a transaction
// that is already returned is handed back unchanged.
func (s *TransactionStore) MarkReturned(ctx context.Context, id int64, date string) (*domain.Transaction, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin return: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	txn, err := scanTransaction(tx.QueryRowContext(ctx, `
		SELECT id, item_id, borrower_name, borrower_email, office, date_borrowed, expected_return, date_returned, status
		FROM transactions WHERE id = ?
	`, id))
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	if txn.Status == domain.TransactionReturned {
		return txn, nil
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE transactions SET date_returned = ?, status = 'returned' WHERE id = ?
	`, date, id); err != nil {
		return nil, fmt.Errorf("failed to mark transaction returned: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE inventory_items SET status = 'available' WHERE id = ?
	`, txn.ItemID); err != nil {
		return nil, fmt.Errorf("failed to mark item available: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit return: %w", err)
	}

	txn.DateReturned = &date
	txn.Status = domain.TransactionReturned
	return txn, nil
}

func (s *TransactionStore) GetByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	txn, err := scanTransaction(s.db.QueryRowContext(ctx, `
		SELECT id, item_id, borrower_name, borrower_email, office, date_borrowed, expected_return, date_returned, status
		FROM transactions WHERE id = ?
	`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return txn, nil
}

// List returns transactions in insertion order, optionally filtered by
// status ("" means all).
func (s *TransactionStore) List(ctx context.Context, status domain.TransactionStatus) ([]*domain.Transaction, error) {
	query := `
		SELECT id, item_id, borrower_name, borrower_email, office, date_borrowed, expected_return, date_returned, status
		FROM transactions`
	var args []any
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY id ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("failed to close rows", "error", err)
		}
	}()

	var txns []*domain.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, txn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	return txns, nil
}

// CountOpen reports the number of active loans.
func (s *TransactionStore) CountOpen(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM transactions WHERE status = 'borrowed'
	`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count open transactions: %w", err)
	}
	return count, nil
}

func scanTransaction(row rowScanner) (*domain.Transaction, error) {
	txn := &domain.Transaction{}
	var returned sql.NullString
	err := row.Scan(&txn.ID, &txn.ItemID, &txn.BorrowerName, &txn.BorrowerEmail, &txn.Office,
		&txn.DateBorrowed, &txn.ExpectedReturn, &returned, &txn.Status)
	if err != nil {
		return nil, err
	}
	if returned.Valid {
		txn.DateReturned = &returned.String
	}
	return txn, nil
}
