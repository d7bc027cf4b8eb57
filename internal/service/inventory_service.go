package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtcdev/invaccess/internal/domain"
	"github.com/dtcdev/invaccess/internal/store"
)

// itemRepository is the subset of store.ItemStore that
// InventoryService requires.
type itemRepository interface {
	Create(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error)
	GetByQRCode(ctx context.Context, code string) (*domain.InventoryItem, error)
	List(ctx context.Context, f store.ItemFilter) ([]*domain.InventoryItem, error)
	Categories(ctx context.Context) ([]string, error)
	CountByStatus(ctx context.Context) (map[domain.ItemStatus]int, error)
}

// transactionRepository is the subset of store.TransactionStore that
// InventoryService requires.
type transactionRepository interface {
	Borrow(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error)
	MarkReturned(ctx context.Context, id int64, date string) (*domain.Transaction, error)
	List(ctx context.Context, status domain.TransactionStatus) ([]*domain.Transaction, error)
	CountOpen(ctx context.Context) (int, error)
}

const (
	defaultCategory = "General"
	defaultLocation = "Storage"
)

// InventoryService tracks physical assets and their borrow/return
// lifecycle. Item status is driven exclusively by transactions: borrow
// flips an item to borrowed, return flips it back to available.
type InventoryService struct {
	items        itemRepository
	transactions transactionRepository
	logger       *slog.Logger
}

func NewInventoryService(items itemRepository, transactions transactionRepository, logger *slog.Logger) *InventoryService {
	return &InventoryService{items: items, transactions: transactions, logger: logger}
}

// ListItems returns inventory in registration order. Search matches
// description or serial number, case-insensitively.
func (s *InventoryService) ListItems(ctx context.Context, search, category string, status domain.ItemStatus) ([]*domain.InventoryItem, error) {
	return s.items.List(ctx, store.ItemFilter{Search: search, Category: category, Status: status})
}

// AddItem registers a new asset. Description and serial number are
// required; category and location fall back to defaults. Every new
// item starts available and gets a freshly generated QR code.
func (s *InventoryService) AddItem(ctx context.Context, description, serialNo, category, location string) (*domain.InventoryItem, error) {
	if description == "" {
		return nil, domain.MissingField("description")
	}
	if serialNo == "" {
		return nil, domain.MissingField("serialNo")
	}
	if category == "" {
		category = defaultCategory
	}
	if location == "" {
		location = defaultLocation
	}

	item, err := s.items.Create(ctx, &domain.InventoryItem{
		Description: description,
		SerialNo:    serialNo,
		QRCode:      newQRCode(),
		Status:      domain.ItemAvailable,
		Category:    category,
		Location:    location,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("inventory item added", "id", item.ID, "serial", item.SerialNo, "qr", item.QRCode)
	return item, nil
}

// newQRCode mints a unique code of the form QR-3F2504E0. The UUID's
// first segment keeps codes short enough to print on a label.
func newQRCode() string {
	segment, _, _ := strings.Cut(uuid.NewString(), "-")
	return "QR-" + strings.ToUpper(segment)
}

// ScanQR looks an item up by its QR code.
func (s *InventoryService) ScanQR(ctx context.Context, code string) (*domain.InventoryItem, error) {
	if code == "" {
		return nil, domain.MissingField("code")
	}
	item, err := s.items.GetByQRCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

// Borrow opens a loan on an item. The item must exist, be available,
// and have no open loan already; the borrow date is stamped with
// today's date.
func (s *InventoryService) Borrow(ctx context.Context, itemID int64, borrowerName, borrowerEmail, office, expectedReturn string) (*domain.Transaction, error) {
	if borrowerName == "" {
		return nil, domain.MissingField("borrowerName")
	}
	if borrowerEmail == "" {
		return nil, domain.MissingField("borrowerEmail")
	}
	if office == "" {
		return nil, domain.MissingField("office")
	}

	txn, err := s.transactions.Borrow(ctx, &domain.Transaction{
		ItemID:         itemID,
		BorrowerName:   borrowerName,
		BorrowerEmail:  borrowerEmail,
		Office:         office,
		DateBorrowed:   today(),
		ExpectedReturn: expectedReturn,
		Status:         domain.TransactionBorrowed,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("item borrowed", "transaction", txn.ID, "item", txn.ItemID, "borrower", txn.BorrowerName)
	return txn, nil
}

// Return closes a loan, stamping today's date and freeing the item.
// Returning an already-closed loan is a no-op that keeps the original
// return date.
func (s *InventoryService) Return(ctx context.Context, txnID int64) (*domain.Transaction, error) {
	txn, err := s.transactions.MarkReturned(ctx, txnID, today())
	if err != nil {
		return nil, err
	}

	s.logger.Info("item returned", "transaction", txn.ID, "item", txn.ItemID)
	return txn, nil
}

func today() string {
	return time.Now().Format("2006-01-02")
}

// ListTransactions returns loans in creation order, optionally
// narrowed to one status.
func (s *InventoryService) ListTransactions(ctx context.Context, status domain.TransactionStatus) ([]*domain.Transaction, error) {
	return s.transactions.List(ctx, status)
}

// Categories lists the distinct inventory categories in use.
func (s *InventoryService) Categories(ctx context.Context) ([]string, error) {
	return s.items.Categories(ctx)
}

// Summary feeds the admin analytics view.
type Summary struct {
	TotalItems  int `json:"totalItems"`
	Available   int `json:"available"`
	Borrowed    int `json:"borrowed"`
	Maintenance int `json:"maintenance"`
	OpenLoans   int `json:"openLoans"`
}

func (s *InventoryService) Summary(ctx context.Context) (*Summary, error) {
	counts, err := s.items.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	open, err := s.transactions.CountOpen(ctx)
	if err != nil {
		return nil, err
	}
	sum := &Summary{
		Available:   counts[domain.ItemAvailable],
		Borrowed:    counts[domain.ItemBorrowed],
		Maintenance: counts[domain.ItemMaintenance],
		OpenLoans:   open,
	}
	sum.TotalItems = sum.Available + sum.Borrowed + sum.Maintenance
	return sum, nil
}
