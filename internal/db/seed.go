package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// Seed loads the demo fixtures: two accounts, the bookable catalog, six
// inventory items, one open loan, and two example appointments. It is a
// no-op when the users table already has rows, so calling it on every
// startup is safe.
func Seed(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("failed to check for existing seed data: %w", err)
	}
	if count > 0 {
		return nil
	}

	seeders := []func(context.Context, *sql.DB) error{
		seedUsers,
		seedCatalog,
		seedInventory,
		seedAppointments,
	}
	for _, seed := range seeders {
		if err := seed(ctx, db); err != nil {
			return err
		}
	}
	return nil
}

func seedUsers(ctx context.Context, db *sql.DB) error {
	users := []struct {
		email, password, name, role string
	}{
		{"admin@company.com", "admin123", "Admin User", "admin"},
		{"user@company.com", "user123", "Regular User", "user"},
	}
	for _, u := range users {
		_, err := db.ExecContext(ctx, `
			INSERT INTO users (email, password, display_name, role) VALUES (?, ?, ?, ?)
		`, u.email, u.password, u.name, u.role)
		if err != nil {
			return fmt.Errorf("failed to seed user %s: %w", u.email, err)
		}
	}
	return nil
}

func seedCatalog(ctx context.Context, db *sql.DB) error {
	entries := []struct {
		name, category string
	}{
		{`MacBook Pro 13"`, "Electronics"},
		{`MacBook Pro 15"`, "Electronics"},
		{"iPad Pro", "Electronics"},
		{"Wireless Mouse", "Electronics"},
		{"Mechanical Keyboard", "Electronics"},
		{`Monitor 27"`, "Electronics"},
		{"Projector", "Equipment"},
		{"Camera Canon EOS", "Equipment"},
		{"Tripod Stand", "Equipment"},
		{"Office Chair", "Furniture"},
	}
	for _, e := range entries {
		_, err := db.ExecContext(ctx, `
			INSERT INTO catalog_items (name, category, status) VALUES (?, ?, 'available')
		`, e.name, e.category)
		if err != nil {
			return fmt.Errorf("failed to seed catalog entry %s: %w", e.name, err)
		}
	}
	return nil
}

func seedInventory(ctx context.Context, db *sql.DB) error {
	items := []struct {
		description, serial, qr, status, category, location string
	}{
		{`MacBook Pro 13"`, "MBP001", "QR001", "available", "Electronics", "Storage A1"},
		{"Wireless Mouse", "WM002", "QR002", "borrowed", "Electronics", "Storage A2"},
		{"Projector", "PJ003", "QR003", "available", "Equipment", "Storage B1"},
		{"Camera Canon EOS", "CAM004", "QR004", "available", "Electronics", "Storage A3"},
		{"Conference Table", "CT005", "QR005", "available", "Furniture", "Storage C1"},
		{"Printer HP LaserJet", "HP006", "QR006", "maintenance", "Electronics", "Storage A4"},
	}
	for _, it := range items {
		_, err := db.ExecContext(ctx, `
			INSERT INTO inventory_items (description, serial_no, qr_code, status, category, location)
			VALUES (?, ?, ?, ?, ?, ?)
		`, it.description, it.serial, it.qr, it.status, it.category, it.location)
		if err != nil {
			return fmt.Errorf("failed to seed inventory item %s: %w", it.serial, err)
		}
	}

	// The borrowed item above carries the demo's single open loan.
	_, err := db.ExecContext(ctx, `
		INSERT INTO transactions (item_id, borrower_name, borrower_email, office, date_borrowed, expected_return, date_returned, status)
		VALUES (2, 'John Doe', 'john.doe@company.com', 'IT Department', '2024-06-25', '2024-07-05', NULL, 'borrowed')
	`)
	if err != nil {
		return fmt.Errorf("failed to seed open transaction: %w", err)
	}
	return nil
}

func seedAppointments(ctx context.Context, db *sql.DB) error {
	appointments := []struct {
		name, email, phone, department, date, time, purpose string
		items                                               []string
		status, createdAt                                   string
	}{
		{
			"John Doe", "john.doe@company.com", "+63 912 345 6789", "IT Department",
			"2024-07-08", "09:00", "retrieval",
			[]string{`MacBook Pro 13"`, "Wireless Mouse"},
			"confirmed", "2024-07-02T10:30:00",
		},
		{
			"Jane Smith", "jane.smith@company.com", "+63 917 654 3210", "Marketing",
			"2024-07-09", "14:00", "return",
			[]string{"Camera Canon EOS", "Tripod Stand"},
			"pending", "2024-07-02T14:15:00",
		},
	}
	for _, a := range appointments {
		items, err := json.Marshal(a.items)
		if err != nil {
			return fmt.Errorf("failed to encode appointment items: %w", err)
		}
		_, err = db.ExecContext(ctx, `
			INSERT INTO appointments (requester_name, email, phone, department, date, time, purpose, items, status, notes, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, '', ?)
		`, a.name, a.email, a.phone, a.department, a.date, a.time, a.purpose, string(items), a.status, a.createdAt)
		if err != nil {
			return fmt.Errorf("failed to seed appointment for %s: %w", a.name, err)
		}
	}
	return nil
}
