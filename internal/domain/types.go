package domain

import "time"

// Role classifies a logged-in user. Admins get the add-item and
// analytics surfaces; everyone else only books appointments.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User is a demo account. Passwords are stored in plaintext: the demo
// ships a fixed, closed credential set and real credential security is
// out of scope.
type User struct {
	ID          int64
	Email       string
	Password    string
	DisplayName string
	Role        Role
}

// Session is the login state minted on a successful login.
type Session struct {
	Token       string
	Email       string
	DisplayName string
	Role        Role
	CreatedAt   time.Time
}

type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
)

// Purpose of an appointment. A "return" appointment may carry an empty
// item list; every other purpose requires at least one selected item.
type Purpose string

const (
	PurposeRetrieval   Purpose = "retrieval"
	PurposeReturn      Purpose = "return"
	PurposeInspection  Purpose = "inspection"
	PurposeMaintenance Purpose = "maintenance"
)

// Appointment is a scheduled request to retrieve, return, or inspect
// equipment. Status is always pending at creation; confirmed exists in
// seed data but no operation currently transitions to it.
type Appointment struct {
	ID            int64             `json:"id"`
	RequesterName string            `json:"requesterName"`
	Email         string            `json:"email"`
	Phone         string            `json:"phone"`
	Department    string            `json:"department"`
	Date          string            `json:"date"` // calendar date, YYYY-MM-DD
	Time          string            `json:"time"` // slot from the fixed time-slot list
	Purpose       Purpose           `json:"purpose"`
	Items         []string          `json:"items"`
	Status        AppointmentStatus `json:"status"`
	Notes         string            `json:"notes"`
	CreatedAt     time.Time         `json:"createdAt"`
}

// CatalogItem is a bookable catalog entry: static reference data used
// only for appointment item selection.
type CatalogItem struct {
	ID       int64      `json:"id"`
	Name     string     `json:"name"`
	Category string     `json:"category"`
	Status   ItemStatus `json:"status"`
}

type ItemStatus string

const (
	ItemAvailable   ItemStatus = "available"
	ItemBorrowed    ItemStatus = "borrowed"
	ItemMaintenance ItemStatus = "maintenance"
)

// InventoryItem is a physical, trackable asset. Status transitions are
// driven exclusively by the transaction lifecycle; add-item always
// starts an item as available.
type InventoryItem struct {
	ID          int64      `json:"id"`
	Description string     `json:"description"`
	SerialNo    string     `json:"serialNo"`
	QRCode      string     `json:"qrCode"`
	Status      ItemStatus `json:"status"`
	Category    string     `json:"category"`
	Location    string     `json:"location"`
}

type TransactionStatus string

const (
	TransactionBorrowed TransactionStatus = "borrowed"
	TransactionReturned TransactionStatus = "returned"
)

// Transaction links a borrower to an inventory item over a time span.
// At most one open (borrowed) transaction may exist per item.
type Transaction struct {
	ID             int64             `json:"id"`
	ItemID         int64             `json:"itemId"`
	BorrowerName   string            `json:"borrowerName"`
	BorrowerEmail  string            `json:"borrowerEmail"`
	Office         string            `json:"office"`
	DateBorrowed   string            `json:"dateBorrowed"`   // YYYY-MM-DD, set at creation
	ExpectedReturn string            `json:"expectedReturn"` // optional, caller supplied
	DateReturned   *string           `json:"dateReturned"`
	Status         TransactionStatus `json:"status"`
}

// ItemRequest records a free-text ask for equipment not in the catalog.
type ItemRequest struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Requester   string    `json:"requester"`
	CreatedAt   time.Time `json:"createdAt"`
}
