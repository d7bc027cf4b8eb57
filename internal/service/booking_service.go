package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/dtcdev/invaccess/internal/booking"
	"github.com/dtcdev/invaccess/internal/domain"
	"github.com/dtcdev/invaccess/internal/store"
)

// catalogRepository is the subset of store.CatalogStore that
// BookingService requires.
type catalogRepository interface {
	List(ctx context.Context, f store.CatalogFilter) ([]*domain.CatalogItem, error)
	GetByID(ctx context.Context, id int64) (*domain.CatalogItem, error)
	CountAvailable(ctx context.Context) (int, error)
}

// appointmentRepository is the subset of store.AppointmentStore that
// BookingService requires.
type appointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	List(ctx context.Context, status domain.AppointmentStatus) ([]*domain.Appointment, error)
	CountByStatus(ctx context.Context, status domain.AppointmentStatus) (int, error)
}

// requestRepository is the subset of store.RequestStore that
// BookingService requires.
type requestRepository interface {
	Create(ctx context.Context, description, requester string) (*domain.ItemRequest, error)
	List(ctx context.Context) ([]*domain.ItemRequest, error)
}

// BookingService owns the catalog, the appointment book, and one
// wizard per logged-in session. Wizard state lives in memory, keyed by
// session token, and is discarded on cancel or logout.
type BookingService struct {
	catalog      catalogRepository
	appointments appointmentRepository
	requests     requestRepository
	logger       *slog.Logger

	mu      sync.Mutex
	wizards map[string]*booking.Wizard
}

func NewBookingService(
	catalog catalogRepository,
	appointments appointmentRepository,
	requests requestRepository,
	logger *slog.Logger,
) *BookingService {
	return &BookingService{
		catalog:      catalog,
		appointments: appointments,
		requests:     requests,
		logger:       logger,
		wizards:      make(map[string]*booking.Wizard),
	}
}

// WizardState is the client-facing snapshot of one session's wizard.
// StepValid drives the Next button: disabled whenever the current
// step's required inputs are missing.
type WizardState struct {
	Step      booking.Step         `json:"step"`
	Form      booking.Form         `json:"form"`
	Selected  []domain.CatalogItem `json:"selected"`
	StepValid bool                 `json:"stepValid"`
}

func (s *BookingService) wizard(token string) *booking.Wizard {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.wizards[token]
	if !ok {
		w = booking.New()
		s.wizards[token] = w
	}
	return w
}

func snapshot(w *booking.Wizard) WizardState {
	return WizardState{
		Step:      w.Step(),
		Form:      w.Form(),
		Selected:  w.Selected(),
		StepValid: w.StepValid(w.Step()),
	}
}

// StartWizard enters the booking flow for a session. A positive
// itemID pre-selects that catalog entry, the dashboard's
// click-to-book shortcut. Only available entries can be pre-selected.
func (s *BookingService) StartWizard(ctx context.Context, token string, itemID int64) (WizardState, error) {
	w := s.wizard(token)
	w.Cancel()
	w.Begin()

	if itemID > 0 {
		item, err := s.catalog.GetByID(ctx, itemID)
		if err != nil {
			return WizardState{}, err
		}
		if item == nil {
			return WizardState{}, domain.ErrNotFound
		}
		if item.Status != domain.ItemAvailable {
			return WizardState{}, domain.ErrItemUnavailable
		}
		w.Toggle(*item)
	}
	return snapshot(w), nil
}

func (s *BookingService) Wizard(token string) WizardState {
	return snapshot(s.wizard(token))
}

func (s *BookingService) Advance(token string) (WizardState, error) {
	w := s.wizard(token)
	if err := w.Next(); err != nil {
		return snapshot(w), err
	}
	return snapshot(w), nil
}

func (s *BookingService) Retreat(token string) WizardState {
	w := s.wizard(token)
	w.Previous()
	return snapshot(w)
}

func (s *BookingService) CancelWizard(token string) WizardState {
	w := s.wizard(token)
	w.Cancel()
	return snapshot(w)
}

func (s *BookingService) UpdateForm(token string, f booking.Form) WizardState {
	w := s.wizard(token)
	w.SetForm(f)
	return snapshot(w)
}

// ToggleItem flips a catalog entry in the session's selection.
func (s *BookingService) ToggleItem(ctx context.Context, token string, itemID int64) (WizardState, error) {
	item, err := s.catalog.GetByID(ctx, itemID)
	if err != nil {
		return WizardState{}, err
	}
	if item == nil {
		return WizardState{}, domain.ErrNotFound
	}

	w := s.wizard(token)
	w.Toggle(*item)
	return snapshot(w), nil
}

// Submit turns a completed wizard into a persisted pending
// appointment and moves the wizard to its success screen.
func (s *BookingService) Submit(ctx context.Context, token string) (*domain.Appointment, error) {
	w := s.wizard(token)

	appt, err := w.BuildAppointment(time.Now())
	if err != nil {
		return nil, err
	}

	created, err := s.appointments.Create(ctx, appt)
	if err != nil {
		return nil, err
	}

	w.Complete()
	s.logger.Info("appointment booked",
		"id", created.ID,
		"requester", created.RequesterName,
		"purpose", created.Purpose,
		"date", created.Date,
		"time", created.Time)
	return created, nil
}

// BookAnother restarts the wizard from the success screen with a
// fresh form.
func (s *BookingService) BookAnother(token string) WizardState {
	w := s.wizard(token)
	w.Begin()
	return snapshot(w)
}

// DropWizard forgets a session's wizard entirely. Called on logout.
func (s *BookingService) DropWizard(token string) {
	s.mu.Lock()
	delete(s.wizards, token)
	s.mu.Unlock()
}

// Catalog lists bookable entries, optionally narrowed by a
// case-insensitive name search and a category ("all" or empty means
// no category filter).
func (s *BookingService) Catalog(ctx context.Context, search, category string) ([]*domain.CatalogItem, error) {
	return s.catalog.List(ctx, store.CatalogFilter{Search: search, Category: category})
}

// CatalogMeta bundles the fixed option lists the booking UI renders.
type CatalogMeta struct {
	Categories  []string                `json:"categories"`
	Departments []string                `json:"departments"`
	Purposes    []booking.PurposeOption `json:"purposes"`
	TimeSlots   []string                `json:"timeSlots"`
}

func (s *BookingService) Meta() CatalogMeta {
	return CatalogMeta{
		Categories:  booking.Categories,
		Departments: booking.Departments,
		Purposes:    booking.Purposes,
		TimeSlots:   booking.TimeSlots,
	}
}

// ListAppointments returns appointments in creation order, optionally
// narrowed to one status.
func (s *BookingService) ListAppointments(ctx context.Context, status domain.AppointmentStatus) ([]*domain.Appointment, error) {
	return s.appointments.List(ctx, status)
}

// Stats feeds the dashboard cards.
type Stats struct {
	Confirmed      int `json:"confirmed"`
	Pending        int `json:"pending"`
	AvailableItems int `json:"availableItems"`
}

func (s *BookingService) Stats(ctx context.Context) (*Stats, error) {
	confirmed, err := s.appointments.CountByStatus(ctx, domain.AppointmentConfirmed)
	if err != nil {
		return nil, err
	}
	pending, err := s.appointments.CountByStatus(ctx, domain.AppointmentPending)
	if err != nil {
		return nil, err
	}
	available, err := s.catalog.CountAvailable(ctx)
	if err != nil {
		return nil, err
	}
	return &Stats{Confirmed: confirmed, Pending: pending, AvailableItems: available}, nil
}

// CreateItemRequest records a free-text ask for equipment missing from
// the catalog.
func (s *BookingService) CreateItemRequest(ctx context.Context, description, requester string) (*domain.ItemRequest, error) {
	if description == "" {
		return nil, domain.MissingField("description")
	}
	req, err := s.requests.Create(ctx, description, requester)
	if err != nil {
		return nil, err
	}
	s.logger.Info("item request filed", "id", req.ID, "requester", requester)
	return req, nil
}

// ListItemRequests returns filed requests in creation order, for the
// admin review view.
func (s *BookingService) ListItemRequests(ctx context.Context) ([]*domain.ItemRequest, error) {
	return s.requests.List(ctx)
}
