package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtcdev/invaccess/internal/booking"
	"github.com/dtcdev/invaccess/internal/domain"
	"github.com/dtcdev/invaccess/internal/store"
)

func newBookingService(t *testing.T) *BookingService {
	t.Helper()
	d := openSeededDB(t)
	return NewBookingService(
		store.NewCatalogStore(d),
		store.NewAppointmentStore(d),
		store.NewRequestStore(d),
		testLogger(),
	)
}

func bookingForm() booking.Form {
	return booking.Form{
		RequesterName: "Ana",
		Email:         "ana@example.com",
		Phone:         "555-0101",
		Department:    "IT Department",
		Purpose:       domain.PurposeRetrieval,
		Date:          "2030-01-01",
		Time:          "09:00",
	}
}

func TestBookingServiceWizardFlow(t *testing.T) {
	svc := newBookingService(t)
	ctx := context.Background()
	const token = "session-a"

	// Click-to-book pre-selects the Wireless Mouse (catalog id 4).
	state, err := svc.StartWizard(ctx, token, 4)
	require.NoError(t, err)
	assert.Equal(t, booking.StepPersonalInfo, state.Step)
	require.Len(t, state.Selected, 1)
	assert.Equal(t, "Wireless Mouse", state.Selected[0].Name)
	assert.False(t, state.StepValid)

	state = svc.UpdateForm(token, bookingForm())
	assert.True(t, state.StepValid)

	for range 3 {
		state, err = svc.Advance(token)
		require.NoError(t, err)
	}
	require.Equal(t, booking.StepDateTime, state.Step)

	appt, err := svc.Submit(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, domain.AppointmentPending, appt.Status)
	assert.Equal(t, []string{"Wireless Mouse"}, appt.Items)
	assert.WithinDuration(t, time.Now(), appt.CreatedAt, 5*time.Second)

	state = svc.Wizard(token)
	assert.Equal(t, booking.StepSuccess, state.Step)
	assert.Empty(t, state.Form.RequesterName)

	// The appointment landed after the two seeded ones.
	appts, err := svc.ListAppointments(ctx, "")
	require.NoError(t, err)
	require.Len(t, appts, 3)
	assert.Equal(t, "Ana", appts[2].RequesterName)
}

func TestBookingServiceStartWizard_UnknownItem(t *testing.T) {
	svc := newBookingService(t)

	_, err := svc.StartWizard(context.Background(), "s", 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBookingServiceAdvance_IncompleteStep(t *testing.T) {
	svc := newBookingService(t)
	const token = "s"

	_, err := svc.StartWizard(context.Background(), token, 0)
	require.NoError(t, err)

	state, err := svc.Advance(token)
	assert.ErrorIs(t, err, booking.ErrStepIncomplete)
	assert.Equal(t, booking.StepPersonalInfo, state.Step)
}

func TestBookingServiceToggleItem(t *testing.T) {
	svc := newBookingService(t)
	ctx := context.Background()
	const token = "s"

	_, err := svc.StartWizard(ctx, token, 0)
	require.NoError(t, err)

	state, err := svc.ToggleItem(ctx, token, 5)
	require.NoError(t, err)
	require.Len(t, state.Selected, 1)

	state, err = svc.ToggleItem(ctx, token, 5)
	require.NoError(t, err)
	assert.Empty(t, state.Selected)

	_, err = svc.ToggleItem(ctx, token, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBookingServiceSubmit_ReturnPurposeWithoutItems(t *testing.T) {
	svc := newBookingService(t)
	ctx := context.Background()
	const token = "s"

	_, err := svc.StartWizard(ctx, token, 0)
	require.NoError(t, err)

	f := bookingForm()
	f.Purpose = domain.PurposeReturn
	svc.UpdateForm(token, f)

	for range 3 {
		_, err = svc.Advance(token)
		require.NoError(t, err)
	}

	appt, err := svc.Submit(ctx, token)
	require.NoError(t, err)
	assert.Empty(t, appt.Items)
}

func TestBookingServiceSubmit_NotReady(t *testing.T) {
	svc := newBookingService(t)

	_, err := svc.StartWizard(context.Background(), "s", 0)
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), "s")
	assert.ErrorIs(t, err, booking.ErrNotSubmittable)
}

func TestBookingServiceWizardsAreIsolatedPerSession(t *testing.T) {
	svc := newBookingService(t)
	ctx := context.Background()

	_, err := svc.StartWizard(ctx, "a", 4)
	require.NoError(t, err)
	_, err = svc.StartWizard(ctx, "b", 0)
	require.NoError(t, err)

	svc.UpdateForm("b", bookingForm())
	assert.Len(t, svc.Wizard("a").Selected, 1)
	assert.Empty(t, svc.Wizard("a").Form.RequesterName)
	assert.Equal(t, "Ana", svc.Wizard("b").Form.RequesterName)
	assert.Empty(t, svc.Wizard("b").Selected)
}

func TestBookingServiceDropWizard(t *testing.T) {
	svc := newBookingService(t)

	_, err := svc.StartWizard(context.Background(), "a", 4)
	require.NoError(t, err)
	svc.DropWizard("a")

	assert.Equal(t, booking.StepDashboard, svc.Wizard("a").Step)
	assert.Empty(t, svc.Wizard("a").Selected)
}

func TestBookingServiceCatalog(t *testing.T) {
	svc := newBookingService(t)
	ctx := context.Background()

	all, err := svc.Catalog(ctx, "", "all")
	require.NoError(t, err)
	assert.Len(t, all, 10)

	macs, err := svc.Catalog(ctx, "macbook", "")
	require.NoError(t, err)
	assert.Len(t, macs, 2)
}

func TestBookingServiceStats(t *testing.T) {
	svc := newBookingService(t)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Confirmed)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 10, stats.AvailableItems)
}

func TestBookingServiceMeta(t *testing.T) {
	svc := newBookingService(t)

	meta := svc.Meta()
	assert.Len(t, meta.Departments, 9)
	assert.Len(t, meta.TimeSlots, 17)
	assert.Len(t, meta.Purposes, 4)
	assert.Equal(t, "all", meta.Categories[0])
}

func TestBookingServiceCreateItemRequest(t *testing.T) {
	svc := newBookingService(t)

	req, err := svc.CreateItemRequest(context.Background(), "Standing desk converter", "Regular User")
	require.NoError(t, err)
	assert.NotZero(t, req.ID)
	assert.Equal(t, "Standing desk converter", req.Description)

	_, err = svc.CreateItemRequest(context.Background(), "", "Regular User")
	assert.True(t, domain.IsValidation(err))

	reqs, err := svc.ListItemRequests(context.Background())
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.Equal(t, req.ID, reqs[0].ID)
}
