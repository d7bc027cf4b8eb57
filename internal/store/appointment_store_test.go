package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtcdev/invaccess/internal/domain"
)

func newAppointment(name string) *domain.Appointment {
	return &domain.Appointment{
		RequesterName: name,
		Email:         "ana@x.com",
		Phone:         "123",
		Department:    "IT Department",
		Date:          "2030-01-01",
		Time:          "09:00",
		Purpose:       domain.PurposeRetrieval,
		Items:         []string{"Wireless Mouse"},
		Status:        domain.AppointmentPending,
		CreatedAt:     time.Now().UTC(),
	}
}

func TestAppointmentStoreCreate(t *testing.T) {
	d := openTestDB(t)
	appts := NewAppointmentStore(d)
	ctx := context.Background()

	appt, err := appts.Create(ctx, newAppointment("Ana"))
	require.NoError(t, err)
	assert.NotZero(t, appt.ID)
	assert.Equal(t, "Ana", appt.RequesterName)
	assert.Equal(t, domain.AppointmentPending, appt.Status)
	assert.Equal(t, []string{"Wireless Mouse"}, appt.Items)
}

func TestAppointmentStoreCreate_EmptyItems(t *testing.T) {
	d := openTestDB(t)
	appts := NewAppointmentStore(d)
	ctx := context.Background()

	a := newAppointment("Ben")
	a.Purpose = domain.PurposeReturn
	a.Items = []string{}

	appt, err := appts.Create(ctx, a)
	require.NoError(t, err)
	assert.Empty(t, appt.Items)
}

func TestAppointmentStoreList(t *testing.T) {
	d := openTestDB(t)
	appts := NewAppointmentStore(d)
	ctx := context.Background()

	_, err := appts.Create(ctx, newAppointment("Ana"))
	require.NoError(t, err)
	_, err = appts.Create(ctx, newAppointment("Ben"))
	require.NoError(t, err)

	list, err := appts.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Ana", list[0].RequesterName)
	assert.Equal(t, "Ben", list[1].RequesterName)
}

func TestAppointmentStoreList_StatusFilter(t *testing.T) {
	d := openTestDB(t)
	seedTestDB(t, d)
	appts := NewAppointmentStore(d)
	ctx := context.Background()

	confirmed, err := appts.List(ctx, domain.AppointmentConfirmed)
	require.NoError(t, err)
	require.Len(t, confirmed, 1)
	assert.Equal(t, "John Doe", confirmed[0].RequesterName)

	pending, err := appts.List(ctx, domain.AppointmentPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "Jane Smith", pending[0].RequesterName)
}

func TestAppointmentStoreCountByStatus(t *testing.T) {
	d := openTestDB(t)
	seedTestDB(t, d)
	appts := NewAppointmentStore(d)

	n, err := appts.CountByStatus(context.Background(), domain.AppointmentPending)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
