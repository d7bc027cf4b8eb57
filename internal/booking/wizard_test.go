package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtcdev/invaccess/internal/domain"
)

func filledForm() Form {
	return Form{
		RequesterName: "Ana",
		Email:         "ana@example.com",
		Phone:         "555-0101",
		Department:    "IT Department",
		Purpose:       domain.PurposeRetrieval,
		Date:          "2030-01-01",
		Time:          "09:00",
	}
}

func mouse() domain.CatalogItem {
	return domain.CatalogItem{ID: 4, Name: "Wireless Mouse", Category: "Electronics", Status: domain.ItemAvailable}
}

func TestWizardStartsOnDashboard(t *testing.T) {
	w := New()

	assert.Equal(t, StepDashboard, w.Step())
	assert.Equal(t, domain.PurposeRetrieval, w.Form().Purpose)
	assert.Empty(t, w.Selected())
}

func TestWizardNextGatedOnValidity(t *testing.T) {
	w := New()
	w.Begin()
	require.Equal(t, StepPersonalInfo, w.Step())

	err := w.Next()
	assert.ErrorIs(t, err, ErrStepIncomplete)
	assert.Equal(t, StepPersonalInfo, w.Step())

	f := w.Form()
	f.RequesterName = "Ana"
	f.Email = "ana@example.com"
	f.Phone = "555-0101"
	w.SetForm(f)
	assert.ErrorIs(t, w.Next(), ErrStepIncomplete)

	f.Department = "IT Department"
	w.SetForm(f)
	require.NoError(t, w.Next())
	assert.Equal(t, StepPurpose, w.Step())
}

func TestWizardPurposeDefaultsToRetrieval(t *testing.T) {
	w := New()
	w.Begin()
	w.SetForm(filledForm())
	require.NoError(t, w.Next())

	// The default purpose makes the purpose step valid untouched.
	require.Equal(t, StepPurpose, w.Step())
	assert.True(t, w.StepValid(StepPurpose))
	require.NoError(t, w.Next())
	assert.Equal(t, StepItemSelection, w.Step())
}

func TestWizardItemSelectionRequiresItemsUnlessReturning(t *testing.T) {
	w := New()
	w.Begin()
	w.SetForm(filledForm())
	require.NoError(t, w.Next())
	require.NoError(t, w.Next())

	assert.ErrorIs(t, w.Next(), ErrStepIncomplete)

	w.Toggle(mouse())
	require.NoError(t, w.Next())
	assert.Equal(t, StepDateTime, w.Step())
}

func TestWizardReturnPurposeSkipsItemRequirement(t *testing.T) {
	w := New()
	w.Begin()
	f := filledForm()
	f.Purpose = domain.PurposeReturn
	w.SetForm(f)
	require.NoError(t, w.Next())
	require.NoError(t, w.Next())

	require.Empty(t, w.Selected())
	assert.True(t, w.StepValid(StepItemSelection))
	require.NoError(t, w.Next())
	assert.Equal(t, StepDateTime, w.Step())
}

func TestWizardToggle(t *testing.T) {
	w := New()
	w.Toggle(mouse())
	w.Toggle(domain.CatalogItem{ID: 5, Name: "HDMI Cable"})
	require.Len(t, w.Selected(), 2)
	assert.Equal(t, "Wireless Mouse", w.Selected()[0].Name)

	w.Toggle(mouse())
	require.Len(t, w.Selected(), 1)
	assert.Equal(t, "HDMI Cable", w.Selected()[0].Name)
}

func TestWizardPreviousFloorsAtFirstStep(t *testing.T) {
	w := New()
	w.Begin()
	w.SetForm(filledForm())
	require.NoError(t, w.Next())

	w.Previous()
	assert.Equal(t, StepPersonalInfo, w.Step())

	w.Previous()
	assert.Equal(t, StepPersonalInfo, w.Step())
}

func TestWizardCancelDiscardsState(t *testing.T) {
	w := New()
	w.Begin()
	w.SetForm(filledForm())
	w.Toggle(mouse())

	w.Cancel()

	assert.Equal(t, StepDashboard, w.Step())
	assert.Empty(t, w.Form().RequesterName)
	assert.Equal(t, domain.PurposeRetrieval, w.Form().Purpose)
	assert.Empty(t, w.Selected())
}

func TestWizardBuildAppointment(t *testing.T) {
	now := time.Date(2030, 1, 1, 8, 0, 0, 0, time.UTC)

	w := New()
	w.Begin()
	w.SetForm(filledForm())
	w.Toggle(mouse())
	require.NoError(t, w.Next())
	require.NoError(t, w.Next())
	require.NoError(t, w.Next())

	appt, err := w.BuildAppointment(now)
	require.NoError(t, err)
	assert.Equal(t, "Ana", appt.RequesterName)
	assert.Equal(t, domain.AppointmentPending, appt.Status)
	assert.Equal(t, []string{"Wireless Mouse"}, appt.Items)
	assert.Equal(t, now, appt.CreatedAt)

	w.Complete()
	assert.Equal(t, StepSuccess, w.Step())
	assert.Empty(t, w.Form().RequesterName)
}

func TestWizardBuildAppointmentReturnHasNoItems(t *testing.T) {
	w := New()
	w.Begin()
	f := filledForm()
	f.Purpose = domain.PurposeReturn
	w.SetForm(f)
	w.Toggle(mouse())
	require.NoError(t, w.Next())
	require.NoError(t, w.Next())
	require.NoError(t, w.Next())

	appt, err := w.BuildAppointment(time.Now())
	require.NoError(t, err)
	assert.Empty(t, appt.Items)
}

func TestWizardBuildAppointmentRejectsWrongStep(t *testing.T) {
	w := New()
	w.Begin()

	_, err := w.BuildAppointment(time.Now())
	assert.ErrorIs(t, err, ErrNotSubmittable)
}

func TestWizardBuildAppointmentRejectsMissingDate(t *testing.T) {
	w := New()
	w.Begin()
	f := filledForm()
	f.Date = ""
	w.SetForm(f)
	w.Toggle(mouse())
	require.NoError(t, w.Next())
	require.NoError(t, w.Next())
	require.NoError(t, w.Next())

	_, err := w.BuildAppointment(time.Now())
	assert.ErrorIs(t, err, ErrStepIncomplete)
}

func TestWizardBeginFromSuccessResetsForm(t *testing.T) {
	w := New()
	w.Begin()
	w.SetForm(filledForm())
	w.Toggle(mouse())
	require.NoError(t, w.Next())
	require.NoError(t, w.Next())
	require.NoError(t, w.Next())
	_, err := w.BuildAppointment(time.Now())
	require.NoError(t, err)
	w.Complete()

	w.Begin()
	assert.Equal(t, StepPersonalInfo, w.Step())
	assert.Empty(t, w.Form().RequesterName)
	assert.Empty(t, w.Selected())
}

func TestTimeSlotsExcludeLunch(t *testing.T) {
	assert.Len(t, TimeSlots, 17)
	assert.NotContains(t, TimeSlots, "12:00")
	assert.NotContains(t, TimeSlots, "12:30")
	assert.Equal(t, "08:00", TimeSlots[0])
	assert.Equal(t, "17:00", TimeSlots[len(TimeSlots)-1])
}

func TestOptionLists(t *testing.T) {
	assert.Len(t, Departments, 9)
	assert.Len(t, Purposes, 4)
	assert.Equal(t, domain.PurposeRetrieval, Purposes[0].Value)
	assert.Equal(t, "Equipment Retrieval", Purposes[0].Label)
	assert.Equal(t, "Maintenance Check", Purposes[3].Label)
	assert.Equal(t, "all", Categories[0])
}
