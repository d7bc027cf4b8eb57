// Package booking implements the appointment booking wizard: an
// ordered, validated multi-step form that produces pending
// appointments. The wizard itself is a pure state machine; persistence
// belongs to the caller.
package booking

import (
	"errors"
	"time"

	"github.com/dtcdev/invaccess/internal/domain"
)

type Step int

const (
	StepDashboard Step = iota
	StepPersonalInfo
	StepPurpose
	StepItemSelection
	StepDateTime
	StepSuccess
)

var (
	// ErrStepIncomplete rejects a forward transition while the current
	// step's required fields are missing.
	ErrStepIncomplete = errors.New("current step is incomplete")

	// ErrNotSubmittable rejects a submit from any step other than a
	// completed date/time step.
	ErrNotSubmittable = errors.New("wizard is not ready to submit")
)

// Form holds the wizard's transient form state. It is discarded
// without confirmation on cancel or logout.
type Form struct {
	RequesterName string         `json:"requesterName"`
	Email         string         `json:"email"`
	Phone         string         `json:"phone"`
	Department    string         `json:"department"`
	Purpose       domain.Purpose `json:"purpose"`
	Date          string         `json:"date"`
	Time          string         `json:"time"`
	Notes         string         `json:"notes"`
}

// Wizard walks Dashboard(0) -> PersonalInfo(1) -> Purpose(2) ->
// ItemSelection(3) -> DateTime(4) -> Success(5). Forward moves are
// gated on step validity; backward moves always succeed with a floor
// at step 1.
type Wizard struct {
	step     Step
	form     Form
	selected []domain.CatalogItem
}

func New() *Wizard {
	return &Wizard{form: freshForm()}
}

// The purpose radio defaults to retrieval, so the purpose step is
// valid before the user touches it.
func freshForm() Form {
	return Form{Purpose: domain.PurposeRetrieval}
}

func (w *Wizard) Step() Step { return w.step }
func (w *Wizard) Form() Form { return w.form }

// Selected returns a copy of the current selection, in the order the
// entries were picked.
func (w *Wizard) Selected() []domain.CatalogItem {
	out := make([]domain.CatalogItem, len(w.selected))
	copy(out, w.selected)
	return out
}

func (w *Wizard) SetForm(f Form) {
	w.form = f
}

// StepValid reports whether the given step's required inputs are
// filled in. Steps outside the form range are trivially valid.
func (w *Wizard) StepValid(s Step) bool {
	switch s {
	case StepPersonalInfo:
		return w.form.RequesterName != "" && w.form.Email != "" && w.form.Phone != "" && w.form.Department != ""
	case StepPurpose:
		return w.form.Purpose != ""
	case StepItemSelection:
		return w.form.Purpose == domain.PurposeReturn || len(w.selected) > 0
	case StepDateTime:
		return w.form.Date != "" && w.form.Time != ""
	default:
		return true
	}
}

// Begin enters the wizard at the personal-info step. From the success
// screen this is "book another": the form starts fresh.
func (w *Wizard) Begin() {
	if w.step == StepDashboard || w.step == StepSuccess {
		w.form = freshForm()
		w.selected = nil
	}
	w.step = StepPersonalInfo
}

// Next advances one step, gated on the current step being valid.
func (w *Wizard) Next() error {
	if w.step < StepPersonalInfo || w.step >= StepDateTime {
		return ErrNotSubmittable
	}
	if !w.StepValid(w.step) {
		return ErrStepIncomplete
	}
	w.step++
	return nil
}

// Previous steps back one step. At the first step it is a no-op.
func (w *Wizard) Previous() {
	if w.step > StepPersonalInfo && w.step <= StepDateTime {
		w.step--
	}
}

// Cancel jumps straight back to the dashboard, discarding all wizard
// state without confirmation.
func (w *Wizard) Cancel() {
	w.step = StepDashboard
	w.form = freshForm()
	w.selected = nil
}

// Toggle flips a catalog entry in or out of the selection set.
func (w *Wizard) Toggle(item domain.CatalogItem) {
	for i, sel := range w.selected {
		if sel.ID == item.ID {
			w.selected = append(w.selected[:i], w.selected[i+1:]...)
			return
		}
	}
	w.selected = append(w.selected, item)
}

// BuildAppointment validates the completed wizard and constructs the
// pending appointment it describes. A return appointment carries no
// items; anything else carries the selected names in selection order.
func (w *Wizard) BuildAppointment(now time.Time) (*domain.Appointment, error) {
	if w.step != StepDateTime {
		return nil, ErrNotSubmittable
	}
	for _, s := range []Step{StepPersonalInfo, StepPurpose, StepItemSelection, StepDateTime} {
		if !w.StepValid(s) {
			return nil, ErrStepIncomplete
		}
	}

	items := make([]string, 0, len(w.selected))
	if w.form.Purpose != domain.PurposeReturn {
		for _, sel := range w.selected {
			items = append(items, sel.Name)
		}
	}

	return &domain.Appointment{
		RequesterName: w.form.RequesterName,
		Email:         w.form.Email,
		Phone:         w.form.Phone,
		Department:    w.form.Department,
		Date:          w.form.Date,
		Time:          w.form.Time,
		Purpose:       w.form.Purpose,
		Items:         items,
		Status:        domain.AppointmentPending,
		Notes:         w.form.Notes,
		CreatedAt:     now,
	}, nil
}

// Complete clears the form and selection and shows the success screen.
// Callers invoke it after the appointment has been persisted.
func (w *Wizard) Complete() {
	w.form = freshForm()
	w.selected = nil
	w.step = StepSuccess
}

// BackToDashboard leaves the success screen.
func (w *Wizard) BackToDashboard() {
	w.step = StepDashboard
}
