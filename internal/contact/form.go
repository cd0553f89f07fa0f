package contact

import (
	"time"

	"folio/internal/motion"
)

// Status is the submission status of the form
type Status int

const (
	StatusIdle Status = iota
	StatusSubmitting
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSubmitting:
		return "submitting"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	}
	return "unknown"
}

// DefaultResetDelay is how long success or error stays on screen
const DefaultResetDelay = 5 * time.Second

// Form is the contact form state machine:
//
//	idle -> submitting -> success|error -> idle
//
// A failed validation keeps the form idle.
type Form struct {
	fields     Fields
	errors     Errors
	status     Status
	lastErr    error
	resetDelay time.Duration
	reset      motion.Handle
}

// NewForm creates an empty idle form
func NewForm(resetDelay time.Duration) *Form {
	if resetDelay <= 0 {
		resetDelay = DefaultResetDelay
	}
	return &Form{resetDelay: resetDelay}
}

// Fields returns the current values
func (f *Form) Fields() Fields { return f.fields }

// Errors returns the current field errors
func (f *Form) Errors() Errors { return f.errors }

// Status returns the submission status
func (f *Form) Status() Status { return f.status }

// Err returns the delivery error behind StatusError
func (f *Form) Err() error { return f.lastErr }

// Set updates a field and clears its error immediately. Re-validation waits
// for the next submit.
func (f *Form) Set(field Field, value string) {
	if f.fields.Get(field) == value {
		return
	}
	f.fields = f.fields.With(field, value)
	f.errors = f.errors.Clear(field)
}

// Submit validates the form. When valid it moves to submitting and returns a
// snapshot of the fields to deliver. Submitting twice is refused.
func (f *Form) Submit() (Fields, bool) {
	if f.status == StatusSubmitting {
		return Fields{}, false
	}
	errs := Validate(f.fields)
	f.errors = errs
	if !errs.Valid() {
		return Fields{}, false
	}
	f.reset.Cancel()
	f.status = StatusSubmitting
	f.lastErr = nil
	return f.fields, true
}

// Complete records the delivery result and arms the auto-reset timer. It
// returns the timer generation and its delay. Fields are cleared only on
// success.
func (f *Form) Complete(err error) (gen uint64, delay time.Duration) {
	if f.status != StatusSubmitting {
		return 0, 0
	}
	if err != nil {
		f.status = StatusError
		f.lastErr = err
	} else {
		f.status = StatusSuccess
		f.fields = Fields{}
		f.errors = Errors{}
	}
	return f.reset.Arm(), f.resetDelay
}

// ResetStatus returns to idle when gen is the live reset timer
func (f *Form) ResetStatus(gen uint64) bool {
	if !f.reset.Fire(gen) {
		return false
	}
	if f.status == StatusSuccess || f.status == StatusError {
		f.status = StatusIdle
		f.lastErr = nil
	}
	return true
}

// Teardown cancels the pending reset timer
func (f *Form) Teardown() {
	f.reset.Cancel()
}
