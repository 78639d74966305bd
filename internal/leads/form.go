// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package leads

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Outcome is the single result every submission resolves to.
type Outcome int

const (
	// OutcomeSuccess means the record was persisted and the form reset.
	OutcomeSuccess Outcome = iota
	// OutcomeInvalid means field validation failed; no write was issued.
	OutcomeInvalid
	// OutcomeDuplicate means the collaborator rejected the write with a
	// uniqueness violation. Surfaced distinctly so the user knows a retry
	// is pointless.
	OutcomeDuplicate
	// OutcomeFailed is any other write failure; field values are retained
	// so the user can resubmit without re-entering them.
	OutcomeFailed
)

// String returns the outcome name for logging.
func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeDuplicate:
		return "duplicate"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ErrSubmitInFlight is returned when Submit is called while a previous
// submission has not resolved yet. Mirrors the disabled submit button:
// one write per form instance at a time.
var ErrSubmitInFlight = errors.New("submission already in flight")

// ErrDuplicate is the signal a write sink returns for a uniqueness
// violation. The store maps database error codes onto it.
var ErrDuplicate = errors.New("record already exists")

// SubmitFunc performs the single write of a validated form. It receives
// the current field values keyed by field name.
type SubmitFunc func(ctx context.Context, fields map[string]string) error

// FormKind selects which field rule set a form runs.
type FormKind int

const (
	// KindService is the booking form on a service detail page.
	KindService FormKind = iota
	// KindCategory is the request form on a category landing page; it
	// additionally requires an address.
	KindCategory
)

// Form is one lead-capture form instance: field values, per-field errors,
// and the submission state machine (idle → validating → submitting →
// resolved). Each form owns its state independently; the mutex only
// guards against a double-submit racing a field edit.
type Form struct {
	mu         sync.Mutex
	kind       FormKind
	fields     map[string]string
	fixed      map[string]string // context fields restored after a successful reset
	fieldErrs  FieldErrors
	submitting bool
	validator  *Validator
}

// NewServiceForm creates a booking form pre-filled with the service title
// from the page context. A nil clock defaults to time.Now.
func NewServiceForm(serviceTitle string, now func() time.Time) *Form {
	f := newForm(KindService, now)
	f.fixed["service"] = serviceTitle
	f.fields["service"] = serviceTitle
	return f
}

// NewCategoryForm creates a category request form bound to a category.
func NewCategoryForm(categorySlug, categoryName string, now func() time.Time) *Form {
	f := newForm(KindCategory, now)
	f.fixed["categorySlug"] = categorySlug
	f.fixed["categoryName"] = categoryName
	f.fields["categorySlug"] = categorySlug
	f.fields["categoryName"] = categoryName
	return f
}

func newForm(kind FormKind, now func() time.Time) *Form {
	return &Form{
		kind:      kind,
		fields:    make(map[string]string),
		fixed:     make(map[string]string),
		fieldErrs: FieldErrors{},
		validator: NewValidator(now),
	}
}

// Set records a field edit. Phone input is normalized on every edit, and
// an error shown on the edited field is cleared immediately rather than
// waiting for the next submit.
func (f *Form) Set(field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if field == "phone" {
		value = NormalizePhone(value)
	}
	f.fields[field] = value
	delete(f.fieldErrs, field)
}

// Field returns the current value of a field.
func (f *Form) Field(name string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields[name]
}

// Errors returns a copy of the current per-field error messages.
func (f *Form) Errors() FieldErrors {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(FieldErrors, len(f.fieldErrs))
	for k, v := range f.fieldErrs {
		out[k] = v
	}
	return out
}

// Submitting reports whether a submission is in flight, which the UI uses
// to disable the submit control.
func (f *Form) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// Submit runs the full pipeline: validate, write once through submit, and
// resolve. On validation failure no write is issued and the per-field
// errors are populated. On success every field except the fixed context
// fields is cleared. On duplicate or generic failure the values are kept
// for correction. A second Submit while one is in flight returns
// ErrSubmitInFlight without touching anything.
func (f *Form) Submit(ctx context.Context, submit SubmitFunc) (Outcome, error) {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return OutcomeFailed, ErrSubmitInFlight
	}

	// Validating: run the rule set against a snapshot of current values.
	fieldErrs := f.validateLocked()
	if len(fieldErrs) > 0 {
		f.fieldErrs = fieldErrs
		f.mu.Unlock()
		return OutcomeInvalid, nil
	}

	// Submitting: single write, submit control disabled for its lifetime.
	f.submitting = true
	f.fieldErrs = FieldErrors{}
	snapshot := make(map[string]string, len(f.fields))
	for k, v := range f.fields {
		snapshot[k] = v
	}
	f.mu.Unlock()

	err := submit(ctx, snapshot)

	// Resolved: react to the write result and return to idle.
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false

	switch {
	case err == nil:
		f.resetLocked()
		return OutcomeSuccess, nil
	case errors.Is(err, ErrDuplicate):
		return OutcomeDuplicate, err
	default:
		return OutcomeFailed, err
	}
}

// validateLocked maps the field map onto the kind's input struct and runs
// the validator. Caller holds f.mu.
func (f *Form) validateLocked() FieldErrors {
	switch f.kind {
	case KindCategory:
		return f.validator.ValidateCategoryLead(CategoryLeadInput{
			Name:          f.fields["name"],
			Email:         f.fields["email"],
			Phone:         f.fields["phone"],
			Address:       f.fields["address"],
			PreferredTime: f.fields["preferredTime"],
			Message:       f.fields["message"],
		})
	default:
		return f.validator.ValidateServiceLead(ServiceLeadInput{
			Name:              f.fields["name"],
			Email:             f.fields["email"],
			Phone:             f.fields["phone"],
			Service:           f.fields["service"],
			PreferredDatetime: f.fields["preferredDateTime"],
			Message:           f.fields["message"],
		})
	}
}

// resetLocked clears all fields and errors, restoring the fixed context
// fields. Caller holds f.mu.
func (f *Form) resetLocked() {
	f.fields = make(map[string]string, len(f.fixed))
	for k, v := range f.fixed {
		f.fields[k] = v
	}
	f.fieldErrs = FieldErrors{}
}
