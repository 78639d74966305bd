// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package leads

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Field validation patterns. The phone rule requires a leading '+', a
// non-zero first digit, and 10-15 digits total. The email rule checks the
// usual local@domain.tld shape without attempting full RFC compliance.
var (
	phonePattern = regexp.MustCompile(`^\+[1-9]\d{9,14}$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Accepted layouts for the preferred date/time field. Browsers submit
// datetime-local values without a zone; API clients may send RFC 3339.
var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ErrBadDatetime reports a preferred date/time that matched no accepted layout.
var ErrBadDatetime = errors.New("unrecognized date/time format")

// ParsePreferred parses a preferred date/time string. Zone-less values are
// interpreted in the server's local time, matching how the booking form's
// datetime-local input behaves for the visitor.
func ParsePreferred(value string) (time.Time, error) {
	for _, layout := range datetimeLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrBadDatetime
}

// FieldErrors maps a form field name to its user-facing error message.
// An empty map means the input passed every rule.
type FieldErrors map[string]string

// ServiceLeadInput is the booking form on a service detail page. The
// service title is pre-filled from the page context.
type ServiceLeadInput struct {
	Name              string `json:"name" validate:"notblank"`
	Email             string `json:"email" validate:"required,emailshape"`
	Phone             string `json:"phone" validate:"required,intlphone"`
	Service           string `json:"service"`
	PreferredDatetime string `json:"preferred_datetime" validate:"required,future"`
	Message           string `json:"message"`
}

// CategoryLeadInput is the request form on a category landing page. It
// additionally requires a street address.
type CategoryLeadInput struct {
	Name          string `json:"name" validate:"notblank"`
	Email         string `json:"email" validate:"required,emailshape"`
	Phone         string `json:"phone" validate:"required,intlphone"`
	Address       string `json:"address" validate:"notblank"`
	PreferredTime string `json:"preferred_time" validate:"required,future"`
	Message       string `json:"message"`
}

// NewsletterInput is the footer signup form.
type NewsletterInput struct {
	Email string `json:"email" validate:"required,emailshape"`
}

// Validator runs the lead field rule set. The clock is injectable so the
// "not in the past" rule is deterministic in tests.
type Validator struct {
	validate *validator.Validate
	now      func() time.Time
}

// NewValidator creates a Validator. A nil clock defaults to time.Now.
func NewValidator(now func() time.Time) *Validator {
	if now == nil {
		now = time.Now
	}
	v := validator.New()

	// notblank: required after trimming, unlike the builtin "required"
	// which accepts whitespace-only strings.
	v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	v.RegisterValidation("emailshape", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(strings.TrimSpace(fl.Field().String()))
	})
	v.RegisterValidation("intlphone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(strings.TrimSpace(fl.Field().String()))
	})
	// future: parses and rejects moments strictly before now. A value
	// equal to now to the second passes, since the comparison is < not <=.
	v.RegisterValidation("future", func(fl validator.FieldLevel) bool {
		t, err := ParsePreferred(fl.Field().String())
		if err != nil {
			return false
		}
		return !t.Before(now())
	})

	return &Validator{validate: v, now: now}
}

// ValidateServiceLead runs every rule against a service booking form.
func (v *Validator) ValidateServiceLead(in ServiceLeadInput) FieldErrors {
	return v.collect(v.validate.Struct(in))
}

// ValidateCategoryLead runs every rule against a category request form.
func (v *Validator) ValidateCategoryLead(in CategoryLeadInput) FieldErrors {
	return v.collect(v.validate.Struct(in))
}

// ValidateNewsletter checks a newsletter signup email.
func (v *Validator) ValidateNewsletter(in NewsletterInput) FieldErrors {
	return v.collect(v.validate.Struct(in))
}

// collect converts validator.ValidationErrors into user-facing per-field
// messages keyed by the form field name.
func (v *Validator) collect(err error) FieldErrors {
	if err == nil {
		return FieldErrors{}
	}

	fieldErrs := FieldErrors{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fieldErrs["form"] = "Invalid form data"
		return fieldErrs
	}

	for _, fe := range verrs {
		field := fieldName(fe.StructField())
		// Keep only the first failing rule per field.
		if _, seen := fieldErrs[field]; seen {
			continue
		}
		fieldErrs[field] = messageFor(field, fe.Tag())
	}
	return fieldErrs
}

// fieldName maps struct field names to the form field names used in
// responses and error maps.
func fieldName(structField string) string {
	switch structField {
	case "Name":
		return "name"
	case "Email":
		return "email"
	case "Phone":
		return "phone"
	case "Address":
		return "address"
	case "PreferredDatetime":
		return "preferredDateTime"
	case "PreferredTime":
		return "preferredTime"
	default:
		return strings.ToLower(structField)
	}
}

// messageFor returns the user-facing message for a failed rule.
func messageFor(field, tag string) string {
	switch field {
	case "name":
		return "Name is required"
	case "email":
		if tag == "required" {
			return "Email is required"
		}
		return "Please enter a valid email address"
	case "phone":
		if tag == "required" {
			return "Phone number is required"
		}
		return "Please enter a valid phone number with country code (e.g., +1234567890)"
	case "address":
		return "Address is required"
	case "preferredDateTime", "preferredTime":
		if tag == "required" {
			return "Preferred date and time is required"
		}
		return "Please select a future date and time"
	default:
		return "Invalid value"
	}
}
