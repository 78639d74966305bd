// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package leads implements the lead submission pipeline: phone
// normalization, the booking-form validation rule set, and the submission
// state machine that turns a store write into exactly one of success,
// validation failure, duplicate, or generic failure.
package leads

import "strings"

// NormalizePhone canonicalizes raw phone input into "+<digits>" form.
// Everything that is not a digit or '+' is stripped; a single leading '+'
// is kept (or added) and any interior '+' characters are removed. Applied
// on every phone field edit, not just at submit, and idempotent: feeding
// the output back in returns it unchanged.
// Example: "1 (234) 567-8900" → "+12345678900"
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r == '+' || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()

	if strings.HasPrefix(cleaned, "+") {
		return "+" + strings.ReplaceAll(cleaned[1:], "+", "")
	}
	return "+" + strings.ReplaceAll(cleaned, "+", "")
}
