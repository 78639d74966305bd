// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package leads

import "testing"

// TestNormalizePhone covers punctuation stripping, '+' handling, and the
// canonical examples from the booking form.
func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "us number with punctuation",
			input: "1 (234) 567-8900",
			want:  "+12345678900",
		},
		{
			name:  "already normalized",
			input: "+12345678900",
			want:  "+12345678900",
		},
		{
			name:  "leading plus kept",
			input: "+44 20 7946 0958",
			want:  "+442079460958",
		},
		{
			name:  "interior plus collapsed",
			input: "+1+234+567",
			want:  "+1234567",
		},
		{
			name:  "plus added when missing",
			input: "911234567890",
			want:  "+911234567890",
		},
		{
			name:  "dots and dashes stripped",
			input: "1.234.567-8900",
			want:  "+12345678900",
		},
		{
			name:  "letters stripped",
			input: "call 1234567890",
			want:  "+1234567890",
		},
		{
			name:  "empty input yields bare plus",
			input: "",
			want:  "+",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizePhone(tt.input)
			if got != tt.want {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestNormalizePhone_Idempotent verifies that normalizing an already
// normalized value returns it unchanged, since the form re-normalizes on
// every keystroke.
func TestNormalizePhone_Idempotent(t *testing.T) {
	inputs := []string{
		"1 (234) 567-8900",
		"+44.20.7946.0958",
		"+1+2+3",
		"numbers 555 0199",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			once := NormalizePhone(input)
			twice := NormalizePhone(once)
			if once != twice {
				t.Errorf("not idempotent: NormalizePhone(%q) = %q, re-normalized to %q", input, once, twice)
			}
		})
	}
}
