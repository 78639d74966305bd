package slug

import "testing"

// TestGenerate exercises the slug generator with typical category and
// service titles, special characters, and edge cases.
func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		// --- Typical catalog titles ---
		{
			name:  "two word category",
			input: "Smart Home",
			want:  "smart-home",
		},
		{
			name:  "three word category",
			input: "Computers and Printers",
			want:  "computers-and-printers",
		},
		{
			name:  "already lowercase",
			input: "networking",
			want:  "networking",
		},
		{
			name:  "mixed case service title",
			input: "Virus Removal Service",
			want:  "virus-removal-service",
		},
		{
			name:  "title with number",
			input: "WiFi 6 Router Setup",
			want:  "wifi-6-router-setup",
		},

		// --- Special characters ---
		{
			name:  "apostrophe stripped",
			input: "Laptop Won't Boot",
			want:  "laptop-wont-boot",
		},
		{
			name:  "punctuation stripped",
			input: "Data Backup & Recovery!",
			want:  "data-backup--recovery",
		},
		{
			name:  "parentheses stripped",
			input: "TV Mounting (Wall)",
			want:  "tv-mounting-wall",
		},
		{
			name:  "slash stripped",
			input: "PC/Mac Repair",
			want:  "pcmac-repair",
		},

		// --- Whitespace handling ---
		{
			name:  "leading and trailing spaces trimmed",
			input: "  Smart Home  ",
			want:  "smart-home",
		},
		{
			name:  "multiple spaces collapse to one hyphen",
			input: "Smart    Home",
			want:  "smart-home",
		},
		{
			name:  "tab treated as whitespace",
			input: "Smart\tHome",
			want:  "smart-home",
		},

		// --- Edge cases ---
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "only spaces",
			input: "   ",
			want:  "",
		},
		{
			name:  "only special characters",
			input: "!@#$%",
			want:  "",
		},
		{
			name:  "single character",
			input: "A",
			want:  "a",
		},
		{
			name:  "existing hyphens preserved",
			input: "on-site support",
			want:  "on-site-support",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Generate(tt.input)
			if got != tt.want {
				t.Errorf("Generate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestGenerate_Deterministic verifies the invariant that the same title
// always derives the same slug, since routes and catalog filters both
// depend on the derivation.
func TestGenerate_Deterministic(t *testing.T) {
	titles := []string{
		"Computers and Printers",
		"Smart Home",
		"Audio and Video",
	}

	for _, title := range titles {
		t.Run(title, func(t *testing.T) {
			first := Generate(title)
			second := Generate(title)
			if first != second {
				t.Errorf("Generate(%q) not deterministic: %q vs %q", title, first, second)
			}
		})
	}
}

// TestGenerate_Idempotent verifies that generating a slug from an already
// valid slug produces the same slug.
func TestGenerate_Idempotent(t *testing.T) {
	slugs := []string{
		"computers-and-printers",
		"smart-home",
		"wifi-6-router-setup",
		"a",
	}

	for _, s := range slugs {
		t.Run(s, func(t *testing.T) {
			got := Generate(s)
			if got != s {
				t.Errorf("Generate(%q) = %q, want idempotent result %q", s, got, s)
			}
		})
	}
}

// TestHumanize covers the slug-to-title fallback used when a category row
// is missing but its slug appears in a route.
func TestHumanize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"computers-and-printers", "Computers And Printers"},
		{"smart-home", "Smart Home"},
		{"networking", "Networking"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Humanize(tt.input)
			if got != tt.want {
				t.Errorf("Humanize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
