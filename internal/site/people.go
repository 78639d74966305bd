// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package site

import "math/rand"

// Technician is a member of the support team shown on the homepage.
type Technician struct {
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	Experience  string   `json:"experience"`
	Rating      float64  `json:"rating"`
	Specialties []string `json:"specialties"`
	ImageURL    string   `json:"image_url"`
}

// Testimonial is a customer quote rotated through landing pages.
type Testimonial struct {
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Rating   float64 `json:"rating"`
	Quote    string  `json:"quote"`
}

// technicianPool is the fixed roster sampled for display.
var technicianPool = []Technician{
	{
		Name: "Marcus Chen", Role: "Senior Network Engineer", Experience: "12 years",
		Rating: 4.9, Specialties: []string{"Networking", "Smart Home", "Security"},
		ImageURL: "/images/technicians/marcus-chen.jpg",
	},
	{
		Name: "Priya Nair", Role: "Computer Repair Specialist", Experience: "9 years",
		Rating: 4.8, Specialties: []string{"Laptops", "Data Recovery"},
		ImageURL: "/images/technicians/priya-nair.jpg",
	},
	{
		Name: "Derek Okafor", Role: "Smart Home Installer", Experience: "7 years",
		Rating: 4.9, Specialties: []string{"Home Automation", "Audio and Video"},
		ImageURL: "/images/technicians/derek-okafor.jpg",
	},
	{
		Name: "Sofia Ramirez", Role: "Printer and Peripherals Expert", Experience: "10 years",
		Rating: 4.7, Specialties: []string{"Printers", "Office Setup"},
		ImageURL: "/images/technicians/sofia-ramirez.jpg",
	},
	{
		Name: "Tom Babich", Role: "Security Consultant", Experience: "14 years",
		Rating: 4.8, Specialties: []string{"Virus Removal", "Backups", "Networking"},
		ImageURL: "/images/technicians/tom-babich.jpg",
	},
	{
		Name: "Grace Liu", Role: "Mobile and Tablet Technician", Experience: "6 years",
		Rating: 4.9, Specialties: []string{"Phones", "Tablets", "Wearables"},
		ImageURL: "/images/technicians/grace-liu.jpg",
	},
}

// testimonialPool is the fixed set of customer quotes.
var testimonialPool = []Testimonial{
	{
		Name: "Rachel M.", Location: "Austin, TX", Rating: 5,
		Quote: "My laptop was back from the dead the same afternoon. Incredible service.",
	},
	{
		Name: "James P.", Location: "Denver, CO", Rating: 5,
		Quote: "They set up our whole smart home in one visit and explained everything.",
	},
	{
		Name: "Aisha K.", Location: "Seattle, WA", Rating: 4.5,
		Quote: "Fast, friendly, and the WiFi dead zones in our house are finally gone.",
	},
	{
		Name: "Victor H.", Location: "Miami, FL", Rating: 5,
		Quote: "Recovered years of family photos from a drive two shops had given up on.",
	},
	{
		Name: "Dana W.", Location: "Chicago, IL", Rating: 4.8,
		Quote: "The membership pays for itself. One call and someone is on it.",
	},
	{
		Name: "Omar S.", Location: "Phoenix, AZ", Rating: 5,
		Quote: "Printer drama, solved in twenty minutes. Booked online, zero hassle.",
	},
}

// Sampler picks random distinct entries from the fixed pools. The random
// source is injectable so tests can seed it; sampling is cosmetic variety
// with no distribution requirement.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler creates a Sampler from the given source. A nil source falls
// back to an unseeded time-based one.
func NewSampler(src rand.Source) *Sampler {
	if src == nil {
		return &Sampler{rng: rand.New(rand.NewSource(rand.Int63()))}
	}
	return &Sampler{rng: rand.New(src)}
}

// Technicians returns n distinct random technicians. n is clamped to the
// pool size.
func (s *Sampler) Technicians(n int) []Technician {
	idx := s.pick(n, len(technicianPool))
	out := make([]Technician, len(idx))
	for i, j := range idx {
		out[i] = technicianPool[j]
	}
	return out
}

// Testimonials returns n distinct random testimonials.
func (s *Sampler) Testimonials(n int) []Testimonial {
	idx := s.pick(n, len(testimonialPool))
	out := make([]Testimonial, len(idx))
	for i, j := range idx {
		out[i] = testimonialPool[j]
	}
	return out
}

// pick returns n distinct indices in [0, size) via a partial
// Fisher-Yates shuffle.
func (s *Sampler) pick(n, size int) []int {
	if n > size {
		n = size
	}
	if n < 0 {
		n = 0
	}
	idx := make([]int, size)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < n; i++ {
		j := i + s.rng.Intn(size-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:n]
}
