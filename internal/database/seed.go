package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"getnow/internal/slug"
)

// seedService is one catalog entry inserted in development.
type seedService struct {
	title       string
	description string
	price       float64
	duration    string
	popular     bool
}

// seedCategory groups dev services under a category.
type seedCategory struct {
	title       string
	description string
	services    []seedService
}

// devCatalog is the development catalog. Slugs are derived from titles at
// insert time with the same derivation the rest of the app uses.
var devCatalog = []seedCategory{
	{
		title:       "Computers and Printers",
		description: "Repair, setup, and tune-up for desktops, laptops, and printers.",
		services: []seedService{
			{"Laptop Screen Repair", "Cracked or flickering laptop screen replacement.", 89, "2 hours", true},
			{"Printer Setup", "Unbox, connect, and configure your printer on every device.", 49, "1 hour", false},
			{"Virus Removal", "Deep malware cleanup with security hardening.", 120, "2 hours", true},
			{"Computer Tune-Up", "Speed up a slow machine and clear out the cruft.", 69, "90 minutes", false},
		},
	},
	{
		title:       "Smart Home",
		description: "Design, installation, and support for connected homes.",
		services: []seedService{
			{"Smart Thermostat Install", "Wire up and pair a smart thermostat.", 150, "2 hours", true},
			{"Video Doorbell Setup", "Mount, connect, and configure a video doorbell.", 99, "1 hour", false},
			{"Whole Home Automation", "Full smart home design and installation.", 450, "1 day", true},
		},
	},
	{
		title:       "Networking",
		description: "Fast, reliable WiFi everywhere in your home or office.",
		services: []seedService{
			{"WiFi Dead Zone Fix", "Mesh setup to eliminate dead zones.", 50, "90 minutes", false},
			{"Router Upgrade", "Replace, secure, and optimize your router.", 200, "2 hours", false},
			{"Office Network Setup", "Wired and wireless network for small offices.", 350, "half day", true},
		},
	},
	{
		title:       "Audio and Video",
		description: "Home theater, TV mounting, and sound systems.",
		services: []seedService{
			{"TV Mounting", "Wall mount with cable concealment.", 129, "2 hours", true},
			{"Home Theater Setup", "Surround sound and streaming setup.", 249, "3 hours", false},
		},
	},
}

// Seed populates the database with the development catalog. It is a
// no-op when categories already exist, so it is safe to run on every
// startup in dev mode.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		return fmt.Errorf("seed check categories: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	for order, cat := range devCatalog {
		var categoryID string
		err := db.QueryRow(`
			INSERT INTO categories (title, slug, description, sort_order)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, cat.title, slug.Generate(cat.title), cat.description, order).Scan(&categoryID)
		if err != nil {
			return fmt.Errorf("seed category %q: %w", cat.title, err)
		}

		for _, sv := range cat.services {
			_, err := db.Exec(`
				INSERT INTO services (category_id, title, slug, description, price, duration, popular)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			`, categoryID, sv.title, slug.Generate(sv.title), sv.description, sv.price, sv.duration, sv.popular)
			if err != nil {
				return fmt.Errorf("seed service %q: %w", sv.title, err)
			}
		}
	}

	slog.Info("database seeded with development catalog",
		"categories", len(devCatalog),
	)
	return nil
}
