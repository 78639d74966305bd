// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package site holds the fixed marketing content that is not stored in
// the database: membership plans, the technician and testimonial pools,
// and the state/city data behind location landing pages.
package site

import "math"

// Billing selects the membership billing period.
type Billing string

const (
	BillingMonthly Billing = "monthly"
	BillingYearly  Billing = "yearly"
)

// Plan is one membership tier.
type Plan struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	MonthlyPrice float64  `json:"monthly_price"`
	YearlyPrice  float64  `json:"yearly_price"`
	Popular      bool     `json:"popular"`
	Features     []string `json:"features"`
}

// PriceFor returns the plan price for the chosen billing period.
func (p Plan) PriceFor(b Billing) float64 {
	if b == BillingYearly {
		return p.YearlyPrice
	}
	return p.MonthlyPrice
}

// SavingsPercent returns how much cheaper a year of the plan is when paid
// yearly, as a rounded percentage of twelve monthly payments.
func (p Plan) SavingsPercent() int {
	monthlyTotal := p.MonthlyPrice * 12
	if monthlyTotal == 0 {
		return 0
	}
	savings := monthlyTotal - p.YearlyPrice
	return int(math.Round(savings / monthlyTotal * 100))
}

// Plans returns the membership tiers in display order.
func Plans() []Plan {
	return []Plan{
		{
			Name:         "Premium Support",
			Description:  "Perfect for individuals and small businesses",
			MonthlyPrice: 29,
			YearlyPrice:  290,
			Popular:      false,
			Features: []string{
				"24/7 Tech Support",
				"Remote Assistance",
				"Software Installation",
				"Virus Removal",
				"Basic Troubleshooting",
				"Email Support",
				"Phone Support",
				"1 Device Coverage",
			},
		},
		{
			Name:         "Enterprise Plus",
			Description:  "Comprehensive solution for businesses",
			MonthlyPrice: 79,
			YearlyPrice:  790,
			Popular:      true,
			Features: []string{
				"Everything in Premium",
				"Priority Support",
				"On-site Visits",
				"Network Setup & Management",
				"Data Backup & Recovery",
				"Security Audits",
				"Hardware Diagnostics",
				"Up to 10 Devices",
				"Dedicated Account Manager",
				"Monthly Health Reports",
			},
		},
	}
}
