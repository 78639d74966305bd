// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package site

// City is one serviced city inside a state, addressable by slug in
// location landing page routes.
type City struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// State is a serviced US state with its cities.
type State struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Slug         string `json:"slug"`
	Cities       []City `json:"cities"`
}

// states is the fixed service area. Slugs follow the same derivation as
// catalog slugs so routes stay predictable.
var states = []State{
	{
		Name: "Texas", Abbreviation: "TX", Slug: "texas",
		Cities: []City{
			{Name: "Austin", Slug: "austin"},
			{Name: "Dallas", Slug: "dallas"},
			{Name: "Houston", Slug: "houston"},
			{Name: "San Antonio", Slug: "san-antonio"},
		},
	},
	{
		Name: "California", Abbreviation: "CA", Slug: "california",
		Cities: []City{
			{Name: "Los Angeles", Slug: "los-angeles"},
			{Name: "San Diego", Slug: "san-diego"},
			{Name: "San Jose", Slug: "san-jose"},
			{Name: "Sacramento", Slug: "sacramento"},
		},
	},
	{
		Name: "Florida", Abbreviation: "FL", Slug: "florida",
		Cities: []City{
			{Name: "Miami", Slug: "miami"},
			{Name: "Orlando", Slug: "orlando"},
			{Name: "Tampa", Slug: "tampa"},
		},
	},
	{
		Name: "Washington", Abbreviation: "WA", Slug: "washington",
		Cities: []City{
			{Name: "Seattle", Slug: "seattle"},
			{Name: "Spokane", Slug: "spokane"},
			{Name: "Tacoma", Slug: "tacoma"},
		},
	},
	{
		Name: "Colorado", Abbreviation: "CO", Slug: "colorado",
		Cities: []City{
			{Name: "Denver", Slug: "denver"},
			{Name: "Boulder", Slug: "boulder"},
			{Name: "Colorado Springs", Slug: "colorado-springs"},
		},
	},
}

// States returns the serviced states in display order.
func States() []State {
	return states
}

// FindState looks up a state by slug. Returns nil if the state is not
// serviced, rendered as a not-found view.
func FindState(slug string) *State {
	for i := range states {
		if states[i].Slug == slug {
			return &states[i]
		}
	}
	return nil
}

// FindCity looks up a city within a state, both by slug.
func FindCity(stateSlug, citySlug string) (*State, *City) {
	st := FindState(stateSlug)
	if st == nil {
		return nil, nil
	}
	for i := range st.Cities {
		if st.Cities[i].Slug == citySlug {
			return st, &st.Cities[i]
		}
	}
	return st, nil
}
