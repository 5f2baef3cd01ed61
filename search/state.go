// Package search maintains the client-facing filter state and applies it to
// an already-fetched property list for instant feedback, mirroring the
// server-side predicate semantics of package query.
package search

import (
	"strings"

	"MuathaqaAPI/models"
)

// All is the sentinel select value meaning "no constraint".
const All = "all"

// FilterState is the active filter set. It is an explicit context object:
// callers pass it to the rendering layer and to Apply, there is no
// process-wide singleton. Zero values mean "no constraint"; a zero MaxPrice
// or MaxArea leaves the upper bound open.
type FilterState struct {
	City      string
	District  string
	Type      string
	SubType   string
	Purpose   string
	Usage     string
	Query     string
	MinPrice  float64
	MaxPrice  float64
	MinArea   float64
	MaxArea   float64
	Bedrooms  int
	Bathrooms int
}

func constrained(v string) bool {
	return v != "" && v != All
}

// SetCity selects a city and invalidates any previously selected district,
// since districts are scoped to a city.
func (f *FilterState) SetCity(city string) {
	f.City = city
	f.District = ""
}

// Reset clears every filter so Apply returns the full list again.
func (f *FilterState) Reset() {
	*f = FilterState{}
}

// Matches reports whether a property satisfies every active filter. The
// semantics must stay aligned with the server-side predicate: bedroom and
// bathroom filters are minimum thresholds, ranges are inclusive, and a city
// matches either the structured code or the English location text.
func (f *FilterState) Matches(p *models.Property) bool {
	if !p.IsActive {
		return false
	}
	if constrained(f.City) && !matchesCity(p, f.City) {
		return false
	}
	if constrained(f.District) && !strings.EqualFold(p.District, f.District) {
		return false
	}
	// SubType narrows a broad type selection (e.g. "villa" narrowed to
	// "duplex"). When set it takes precedence over Type, since both compare
	// against the single stored type value.
	if constrained(f.SubType) {
		if p.Type != f.SubType {
			return false
		}
	} else if constrained(f.Type) && p.Type != f.Type {
		return false
	}
	if constrained(f.Purpose) && p.Purpose != f.Purpose {
		return false
	}
	if constrained(f.Usage) && p.Usage != f.Usage {
		return false
	}
	if f.Query != "" && !matchesText(p, f.Query) {
		return false
	}
	if p.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && p.Price > f.MaxPrice {
		return false
	}
	if p.Area < f.MinArea {
		return false
	}
	if f.MaxArea > 0 && p.Area > f.MaxArea {
		return false
	}
	if p.Bedrooms < f.Bedrooms {
		return false
	}
	if p.Bathrooms < f.Bathrooms {
		return false
	}
	return true
}

// Apply filters an in-memory list, preserving order.
func (f *FilterState) Apply(list []models.Property) []models.Property {
	out := make([]models.Property, 0, len(list))
	for i := range list {
		if f.Matches(&list[i]) {
			out = append(out, list[i])
		}
	}
	return out
}

func matchesCity(p *models.Property, city string) bool {
	if p.City != "" && strings.EqualFold(p.City, city) {
		return true
	}
	return containsFold(p.Location.En, city)
}

func matchesText(p *models.Property, q string) bool {
	return containsFold(p.Title.En, q) ||
		containsFold(p.Title.Ar, q) ||
		containsFold(p.Location.En, q) ||
		containsFold(p.Location.Ar, q) ||
		containsFold(p.PropertyCode, q)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
