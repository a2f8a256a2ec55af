package model

import "fmt"

// Pace is a coarse setting for how dense the generated itinerary should be.
type Pace string

const (
	PaceRelaxed  Pace = "relaxed"
	PaceBalanced Pace = "balanced"
	PacePacked   Pace = "packed"
)

// Paces lists every valid pace in display order.
var Paces = []Pace{PaceRelaxed, PaceBalanced, PacePacked}

// Label is the human-readable form shown in the pace selector.
func (p Pace) Label() string {
	switch p {
	case PaceRelaxed:
		return "Relaxed"
	case PaceBalanced:
		return "Balanced"
	case PacePacked:
		return "Packed"
	}
	return string(p)
}

// ParsePace validates a pace value from user input.
func ParsePace(s string) (Pace, error) {
	for _, p := range Paces {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown pace %q", s)
}

// TripRequest is the body sent to the planning service.
type TripRequest struct {
	FromCountry  string   `json:"from_country"`
	ToCountry    string   `json:"to_country"`
	BudgetUSD    float64  `json:"budget_usd"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	Interests    []string `json:"interests"`
	Pace         Pace     `json:"pace"`
	CountryChain []string `json:"country_chain"`
}

// RouteLeg is one segment of the route between two cities.
type RouteLeg struct {
	FromCity    string  `json:"from_city"`
	ToCity      string  `json:"to_city"`
	DistanceKm  float64 `json:"distance_km"`
	DurationMin float64 `json:"duration_min"`
	Mode        string  `json:"mode"`
	FromLat     float64 `json:"from_lat"`
	FromLon     float64 `json:"from_lon"`
	ToLat       float64 `json:"to_lat"`
	ToLon       float64 `json:"to_lon"`
}

// ItineraryDay is a single day of the generated itinerary.
type ItineraryDay struct {
	Day     int      `json:"day"`
	City    string   `json:"city"`
	Bullets []string `json:"bullets"`
}

// CostBreakdown splits the estimated cost by category.
type CostBreakdown struct {
	Travel     float64 `json:"travel"`
	Stay       float64 `json:"stay"`
	Food       float64 `json:"food"`
	Activities float64 `json:"activities"`
	Total      float64 `json:"total"`
}

// MapPoint is a city pin on the overview map.
type MapPoint struct {
	City string  `json:"city"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// PlanResponse is the full plan returned by the planning service.
type PlanResponse struct {
	Cities         []string       `json:"cities"`
	Route          []RouteLeg     `json:"route"`
	Itinerary      []ItineraryDay `json:"itinerary"`
	CostBreakdown  CostBreakdown  `json:"cost_breakdown"`
	EstimatedTotal float64        `json:"estimated_total"`
	RoutingMode    string         `json:"routing_mode"`
	MapPoints      []MapPoint     `json:"map_points"`
}

// CountriesResponse is the payload of GET /countries.
type CountriesResponse struct {
	Countries []string `json:"countries"`
}
