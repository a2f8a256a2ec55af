package view

import (
	"strings"

	"github.com/intelligrit/travel-optimizer/internal/model"
)

// Map dimensions of the basemap overlay, in pixels.
const (
	MapWidth  = 860
	MapHeight = 430
)

// PlanView is the display form of a plan. The zero value renders the
// call-to-action placeholder.
type PlanView struct {
	HasPlan bool

	CityCount      int
	CityPath       string
	EstimatedTotal string
	RoutingMode    string

	Legs  []LegView
	Days  []model.ItineraryDay
	Costs []CostRow
	Map   MapView
}

type LegView struct {
	From     string
	To       string
	Mode     string
	Distance string
	Duration string
}

type CostRow struct {
	Label  string
	Amount string
}

type Pin struct {
	City string
	Lat  float64
	Lon  float64
	Point
}

type Segment struct {
	From Point
	To   Point
}

type MapView struct {
	Width    int
	Height   int
	Pins     []Pin
	Segments []Segment
}

// Build converts a plan into its display form. Projection is recomputed on
// every call from plan.MapPoints.
func Build(plan *model.PlanResponse) *PlanView {
	if plan == nil {
		return &PlanView{}
	}

	v := &PlanView{
		HasPlan:        true,
		CityCount:      len(plan.Cities),
		CityPath:       strings.Join(plan.Cities, " → "),
		EstimatedTotal: FormatMoney(&plan.EstimatedTotal),
		RoutingMode:    plan.RoutingMode,
		Days:           plan.Itinerary,
		Map:            BuildMap(plan.MapPoints, MapWidth, MapHeight),
	}

	for _, leg := range plan.Route {
		v.Legs = append(v.Legs, LegView{
			From:     leg.FromCity,
			To:       leg.ToCity,
			Mode:     leg.Mode,
			Distance: FormatDistance(leg.DistanceKm),
			Duration: FormatDuration(leg.DurationMin),
		})
	}

	cb := plan.CostBreakdown
	for _, c := range []struct {
		label  string
		amount float64
	}{
		{"Travel", cb.Travel},
		{"Stay", cb.Stay},
		{"Food", cb.Food},
		{"Activities", cb.Activities},
		{"Total", cb.Total},
	} {
		v.Costs = append(v.Costs, CostRow{Label: c.label, Amount: FormatMoney(&c.amount)})
	}

	return v
}

// BuildMap projects points and joins consecutive pins with segments.
func BuildMap(points []model.MapPoint, width, height int) MapView {
	m := MapView{Width: width, Height: height}
	for _, p := range points {
		m.Pins = append(m.Pins, Pin{
			City:  p.City,
			Lat:   p.Lat,
			Lon:   p.Lon,
			Point: Project(p.Lat, p.Lon, float64(width), float64(height)),
		})
	}
	for i := 0; i+1 < len(m.Pins); i++ {
		m.Segments = append(m.Segments, Segment{From: m.Pins[i].Point, To: m.Pins[i+1].Point})
	}
	return m
}
