package view

import (
	"fmt"
	"io"
	"strings"
)

// RenderText writes a terminal-friendly summary of the plan.
func RenderText(w io.Writer, v *PlanView) error {
	if !v.HasPlan {
		_, err := fmt.Fprintln(w, "No plan yet.")
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Cities (%d): %s\n", v.CityCount, v.CityPath)
	fmt.Fprintf(&b, "Estimated total: %s\n", v.EstimatedTotal)
	fmt.Fprintf(&b, "Routing mode: %s\n", v.RoutingMode)

	fmt.Fprintf(&b, "\nRoute (%d legs)\n", len(v.Legs))
	for _, leg := range v.Legs {
		fmt.Fprintf(&b, "  %s -> %s  %-8s %12s %8s\n", leg.From, leg.To, leg.Mode, leg.Distance, leg.Duration)
	}

	if len(v.Days) > 0 {
		fmt.Fprintf(&b, "\nItinerary\n")
		for _, d := range v.Days {
			fmt.Fprintf(&b, "  Day %d: %s\n", d.Day, d.City)
			for _, bullet := range d.Bullets {
				fmt.Fprintf(&b, "    - %s\n", bullet)
			}
		}
	}

	fmt.Fprintf(&b, "\nCosts\n")
	for _, c := range v.Costs {
		fmt.Fprintf(&b, "  %-10s %10s\n", c.Label, c.Amount)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
