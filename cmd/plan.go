package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/intelligrit/travel-optimizer/internal/form"
	"github.com/intelligrit/travel-optimizer/internal/view"
	"github.com/spf13/cobra"
)

var (
	planFrom      string
	planTo        string
	planBudget    string
	planStart     string
	planEnd       string
	planInterests []string
	planPace      string
	planStops     []string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Request a plan from the planning service and print it",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := form.NewPage()
		if cmd.Flags().Changed("from") {
			p.SetOrigin(planFrom)
		}
		if cmd.Flags().Changed("to") {
			p.SetDestination(planTo)
		}
		if cmd.Flags().Changed("budget") {
			p.Budget = planBudget
		}
		if cmd.Flags().Changed("start") {
			p.StartDate = planStart
		}
		if cmd.Flags().Changed("end") {
			p.EndDate = planEnd
		}
		if cmd.Flags().Changed("interests") {
			p.Interests = planInterests
		}
		if cmd.Flags().Changed("pace") {
			p.SetPace(planPace)
		}
		for _, stop := range planStops {
			p.NewStop = stop
			p.AddStop()
		}

		for _, w := range p.Warnings() {
			fmt.Fprintf(os.Stderr, "  WARNING: %s\n", w)
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()

		req := p.BuildRequest()
		fmt.Printf("Planning %s (budget $%.0f, %s, %s to %s)...\n\n",
			strings.Join(req.CountryChain, " -> "), req.BudgetUSD, req.Pace, req.StartDate, req.EndDate)

		p.Generate(ctx, newPlanner())
		if p.Status == form.StatusFailed {
			return fmt.Errorf("generating plan: %s", p.Error)
		}

		return view.RenderText(os.Stdout, view.Build(p.Plan))
	},
}

func init() {
	planCmd.Flags().StringVar(&planFrom, "from", "India", "Origin country")
	planCmd.Flags().StringVar(&planTo, "to", "United States", "Destination country")
	planCmd.Flags().StringVar(&planBudget, "budget", "2500", "Budget in USD")
	planCmd.Flags().StringVar(&planStart, "start", "2025-12-14", "Start date (YYYY-MM-DD)")
	planCmd.Flags().StringVar(&planEnd, "end", "2025-12-21", "End date (YYYY-MM-DD)")
	planCmd.Flags().StringSliceVar(&planInterests, "interests", nil, "Comma-separated interests")
	planCmd.Flags().StringVar(&planPace, "pace", "balanced", "relaxed, balanced or packed")
	planCmd.Flags().StringArrayVar(&planStops, "stop", nil, "Intermediate country stop (repeatable, in order)")
	rootCmd.AddCommand(planCmd)
}
