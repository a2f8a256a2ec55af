package cmd

import (
	"fmt"

	"github.com/intelligrit/travel-optimizer/internal/form"
	"github.com/spf13/cobra"
)

var countriesCmd = &cobra.Command{
	Use:   "countries",
	Short: "List the countries offered as suggestions",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := form.NewPage()
		if err := p.LoadCountries(cmd.Context(), newPlanner()); err != nil {
			logger.Debug("planning service unavailable, using built-in list", "error", err)
		}

		for _, c := range p.Countries {
			fmt.Println(c)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(countriesCmd)
}
