package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/intelligrit/travel-optimizer/internal/store"
	"github.com/intelligrit/travel-optimizer/internal/view"
	"github.com/intelligrit/travel-optimizer/internal/web"
	"github.com/spf13/cobra"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the trip planner web app",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("host") {
			serveHost = cfg.Server.Host
		}
		if !cmd.Flags().Changed("port") {
			servePort = cfg.Server.Port
		}

		s, err := store.New(cfg.Session.DBPath)
		if err != nil {
			return err
		}
		defer s.Close()

		r, err := view.NewRenderer()
		if err != nil {
			return err
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()

		srv := &web.Server{
			Store:      s,
			Planner:    newPlanner(),
			Renderer:   r,
			Logger:     logger,
			Addr:       fmt.Sprintf("%s:%d", serveHost, servePort),
			Basemap:    cfg.Server.Basemap,
			SessionTTL: time.Duration(cfg.Session.TTLMinutes) * time.Minute,
		}
		return srv.ListenAndServe(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "localhost", "Host to listen on")
	serveCmd.Flags().IntVar(&servePort, "port", 3000, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}
