package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/tartampluch/go-vivace/internal/config"
	"github.com/tartampluch/go-vivace/internal/engine"
	"github.com/tartampluch/go-vivace/internal/metrics"
	"github.com/tartampluch/go-vivace/internal/server"
	"github.com/tartampluch/go-vivace/internal/worker"
)

func newServeCmd(a *app) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   config.CmdServe,
		Short: config.CmdShortServe,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := a.settings.Clone()
			if port != 0 {
				s.ServerPort = port
			}

			// The gauge reads the generator built right after it.
			var gen *engine.Generator
			col := metrics.New(func() int { return gen.CachedYears() })
			gen = engine.NewGenerator(engine.RealClock{}, col)

			srv := server.NewCalendarServer(s.ServerPort, gen, s)
			srv.Localizer = a.translator
			srv.Metrics = col.Handler()

			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error { return srv.Start(ctx) })
			g.Go(func() error { return worker.New(gen, srv, s).Run(ctx) })

			if err := g.Wait(); err != nil {
				return err
			}
			slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
			return nil
		},
	}

	cmd.Flags().IntVar(&port, config.FlagPort, 0, config.FlagDescPort)
	return cmd
}
