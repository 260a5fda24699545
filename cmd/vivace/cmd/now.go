package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tartampluch/go-vivace/internal/calendar"
	"github.com/tartampluch/go-vivace/internal/config"
	"github.com/tartampluch/go-vivace/internal/display"
	"github.com/tartampluch/go-vivace/internal/engine"
)

// nowOutput is the --json document. Field names match the HTTP API.
type nowOutput struct {
	Date    string            `json:"date"`
	Results []calendar.Result `json:"results"`
}

func newNowCmd(a *app) *cobra.Command {
	var (
		date   string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   config.CmdNow,
		Short: config.CmdShortNow,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var clock engine.Clock = engine.RealClock{}
			if date != "" {
				t, err := time.ParseInLocation(config.DateFormatISO, date, time.Local)
				if err != nil {
					return fmt.Errorf("%s: %q: %w", config.ErrDateParse, date, err)
				}
				clock = engine.FixedClock{At: t}
			}

			gen := engine.NewGenerator(clock, nil)
			results, err := gen.Today(cmd.Context(), a.settings.Clone())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", config.JSONIndent)
				return enc.Encode(nowOutput{
					Date:    clock.Now().Format(config.DateFormatISO),
					Results: results,
				})
			}

			tr := a.translator
			_, err = fmt.Fprintln(out, display.Results(
				tr.Msg(config.TKeyTitle),
				tr.LocalizeResults(results),
				tr.Msg(config.TKeyNoCalendars),
			))
			return err
		},
	}

	cmd.Flags().StringVar(&date, config.FlagDate, "", config.FlagDescDate)
	cmd.Flags().BoolVar(&asJSON, config.FlagJSON, false, config.FlagDescJSON)
	return cmd
}
