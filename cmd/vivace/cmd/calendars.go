package cmd

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/tartampluch/go-vivace/internal/calendar"
	"github.com/tartampluch/go-vivace/internal/config"
	"github.com/tartampluch/go-vivace/internal/display"
)

func newCalendarsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   config.CmdCalendars,
		Short: config.CmdShortCalendars,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ids := calendar.Available()
			items := make([]string, 0, len(ids))
			for _, id := range ids {
				mark := config.MarkDisabled
				if slices.Contains(a.settings.EnabledCalendars, id) {
					mark = config.MarkEnabled
				}
				items = append(items, mark+" "+fmt.Sprintf(config.FormatCalendarItem, a.translator.SystemName(id), id))
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), display.List(a.translator.Msg(config.TKeyCalendarsTitle), items))
			return err
		},
	}
}
