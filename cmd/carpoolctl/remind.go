package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"carpoolreminders/config"
	"carpoolreminders/internal/app"
	"carpoolreminders/internal/domain"
)

type remindOptions struct {
	roster     string
	eventStart string
	eventName  string
}

func newRemindCmd() *cobra.Command {
	var opts remindOptions
	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Send or schedule the volunteer reminder texts for an event",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logger := config.NewLogger(cfg.Environment, cfg.LogLevel)
			svcs, err := app.New(cfg, logger)
			if err != nil {
				return err
			}

			summary, err := svcs.Reminders.ScheduleReminders(cmd.Context(), domain.ReminderRequest{
				RosterURL:  opts.roster,
				EventName:  opts.eventName,
				EventStart: opts.eventStart,
			})
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(summary); err != nil {
				return err
			}
			if summary.Err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "%d reminder(s) failed:\n%v\n", summary.Failed, summary.Err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.roster, "roster", "", "volunteer roster CSV export URL (defaults to ROSTER_CSV_URL)")
	cmd.Flags().StringVar(&opts.eventStart, "event-start", "", `event start, RFC 3339 or "2006-01-02 15:04" in EVENT_TIMEZONE`)
	cmd.Flags().StringVar(&opts.eventName, "event-name", "", "event name used in the texts")
	_ = cmd.MarkFlagRequired("event-start")
	return cmd
}
