package commands

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/cascade/pkg/commands/options"
	"tableflip.dev/cascade/pkg/runner/pull"
	"tableflip.dev/cascade/pkg/store"
	"tableflip.dev/cascade/pkg/timeutil"
	"tableflip.dev/cascade/pkg/transfer"
)

func addPull(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	var (
		fromYear, fromWeek, fromDay int
		toYear, toWeek, toDay       int
		dryRun                      bool
	)

	cmd := &cobra.Command{
		Use:   "pull",
		Short: "Pull incomplete goals from one period into another",
		Long: "Pull moves every incomplete daily goal from the source period into the " +
			"target period, carrying quarterly star/pin statuses along when the weeks " +
			"differ. Defaults pull last week into this week.",
		Example: `
cascade pull
cascade pull --from-week 34 --to-week 35
cascade pull --from-week 35 --from-day 1 --to-day 2 --dry-run
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			year, week := timeutil.WeekOf(time.Now())
			if toYear == 0 {
				toYear = year
			}
			if toWeek == 0 {
				toWeek = week
			}
			if fromYear == 0 {
				fromYear = toYear
			}
			if fromWeek == 0 {
				fromYear, fromWeek = timeutil.PrevWeek(toYear, toWeek)
			}

			if (fromDay == 0) != (toDay == 0) {
				return errors.New("day pulls require both --from-day and --to-day")
			}
			from := transfer.WeekRef(fromYear, fromWeek)
			to := transfer.WeekRef(toYear, toWeek)
			if fromDay != 0 {
				from = transfer.DayRef(fromYear, fromWeek, fromDay)
				to = transfer.DayRef(toYear, toWeek, toDay)
			}

			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := pull.Pull{
				From:        from,
				To:          to,
				DryRun:      dryRun,
				ShowID:      io.ShowID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().IntVar(&fromYear, "from-year", 0, "Source ISO week year. Defaults to the target year.")
	cmd.Flags().IntVar(&fromWeek, "from-week", 0, "Source ISO week. Defaults to the week before the target.")
	cmd.Flags().IntVar(&fromDay, "from-day", 0, "Source day of week (1=Monday..7=Sunday) for a day pull.")
	cmd.Flags().IntVar(&toYear, "to-year", 0, "Target ISO week year. Defaults to the current year.")
	cmd.Flags().IntVar(&toWeek, "to-week", 0, "Target ISO week. Defaults to the current week.")
	cmd.Flags().IntVar(&toDay, "to-day", 0, "Target day of week for a day pull.")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview the transfer without applying it.")
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
