package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/cascade/pkg/commands/options"
	"tableflip.dev/cascade/pkg/runner/move"
	"tableflip.dev/cascade/pkg/store"
	"tableflip.dev/cascade/pkg/timeutil"
	"tableflip.dev/cascade/pkg/transfer"
)

func addMove(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	var (
		fromYear, fromWeek int
		toYear, toWeek     int
		keep               bool
	)

	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move a quarterly goal's star or pin to another week",
		Example: `
cascade move <goal id> --from-week 34 --to-week 35
cascade move <goal id> --to-week 36 --keep
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a goal id")
			}
			io.ID = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			year, week := timeutil.WeekOf(time.Now())
			if fromYear == 0 {
				fromYear = year
			}
			if fromWeek == 0 {
				fromWeek = week
			}
			if toYear == 0 {
				toYear = fromYear
			}
			if toWeek == 0 {
				return errors.New("requires --to-week")
			}

			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := move.Move{
				ID:          io.ID,
				From:        transfer.WeekRef(fromYear, fromWeek),
				To:          transfer.WeekRef(toYear, toWeek),
				Keep:        keep,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().IntVar(&fromYear, "from-year", 0, "Source ISO week year. Defaults to the current year.")
	cmd.Flags().IntVar(&fromWeek, "from-week", 0, "Source ISO week. Defaults to the current week.")
	cmd.Flags().IntVar(&toYear, "to-year", 0, "Target ISO week year. Defaults to the source year.")
	cmd.Flags().IntVar(&toWeek, "to-week", 0, "Target ISO week.")
	cmd.Flags().BoolVar(&keep, "keep", false, "Copy the status instead of moving it.")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
