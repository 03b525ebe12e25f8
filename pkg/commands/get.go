package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/cascade/pkg/commands/options"
	"tableflip.dev/cascade/pkg/runner/get"
	"tableflip.dev/cascade/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	po := &options.PeriodOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "get",
		Aliases: []string{"board", "week"},
		Short:   "Show the week board",
		Example: `
cascade get
cascade get --week 35
cascade get --year 2026 --week 1 --show-id
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := get.Get{
				Year:        po.Year,
				Week:        po.Week,
				ShowID:      io.ShowID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddWeekArgs(cmd, po)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
