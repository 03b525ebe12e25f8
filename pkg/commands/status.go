package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/cascade/pkg/commands/options"
	"tableflip.dev/cascade/pkg/runner/status"
	"tableflip.dev/cascade/pkg/store"
)

func addStar(topLevel *cobra.Command) {
	topLevel.AddCommand(statusCommand(status.OpStar, "star", "Star a quarterly goal for a week", `
cascade star <goal id>
cascade star <goal id> --week 35
`))
}

func addPin(topLevel *cobra.Command) {
	topLevel.AddCommand(statusCommand(status.OpPin, "pin", "Pin a quarterly goal for a week", `
cascade pin <goal id>
`))
}

func addClear(topLevel *cobra.Command) {
	topLevel.AddCommand(statusCommand(status.OpClear, "clear", "Clear a quarterly goal's star or pin for a week", `
cascade clear <goal id>
`))
}

func statusCommand(op status.Op, use, short, example string) *cobra.Command {
	io := &options.IDOptions{}
	po := &options.PeriodOptions{}

	cmd := &cobra.Command{
		Use:     use,
		Short:   short,
		Example: example,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a goal id")
			}
			io.ID = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := status.Status{
				ID:          io.ID,
				Op:          op,
				Year:        po.Year,
				Week:        po.Week,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddWeekArgs(cmd, po)
	options.AddOutputArg(cmd, output)
	return cmd
}
