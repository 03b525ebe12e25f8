package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/cascade/pkg/commands/options"
	"tableflip.dev/cascade/pkg/runner/complete"
	"tableflip.dev/cascade/pkg/store"
)

func addComplete(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	undo := false
	cascade := false
	noCascade := false

	cmd := &cobra.Command{
		Use:     "complete",
		Aliases: []string{"done", "check"},
		Short:   "Toggle completion for a goal",
		Example: `
cascade complete <goal id>
cascade complete <goal id> --undo
cascade complete <weekly goal id> --cascade
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
			if cascade && noCascade {
				return errors.New("--cascade and --no-cascade are mutually exclusive")
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := complete.Complete{
				ID:          io.ID,
				Undo:        undo,
				Persistence: p,
			}
			if cascade || noCascade {
				s.Cascade = &cascade
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&undo, "undo", false,
		"Mark the goal incomplete instead.")
	cmd.Flags().BoolVar(&cascade, "cascade", false,
		"When hard-completing a weekly goal, complete its open daily goals too.")
	cmd.Flags().BoolVar(&noCascade, "no-cascade", false,
		"When hard-completing a weekly goal, leave its open daily goals open.")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
