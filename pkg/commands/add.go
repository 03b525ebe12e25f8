package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/cascade/pkg/commands/options"
	"tableflip.dev/cascade/pkg/goal"
	"tableflip.dev/cascade/pkg/runner/add"
	"tableflip.dev/cascade/pkg/store"
	"tableflip.dev/cascade/pkg/timeutil"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a goal",
		Example: `
cascade add quarter ship the onboarding revamp
cascade add week draft the migration doc --parent 1a2b3c4d
cascade add day write the intro section --parent 5e6f7a8b
cascade add adhoc renew passport --domain life
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addQuarterGoal(cmd)
	addWeekGoal(cmd)
	addDayGoal(cmd)
	addAdhocGoal(cmd)

	topLevel.AddCommand(cmd)
}

func addQuarterGoal(topLevel *cobra.Command) {
	no := &options.GoalOptions{}
	po := &options.PeriodOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "quarter",
		Short: "Add a quarterly goal",
		Example: `
cascade add quarter ship the onboarding revamp
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a title")
			}
			no.Title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			year, quarter := po.ResolveQuarter(time.Now())
			g := goal.New(no.Title, goal.DepthQuarterly, goal.Period{Year: year, Quarter: quarter})
			return runAdd(g, no, io)
		},
	}

	options.AddQuarterArgs(cmd, po)
	options.AddDetailsArgs(cmd, no)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addWeekGoal(topLevel *cobra.Command) {
	no := &options.GoalOptions{}
	po := &options.PeriodOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Add a weekly goal under a quarterly goal",
		Example: `
cascade add week draft the migration doc --parent 1a2b3c4d
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a title")
			}
			no.Title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			year, week := po.ResolveWeek(time.Now())
			monday := timeutil.DateOf(year, week, 1)
			_, quarter := timeutil.QuarterOf(monday)

			g := goal.New(no.Title, goal.DepthWeekly, goal.Period{Year: year, Quarter: quarter, Week: week})
			g.ParentID = no.Parent
			return runAdd(g, no, io)
		},
	}

	options.AddWeekArgs(cmd, po)
	options.AddParentArgs(cmd, no)
	options.AddDetailsArgs(cmd, no)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addDayGoal(topLevel *cobra.Command) {
	no := &options.GoalOptions{}
	po := &options.PeriodOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "day",
		Short: "Add a daily goal under a weekly goal",
		Example: `
cascade add day write the intro section --parent 5e6f7a8b
cascade add day review the draft --parent 5e6f7a8b --day 3
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a title")
			}
			no.Title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			g, err := dayGoal(no, po, goal.DepthDaily)
			if err != nil {
				return err
			}
			g.ParentID = no.Parent
			return runAdd(g, no, io)
		},
	}

	options.AddWeekArgs(cmd, po)
	options.AddDayArgs(cmd, po)
	options.AddParentArgs(cmd, no)
	options.AddDetailsArgs(cmd, no)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addAdhocGoal(topLevel *cobra.Command) {
	no := &options.GoalOptions{}
	po := &options.PeriodOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "adhoc",
		Short: "Add a standalone goal outside the quarterly tree",
		Example: `
cascade add adhoc renew passport --domain life
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a title")
			}
			no.Title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			g, err := dayGoal(no, po, goal.DepthAdhoc)
			if err != nil {
				return err
			}
			g.Domain = no.Domain
			return runAdd(g, no, io)
		},
	}

	options.AddWeekArgs(cmd, po)
	options.AddDayArgs(cmd, po)
	options.AddDomainArgs(cmd, no)
	options.AddDetailsArgs(cmd, no)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

// dayGoal builds a day-scoped goal from the resolved period flags.
func dayGoal(no *options.GoalOptions, po *options.PeriodOptions, depth goal.Depth) (*goal.Goal, error) {
	year, week, day, err := po.ResolveDay(time.Now())
	if err != nil {
		return nil, err
	}
	date := timeutil.DateOf(year, week, day)
	_, quarter := timeutil.QuarterOf(date)

	return goal.New(no.Title, depth, goal.Period{
		Year:    year,
		Quarter: quarter,
		Week:    week,
		Day:     day,
		Date:    goal.Timestamp{Time: date},
	}), nil
}

func runAdd(g *goal.Goal, no *options.GoalOptions, io *options.IDOptions) error {
	g.Details = no.Details
	if no.Due != "" {
		due, err := timeutil.ParseDate(no.Due)
		if err != nil {
			return err
		}
		g.DueDate = &goal.Timestamp{Time: due}
	}

	p, err := store.Load(nil)
	if err != nil {
		return err
	}
	s := add.Add{
		Goal:        g,
		ShowID:      io.ShowID,
		Persistence: p,
	}
	err = s.Do(context.Background())
	return output.HandleError(err)
}
