// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// GoalOptions captures the fields of a goal being created.
type GoalOptions struct {
	Title   string
	Details string
	Parent  string
	Domain  string
	Due     string
}

// AddDetailsArgs wires the free-text detail flags.
func AddDetailsArgs(cmd *cobra.Command, o *GoalOptions) {
	cmd.Flags().StringVarP(&o.Details, "details", "d", "",
		"Free-form details for the goal.")
	cmd.Flags().StringVar(&o.Due, "due", "",
		"Due date (YYYY-MM-DD).")
}

// AddParentArgs wires the parent goal flag.
func AddParentArgs(cmd *cobra.Command, o *GoalOptions) {
	cmd.Flags().StringVarP(&o.Parent, "parent", "P", "",
		"ID of the parent goal.")
}

// AddDomainArgs wires the adhoc domain flag.
func AddDomainArgs(cmd *cobra.Command, o *GoalOptions) {
	cmd.Flags().StringVar(&o.Domain, "domain", "",
		"Domain label for grouping adhoc goals.")
}
