package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/cascade/pkg/timeutil"
)

// PeriodOptions captures period selection flags. Zero values mean "current".
type PeriodOptions struct {
	Year    int
	Quarter int
	Week    int
	Day     int
	Date    string
}

// AddQuarterArgs wires the quarter selection flags.
func AddQuarterArgs(cmd *cobra.Command, o *PeriodOptions) {
	cmd.Flags().IntVar(&o.Year, "year", 0,
		"Calendar year. Defaults to the current year.")
	cmd.Flags().IntVarP(&o.Quarter, "quarter", "q", 0,
		"Quarter (1-4). Defaults to the current quarter.")
}

// AddWeekArgs wires the week selection flags.
func AddWeekArgs(cmd *cobra.Command, o *PeriodOptions) {
	cmd.Flags().IntVar(&o.Year, "year", 0,
		"ISO week year. Defaults to the current year.")
	cmd.Flags().IntVarP(&o.Week, "week", "w", 0,
		"ISO week number (1-53). Defaults to the current week.")
}

// AddDayArgs wires the day selection flags.
func AddDayArgs(cmd *cobra.Command, o *PeriodOptions) {
	cmd.Flags().IntVar(&o.Day, "day", 0,
		"Day of week (1=Monday..7=Sunday). Defaults to today.")
	cmd.Flags().StringVar(&o.Date, "date", "",
		"Calendar date (YYYY-MM-DD). Overrides --year/--week/--day.")
}

// ResolveQuarter fills year and quarter from the clock when unset.
func (o *PeriodOptions) ResolveQuarter(now time.Time) (year, quarter int) {
	year, quarter = timeutil.QuarterOf(now)
	if o.Year != 0 {
		year = o.Year
	}
	if o.Quarter != 0 {
		quarter = o.Quarter
	}
	return year, quarter
}

// ResolveWeek fills year and week from the clock when unset.
func (o *PeriodOptions) ResolveWeek(now time.Time) (year, week int) {
	year, week = timeutil.WeekOf(now)
	if o.Year != 0 {
		year = o.Year
	}
	if o.Week != 0 {
		week = o.Week
	}
	return year, week
}

// ResolveDay fills year, week, and day from the clock or the --date flag.
func (o *PeriodOptions) ResolveDay(now time.Time) (year, week, day int, err error) {
	if o.Date != "" {
		date, perr := timeutil.ParseDate(o.Date)
		if perr != nil {
			return 0, 0, 0, perr
		}
		year, week = timeutil.WeekOf(date)
		return year, week, timeutil.DayOfWeek(date), nil
	}
	year, week = o.ResolveWeek(now)
	day = timeutil.DayOfWeek(now)
	if o.Day != 0 {
		day = o.Day
	}
	return year, week, day, nil
}
