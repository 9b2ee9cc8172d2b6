package cmd

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/calword/foundation/utils/timex"
)

var (
	includeSaturday bool
	includeSunday   bool
)

var workdaysCmd = &cobra.Command{
	Use:   "workdays",
	Short: "Move a date by working days",
	Long: `Moves a date forward or backward by a number of working days. By
default Monday to Friday are working days; the config file or the
--saturday and --sunday flags change that.

Examples:
  calword workdays add 2023-11-17 3
  calword workdays sub "2023-11-20 09:30:00" 1
  calword workdays add --saturday 2023-11-17 1`,
}

var workdaysAddCmd = &cobra.Command{
	Use:   "add <date> <days>",
	Short: "Advance a date by working days",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWorkdays(cmd, args, calendar.AdvanceWorkingDays)
	},
}

var workdaysSubCmd = &cobra.Command{
	Use:   "sub <date> <days>",
	Short: "Move a date back by working days",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWorkdays(cmd, args, calendar.RetreatWorkingDays)
	},
}

func init() {
	rootCmd.AddCommand(workdaysCmd)
	workdaysCmd.AddCommand(workdaysAddCmd, workdaysSubCmd)

	workdaysCmd.PersistentFlags().BoolVar(&includeSaturday, "saturday", false, "count Saturday as a working day")
	workdaysCmd.PersistentFlags().BoolVar(&includeSunday, "sunday", false, "count Sunday as a working day")
}

type moveFunc func(c calendar, ctx context.Context, date time.Time, days int, schedule *timex.WorkingDaySchedule) (time.Time, error)

func runWorkdays(cmd *cobra.Command, args []string, move moveFunc) error {
	date, err := timex.Parse(args[0])
	if err != nil {
		return err
	}
	days, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("days must be an integer: %q", args[1])
	}

	var schedule *timex.WorkingDaySchedule
	flags := cmd.Flags()
	if flags.Changed("saturday") || flags.Changed("sunday") {
		s := appConfig.Calendar.Schedule()
		if flags.Changed("saturday") {
			s.IncludeSaturday = includeSaturday
		}
		if flags.Changed("sunday") {
			s.IncludeSunday = includeSunday
		}
		schedule = &s
	}

	cal, err := openCalendar()
	if err != nil {
		return err
	}
	defer cal.Close()

	result, err := move(cal, cmd.Context(), date, days, schedule)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
		result.Format(timex.BusinessDateTime), dimColor.Sprint(result.Weekday()))
	return nil
}
