package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/calword/foundation/utils/stringx"
	"github.com/msto63/calword/foundation/utils/timex"
)

var (
	formatMillis bool
	offsetHours  int
)

var formatCmd = &cobra.Command{
	Use:   "format <ym|ymd|ts|iso|spoken> [date]",
	Short: "Format a date",
	Long: `Formats a date, the current time when none is given.

Styles:
  ym      2023-11
  ymd     2023-11-17
  ts      20231117150500 (--millis appends milliseconds)
  iso     2023-11-17T15:05:00Z (--millis adds fractional seconds)
  spoken  "today at 3:05 PM" or "Friday, November 17th at 3:05 PM"

Examples:
  calword format ymd
  calword format ts --millis "2023-11-17 15:05:00"
  calword format spoken --offset 1 2023-11-17T20:05:00Z`,
	Args:      cobra.RangeArgs(1, 2),
	ValidArgs: []string{"ym", "ymd", "ts", "iso", "spoken"},
	RunE:      runFormat,
}

var uuidCmd = &cobra.Command{
	Use:   "uuid",
	Short: "Print a random UUID",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), stringx.UUID())
	},
}

func init() {
	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(uuidCmd)

	formatCmd.Flags().BoolVar(&formatMillis, "millis", false, "include milliseconds (ts, iso)")
	formatCmd.Flags().IntVar(&offsetHours, "offset", 0, "hour offset from UTC for spoken output (default from config)")
}

func runFormat(cmd *cobra.Command, args []string) error {
	t := time.Now()
	if len(args) == 2 {
		parsed, err := timex.Parse(args[1])
		if err != nil {
			return err
		}
		t = parsed
	}

	var out string
	switch args[0] {
	case "ym":
		out = timex.FormatYearMonth(t)
	case "ymd":
		out = timex.FormatDate(t)
	case "ts":
		out = timex.FormatTimestamp(t, formatMillis)
	case "iso":
		if formatMillis {
			out = timex.FormatISOMillis(t)
		} else {
			out = timex.FormatISO(t)
		}
	case "spoken":
		cal, err := openCalendar()
		if err != nil {
			return err
		}
		defer cal.Close()

		var offset *int
		if cmd.Flags().Changed("offset") {
			offset = &offsetHours
		}
		out, err = cal.FormatSpoken(cmd.Context(), t, offset)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown style %q (use ym, ymd, ts, iso or spoken)", args[0])
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
