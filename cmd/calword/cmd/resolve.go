package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/calword/foundation/utils/timex"
)

var resolveOffset int

var resolveCmd = &cobra.Command{
	Use:   "resolve <json|->",
	Short: "Resolve structured date/time input into an event range",
	Long: `Resolves a JSON object with optional year, month, day, hours, minutes
and seconds, or a range given by startDateTime and endDateTime, into the
start and end of an event. A single point lasts the configured default
event length; a date without a time starts at 07:00. Use "-" to read the
JSON from stdin.

Examples:
  calword resolve '{"year":2024,"month":3,"day":21}'
  calword resolve '{"hours":14,"minutes":30}'
  calword resolve '{"startDateTime":{"year":2024,"month":3,"day":21,"hours":9},
                    "endDateTime":{"year":2024,"month":3,"day":22}}'`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().IntVar(&resolveOffset, "offset", 0, "hour offset applied to the result")
}

func runResolve(cmd *cobra.Command, args []string) error {
	raw := args[0]
	if raw == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return err
		}
		raw = string(data)
	}

	var input timex.DateTimeInput
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		return fmt.Errorf("invalid date/time input: %w", err)
	}

	cal, err := openCalendar()
	if err != nil {
		return err
	}
	defer cal.Close()

	var offset *int
	if cmd.Flags().Changed("offset") {
		offset = &resolveOffset
	}
	result, err := cal.ResolveDateTime(cmd.Context(), input, offset)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", headingColor.Sprint("start"), timex.FormatISOMillis(result.Start))
	fmt.Fprintf(out, "%s   %s\n", headingColor.Sprint("end"), timex.FormatISOMillis(result.End))
	return nil
}
