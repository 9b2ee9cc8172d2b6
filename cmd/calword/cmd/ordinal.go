package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var ordinalCmd = &cobra.Command{
	Use:   "ordinal <n>...",
	Short: "Spell numbers as English ordinals",
	Long: `Spells non-negative integers as English ordinal words.

Examples:
  calword ordinal 42          # forty-second
  calword ordinal 1 2 3 1000  # first, second, third, one thousandth`,
	Args: cobra.MinimumNArgs(1),
	RunE: runOrdinal,
}

var matchCmd = &cobra.Command{
	Use:   "match <word>...",
	Short: "Recognize ordinals written with digits",
	Long: `Reports whether each word is an ordinal written with digits such as
"21st" and prints its number.

Examples:
  calword match 21st 3rd fifth`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMatch,
}

func init() {
	rootCmd.AddCommand(ordinalCmd)
	rootCmd.AddCommand(matchCmd)
}

func runOrdinal(cmd *cobra.Command, args []string) error {
	numbers := make([]int64, len(args))
	for i, arg := range args {
		n, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return fmt.Errorf("not an integer: %q", arg)
		}
		numbers[i] = n
	}

	cal, err := openCalendar()
	if err != nil {
		return err
	}
	defer cal.Close()

	out := cmd.OutOrStdout()
	for _, n := range numbers {
		words, err := cal.OrdinalWords(cmd.Context(), n)
		if err != nil {
			return err
		}
		if len(numbers) == 1 {
			fmt.Fprintln(out, words)
			continue
		}
		fmt.Fprintf(out, "%s %s\n", dimColor.Sprintf("%d", n), words)
	}
	return nil
}

func runMatch(cmd *cobra.Command, args []string) error {
	cal, err := openCalendar()
	if err != nil {
		return err
	}
	defer cal.Close()

	out := cmd.OutOrStdout()
	for _, word := range args {
		match, err := cal.MatchDigitOrdinal(cmd.Context(), word)
		if err != nil {
			return err
		}
		if match.Matched {
			fmt.Fprintf(out, "%s %s %s\n", okColor.Sprint("yes"), word, match.Numeral)
		} else {
			fmt.Fprintf(out, "%s %s\n", failColor.Sprint("no "), word)
		}
	}
	return nil
}
