package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/calword/foundation/utils/timex"
	"github.com/msto63/calword/internal/calendar/store"
)

const pruneInterval = time.Hour

var (
	journalLimit     int
	journalOperation string
	journalFailed    bool
	journalJSON      bool
	pruneOlderThan   time.Duration
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Show recorded computations",
	Long: `Lists computations recorded by a server with the journal enabled,
newest first.

Examples:
  calword journal --limit 20
  calword journal --operation OrdinalWords --failed
  calword journal stats
  calword journal prune --older-than 168h`,
	Args: cobra.NoArgs,
	RunE: runJournal,
}

var journalStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the journal",
	Args:  cobra.NoArgs,
	RunE:  runJournalStats,
}

var journalPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove old journal entries",
	Args:  cobra.NoArgs,
	RunE:  runJournalPrune,
}

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalStatsCmd, journalPruneCmd)

	journalCmd.Flags().IntVar(&journalLimit, "limit", 50, "maximum number of entries")
	journalCmd.Flags().StringVar(&journalOperation, "operation", "", "only entries of this operation")
	journalCmd.Flags().BoolVar(&journalFailed, "failed", false, "only failed computations")
	journalCmd.Flags().BoolVar(&journalJSON, "json", false, "print entries as JSON lines")

	journalPruneCmd.Flags().DurationVar(&pruneOlderThan, "older-than", 0, "age limit (default: journal.retention)")
}

func runJournal(cmd *cobra.Command, args []string) error {
	js, err := openJournal()
	if err != nil {
		return err
	}
	defer js.Close()

	entries, err := js.Query(cmd.Context(), store.Filter{
		Operation:  journalOperation,
		FailedOnly: journalFailed,
		Limit:      journalLimit,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if journalJSON {
		enc := json.NewEncoder(out)
		for _, e := range entries {
			if err := enc.Encode(e); err != nil {
				return err
			}
		}
		return nil
	}

	if len(entries) == 0 {
		fmt.Fprintln(out, dimColor.Sprint("no entries"))
		return nil
	}
	for _, e := range entries {
		result := okColor.Sprint("ok  ")
		detail := formatFields(e.Output)
		if e.Failed() {
			result = failColor.Sprint("fail")
			detail = e.ErrorMessage
		}
		fmt.Fprintf(out, "%s %s %-20s %s %s -> %s\n",
			dimColor.Sprint(timex.FormatISO(e.CreatedAt)), result, e.Operation,
			dimColor.Sprint(e.Duration), formatFields(e.Input), detail)
	}
	return nil
}

func formatFields(fields map[string]interface{}) string {
	if len(fields) == 0 {
		return "{}"
	}
	data, err := json.Marshal(fields)
	if err != nil {
		return fmt.Sprint(fields)
	}
	return string(data)
}

func runJournalStats(cmd *cobra.Command, args []string) error {
	js, err := openJournal()
	if err != nil {
		return err
	}
	defer js.Close()

	stats, err := js.Stats(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %d (%d failed)\n", headingColor.Sprint("total"), stats.Total, stats.Failed)
	for op, count := range stats.ByOperation {
		fmt.Fprintf(out, "  %-20s %d\n", op, count)
	}
	return nil
}

func runJournalPrune(cmd *cobra.Command, args []string) error {
	olderThan := pruneOlderThan
	if olderThan == 0 {
		olderThan = appConfig.Journal.Retention.Duration
	}

	js, err := openJournal()
	if err != nil {
		return err
	}
	defer js.Close()

	deleted, err := js.Prune(cmd.Context(), olderThan)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed %d entries older than %s\n", deleted, olderThan)
	return nil
}

// pruneLoop removes expired entries now and then every pruneInterval until
// ctx is done
func pruneLoop(ctx context.Context, prune func(context.Context, time.Duration) (int64, error), retention time.Duration) {
	ticker := time.NewTicker(pruneInterval)
	defer ticker.Stop()

	for {
		if _, err := prune(ctx, retention); err != nil {
			logger.Warn("Journal pruning failed", "error", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
