package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/msto63/calword/internal/calendar/server"
	"github.com/msto63/calword/internal/calendar/store"
	coreGrpc "github.com/msto63/calword/pkg/core/grpc"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the calword gRPC server",
	Long: `Starts the calendar gRPC server (service calword.v1.Calendar plus the
standard gRPC health service). When the journal is enabled every
computation is recorded in SQLite.

Examples:
  calword serve
  calword serve --port 50200
  CALWORD_JOURNAL_ENABLED=true calword serve`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveHost, "host", "", "listen host (default from config)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "listen port (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	if remoteAddr != "" {
		return fmt.Errorf("--remote cannot be used with serve")
	}

	coreGrpc.SetLogger(logger)

	var journal store.JournalStore
	if appConfig.Journal.Enabled {
		js, err := openJournal()
		if err != nil {
			return err
		}
		defer js.Close()
		journal = js
		logger.Info("Journal enabled", "path", appConfig.Journal.Path)
	}

	svc, err := newService(journal)
	if err != nil {
		return err
	}

	cfg := server.DefaultConfig()
	cfg.Host = appConfig.Server.Host
	cfg.Port = appConfig.Server.Port
	cfg.EnableReflection = appConfig.Server.EnableReflection
	cfg.MaxRecvMsgSize = appConfig.Server.MaxRecvMsgSize
	if serveHost != "" {
		cfg.Host = serveHost
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	srv, err := server.New(cfg, svc)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if journal != nil && appConfig.Journal.Retention.Duration > 0 {
		go pruneLoop(ctx, svc.PruneJournal, appConfig.Journal.Retention.Duration)
	}

	if err := srv.StartAsync(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s listening on %s\n", headingColor.Sprint("calword"), srv.Address())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	fmt.Fprintln(cmd.OutOrStdout(), "Stopping server...")
	stopCtx, stopCancel := context.WithTimeout(context.Background(), appConfig.Server.ShutdownTimeout.Duration)
	defer stopCancel()
	srv.Stop(stopCtx)
	return nil
}
