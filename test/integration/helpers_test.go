package integration

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/msto63/calword/internal/calendar/server"
	"github.com/msto63/calword/internal/calendar/service"
	"github.com/msto63/calword/internal/calendar/store"
)

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// skipIfServiceUnavailable skips the test if the service is not reachable
func skipIfServiceUnavailable(t *testing.T, addr string) {
	t.Helper()
	if !isServiceAvailable(addr) {
		t.Skipf("Skipping: calword server not available at %s", addr)
	}
}

// isServiceAvailable checks if a TCP connection can be established
func isServiceAvailable(addr string) bool {
	conn, err := net.DialTimeout("tcp", addr, 2*time.Second)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// testStack is a server with a file journal listening on a free local port
type testStack struct {
	server  *server.Server
	journal *store.SQLiteJournalStore
	client  *server.Client
}

func startStack(t *testing.T) *testStack {
	t.Helper()

	journal, err := store.NewSQLiteJournalStore(store.Config{
		Path: filepath.Join(t.TempDir(), "data", "journal.db"),
	})
	if err != nil {
		t.Fatalf("Failed to open journal: %v", err)
	}

	cfg := service.DefaultConfig()
	cfg.Journal = journal
	svc, err := service.NewService(cfg)
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}

	srvCfg := server.DefaultConfig()
	srvCfg.Port = 0
	srv, err := server.New(srvCfg, svc)
	if err != nil {
		t.Fatalf("Failed to create server: %v", err)
	}
	if err := srv.StartAsync(); err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	client, err := server.Dial(srv.Address())
	if err != nil {
		t.Fatalf("Failed to dial %s: %v", srv.Address(), err)
	}

	t.Cleanup(func() {
		client.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Stop(ctx)
		journal.Close()
	})

	return &testStack{server: srv, journal: journal, client: client}
}

// testContext returns a context with a test timeout
func testContext(t *testing.T) (context.Context, context.CancelFunc) {
	t.Helper()
	return context.WithTimeout(context.Background(), 10*time.Second)
}
