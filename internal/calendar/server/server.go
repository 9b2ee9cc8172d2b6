package server

import (
	"context"
	"net"
	"sync"
	"time"

	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	mdwerror "github.com/msto63/calword/foundation/core/error"
	"github.com/msto63/calword/foundation/utils/stringx"
	"github.com/msto63/calword/internal/calendar/service"
	coreGrpc "github.com/msto63/calword/pkg/core/grpc"
	"github.com/msto63/calword/pkg/core/health"
	"github.com/msto63/calword/pkg/core/logging"
	"github.com/msto63/calword/pkg/core/version"
)

// Server is the calendar gRPC server
type Server struct {
	service   *service.Service
	grpc      *coreGrpc.Server
	health    *health.Registry
	healthSrv *grpchealth.Server
	logger    *logging.Logger
	config    Config
	startTime time.Time

	mu          sync.Mutex
	stopWatcher context.CancelFunc
}

// Config holds server configuration
type Config struct {
	Host             string
	Port             int
	EnableReflection bool
	MaxRecvMsgSize   int
	HealthInterval   time.Duration
}

// DefaultConfig returns default server configuration
func DefaultConfig() Config {
	return Config{
		Host:           "127.0.0.1",
		Port:           50151,
		MaxRecvMsgSize: 4 * 1024 * 1024,
		HealthInterval: 15 * time.Second,
	}
}

// New creates a new calendar server around svc
func New(cfg Config, svc *service.Service) (*Server, error) {
	if svc == nil {
		return nil, mdwerror.New("calendar service is required").
			WithCode(mdwerror.CodeInvalidArgument).
			WithOperation("server.New")
	}
	if cfg.HealthInterval <= 0 {
		cfg.HealthInterval = DefaultConfig().HealthInterval
	}

	logger := logging.New("calendar-server")

	grpcCfg := coreGrpc.DefaultServerConfig()
	grpcCfg.Host = cfg.Host
	grpcCfg.Port = cfg.Port
	grpcCfg.EnableReflection = cfg.EnableReflection
	if cfg.MaxRecvMsgSize > 0 {
		grpcCfg.MaxRecvMsgSize = cfg.MaxRecvMsgSize
	}
	grpcServer := coreGrpc.NewServer(grpcCfg)

	healthRegistry := health.NewRegistry("calword", version.Application)
	healthRegistry.RegisterFunc("calendar", calendarCheck)
	if svc.HasJournal() {
		healthRegistry.Register(health.PingCheck("journal", svc.PingJournal))
	}

	server := &Server{
		service:   svc,
		grpc:      grpcServer,
		health:    healthRegistry,
		healthSrv: grpchealth.NewServer(),
		logger:    logger,
		config:    cfg,
		startTime: time.Now(),
	}

	RegisterCalendarServer(grpcServer.GRPCServer(), server)
	healthpb.RegisterHealthServer(grpcServer.GRPCServer(), server.healthSrv)

	return server, nil
}

// calendarCheck exercises the converters without touching the journal
func calendarCheck(ctx context.Context) health.CheckResult {
	words, err := stringx.ToOrdinalWords(21)
	if err != nil || words != "twenty-first" {
		return health.CheckResult{
			Name:    "calendar",
			Status:  health.StatusUnhealthy,
			Message: "ordinal conversion is broken",
		}
	}
	return health.CheckResult{
		Name:    "calendar",
		Status:  health.StatusHealthy,
		Message: "calendar service is operational",
	}
}

// Start starts the server and blocks until it stops
func (s *Server) Start() error {
	s.logger.Info("Starting calword server", "host", s.config.Host, "port", s.config.Port)
	if err := s.grpc.Listen(); err != nil {
		return err
	}
	s.watchHealth()
	return s.grpc.Start()
}

// StartAsync starts the server asynchronously
func (s *Server) StartAsync() error {
	s.logger.Info("Starting calword server (async)", "host", s.config.Host, "port", s.config.Port)
	if err := s.grpc.StartAsync(); err != nil {
		return err
	}
	s.watchHealth()
	return nil
}

// Serve serves on an existing listener and blocks until the server stops
func (s *Server) Serve(listener net.Listener) error {
	s.watchHealth()
	return s.grpc.Serve(listener)
}

func (s *Server) watchHealth() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopWatcher != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.stopWatcher = cancel

	report := s.health.Sync(ctx, s.healthSrv)
	if !report.Healthy() {
		s.logger.Warn("Server starts unhealthy", "report", report.String())
	}
	go s.health.Watch(ctx, s.healthSrv, s.config.HealthInterval)
}

// Stop marks the server as not serving and stops it gracefully, forcing the
// stop when ctx ends first
func (s *Server) Stop(ctx context.Context) {
	s.logger.Info("Stopping calword server")

	s.mu.Lock()
	if s.stopWatcher != nil {
		s.stopWatcher()
		s.stopWatcher = nil
	}
	s.mu.Unlock()

	s.healthSrv.Shutdown()
	s.grpc.StopWithTimeout(ctx)
}

// Address returns the address the server listens on
func (s *Server) Address() string {
	return s.grpc.Address()
}

// Uptime returns the time since the server was created
func (s *Server) Uptime() time.Duration {
	return time.Since(s.startTime)
}

// GRPCServer returns the underlying gRPC server
func (s *Server) GRPCServer() *grpc.Server {
	return s.grpc.GRPCServer()
}

// HealthRegistry returns the health check registry
func (s *Server) HealthRegistry() *health.Registry {
	return s.health
}
