package server

import (
	"log"
	"net"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"google.golang.org/grpc"

	"verify-server/middleware"
	"verify-server/proto"
	"verify-server/repository"
	"verify-server/service"
)

const gracefulWait = 5 * time.Second

// Server owns the process lifecycle: the gRPC listener, the HTTP health
// endpoint, the health monitor, and teardown ordering.
type Server struct {
	grpcSrv *grpc.Server
	app     *fiber.App
	monitor *service.HealthMonitor
	store   repository.CodeStore

	mu           sync.Mutex
	running      bool
	shutdownOnce sync.Once
}

func New(ctrl proto.VerifyServiceServer, store repository.CodeStore, monitor *service.HealthMonitor) *Server {
	grpcSrv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		middleware.Recover,
		middleware.TimerMetrics,
	))
	proto.RegisterVerifyServiceServer(grpcSrv, ctrl)

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Get("/health", func(c *fiber.Ctx) error {
		if store.Ping(c.Context()) {
			return c.JSON(fiber.Map{"status": "ok"})
		}
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded"})
	})

	return &Server{
		grpcSrv: grpcSrv,
		app:     app,
		monitor: monitor,
		store:   store,
	}
}

// Start binds the gRPC listener, starts the health endpoint and the health
// monitor (with one immediate probe). A failed bind is unrecoverable and
// exits the process.
func (s *Server) Start(grpcAddr, healthAddr string) {
	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		log.Fatalf("failed to bind %s: %v", grpcAddr, err)
	}

	s.mu.Lock()
	s.running = true
	s.mu.Unlock()

	s.monitor.Start()

	go func() {
		log.Printf("health endpoint on %s", healthAddr)
		if err := s.app.Listen(healthAddr); err != nil {
			log.Printf("health endpoint stopped: %v", err)
		}
	}()

	go func() {
		log.Printf("gRPC server running on %s", grpcAddr)
		if err := s.grpcSrv.Serve(lis); err != nil {
			// A serve failure outside shutdown takes the same teardown
			// path as a signal
			log.Printf("gRPC serve stopped: %v", err)
			s.Shutdown()
		}
	}()
}

// IsRunning reports whether the listener is bound and accepting.
func (s *Server) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Shutdown tears everything down exactly once; later calls return after the
// first teardown has finished. Each step is best effort so one failure never
// blocks the rest.
func (s *Server) Shutdown() {
	s.shutdownOnce.Do(func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()

		log.Println("starting graceful shutdown...")

		// Health timer first so nothing probes a closing client
		s.monitor.Stop()

		// Graceful stop raced against a hard deadline; whichever finishes
		// first wins and the loser is discarded.
		stopped := make(chan struct{})
		go func() {
			s.grpcSrv.GracefulStop()
			close(stopped)
		}()
		select {
		case <-stopped:
			log.Println("gRPC listener drained")
		case <-time.After(gracefulWait):
			log.Printf("graceful stop exceeded %v, forcing", gracefulWait)
			s.grpcSrv.Stop()
		}

		if err := s.app.ShutdownWithTimeout(gracefulWait); err != nil {
			log.Printf("health endpoint shutdown failed: %v", err)
		}

		s.store.Quit()

		log.Println("shutdown complete")
	})
}
