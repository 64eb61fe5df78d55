package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"verify-server/controller"
	"verify-server/repository"
	"verify-server/server"
	"verify-server/service"
	"verify-server/util"
)

func main() {
	// Load .env file with proper error handling
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v (using system environment variables)", err)
	}

	store := newCodeStore()
	emailService := service.NewEmailService()
	verificationService := service.NewVerificationService(store, emailService)
	verifyController := controller.NewVerifyController(verificationService)
	monitor := service.NewHealthMonitor(store, 30*time.Second)

	srv := server.New(verifyController, store, monitor)

	// An uncaught fault takes the same teardown path as a signal, then
	// exits non-zero.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("fatal error: %v", r)
			srv.Shutdown()
			os.Exit(1)
		}
	}()

	grpcAddr := util.GetEnv("GRPC_ADDR", "127.0.0.1:50051")
	healthAddr := util.GetEnv("HEALTH_ADDR", "127.0.0.1:8080")
	srv.Start(grpcAddr, healthAddr)

	// Block until a termination signal, then tear down once
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	sig := <-sigCh
	log.Printf("signal received: %v", sig)

	srv.Shutdown()
	os.Exit(0)
}

func newCodeStore() repository.CodeStore {
	if util.GetEnv("STORE_BACKEND", "redis") == "memory" {
		log.Println("using in-memory code store (dev mode)")
		return repository.NewMemoryCodeStore()
	}
	return repository.NewRedisCodeStore()
}
