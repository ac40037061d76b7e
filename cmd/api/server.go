package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gallery-backend/pkg/container"
)

// Port cố định, không đọc từ environment
const Port = 3000

func Serve() {
	// ========================================
	// 1. BUILD DI CONTAINER
	// ========================================
	// Nếu store không kết nối được → application không start
	ctx := context.Background()
	appContainer, err := container.NewContainer(ctx)
	if err != nil {
		log.Fatalf("❌ Failed to initialize container: %v", err)
	}

	// ========================================
	// 2. ADMIN PROVISIONING
	// ========================================
	// Phải xong trước khi nhận request
	if err := appContainer.ProvisionAdmin(ctx); err != nil {
		appContainer.Cleanup()
		log.Fatalf("❌ Failed to provision default admin: %v", err)
	}

	defer appContainer.Cleanup()

	// ========================================
	// 3. SETUP ROUTER + HTTP SERVER
	// ========================================
	router := SetupRouter(appContainer)

	srv := &http.Server{
		Addr:           fmt.Sprintf(":%d", Port),
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Printf("🚀 Server running on port %d", Port)
		log.Printf("💚 Health Check: http://localhost:%d/health", Port)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	// ========================================
	// 4. GRACEFUL SHUTDOWN
	// ========================================
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("⚠️  Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server exited gracefully")
}
