package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hunlearn/lang-portal/internal/auth"
	"github.com/hunlearn/lang-portal/internal/config"
	"github.com/hunlearn/lang-portal/internal/database"
	"github.com/hunlearn/lang-portal/internal/database/groups"
	"github.com/hunlearn/lang-portal/internal/database/stats"
	"github.com/hunlearn/lang-portal/internal/database/study"
	"github.com/hunlearn/lang-portal/internal/database/words"
	http_controllers "github.com/hunlearn/lang-portal/internal/http"
	"github.com/hunlearn/lang-portal/internal/scheduler"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// Serve runs the HTTP server until SIGINT/SIGTERM, then shuts down
// gracefully within the configured timeout.
func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

// Run wires the whole application together and serves it.
func Run(cfg *config.Config, version string) {
	log.Printf("Starting lang-portal v%s", version)

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}()

	wordsRepo := words.NewRepository(db.DB)
	groupsRepo := groups.NewRepository(db.DB)
	studyRepo := study.NewRepository(db.DB)
	statsRepo := stats.NewRepository(db.DB)

	var janitor *scheduler.SessionJanitor
	if cfg.Janitor.Enabled {
		janitor = scheduler.NewSessionJanitor(studyRepo, cfg.Janitor.Schedule, cfg.Janitor.MaxAge)
		if err := janitor.Start(); err != nil {
			log.Fatalf("Failed to start session janitor: %v", err)
		}
	}

	var adminMiddleware gin.HandlerFunc
	guard, err := auth.NewAdminGuard(cfg.Auth.AdminToken, cfg.Auth.BcryptCost)
	if err != nil {
		log.Fatalf("Failed to set up admin guard: %v", err)
	}
	if guard != nil {
		log.Printf("Admin token configured: system endpoints require authentication")
		adminMiddleware = guard.Middleware()
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Database:        db,
		Words:           wordsRepo,
		Groups:          groupsRepo,
		Study:           studyRepo,
		Stats:           statsRepo,
		AdminMiddleware: adminMiddleware,
		Version:         version,
	})

	Serve(router, cfg, func(ctx context.Context) {
		if janitor != nil {
			janitor.Stop()
		}
	})
}
