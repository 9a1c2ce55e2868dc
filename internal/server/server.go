package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"taskflow/internal/config"
	"taskflow/internal/handler"
	"taskflow/internal/middleware"
	"taskflow/internal/repository"
	"taskflow/internal/service"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
	Log    *slog.Logger
}

// Init connects to the database, migrates the schema and wires the routes.
func Init(cfg *config.Config, log *slog.Logger) (*Server, error) {
	db, err := repository.Open(cfg, log)
	if err != nil {
		return nil, err
	}
	log.Info("connected to database", "driver", cfg.DBDriver)

	if err := repository.Migrate(cfg, db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	gin.SetMode(cfg.GinMode)
	svc := service.NewBoardService(repository.NewStore(db), log)

	return &Server{
		Engine: NewRouter(svc, log),
		DB:     db,
		Config: cfg,
		Log:    log,
	}, nil
}

// Board is everything the HTTP API needs from the service layer.
type Board interface {
	handler.ColumnService
	handler.CardService
	handler.ArchiveService
	handler.TagService
	handler.BoardSettingsService
	handler.Pinger
}

func NewRouter(svc Board, log *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(log))

	columnHandler := handler.NewColumnHandler(svc)
	cardHandler := handler.NewCardHandler(svc)
	archiveHandler := handler.NewArchiveHandler(svc)
	tagHandler := handler.NewTagHandler(svc)
	settingsHandler := handler.NewBoardSettingsHandler(svc)
	healthHandler := handler.NewHealthHandler(svc)

	r.GET("/health", healthHandler.Check)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Column routes
	r.GET("/columns", columnHandler.List)
	r.POST("/columns", columnHandler.Create)
	r.PUT("/columns/reorder", columnHandler.Reorder)
	r.PATCH("/columns/:id", columnHandler.Update)
	r.DELETE("/columns/:id", columnHandler.Delete)
	r.POST("/columns/:id/cards", cardHandler.Create)

	// Card routes
	r.PUT("/cards/move", cardHandler.Move)
	r.GET("/cards/:id", cardHandler.Get)
	r.PATCH("/cards/:id", cardHandler.Update)
	r.DELETE("/cards/:id", cardHandler.Delete)
	r.POST("/cards/:id/archive", cardHandler.Archive)
	r.POST("/cards/:id/restore", cardHandler.Restore)

	// Archive and search
	r.GET("/archive", archiveHandler.List)
	r.POST("/archive/restore-all", archiveHandler.RestoreAll)
	r.POST("/archive/clear", archiveHandler.Clear)
	r.GET("/search", archiveHandler.Search)

	// Tag routes
	r.GET("/tags", tagHandler.List)
	r.POST("/tags", tagHandler.Create)
	r.DELETE("/tags/:id", tagHandler.Delete)

	// Board settings
	r.GET("/board-settings", settingsHandler.Get)
	r.PATCH("/board-settings", settingsHandler.Update)

	return r
}

// Run serves until SIGINT or SIGTERM, then drains in-flight requests.
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:              ":" + s.Config.ServerPort,
		Handler:           s.Engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.Log.Info("server running", "port", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-quit:
	}
	s.Log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), s.Config.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	if sqlDB, err := s.DB.DB(); err == nil {
		sqlDB.Close()
	}
	s.Log.Info("server exited properly")
	return nil
}
