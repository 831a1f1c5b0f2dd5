package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"school_transport/internal/config"
	"school_transport/internal/controllers"
	"school_transport/internal/logger"
	"school_transport/internal/middleware"
	"school_transport/internal/password"
	"school_transport/internal/repository"
	"school_transport/internal/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}

	// Initialize structured logging to file
	logWriter := logger.Setup(cfg.Log)
	gin.SetMode(cfg.GinMode)

	db, err := config.OpenDB(cfg.Database, logger.GormLogger())
	if err != nil {
		logrus.WithError(err).Fatal("failed to open database")
	}
	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Fatal("failed to get database pool")
	}
	defer sqlDB.Close()

	store := repository.New(db)
	hasher := password.NewBcryptHasherWithCost(cfg.BcryptCost)
	r := routes.SetupRouter(controllers.New(store, hasher), logWriter)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           middleware.EnableCORS(r),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.WithFields(logrus.Fields{
			"addr":      cfg.HTTPAddr,
			"db_driver": cfg.Database.Driver,
		}).Info("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("server stopped unexpectedly")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done

	logrus.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("graceful shutdown failed")
	}
	logrus.Info("server stopped")
}
