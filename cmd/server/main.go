package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"planets/internal/planets/config"
	"planets/internal/planets/handler"
	"planets/internal/planets/repository"
	"planets/internal/planets/router"
	"planets/internal/planets/service"
	"planets/internal/planets/util"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		util.GetLogger().Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// 2. Init Logger
	util.InitLogger(cfg.LogLevel, cfg.LogFormat)
	logger := util.GetLogger()
	if !cfg.EnvFileLoaded {
		logger.Debug("No .env file found, using system environment variables")
	}

	// 3. Init MongoDB. Connect only validates options; reachability is checked by Bootstrap.
	client, err := mongo.Connect(context.Background(), options.Client().
		ApplyURI(cfg.MongoURI).
		SetServerSelectionTimeout(cfg.ConnectTimeout))
	if err != nil {
		logger.Error("Error connecting to MongoDB", "error", err)
		os.Exit(1)
	}

	db := client.Database(cfg.DBName)
	repo := repository.NewMongoPlanetRepository(db, cfg.PlanetsCollection)
	svc := service.NewService(repo)

	// 4. Bootstrap. The server keeps running without the store; lookups answer 500 until it returns.
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	res, err := svc.Bootstrap(ctx, cfg.SeedOnStart)
	cancel()
	if err != nil {
		logger.Error("Error connecting to MongoDB", "error", err, "connected", res.Connected)
	} else {
		logger.Info("MongoDB Connection Successful",
			"db", cfg.DBName,
			"collection", cfg.PlanetsCollection,
			"seeded", res.Seeded,
			"inserted", res.Inserted,
		)
	}

	// 5. Init Echo & Routes
	e := router.New(cfg, router.Handlers{
		Planet: handler.NewPlanetHandler(svc, logger),
		Docs:   handler.NewDocsHandler(cfg.APIDocsFile, logger),
		Health: handler.NewHealthHandler(cfg.Environment),
	}, logger)

	// 6. Start Server with Graceful Shutdown
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      e,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		logger.Info("Server successfully running", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("shutting down the server", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel = context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server Shutdown Failed", "error", err)
	}

	if err := client.Disconnect(ctx); err != nil {
		logger.Error("Failed to disconnect DB", "error", err)
	}

	logger.Info("Server exited properly")
}
