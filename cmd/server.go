//go:build !integration

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"bitbucket.org/jkcars/booking-hub/internal/catalog"
	"bitbucket.org/jkcars/booking-hub/internal/handlers"
	"bitbucket.org/jkcars/booking-hub/internal/store"
	"bitbucket.org/jkcars/booking-hub/internal/tools/logging"
	"bitbucket.org/jkcars/booking-hub/internal/tools/redisfactory"
	"bitbucket.org/jkcars/booking-hub/internal/web"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func serverApp(httpServer *http.Server, logger *zerolog.Logger) int {
	shutdown := false
	done := make(chan error, 1)
	stop := make(chan os.Signal, 1)
	go func() {
		logger.
			Info().
			Msg("Listening on address " + httpServer.Addr)
		done <- httpServer.ListenAndServe()
	}()
	go func() {
		// Wait for stop
		<-stop
		shutdown = true
		logger.Info().Msg("Shutting down server...")
		_ = httpServer.Shutdown(context.Background())
	}()

	// Notify stop channel if SIGINT or SIGTERM is received
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	err := <-done
	if err != nil && !shutdown {
		logger.
			Error().
			Err(err).
			Msg("Server failed")
		return 1
	}
	return 0
}

func main() {
	_ = godotenv.Load(".env")
	log := logging.New(os.Getenv("LOG_LEVEL"))

	catalogStore, err := catalog.Load(os.Getenv("CATALOG_LOCATION"))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load catalog")
	}

	redisFactory := redisfactory.New()
	storeClient := store.NewClient(log)

	appRouter := web.SetupRouter(log)
	handlers.RegisterRoutes(appRouter, handlers.Dependencies{
		Catalog:      catalogStore,
		Store:        storeClient,
		RedisFactory: redisFactory,
	})

	var host string
	if os.Getenv("TEST") == "true" {
		host = "localhost"
	}

	httpServer := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", host, os.Getenv("PORT")),
		Handler: appRouter,
	}

	os.Exit(serverApp(httpServer, log))
}
