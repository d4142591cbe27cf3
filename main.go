package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "motoroutes/internal/config"
	"motoroutes/internal/geo"
	router "motoroutes/internal/http"
	"motoroutes/internal/http/handlers"
	"motoroutes/internal/ingest"
	"motoroutes/internal/membership"
	"motoroutes/internal/repositories"
	"motoroutes/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	app, err := intconfig.LoadAppConfig()
	if err != nil {
		log.Fatalf("invalid config.yml: %v", err)
	}

	db := intconfig.ConnectDB(env.DBPath)
	defer intconfig.CloseDB()

	snapshots := repositories.SnapshotRepository{DB: db}
	if err := snapshots.EnsureSchema(); err != nil {
		log.Fatalf("snapshot schema: %v", err)
	}
	riders := repositories.RiderRepository{DB: db}
	if err := riders.EnsureSchema(); err != nil {
		log.Fatalf("rider schema: %v", err)
	}

	store := &services.ItineraryService{Gateway: snapshots}
	if err := store.Init(ingest.SourceText(app.SourcePath)); err != nil {
		log.Fatalf("itinerary store: %v", err)
	}
	completion := &services.CompletionService{Gateway: snapshots}
	if err := completion.Init(); err != nil {
		log.Fatalf("completion tracker: %v", err)
	}
	media := &services.MediaService{Gateway: snapshots}
	if err := media.Init(); err != nil {
		log.Fatalf("media store: %v", err)
	}

	// overlay stays unavailable for the life of the process when the dataset
	// is missing; everything else keeps working
	boundaries, err := geo.LoadFile(app.BoundaryPath)
	if err != nil {
		log.Printf("boundary dataset unavailable (%v); overlay disabled", err)
		boundaries = nil
	}

	handlers.Wire(handlers.Deps{
		Store:      store,
		Completion: completion,
		Media:      media,
		Overlay:    services.NewOverlayService(boundaries),
		Membership: membership.NewClient(app.MembershipBaseURL),
		Riders:     riders,
		JWTSecret:  []byte(env.JWTSecret),
	})

	r := router.NewRouter(env)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server listening on http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	log.Println("server stopped cleanly.")
}
