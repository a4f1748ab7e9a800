package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"quiz_app_backend/config"
	"quiz_app_backend/db"
	"quiz_app_backend/routes"
	"quiz_app_backend/store"

	"github.com/gin-gonic/gin"
	"github.com/golang/glog"
	"github.com/joho/godotenv"
)

func main() {
	seed := flag.Bool("seed", false, "replace the catalogue with the built-in sample data before serving")
	seedOnly := flag.Bool("seed-only", false, "seed the database and exit")
	flag.Parse()
	defer glog.Flush()

	if err := godotenv.Load(); err != nil {
		glog.Warning("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		glog.Exitf("Error loading configuration: %v", err)
	}
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	database, err := db.Open(ctx, cfg)
	if err != nil {
		glog.Exitf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	if *seed || *seedOnly || cfg.Seed {
		if err := db.SeedData(ctx, database, db.DefaultCatalog()); err != nil {
			glog.Exitf("Error seeding data: %v", err)
		}
		if *seedOnly {
			return
		}
	}

	r := routes.NewRouter(store.New(database), routes.Options{
		Development: cfg.IsDevelopment(),
		CORSOrigins: cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		glog.Infof("Server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			glog.Fatalf("listen: %s", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	glog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		glog.Errorf("Server forced to shutdown: %v", err)
	}
}
