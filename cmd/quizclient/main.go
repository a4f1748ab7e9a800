package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"quiz_app_backend/client"

	"github.com/golang/glog"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	defaultServer := os.Getenv("QUIZ_SERVER_URL")
	if defaultServer == "" {
		defaultServer = client.DefaultServerURL
	}
	server := flag.String("server", defaultServer, "base URL of the quiz API")
	timeout := flag.Duration("timeout", client.DefaultTimeout, "per-request timeout")
	flag.Parse()
	defer glog.Flush()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	api := client.NewAPI(*server, &http.Client{Timeout: *timeout})
	if err := client.NewApp(api, os.Stdin, os.Stdout).Run(ctx); err != nil {
		glog.Errorf("quiz client: %v", err)
		glog.Flush()
		os.Exit(1)
	}
}
