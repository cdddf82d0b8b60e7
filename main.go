package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chaeya/glances/api"
	"github.com/chaeya/glances/internal/cpustats"
	"github.com/chaeya/glances/internal/platform"
	"github.com/sirupsen/logrus"
)

func main() {
	// Parse command line flags
	port := flag.String("port", "8080", "Port to run the server on")
	bind := flag.String("bind", "0.0.0.0", "IP address to bind the server to")
	cachedTime := flag.Float64("cache-interval", 1.0, "Minimum time in seconds between CPU samples")
	flag.Parse()

	log := logrus.New()

	// Validate platform support
	if err := platform.ValidateSupport(); err != nil {
		log.Fatalf("Platform validation failed: %v", err)
	}

	// One cache instance shared by every consumer of CPU stats.
	interval := time.Duration(*cachedTime * float64(time.Second))
	stats := cpustats.NewStatsCache(cpustats.NewSampler(), interval)

	server := api.NewServer(stats)

	// Handle graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		if err := server.Shutdown(); err != nil {
			log.Errorf("Error during shutdown: %v", err)
		}
		os.Exit(0)
	}()

	// Start the server
	log.WithFields(logrus.Fields{
		"bind":           *bind,
		"port":           *port,
		"cache_interval": interval,
	}).Info("Starting glances CPU stats server")
	log.Fatal(server.Start(*bind + ":" + *port))
}
