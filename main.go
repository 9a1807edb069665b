package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weather-widget/api"
	"weather-widget/collector"
	"weather-widget/config"
	"weather-widget/console"
	"weather-widget/datasource"
	"weather-widget/view"
)

func main() {
	// Parse command line arguments
	configFile := flag.String("config", "config.json", "Path to configuration file")
	mode := flag.String("mode", "web", "Input surface: web or term")
	port := flag.Int("port", 0, "Port for the web surface (overrides config)")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *port != 0 {
		cfg.Port = *port
	}
	if cfg.OpenWeatherMap.APIKey == "" {
		log.Fatal("No OpenWeatherMap API key provided (set OPENWEATHERMAP_API_KEY)")
	}

	client := datasource.NewOpenWeatherMapClient(cfg.OpenWeatherMap.APIKey, cfg.OpenWeatherMap.BaseURL, time.Duration(cfg.RequestTimeout))
	dispatcher := collector.NewDispatcher(client)
	widget := view.NewWidget(dispatcher, view.WithDiscardStale(cfg.DiscardStale))
	log.Printf("Looking up weather with %s", client.Name())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch *mode {
	case "web":
		runWeb(ctx, widget, cfg)
	case "term":
		runTerminal(ctx, widget)
	default:
		log.Fatalf("Unknown mode %q (want web or term)", *mode)
	}

	stop()
	drainLookups(dispatcher, 5*time.Second)
}

func runWeb(ctx context.Context, widget *view.Widget, cfg *config.Config) {
	go widget.Run(ctx)

	server := api.NewServer(widget, cfg.Port, cfg.AssetsDir)
	go func() {
		if err := server.Start(); err != nil {
			log.Printf("Server stopped: %v", err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Shutting down...")
	if err := server.Shutdown(5 * time.Second); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
}

func runTerminal(ctx context.Context, widget *view.Widget) {
	term := console.New(widget, os.Stdout)
	go widget.Run(ctx)

	if err := term.Run(ctx, os.Stdin); err != nil && ctx.Err() == nil {
		log.Printf("Console stopped: %v", err)
	}
	// At end of input, let the last lookup draw its result before exiting
	waitSettled(ctx, widget)
}

// drainLookups waits up to timeout for in-flight lookups to finish
func drainLookups(dispatcher *collector.Dispatcher, timeout time.Duration) {
	done := make(chan struct{})
	go func() {
		dispatcher.Wait()
		close(done)
	}()

	select {
	case <-done:
		fmt.Println("Shutdown complete")
	case <-time.After(timeout):
		log.Printf("Gave up waiting for in-flight lookups after %v", timeout)
	}
}

func waitSettled(ctx context.Context, widget *view.Widget) {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		snap, err := widget.State(ctx)
		if err != nil || snap.State.Phase() != view.PhaseLoading {
			return
		}
		select {
		case <-ticker.C:
		case <-ctx.Done():
			return
		}
	}
}
