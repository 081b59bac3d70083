// Command icsfeed serves a YAML event file as an iCalendar feed.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"

	"github.com/icsfeed/icsfeed"
	"github.com/icsfeed/icsfeed/feedhttp"
	"github.com/icsfeed/icsfeed/internal/config"
	"github.com/icsfeed/icsfeed/internal/eventstore"
	"github.com/icsfeed/icsfeed/internal/logging"
)

const version = "0.1.0"

func main() {
	var (
		configPath  = flag.String("config", "", "path to the YAML configuration file")
		listen      = flag.String("listen", "", "listen address override, e.g. :8080")
		eventsPath  = flag.String("events", "", "events file override")
		showVersion = flag.Bool("version", false, "print the version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println("icsfeed", version)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "icsfeed:", err)
		os.Exit(1)
	}
	if *listen != "" {
		cfg.Listen = *listen
	}
	if *eventsPath != "" {
		cfg.EventsPath = *eventsPath
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "icsfeed:", err)
		os.Exit(1)
	}

	log := logging.Init(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)

	hostName := cfg.HostName
	if hostName == "" {
		if hostName, err = os.Hostname(); err != nil {
			hostName = "localhost"
		}
	}
	timezone, err := timezoneAbbrev(cfg.Timezone)
	if err != nil {
		log.Error("resolve timezone", "timezone", cfg.Timezone, "error", err)
		os.Exit(1)
	}

	base := icsfeed.Configure(cfg.Properties, cfg.AppName, hostName, timezone)
	renderer := icsfeed.New(base, hostName)

	var source feedhttp.Source
	var store *eventstore.Store
	if cfg.EventsPath != "" {
		store, err = eventstore.Open(cfg.EventsPath)
		if err != nil {
			log.Error("load events", "path", cfg.EventsPath, "error", err)
			os.Exit(1)
		}
		source = store
	} else {
		log.Warn("no events_path configured, serving an empty feed")
		source = feedhttp.SourceFunc(func(context.Context) (icsfeed.Properties, []icsfeed.Event, error) {
			return nil, nil, nil
		})
	}

	metrics := feedhttp.NewMetrics(prometheus.DefaultRegisterer)
	handler := feedhttp.NewHandler(renderer, source,
		feedhttp.WithLogger(log),
		feedhttp.WithMetrics(metrics),
		feedhttp.WithFilename(cfg.AppName+".ics"),
	)

	mux := http.NewServeMux()
	mux.Handle("/calendar.ics", handler)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if store != nil {
		c := cron.New()
		if _, err := c.AddFunc(cfg.ReloadSchedule, func() {
			if err := store.Reload(); err != nil {
				log.Error("reload events", "path", cfg.EventsPath, "error", err)
				return
			}
			log.Debug("events reloaded", "path", cfg.EventsPath, "at", store.LoadedAt())
		}); err != nil {
			log.Error("schedule reload", "schedule", cfg.ReloadSchedule, "error", err)
			os.Exit(1)
		}
		c.Start()
		defer c.Stop()
	}

	server := &http.Server{
		Addr:         cfg.Listen,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout.Std(),
		WriteTimeout: cfg.WriteTimeout.Std(),
		IdleTimeout:  cfg.IdleTimeout.Std(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", cfg.Listen, "events", cfg.EventsPath, "host", hostName)
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "error", err)
			os.Exit(1)
		}
		return
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", "error", err)
	}
}

// timezoneAbbrev resolves an IANA zone name like "Europe/Berlin" to its
// current abbreviation. An empty name uses the process-local zone.
func timezoneAbbrev(name string) (string, error) {
	now := time.Now()
	if name == "" {
		return now.Format("MST"), nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return "", fmt.Errorf("load location %q: %w", name, err)
	}
	return now.In(loc).Format("MST"), nil
}
