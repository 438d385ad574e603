package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/valyala/fasthttp"

	"settlement-engine/internal/config"
	"settlement-engine/internal/handler"
	"settlement-engine/internal/logging"
	"settlement-engine/internal/schedule"
)

func main() {
	configPath, err := parseFlags(os.Args[1:])
	if err != nil {
		logrus.Fatalf("Flags failed: %v", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logrus.Fatalf("Config failed: %v", err)
	}
	log := logging.New(cfg.Logging.Level, cfg.Logging.Format)

	rates := loadSchedule(cfg.Schedule.Source, log)

	var limiter *handler.Limiter
	if cfg.RateLimit.Enabled {
		limiter, err = handler.NewLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, cfg.RateLimit.MaxClients)
		if err != nil {
			log.Fatalf("Rate limiter failed: %v", err)
		}
	}

	h := handler.New(rates, log, limiter)
	srv := &fasthttp.Server{
		Name:               "settlement-engine",
		Handler:            h.Handle,
		ReadTimeout:        cfg.Server.ReadTimeout,
		WriteTimeout:       cfg.Server.WriteTimeout,
		MaxRequestBodySize: cfg.Server.MaxBodyBytes,
		Concurrency:        cfg.Server.Concurrency,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", cfg.Server.Addr()).Info("Settlement engine starting")
		errCh <- srv.ListenAndServe(cfg.Server.Addr())
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Fatalf("Server failed: %v", err)
	case sig := <-sigCh:
		log.WithField("signal", sig.String()).Info("Shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.ShutdownWithContext(ctx); err != nil {
		log.Errorf("Shutdown failed: %v", err)
	}
}

func parseFlags(args []string) (string, error) {
	fs := pflag.NewFlagSet("settlement-engine", pflag.ContinueOnError)
	configPath := fs.StringP("config", "c", "", "path to settlement.yaml")
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	return *configPath, nil
}

// loadSchedule keeps serving on the embedded table when an override cannot be
// loaded.
func loadSchedule(source string, log *logrus.Logger) *schedule.Schedule {
	if source == "" {
		return schedule.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s, err := schedule.Load(ctx, source)
	if err != nil {
		log.WithError(err).WithField("source", source).Warn("Rate schedule override failed, using defaults")
		return schedule.Default()
	}
	log.WithField("source", source).Info("Rate schedule loaded")
	return s
}
