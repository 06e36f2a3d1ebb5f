package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gopkg.in/natefinch/lumberjack.v2"

	tc "github.com/Roma7-7-7/telegram"

	"github.com/Roma7-7-7/site-monitor/internal/config"
	"github.com/Roma7-7-7/site-monitor/internal/dal"
	"github.com/Roma7-7-7/site-monitor/internal/obs"
	"github.com/Roma7-7-7/site-monitor/internal/providers"
	"github.com/Roma7-7-7/site-monitor/internal/service"
	"github.com/Roma7-7-7/site-monitor/internal/telegram"
	"github.com/Roma7-7-7/site-monitor/pkg/clock"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	conf, err := config.New(ctx)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	log, closeLog, err := newLogger(conf)
	if err != nil {
		slog.Error("Failed to create logger", "error", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(ctx, conf, log); err != nil {
		log.Error("Bot stopped with error", "error", err)
		closeLog()
		os.Exit(1) //nolint:gocritic // log is closed above
	}
}

func run(ctx context.Context, conf *config.Config, log *slog.Logger) error {
	if err := os.MkdirAll(filepath.Dir(conf.DBPath), 0o750); err != nil { //nolint:mnd
		return fmt.Errorf("create database directory: %w", err)
	}
	db, err := dal.Open(conf.DBPath, log)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	var subscribersStore service.SubscribersStore = db
	if conf.StoreBackend == config.BackendFile {
		subscribersStore = dal.NewEnvFile(conf.SubscribersFile, conf.SubscribersKey)
	}
	log.Info("Subscribers store selected", "backend", conf.StoreBackend)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := obs.NewMetrics(reg)

	state := service.NewState()
	subscriptionsSvc := service.NewSubscriptions(subscribersStore, state, log)
	sender := tc.NewClient(&http.Client{Timeout: conf.DeliveryTimeout}, conf.TelegramToken)
	notificationsSvc := service.NewNotifications(sender, subscriptionsSvc, service.NotificationsConfig{
		AdminChatID: conf.AdminChatID,
		Timeout:     conf.DeliveryTimeout,
	}, metrics, log)

	checker := providers.NewHTTPChecker(&http.Client{}, conf.ProbeTimeout, conf.ProbeUserAgent)
	monitor := service.NewMonitor(service.MonitorConfig{
		Endpoints:   conf.Endpoints,
		Interval:    conf.Interval(),
		Concurrency: conf.ProbeConcurrency,
		Location:    conf.Location(),
	}, checker, subscriptionsSvc, notificationsSvc, db, state, clock.New(conf.Location()), metrics, log)
	if err := monitor.Restore(ctx); err != nil {
		log.Warn("Failed to restore last check", "error", err)
	}

	handler := telegram.NewHandler(monitor, subscriptionsSvc, log)
	bot, err := telegram.NewBot(conf.TelegramToken, handler, log)
	if err != nil {
		return err
	}

	wg := &sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		monitor.Run(ctx)
	}()

	if conf.MetricsAddr != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			router := obs.NewRouter(reg, monitor.Health)
			if err := obs.Serve(ctx, conf.MetricsAddr, router, log.With("component", "ops")); err != nil {
				log.Error("Ops server failed", "error", err)
			}
		}()
	}

	bot.Start(ctx)

	wg.Wait()
	log.Info("Stopped bot")
	return nil
}

// newLogger writes JSON to stdout, or colored text in dev mode. LOG_FILE gets a copy of every record
// and is rotated once it grows past LOG_FILE_MAX_SIZE_MB.
func newLogger(conf *config.Config) (*slog.Logger, func(), error) {
	var (
		out     io.Writer = os.Stdout
		closeFn           = func() {}
	)

	if conf.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(conf.LogFile), 0o750); err != nil { //nolint:mnd
			return nil, nil, fmt.Errorf("create log directory: %w", err)
		}
		f := newLogFile(conf)
		out = io.MultiWriter(os.Stdout, f)
		closeFn = func() {
			if err := f.Close(); err != nil {
				slog.Error("Failed to close log file", "error", err)
			}
		}
	}

	var handler slog.Handler = slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level: conf.Level(),
	})
	if conf.Dev {
		handler = tint.NewHandler(out, &tint.Options{
			Level:      conf.Level(),
			TimeFormat: time.TimeOnly,
			NoColor:    conf.LogFile != "",
		})
	}

	return slog.New(handler), closeFn, nil
}

func newLogFile(conf *config.Config) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   conf.LogFile,
		MaxSize:    conf.LogFileMaxSizeMB,
		MaxBackups: conf.LogFileMaxBackups,
		LocalTime:  true,
	}
}
