package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/offerdesk/offerdesk/api/openapi"
	"github.com/offerdesk/offerdesk/internal/api/handlers"
	mw "github.com/offerdesk/offerdesk/internal/api/middleware"
	"github.com/offerdesk/offerdesk/internal/config"
	"github.com/offerdesk/offerdesk/internal/engine"
	"github.com/offerdesk/offerdesk/internal/notify"
	"github.com/offerdesk/offerdesk/internal/reports"
	"github.com/offerdesk/offerdesk/internal/store"
	"github.com/offerdesk/offerdesk/pkg/logger"
)

// Submission throttling per client IP. Generous enough for a shared office
// NAT, tight enough to blunt scripted resubmission loops.
const (
	submitRatePerSecond = 5.0
	submitBurst         = 10
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and expiry scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	var notifier notify.Notifier
	if cfg.Notifications.Discord.Enabled {
		notifier = notify.NewDiscordNotifier(cfg.Notifications.Discord.WebhookURL)
		log.Info("discord notifications enabled")
	} else {
		notifier = notify.NewNoOpNotifier(log)
	}

	dispatcher := notify.NewDispatcher(notifier, log,
		notify.WithQueueSize(cfg.Notifications.Dispatch.QueueSize),
		notify.WithSendTimeout(cfg.Notifications.Dispatch.SendTimeout),
		notify.WithRateLimit(
			cfg.Notifications.RateLimit.PerSecond,
			cfg.Notifications.RateLimit.Burst,
		),
	)
	dispatcher.Start(ctx)
	defer dispatcher.Stop()

	eng := engine.NewEngine(st, dispatcher,
		engine.WithLogger(log),
		engine.WithExpireAfter(cfg.Schedule.ExpireAfter),
	)

	var scheduler *engine.Scheduler
	if cfg.Schedule.ExpiryEnabled {
		scheduler, err = engine.NewScheduler(eng, cfg.Schedule.ExpiryInterval, log)
		if err != nil {
			return fmt.Errorf("building scheduler: %w", err)
		}
		scheduler.Start()
		log.Info("expiry sweep scheduled",
			"interval", cfg.Schedule.ExpiryInterval,
			"expire_after", cfg.Schedule.ExpireAfter,
		)
	}

	e := newRouter(log, st, eng, reports.NewService(st, reports.WithLogger(log)))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	if scheduler != nil {
		<-scheduler.Stop().Done()
	}

	log.Info("server stopped")
	return nil
}

func newRouter(
	log *slog.Logger,
	st store.Store,
	eng *engine.Engine,
	rpt *reports.Service,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(mw.RequestLog(log))
	e.Use(mw.Recovery(log))
	e.Use(mw.Metrics())

	health := handlers.NewHealthHandler(st)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	openapi.RegisterRoutes(e)

	offers := handlers.NewOffersHandler(eng, st, rpt)
	buyers := handlers.NewBuyerHandler(st)

	submitLimiter := mw.NewRateLimiter(submitRatePerSecond, submitBurst)

	api := e.Group("/api/v1")

	api.POST("/offers", offers.Submit, submitLimiter.Middleware())
	api.GET("/offers/property/:propertyId", offers.ByProperty)
	api.GET("/offers/buyer", offers.ByBuyer)
	api.GET("/offers/all", offers.List)
	api.GET("/offers/export", offers.Export)
	api.GET("/offers/stats", offers.Stats)
	api.PUT("/offers/:id", offers.Transition)

	api.POST("/buyers", buyers.Create)
	api.GET("/buyers", buyers.List)
	api.GET("/buyers/stats", buyers.Stats)
	api.GET("/buyers/lookup", buyers.Lookup)
	api.GET("/buyers/area/:areaId", buyers.ByArea)
	api.POST("/buyers/vip", buyers.VIP)
	api.POST("/buyers/email", buyers.BulkEmail)
	api.POST("/buyers/import", buyers.Import)
	api.GET("/buyers/:id", buyers.Get)
	api.PUT("/buyers/:id", buyers.Update)
	api.DELETE("/buyers/:id", buyers.Delete)

	return e
}
