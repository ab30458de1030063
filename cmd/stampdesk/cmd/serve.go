package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/stampdesk/stampdesk/api/openapi"
	"github.com/stampdesk/stampdesk/internal/api/handlers"
	"github.com/stampdesk/stampdesk/internal/api/middleware"
	"github.com/stampdesk/stampdesk/internal/config"
	"github.com/stampdesk/stampdesk/internal/ebay"
	"github.com/stampdesk/stampdesk/internal/images"
	"github.com/stampdesk/stampdesk/internal/notify"
	"github.com/stampdesk/stampdesk/internal/pipeline"
	"github.com/stampdesk/stampdesk/internal/store"
	"github.com/stampdesk/stampdesk/pkg/logger"
	domain "github.com/stampdesk/stampdesk/pkg/types"
	"github.com/stampdesk/stampdesk/pkg/vision"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE:  runServe,
	}
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	startupLog := log.NewWithOptions(os.Stderr, log.Options{
		Level: parseLogLevel(cfg.Logging.Level),
	})
	appLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	cancel()
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	tokens := ebay.NewUserTokenProvider(
		cfg.Ebay.AppID,
		cfg.Ebay.CertID,
		cfg.Ebay.RefreshToken,
		ebay.WithTokenURL(cfg.Ebay.TokenURL),
	)

	limiter := ebay.NewRateLimiter(
		cfg.Ebay.RateLimit.PerSecond,
		cfg.Ebay.RateLimit.Burst,
		cfg.Ebay.RateLimit.DailyLimit,
	)

	trading := ebay.NewTradingClient(
		cfg.Ebay.TradingURL,
		cfg.Ebay.SiteID,
		cfg.Ebay.CompatibilityLevel,
		tokens,
		ebay.WithTradingRateLimiter(limiter),
		ebay.WithTradingLogger(appLog),
	)

	account := ebay.NewAccountClient(
		cfg.Ebay.AccountURL,
		cfg.Ebay.InventoryURL,
		cfg.Ebay.MarketplaceID,
		tokens,
		ebay.WithAccountLogger(appLog),
	)

	uploader := images.New(
		cfg.ImageHosts.ImgbbURL,
		cfg.ImageHosts.ImgbbKey,
		cfg.ImageHosts.PlaceholderURL,
		images.WithEPS(trading),
		images.WithLogger(appLog),
		images.WithHTTPClient(&http.Client{Timeout: cfg.ImageHosts.Timeout}),
	)

	var notifier notify.Notifier
	if cfg.Notifications.Discord.Enabled {
		notifier = notify.NewDiscordNotifier(cfg.Notifications.Discord.WebhookURL)
	} else {
		notifier = notify.NewNoOpNotifier(appLog)
	}

	seller := domain.SellerContext{
		UserID:         cfg.Ebay.UserID,
		Environment:    cfg.Ebay.Environment,
		DefaultCountry: cfg.Ebay.DefaultCountry,
		Location:       cfg.Ebay.Location,
	}

	orch := pipeline.New(
		trading, account, uploader, st, seller, cfg.Ebay.SiteID,
		pipeline.WithLogger(appLog),
		pipeline.WithNotifier(notifier),
	)

	extractor := vision.NewLLMExtractor(
		visionBackend(&cfg.Vision),
		vision.WithMaxTokens(cfg.Vision.MaxTokens),
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(
		middleware.RequestLog(appLog),
		middleware.Recovery(appLog),
		middleware.Metrics(),
	)

	health := handlers.NewHealthHandler(st)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	openapi.RegisterRoutes(e)

	api := humaecho.New(e, huma.DefaultConfig("Stampdesk API", Version))
	handlers.RegisterListingRoutes(api, handlers.NewListingsHandler(orch, st))
	handlers.RegisterCategoryRoutes(api, handlers.NewCategoryHandler())
	handlers.RegisterConditionRoutes(api, handlers.NewConditionHandler())
	handlers.RegisterPolicyRoutes(api, handlers.NewPoliciesHandler(account))
	handlers.RegisterExtractRoutes(api, handlers.NewExtractHandler(extractor))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	startupLog.Info("starting server",
		"addr", addr,
		"environment", cfg.Ebay.Environment,
	)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			startupLog.Error("server error", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	startupLog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	startupLog.Info("server stopped")
	return nil
}

// visionBackend picks the extraction backend from config. Unknown values
// fall back to Anthropic.
func visionBackend(cfg *config.VisionConfig) vision.Backend {
	if cfg.Backend == "openai_compat" {
		return vision.NewOpenAICompatBackend(cfg.Endpoint, cfg.Model)
	}

	var opts []vision.AnthropicOption
	if cfg.Endpoint != "" {
		opts = append(opts, vision.WithAnthropicEndpoint(cfg.Endpoint))
	}
	if cfg.Model != "" {
		opts = append(opts, vision.WithAnthropicModel(cfg.Model))
	}
	return vision.NewAnthropicBackend(opts...)
}

func parseLogLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
