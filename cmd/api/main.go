package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"quick-entry/config"
	_ "quick-entry/docs" // Swagger docs
	"quick-entry/internal/httpserver"
	"quick-entry/internal/middleware"
	tgDelivery "quick-entry/internal/quickadd/delivery/telegram"
	"quick-entry/internal/quickadd/usecase"
	memosRepo "quick-entry/internal/task/repository/memos"
	"quick-entry/pkg/gcalendar"
	"quick-entry/pkg/log"
	"quick-entry/pkg/quickparse"
	"quick-entry/pkg/telegram"
)

// @title       Quick Entry API
// @description Bilingual quick-entry parser with Memos storage, Google Calendar scheduling and a Telegram surface.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Quick Entry...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Memos URL: %s", cfg.Memos.URL)

	// 3. Parser
	parser, err := quickparse.NewParser(cfg.QuickAdd.Timezone)
	if err != nil {
		logger.Fatalf(ctx, "Invalid timezone %q: %v", cfg.QuickAdd.Timezone, err)
	}

	// 4. Memos repository
	memosClient := memosRepo.NewClient(cfg.Memos.URL, cfg.Memos.AccessToken)
	taskRepo := memosRepo.New(memosClient, cfg.Memos.ExternalURL, logger)

	// 5. Google Calendar client (optional)
	var calendarClient usecase.CalendarClient
	if cfg.GoogleCalendar.CredentialsPath != "" {
		gcal, gcalErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if gcalErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", gcalErr)
			logger.Warn(ctx, "→ Run `go run ./scripts/gcal-auth` to generate ", gcalendar.TokenFile)
		} else {
			calendarClient = gcal
			logger.Info(ctx, "✅ Google Calendar initialized")
		}
	} else {
		logger.Info(ctx, "Google Calendar not configured, entries are stored in Memos only")
	}

	// 6. Quick-add use case
	quickAddUC := usecase.New(logger, parser, taskRepo, calendarClient, usecase.Config{
		CacheSize:           cfg.QuickAdd.CacheSize,
		CacheTTL:            cfg.QuickAdd.CacheTTL,
		MaxInputLength:      cfg.QuickAdd.MaxInputLength,
		DefaultEventMinutes: cfg.QuickAdd.DefaultEventMinutes,
		DefaultCalendarID:   cfg.GoogleCalendar.CalendarID,
		Calendars:           cfg.QuickAdd.Calendars,
	})

	// 7. Telegram surface (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		telegramBot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, quickAddUC, telegramBot)
		registerWebhook(ctx, logger, telegramBot, cfg.Telegram)
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 8. HTTP Server
	rateLimitPerMin := 0
	if cfg.RateLimit.Enabled {
		rateLimitPerMin = cfg.RateLimit.PerMin
	}
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware: middleware.Config{
			RateLimitPerMin:     rateLimitPerMin,
			TelegramSecretToken: cfg.Telegram.SecretToken,
		},
		QuickAddUseCase: quickAddUC,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(context.Background(), "Server stopped gracefully")
}

// registerWebhook points Telegram at this service: the configured URL, or the
// ngrok tunnel when none is configured.
func registerWebhook(ctx context.Context, logger log.Logger, bot *telegram.Bot, cfg config.TelegramConfig) {
	webhookURL := cfg.WebhookURL
	if webhookURL == "" {
		ngrokURL, err := detectNgrokURL(ctx, defaultNgrokAPI, ngrokRetry{Attempts: 10, Interval: defaultNgrokInterval})
		if err != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", err)
			return
		}
		webhookURL = ngrokURL + "/webhook/telegram"
		logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
	}

	if err := bot.SetWebhook(ctx, webhookURL, cfg.SecretToken); err != nil {
		logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	logger.Infof(ctx, "✅ Telegram webhook registered at %s", webhookURL)
}
