package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/securecookie"

	"smartude/config"
	_ "smartude/docs" // Swagger docs
	sessionStore "smartude/internal/account/repository/kvstore"
	accountSupabase "smartude/internal/account/repository/supabase"
	accountUC "smartude/internal/account/usecase"
	"smartude/internal/checklist"
	"smartude/internal/httpserver"
	"smartude/internal/middleware"
	"smartude/internal/progress"
	progressRepo "smartude/internal/progress/repository/kvstore"
	progressUC "smartude/internal/progress/usecase"
	reminderRepo "smartude/internal/reminder/repository"
	reminderCalendar "smartude/internal/reminder/repository/gcalendar"
	reminderUC "smartude/internal/reminder/usecase"
	appSync "smartude/internal/sync"
	syncSupabase "smartude/internal/sync/repository/supabase"
	syncUC "smartude/internal/sync/usecase"
	"smartude/pkg/datemath"
	"smartude/pkg/gcalendar"
	"smartude/pkg/kv"
	"smartude/pkg/log"
	"smartude/pkg/supabase"
)

// @title       SmartUDE Onboarding API
// @description Onboarding checklist progress for international students, with account sync and deadline reminders.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
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

	logger.Info(ctx, "Starting SmartUDE...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Device-local storage
	store, err := kv.Open(kv.Config{Driver: cfg.Storage.Driver, Path: cfg.Storage.Path})
	if err != nil {
		logger.Errorf(ctx, "Failed to open %s storage at %s: %v", cfg.Storage.Driver, cfg.Storage.Path, err)
		return
	}
	defer store.Close()
	logger.Infof(ctx, "Storage: %s (%s)", cfg.Storage.Driver, cfg.Storage.Path)

	// 4. Checklist & progress
	checklistSvc := checklist.New(checklist.Default)
	progressUseCase := progressUC.New(logger, progressRepo.New(store, progress.StorageKey, logger), checklistSvc)

	// 5. Account
	supabaseClient := supabase.NewClient(supabase.Config{
		URL:          cfg.Supabase.URL,
		AnonKey:      cfg.Supabase.AnonKey,
		Timeout:      cfg.Supabase.Timeout,
		RedirectURL:  cfg.OAuth.RedirectURL,
		UserCacheTTL: cfg.Supabase.UserCacheTTL,
		UserCacheMax: cfg.Supabase.UserCacheMax,
	})
	if !supabaseClient.Configured() {
		logger.Warn(ctx, "Supabase not configured: sign-in and sync will report the service as unavailable")
	}

	hashKey, blockKey := cfg.Session.HashKey, cfg.Session.BlockKey
	if len(hashKey) == 0 {
		// Sessions saved with a generated key do not survive a restart.
		logger.Warn(ctx, "session.hash_key not set, generating an ephemeral key")
		hashKey = securecookie.GenerateRandomKey(32)
		if len(blockKey) == 0 {
			blockKey = securecookie.GenerateRandomKey(32)
		}
	}
	sessions := sessionStore.New(store, sessionStore.Config{
		HashKey:  hashKey,
		BlockKey: blockKey,
		MaxAge:   int(cfg.Session.MaxAge / time.Second),
	}, logger)

	accountRepo := accountSupabase.New(supabaseClient, logger)
	accountUseCase := accountUC.New(logger, accountRepo, accountRepo, sessions, accountUC.Config{
		Providers:     cfg.OAuth.Providers,
		StateTTL:      cfg.OAuth.StateTTL,
		RefreshLeeway: cfg.OAuth.RefreshLeeway,
	})
	defer accountUseCase.Close()

	// 6. Sync, driven by account sign-in events
	syncUseCase := syncUC.New(logger, progressUseCase, accountUseCase, syncSupabase.New(supabaseClient, logger), syncUC.Config{
		Mode:    appSync.Mode(cfg.Sync.Mode),
		Timeout: cfg.Sync.Timeout,
	})
	defer syncUseCase.Close()

	accountEvents, unsubscribe := accountUseCase.Subscribe(ctx)
	defer unsubscribe()
	go syncUseCase.Listen(ctx, accountEvents)

	// 7. Reminders (calendar optional)
	parser, err := datemath.NewParser(cfg.Reminder.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Reminder.Timezone, err)
		parser, _ = datemath.NewParser("UTC")
	}

	var calendarRepo reminderRepo.CalendarRepository
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.New(ctx, gcalendar.Config{
			CredentialsFile: cfg.GoogleCalendar.CredentialsPath,
			TokenFile:       cfg.GoogleCalendar.TokenPath,
		})
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "Run `go run ./cmd/gcal-auth` to generate a token for desktop credentials")
		} else {
			calendarRepo = reminderCalendar.New(calendarClient, reminderRepo.CalendarOptions{
				CalendarID:      cfg.GoogleCalendar.CalendarID,
				Timezone:        parser.Location().String(),
				ReminderMinutes: cfg.Reminder.ReminderMinutes,
			}, logger)
			logger.Info(ctx, "Google Calendar initialized")
		}
	}
	reminderUseCase := reminderUC.New(logger, progressUseCase, checklistSvc, parser, calendarRepo)

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware: middleware.Config{
			RateLimitPerMin: cfg.RateLimit.PerMinute,
			RateLimitBurst:  cfg.RateLimit.Burst,
			MaxClients:      cfg.RateLimit.MaxClients,
		},
		Checklist: checklistSvc,
		Progress:  progressUseCase,
		Account:   accountUseCase,
		Sync:      syncUseCase,
		Reminder:  reminderUseCase,
		Location:  parser.Location(),
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

	logger.Info(ctx, "Server stopped gracefully")
}
